package api

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/scholars-chronicle/api/internal/domain"
	"github.com/scholars-chronicle/api/internal/service"
	"github.com/scholars-chronicle/api/internal/service/auth"
)

func TestMapErrorToStatusCode(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		err      error
		expected int
	}{
		{
			name:     "wrong passphrase maps to 401",
			err:      auth.ErrWrongPassphrase,
			expected: http.StatusUnauthorized,
		},
		{
			name:     "expired token maps to 401",
			err:      auth.ErrExpiredToken,
			expected: http.StatusUnauthorized,
		},
		{
			name:     "missing quest maps to 404",
			err:      service.ErrQuestNotFound,
			expected: http.StatusNotFound,
		},
		{
			name:     "missing character maps to 404",
			err:      service.ErrCharacterNotFound,
			expected: http.StatusNotFound,
		},
		{
			name:     "full deck maps to 409",
			err:      service.ErrDeckFull,
			expected: http.StatusConflict,
		},
		{
			name:     "empty import maps to 400",
			err:      service.ErrEmptyImport,
			expected: http.StatusBadRequest,
		},
		{
			name:     "domain validation maps to 400",
			err:      domain.ErrQuestTitleEmpty,
			expected: http.StatusBadRequest,
		},
		{
			name:     "wrapped validation error maps to 400",
			err:      errors.Join(errors.New("failed to create quest"), domain.ErrQuestTitleEmpty),
			expected: http.StatusBadRequest,
		},
		{
			name:     "unknown error maps to 500",
			err:      errors.New("disk on fire"),
			expected: http.StatusInternalServerError,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.expected, MapErrorToStatusCode(tc.err))
		})
	}
}

func TestGetSafeErrorMessage(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Quest not found", GetSafeErrorMessage(service.ErrQuestNotFound))
	assert.Equal(t, "Deck is at its card limit", GetSafeErrorMessage(service.ErrDeckFull))
	assert.Equal(t, "Passphrase does not match", GetSafeErrorMessage(auth.ErrWrongPassphrase))

	// Internal details never leak for unknown errors.
	assert.Equal(t, "An unexpected error occurred", GetSafeErrorMessage(errors.New("pq: relation slots does not exist")))
	assert.Equal(t, "An unexpected error occurred", GetSafeErrorMessage(nil))
}
