package api

import (
	"errors"
	"net/http"

	"github.com/scholars-chronicle/api/internal/api/shared"
	"github.com/scholars-chronicle/api/internal/domain"
	"github.com/scholars-chronicle/api/internal/service"
	"github.com/scholars-chronicle/api/internal/service/auth"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status
// codes based on the error type. This prevents leaking internal error
// types or messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	// Authentication errors
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrMissingToken),
		errors.Is(err, auth.ErrWrongPassphrase):
		return http.StatusUnauthorized

	// Not found errors
	case service.IsNotFoundError(err):
		return http.StatusNotFound

	// Capacity errors
	case errors.Is(err, service.ErrDeckFull):
		return http.StatusConflict

	// Bad request errors
	case errors.Is(err, service.ErrEmptyImport),
		errors.Is(err, auth.ErrNoPassphraseSet),
		isValidationError(err):
		return http.StatusBadRequest

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	case errors.Is(err, auth.ErrWrongPassphrase):
		return "Passphrase does not match"

	case errors.Is(err, auth.ErrNoPassphraseSet):
		return "No passphrase has been set"

	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrMissingToken):
		return "Invalid token"

	case errors.Is(err, service.ErrCharacterNotFound):
		return "Character not found"

	case errors.Is(err, service.ErrQuestNotFound):
		return "Quest not found"

	case errors.Is(err, service.ErrDeckNotFound):
		return "Deck not found"

	case errors.Is(err, service.ErrCardNotFound):
		return "Card not found"

	case errors.Is(err, service.ErrNoteNotFound):
		return "Note not found"

	case errors.Is(err, service.ErrDeckFull):
		return "Deck is at its card limit"

	case errors.Is(err, service.ErrEmptyImport):
		return "Import contains no usable rows"

	case isValidationError(err):
		return err.Error()

	default:
		return "An unexpected error occurred"
	}
}

// isValidationError reports whether the error is a domain validation
// failure, which is safe to echo back to the caller.
func isValidationError(err error) bool {
	return errors.Is(err, domain.ErrQuestTitleEmpty) ||
		errors.Is(err, domain.ErrQuestTypeInvalid) ||
		errors.Is(err, domain.ErrQuestDifficultyInvalid) ||
		errors.Is(err, domain.ErrQuestXPRewardInvalid) ||
		errors.Is(err, domain.ErrDeckNameEmpty) ||
		errors.Is(err, domain.ErrCardFrontEmpty) ||
		errors.Is(err, domain.ErrCardBackEmpty) ||
		errors.Is(err, domain.ErrCharacterStatsInvalid) ||
		errors.Is(err, domain.ErrNoteTitleEmpty) ||
		errors.Is(err, domain.ErrNoteSubjectEmpty) ||
		errors.Is(err, domain.ErrNoteTopicEmpty) ||
		errors.Is(err, domain.ErrNoteURLInvalid) ||
		errors.Is(err, domain.ErrTimerPresetEmpty) ||
		errors.Is(err, domain.ErrTimerMinutesInvalid)
}

// RespondWithServiceError maps err to a status code and safe message and
// writes the error response, logging the full details.
func RespondWithServiceError(w http.ResponseWriter, r *http.Request, err error) {
	shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
}
