package api

import (
	"log/slog"
	"net/http"

	"github.com/scholars-chronicle/api/internal/api/shared"
	"github.com/scholars-chronicle/api/internal/service/auth"
)

// AuthHandler serves the passphrase-lock endpoints.
type AuthHandler struct {
	lock   auth.Service
	logger *slog.Logger
}

// NewAuthHandler creates a new AuthHandler with the given dependencies.
func NewAuthHandler(lock auth.Service, logger *slog.Logger) *AuthHandler {
	if lock == nil {
		panic("lock cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &AuthHandler{
		lock:   lock,
		logger: logger.With(slog.String("component", "auth_handler")),
	}
}

// Status handles GET /auth/status and reports whether a passphrase lock
// is set, so clients know whether to show the unlock screen.
func (h *AuthHandler) Status(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, AuthStatusResponse{
		Enabled: h.lock.Enabled(r.Context()),
	})
}

// SetPassphrase handles POST /auth/passphrase, enabling the lock.
func (h *AuthHandler) SetPassphrase(w http.ResponseWriter, r *http.Request) {
	var req SetPassphraseRequest
	if !DecodeAndValidate(w, r, &req) {
		return
	}

	if err := h.lock.SetPassphrase(r.Context(), req.Passphrase); err != nil {
		RespondWithServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Login handles POST /auth/login, exchanging the passphrase for a token.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if !DecodeAndValidate(w, r, &req) {
		return
	}

	token, err := h.lock.Login(r.Context(), req.Passphrase)
	if err != nil {
		RespondWithServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, LoginResponse{Token: token})
}
