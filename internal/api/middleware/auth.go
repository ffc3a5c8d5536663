package middleware

import (
	"net/http"
	"strings"

	"github.com/scholars-chronicle/api/internal/api/shared"
	"github.com/scholars-chronicle/api/internal/service/auth"
)

// AuthMiddleware guards routes behind the optional passphrase lock.
type AuthMiddleware struct {
	jwtService auth.JWTService
	lock       auth.Service
}

// NewAuthMiddleware creates a new AuthMiddleware with the given dependencies.
func NewAuthMiddleware(jwtService auth.JWTService, lock auth.Service) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		lock:       lock,
	}
}

// Authenticate validates bearer tokens from the Authorization header.
// While no passphrase lock is set the tracker is open and requests pass
// through untouched; once a lock exists every guarded route requires a
// valid token.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !m.lock.Enabled(r.Context()) {
			next.ServeHTTP(w, r)
			return
		}

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			shared.RespondWithError(w, r, http.StatusUnauthorized, "Authorization header required")
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			shared.RespondWithError(w, r, http.StatusUnauthorized, "Invalid authorization format")
			return
		}

		if _, err := m.jwtService.ValidateToken(r.Context(), parts[1]); err != nil {
			switch err {
			case auth.ErrExpiredToken:
				shared.RespondWithError(w, r, http.StatusUnauthorized, "Token expired")
			default:
				shared.RespondWithError(w, r, http.StatusUnauthorized, "Invalid token")
			}
			return
		}

		next.ServeHTTP(w, r)
	})
}
