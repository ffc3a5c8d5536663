// Package auth implements the local passphrase lock: a bcrypt hash stored
// in the auth slot and short-lived bearer tokens for the HTTP surface.
// The tracker is single-user, so tokens carry no user identity beyond a
// fixed subject.
package auth

import (
	"context"
	"time"
)

// tokenSubject is the fixed subject claim; the tracker has one owner.
const tokenSubject = "scholar"

// JWTService defines operations for managing bearer tokens.
type JWTService interface {
	// GenerateToken creates a signed access token.
	// Returns the token string or an error if token generation fails.
	GenerateToken(ctx context.Context) (string, error)

	// ValidateToken validates the provided token string and extracts the
	// claims, or returns an error (expired, invalid signature, etc.).
	ValidateToken(ctx context.Context, tokenString string) (*Claims, error)
}

// Claims represents the decoded claims of an issued token.
type Claims struct {
	Subject   string    `json:"sub,omitempty"`
	IssuedAt  time.Time `json:"iat,omitempty"`
	ExpiresAt time.Time `json:"exp,omitempty"`
	ID        string    `json:"jti,omitempty"`
}
