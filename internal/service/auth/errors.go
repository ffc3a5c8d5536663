package auth

import "errors"

// Common authentication service errors
var (
	// ErrInvalidToken indicates the token format is invalid or signature doesn't match
	ErrInvalidToken = errors.New("invalid authentication token")

	// ErrExpiredToken indicates the token has expired
	ErrExpiredToken = errors.New("authentication token has expired")

	// ErrMissingToken indicates a token was expected but not provided
	ErrMissingToken = errors.New("authentication token is missing")

	// ErrWrongPassphrase indicates the supplied passphrase does not match the stored hash
	ErrWrongPassphrase = errors.New("passphrase does not match")

	// ErrNoPassphraseSet indicates login was attempted before a passphrase lock exists
	ErrNoPassphraseSet = errors.New("no passphrase has been set")
)
