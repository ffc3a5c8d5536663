package auth

import (
	"context"
	"log/slog"

	"github.com/scholars-chronicle/api/internal/store"
)

// lockRecord is the JSON document stored in the auth slot.
type lockRecord struct {
	PassphraseHash string `json:"passphraseHash"`
}

// Service manages the optional passphrase lock on the tracker.
type Service interface {
	// Enabled reports whether a passphrase lock has been set.
	Enabled(ctx context.Context) bool

	// SetPassphrase hashes and stores the passphrase, enabling the lock.
	SetPassphrase(ctx context.Context, passphrase string) error

	// Login verifies the passphrase and issues a bearer token.
	// Returns ErrNoPassphraseSet if no lock exists, or ErrWrongPassphrase
	// on mismatch.
	Login(ctx context.Context, passphrase string) (string, error)
}

// Verify interface compliance at compile time
var _ Service = (*lockService)(nil)

// lockService implements the Service interface over the auth slot.
type lockService struct {
	slots    store.SlotStore
	verifier PasswordVerifier
	tokens   JWTService
	logger   *slog.Logger
}

// NewService creates a new passphrase-lock Service.
// If logger is nil, the default logger is used.
func NewService(
	slots store.SlotStore,
	verifier PasswordVerifier,
	tokens JWTService,
	logger *slog.Logger,
) Service {
	if slots == nil {
		panic("slots cannot be nil")
	}
	if verifier == nil {
		panic("verifier cannot be nil")
	}
	if tokens == nil {
		panic("tokens cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &lockService{
		slots:    slots,
		verifier: verifier,
		tokens:   tokens,
		logger:   logger.With(slog.String("component", "auth_service")),
	}
}

// Enabled implements Service.Enabled.
func (s *lockService) Enabled(ctx context.Context) bool {
	var record lockRecord
	return store.ReadJSON(ctx, s.slots, store.SlotAuth, &record) && record.PassphraseHash != ""
}

// SetPassphrase implements Service.SetPassphrase.
func (s *lockService) SetPassphrase(ctx context.Context, passphrase string) error {
	hash, err := s.verifier.Hash(passphrase)
	if err != nil {
		return err
	}

	store.WriteJSON(ctx, s.slots, store.SlotAuth, lockRecord{PassphraseHash: hash})
	s.logger.Info("passphrase lock enabled")
	return nil
}

// Login implements Service.Login.
func (s *lockService) Login(ctx context.Context, passphrase string) (string, error) {
	var record lockRecord
	if !store.ReadJSON(ctx, s.slots, store.SlotAuth, &record) || record.PassphraseHash == "" {
		return "", ErrNoPassphraseSet
	}

	if err := s.verifier.Compare(record.PassphraseHash, passphrase); err != nil {
		s.logger.Warn("login rejected, passphrase mismatch")
		return "", ErrWrongPassphrase
	}

	return s.tokens.GenerateToken(ctx)
}
