package auth

import "golang.org/x/crypto/bcrypt"

// PasswordVerifier defines the interface for hashing and comparing passphrases.
type PasswordVerifier interface {
	// Hash returns the hash of the given plaintext passphrase.
	Hash(passphrase string) (string, error)

	// Compare compares a hashed passphrase with its possible plaintext
	// equivalent. Returns nil on success, or an error on mismatch.
	Compare(hashedPassphrase, passphrase string) error
}

// BcryptVerifier implements PasswordVerifier using bcrypt.
type BcryptVerifier struct{}

// NewBcryptVerifier creates a new BcryptVerifier.
func NewBcryptVerifier() *BcryptVerifier {
	return &BcryptVerifier{}
}

// Hash implements the PasswordVerifier interface using bcrypt.
func (v *BcryptVerifier) Hash(passphrase string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(passphrase), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Compare implements the PasswordVerifier interface using bcrypt.
func (v *BcryptVerifier) Compare(hashedPassphrase, passphrase string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassphrase), []byte(passphrase))
}
