package auth

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidAPIKey = errors.New("invalid api key")

// KeyVerifier checks client API keys.
type KeyVerifier interface {
	Verify(key string) error
	Enabled() bool
}

// BcryptKeyVerifier compares keys against a bcrypt hash.
type BcryptKeyVerifier struct {
	hash []byte
}

// NewBcryptKeyVerifier creates verifier for provided bcrypt hash.
func NewBcryptKeyVerifier(hash string) *BcryptKeyVerifier {
	return &BcryptKeyVerifier{hash: []byte(hash)}
}

// Verify returns ErrInvalidAPIKey when key does not match the hash.
func (v *BcryptKeyVerifier) Verify(key string) error {
	if key == "" {
		return ErrInvalidAPIKey
	}
	if err := bcrypt.CompareHashAndPassword(v.hash, []byte(key)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return ErrInvalidAPIKey
		}
		return err
	}
	return nil
}

func (v *BcryptKeyVerifier) Enabled() bool { return true }

// OpenAccess accepts every key; used when no hash is configured.
type OpenAccess struct{}

func (OpenAccess) Verify(string) error { return nil }

func (OpenAccess) Enabled() bool { return false }

// HashKey returns bcrypt hash for key suitable for API_KEY_HASH.
func HashKey(key string, cost int) (string, error) {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	encoded, err := bcrypt.GenerateFromPassword([]byte(key), cost)
	if err != nil {
		return "", err
	}
	return string(encoded), nil
}
