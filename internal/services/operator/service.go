package operator

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// Errors
var (
	ErrInvalidKey = errors.New("invalid operator key")
	ErrDisabled   = errors.New("operator access disabled")
)

// Service gates operator-only endpoints (game config updates) behind a
// bcrypt-hashed key supplied at deploy time. Only the hash is held in memory.
type Service struct {
	keyHash []byte
}

// New creates an operator service. An empty hash disables operator access
// entirely, which is the safe default for an instance that only serves play.
func New(keyHash string) *Service {
	return &Service{keyHash: []byte(keyHash)}
}

// Enabled reports whether operator access is configured
func (s *Service) Enabled() bool {
	return len(s.keyHash) > 0
}

// ValidateKey checks a presented operator key against the configured hash
func (s *Service) ValidateKey(key string) error {
	if !s.Enabled() {
		return ErrDisabled
	}
	if err := bcrypt.CompareHashAndPassword(s.keyHash, []byte(key)); err != nil {
		return ErrInvalidKey
	}
	return nil
}

// HashKey produces a bcrypt hash for an operator key (used by tooling)
func HashKey(key string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(key), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
