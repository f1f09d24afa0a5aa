package service

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// DefaultBcryptCost is the work factor used when none is configured.
const DefaultBcryptCost = 10

// bcrypt only reads the first 72 bytes of its input.
const maxBcryptPasswordLen = 72

// ErrPasswordTooLong is returned by BcryptHasher.Hash for passwords over 72 bytes.
var ErrPasswordTooLong = fmt.Errorf("%w: password longer than %d bytes", ErrInvalidInput, maxBcryptPasswordLen)

// PasswordHasher turns a plaintext password into a self-describing stored
// string and checks candidates against it.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	Verify(plaintext, stored string) bool
}

// BcryptHasher hashes with a fresh random salt per call; the output embeds
// the algorithm tag, cost, salt and digest ($2a$10$...).
type BcryptHasher struct {
	cost int
}

var _ PasswordHasher = (*BcryptHasher)(nil)

// NewBcryptHasher clamps cost into bcrypt's accepted range; 0 means DefaultBcryptCost.
func NewBcryptHasher(cost int) *BcryptHasher {
	switch {
	case cost == 0:
		cost = DefaultBcryptCost
	case cost < bcrypt.MinCost:
		cost = bcrypt.MinCost
	case cost > bcrypt.MaxCost:
		cost = bcrypt.MaxCost
	}
	return &BcryptHasher{cost: cost}
}

func (h *BcryptHasher) Cost() int { return h.cost }

func (h *BcryptHasher) Hash(plaintext string) (string, error) {
	if len(plaintext) > maxBcryptPasswordLen {
		return "", ErrPasswordTooLong
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// Verify compares in constant time. A malformed stored hash never verifies,
// nor does a plaintext Hash would have refused, since bcrypt ignores bytes past 72.
func (h *BcryptHasher) Verify(plaintext, stored string) bool {
	if len(plaintext) > maxBcryptPasswordLen {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(plaintext)) == nil
}
