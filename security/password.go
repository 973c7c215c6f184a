// password.go - Password hashing and verification

package security

import (
	"golang.org/x/crypto/bcrypt" // Password hashing
)

// Hasher turns plaintext passwords into one-way digests and checks them later.
type Hasher interface {
	Hash(plaintext string) (string, error)
	Verify(plaintext, hashed string) bool
}

// BcryptHasher is a Hasher backed by bcrypt with a fixed work factor.
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher returns a hasher using cost, or bcrypt.DefaultCost when cost is
// outside the range bcrypt accepts.
func NewBcryptHasher(cost int) *BcryptHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &BcryptHasher{cost: cost}
}

// Cost returns the work factor used for new hashes.
func (h *BcryptHasher) Cost() int { return h.cost }

func (h *BcryptHasher) Hash(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost) // Salt is generated per call
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Verify reports whether plaintext matches hashed. A malformed hash is treated the
// same as a wrong password.
func (h *BcryptHasher) Verify(plaintext, hashed string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plaintext)) == nil
}
