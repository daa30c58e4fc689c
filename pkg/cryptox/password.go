package cryptox

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// DefaultCost is the bcrypt work factor used for user passwords.
const DefaultCost = 10

var ErrInvalidCost = errors.New("cryptox: bcrypt cost out of range")

// BcryptHasher hashes and verifies passwords with bcrypt at a fixed cost.
// The zero value uses DefaultCost.
type BcryptHasher struct {
	Cost int
}

// NewBcryptHasher returns a hasher for the given cost, rejecting values bcrypt
// would silently clamp.
func NewBcryptHasher(cost int) (BcryptHasher, error) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		return BcryptHasher{}, fmt.Errorf("%w: %d", ErrInvalidCost, cost)
	}
	return BcryptHasher{Cost: cost}, nil
}

// Hash generates a salted bcrypt hash of password. bcrypt draws its own salt
// from crypto/rand so two calls never return the same string.
func (h BcryptHasher) Hash(password string) (string, error) {
	cost := h.Cost
	if cost == 0 {
		cost = DefaultCost
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("cryptox: hash password: %w", err)
	}
	return string(hash), nil
}

// Verify reports whether password matches the encoded hash. A malformed hash
// is treated as a mismatch.
func (h BcryptHasher) Verify(password, encodedHash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(encodedHash), []byte(password)) == nil
}

// HashPassword hashes password with DefaultCost.
func HashPassword(password string) (string, error) {
	return BcryptHasher{}.Hash(password)
}

// CheckPassword compares a plaintext password against a bcrypt hash in
// constant time.
func CheckPassword(password, encodedHash string) bool {
	return BcryptHasher{}.Verify(password, encodedHash)
}
