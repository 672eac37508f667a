package service

import (
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/saintreact/inventory-api/internal/api/metrics"
)

// BcryptHasher implements ports.PasswordHasher on top of bcrypt, which embeds
// a random per-hash salt and compares in constant time.
type BcryptHasher struct {
	cost int
}

func NewBcryptHasher() *BcryptHasher {
	return &BcryptHasher{cost: bcrypt.DefaultCost}
}

func (h *BcryptHasher) Hash(password string) (string, error) {
	start := time.Now()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}
	metrics.PasswordHashDuration.Observe(time.Since(start).Seconds())
	return string(hash), nil
}

// Verify fails closed: any error from bcrypt, including a malformed stored
// hash, reports a mismatch rather than surfacing an error.
func (h *BcryptHasher) Verify(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
