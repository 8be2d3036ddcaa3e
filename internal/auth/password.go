package auth

import (
	"golang.org/x/crypto/bcrypt"

	"fintrack/internal/core"
)

// HashPassword derives a bcrypt hash at the default cost.
func HashPassword(plain string) (string, error) {
	if len(plain) < 8 {
		return "", core.ErrInvalidInput
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword compares a plaintext candidate against a stored hash.
func CheckPassword(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
