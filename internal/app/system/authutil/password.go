// internal/app/system/authutil/password.go
package authutil

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/reliefworks/reliefhub/internal/domain/faults"
)

// HashPassword returns a bcrypt hash of the plaintext password.
func HashPassword(plain string) (string, error) {
	if plain == "" {
		return "", faults.Validation("password", "is required")
	}
	b, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// CheckPassword compares a plaintext password with a stored hash and
// returns an authentication error on mismatch.
func CheckPassword(hash, plain string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)); err != nil {
		return faults.Authentication("invalid credentials")
	}
	return nil
}
