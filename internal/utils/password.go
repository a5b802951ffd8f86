package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword computes a salted bcrypt hash of the given plaintext
// password using the library default cost. The plaintext is never stored
// or logged anywhere in the application.
func HashPassword(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(hash), nil
}

// VerifyPassword reports whether plaintext matches the stored bcrypt hash.
// bcrypt's comparison is constant-time over the derived key; raw string
// equality is never used on hashes.
func VerifyPassword(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}

// GenerateResetCode returns a fresh 6-digit numeric password-reset code in
// the range [100000, 999999], drawn from crypto/rand.
//
// The code is short enough to be typed by hand from a mail client, so it
// must only live for the reset-code TTL set in the configuration.
func GenerateResetCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", fmt.Errorf("error generating reset code: %w", err)
	}

	return fmt.Sprintf("%06d", n.Int64()+100000), nil
}
