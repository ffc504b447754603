package utils

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// PasswordHashCost is the fixed bcrypt work factor applied to every stored
// password. Changing it affects newly created hashes only; existing hashes
// keep the cost they were minted with.
const PasswordHashCost = 10

// HashPassword transforms a plaintext password into a salted bcrypt hash
// suitable for storage. The plaintext must never be persisted or logged.
//
// Parameters:
//
//	password - the plaintext password to hash
//
// Returns:
//
//	string - the bcrypt hash in its standard encoded form
//	error  - non-nil if bcrypt fails (e.g. password longer than 72 bytes)
//
// Example usage:
//
//	hash, err := utils.HashPassword("s3cret")
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), PasswordHashCost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(hash), nil
}

// CheckPassword verifies a plaintext password against a stored bcrypt hash.
//
// Returns true only when the password matches; any bcrypt error (including
// an empty or malformed hash, as stored for Google-handoff accounts)
// evaluates to false.
func CheckPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
