package utils

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword derives a bcrypt hash of plaintext with the given cost factor.
//
// bcrypt embeds a fresh random salt into every hash, so two calls on the same
// input produce different outputs that both verify successfully. A failure
// here (invalid cost, resource exhaustion) is a server fault and is returned
// to the caller, never treated as a verification failure.
func HashPassword(plaintext string, cost int) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), cost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(hash), nil
}

// VerifyPassword reports whether plaintext matches the bcrypt hash in hashed.
//
// The comparison is constant-time inside bcrypt. Any mismatch — wrong
// password, malformed or truncated hash — yields false; this function never
// returns an error for a wrong password.
func VerifyPassword(plaintext, hashed string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plaintext)) == nil
}
