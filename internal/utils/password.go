package utils

import (
	"golang.org/x/crypto/bcrypt"
)

// HashAPIKey hashes a plaintext API key using bcrypt.
func HashAPIKey(key string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(key), bcrypt.DefaultCost)
	return string(hash), err
}

// CheckAPIKeyHash compares a plaintext API key with a bcrypt hash.
// An empty hash never matches.
func CheckAPIKeyHash(key, hash string) bool {
	if hash == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(key)) == nil
}
