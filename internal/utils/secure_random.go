package utils

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// GenerateAPIKey returns a hex encoded random key built from lengthInBytes
// random bytes, so 32 bytes yield a 64 character key.
func GenerateAPIKey(lengthInBytes int) (string, error) {
	if lengthInBytes < 16 {
		return "", fmt.Errorf("api key needs at least 16 random bytes, got %d", lengthInBytes)
	}
	b := make([]byte, lengthInBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}
	return hex.EncodeToString(b), nil
}
