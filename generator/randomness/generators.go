// Package randomness provides CSPRNG-backed byte generation used to mint
// per-encryption salts and master nonces.
package randomness

import (
	"crypto/rand"
	"fmt"
	"io"
)

// Bytes generates a new byte slice of the given size read from the system's
// cryptographically secure random number generator.
func Bytes(size int) ([]byte, error) {
	bytes := make([]byte, size)
	if _, err := io.ReadFull(rand.Reader, bytes); err != nil {
		return nil, fmt.Errorf("error generating bytes: %w", err)
	}
	return bytes, nil
}
