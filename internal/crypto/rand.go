package crypto

import (
	"crypto/rand"
	"fmt"
	"io"
)

// randReader is the random source used for nonce generation.
// It defaults to nil (which uses crypto/rand) but can be overridden for testing.
var randReader io.Reader

// GenerateNonce returns a fresh random XChaCha20-Poly1305 nonce from
// the process CSPRNG.
func GenerateNonce() ([]byte, error) {
	r := randReader
	if r == nil {
		r = rand.Reader
	}

	nonce := make([]byte, NonceSize)
	if _, err := io.ReadFull(r, nonce); err != nil {
		return nil, fmt.Errorf("failed to generate nonce: %w", err)
	}
	return nonce, nil
}
