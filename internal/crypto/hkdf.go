package crypto

import (
	"crypto/sha256"
	"fmt"
	"io"

	"golang.org/x/crypto/hkdf"
)

// DeriveKey derives a key of the requested length using HKDF-SHA-256.
//
// Parameters:
//   - secret: the input key material (a seed or an X25519 shared secret)
//   - info: context string for domain separation
//   - length: desired output key length in bytes
//
// No salt is used; the info string alone separates the derivation
// domains, and both sides of the protocol must agree on it byte for
// byte for the derived keys to match.
func DeriveKey(secret []byte, info string, length int) ([]byte, error) {
	reader := hkdf.New(sha256.New, secret, nil, []byte(info))
	key := make([]byte, length)

	if _, err := io.ReadFull(reader, key); err != nil {
		return nil, fmt.Errorf("failed to derive key: %w", err)
	}

	return key, nil
}
