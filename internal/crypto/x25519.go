package crypto

import (
	"fmt"

	"github.com/cloudflare/circl/dh/x25519"
)

// DerivePrivateKey derives an X25519 private scalar from a 32-byte seed.
//
// The derivation is a single HKDF-SHA-256 expansion under the identity
// info string, so the same seed always yields the same scalar. Clamping
// is performed by the X25519 scalar multiplication itself per RFC 7748.
func DerivePrivateKey(seed []byte) ([]byte, error) {
	if len(seed) != SeedSize {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrInvalidSeedSize, len(seed), SeedSize)
	}
	return DeriveKey(seed, HKDFInfoIdentity, PrivateKeySize)
}

// PublicFromPrivate computes the X25519 public key for a private scalar.
func PublicFromPrivate(privateKey []byte) ([]byte, error) {
	if len(privateKey) != PrivateKeySize {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrInvalidPrivateKeySize, len(privateKey), PrivateKeySize)
	}

	var secret, public x25519.Key
	copy(secret[:], privateKey)
	x25519.KeyGen(&public, &secret)

	out := make([]byte, PublicKeySize)
	copy(out, public[:])
	return out, nil
}

// SharedSecret computes the raw X25519 shared secret between a private
// scalar and a peer public key. Low-order peer keys are rejected.
func SharedSecret(privateKey, peerPublicKey []byte) ([]byte, error) {
	if len(privateKey) != PrivateKeySize {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrInvalidPrivateKeySize, len(privateKey), PrivateKeySize)
	}
	if len(peerPublicKey) != PublicKeySize {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrInvalidPublicKeySize, len(peerPublicKey), PublicKeySize)
	}

	var secret, public, shared x25519.Key
	copy(secret[:], privateKey)
	copy(public[:], peerPublicKey)
	if !x25519.Shared(&shared, &secret, &public) {
		return nil, ErrLowOrderPoint
	}

	out := make([]byte, SharedSecretSize)
	copy(out, shared[:])
	return out, nil
}

// EnvelopeKey derives the XChaCha20-Poly1305 key shared by a key pair.
//
// The key depends only on the X25519 shared secret, so the sender
// (own private, peer public) and the recipient (own private, sender
// public) derive the same key. Per-message uniqueness comes from the
// random nonce, not from the key.
func EnvelopeKey(privateKey, peerPublicKey []byte) ([]byte, error) {
	shared, err := SharedSecret(privateKey, peerPublicKey)
	if err != nil {
		return nil, err
	}
	return DeriveKey(shared, HKDFInfoEnvelope, EnvelopeKeySize)
}
