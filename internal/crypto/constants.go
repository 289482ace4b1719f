package crypto

import "golang.org/x/crypto/chacha20poly1305"

const (
	// SeedSize is the size of an identity seed in bytes.
	SeedSize = 32
	// PrivateKeySize is the size of an X25519 private scalar in bytes.
	PrivateKeySize = 32
	// PublicKeySize is the size of an X25519 public key in bytes.
	PublicKeySize = 32
	// SharedSecretSize is the size of the raw X25519 shared secret in bytes.
	SharedSecretSize = 32

	// EnvelopeKeySize is the size of the derived XChaCha20-Poly1305 key in bytes.
	EnvelopeKeySize = chacha20poly1305.KeySize
	// NonceSize is the size of an XChaCha20-Poly1305 nonce in bytes.
	NonceSize = chacha20poly1305.NonceSizeX
	// TagSize is the size of a Poly1305 authentication tag in bytes.
	TagSize = chacha20poly1305.Overhead

	// HKDFInfoIdentity is the domain-separation info string for deriving
	// an identity private scalar from a seed.
	HKDFInfoIdentity = "algochat/identity/x25519/v1"
	// HKDFInfoEnvelope is the domain-separation info string for deriving
	// the per-pair envelope key from the X25519 shared secret.
	HKDFInfoEnvelope = "algochat/envelope/key/v1"
)

// CipherSuite is the canonical string representation of the algorithm suite.
var CipherSuite = "X25519:XChaCha20-Poly1305:HKDF-SHA-256"
