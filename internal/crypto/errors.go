package crypto

import "errors"

var (
	// ErrInvalidSeedSize is returned when the seed is not exactly 32 bytes.
	ErrInvalidSeedSize = errors.New("invalid seed size")

	// ErrInvalidPrivateKeySize is returned when the private key size is invalid.
	ErrInvalidPrivateKeySize = errors.New("invalid private key size")

	// ErrInvalidPublicKeySize is returned when the public key size is invalid.
	ErrInvalidPublicKeySize = errors.New("invalid public key size")

	// ErrInvalidKeySize is returned when the symmetric key size is invalid.
	ErrInvalidKeySize = errors.New("invalid key size")

	// ErrInvalidNonceSize is returned when the nonce size is invalid.
	ErrInvalidNonceSize = errors.New("invalid nonce size")

	// ErrLowOrderPoint is returned when the X25519 key agreement produces
	// the all-zero shared secret (a low-order peer public key).
	ErrLowOrderPoint = errors.New("low-order public key")

	// ErrAuthenticationFailed is returned when the AEAD tag does not verify.
	ErrAuthenticationFailed = errors.New("authentication failed")
)
