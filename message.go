package algochat

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/algochat/algochat-go/internal/crypto"
)

// DecryptResult is the outcome of a successful authenticated decrypt.
// Its existence is proof that the ciphertext was produced by the holder
// of the sender key and has not been altered.
type DecryptResult struct {
	// Text is the recovered plaintext message.
	Text string
	// SenderKey is the sender's public key as verified by the
	// authentication tag.
	SenderKey []byte
}

// encryptConfig holds configuration for message encryption.
type encryptConfig struct {
	nonce []byte
}

// EncryptOption configures message encryption.
type EncryptOption func(*encryptConfig)

// WithNonce sets an explicit 24-byte nonce instead of a random one.
// This is intended for tests and known-answer vectors only; reusing a
// nonce under the same key pair destroys confidentiality.
func WithNonce(nonce []byte) EncryptOption {
	return func(c *encryptConfig) {
		c.nonce = nonce
	}
}

// EncryptMessage builds an envelope carrying message, encrypted from
// the sender identity to the recipient public key.
//
// The encryption process:
//  1. X25519 key agreement between senderPrivate and recipientPublic
//  2. HKDF-SHA-256 derivation of the XChaCha20-Poly1305 envelope key
//  3. AEAD seal under a fresh random nonce, with the version byte and
//     both public keys bound as associated data
//
// Encryption is probabilistic: the same message encrypted twice under
// the same keys produces different ciphertext. Messages whose UTF-8
// form exceeds MaxPayloadSize are rejected with ErrPayloadTooLarge,
// never truncated.
func EncryptMessage(message string, senderPrivate, senderPublic, recipientPublic []byte, opts ...EncryptOption) (*Envelope, error) {
	cfg := encryptConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	if err := checkKeyLength("sender private key", senderPrivate, PrivateKeySize); err != nil {
		return nil, err
	}
	if err := checkKeyLength("sender public key", senderPublic, PublicKeySize); err != nil {
		return nil, err
	}
	if err := checkKeyLength("recipient public key", recipientPublic, PublicKeySize); err != nil {
		return nil, err
	}
	if cfg.nonce != nil && len(cfg.nonce) != NonceSize {
		return nil, fmt.Errorf("%w: nonce is %d bytes, want %d", ErrMalformed, len(cfg.nonce), NonceSize)
	}

	plaintext := []byte(message)
	if len(plaintext) > MaxPayloadSize {
		return nil, fmt.Errorf("%w: message is %d bytes, maximum is %d", ErrPayloadTooLarge, len(plaintext), MaxPayloadSize)
	}

	key, err := crypto.EnvelopeKey(senderPrivate, recipientPublic)
	if err != nil {
		return nil, fmt.Errorf("derive envelope key: %w", err)
	}

	nonce := cfg.nonce
	if nonce == nil {
		nonce, err = crypto.GenerateNonce()
		if err != nil {
			return nil, err
		}
	}

	aad := envelopeAAD(ProtocolVersion, senderPublic, recipientPublic)
	ciphertext, err := crypto.Seal(key, nonce, plaintext, aad)
	if err != nil {
		return nil, fmt.Errorf("seal message: %w", err)
	}

	return &Envelope{
		Version:    ProtocolVersion,
		SenderKey:  append([]byte(nil), senderPublic...),
		Nonce:      nonce,
		Ciphertext: ciphertext,
	}, nil
}

// DecryptMessage authenticates and decrypts an envelope addressed to
// the recipient identity.
//
// The shared key is recomputed from recipientPrivate and the sender
// public key embedded in the envelope. A tag failure of any kind —
// tampered ciphertext, substituted sender key, wrong recipient keys —
// surfaces as ErrAuthenticationFailed, and no partial plaintext is
// ever returned. Decrypted bytes that are not valid UTF-8 fail with
// ErrInvalidUTF8.
func DecryptMessage(env *Envelope, recipientPrivate, recipientPublic []byte) (*DecryptResult, error) {
	if env == nil {
		return nil, fmt.Errorf("%w: nil envelope", ErrMalformed)
	}
	if env.Version != ProtocolVersion {
		return nil, fmt.Errorf("%w: version %d", ErrUnsupportedVersion, env.Version)
	}
	if len(env.SenderKey) != PublicKeySize {
		return nil, fmt.Errorf("%w: sender key is %d bytes, want %d", ErrMalformed, len(env.SenderKey), PublicKeySize)
	}
	if len(env.Nonce) != NonceSize {
		return nil, fmt.Errorf("%w: nonce is %d bytes, want %d", ErrMalformed, len(env.Nonce), NonceSize)
	}
	if len(env.Ciphertext) < TagSize {
		return nil, fmt.Errorf("%w: ciphertext is %d bytes, shorter than the %d-byte tag", ErrMalformed, len(env.Ciphertext), TagSize)
	}
	if err := checkKeyLength("recipient private key", recipientPrivate, PrivateKeySize); err != nil {
		return nil, err
	}
	if err := checkKeyLength("recipient public key", recipientPublic, PublicKeySize); err != nil {
		return nil, err
	}

	key, err := crypto.EnvelopeKey(recipientPrivate, env.SenderKey)
	if err != nil {
		// A low-order sender key can never authenticate.
		if errors.Is(err, crypto.ErrLowOrderPoint) {
			return nil, ErrAuthenticationFailed
		}
		return nil, fmt.Errorf("derive envelope key: %w", err)
	}

	aad := envelopeAAD(env.Version, env.SenderKey, recipientPublic)
	plaintext, err := crypto.Open(key, env.Nonce, env.Ciphertext, aad)
	if err != nil {
		if errors.Is(err, crypto.ErrAuthenticationFailed) {
			return nil, ErrAuthenticationFailed
		}
		return nil, fmt.Errorf("open message: %w", err)
	}

	if !utf8.Valid(plaintext) {
		return nil, ErrInvalidUTF8
	}

	return &DecryptResult{
		Text:      string(plaintext),
		SenderKey: append([]byte(nil), env.SenderKey...),
	}, nil
}

// envelopeAAD builds the associated data binding the version byte and
// both endpoint public keys into the authentication tag. A substituted
// sender or recipient key changes the AAD and fails verification.
func envelopeAAD(version uint8, senderPublic, recipientPublic []byte) []byte {
	aad := make([]byte, 0, 1+2*PublicKeySize)
	aad = append(aad, version)
	aad = append(aad, senderPublic...)
	aad = append(aad, recipientPublic...)
	return aad
}

func checkKeyLength(name string, key []byte, size int) error {
	if len(key) != size {
		return fmt.Errorf("%w: %s is %d bytes, want %d", ErrInvalidKeyLength, name, len(key), size)
	}
	return nil
}
