package algochat

import (
	"encoding/hex"
	"fmt"

	"github.com/mr-tron/base58"
	"github.com/tyler-smith/go-bip39"

	"github.com/algochat/algochat-go/internal/crypto"
)

const (
	// SeedSize is the size of an identity seed in bytes.
	SeedSize = crypto.SeedSize
	// PrivateKeySize is the size of a private key in bytes.
	PrivateKeySize = crypto.PrivateKeySize
	// PublicKeySize is the size of a public key in bytes.
	PublicKeySize = crypto.PublicKeySize
)

// KeyPair holds an X25519 identity derived from a seed.
//
// The private key must be kept secret and is never serialized by this
// package. The public key is safe to share and is embedded in every
// envelope the identity sends.
type KeyPair struct {
	// PrivateKey is the X25519 private scalar (32 bytes).
	PrivateKey []byte
	// PublicKey is the corresponding X25519 public key (32 bytes).
	PublicKey []byte
}

// DeriveKeys derives a stable keypair from a 32-byte seed.
//
// The derivation is deterministic: two calls with the same seed yield
// bit-identical keypairs, across processes and across implementations
// of the protocol. The only failure is a seed of the wrong length.
func DeriveKeys(seed []byte) (*KeyPair, error) {
	if len(seed) != SeedSize {
		return nil, fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidSeedLength, len(seed), SeedSize)
	}

	privateKey, err := crypto.DerivePrivateKey(seed)
	if err != nil {
		return nil, fmt.Errorf("derive private key: %w", err)
	}

	publicKey, err := crypto.PublicFromPrivate(privateKey)
	if err != nil {
		return nil, fmt.Errorf("derive public key: %w", err)
	}

	return &KeyPair{
		PrivateKey: privateKey,
		PublicKey:  publicKey,
	}, nil
}

// SeedFromHex decodes a 64-character hexadecimal seed string.
// Both lowercase and uppercase digits are accepted.
func SeedFromHex(s string) ([]byte, error) {
	seed, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("decode seed hex: %w", err)
	}
	if len(seed) != SeedSize {
		return nil, fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidSeedLength, len(seed), SeedSize)
	}
	return seed, nil
}

// NewMnemonic generates a fresh 24-word BIP-39 mnemonic from 256 bits
// of CSPRNG entropy. The mnemonic is the human-portable form of an
// identity; feed it to SeedFromMnemonic to obtain the seed.
func NewMnemonic() (string, error) {
	entropy, err := bip39.NewEntropy(256)
	if err != nil {
		return "", fmt.Errorf("generate entropy: %w", err)
	}
	mnemonic, err := bip39.NewMnemonic(entropy)
	if err != nil {
		return "", fmt.Errorf("generate mnemonic: %w", err)
	}
	return mnemonic, nil
}

// SeedFromMnemonic derives the 32-byte identity seed from a BIP-39
// mnemonic phrase. The same phrase always yields the same seed.
func SeedFromMnemonic(mnemonic string) ([]byte, error) {
	if !bip39.IsMnemonicValid(mnemonic) {
		return nil, ErrInvalidMnemonic
	}
	seedBytes := bip39.NewSeed(mnemonic, "")
	return seedBytes[:SeedSize], nil
}

// Address returns the base58 rendering of the public key, used as a
// compact chat address in reports and logs.
func (k *KeyPair) Address() string {
	return base58.Encode(k.PublicKey)
}
