package crypto

import (
	"bytes"
	"errors"
	"testing"
)

func testKeyAndNonce(t *testing.T) ([]byte, []byte) {
	t.Helper()
	key := make([]byte, EnvelopeKeySize)
	for i := range key {
		key[i] = byte(i)
	}
	nonce := make([]byte, NonceSize)
	for i := range nonce {
		nonce[i] = byte(0xA0 + i)
	}
	return key, nonce
}

func TestSealOpen_RoundTrip(t *testing.T) {
	key, nonce := testKeyAndNonce(t)
	aad := []byte("associated data")

	tests := []struct {
		name      string
		plaintext string
	}{
		{"empty", ""},
		{"short", "X"},
		{"text", "hello, world"},
		{"unicode", "Привет мир 👋"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ciphertext, err := Seal(key, nonce, []byte(tt.plaintext), aad)
			if err != nil {
				t.Fatalf("Seal() error = %v", err)
			}
			if len(ciphertext) != len(tt.plaintext)+TagSize {
				t.Errorf("ciphertext size = %d, want %d", len(ciphertext), len(tt.plaintext)+TagSize)
			}

			plaintext, err := Open(key, nonce, ciphertext, aad)
			if err != nil {
				t.Fatalf("Open() error = %v", err)
			}
			if !bytes.Equal(plaintext, []byte(tt.plaintext)) {
				t.Errorf("plaintext = %q, want %q", plaintext, tt.plaintext)
			}
		})
	}
}

func TestOpen_Tampered(t *testing.T) {
	key, nonce := testKeyAndNonce(t)
	aad := []byte("aad")

	ciphertext, err := Seal(key, nonce, []byte("secret"), aad)
	if err != nil {
		t.Fatalf("Seal() error = %v", err)
	}

	// Every single-bit flip anywhere in the ciphertext or tag must fail.
	for i := 0; i < len(ciphertext); i++ {
		tampered := append([]byte(nil), ciphertext...)
		tampered[i] ^= 0x01
		if _, err := Open(key, nonce, tampered, aad); !errors.Is(err, ErrAuthenticationFailed) {
			t.Fatalf("byte %d: error = %v, want ErrAuthenticationFailed", i, err)
		}
	}
}

func TestOpen_WrongAAD(t *testing.T) {
	key, nonce := testKeyAndNonce(t)

	ciphertext, err := Seal(key, nonce, []byte("secret"), []byte("right"))
	if err != nil {
		t.Fatalf("Seal() error = %v", err)
	}

	if _, err := Open(key, nonce, ciphertext, []byte("wrong")); !errors.Is(err, ErrAuthenticationFailed) {
		t.Errorf("error = %v, want ErrAuthenticationFailed", err)
	}
}

func TestSeal_InvalidSizes(t *testing.T) {
	key, nonce := testKeyAndNonce(t)

	if _, err := Seal(key[:16], nonce, nil, nil); !errors.Is(err, ErrInvalidKeySize) {
		t.Errorf("short key: error = %v, want ErrInvalidKeySize", err)
	}
	if _, err := Seal(key, nonce[:12], nil, nil); !errors.Is(err, ErrInvalidNonceSize) {
		t.Errorf("short nonce: error = %v, want ErrInvalidNonceSize", err)
	}
}

func TestGenerateNonce(t *testing.T) {
	n1, err := GenerateNonce()
	if err != nil {
		t.Fatalf("GenerateNonce() error = %v", err)
	}
	if len(n1) != NonceSize {
		t.Errorf("nonce size = %d, want %d", len(n1), NonceSize)
	}

	n2, err := GenerateNonce()
	if err != nil {
		t.Fatalf("GenerateNonce() error = %v", err)
	}
	if bytes.Equal(n1, n2) {
		t.Error("two generated nonces are identical")
	}
}

func TestGenerateNonce_OverriddenReader(t *testing.T) {
	restore := SetRandReaderForTesting(bytes.NewReader(bytes.Repeat([]byte{0x42}, NonceSize)))
	defer restore()

	nonce, err := GenerateNonce()
	if err != nil {
		t.Fatalf("GenerateNonce() error = %v", err)
	}
	if !bytes.Equal(nonce, bytes.Repeat([]byte{0x42}, NonceSize)) {
		t.Errorf("nonce = %x, want all 0x42", nonce)
	}
}
