package algochat

import (
	"fmt"

	"github.com/algochat/algochat-go/internal/crypto"
)

const (
	// ProtocolVersion is the current envelope wire-format version.
	ProtocolVersion = 1

	// NonceSize is the size of the envelope nonce in bytes.
	NonceSize = crypto.NonceSize
	// TagSize is the size of the authentication tag appended to the
	// ciphertext, in bytes.
	TagSize = crypto.TagSize

	// HeaderSize is the size of the fixed-width envelope prefix:
	// version (1) + sender public key (32) + nonce (24).
	HeaderSize = 1 + PublicKeySize + NonceSize

	// MaxPayloadSize is the maximum UTF-8 plaintext size in bytes,
	// calibrated so an encoded envelope fits a transaction note field.
	MaxPayloadSize = 882

	// MinEnvelopeSize is the smallest valid encoded envelope: the fixed
	// header plus the tag of an empty ciphertext.
	MinEnvelopeSize = HeaderSize + TagSize

	// MaxEnvelopeSize is the largest valid encoded envelope.
	MaxEnvelopeSize = HeaderSize + MaxPayloadSize + TagSize
)

// Envelope is the logical structure of an encrypted chat message before
// canonical encoding.
type Envelope struct {
	// Version is the wire-format version tag.
	Version uint8
	// SenderKey is the sender's X25519 public key (32 bytes).
	SenderKey []byte
	// Nonce is the XChaCha20-Poly1305 nonce (24 bytes), fresh per message.
	Nonce []byte
	// Ciphertext is the encrypted message including the 16-byte tag.
	Ciphertext []byte
}

// EncodeEnvelope serializes an envelope to its canonical byte layout:
//
//	[version:1][senderKey:32][nonce:24][ciphertext+tag:N]
//
// All fields before the ciphertext are fixed-width, so the ciphertext
// length is implicit from the total buffer length and no explicit
// length field is carried. Encoding is deterministic; for every valid
// envelope, DecodeEnvelope(EncodeEnvelope(e)) == e.
func EncodeEnvelope(env *Envelope) ([]byte, error) {
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
	if len(env.Ciphertext) > MaxPayloadSize+TagSize {
		return nil, fmt.Errorf("%w: ciphertext is %d bytes, maximum is %d", ErrMalformed, len(env.Ciphertext), MaxPayloadSize+TagSize)
	}

	encoded := make([]byte, 0, HeaderSize+len(env.Ciphertext))
	encoded = append(encoded, env.Version)
	encoded = append(encoded, env.SenderKey...)
	encoded = append(encoded, env.Nonce...)
	encoded = append(encoded, env.Ciphertext...)
	return encoded, nil
}

// DecodeEnvelope parses a canonical encoded envelope.
//
// It fails with ErrTruncated if the buffer is shorter than the fixed
// header, ErrUnsupportedVersion if the version tag is unknown, and
// ErrMalformed for any other structural inconsistency. The input buffer
// is never retained; the returned envelope owns its field slices.
func DecodeEnvelope(data []byte) (*Envelope, error) {
	if len(data) < HeaderSize {
		return nil, fmt.Errorf("%w: got %d bytes, need at least %d", ErrTruncated, len(data), HeaderSize)
	}

	version := data[0]
	if version != ProtocolVersion {
		return nil, fmt.Errorf("%w: version %d", ErrUnsupportedVersion, version)
	}

	ciphertext := data[HeaderSize:]
	if len(ciphertext) < TagSize {
		return nil, fmt.Errorf("%w: ciphertext is %d bytes, shorter than the %d-byte tag", ErrMalformed, len(ciphertext), TagSize)
	}
	if len(ciphertext) > MaxPayloadSize+TagSize {
		return nil, fmt.Errorf("%w: ciphertext is %d bytes, maximum is %d", ErrMalformed, len(ciphertext), MaxPayloadSize+TagSize)
	}

	env := &Envelope{
		Version:    version,
		SenderKey:  append([]byte(nil), data[1:1+PublicKeySize]...),
		Nonce:      append([]byte(nil), data[1+PublicKeySize:HeaderSize]...),
		Ciphertext: append([]byte(nil), ciphertext...),
	}
	return env, nil
}

// IsChatMessage reports whether data plausibly holds an encoded chat
// envelope. It checks only the fixed-width prefix: minimum length and
// version tag. It performs no cryptographic verification and returns
// false, never an error, on arbitrary input. Use it to route envelope
// bytes cheaply before committing to asymmetric operations.
func IsChatMessage(data []byte) bool {
	if len(data) < MinEnvelopeSize || len(data) > MaxEnvelopeSize {
		return false
	}
	return data[0] == ProtocolVersion
}
