package algochat

import "errors"

// Sentinel errors for errors.Is() checks
var (
	// ErrInvalidSeedLength is returned when a seed is not exactly 32 bytes.
	ErrInvalidSeedLength = errors.New("invalid seed length")

	// ErrInvalidKeyLength is returned when a private or public key is not
	// exactly 32 bytes.
	ErrInvalidKeyLength = errors.New("invalid key length")

	// ErrInvalidMnemonic is returned when a mnemonic phrase fails BIP-39
	// validation.
	ErrInvalidMnemonic = errors.New("invalid mnemonic")

	// ErrPayloadTooLarge is returned when a message exceeds the maximum
	// plaintext size at encryption time. Messages are rejected, never
	// truncated.
	ErrPayloadTooLarge = errors.New("payload too large")

	// ErrTruncated is returned when an encoded envelope is shorter than
	// the fixed-width header.
	ErrTruncated = errors.New("envelope truncated")

	// ErrUnsupportedVersion is returned when the envelope version tag is
	// not recognized.
	ErrUnsupportedVersion = errors.New("unsupported envelope version")

	// ErrMalformed is returned for any structural inconsistency in an
	// envelope other than truncation or an unknown version.
	ErrMalformed = errors.New("malformed envelope")

	// ErrAuthenticationFailed is returned when the authentication tag does
	// not verify: tampered ciphertext, wrong keys, or a corrupted envelope.
	ErrAuthenticationFailed = errors.New("authentication failed")

	// ErrInvalidUTF8 is returned when decrypted bytes are not valid UTF-8
	// text.
	ErrInvalidUTF8 = errors.New("plaintext is not valid UTF-8")
)
