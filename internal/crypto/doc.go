// Package crypto provides the cryptographic primitives composed by the
// AlgoChat envelope protocol.
//
// # Algorithm Suite
//
// The package uses the following cryptographic algorithms:
//
//   - X25519 (RFC 7748): Elliptic-curve Diffie-Hellman key agreement
//     between the sender's private scalar and the recipient's public key.
//
//   - XChaCha20-Poly1305: Authenticated encryption with associated data
//     (AEAD) for encrypting message text. The 24-byte nonce makes random
//     nonce generation safe under a long-lived per-pair key.
//
//   - HKDF-SHA-256 (RFC 5869): Key derivation with domain separation,
//     used both for deriving the identity scalar from a seed and for
//     deriving the envelope key from the X25519 shared secret.
//
// # Determinism
//
// Every derivation in this package is a pure function of its inputs.
// Independent implementations of the protocol must reproduce these
// derivations byte for byte; the HKDF info strings in this package are
// part of the wire protocol and must never change within a version.
//
// # Nonce Discipline
//
// The envelope key is stable for a given sender/recipient pair, so
// [GenerateNonce] must be called once per message and its output never
// reused. Nonces always come from the process CSPRNG; the reader is
// overridable only through [SetRandReaderForTesting].
package crypto
