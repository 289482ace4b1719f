// Package algochat implements the AlgoChat envelope protocol: a
// compact, authenticated, end-to-end-encrypted message envelope sized
// to fit a blockchain transaction note field.
//
// The protocol composes X25519 key agreement, HKDF-SHA-256 key
// derivation, and XChaCha20-Poly1305 authenticated encryption into a
// canonical, versioned wire format that independent implementations
// reproduce byte for byte.
//
// Basic usage:
//
//	seed, err := algochat.SeedFromHex("00000000000000000000000000000000" +
//		"00000000000000000000000000000001")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	sender, err := algochat.DeriveKeys(seed)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	env, err := algochat.EncryptMessage("hello", sender.PrivateKey,
//	    sender.PublicKey, recipient.PublicKey)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	encoded, err := algochat.EncodeEnvelope(env)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// On the receiving side, sniff candidate bytes with [IsChatMessage],
// parse them with [DecodeEnvelope], and recover the text with
// [DecryptMessage]. A successful decrypt both proves integrity and
// identifies the sender.
//
// The protocol is stateless per message: there are no sessions, no
// ratchets, and no persistence. Every call is independent and safe to
// run concurrently.
//
// The conformance subpackage drives these operations against a fixed
// multi-lingual corpus to verify byte-exact interoperability with the
// Swift, TypeScript, Python, Rust, and Kotlin implementations.
package algochat
