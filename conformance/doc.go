// Package conformance verifies byte-level interoperability of AlgoChat
// envelope implementations.
//
// Every implementation under test exports, for a fixed corpus of
// messages and a fixed sender/recipient key configuration, one encoded
// envelope per corpus case into its own output directory. Any
// implementation's verifier must then be able to sniff, decode, and
// decrypt every other implementation's envelopes and recover the
// corpus text exactly.
//
// The package separates the sweep algorithm from persistence through
// the [Store] abstraction: [DirStore] implements the shared on-disk
// hex-file format, [MemStore] backs tests. Missing stores and missing
// cases are reported as skipped, never as failures, so an absent
// implementation cannot mask a real regression in a present one.
package conformance
