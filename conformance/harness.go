package conformance

import (
	"errors"
	"fmt"

	algochat "github.com/algochat/algochat-go"
)

// errNotChatMessage is recorded when stored bytes fail the envelope sniff.
var errNotChatMessage = errors.New("not recognized as a chat envelope")

// Well-known seeds used by every implementation's conformance run, so
// that envelopes exported by one implementation decrypt under any
// other's recipient keys.
const (
	// SenderSeedHex is the fixed sender identity seed.
	SenderSeedHex = "0000000000000000000000000000000000000000000000000000000000000001"
	// RecipientSeedHex is the fixed recipient identity seed.
	RecipientSeedHex = "0000000000000000000000000000000000000000000000000000000000000002"
)

// Harness drives the envelope protocol against a corpus: exporting
// encoded envelopes to a store and verifying stores produced by other
// implementations. It holds only the two fixed identities and is safe
// for concurrent use.
type Harness struct {
	sender    *algochat.KeyPair
	recipient *algochat.KeyPair
}

// NewHarness builds a harness from explicit sender and recipient seeds.
func NewHarness(senderSeed, recipientSeed []byte) (*Harness, error) {
	sender, err := algochat.DeriveKeys(senderSeed)
	if err != nil {
		return nil, fmt.Errorf("derive sender keys: %w", err)
	}
	recipient, err := algochat.DeriveKeys(recipientSeed)
	if err != nil {
		return nil, fmt.Errorf("derive recipient keys: %w", err)
	}
	return &Harness{sender: sender, recipient: recipient}, nil
}

// DefaultHarness builds a harness from the well-known conformance seeds.
func DefaultHarness() (*Harness, error) {
	senderSeed, err := algochat.SeedFromHex(SenderSeedHex)
	if err != nil {
		return nil, err
	}
	recipientSeed, err := algochat.SeedFromHex(RecipientSeedHex)
	if err != nil {
		return nil, err
	}
	return NewHarness(senderSeed, recipientSeed)
}

// Sender returns the sender identity.
func (h *Harness) Sender() *algochat.KeyPair { return h.sender }

// Recipient returns the recipient identity.
func (h *Harness) Recipient() *algochat.KeyPair { return h.recipient }

// Export encrypts and encodes every corpus entry under the fixed
// sender/recipient configuration and persists the result in store,
// addressable by case name.
//
// A single entry's failure is recorded in the report and does not
// abort the remaining entries.
func (h *Harness) Export(store Store, corpus Corpus) *ExportReport {
	report := &ExportReport{}

	for _, entry := range corpus {
		err := h.exportCase(store, entry)
		report.Results = append(report.Results, CaseResult{Name: entry.Name, Err: err})
	}
	return report
}

func (h *Harness) exportCase(store Store, entry Case) error {
	env, err := algochat.EncryptMessage(entry.Text, h.sender.PrivateKey, h.sender.PublicKey, h.recipient.PublicKey)
	if err != nil {
		return fmt.Errorf("encrypt: %w", err)
	}

	encoded, err := algochat.EncodeEnvelope(env)
	if err != nil {
		return fmt.Errorf("encode: %w", err)
	}

	if err := store.Put(entry.Name, encoded); err != nil {
		return fmt.Errorf("store: %w", err)
	}
	return nil
}

// Source names one candidate implementation's stored output.
type Source struct {
	// Impl is the implementation identifier (e.g. "swift", "rust").
	Impl string
	// Store holds that implementation's exported envelopes.
	Store Store
}

// Verify sweeps every source and corpus entry: sniff, decode, decrypt,
// and compare the recovered text against the corpus ground truth.
//
// Failures are collected, never aborting the sweep. Missing data — an
// absent implementation store or an absent case — counts as skipped,
// distinguishing absence from a real failure.
func (h *Harness) Verify(sources []Source, corpus Corpus) *Report {
	report := &Report{}

	for _, src := range sources {
		report.Impls = append(report.Impls, h.verifySource(src, corpus))
	}
	return report
}

func (h *Harness) verifySource(src Source, corpus Corpus) ImplReport {
	impl := ImplReport{Impl: src.Impl}

	if probe, ok := src.Store.(interface{ Exists() bool }); ok && !probe.Exists() {
		impl.Missing = true
		return impl
	}

	for _, entry := range corpus {
		encoded, found, err := src.Store.Get(entry.Name)
		if err != nil {
			impl.fail(entry.Name, err)
			continue
		}
		if !found {
			impl.Skipped++
			continue
		}

		if err := h.verifyCase(encoded, entry.Text); err != nil {
			impl.fail(entry.Name, err)
			continue
		}
		impl.Passed++
	}
	return impl
}

func (h *Harness) verifyCase(encoded []byte, want string) error {
	if !algochat.IsChatMessage(encoded) {
		return errNotChatMessage
	}

	env, err := algochat.DecodeEnvelope(encoded)
	if err != nil {
		return fmt.Errorf("decode: %w", err)
	}

	result, err := algochat.DecryptMessage(env, h.recipient.PrivateKey, h.recipient.PublicKey)
	if err != nil {
		return fmt.Errorf("decrypt: %w", err)
	}

	if result.Text != want {
		return fmt.Errorf("plaintext mismatch: got %d bytes, want %d bytes", len(result.Text), len(want))
	}
	return nil
}
