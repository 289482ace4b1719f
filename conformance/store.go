package conformance

import (
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Store is a key-value abstraction over per-implementation envelope
// storage: case name to raw encoded envelope bytes. It decouples the
// conformance sweep from the concrete persistence mechanism.
type Store interface {
	// Put stores the encoded envelope for a case, replacing any
	// previous value.
	Put(name string, data []byte) error
	// Get retrieves the encoded envelope for a case. The boolean is
	// false when no data exists for the case; that is absence, not an
	// error.
	Get(name string) ([]byte, bool, error)
}

// DirStore persists envelopes as one hex file per case in a directory,
// the on-disk format every implementation under test shares: the file
// <name>.hex holds the encoded envelope as a hexadecimal string.
// Lowercase hex is written; either case is accepted on read.
type DirStore struct {
	dir string
}

// NewDirStore returns a DirStore rooted at dir. The directory is
// created on the first Put, not here, so a DirStore over a missing
// directory is valid for reads (it simply holds nothing).
func NewDirStore(dir string) *DirStore {
	return &DirStore{dir: dir}
}

// Dir returns the directory this store reads and writes.
func (s *DirStore) Dir() string {
	return s.dir
}

// Exists reports whether the store directory is present. The harness
// uses this to tell a missing implementation apart from one that
// exported nothing.
func (s *DirStore) Exists() bool {
	info, err := os.Stat(s.dir)
	return err == nil && info.IsDir()
}

// Put writes data as <name>.hex under the store directory.
func (s *DirStore) Put(name string, data []byte) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create store directory: %w", err)
	}

	path := filepath.Join(s.dir, name+".hex")
	if err := os.WriteFile(path, []byte(hex.EncodeToString(data)), 0o644); err != nil {
		return fmt.Errorf("write envelope %q: %w", name, err)
	}
	return nil
}

// Get reads and decodes <name>.hex. A missing file or directory is
// reported as absent, not as an error; a file that exists but does not
// parse as hex is an error.
func (s *DirStore) Get(name string) ([]byte, bool, error) {
	raw, err := os.ReadFile(filepath.Join(s.dir, name+".hex"))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("read envelope %q: %w", name, err)
	}

	data, err := hex.DecodeString(strings.TrimSpace(string(raw)))
	if err != nil {
		return nil, false, fmt.Errorf("decode envelope %q hex: %w", name, err)
	}
	return data, true, nil
}

// MemStore is an in-memory Store for tests.
type MemStore struct {
	envelopes map[string][]byte
}

// NewMemStore returns an empty MemStore.
func NewMemStore() *MemStore {
	return &MemStore{envelopes: make(map[string][]byte)}
}

// Put stores a copy of data under name.
func (s *MemStore) Put(name string, data []byte) error {
	s.envelopes[name] = append([]byte(nil), data...)
	return nil
}

// Get returns a copy of the stored envelope, if any.
func (s *MemStore) Get(name string) ([]byte, bool, error) {
	data, ok := s.envelopes[name]
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), data...), true, nil
}
