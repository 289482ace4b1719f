package conformance

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDirStore_PutGet(t *testing.T) {
	store := NewDirStore(filepath.Join(t.TempDir(), "test-envelopes-go"))
	data := []byte{0x01, 0xAB, 0xCD, 0xEF}

	if err := store.Put("greeting", data); err != nil {
		t.Fatalf("Put() error = %v", err)
	}

	got, found, err := store.Get("greeting")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if !found {
		t.Fatal("Get() found = false after Put")
	}
	if !bytes.Equal(got, data) {
		t.Errorf("Get() = %x, want %x", got, data)
	}
}

func TestDirStore_FileFormat(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "test-envelopes-go")
	store := NewDirStore(dir)

	if err := store.Put("greeting", []byte{0xAB, 0xCD}); err != nil {
		t.Fatalf("Put() error = %v", err)
	}

	raw, err := os.ReadFile(filepath.Join(dir, "greeting.hex"))
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if string(raw) != "abcd" {
		t.Errorf("file content = %q, want %q (lowercase hex, no trailing newline required)", raw, "abcd")
	}
}

func TestDirStore_ReadsUppercaseAndWhitespace(t *testing.T) {
	dir := t.TempDir()
	store := NewDirStore(dir)

	if err := os.WriteFile(filepath.Join(dir, "shouty.hex"), []byte("ABCDEF\n"), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	got, found, err := store.Get("shouty")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if !found {
		t.Fatal("Get() found = false")
	}
	if !bytes.Equal(got, []byte{0xAB, 0xCD, 0xEF}) {
		t.Errorf("Get() = %x, want abcdef", got)
	}
}

func TestDirStore_MissingIsAbsentNotError(t *testing.T) {
	store := NewDirStore(filepath.Join(t.TempDir(), "never-created"))

	_, found, err := store.Get("anything")
	if err != nil {
		t.Errorf("Get() error = %v, want nil for missing data", err)
	}
	if found {
		t.Error("Get() found = true for missing data")
	}
}

func TestDirStore_BadHexIsError(t *testing.T) {
	dir := t.TempDir()
	store := NewDirStore(dir)

	if err := os.WriteFile(filepath.Join(dir, "junk.hex"), []byte("not hex at all"), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	if _, _, err := store.Get("junk"); err == nil {
		t.Error("Get() error = nil for a corrupt hex file")
	}
}

func TestDirStore_Exists(t *testing.T) {
	base := t.TempDir()

	missing := NewDirStore(filepath.Join(base, "missing"))
	if missing.Exists() {
		t.Error("Exists() = true for a missing directory")
	}

	present := NewDirStore(filepath.Join(base, "present"))
	if err := present.Put("case", []byte{0x01}); err != nil {
		t.Fatalf("Put() error = %v", err)
	}
	if !present.Exists() {
		t.Error("Exists() = false after Put created the directory")
	}
}

func TestMemStore(t *testing.T) {
	store := NewMemStore()

	if _, found, err := store.Get("missing"); err != nil || found {
		t.Errorf("Get(missing) = found %v, err %v; want false, nil", found, err)
	}

	data := []byte("payload")
	if err := store.Put("case", data); err != nil {
		t.Fatalf("Put() error = %v", err)
	}

	got, found, err := store.Get("case")
	if err != nil || !found {
		t.Fatalf("Get() = found %v, err %v", found, err)
	}
	if !bytes.Equal(got, data) {
		t.Errorf("Get() = %q, want %q", got, data)
	}

	// The store holds copies, not aliases.
	got[0] = 'X'
	again, _, _ := store.Get("case")
	if !bytes.Equal(again, data) {
		t.Error("MemStore aliases caller buffers")
	}
}

func TestDirStore_HexRoundTripIsEvenLength(t *testing.T) {
	dir := t.TempDir()
	store := NewDirStore(dir)

	if err := store.Put("case", bytes.Repeat([]byte{0x5A}, 73)); err != nil {
		t.Fatalf("Put() error = %v", err)
	}

	raw, err := os.ReadFile(filepath.Join(dir, "case.hex"))
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	content := strings.TrimSpace(string(raw))
	if len(content)%2 != 0 {
		t.Errorf("hex file length %d is odd", len(content))
	}
}
