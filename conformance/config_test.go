package conformance

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	want := []string{"swift", "ts", "python", "rust", "kotlin", "go"}
	if !reflect.DeepEqual(cfg.Implementations, want) {
		t.Errorf("Implementations = %v, want %v", cfg.Implementations, want)
	}
	if cfg.SenderSeed != SenderSeedHex {
		t.Errorf("SenderSeed = %q, want the well-known seed", cfg.SenderSeed)
	}

	if _, err := cfg.Harness(); err != nil {
		t.Errorf("Harness() error = %v", err)
	}
}

func TestLoadConfig_File(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "conformance.yaml")
	content := "implementations:\n  - rust\n  - go\nbaseDir: /tmp/envelopes\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if !reflect.DeepEqual(cfg.Implementations, []string{"rust", "go"}) {
		t.Errorf("Implementations = %v, want [rust go]", cfg.Implementations)
	}
	if cfg.BaseDir != "/tmp/envelopes" {
		t.Errorf("BaseDir = %q, want /tmp/envelopes", cfg.BaseDir)
	}
	// Unset fields keep their defaults.
	if cfg.SenderSeed != SenderSeedHex {
		t.Errorf("SenderSeed = %q, want default", cfg.SenderSeed)
	}
}

func TestLoadConfig_MissingDefaultFileIsFine(t *testing.T) {
	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if len(cfg.Implementations) == 0 {
		t.Error("Implementations is empty")
	}
}

func TestLoadConfig_MissingExplicitFileIsError(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("LoadConfig() error = nil for a missing explicit file")
	}
}

func TestLoadConfig_BadYAMLIsError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("implementations: [unterminated"), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Error("LoadConfig() error = nil for invalid YAML")
	}
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("ALGOCHAT_IMPLEMENTATIONS", "rust, kotlin")
	t.Setenv("ALGOCHAT_BASE_DIR", "/data/out")

	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if !reflect.DeepEqual(cfg.Implementations, []string{"rust", "kotlin"}) {
		t.Errorf("Implementations = %v, want [rust kotlin]", cfg.Implementations)
	}
	if cfg.BaseDir != "/data/out" {
		t.Errorf("BaseDir = %q, want /data/out", cfg.BaseDir)
	}
}

func TestConfig_ImplDirAndSources(t *testing.T) {
	cfg := DefaultConfig()
	cfg.BaseDir = "/work"
	cfg.Implementations = []string{"swift", "ts"}

	if got := cfg.ImplDir("swift"); got != filepath.Join("/work", "test-envelopes-swift") {
		t.Errorf("ImplDir() = %q", got)
	}

	sources := cfg.Sources()
	if len(sources) != 2 {
		t.Fatalf("Sources() returned %d sources, want 2", len(sources))
	}
	if sources[1].Impl != "ts" {
		t.Errorf("sources[1].Impl = %q, want ts", sources[1].Impl)
	}
	dirStore, ok := sources[0].Store.(*DirStore)
	if !ok {
		t.Fatalf("sources[0].Store is %T, want *DirStore", sources[0].Store)
	}
	if dirStore.Dir() != cfg.ImplDir("swift") {
		t.Errorf("store dir = %q, want %q", dirStore.Dir(), cfg.ImplDir("swift"))
	}
}

func TestConfig_HarnessSeedOverride(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SenderSeed = "ff00000000000000000000000000000000000000000000000000000000000001"

	h, err := cfg.Harness()
	if err != nil {
		t.Fatalf("Harness() error = %v", err)
	}

	standard, err := DefaultHarness()
	if err != nil {
		t.Fatalf("DefaultHarness() error = %v", err)
	}

	if h.Sender().Address() == standard.Sender().Address() {
		t.Error("overridden sender seed produced the default identity")
	}
	if h.Recipient().Address() != standard.Recipient().Address() {
		t.Error("recipient identity changed without an override")
	}
}

func TestConfig_HarnessBadSeed(t *testing.T) {
	cfg := DefaultConfig()
	cfg.RecipientSeed = "short"

	if _, err := cfg.Harness(); err == nil {
		t.Error("Harness() error = nil for a bad seed")
	}
}
