package conformance

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	algochat "github.com/algochat/algochat-go"
	"gopkg.in/yaml.v3"
)

// dirPrefix is the fixed naming scheme for per-implementation output
// directories, shared by every implementation under test.
const dirPrefix = "test-envelopes-"

// Config controls a conformance sweep. Values come from defaults, an
// optional YAML file, and environment overrides, in that order.
type Config struct {
	// Implementations is the fixed, known set of implementation
	// identifiers whose output directories are checked.
	Implementations []string `yaml:"implementations"`
	// BaseDir is the directory containing the per-implementation
	// output directories. Empty means the current directory.
	BaseDir string `yaml:"baseDir"`
	// SenderSeed optionally overrides the well-known sender seed (hex).
	SenderSeed string `yaml:"senderSeed"`
	// RecipientSeed optionally overrides the well-known recipient seed (hex).
	RecipientSeed string `yaml:"recipientSeed"`
}

// DefaultConfig returns the standard sweep configuration.
func DefaultConfig() Config {
	return Config{
		Implementations: []string{"swift", "ts", "python", "rust", "kotlin", "go"},
		SenderSeed:      SenderSeedHex,
		RecipientSeed:   RecipientSeedHex,
	}
}

// LoadConfig builds a Config from defaults, then the YAML file at
// configPath (or conformance.yaml in the working directory when empty,
// if present), then ALGOCHAT_* environment overrides. A missing file
// is not an error; an unreadable or unparsable explicit file is.
func LoadConfig(configPath string) (Config, error) {
	cfg := DefaultConfig()

	explicit := configPath != ""
	if configPath == "" {
		configPath = "conformance.yaml"
	}

	data, err := os.ReadFile(configPath)
	switch {
	case err == nil:
		var parsed Config
		if err := yaml.Unmarshal(data, &parsed); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", configPath, err)
		}
		merge(&cfg, parsed)
	case explicit || !os.IsNotExist(err):
		return Config{}, fmt.Errorf("read config %s: %w", configPath, err)
	}

	applyEnvOverrides(&cfg)
	return cfg, nil
}

func merge(dst *Config, src Config) {
	if len(src.Implementations) > 0 {
		dst.Implementations = src.Implementations
	}
	if src.BaseDir != "" {
		dst.BaseDir = src.BaseDir
	}
	if src.SenderSeed != "" {
		dst.SenderSeed = src.SenderSeed
	}
	if src.RecipientSeed != "" {
		dst.RecipientSeed = src.RecipientSeed
	}
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("ALGOCHAT_IMPLEMENTATIONS"); v != "" {
		impls := strings.Split(v, ",")
		for i := range impls {
			impls[i] = strings.TrimSpace(impls[i])
		}
		cfg.Implementations = impls
	}
	if v := os.Getenv("ALGOCHAT_BASE_DIR"); v != "" {
		cfg.BaseDir = v
	}
	if v := os.Getenv("ALGOCHAT_SENDER_SEED"); v != "" {
		cfg.SenderSeed = v
	}
	if v := os.Getenv("ALGOCHAT_RECIPIENT_SEED"); v != "" {
		cfg.RecipientSeed = v
	}
}

// ImplDir returns the output directory for an implementation
// identifier, e.g. "test-envelopes-rust" under the base directory.
func (c Config) ImplDir(impl string) string {
	return filepath.Join(c.BaseDir, dirPrefix+impl)
}

// Sources returns one directory-backed source per configured
// implementation.
func (c Config) Sources() []Source {
	sources := make([]Source, 0, len(c.Implementations))
	for _, impl := range c.Implementations {
		sources = append(sources, Source{
			Impl:  impl,
			Store: NewDirStore(c.ImplDir(impl)),
		})
	}
	return sources
}

// Harness builds the harness for the configured seeds.
func (c Config) Harness() (*Harness, error) {
	senderSeed, err := seedFromHex(c.SenderSeed, "sender")
	if err != nil {
		return nil, err
	}
	recipientSeed, err := seedFromHex(c.RecipientSeed, "recipient")
	if err != nil {
		return nil, err
	}
	return NewHarness(senderSeed, recipientSeed)
}

func seedFromHex(s, role string) ([]byte, error) {
	seed, err := algochat.SeedFromHex(s)
	if err != nil {
		return nil, fmt.Errorf("%s seed: %w", role, err)
	}
	return seed, nil
}
