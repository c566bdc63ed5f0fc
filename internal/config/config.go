package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/brandonbloom/codenamize"
	toml "github.com/pelletier/go-toml/v2"
)

// Config captures the user editable defaults stored in config.toml. Zero
// values defer to the command line defaults; adjectives and join are
// pointers because zero adjectives and an empty separator are meaningful
// settings of their own.
type Config struct {
	Adjectives    *int    `toml:"adjectives"`
	MaxChars      int     `toml:"max_chars"`
	HashAlgorithm string  `toml:"hash_algorithm"`
	Join          *string `toml:"join"`
	Capitalize    bool    `toml:"capitalize"`
}

var (
	// ErrNegativeAdjectives indicates the config asks for a negative
	// adjective count.
	ErrNegativeAdjectives = errors.New("config.adjectives must be non-negative")
	// ErrUnknownAlgorithm indicates the config names a hash algorithm that
	// is not supported.
	ErrUnknownAlgorithm = errors.New("config.hash_algorithm is not a supported algorithm")
)

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{}
}

// Validate rejects settings that can never produce a codename. Character
// caps are deliberately not checked; out-of-range caps clamp at lookup
// time.
func (c Config) Validate() error {
	if c.Adjectives != nil && *c.Adjectives < 0 {
		return ErrNegativeAdjectives
	}
	if c.HashAlgorithm != "" {
		name := strings.ToLower(c.HashAlgorithm)
		if !slices.Contains(codenamize.Algorithms(), name) {
			return fmt.Errorf("%w: %s", ErrUnknownAlgorithm, c.HashAlgorithm)
		}
	}
	return nil
}

// Path returns the config file location. CODENAMIZE_CONFIG overrides the
// default of codenamize/config.toml under the user config directory.
func Path() string {
	if override := os.Getenv("CODENAMIZE_CONFIG"); override != "" {
		return override
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "codenamize", "config.toml")
}

// Load reads configuration from disk. Missing files return a default config.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return Config{}, err
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Save writes configuration to disk, creating parent directories as needed.
func Save(path string, cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	data, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0o644)
}
