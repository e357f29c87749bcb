// Package config loads corelower.toml, the project-level configuration
// this module's open questions resolved into toggles (spec.md §9),
// following the vito-dang pattern of a single TOML project file walked
// up the directory tree from a starting directory (pkg/dang's dang.toml).
// The cmd/corelower driver starts from its working directory.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config is the corelower.toml project configuration.
type Config struct {
	// KeepAssertHints keeps `assert` statements lowered to real
	// `assert_hint` applications. When false, asserts are dropped and
	// leave nothing in the lowered body — spec.md §9 Open Question (a),
	// resolved in favor of keeping them by default since a downstream
	// checker may want the hint.
	KeepAssertHints bool `toml:"keep_assert_hints"`

	// EagerWrap runs component H. Disabling it is only useful to inspect
	// the pre-wrap shape in tests; production runs always want it on.
	EagerWrap bool `toml:"eager_wrap"`
}

// Default is the configuration a run uses when no corelower.toml is
// found.
func Default() *Config {
	return &Config{KeepAssertHints: true, EagerWrap: true}
}

// Load reads a corelower.toml file from path.
func Load(path string) (*Config, error) {
	config := Default()
	if _, err := toml.DecodeFile(path, config); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return config, nil
}

// Find searches for corelower.toml starting from dir and walking up to
// parent directories, stopping at a .git boundary. Returns Default() with
// an empty path if none is found.
func Find(dir string) (string, *Config, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", nil, err
	}
	for {
		path := filepath.Join(dir, "corelower.toml")
		if _, err := os.Stat(path); err == nil {
			config, err := Load(path)
			if err != nil {
				return "", nil, err
			}
			return path, config, nil
		}
		if _, err := os.Stat(filepath.Join(dir, ".git")); err == nil {
			return "", Default(), nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", Default(), nil
		}
		dir = parent
	}
}
