// Package config resolves where the history db lives and what the default
// ranking threshold is. Settings come from an optional TOML file; flags
// override everything. Core packages never read this themselves, they get
// final values handed in.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// DefaultMinConfidence is the ranking threshold used when neither the config
// file nor the -c flag sets one.
const DefaultMinConfidence = 0.4

// Config holds the user-tunable settings.
type Config struct {
	// DBPath is where the history db is stored. Empty means the default
	// location under the user config dir.
	DBPath string `toml:"db_path"`

	// MinConfidence is the default minimum confidence for fuzzy matches.
	MinConfidence float64 `toml:"min_confidence"`
}

// DefaultDBPath returns the standard history db location, creating nothing.
// Falls back to the system temp dir when the user config dir is unknown,
// so the tool still works in stripped-down environments.
func DefaultDBPath() string {
	base, err := os.UserConfigDir()
	if err != nil {
		base = os.TempDir()
	}
	return filepath.Join(base, "dirjump", "history.json")
}

// DefaultConfigPath returns where the optional config file is looked for.
func DefaultConfigPath() string {
	base, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(base, "dirjump", "config.toml")
}

// Load reads the config file at path. A missing file is not an error: you
// get the defaults. A file that exists but does not parse is an error; a
// broken config should be fixed, not silently ignored.
func Load(path string) (Config, error) {
	cfg := Config{MinConfidence: DefaultMinConfidence}
	if path == "" {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if cfg.MinConfidence <= 0 {
		cfg.MinConfidence = DefaultMinConfidence
	}
	return cfg, nil
}
