// Package config loads the CLI's optional project configuration file.
package config

import (
	"os"

	"github.com/BurntSushi/toml"
)

// DefaultFile is the project configuration looked up next to the sources.
const DefaultFile = "fable.toml"

// Config controls the CLI driver. Zero values fall back to the defaults.
type Config struct {
	OutDir   string `toml:"out_dir"`   // translated output directory; empty writes to stdout
	CacheDir string `toml:"cache_dir"` // translation cache location
	Quiet    bool   `toml:"quiet"`     // suppress per-file progress output
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{CacheDir: ".fable-cache"}
}

// Load reads a TOML configuration file, falling back to the defaults when
// the file does not exist.
func Load(path string) (Config, error) {
	cfg := Default()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
