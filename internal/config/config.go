// Package config handles application configuration.
package config

import (
	"os"
	"path/filepath"

	"github.com/rjdinis/winepath/internal/types"
)

// Config holds all application configuration
type Config struct {
	// Flags
	Quiet bool
	Debug bool

	// The wine prefix translations run against
	Prefix string

	// Where the prefix came from: "env", "flag", or "default"
	PrefixSource string
}

// Load loads configuration from environment. The prefix comes from
// WINEPREFIX, falling back to $HOME/.wine the way wine itself does.
func Load() (*Config, error) {
	cfg := &Config{
		Quiet: envBool("WINEPATH_QUIET", false),
		Debug: envBool("WINEPATH_DEBUG", false),
	}

	if p := os.Getenv("WINEPREFIX"); p != "" {
		cfg.Prefix = p
		cfg.PrefixSource = "env"
		return cfg, nil
	}

	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return nil, types.ErrPrefixNotFound
	}
	cfg.Prefix = filepath.Join(home, ".wine")
	cfg.PrefixSource = "default"
	return cfg, nil
}

func (c *Config) SetQuiet(v bool) { c.Quiet = v }
func (c *Config) SetDebug(v bool) { c.Debug = v }

// SetPrefix overrides the discovered prefix (the --prefix flag).
func (c *Config) SetPrefix(p string) {
	if p != "" {
		c.Prefix = p
		c.PrefixSource = "flag"
	}
}

func envBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		return v == "1" || v == "true" || v == "yes"
	}
	return def
}
