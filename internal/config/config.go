// Package config stores bindery's persistent defaults in a TOML file
// under the user's home directory. Only defaults live here (prefix,
// pattern, force); per-invocation inputs like titles and explicit
// order are never stored.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"

	"github.com/pelletier/go-toml/v2"
)

// Config holds the stored defaults.
type Config struct {
	Prefix  string `toml:"prefix"`
	Pattern string `toml:"pattern"`
	Force   bool   `toml:"force"`
}

// Default returns the built-in defaults: empty prefix, first digit run
// as the capture pattern, confirmation enabled.
func Default() Config {
	return Config{Pattern: `(\d+)`}
}

// Path returns the defaults file location, ~/.bindery/config.toml.
func Path() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return filepath.Join(home, ".bindery", "config.toml"), nil
}

// Load reads the defaults file at Path.
func Load() (Config, error) {
	path, err := Path()
	if err != nil {
		return Default(), err
	}
	return LoadFile(path)
}

// LoadFile reads defaults from path. A missing file yields Default
// without error; keys absent from the file keep their built-in
// defaults.
func LoadFile(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return Default(), fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if cfg.Pattern == "" {
		cfg.Pattern = Default().Pattern
	}
	return cfg, nil
}

// Save writes the defaults file at Path, creating ~/.bindery if
// needed.
func (c Config) Save() error {
	path, err := Path()
	if err != nil {
		return err
	}
	return c.SaveFile(path)
}

// SaveFile writes defaults to path with owner-only permissions.
func (c Config) SaveFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config %s: %w", path, err)
	}
	return nil
}

// Set updates one key from its string form. Valid keys are prefix,
// pattern, and force; pattern values must compile and contain a
// capture group.
func (c *Config) Set(key, value string) error {
	switch key {
	case "prefix":
		c.Prefix = value
	case "pattern":
		re, err := regexp.Compile(value)
		if err != nil {
			return fmt.Errorf("invalid pattern %q: %w", value, err)
		}
		if re.NumSubexp() < 1 {
			return fmt.Errorf("pattern %q must contain a capture group", value)
		}
		c.Pattern = value
	case "force":
		v, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid force value %q (use true or false)", value)
		}
		c.Force = v
	default:
		return fmt.Errorf("unknown key %q (valid keys: prefix, pattern, force)", key)
	}
	return nil
}
