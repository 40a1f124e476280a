// Package config provides layered configuration loading.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// Config holds the resolved configuration.
type Config struct {
	// Output settings
	Format string `json:"format,omitempty"` // auto, json, md, styled, quiet
	Theme  string `json:"theme,omitempty"`  // path to a colors.toml theme file

	// Behavior preferences (persisted in the config file, overridable by
	// env and flags)
	Verbose int `json:"verbose,omitempty"`

	// Sources tracks where each value came from (for debugging).
	Sources map[string]string `json:"-"`
}

// Source indicates where a config value came from.
type Source string

const (
	SourceDefault Source = "default"
	SourceGlobal  Source = "global"
	SourceEnv     Source = "env"
	SourceFlag    Source = "flag"
)

// FlagOverrides holds command-line flag values.
type FlagOverrides struct {
	Format  string
	Verbose int
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Format:  "auto",
		Sources: map[string]string{},
	}
}

// Path returns the global config file location
// (~/.config/sitescan/config.json, honoring XDG_CONFIG_HOME).
func Path() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "sitescan", "config.json"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "sitescan", "config.json"), nil
}

// Load resolves configuration in layers: defaults, then the global config
// file, then SITESCAN_* environment variables, then flags. Each layer only
// overrides values it actually sets, and Sources records the winning layer
// per value.
func Load(overrides FlagOverrides) (*Config, error) {
	cfg := Default()

	if path, err := Path(); err == nil {
		if err := cfg.applyFile(path); err != nil {
			return nil, err
		}
	}
	cfg.applyEnv()
	cfg.applyFlags(overrides)

	return cfg, nil
}

func (c *Config) applyFile(path string) error {
	data, err := os.ReadFile(path) //nolint:gosec // G304: user's own config path
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("reading config %s: %w", path, err)
	}

	var file Config
	if err := json.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("parsing config %s: %w", path, err)
	}

	if file.Format != "" {
		c.Format = file.Format
		c.Sources["format"] = string(SourceGlobal)
	}
	if file.Theme != "" {
		c.Theme = file.Theme
		c.Sources["theme"] = string(SourceGlobal)
	}
	if file.Verbose != 0 {
		c.Verbose = file.Verbose
		c.Sources["verbose"] = string(SourceGlobal)
	}
	return nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("SITESCAN_FORMAT"); v != "" {
		c.Format = v
		c.Sources["format"] = string(SourceEnv)
	}
	if v := os.Getenv("SITESCAN_THEME"); v != "" {
		c.Theme = v
		c.Sources["theme"] = string(SourceEnv)
	}
	if v := os.Getenv("SITESCAN_VERBOSE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Verbose = n
			c.Sources["verbose"] = string(SourceEnv)
		}
	}
}

func (c *Config) applyFlags(overrides FlagOverrides) {
	if overrides.Format != "" {
		c.Format = overrides.Format
		c.Sources["format"] = string(SourceFlag)
	}
	if overrides.Verbose != 0 {
		c.Verbose = overrides.Verbose
		c.Sources["verbose"] = string(SourceFlag)
	}
}
