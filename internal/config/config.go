// Package config loads optional TOML settings shared by both binaries.
package config

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

// Colour modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config holds user-tunable settings. Nothing here affects task semantics.
type Config struct {
	LogLevel      string `toml:"log_level"`
	Color         string `toml:"color"`
	ShowCompleted bool   `toml:"show_completed"`
}

// Default returns the settings used when no config file is given.
func Default() *Config {
	return &Config{
		LogLevel:      "warn",
		Color:         ColorAuto,
		ShowCompleted: true,
	}
}

// Load reads path over the defaults. An empty path reads nothing.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("load config %s: unknown key %q", path, undecoded[0].String())
	}

	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))
	cfg.Color = strings.ToLower(strings.TrimSpace(cfg.Color))
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks enumerated fields.
func (c *Config) Validate() error {
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log_level %q (want debug, info, warn, or error)", c.LogLevel)
	}
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("invalid color %q (want auto, always, or never)", c.Color)
	}
	return nil
}

// ApplyFlags overrides file values with command-line switches.
func (c *Config) ApplyFlags(debug, noColor bool) {
	if debug {
		c.LogLevel = "debug"
	}
	if noColor {
		c.Color = ColorNever
	}
}
