// Package config defines the CLI configuration for moondown and its YAML
// loading and discovery.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalid wraps every validation failure so callers can classify it.
var ErrInvalid = errors.New("invalid configuration")

// ConfigFileName is the configuration file discovered upward from the
// working directory.
const ConfigFileName = ".moondown.yaml"

// Flavor values accepted by the parser.
const (
	FlavorCommonMark = "commonmark"
	FlavorGFM        = "gfm"
)

// Config holds the CLI configuration. Command-line flags override file values.
type Config struct {
	// Flavor selects the Markdown flavor: "commonmark" or "gfm".
	Flavor string `yaml:"flavor"`

	// Write rewrites files in place instead of printing a diff.
	Write bool `yaml:"write"`

	// Backup creates a sidecar backup before rewriting a file.
	Backup bool `yaml:"backup"`

	// LogLevel sets the logger level: debug, info, warn, error.
	LogLevel string `yaml:"log_level"`
}

// Default returns the configuration used when no file is found.
func Default() *Config {
	return &Config{
		Flavor:   FlavorCommonMark,
		LogLevel: "info",
	}
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	switch c.Flavor {
	case FlavorCommonMark, FlavorGFM:
	default:
		return fmt.Errorf("%w: flavor %q must be %q or %q",
			ErrInvalid, c.Flavor, FlavorCommonMark, FlavorGFM)
	}

	switch c.LogLevel {
	case "", "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("%w: log_level %q", ErrInvalid, c.LogLevel)
	}

	return nil
}
