// =============================================================================
// moxbox - Configuration Module
// =============================================================================
//
// This module loads the optional YAML configuration file. The compiled-in
// edition tables and defaults are the complete behavior; a config file only
// adjusts logging preferences and overlays extra edition mappings (e.g. for
// a set released after this build).
//
// A missing file is not an error unless the user pointed at one explicitly
// with --config.
//
// =============================================================================

package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cardbench/moxbox/internal/editions"
)

// =============================================================================
// CONFIGURATION STRUCTURE
// =============================================================================

// Config holds the application configuration.
type Config struct {
	// LogLevel controls the verbosity of logging.
	// Valid values: "debug", "info", "warn", "error"
	// Default: "info"
	LogLevel string `yaml:"log_level"`

	// LogFormat selects the log output format: "text" or "json".
	// Default: "text"
	LogFormat string `yaml:"log_format"`

	// EditionCodes overlays extra entries onto the edition code table
	// (Moxfield code -> Deckbox code). Compiled-in entries with the same
	// key are replaced.
	EditionCodes map[string]string `yaml:"edition_codes"`

	// EditionNames overlays extra entries onto the edition name table
	// (Moxfield code -> Deckbox set name).
	EditionNames map[string]string `yaml:"edition_names"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		LogLevel:  "info",
		LogFormat: "text",
	}
}

// =============================================================================
// LOADING
// =============================================================================

// Load reads and parses a configuration file. The file must exist.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	applyDefaults(&cfg)

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// LoadOptional reads a configuration file if it exists, falling back to
// the defaults when it does not.
func LoadOptional(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Default(), nil
	}
	return Load(path)
}

// applyDefaults sets default values for any unset options.
func applyDefaults(cfg *Config) {
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = "text"
	}
}

// validate rejects option values that would be silently ignored later.
func validate(cfg *Config) error {
	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log_level %q", cfg.LogLevel)
	}

	switch cfg.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("unknown log_format %q", cfg.LogFormat)
	}

	return nil
}

// =============================================================================
// EDITION TABLES
// =============================================================================

// Tables builds the edition lookup tables: the compiled-in data with any
// configured overlays merged on top.
func (c *Config) Tables() *editions.Tables {
	tables := editions.Default()
	tables.Merge(c.EditionCodes, c.EditionNames)
	return tables
}
