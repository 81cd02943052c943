// Package config loads inventory configuration defaults from a YAML file.
//
// Configuration supplies defaults only; command-line flags always win.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/harrison/inventory/internal/models"
)

// DefaultConfigFile is the config file looked up in the working directory
// when --config is not given.
const DefaultConfigFile = ".inventory.yaml"

// Config represents inventory configuration options
type Config struct {
	// Format is the report format (txt, html, md)
	Format string `yaml:"format"`

	// Sort is the sort key (none, name, size, date)
	Sort string `yaml:"sort"`

	// Order is the sort direction (asc, desc)
	Order string `yaml:"order"`

	// Depth limits traversal depth (-1 = unlimited)
	Depth int `yaml:"depth"`

	// SkipHidden excludes dot-prefixed files and directories
	SkipHidden bool `yaml:"skip_hidden"`

	// Extensions is the default extension allow-list
	Extensions []string `yaml:"extensions"`

	// Contains is the default list of substring terms matched against
	// file names
	Contains []string `yaml:"contains"`

	// CaseSensitive controls substring matching for contains terms
	CaseSensitive bool `yaml:"case_sensitive"`

	// ContainsMode combines multiple contains terms (and, or)
	ContainsMode string `yaml:"contains_mode"`

	// LogLevel sets logging verbosity (trace, debug, info, warn, error)
	LogLevel string `yaml:"log_level"`
}

// DefaultConfig returns a Config with sensible default values
func DefaultConfig() *Config {
	return &Config{
		Format:        "txt",
		Sort:          "none",
		Order:         "asc",
		Depth:         -1,
		SkipHidden:    false,
		CaseSensitive: false,
		ContainsMode:  "and",
		LogLevel:      "info",
	}
}

// LoadConfig loads configuration from the specified file path.
// If the file doesn't exist, returns default configuration without error.
// If the file exists but is malformed, returns an error.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Unmarshal over the defaults so omitted keys keep their default
	// values
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}

	return cfg, nil
}

// LoadConfigFromDir loads configuration from .inventory.yaml in the given
// directory, falling back to defaults when the file is absent.
func LoadConfigFromDir(dir string) (*Config, error) {
	return LoadConfig(filepath.Join(dir, DefaultConfigFile))
}

// Validate checks all configuration values, returning the first problem
// found. Validation runs once at the boundary, before traversal begins.
func (c *Config) Validate() error {
	if _, err := models.ParseFormat(c.Format); err != nil {
		return err
	}
	if _, err := models.ParseSortKey(c.Sort); err != nil {
		return err
	}
	if _, err := models.ParseSortOrder(c.Order); err != nil {
		return err
	}
	if _, err := models.ParseMatchMode(c.ContainsMode); err != nil {
		return err
	}
	if c.Depth < -1 {
		return fmt.Errorf("invalid depth %d: must be >= -1", c.Depth)
	}
	return nil
}
