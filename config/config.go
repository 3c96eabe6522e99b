// Package config loads rapidhls's optional YAML configuration file,
// which lets repeated CLI flags (notably --base and output format)
// be set once instead of passed on every invocation.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Default is the configuration used when no file is found or loaded.
var Default = Config{
	CacheSize: 32,
	Format:    "table",
}

// Config mirrors the root command's flags, so a config file can set
// defaults a caller only occasionally needs to override.
type Config struct {
	// BaseURL resolves relative segment/variant URIs, equivalent to --base.
	BaseURL string `yaml:"base_url,omitempty"`
	// Format selects the default renderer: "table", "json", or "md".
	Format string `yaml:"format,omitempty"`
	// CacheSize is the parsed-playlist LRU cache capacity.
	CacheSize int `yaml:"cache_size,omitempty"`
}

// Load reads and parses a YAML config file at path. A missing file is
// not an error: Default is returned unchanged.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default, nil
		}
		return Config{}, fmt.Errorf("config: reading %s: %w", path, err)
	}

	cfg := Default
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parsing %s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects a Format this package doesn't know how to render.
func (c Config) Validate() error {
	switch c.Format {
	case "", "table", "json", "md":
		return nil
	default:
		return fmt.Errorf("config: unknown format %q, want table, json, or md", c.Format)
	}
}
