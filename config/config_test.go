package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileReturnsDefault(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg != Default {
		t.Errorf("cfg = %+v, want Default %+v", cfg, Default)
	}
}

func TestLoadParsesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "base_url: https://cdn.example/vod/\nformat: json\ncache_size: 64\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.BaseURL != "https://cdn.example/vod/" {
		t.Errorf("BaseURL = %q", cfg.BaseURL)
	}
	if cfg.Format != "json" {
		t.Errorf("Format = %q", cfg.Format)
	}
	if cfg.CacheSize != 64 {
		t.Errorf("CacheSize = %d", cfg.CacheSize)
	}
}

func TestValidateRejectsUnknownFormat(t *testing.T) {
	cfg := Config{Format: "xml"}
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for unknown format")
	}
}

func TestValidateAcceptsKnownFormats(t *testing.T) {
	for _, f := range []string{"", "table", "json", "md"} {
		if err := (Config{Format: f}).Validate(); err != nil {
			t.Errorf("Validate(%q): %v", f, err)
		}
	}
}
