// Package cmd implements the command-line interface for rapidhls.
// It uses the Cobra library to handle commands, flags, and execution.
package cmd

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/Alain-L/rapidhls/config"
)

// Version information (passed from main).
var (
	version string
	commit  string
	date    string
)

// Flag variables for command-line options. Package-level as required
// by Cobra's flag binding.
var (
	jsonFlag      bool   // --json: render as JSON
	mdFlag        bool   // --md: render as Markdown
	baseFlag      string // --base: resolve relative segment/variant URIs against this URL
	cacheSize     int    // --cache-size: parsed-playlist LRU cache capacity
	configPath    string // --config: path to a YAML config file
	precisionFlag int    // --precision: EXTINF duration decimal places
)

// rootCmd is the main command for the rapidhls CLI.
var rootCmd = &cobra.Command{
	Use:   "rapidhls [files]",
	Short: "HLS playlist parser and inspector",
	Long: `rapidhls parses HLS (m3u8) playlists and prints their structure.

It understands both master playlists (variant streams) and media
playlists (segment lists), reading plain files, compressed files
(gzip, zstd, brotli, xz), and members of tar or 7z archives addressed
as "archive.tar.gz!path/inside.m3u8".

Specify one or more playlist files as arguments.`,
	Args:    cobra.MinimumNArgs(1),
	PreRunE: applyConfigDefaults,
	RunE:    executeParse,
}

// applyConfigDefaults loads --config (if set, otherwise its default
// path) and fills in any flag the user didn't explicitly pass.
func applyConfigDefaults(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	flags := cmd.Flags()
	if !flags.Changed("base") && cfg.BaseURL != "" {
		baseFlag = cfg.BaseURL
	}
	if !flags.Changed("cache-size") && cfg.CacheSize != 0 {
		cacheSize = cfg.CacheSize
	}
	if !flags.Changed("json") && !flags.Changed("md") {
		switch cfg.Format {
		case "json":
			jsonFlag = true
		case "md":
			mdFlag = true
		}
	}
	return nil
}

// Execute runs the root command. Called by main.go to start the CLI.
func Execute(v, c, d string) {
	version = v
	commit = c
	date = d
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date)

	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func init() {
	rootCmd.Flags().BoolVarP(&jsonFlag, "json", "J", false, "Render output as JSON")
	rootCmd.Flags().BoolVar(&mdFlag, "md", false, "Render output as Markdown")
	rootCmd.Flags().StringVar(&baseFlag, "base", "", "Resolve relative segment/variant URIs against this base URL")
	rootCmd.Flags().IntVar(&cacheSize, "cache-size", 32, "Parsed-playlist LRU cache capacity (0 disables caching)")
	rootCmd.Flags().StringVar(&configPath, "config", defaultConfigPath(), "Path to a YAML config file")
	rootCmd.Flags().IntVar(&precisionFlag, "precision", 3, "EXTINF duration decimal places (0-9)")
}

// defaultConfigPath points at ~/.rapidhls.yaml, falling back to a
// relative path if the home directory can't be determined.
func defaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".rapidhls.yaml"
	}
	return filepath.Join(home, ".rapidhls.yaml")
}
