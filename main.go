// Package main is the entry point for the rapidhls application.
// rapidhls is an HLS playlist parser and inspector.
package main

import (
	"github.com/Alain-L/rapidhls/cmd"
)

// version, commit, and date are set at build time via -ldflags.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	cmd.Execute(version, commit, date)
}
