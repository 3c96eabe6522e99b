// Package cmd implements the command-line interface for rapidhls.
package cmd

import (
	"net/url"

	"github.com/Alain-L/rapidhls/output"
)

// parseBaseURL parses the --base flag, if set. An empty string yields
// a nil *url.URL, meaning "do not resolve relative URIs".
func parseBaseURL(raw string) (*url.URL, error) {
	if raw == "" {
		return nil, nil
	}
	return url.Parse(raw)
}

// pickFormatter selects the Formatter the --json/--md flags request,
// defaulting to the boxed table renderer.
func pickFormatter() output.Formatter {
	switch {
	case jsonFlag:
		return output.NewJSONFormatter()
	case mdFlag:
		return output.NewMarkdownFormatter()
	default:
		return output.NewTableFormatter()
	}
}
