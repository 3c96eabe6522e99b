//go:build js && wasm

// Package main provides the WASM entry point for rapidhls. It exposes
// the playlist and output packages to JavaScript so a playlist can be
// parsed and rendered without a round trip through a server.
package main

import (
	"syscall/js"

	"github.com/Alain-L/rapidhls/output"
	"github.com/Alain-L/rapidhls/playlist"
)

const version = "0.1.0-wasm"

func main() {
	js.Global().Set("rapidhlsParse", js.FuncOf(parsePlaylist))
	js.Global().Set("rapidhlsVersion", js.FuncOf(getVersion))
	select {}
}

func getVersion(this js.Value, args []js.Value) interface{} {
	return version
}

// parsePlaylist(content string, format string) -> rendered string.
// format is "json" (default), "md" (or "markdown"), or "table"; the
// result is JSON, Markdown or a boxed table accordingly. Errors are
// always returned as a JSON object with an "error" field.
func parsePlaylist(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return `{"error": "no input provided"}`
	}

	content := args[0].String()
	if content == "" {
		return `{"error": "empty input"}`
	}

	format := "json"
	if len(args) >= 2 && !args[1].IsNull() && !args[1].IsUndefined() {
		if f := args[1].String(); f != "" {
			format = f
		}
	}

	pl, err := playlist.Build([]byte(content))
	if err != nil {
		return `{"error": "parse error: ` + jsonEscape(err.Error()) + `"}`
	}

	var formatter output.Formatter
	switch format {
	case "md", "markdown":
		formatter = output.NewMarkdownFormatter()
	case "table":
		formatter = output.NewTableFormatter()
	default:
		formatter = output.NewJSONFormatter()
	}

	rendered, err := formatter.Format(pl)
	if err != nil {
		return `{"error": "render error: ` + jsonEscape(err.Error()) + `"}`
	}
	return rendered
}

// jsonEscape is a minimal escaper for embedding a Go error string
// inside the hand-built JSON error envelopes above.
func jsonEscape(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '"', '\\':
			out = append(out, '\\', s[i])
		default:
			out = append(out, s[i])
		}
	}
	return string(out)
}
