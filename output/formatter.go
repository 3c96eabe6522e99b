// Package output renders a parsed playlist.Playlist in the formats the
// command-line tool and the wasm bridge both need: JSON for machine
// consumers, Markdown for pasting into an issue or a doc, and a boxed
// table for a terminal.
package output

import (
	"fmt"

	"github.com/Alain-L/rapidhls/playlist"
	"github.com/Alain-L/rapidhls/scanner"
)

// Formatter turns a parsed playlist into a displayable string.
type Formatter interface {
	Format(pl *playlist.Playlist) (string, error)
}

// durationSeconds returns an EXTINF duration as a fixed-point string.
// scanner.ParseDuration always sets Denominator to a power of ten (the
// 10^decimalPlaces it was parsed with), so the number of fractional
// digits to print is recovered directly from it.
func durationSeconds(d scanner.Duration) string {
	if d.Denominator <= 1 {
		return fmt.Sprintf("%d", d.Numerator)
	}
	digits := 0
	for den := d.Denominator; den > 1; den /= 10 {
		digits++
	}
	sign := ""
	num := d.Numerator
	if num < 0 {
		sign = "-"
		num = -num
	}
	return fmt.Sprintf("%s%d.%0*d", sign, num/d.Denominator, digits, num%d.Denominator)
}
