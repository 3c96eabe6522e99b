package scanner

import "errors"

// ErrInvalidDuration is returned when the bytes handed to ParseDuration
// do not match the recognized grammar `\s*-?[0-9]+(\.[0-9]+)?`.
var ErrInvalidDuration = errors.New("scanner: invalid EXTINF duration")

// powersOfTen is a lookup table for 10^n, n in [0,9] — the full range
// of fractional precisions this scanner supports. Mirrors the
// int32exp10 lookup of the duration routine this is ported from:
// clamping decimal places to 9 keeps every intermediate product below
// 10^18, safely inside signed 64-bit range.
var powersOfTen = [10]int64{
	1, 10, 100, 1_000, 10_000, 100_000,
	1_000_000, 10_000_000, 100_000_000, 1_000_000_000,
}

// Duration is a rational time value: Numerator / Denominator, where
// Denominator is always 10^decimalPlaces for whatever precision the
// caller requested.
type Duration struct {
	Numerator   int64
	Denominator int64
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	default:
		return false
	}
}

// ParseDuration converts a fixed-point digit string — as found in an
// EXTINF duration field — into a rational time at the given fractional
// precision (decimalPlaces, 0 through 9). It returns the unconsumed
// remainder of data, so a caller holding a longer buffer (e.g. the
// comma-separated EXTINF value before title extraction) can continue
// parsing from where this call stopped.
//
// Grammar: `\s*-?[0-9]+(\.[0-9]+)?`. A trailing '.' with no fractional
// digit is rejected, and so is a zero-length input. The whole
// computation is integer-only: both the accumulated fractional digits
// and the timebase are powers of ten, so rescaling the fractional part
// to decimalPlaces digits is always exact.
func ParseDuration(data []byte, decimalPlaces int) (Duration, []byte, error) {
	if decimalPlaces < 0 || decimalPlaces > 9 {
		return Duration{}, data, ErrInvalidDuration
	}
	if len(data) == 0 {
		return Duration{}, data, ErrInvalidDuration
	}

	i := 0
	for i < len(data) && isSpace(data[i]) {
		i++
	}

	negative := false
	if i < len(data) && data[i] == '-' {
		negative = true
		i++
	}

	integralStart := i
	var magnitude int64
	for i < len(data) && isDigit(data[i]) {
		magnitude = magnitude*10 + int64(data[i]-'0')
		i++
	}
	if i == integralStart {
		return Duration{}, data, ErrInvalidDuration
	}

	timebase := powersOfTen[decimalPlaces]
	total := magnitude * timebase

	if i < len(data) && data[i] == '.' {
		i++
		fractionStart := i
		var fraction int64
		digits := 0
		for i < len(data) && isDigit(data[i]) {
			if digits < 9 {
				fraction = fraction*10 + int64(data[i]-'0')
				digits++
			}
			i++
		}
		if i == fractionStart {
			// Trailing '.' with no fractional digit: reject the whole match.
			return Duration{}, data, ErrInvalidDuration
		}
		total += fraction * timebase / powersOfTen[digits]
	}

	if negative {
		total = -total
	}

	return Duration{Numerator: total, Denominator: timebase}, data[i:], nil
}
