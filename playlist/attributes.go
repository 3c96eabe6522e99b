package playlist

import "strings"

// Attributes is a parsed HLS attribute list, the comma-separated
// KEY=VALUE sequence found in tags like EXT-X-STREAM-INF and EXT-X-KEY.
// Keys are stored uppercased, as the format requires; values retain
// their original casing with surrounding quotes stripped.
type Attributes map[string]string

// Get returns the value for key, and whether it was present.
func (a Attributes) Get(key string) (string, bool) {
	v, ok := a[strings.ToUpper(key)]
	return v, ok
}

// parseAttributes tokenizes an attribute-list value such as
// `BANDWIDTH=1280000,CODECS="avc1.4d401f,mp4a.40.2",RESOLUTION=640x360`.
// It does not validate attribute names or value types; that is left to
// callers who know which tag they're interpreting.
func parseAttributes(value string) Attributes {
	attrs := make(Attributes)
	for _, pair := range splitAttributePairs(value) {
		key, val, ok := splitAttributePair(pair)
		if !ok {
			continue
		}
		attrs[strings.ToUpper(strings.TrimSpace(key))] = val
	}
	return attrs
}

// splitAttributePairs splits on commas that are not inside a
// double-quoted value, since quoted values (e.g. CODECS lists) may
// themselves contain commas.
func splitAttributePairs(value string) []string {
	var pairs []string
	start := 0
	inQuotes := false
	for i := 0; i < len(value); i++ {
		switch value[i] {
		case '"':
			inQuotes = !inQuotes
		case ',':
			if !inQuotes {
				pairs = append(pairs, value[start:i])
				start = i + 1
			}
		}
	}
	pairs = append(pairs, value[start:])
	return pairs
}

func splitAttributePair(pair string) (key, val string, ok bool) {
	i := strings.IndexByte(pair, '=')
	if i < 0 {
		return "", "", false
	}
	key = pair[:i]
	val = strings.TrimSpace(pair[i+1:])
	if len(val) >= 2 && val[0] == '"' && val[len(val)-1] == '"' {
		val = val[1 : len(val)-1]
	}
	return key, val, true
}
