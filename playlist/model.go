// Package playlist builds a structured HLS playlist model on top of
// the low-level events produced by package scanner. It resolves tag
// semantics the scanner deliberately knows nothing about: whether a
// document is a master or media playlist, how attribute lists parse,
// and how relative segment URIs resolve against the playlist's own
// location.
package playlist

import "github.com/Alain-L/rapidhls/scanner"

// Kind classifies a playlist by the tags it contains.
type Kind int

const (
	// KindUnknown means no kind-determining tag was seen.
	KindUnknown Kind = iota
	// KindMaster means the playlist carries EXT-X-STREAM-INF entries
	// and lists variant streams rather than media segments.
	KindMaster
	// KindMedia means the playlist carries EXTINF entries and lists
	// media segments directly.
	KindMedia
)

func (k Kind) String() string {
	switch k {
	case KindMaster:
		return "master"
	case KindMedia:
		return "media"
	default:
		return "unknown"
	}
}

// Tag is a generic "#NAME" or "#NAME:VALUE" line that wasn't given a
// more specific representation (Segment, Variant).
type Tag struct {
	Name  string
	Value string
}

// Segment is one EXTINF-delimited media segment: its duration, an
// optional title, and the URI line that follows it. Tags is any
// segment-scoped tag (e.g. EXT-X-BYTERANGE, EXT-X-DISCONTINUITY) that
// appeared between the previous segment and this one's URI.
type Segment struct {
	Duration scanner.Duration
	Title    string
	URI      string
	Tags     []Tag
}

// Variant is one EXT-X-STREAM-INF entry in a master playlist: its
// attribute list and the URI of the variant's own media playlist.
type Variant struct {
	Attributes Attributes
	URI        string
}

// Playlist is the fully resolved document: every tag the scanner saw,
// reassembled in forward document order and classified into the
// shape a media or master playlist actually has.
type Playlist struct {
	Kind Kind

	// Tags holds every tag that is neither a segment-scoped tag nor
	// EXT-X-STREAM-INF, in document order: EXTM3U, EXT-X-VERSION,
	// EXT-X-TARGETDURATION, EXT-X-PLAYLIST-TYPE, and so on.
	Tags []Tag

	// Segments holds media segments, in document order: one per EXTINF
	// and one per URI line that follows neither an EXTINF nor an
	// EXT-X-STREAM-INF, whatever Kind the playlist was given.
	Segments []Segment

	// Variants holds variant streams, in document order: one per
	// EXT-X-STREAM-INF, whatever Kind the playlist was given.
	Variants []Variant
}
