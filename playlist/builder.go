package playlist

import (
	"strings"

	"github.com/Alain-L/rapidhls/scanner"
)

// defaultDurationPrecision is the fractional precision EXTINF
// durations are parsed at unless a caller requests otherwise via
// BuildWithPrecision. HLS playlists rarely carry more than millisecond
// resolution; three decimal places covers every sample this package
// has been tested against without losing accuracy.
const defaultDurationPrecision = 3

type eventKind int

const (
	eventComment eventKind = iota
	eventURI
	eventTagNoValue
	eventTagWithValue
	eventEXTINF
)

// rawEvent is a scanner callback captured as owned strings, since the
// spans scanner.Scan hands out are only valid for the callback's
// duration.
type rawEvent struct {
	kind    eventKind
	a, b, c string
}

// Builder implements scanner.Sink and assembles a Playlist from the
// events scanner.Scan produces. Because Scan reports events in
// reverse document order, Builder buffers every event and only
// interprets them once parsing finishes and the sequence can be
// reversed back to forward order.
type Builder struct {
	events     []rawEvent
	err        error
	complete   bool
	currentBuf []byte
	precision  int
}

// NewBuilder returns a Builder ready to receive one parse, using
// defaultDurationPrecision for EXTINF durations.
func NewBuilder() *Builder {
	return &Builder{precision: defaultDurationPrecision}
}

func (b *Builder) OnComment(body scanner.Span) {
	b.events = append(b.events, rawEvent{kind: eventComment, a: spanText(body, b.currentBuf)})
}

func spanText(s scanner.Span, buf []byte) string {
	return string(s.Slice(buf))
}

func (b *Builder) OnURI(body scanner.Span) bool {
	b.events = append(b.events, rawEvent{kind: eventURI, a: spanText(body, b.currentBuf)})
	return true
}

func (b *Builder) OnTagNoValue(name scanner.Span) {
	b.events = append(b.events, rawEvent{kind: eventTagNoValue, a: spanText(name, b.currentBuf)})
}

func (b *Builder) OnTagWithValue(name, value scanner.Span) {
	b.events = append(b.events, rawEvent{
		kind: eventTagWithValue,
		a:    spanText(name, b.currentBuf),
		b:    spanText(value, b.currentBuf),
	})
}

func (b *Builder) OnEXTINF(name, duration, value scanner.Span) {
	b.events = append(b.events, rawEvent{
		kind: eventEXTINF,
		a:    spanText(name, b.currentBuf),
		b:    spanText(duration, b.currentBuf),
		c:    spanText(value, b.currentBuf),
	})
}

func (b *Builder) OnParseComplete() {
	b.complete = true
}

func (b *Builder) OnParseError(code scanner.ErrorCode, message string) {
	b.err = &ParseError{Code: code, Message: message}
}

// currentBuf must be set before calling scanner.Scan and cleared
// after, since it is only valid for the duration of one scan.
func (b *Builder) withBuf(buf []byte, fn func()) {
	b.currentBuf = buf
	defer func() { b.currentBuf = nil }()
	fn()
}

// Build runs the reverse scanner over buf and assembles the resulting
// Playlist, parsing EXTINF durations at defaultDurationPrecision. A
// structural parse error is returned as *ParseError; the Playlist
// return value is nil in that case.
func Build(buf []byte) (*Playlist, error) {
	return BuildWithPrecision(buf, defaultDurationPrecision)
}

// BuildWithPrecision is Build with the EXTINF duration's fractional
// precision set explicitly, for callers that need finer than
// millisecond resolution.
func BuildWithPrecision(buf []byte, precision int) (*Playlist, error) {
	b := NewBuilder()
	b.precision = precision
	b.withBuf(buf, func() {
		scanner.Scan(buf, b)
	})
	if b.err != nil {
		return nil, b.err
	}
	return b.assemble(), nil
}

// assemble walks the buffered events in forward document order
// (reversing the reverse-scan sequence) and builds the Playlist.
func (b *Builder) assemble() *Playlist {
	pl := &Playlist{}

	var pendingVariant *Attributes
	var pendingSegment *Segment
	var pendingTags []Tag
	// inBody flips once the first segment- or variant-introducing event
	// is seen. Tags before that point are playlist-header tags
	// (EXTM3U, EXT-X-VERSION, EXT-X-TARGETDURATION, ...) and go straight
	// to pl.Tags, except the media segment tags named in segmentScoped;
	// those, and every tag seen afterward, accumulate in pendingTags
	// until the next segment boundary claims them.
	var inBody bool
	segmentScoped := map[string]bool{
		"EXT-X-BYTERANGE": true, "EXT-X-DISCONTINUITY": true, "EXT-X-KEY": true,
		"EXT-X-MAP": true, "EXT-X-PROGRAM-DATE-TIME": true, "EXT-X-DATERANGE": true,
	}

	for i := len(b.events) - 1; i >= 0; i-- {
		ev := b.events[i]
		switch ev.kind {
		case eventComment:
			// Comments are not retained structurally; HLS tooling
			// treats them as free text with no semantic weight.
		case eventTagWithValue:
			if strings.EqualFold(ev.a, "EXT-X-STREAM-INF") {
				if pl.Kind == KindUnknown {
					pl.Kind = KindMaster
				}
				inBody = true
				attrs := parseAttributes(ev.b)
				pendingVariant = &attrs
				continue
			}
			if inBody || segmentScoped[strings.ToUpper(ev.a)] {
				pendingTags = append(pendingTags, Tag{Name: ev.a, Value: ev.b})
			} else {
				pl.Tags = append(pl.Tags, Tag{Name: ev.a, Value: ev.b})
			}
		case eventTagNoValue:
			if inBody || segmentScoped[strings.ToUpper(ev.a)] {
				pendingTags = append(pendingTags, Tag{Name: ev.a})
			} else {
				pl.Tags = append(pl.Tags, Tag{Name: ev.a})
			}
		case eventEXTINF:
			if pl.Kind == KindUnknown {
				pl.Kind = KindMedia
			}
			inBody = true
			dur, _, _ := scanner.ParseDuration([]byte(ev.b), b.precision)
			title := ""
			if rest, ok := strings.CutPrefix(ev.c, ev.b); ok {
				title = strings.TrimPrefix(rest, ",")
			}
			pendingSegment = &Segment{Duration: dur, Title: title, Tags: pendingTags}
			pendingTags = nil
		case eventURI:
			inBody = true
			switch {
			case pendingVariant != nil:
				pl.Variants = append(pl.Variants, Variant{Attributes: *pendingVariant, URI: ev.a})
				pendingVariant = nil
			case pendingSegment != nil:
				pendingSegment.URI = ev.a
				pl.Segments = append(pl.Segments, *pendingSegment)
				pendingSegment = nil
			default:
				// A bare URI with no preceding EXTINF or STREAM-INF:
				// still a segment, just one with a zero duration.
				pl.Segments = append(pl.Segments, Segment{URI: ev.a, Tags: pendingTags})
				pendingTags = nil
			}
		}
	}

	// Any tag seen after the last segment boundary (e.g. a trailing
	// EXT-X-ENDLIST) belongs to no segment; fold it into pl.Tags.
	pl.Tags = append(pl.Tags, pendingTags...)

	return pl
}
