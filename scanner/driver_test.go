package scanner

import "testing"

// event is a flattened record of one callback invocation, used so
// tests can assert on the exact reverse-document-order sequence Scan
// produces without depending on a particular sink implementation.
type event struct {
	kind     string
	a, b, c  string
	code     ErrorCode
	cont     bool
}

type recordingSink struct {
	buf    []byte
	events []event
	// uriReturn, if non-nil, is consulted for each OnURI call in order;
	// when exhausted, OnURI returns true.
	uriReturn []bool
}

func (r *recordingSink) text(s Span) string {
	return string(s.Slice(r.buf))
}

func (r *recordingSink) OnComment(body Span) {
	r.events = append(r.events, event{kind: "comment", a: r.text(body)})
}

func (r *recordingSink) OnURI(body Span) bool {
	cont := true
	if len(r.uriReturn) > 0 {
		cont = r.uriReturn[0]
		r.uriReturn = r.uriReturn[1:]
	}
	r.events = append(r.events, event{kind: "uri", a: r.text(body), cont: cont})
	return cont
}

func (r *recordingSink) OnTagNoValue(name Span) {
	r.events = append(r.events, event{kind: "tag_no_value", a: r.text(name)})
}

func (r *recordingSink) OnTagWithValue(name, value Span) {
	r.events = append(r.events, event{kind: "tag_with_value", a: r.text(name), b: r.text(value)})
}

func (r *recordingSink) OnEXTINF(name, duration, value Span) {
	r.events = append(r.events, event{kind: "extinf", a: r.text(name), b: r.text(duration), c: r.text(value)})
}

func (r *recordingSink) OnParseComplete() {
	r.events = append(r.events, event{kind: "complete"})
}

func (r *recordingSink) OnParseError(code ErrorCode, message string) {
	r.events = append(r.events, event{kind: "error", code: code, a: message})
}

func runScan(input string, uriReturn ...bool) *recordingSink {
	sink := &recordingSink{buf: []byte(input), uriReturn: uriReturn}
	Scan(sink.buf, sink)
	return sink
}

func (r *recordingSink) assertSequence(t *testing.T, want ...event) {
	t.Helper()
	if len(r.events) != len(want) {
		t.Fatalf("got %d events %+v, want %d events %+v", len(r.events), r.events, len(want), want)
	}
	for i := range want {
		got := r.events[i]
		w := want[i]
		if got.kind != w.kind || got.a != w.a || got.b != w.b || got.c != w.c || got.code != w.code {
			t.Fatalf("event %d = %+v, want %+v", i, got, w)
		}
	}
}

func TestScanTagNoValue(t *testing.T) {
	r := runScan("#EXTM3U\n")
	r.assertSequence(t,
		event{kind: "tag_no_value", a: "EXTM3U"},
		event{kind: "complete"},
	)
}

func TestScanTagWithValue(t *testing.T) {
	r := runScan("#EXT-X-VERSION:3\n")
	r.assertSequence(t,
		event{kind: "tag_with_value", a: "EXT-X-VERSION", b: "3"},
		event{kind: "complete"},
	)
}

func TestScanEXTINFWithTitle(t *testing.T) {
	r := runScan("#EXTINF:5.0,title\nseg.ts\n")
	r.assertSequence(t,
		event{kind: "uri", a: "seg.ts", cont: true},
		event{kind: "extinf", a: "EXTINF", b: "5.0", c: "5.0,title"},
		event{kind: "complete"},
	)
}

func TestScanEXTINFWithoutTitle(t *testing.T) {
	r := runScan("#EXTINF:5.0\nseg.ts\n")
	r.assertSequence(t,
		event{kind: "uri", a: "seg.ts", cont: true},
		event{kind: "extinf", a: "EXTINF", b: "5.0", c: "5.0"},
		event{kind: "complete"},
	)
}

func TestScanEXTINFMissingColon(t *testing.T) {
	r := runScan("#EXTINF\nseg.ts\n")
	r.assertSequence(t,
		event{kind: "uri", a: "seg.ts", cont: true},
		event{kind: "error", code: MissingTagDataForEXTINF, a: missingTagDataForEXTINFMessage},
	)
}

func TestScanEXTTagMissingDataAfterColon(t *testing.T) {
	r := runScan("#EXT-X-KEY:\n")
	r.assertSequence(t,
		event{kind: "error", code: MissingTagData, a: missingTagDataMessage},
	)
}

func TestScanCommentThenURI(t *testing.T) {
	r := runScan("# this is a comment\nhttp://x/y\n")
	r.assertSequence(t,
		event{kind: "uri", a: "http://x/y", cont: true},
		event{kind: "comment", a: " this is a comment"},
		event{kind: "complete"},
	)
}

func TestScanEmptyBuffer(t *testing.T) {
	r := runScan("")
	r.assertSequence(t, event{kind: "complete"})
}

func TestScanOnlyNewline(t *testing.T) {
	r := runScan("\n")
	r.assertSequence(t, event{kind: "complete"})
}

func TestScanNoTrailingNewline(t *testing.T) {
	r := runScan("http://x/y")
	r.assertSequence(t,
		event{kind: "uri", a: "http://x/y", cont: true},
		event{kind: "complete"},
	)
}

func TestScanCarriageReturnIncludedInURI(t *testing.T) {
	r := runScan("http://x/y\r\n")
	r.assertSequence(t,
		event{kind: "uri", a: "http://x/y\r", cont: true},
		event{kind: "complete"},
	)
}

func TestScanBlankLinesSuppressed(t *testing.T) {
	r := runScan("http://a\n\nhttp://b\n")
	r.assertSequence(t,
		event{kind: "uri", a: "http://b", cont: true},
		event{kind: "uri", a: "http://a", cont: true},
		event{kind: "complete"},
	)
}

func TestScanTagNameWithDigitsAndHyphens(t *testing.T) {
	r := runScan("#EXT-X-MEDIA-SEQUENCE:42\n")
	r.assertSequence(t,
		event{kind: "tag_with_value", a: "EXT-X-MEDIA-SEQUENCE", b: "42"},
		event{kind: "complete"},
	)
}

func TestScanURICancelStopsEarly(t *testing.T) {
	r := runScan("#EXTM3U\nhttp://a\nhttp://b\n", false)
	// The lowest URI line is discovered first in reverse order; its
	// false return must stop the scan before #EXTM3U is ever reached.
	r.assertSequence(t,
		event{kind: "uri", a: "http://b", cont: false},
	)
}

func TestScanMultipleTags(t *testing.T) {
	r := runScan("#EXTM3U\n#EXT-X-VERSION:3\n#EXT-X-TARGETDURATION:10\n")
	r.assertSequence(t,
		event{kind: "tag_with_value", a: "EXT-X-TARGETDURATION", b: "10"},
		event{kind: "tag_with_value", a: "EXT-X-VERSION", b: "3"},
		event{kind: "tag_no_value", a: "EXTM3U"},
		event{kind: "complete"},
	)
}
