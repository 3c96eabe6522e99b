package playlist

import (
	"net/url"
	"testing"
)

func TestBuildMediaPlaylist(t *testing.T) {
	input := "#EXTM3U\n" +
		"#EXT-X-VERSION:3\n" +
		"#EXT-X-TARGETDURATION:10\n" +
		"#EXTINF:9.009,\n" +
		"seg1.ts\n" +
		"#EXTINF:9.009,title two\n" +
		"seg2.ts\n" +
		"#EXT-X-ENDLIST\n"

	pl, err := Build([]byte(input))
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	if pl.Kind != KindMedia {
		t.Fatalf("Kind = %v, want media", pl.Kind)
	}

	wantTags := []Tag{
		{Name: "EXTM3U"},
		{Name: "EXT-X-VERSION", Value: "3"},
		{Name: "EXT-X-TARGETDURATION", Value: "10"},
		{Name: "EXT-X-ENDLIST"},
	}
	if len(pl.Tags) != len(wantTags) {
		t.Fatalf("Tags = %+v, want %+v", pl.Tags, wantTags)
	}
	for i, want := range wantTags {
		if pl.Tags[i] != want {
			t.Errorf("Tags[%d] = %+v, want %+v", i, pl.Tags[i], want)
		}
	}

	if len(pl.Segments) != 2 {
		t.Fatalf("got %d segments, want 2", len(pl.Segments))
	}
	if pl.Segments[0].URI != "seg1.ts" || pl.Segments[0].Title != "" {
		t.Errorf("segment 0 = %+v", pl.Segments[0])
	}
	if pl.Segments[1].URI != "seg2.ts" || pl.Segments[1].Title != "title two" {
		t.Errorf("segment 1 = %+v", pl.Segments[1])
	}
	if pl.Segments[0].Duration.Numerator != 9009 || pl.Segments[0].Duration.Denominator != 1000 {
		t.Errorf("segment 0 duration = %+v", pl.Segments[0].Duration)
	}
}

func TestBuildMasterPlaylist(t *testing.T) {
	input := "#EXTM3U\n" +
		"#EXT-X-STREAM-INF:BANDWIDTH=1280000,RESOLUTION=640x360\n" +
		"low.m3u8\n" +
		"#EXT-X-STREAM-INF:BANDWIDTH=2560000,RESOLUTION=1280x720\n" +
		"high.m3u8\n"

	pl, err := Build([]byte(input))
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	if pl.Kind != KindMaster {
		t.Fatalf("Kind = %v, want master", pl.Kind)
	}
	if len(pl.Variants) != 2 {
		t.Fatalf("got %d variants, want 2", len(pl.Variants))
	}
	if pl.Variants[0].URI != "low.m3u8" {
		t.Errorf("variant 0 URI = %q", pl.Variants[0].URI)
	}
	if bw, _ := pl.Variants[0].Attributes.Get("BANDWIDTH"); bw != "1280000" {
		t.Errorf("variant 0 bandwidth = %q", bw)
	}
	if res, _ := pl.Variants[1].Attributes.Get("RESOLUTION"); res != "1280x720" {
		t.Errorf("variant 1 resolution = %q", res)
	}
}

func TestBuildPropagatesParseError(t *testing.T) {
	_, err := Build([]byte("#EXTINF\nseg.ts\n"))
	if err == nil {
		t.Fatal("expected a parse error")
	}
	pe, ok := err.(*ParseError)
	if !ok {
		t.Fatalf("error = %T, want *ParseError", err)
	}
	if pe.Code.String() != "MissingTagDataForEXTINF" {
		t.Errorf("code = %v", pe.Code)
	}
}

func TestResolveAll(t *testing.T) {
	pl := &Playlist{
		Kind:     KindMedia,
		Segments: []Segment{{URI: "seg1.ts"}, {URI: "https://other.example/seg2.ts"}},
	}
	base, err := url.Parse("https://cdn.example/vod/master.m3u8")
	if err != nil {
		t.Fatalf("url.Parse: %v", err)
	}
	if err := ResolveAll(pl, base); err != nil {
		t.Fatalf("ResolveAll: %v", err)
	}
	if pl.Segments[0].URI != "https://cdn.example/vod/seg1.ts" {
		t.Errorf("segment 0 URI = %q", pl.Segments[0].URI)
	}
	if pl.Segments[1].URI != "https://other.example/seg2.ts" {
		t.Errorf("segment 1 URI = %q", pl.Segments[1].URI)
	}
}

func TestBuildMixedTagsFirstSeenKindWins(t *testing.T) {
	input := "#EXTINF:5,\n" +
		"seg.ts\n" +
		"#EXT-X-STREAM-INF:BANDWIDTH=1000\n" +
		"variant.m3u8\n"

	pl, err := Build([]byte(input))
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if pl.Kind != KindMedia {
		t.Fatalf("Kind = %v, want media (EXTINF appears first in document order)", pl.Kind)
	}
	if len(pl.Segments) != 1 || pl.Segments[0].URI != "seg.ts" {
		t.Errorf("Segments = %+v", pl.Segments)
	}
}

func TestBuildSegmentScopedTags(t *testing.T) {
	input := "#EXTM3U\n" +
		"#EXT-X-TARGETDURATION:10\n" +
		"#EXT-X-DISCONTINUITY\n" +
		"#EXTINF:5,\n" +
		"seg1.ts\n" +
		"#EXT-X-BYTERANGE:1000@0\n" +
		"#EXTINF:5,\n" +
		"seg2.ts\n"

	pl, err := Build([]byte(input))
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	wantTags := []Tag{
		{Name: "EXTM3U"},
		{Name: "EXT-X-TARGETDURATION", Value: "10"},
	}
	if len(pl.Tags) != len(wantTags) {
		t.Fatalf("Tags = %+v, want %+v", pl.Tags, wantTags)
	}
	for i, want := range wantTags {
		if pl.Tags[i] != want {
			t.Errorf("Tags[%d] = %+v, want %+v", i, pl.Tags[i], want)
		}
	}

	if len(pl.Segments) != 2 {
		t.Fatalf("got %d segments, want 2", len(pl.Segments))
	}
	if len(pl.Segments[0].Tags) != 1 || pl.Segments[0].Tags[0].Name != "EXT-X-DISCONTINUITY" {
		t.Errorf("segment 0 tags = %+v", pl.Segments[0].Tags)
	}
	if len(pl.Segments[1].Tags) != 1 || pl.Segments[1].Tags[0] != (Tag{Name: "EXT-X-BYTERANGE", Value: "1000@0"}) {
		t.Errorf("segment 1 tags = %+v", pl.Segments[1].Tags)
	}
}

func TestParseAttributesQuotedCommas(t *testing.T) {
	attrs := parseAttributes(`BANDWIDTH=1280000,CODECS="avc1.4d401f,mp4a.40.2"`)
	if attrs["BANDWIDTH"] != "1280000" {
		t.Errorf("BANDWIDTH = %q", attrs["BANDWIDTH"])
	}
	if attrs["CODECS"] != "avc1.4d401f,mp4a.40.2" {
		t.Errorf("CODECS = %q", attrs["CODECS"])
	}
}
