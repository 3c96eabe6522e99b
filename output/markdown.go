package output

import (
	"fmt"
	"strings"

	"github.com/Alain-L/rapidhls/playlist"
)

// MarkdownFormatter renders a Playlist as a Markdown report: a summary
// line, a table of top-level tags, and either a segment table (media
// playlists) or a variant table (master playlists).
type MarkdownFormatter struct{}

// NewMarkdownFormatter returns a MarkdownFormatter.
func NewMarkdownFormatter() *MarkdownFormatter {
	return &MarkdownFormatter{}
}

// Format implements Formatter.
func (f *MarkdownFormatter) Format(pl *playlist.Playlist) (string, error) {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("## %s playlist\n\n", pl.Kind))

	if len(pl.Tags) > 0 {
		b.WriteString("| Tag | Value |\n")
		b.WriteString("|---|---|\n")
		for _, tag := range pl.Tags {
			b.WriteString(fmt.Sprintf("| %s | %s |\n", tag.Name, tag.Value))
		}
		b.WriteString("\n")
	}

	switch pl.Kind {
	case playlist.KindMaster:
		writeVariantsMarkdown(&b, pl.Variants)
	default:
		writeSegmentsMarkdown(&b, pl.Segments)
	}

	return b.String(), nil
}

func writeSegmentsMarkdown(b *strings.Builder, segments []playlist.Segment) {
	if len(segments) == 0 {
		return
	}
	b.WriteString("### Segments\n\n")
	b.WriteString("| # | Duration (s) | Title | URI |\n")
	b.WriteString("|---:|---:|---|---|\n")
	for i, seg := range segments {
		b.WriteString(fmt.Sprintf("| %d | %s | %s | %s |\n",
			i+1, durationSeconds(seg.Duration), seg.Title, seg.URI))
	}
}

func writeVariantsMarkdown(b *strings.Builder, variants []playlist.Variant) {
	if len(variants) == 0 {
		return
	}
	b.WriteString("### Variants\n\n")
	b.WriteString("| # | Bandwidth | Resolution | URI |\n")
	b.WriteString("|---:|---:|---|---|\n")
	for i, v := range variants {
		bw, _ := v.Attributes.Get("BANDWIDTH")
		res, _ := v.Attributes.Get("RESOLUTION")
		b.WriteString(fmt.Sprintf("| %d | %s | %s | %s |\n", i+1, bw, res, v.URI))
	}
}
