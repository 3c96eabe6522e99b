package output

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/Alain-L/rapidhls/playlist"
)

// defaultTableWidth is used when stdout isn't a terminal (piped output,
// CI logs) and golang.org/x/term can't report a width.
const defaultTableWidth = 100

// TableFormatter renders a Playlist as a boxed table sized to fit the
// current terminal, truncating the URI column rather than wrapping.
type TableFormatter struct{}

// NewTableFormatter returns a TableFormatter.
func NewTableFormatter() *TableFormatter {
	return &TableFormatter{}
}

func terminalWidth() int {
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w
	}
	return defaultTableWidth
}

// Format implements Formatter.
func (f *TableFormatter) Format(pl *playlist.Playlist) (string, error) {
	width := terminalWidth()
	switch pl.Kind {
	case playlist.KindMaster:
		return formatVariantsTable(pl.Variants, width), nil
	default:
		return formatSegmentsTable(pl.Segments, width), nil
	}
}

func formatSegmentsTable(segments []playlist.Segment, width int) string {
	headers := []string{"#", "Duration", "Title", "URI"}
	rows := make([][]string, len(segments))
	for i, seg := range segments {
		rows[i] = []string{
			fmt.Sprintf("%d", i+1),
			durationSeconds(seg.Duration),
			seg.Title,
			seg.URI,
		}
	}
	return renderTable(headers, rows, width)
}

func formatVariantsTable(variants []playlist.Variant, width int) string {
	headers := []string{"#", "Bandwidth", "Resolution", "URI"}
	rows := make([][]string, len(variants))
	for i, v := range variants {
		bw, _ := v.Attributes.Get("BANDWIDTH")
		res, _ := v.Attributes.Get("RESOLUTION")
		rows[i] = []string{fmt.Sprintf("%d", i+1), bw, res, v.URI}
	}
	return renderTable(headers, rows, width)
}

// renderTable draws a box-bordered table whose last column (URI, the
// only one with unbounded content) is truncated so the whole table
// fits within width.
func renderTable(headers []string, rows [][]string, width int) string {
	colWidths := make([]int, len(headers))
	for i, h := range headers {
		colWidths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(colWidths)-1 && len(cell) > colWidths[i] {
				colWidths[i] = len(cell)
			}
		}
	}

	last := len(colWidths) - 1
	fixed := 0
	for i := 0; i < last; i++ {
		fixed += colWidths[i] + 3 // " | " separator
	}
	available := width - fixed - 4 // outer borders and padding
	colWidths[last] = len(headers[last])
	for _, row := range rows {
		if c := len(row[last]); c > colWidths[last] {
			colWidths[last] = c
		}
	}
	if available > 0 && colWidths[last] > available {
		colWidths[last] = available
	}
	if colWidths[last] < len(headers[last]) {
		colWidths[last] = len(headers[last])
	}

	var b strings.Builder
	writeBorder(&b, colWidths, "┌", "┬", "┐")
	writeRow(&b, headers, colWidths)
	writeBorder(&b, colWidths, "├", "┼", "┤")
	for _, row := range rows {
		truncated := make([]string, len(row))
		copy(truncated, row)
		last := len(truncated) - 1
		if len(truncated[last]) > colWidths[last] {
			truncated[last] = truncated[last][:colWidths[last]-1] + "…"
		}
		writeRow(&b, truncated, colWidths)
	}
	writeBorder(&b, colWidths, "└", "┴", "┘")
	return b.String()
}

func writeBorder(b *strings.Builder, widths []int, left, mid, right string) {
	b.WriteString(left)
	for i, w := range widths {
		if i > 0 {
			b.WriteString(mid)
		}
		b.WriteString(strings.Repeat("─", w+2))
	}
	b.WriteString(right)
	b.WriteString("\n")
}

func writeRow(b *strings.Builder, cells []string, widths []int) {
	b.WriteString("│")
	for i, cell := range cells {
		b.WriteString(fmt.Sprintf(" %-*s ", widths[i], cell))
		b.WriteString("│")
	}
	b.WriteString("\n")
}
