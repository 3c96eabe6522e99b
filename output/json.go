package output

import (
	"encoding/json"

	"github.com/Alain-L/rapidhls/playlist"
)

// playlistJSON mirrors playlist.Playlist in a shape meant for external
// consumption: durations are pre-formatted and attribute maps are kept
// as plain objects rather than the package's internal Attributes type.
type playlistJSON struct {
	Kind     string        `json:"kind"`
	Tags     []tagJSON     `json:"tags,omitempty"`
	Segments []segmentJSON `json:"segments,omitempty"`
	Variants []variantJSON `json:"variants,omitempty"`
}

type tagJSON struct {
	Name  string `json:"name"`
	Value string `json:"value,omitempty"`
}

type segmentJSON struct {
	Duration string    `json:"duration"`
	Title    string    `json:"title,omitempty"`
	URI      string    `json:"uri"`
	Tags     []tagJSON `json:"tags,omitempty"`
}

type variantJSON struct {
	Attributes map[string]string `json:"attributes,omitempty"`
	URI        string            `json:"uri"`
}

func toPlaylistJSON(pl *playlist.Playlist) playlistJSON {
	out := playlistJSON{Kind: pl.Kind.String()}
	for _, tag := range pl.Tags {
		out.Tags = append(out.Tags, tagJSON{Name: tag.Name, Value: tag.Value})
	}
	for _, seg := range pl.Segments {
		sj := segmentJSON{
			Duration: durationSeconds(seg.Duration),
			Title:    seg.Title,
			URI:      seg.URI,
		}
		for _, tag := range seg.Tags {
			sj.Tags = append(sj.Tags, tagJSON{Name: tag.Name, Value: tag.Value})
		}
		out.Segments = append(out.Segments, sj)
	}
	for _, v := range pl.Variants {
		out.Variants = append(out.Variants, variantJSON{
			Attributes: map[string]string(v.Attributes),
			URI:        v.URI,
		})
	}
	return out
}

// JSONFormatter renders a Playlist as indented JSON.
type JSONFormatter struct{}

// NewJSONFormatter returns a JSONFormatter.
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{}
}

// Format implements Formatter.
func (f *JSONFormatter) Format(pl *playlist.Playlist) (string, error) {
	b, err := json.MarshalIndent(toPlaylistJSON(pl), "", "  ")
	if err != nil {
		return "", err
	}
	return string(b), nil
}
