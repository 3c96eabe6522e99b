package playlist

import (
	"fmt"
	"net/url"
)

// Resolve turns a segment or variant URI — which HLS permits to be
// relative — into an absolute URL against the playlist's own location.
// An already-absolute URI is returned unchanged.
func Resolve(base *url.URL, ref string) (string, error) {
	if base == nil {
		return ref, nil
	}
	refURL, err := url.Parse(ref)
	if err != nil {
		return "", fmt.Errorf("playlist: resolve %q against %s: %w", ref, base, err)
	}
	return base.ResolveReference(refURL).String(), nil
}

// ResolveAll rewrites every segment and variant URI in pl in place,
// resolving them against base.
func ResolveAll(pl *Playlist, base *url.URL) error {
	for i := range pl.Segments {
		resolved, err := Resolve(base, pl.Segments[i].URI)
		if err != nil {
			return err
		}
		pl.Segments[i].URI = resolved
	}
	for i := range pl.Variants {
		resolved, err := Resolve(base, pl.Variants[i].URI)
		if err != nil {
			return err
		}
		pl.Variants[i].URI = resolved
	}
	return nil
}
