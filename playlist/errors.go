package playlist

import (
	"fmt"

	"github.com/Alain-L/rapidhls/scanner"
)

// ParseError wraps a structural scanning failure (see scanner.ErrorCode)
// with the playlist-level context of having failed to build a Playlist.
type ParseError struct {
	Code    scanner.ErrorCode
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("playlist: %s: %s", e.Code, e.Message)
}
