// Package cmd implements the command-line interface for rapidhls.
package cmd

import (
	"log"
	"os"
	"path/filepath"
	"strings"
)

// collectFiles gathers all playlist files from the provided arguments.
// Arguments can be:
//   - Individual files, including "archive!member" paths
//   - Glob patterns (e.g. "*.m3u8")
//   - Directories (scanned for supported playlist files, non-recursive)
func collectFiles(args []string) []string {
	var files []string

	for _, arg := range args {
		if strings.Contains(arg, "!") {
			// An archive member reference: pass through untouched, since
			// neither os.Stat nor filepath.Glob understands the syntax.
			files = append(files, arg)
			continue
		}

		info, err := os.Stat(arg)
		if err == nil && info.IsDir() {
			dirFiles, err := gatherPlaylistFiles(arg)
			if err != nil {
				log.Printf("[WARN] failed to read directory %s: %v", arg, err)
				continue
			}
			files = append(files, dirFiles...)
			continue
		}

		matches, err := filepath.Glob(arg)
		if err != nil {
			log.Printf("[WARN] invalid pattern %s: %v", arg, err)
			continue
		}
		if len(matches) == 0 {
			log.Printf("[WARN] no files match pattern: %s", arg)
			continue
		}
		files = append(files, matches...)
	}

	return files
}

// gatherPlaylistFiles scans a directory for supported playlist files
// (non-recursive).
func gatherPlaylistFiles(dir string) ([]string, error) {
	f, err := os.Open(dir)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	entries, err := f.Readdir(-1)
	if err != nil {
		return nil, err
	}

	var found []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if isSupportedPlaylistFile(entry.Name()) {
			found = append(found, filepath.Join(dir, entry.Name()))
		}
	}
	return found, nil
}

// isSupportedPlaylistFile reports whether name looks like a supported
// playlist file: an m3u8/m3u document, optionally compressed, or an
// archive that might contain one (selected with an "!member" suffix
// by the caller).
func isSupportedPlaylistFile(name string) bool {
	lower := strings.ToLower(name)
	supported := []string{
		".m3u8", ".m3u",
		".m3u8.gz", ".m3u.gz",
		".m3u8.zst", ".m3u8.zstd", ".m3u.zst", ".m3u.zstd",
		".m3u8.br", ".m3u.br",
		".m3u8.xz", ".m3u.xz",
		".tar", ".tar.gz", ".tgz", ".tar.zst", ".tar.zstd", ".tzst",
		".7z",
	}
	for _, ext := range supported {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}
