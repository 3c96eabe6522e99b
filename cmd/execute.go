// Package cmd implements the command-line interface for rapidhls.
package cmd

import (
	"fmt"
	"log"
	"sync"

	"github.com/spf13/cobra"

	"github.com/Alain-L/rapidhls/playlist"
	"github.com/Alain-L/rapidhls/source"
)

// parseResult is one file's outcome from the parallel parsing stage.
type parseResult struct {
	file string
	pl   *playlist.Playlist
	err  error
}

// executeParse is the root command's entry point. It orchestrates:
//  1. Collect input files
//  2. Parse them, in parallel, into Playlists
//  3. Resolve relative URIs against --base, if given
//  4. Render each Playlist with the requested Formatter
func executeParse(cmd *cobra.Command, args []string) error {
	files := collectFiles(args)
	if len(files) == 0 {
		return fmt.Errorf("no playlist files found")
	}

	if precisionFlag < 0 || precisionFlag > 9 {
		return fmt.Errorf("--precision must be between 0 and 9, got %d", precisionFlag)
	}

	base, err := parseBaseURL(baseFlag)
	if err != nil {
		return fmt.Errorf("invalid --base URL: %w", err)
	}

	var cache *playlist.Cache
	if cacheSize > 0 {
		cache, err = playlist.NewCache(cacheSize)
		if err != nil {
			return fmt.Errorf("creating playlist cache: %w", err)
		}
	}

	results := parseFilesParallel(files, cache)

	fmter := pickFormatter()
	multi := len(files) > 1
	anySuccess := false

	for _, r := range results {
		if r.err != nil {
			log.Printf("[WARN] %s: %v", r.file, r.err)
			continue
		}
		anySuccess = true

		if base != nil {
			if err := playlist.ResolveAll(r.pl, base); err != nil {
				log.Printf("[WARN] %s: resolving URIs: %v", r.file, err)
				continue
			}
		}

		rendered, err := fmter.Format(r.pl)
		if err != nil {
			log.Printf("[WARN] %s: rendering output: %v", r.file, err)
			continue
		}

		if multi {
			fmt.Printf("=== %s ===\n", r.file)
		}
		fmt.Println(rendered)
	}

	if !anySuccess {
		return fmt.Errorf("no files could be parsed; check that they exist, are readable, and are valid playlists")
	}
	return nil
}

// parseFilesParallel parses files using up to determineWorkerCount
// workers, preserving the input order of the returned results.
func parseFilesParallel(files []string, cache *playlist.Cache) []parseResult {
	results := make([]parseResult, len(files))
	numWorkers := determineWorkerCount(len(files))

	if numWorkers == 1 {
		for i, file := range files {
			pl, err := parsePlaylistFile(file, cache)
			results[i] = parseResult{file: file, pl: pl, err: err}
		}
		return results
	}

	indexChan := make(chan int, len(files))
	for i := range files {
		indexChan <- i
	}
	close(indexChan)

	var wg sync.WaitGroup
	for w := 0; w < numWorkers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range indexChan {
				pl, err := parsePlaylistFile(files[i], cache)
				results[i] = parseResult{file: files[i], pl: pl, err: err}
			}
		}()
	}
	wg.Wait()

	return results
}

// parsePlaylistFile opens path (a plain file, a compressed file, or an
// "archive!member" reference) and builds a Playlist from it, consulting
// cache first and populating it on a successful parse.
func parsePlaylistFile(path string, cache *playlist.Cache) (*playlist.Playlist, error) {
	if cache != nil {
		if pl, ok := cache.Get(path); ok {
			return pl, nil
		}
	}

	buf, err := source.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer buf.Close()

	pl, err := playlist.BuildWithPrecision(buf.Bytes(), precisionFlag)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	if cache != nil {
		cache.Put(path, pl)
	}
	return pl, nil
}
