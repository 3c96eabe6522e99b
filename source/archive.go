//go:build !wasm

package source

import (
	"archive/tar"
	"fmt"
	"io"
	"strings"

	"github.com/bodgit/sevenzip"
)

// splitArchiveMember recognizes the "archive!member" path convention
// used to address one playlist inside a tar or 7z bundle (VOD
// packaging pipelines commonly ship a manifest alongside its segments
// in a single archive). ok is false for an ordinary filesystem path.
func splitArchiveMember(path string) (member archiveMember, ok bool) {
	i := strings.LastIndexByte(path, '!')
	if i < 0 {
		return archiveMember{}, false
	}
	return archiveMember{archivePath: path[:i], name: path[i+1:]}, true
}

type archiveMember struct {
	archivePath string
	name        string
}

func openArchiveMember(m archiveMember) (*Buffer, error) {
	lower := strings.ToLower(m.archivePath)
	switch {
	case strings.HasSuffix(lower, ".7z"):
		return openSevenZipMember(m)
	case strings.HasSuffix(lower, ".tar"), strings.HasSuffix(lower, ".tar.gz"),
		strings.HasSuffix(lower, ".tgz"), strings.HasSuffix(lower, ".tar.zst"),
		strings.HasSuffix(lower, ".tar.zstd"), strings.HasSuffix(lower, ".tzst"):
		return openTarMember(m)
	default:
		return nil, fmt.Errorf("source: unrecognized archive type for %s", m.archivePath)
	}
}

func openTarMember(m archiveMember) (*Buffer, error) {
	f, err := Fs.Open(m.archivePath)
	if err != nil {
		return nil, fmt.Errorf("source: open archive %s: %w", m.archivePath, err)
	}
	defer f.Close()

	var r io.Reader = f
	lower := strings.ToLower(m.archivePath)
	switch {
	case strings.HasSuffix(lower, ".tar.gz"), strings.HasSuffix(lower, ".tgz"):
		gz, err := openGzip(f)
		if err != nil {
			return nil, fmt.Errorf("source: open gzip reader for %s: %w", m.archivePath, err)
		}
		defer gz.Close()
		r = gz
	case strings.HasSuffix(lower, ".tar.zst"), strings.HasSuffix(lower, ".tar.zstd"), strings.HasSuffix(lower, ".tzst"):
		zr, err := openZstd(f)
		if err != nil {
			return nil, fmt.Errorf("source: open zstd reader for %s: %w", m.archivePath, err)
		}
		defer zr.Close()
		r = zr
	}

	tr := tar.NewReader(r)
	for {
		hdr, err := tr.Next()
		if err == io.EOF {
			return nil, fmt.Errorf("source: member %s not found in %s", m.name, m.archivePath)
		}
		if err != nil {
			return nil, fmt.Errorf("source: reading archive %s: %w", m.archivePath, err)
		}
		if hdr.Name != m.name || hdr.Typeflag != tar.TypeReg {
			continue
		}
		data, err := io.ReadAll(tr)
		if err != nil {
			return nil, fmt.Errorf("source: extracting %s from %s: %w", m.name, m.archivePath, err)
		}
		return newOwnedBuffer(data), nil
	}
}

func openSevenZipMember(m archiveMember) (*Buffer, error) {
	archiveFile, err := Fs.Open(m.archivePath)
	if err != nil {
		return nil, fmt.Errorf("source: open archive %s: %w", m.archivePath, err)
	}
	defer archiveFile.Close()

	info, err := archiveFile.Stat()
	if err != nil {
		return nil, fmt.Errorf("source: stat archive %s: %w", m.archivePath, err)
	}

	rz, err := sevenzip.NewReader(archiveFile, info.Size())
	if err != nil {
		return nil, fmt.Errorf("source: open 7z archive %s: %w", m.archivePath, err)
	}

	for _, f := range rz.File {
		if f.Name != m.name {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, fmt.Errorf("source: opening %s in %s: %w", m.name, m.archivePath, err)
		}
		defer rc.Close()

		data, err := io.ReadAll(rc)
		if err != nil {
			return nil, fmt.Errorf("source: extracting %s from %s: %w", m.name, m.archivePath, err)
		}
		return newOwnedBuffer(data), nil
	}
	return nil, fmt.Errorf("source: member %s not found in %s", m.name, m.archivePath)
}
