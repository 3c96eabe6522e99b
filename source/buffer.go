// Package source owns the lifecycle of the byte buffer handed to
// scanner.Scan: opening a playlist from a filesystem, an
// archive member, or a compressed stream, and materializing it into a
// single contiguous, immutable region. The scanner only ever borrows
// that region; this package is the sole owner.
package source

import (
	"fmt"
	"io"

	"github.com/spf13/afero"
)

// Buffer is an owned, immutable byte region ready to be scanned. Close
// releases whatever backing resource produced it (an mmap, a decoded
// archive member, or a plain in-memory read) and must be called
// exactly once.
type Buffer struct {
	data  []byte
	close func() error
}

// Bytes returns the buffer's contents. The returned slice is only
// valid until Close is called.
func (b *Buffer) Bytes() []byte {
	return b.data
}

// Close releases the buffer's backing resource. It is safe to call
// Close on a zero-value Buffer (e.g. one default-initialized for an
// empty playlist).
func (b *Buffer) Close() error {
	if b.close == nil {
		return nil
	}
	return b.close()
}

func newOwnedBuffer(data []byte) *Buffer {
	return &Buffer{data: data}
}

func newUnmanagedBuffer(data []byte, close func() error) *Buffer {
	return &Buffer{data: data, close: close}
}

// Fs is the filesystem abstraction used to open playlists. afero.Fs
// lets callers substitute an in-memory filesystem in tests instead of
// touching disk.
var Fs afero.Fs = afero.NewOsFs()

// Open resolves path through the compression and archive layers (see
// compression.go and archive.go) and returns a fully materialized
// Buffer. Uncompressed, non-archived local files are mapped via mmap
// on platforms that support it (see mmap_unix.go); every other case
// falls back to a single buffered read (readAll).
func Open(path string) (*Buffer, error) {
	if archiveMember, ok := splitArchiveMember(path); ok {
		return openArchiveMember(archiveMember)
	}

	if codec, ok := detectCompressionCodec(path); ok {
		return openCompressed(path, codec)
	}

	buf, ok, err := tryMmap(path)
	if err != nil {
		return nil, fmt.Errorf("source: mmap %s: %w", path, err)
	}
	if ok {
		return buf, nil
	}

	return readAll(path)
}

func readAll(path string) (*Buffer, error) {
	f, err := Fs.Open(path)
	if err != nil {
		return nil, fmt.Errorf("source: open %s: %w", path, err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("source: read %s: %w", path, err)
	}
	return newOwnedBuffer(data), nil
}
