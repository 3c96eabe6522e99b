//go:build !wasm

package source

import (
	"fmt"
	"io"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/andybalholm/brotli"
	"github.com/klauspost/compress/zstd"
	"github.com/klauspost/pgzip"
	"github.com/ulikunitz/xz"
)

// compressionCodec knows how to wrap a raw file reader with a
// streaming decompressor for one compressed format.
type compressionCodec struct {
	name   string
	opener func(io.Reader) (io.ReadCloser, error)
}

var codecsByExtension = map[string]compressionCodec{
	".gz":   {name: "gzip", opener: openGzip},
	".zst":  {name: "zstd", opener: openZstd},
	".zstd": {name: "zstd", opener: openZstd},
	".br":   {name: "brotli", opener: openBrotli},
	".xz":   {name: "xz", opener: openXz},
}

// detectCompressionCodec reports the codec implied by path's
// extension, and whether one was recognized at all.
func detectCompressionCodec(path string) (compressionCodec, bool) {
	ext := strings.ToLower(filepath.Ext(path))
	codec, ok := codecsByExtension[ext]
	return codec, ok
}

// openCompressed decompresses path in full and returns the result as
// an owned in-memory Buffer. A reverse scanner needs random access to
// the whole document, so the entire decompressed stream is
// materialized rather than sampled or streamed incrementally.
func openCompressed(path string, codec compressionCodec) (*Buffer, error) {
	f, err := Fs.Open(path)
	if err != nil {
		return nil, fmt.Errorf("source: open %s: %w", path, err)
	}
	defer f.Close()

	r, err := codec.opener(f)
	if err != nil {
		return nil, fmt.Errorf("source: open %s reader for %s: %w", codec.name, path, err)
	}
	defer r.Close()

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("source: decompress %s (%s): %w", path, codec.name, err)
	}
	return newOwnedBuffer(data), nil
}

// openGzip returns a parallel gzip reader. Decoding a playlist is not
// typically CPU-bound the way decoding a multi-gigabyte log is, but
// pgzip's block decoder is a drop-in replacement for compress/gzip and
// costs nothing extra for small inputs.
func openGzip(r io.Reader) (io.ReadCloser, error) {
	threads := runtime.GOMAXPROCS(0)
	if threads < 1 {
		threads = 1
	}
	if threads > 8 {
		threads = 8
	}
	const blockSize = 1 << 20
	return pgzip.NewReaderN(r, blockSize, threads)
}

type zstdReadCloser struct {
	*zstd.Decoder
}

func (z *zstdReadCloser) Close() error {
	z.Decoder.Close()
	return nil
}

func openZstd(r io.Reader) (io.ReadCloser, error) {
	dec, err := zstd.NewReader(r)
	if err != nil {
		return nil, err
	}
	return &zstdReadCloser{Decoder: dec}, nil
}

func openBrotli(r io.Reader) (io.ReadCloser, error) {
	return io.NopCloser(brotli.NewReader(r)), nil
}

type xzReadCloser struct {
	*xz.Reader
}

func (x *xzReadCloser) Close() error {
	return nil
}

func openXz(r io.Reader) (io.ReadCloser, error) {
	dec, err := xz.NewReader(r)
	if err != nil {
		return nil, err
	}
	return &xzReadCloser{Reader: dec}, nil
}
