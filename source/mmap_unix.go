//go:build (linux || darwin) && !wasm
// +build linux darwin
// +build !wasm

package source

import (
	"fmt"
	"os"
	"syscall"

	"github.com/spf13/afero"
)

// tryMmap attempts to map path directly into memory. It reports
// ok=false (not an error) whenever mmap cannot apply — path isn't on
// the real OS filesystem, can't be opened or stat'ed, or the mapping
// syscall itself fails (pipes, network filesystems, permissions) — so
// the caller can fall back to a buffered read. An empty file is not
// mapped: it yields an empty Buffer with ok=true.
func tryMmap(path string) (buf *Buffer, ok bool, err error) {
	if _, isOsFs := Fs.(*afero.OsFs); !isOsFs {
		return nil, false, nil
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, false, nil
	}
	closeFile := true
	defer func() {
		if closeFile {
			file.Close()
		}
	}()

	stat, err := file.Stat()
	if err != nil {
		return nil, false, nil
	}
	size := stat.Size()
	if size == 0 {
		return newOwnedBuffer(nil), true, nil
	}

	data, err := syscall.Mmap(int(file.Fd()), 0, int(size), syscall.PROT_READ, syscall.MAP_SHARED)
	if err != nil {
		return nil, false, nil
	}

	closeFile = false
	return newUnmanagedBuffer(data, func() error {
		munmapErr := syscall.Munmap(data)
		closeErr := file.Close()
		if munmapErr != nil {
			return fmt.Errorf("source: munmap: %w", munmapErr)
		}
		return closeErr
	}), true, nil
}
