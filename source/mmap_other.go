//go:build !(linux || darwin) || wasm
// +build !linux,!darwin wasm

package source

// tryMmap is a stub on platforms without a memory-mapping syscall
// path (or under wasm, which has no real filesystem). It always
// reports ok=false so Open falls back to readAll.
func tryMmap(path string) (buf *Buffer, ok bool, err error) {
	return nil, false, nil
}
