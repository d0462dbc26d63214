//go:build !unix

package dimacsparser

import "os"

// mapFile reads path fully into memory on platforms without a unix mmap
// syscall. The returned closer is a no-op: the slice is ordinary heap
// memory, released by the garbage collector once unreferenced.
func mapFile(path string) ([]byte, func() error, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}
	return data, func() error { return nil }, nil
}
