//go:build unix

package dimacsparser

import (
	"os"

	"golang.org/x/sys/unix"
)

// mapFile memory-maps path read-only and returns the mapped bytes plus a
// closer that unmaps them. An empty file maps to a nil slice with a no-op
// closer, since unix.Mmap rejects zero-length mappings.
func mapFile(path string) ([]byte, func() error, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return nil, nil, err
	}
	if fi.Size() == 0 {
		return nil, func() error { return nil }, nil
	}

	data, err := unix.Mmap(int(f.Fd()), 0, int(fi.Size()), unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		return nil, nil, err
	}
	return data, func() error { return unix.Munmap(data) }, nil
}
