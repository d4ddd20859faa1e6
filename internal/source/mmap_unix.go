//go:build unix

package source

import (
	"fmt"
	"os"
	"syscall"
)

// MmapFile maps filename read-only for Open. The returned bytes back a
// Buffer's Data, so record spans found by the scanner index straight into the
// mapping. cleanup unmaps and closes the file; Buffer.Close calls it once.
//
// An empty file is not mapped and yields an empty, non-nil slice.
func MmapFile(filename string) ([]byte, func(), error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open file: %w", err)
	}

	stat, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, nil, fmt.Errorf("failed to stat file: %w", err)
	}

	size := stat.Size()
	if size == 0 {
		// mmap rejects a zero length
		return []byte{}, func() { f.Close() }, nil
	}

	data, err := syscall.Mmap(
		int(f.Fd()),
		0,
		int(size),
		syscall.PROT_READ,
		syscall.MAP_SHARED,
	)
	if err != nil {
		f.Close()
		return nil, nil, fmt.Errorf("failed to mmap file: %w", err)
	}

	cleanup := func() {
		_ = syscall.Munmap(data)
		f.Close()
	}

	return data, cleanup, nil
}
