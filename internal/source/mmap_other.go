//go:build !unix

package source

import (
	"fmt"
	"os"
)

// MmapFile reads filename into a heap buffer for Open where mmap is not
// available. cleanup has nothing to release, so Buffer.Close only drops the
// reference.
func MmapFile(filename string) ([]byte, func(), error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read file: %w", err)
	}

	return data, func() {}, nil
}
