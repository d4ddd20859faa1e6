// Package source maps input files into one contiguous, read-only byte buffer.
package source

import (
	"fmt"
	"io"
)

// Buffer is a read-only view of an input. Data must not be used after Close.
type Buffer struct {
	Data    []byte
	Name    string
	cleanup func()
}

// Open maps the named file into memory.
func Open(filename string) (*Buffer, error) {
	data, cleanup, err := MmapFile(filename)
	if err != nil {
		return nil, err
	}
	return &Buffer{Data: data, Name: filename, cleanup: cleanup}, nil
}

// FromReader reads r to the end into a heap buffer.
func FromReader(name string, r io.Reader) (*Buffer, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", name, err)
	}
	return &Buffer{Data: data, Name: name}, nil
}

// Close releases the mapping. It is safe to call more than once.
func (b *Buffer) Close() {
	if b.cleanup != nil {
		b.cleanup()
		b.cleanup = nil
	}
	b.Data = nil
}
