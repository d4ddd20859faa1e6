package rowscan

import (
	"io"

	"github.com/shapestone/shape-rowscan/internal/source"
)

// File is an input mapped into memory for scanning. Spans and byte slices
// taken from it are invalid after Close.
type File struct {
	buf  *source.Buffer
	opts Options
}

// OpenFile maps the named file and validates opts.
func OpenFile(path string, opts Options) (*File, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	buf, err := source.Open(path)
	if err != nil {
		return nil, err
	}
	return &File{buf: buf, opts: opts}, nil
}

// ReadAll reads r to the end and wraps it as a File. name is used in error
// messages only.
func ReadAll(name string, r io.Reader, opts Options) (*File, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	buf, err := source.FromReader(name, r)
	if err != nil {
		return nil, err
	}
	return &File{buf: buf, opts: opts}, nil
}

// Name returns the path or name the File was opened with.
func (f *File) Name() string {
	return f.buf.Name
}

// Bytes returns the whole input.
func (f *File) Bytes() []byte {
	return f.buf.Data
}

// Scanner returns a new Scanner over the input.
func (f *File) Scanner() *Scanner {
	return NewScanner(f.buf.Data, f.opts)
}

// Index returns the spans of all records in the input.
func (f *File) Index() ([]Span, error) {
	return Index(f.buf.Data, f.opts)
}

// Close unmaps the input. It is safe to call more than once.
func (f *File) Close() error {
	f.buf.Close()
	return nil
}
