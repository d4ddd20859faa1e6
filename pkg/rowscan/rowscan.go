// Package rowscan finds record boundaries in delimited text (CSV, TSV and
// friends) held in a single in-memory buffer.
//
// Boundaries are found in one linear pass without tokenizing. The scanner
// copes with CR, LF and CRLF terminators mixed in one buffer, quoted fields
// containing literal newlines, a leading byte-order mark, comment lines and
// blank lines. Malformed input never produces an error at this level: an
// unterminated quote simply runs to the end of the buffer.
//
// # Thread Safety
//
// The boundary functions (SkipBOM, FindFirstLine, FindNextNewline and the
// classifiers) are pure and safe for concurrent use over the same buffer.
// A Scanner is not; give each goroutine its own, or use Index with
// Options.Threads to split the work.
//
// # Example usage with Scanner:
//
//	opts := rowscan.DefaultOptions()
//	opts.Comment = "#"
//	s := rowscan.NewScanner(data, opts)
//	for s.Scan() {
//	    span := s.Span()
//	    fmt.Println(span.Begin, span.End, span.Kind)
//	}
//	if err := s.Err(); err != nil {
//	    // handle error
//	}
//
// # Example usage with the boundary functions:
//
//	start := rowscan.FindFirstLine(data, 1, "#", true, true, '"')
//	for start < len(data) {
//	    off, _ := rowscan.FindNextNewline(data, start, "#", true, true, '"')
//	    next := rowscan.NextLineStart(data, off)
//	    // data[start:next] is one record including its terminator
//	    start = next
//	}
package rowscan

import (
	"github.com/shapestone/shape-rowscan/internal/boundary"
)

// NewlineKind identifies the line terminator convention found at a boundary.
type NewlineKind = boundary.NewlineKind

// Terminator conventions.
const (
	CR      = boundary.CR
	CRLF    = boundary.CRLF
	LF      = boundary.LF
	Unknown = boundary.Unknown
)

// SkipBOM returns the width of the byte-order mark at the start of buf:
// 3 for UTF-8, 2 for UTF-16, 4 for UTF-32, 0 when there is none.
func SkipBOM(buf []byte) int {
	return boundary.SkipBOM(buf)
}

// FindFirstLine returns the offset of the first record after the BOM, skip
// explicitly discarded lines, and any blank or comment lines.
func FindFirstLine(buf []byte, skip int, comment string, skipEmptyRows, embeddedNL bool, quote byte) int {
	return boundary.FindFirstLine(buf, skip, comment, skipEmptyRows, embeddedNL, quote)
}

// FindNextNewline returns the offset and kind of the next record terminator at
// or after start. With embeddedNL, terminators inside quotes are skipped and a
// CRLF is reported at its LF; otherwise a CRLF is reported at its CR as CR.
// At the end of the buffer it returns (len(buf)-1, Unknown).
func FindNextNewline(buf []byte, start int, comment string, skipEmptyRows, embeddedNL bool, quote byte) (int, NewlineKind) {
	return boundary.FindNextNewline(buf, start, comment, skipEmptyRows, embeddedNL, quote)
}

// NextLineStart returns the first offset after the terminator reported at off.
func NextLineStart(buf []byte, off int) int {
	return boundary.NextLineStart(buf, off)
}

// IsComment reports whether span starts with the comment prefix.
func IsComment(span []byte, comment string) bool {
	return boundary.IsComment(span, comment)
}

// IsBlankOrComment reports whether the line at the start of line is blank or a
// comment and should be skipped.
func IsBlankOrComment(line []byte, comment string, skipEmptyRows bool) bool {
	return boundary.IsBlankOrComment(line, comment, skipEmptyRows)
}

// TrimWhitespace narrows buf[begin:end] past leading and trailing spaces,
// tabs, CR and NUL bytes.
func TrimWhitespace(buf []byte, begin, end int) (int, int) {
	return boundary.TrimWhitespace(buf, begin, end)
}

// HasExpectedLineEnding reports whether terminator byte b is consistent with
// the convention kind first seen in the file.
func HasExpectedLineEnding(kind NewlineKind, b byte) bool {
	return boundary.HasExpectedLineEnding(kind, b)
}
