// Package boundary finds record boundaries in delimited text held in memory.
//
// Every function in this package is a pure function over a caller-owned byte
// slice. Nothing is mutated and there is no hidden cursor, so the functions are
// safe to call from many goroutines over the same buffer.
//
// Failure is reported through sentinel results rather than errors: a scan that
// runs off the end of the buffer returns the last valid index paired with
// Unknown, meaning "the rest of the buffer is the final record".
package boundary

// NewlineKind identifies the line terminator convention found at a boundary.
type NewlineKind uint8

const (
	// CR is a lone carriage return (classic Mac OS).
	CR NewlineKind = iota
	// CRLF is a carriage return followed by a line feed (Windows).
	CRLF
	// LF is a lone line feed (Unix).
	LF
	// Unknown means no terminator was found before the end of the buffer.
	Unknown
)

// String returns the conventional name of the terminator.
func (k NewlineKind) String() string {
	switch k {
	case CR:
		return "CR"
	case CRLF:
		return "CRLF"
	case LF:
		return "LF"
	default:
		return "Unknown"
	}
}

// isTerminator reports whether b ends a line.
func isTerminator(b byte) bool {
	return b == '\n' || b == '\r'
}

// isCRLF reports whether buf[pos] starts a two-byte CRLF terminator.
func isCRLF(buf []byte, pos int) bool {
	return buf[pos] == '\r' && pos+1 < len(buf) && buf[pos+1] == '\n'
}

// HasExpectedLineEnding reports whether b is a valid terminator byte for a file
// whose first record ended with kind. LF always matches; CR only matches files
// that use bare CR terminators.
func HasExpectedLineEnding(kind NewlineKind, b byte) bool {
	if kind == CR && b == '\r' {
		return true
	}
	return b == '\n'
}

// lastIndex is the offset reported alongside Unknown.
func lastIndex(buf []byte) int {
	if len(buf) == 0 {
		return 0
	}
	return len(buf) - 1
}
