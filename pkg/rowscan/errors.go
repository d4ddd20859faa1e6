package rowscan

import (
	"fmt"

	"github.com/shapestone/shape-rowscan/internal/parser"
)

// ErrMaxFields indicates a record has more fields than Options.MaxFields.
var ErrMaxFields = parser.ErrMaxFields

// ParseError reports a failure to split a record into fields.
type ParseError struct {
	// Line is the physical line where the record starts (1-indexed).
	Line int
	// Offset is the byte offset of the record in the buffer.
	Offset int
	// Err is the underlying error.
	Err error
}

// Error returns a formatted error message with position information.
func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error on line %d (offset %d): %v", e.Line, e.Offset, e.Err)
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// OptionsError represents an invalid option configuration.
type OptionsError struct {
	Field   string
	Message string
}

func (e *OptionsError) Error() string {
	return "rowscan: invalid " + e.Field + ": " + e.Message
}
