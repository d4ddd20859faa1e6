package rowscan

import (
	"bytes"

	"github.com/shapestone/shape-core/pkg/ast"
	"github.com/shapestone/shape-rowscan/internal/boundary"
	"github.com/shapestone/shape-rowscan/internal/parser"
)

// Span is one record: buf[Begin:End], terminator excluded. Kind is the
// terminator that ended it, Unknown for a final record without one.
type Span struct {
	Begin int
	End   int
	Kind  NewlineKind
}

// Len returns the number of bytes in the record.
func (s Span) Len() int {
	return s.End - s.Begin
}

// Scanner walks a buffer record by record.
//
// Example usage:
//
//	s := rowscan.NewScanner(data, rowscan.DefaultOptions())
//	for s.Scan() {
//	    fields, err := s.Fields()
//	    if err != nil {
//	        break
//	    }
//	    fmt.Println(fields)
//	}
//	if err := s.Err(); err != nil {
//	    // handle error
//	}
type Scanner struct {
	buf  []byte
	opts Options

	pos     int // first byte of the next record
	started bool
	span    Span

	line     int // physical line of the current record
	lineNext int // physical line at pos
	counting bool

	endings      lineEndings
	checkEndings bool

	err error
}

// NewScanner creates a Scanner over buf. The buffer is never modified and
// must outlive the Scanner and every Span it returns.
func NewScanner(buf []byte, opts Options) *Scanner {
	return &Scanner{
		buf:          buf,
		opts:         opts,
		lineNext:     1,
		counting:     true,
		checkEndings: opts.warns(),
	}
}

// newChunkScanner scans buf from begin without first-line handling. Used by
// Index for parallel chunks, where line numbers are unknown.
func newChunkScanner(buf []byte, begin int, opts Options) *Scanner {
	return &Scanner{
		buf:     buf,
		opts:    opts,
		pos:     begin,
		started: true,
	}
}

// Scan advances to the next record. It returns false at the end of the
// buffer or after an error.
func (s *Scanner) Scan() bool {
	if s.err != nil {
		return false
	}

	o := s.opts
	if !s.started {
		s.started = true
		s.advance(boundary.FindFirstLine(s.buf, o.Skip, o.Comment, o.SkipEmptyRows, o.EmbeddedNewlines, o.Quote))
	}

	for s.pos < len(s.buf) {
		if boundary.IsBlankOrComment(s.buf[s.pos:], o.Comment, o.SkipEmptyRows) {
			off, _ := boundary.FindNextNewline(s.buf, s.pos, "", false, o.EmbeddedNewlines, o.Quote)
			s.advance(boundary.NextLineStart(s.buf, off))
			continue
		}

		off, kind := boundary.FindNextNewline(s.buf, s.pos, o.Comment, o.SkipEmptyRows, o.EmbeddedNewlines, o.Quote)
		s.span = s.recordSpan(off, kind)
		s.line = s.lineNext
		s.checkEnding()
		s.advance(boundary.NextLineStart(s.buf, off))
		return true
	}
	return false
}

// recordSpan converts a scanner result into the record at s.pos.
func (s *Scanner) recordSpan(off int, kind NewlineKind) Span {
	switch kind {
	case Unknown:
		return Span{Begin: s.pos, End: len(s.buf), Kind: Unknown}
	case CRLF:
		// Quote-aware scan reports CRLF at the LF.
		return Span{Begin: s.pos, End: off - 1, Kind: CRLF}
	case CR:
		// The fast scan reports CRLF at the CR as CR.
		if off+1 < len(s.buf) && s.buf[off+1] == '\n' {
			kind = CRLF
		}
	}
	return Span{Begin: s.pos, End: off, Kind: kind}
}

// checkEnding warns when the current record's terminator differs from the
// convention of the first record.
func (s *Scanner) checkEnding() {
	if !s.checkEndings {
		return
	}
	s.endings.check(s.buf, s.span, s.line, s.opts)
}

// lineEndings remembers the terminator convention of the first record.
type lineEndings struct {
	expected NewlineKind
	seen     bool
}

func (e *lineEndings) check(buf []byte, sp Span, line int, opts Options) {
	if sp.Kind == Unknown {
		return
	}
	if !e.seen {
		e.expected = sp.Kind
		e.seen = true
		return
	}

	last := buf[boundary.NextLineStart(buf, sp.End)-1]
	if !boundary.HasExpectedLineEnding(e.expected, last) {
		opts.warn(line, "inconsistent line ending",
			"offset", sp.End, "expected", e.expected.String(), "found", sp.Kind.String())
	}
}

// advance moves to pos, counting the physical lines passed over.
func (s *Scanner) advance(pos int) {
	if s.counting && pos > s.pos {
		s.lineNext += countLines(s.buf[s.pos:pos])
	}
	s.pos = pos
}

// countLines counts terminators in b; a CRLF pair counts once.
func countLines(b []byte) int {
	return bytes.Count(b, []byte{'\n'}) + bytes.Count(b, []byte{'\r'}) - bytes.Count(b, []byte("\r\n"))
}

// Span returns the current record.
func (s *Scanner) Span() Span {
	return s.span
}

// Bytes returns the current record, terminator excluded. The slice aliases
// the scanned buffer.
func (s *Scanner) Bytes() []byte {
	return s.buf[s.span.Begin:s.span.End]
}

// Kind returns the terminator of the current record.
func (s *Scanner) Kind() NewlineKind {
	return s.span.Kind
}

// Line returns the 1-indexed physical line where the current record starts.
func (s *Scanner) Line() int {
	return s.line
}

// Fields splits the current record into field values. Missing values (see
// Options.NA) come back as empty strings. An error stops the scan and is
// also reported by Err.
func (s *Scanner) Fields() ([]string, error) {
	fields, err := parser.ParseRecord(s.Bytes(), s.opts.parserOptions())
	if err != nil {
		return nil, s.fail(err)
	}
	return fields, nil
}

// Node splits the current record into an *ast.ArrayDataNode of literal
// fields. Missing values are literal nodes holding nil.
func (s *Scanner) Node() (*ast.ArrayDataNode, error) {
	node, err := parser.NewParserWithOptions(s.Bytes(), s.opts.parserOptions()).Parse()
	if err != nil {
		return nil, s.fail(err)
	}
	return node, nil
}

func (s *Scanner) fail(err error) error {
	perr := &ParseError{Line: s.line, Offset: s.span.Begin, Err: err}
	if s.err == nil {
		s.err = perr
	}
	return perr
}

// Err returns the first error encountered while splitting fields.
func (s *Scanner) Err() error {
	return s.err
}
