package rowscan

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/shapestone/shape-rowscan/internal/boundary"
)

// sniffLines caps the number of records a Sniffer looks at.
const sniffLines = 32

var (
	candidateDelims = []byte{',', '\t', ';', '|'}
	candidateQuotes = []byte{'"', '\''}

	headerPatterns = []*regexp.Regexp{
		regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`),       // snake_case or identifier
		regexp.MustCompile(`^[a-zA-Z]+[A-Z][a-zA-Z]*$`),      // camelCase
		regexp.MustCompile(`^[A-Z][a-z]+([ ][A-Z][a-z]+)*$`), // Title Case
	}
	datePatterns = []*regexp.Regexp{
		regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`),
		regexp.MustCompile(`^\d{2}/\d{2}/\d{4}$`),
	}
)

// DetectNewline returns the kind of the first terminator outside double
// quotes, or Unknown when buf holds a single unterminated line.
func DetectNewline(buf []byte) NewlineKind {
	start := boundary.SkipBOM(buf)
	off, kind := boundary.FindNextNewline(buf, start, "", false, true, '"')
	if kind == CR && off+1 < len(buf) && buf[off+1] == '\n' {
		kind = CRLF
	}
	return kind
}

// Sniffer detects the dialect of a sample: delimiter, quote, line endings
// and whether the first record is a header.
type Sniffer struct {
	sample []byte
	bom    int
	lines  [][]byte

	delim     byte
	quote     byte
	hasHeader bool
	analyzed  bool
}

// NewSniffer creates a new Sniffer over a sample of the input.
// For best results, provide at least 2-3 lines of data.
func NewSniffer(sample []byte) *Sniffer {
	return &Sniffer{sample: sample}
}

// analyze performs dialect detection on the sample.
func (s *Sniffer) analyze() {
	if s.analyzed {
		return
	}
	s.bom = boundary.SkipBOM(s.sample)
	s.quote = s.detectQuote()
	s.lines = s.splitLines()
	s.delim = s.detectDelimiter()
	s.hasHeader = s.detectHeader()
	s.analyzed = true
}

// splitLines cuts the sample into non-blank records with the quote-aware
// scanner.
func (s *Sniffer) splitLines() [][]byte {
	var lines [][]byte
	pos := s.bom
	for pos < len(s.sample) && len(lines) < sniffLines {
		off, kind := boundary.FindNextNewline(s.sample, pos, "", false, true, s.quote)
		end := off
		switch kind {
		case Unknown:
			end = len(s.sample)
		case CRLF:
			end = off - 1
		}
		if !boundary.IsBlankOrComment(s.sample[pos:], "", true) && end > pos {
			lines = append(lines, s.sample[pos:end])
		}
		pos = boundary.NextLineStart(s.sample, off)
	}
	return lines
}

// DetectDelimiter returns the detected field delimiter.
// Common delimiters checked: comma, tab, semicolon, pipe.
func (s *Sniffer) DetectDelimiter() byte {
	s.analyze()
	return s.delim
}

// detectDelimiter scores each candidate by its count in the first record,
// with a bonus when every record has the same count.
func (s *Sniffer) detectDelimiter() byte {
	if len(s.lines) == 0 {
		return ','
	}

	best := byte(',')
	bestScore := 0
	for _, delim := range candidateDelims {
		first := countDelimiter(s.lines[0], delim, s.quote)
		if first == 0 {
			continue
		}
		score := first * 10
		for _, line := range s.lines[1:] {
			if countDelimiter(line, delim, s.quote) != first {
				score = first
				break
			}
		}
		if score > bestScore {
			best = delim
			bestScore = score
		}
	}
	return best
}

// countDelimiter counts occurrences of a delimiter, ignoring quoted sections.
func countDelimiter(line []byte, delim, quote byte) int {
	count := 0
	inQuotes := false
	for _, ch := range line {
		if ch == quote && quote != 0 {
			inQuotes = !inQuotes
		} else if ch == delim && !inQuotes {
			count++
		}
	}
	return count
}

// DetectQuote returns the detected quote character: the candidate that most
// often opens a field, or '"' when none does.
func (s *Sniffer) DetectQuote() byte {
	s.analyze()
	return s.quote
}

func (s *Sniffer) detectQuote() byte {
	best := byte('"')
	bestCount := 0
	for _, q := range candidateQuotes {
		n := 0
		for i, ch := range s.sample[s.bom:] {
			if ch != q {
				continue
			}
			i += s.bom
			if i == s.bom || opensField(s.sample[i-1]) {
				n++
			}
		}
		if n > bestCount {
			best = q
			bestCount = n
		}
	}
	return best
}

// opensField reports whether a field can start after b.
func opensField(b byte) bool {
	switch b {
	case ',', '\t', ';', '|', '\n', '\r':
		return true
	}
	return false
}

// DetectNewline returns the terminator kind of the sample.
func (s *Sniffer) DetectNewline() NewlineKind {
	return DetectNewline(s.sample)
}

// BOMLength returns the width of the byte-order mark of the sample.
func (s *Sniffer) BOMLength() int {
	s.analyze()
	return s.bom
}

// HasHeader returns true if the first row appears to be a header.
func (s *Sniffer) HasHeader() bool {
	s.analyze()
	return s.hasHeader
}

// detectHeader uses heuristics to determine if first row is a header.
func (s *Sniffer) detectHeader() bool {
	if len(s.lines) < 2 {
		return false // Need at least 2 lines to compare
	}

	headerScore := 0
	dataScore := 0
	for _, field := range splitByDelimiter(s.lines[0], s.delim, s.quote) {
		field = strings.TrimSpace(field)
		if isLikelyHeader(field) {
			headerScore++
		}
		if isLikelyData(field) {
			dataScore++
		}
	}
	return headerScore > dataScore
}

// isLikelyHeader checks if a field looks like a header name.
func isLikelyHeader(s string) bool {
	if s == "" || isNumeric(s) {
		return false
	}
	for _, pattern := range headerPatterns {
		if pattern.MatchString(s) {
			return true
		}
	}
	return false
}

// isLikelyData checks if a field looks like data rather than a header.
func isLikelyData(s string) bool {
	if s == "" {
		return false
	}
	if isNumeric(s) || strings.Contains(s, "@") {
		return true
	}
	for _, pattern := range datePatterns {
		if pattern.MatchString(s) {
			return true
		}
	}
	return false
}

// isNumeric checks if a string represents a number.
func isNumeric(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	if s[0] == '-' {
		s = s[1:]
	}

	hasDot := false
	for _, ch := range s {
		if ch == '.' {
			if hasDot {
				return false
			}
			hasDot = true
		} else if !unicode.IsDigit(ch) {
			return false
		}
	}
	return len(s) > 0
}

// splitByDelimiter splits a line by delimiter, respecting quotes. Quote
// characters are removed.
func splitByDelimiter(line []byte, delim, quote byte) []string {
	var fields []string
	var current strings.Builder
	inQuotes := false
	for _, ch := range line {
		switch {
		case ch == quote && quote != 0:
			inQuotes = !inQuotes
		case ch == delim && !inQuotes:
			fields = append(fields, current.String())
			current.Reset()
		default:
			current.WriteByte(ch)
		}
	}
	return append(fields, current.String())
}

// Options returns DefaultOptions with the detected delimiter and quote, and
// Skip set to 1 when the sample has a header.
func (s *Sniffer) Options() Options {
	s.analyze()
	opts := DefaultOptions()
	opts.Delim = s.delim
	opts.Quote = s.quote
	if s.hasHeader {
		opts.Skip = 1
	}
	return opts
}
