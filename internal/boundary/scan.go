package boundary

// FindNextNewline returns the offset and kind of the next line terminator at or
// after start.
//
// When embeddedNL is set, terminators inside quoted fields are skipped (see
// findNextNonQuotedNewline); otherwise the first CR or LF wins. The choice is
// made once per input by the caller, never per record.
//
// comment and skipEmptyRows are accepted so callers can pass their whole
// configuration through; the scan itself never skips lines. Deciding whether
// a line should be skipped is the job of IsBlankOrComment.
//
// If start is at or past the end of buf, or no terminator is found, the result
// is (len(buf)-1, Unknown).
func FindNextNewline(buf []byte, start int, comment string, skipEmptyRows, embeddedNL bool, quote byte) (int, NewlineKind) {
	if start >= len(buf) {
		return lastIndex(buf), Unknown
	}
	if start < 0 {
		start = 0
	}

	if embeddedNL && quote != 0 {
		return findNextNonQuotedNewline(buf, start, quote)
	}
	return findNextNewlineFast(buf, start)
}

// findNextNewlineFast scans for the next CR or LF with no quote awareness.
//
// A CR is reported as CR even when an LF follows it; NextLineStart consumes the
// pair as a single terminator.
func findNextNewlineFast(buf []byte, start int) (int, NewlineKind) {
	if start >= len(buf) {
		return lastIndex(buf), Unknown
	}

	i := newlineSet.index(buf[start:])
	if i < 0 {
		return lastIndex(buf), Unknown
	}

	pos := start + i
	if buf[pos] == '\n' {
		return pos, LF
	}
	return pos, CR
}

// findNextNonQuotedNewline scans for the next terminator that is not inside a
// quoted field.
//
// Every quote byte toggles the in-quote state; there is no escape mechanism, so
// a doubled quote toggles twice. A CRLF pair is reported at the LF with kind
// CRLF. Running off the end of the buffer, even inside an unterminated quote,
// yields (len(buf)-1, Unknown).
func findNextNonQuotedNewline(buf []byte, start int, quote byte) (int, NewlineKind) {
	if start >= len(buf) {
		return lastIndex(buf), Unknown
	}

	set := structuralSet(quote)
	inQuote := false
	pos := start

	for pos < len(buf) {
		i := set.index(buf[pos:])
		if i < 0 {
			break
		}
		pos += i

		c := buf[pos]
		switch {
		case c == quote:
			inQuote = !inQuote
		case inQuote:
			// Literal newline inside a quoted field.
		case c == '\n':
			return pos, LF
		case isCRLF(buf, pos):
			return pos + 1, CRLF
		default:
			return pos, CR
		}
		pos++
	}

	return lastIndex(buf), Unknown
}

// NextLineStart returns the offset of the first byte after the terminator
// reported at off by FindNextNewline.
//
// The quote-aware scanner reports CRLF at the LF, the fast scanner reports it at
// the CR; either way exactly one two-byte terminator is consumed.
func NextLineStart(buf []byte, off int) int {
	if off < 0 {
		return 0
	}
	if off >= len(buf) {
		return len(buf)
	}
	if isCRLF(buf, off) {
		return off + 2
	}
	return off + 1
}
