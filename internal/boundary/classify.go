package boundary

// IsBlankOrComment reports whether the line starting at line[0] should be
// skipped because it is blank or a comment.
//
// line must start at the first byte of the line and may run past its
// terminator; callers usually pass buf[begin:]. The rules, in order:
//
//  1. With skipEmptyRows unset and no comment prefix nothing is ever skipped.
//  2. With skipEmptyRows set, a line whose first byte is a terminator is blank.
//  3. Leading spaces and tabs are passed over; if skipEmptyRows is set and a
//     terminator follows, the line is blank.
//  4. If the remaining bytes start with comment, the line is a comment.
//
// A line that ends without a terminator (the tail of the buffer) is never
// blank, and a line shorter than the prefix is never a comment.
func IsBlankOrComment(line []byte, comment string, skipEmptyRows bool) bool {
	if !skipEmptyRows && comment == "" {
		return false
	}
	if len(line) == 0 {
		return false
	}

	if skipEmptyRows && isTerminator(line[0]) {
		return true
	}

	i := 0
	for i < len(line) && (line[i] == ' ' || line[i] == '\t') {
		i++
	}
	if i == len(line) {
		return false
	}

	if skipEmptyRows && isTerminator(line[i]) {
		return true
	}
	return comment != "" && hasPrefix(line[i:], comment)
}

// IsEmptyLine reports whether line holds only spaces, tabs and carriage
// returns before an LF. Comments are not considered.
func IsEmptyLine(line []byte, skipEmptyRows bool) bool {
	if !skipEmptyRows || len(line) == 0 {
		return false
	}
	if line[0] == '\n' {
		return true
	}

	i := 0
	for i < len(line) && (line[i] == ' ' || line[i] == '\t' || line[i] == '\r') {
		i++
	}
	return i < len(line) && line[i] == '\n'
}

// IsComment reports whether span starts with the comment prefix.
// An empty prefix never matches.
func IsComment(span []byte, comment string) bool {
	return Matches(span, comment)
}

// Matches reports whether span starts with needle. An empty needle or a span
// shorter than needle never matches.
func Matches(span []byte, needle string) bool {
	if needle == "" || len(span) < len(needle) {
		return false
	}
	return hasPrefix(span, needle)
}

func hasPrefix(b []byte, prefix string) bool {
	return len(b) >= len(prefix) && string(b[:len(prefix)]) == prefix
}
