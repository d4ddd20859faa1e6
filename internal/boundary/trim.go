package boundary

// isSpace reports whether c is trimmed from field tokens.
func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == 0 || c == '\r'
}

// TrimWhitespace narrows the token buf[begin:end] so that it neither starts
// nor ends with a space, tab, NUL or carriage return. The buffer is not
// modified. A token made only of whitespace comes back empty (begin == end).
func TrimWhitespace(buf []byte, begin, end int) (int, int) {
	for begin < end && isSpace(buf[begin]) {
		begin++
	}
	for end > begin && isSpace(buf[end-1]) {
		end--
	}
	return begin, end
}
