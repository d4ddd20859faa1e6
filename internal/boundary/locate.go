package boundary

// FindFirstLine returns the offset of the first record to parse.
//
// It starts after any byte-order mark, then discards lines while either skip
// explicit lines remain or the line at hand is blank or a comment according to
// IsBlankOrComment. Where each discarded line ends is decided separately, by
// FindNextNewline with an empty comment prefix and blank skipping off, so a
// skipped line is always consumed whole. With embeddedNL set, a skipped header
// whose quoted fields span several physical lines is consumed as one line.
//
// Classification stops once fewer than two bytes remain; explicit skips stop
// at the end of the buffer. The result is at most len(buf).
func FindFirstLine(buf []byte, skip int, comment string, skipEmptyRows, embeddedNL bool, quote byte) int {
	begin := SkipBOM(buf)

	for begin < len(buf) {
		blank := begin < len(buf)-1 && IsBlankOrComment(buf[begin:], comment, skipEmptyRows)
		if !blank && skip <= 0 {
			break
		}

		off, _ := FindNextNewline(buf, begin, "", false, embeddedNL, quote)
		begin = NextLineStart(buf, off)

		if skip > 0 {
			skip--
		}
	}

	return begin
}
