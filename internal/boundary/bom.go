package boundary

// SkipBOM returns the width in bytes of the byte-order mark at the start of
// buf, or 0 when there is none.
//
//	00 00 FE FF  UTF-32BE  4
//	FF FE 00 00  UTF-32LE  4
//	FE FF        UTF-16BE  2
//	FF FE        UTF-16LE  2
//	EF BB BF     UTF-8     3
//
// FF FE is a prefix of the UTF-32LE mark, so the four byte form is tested first.
func SkipBOM(buf []byte) int {
	if len(buf) == 0 {
		return 0
	}

	switch buf[0] {
	case 0x00:
		if len(buf) >= 4 && buf[1] == 0x00 && buf[2] == 0xFE && buf[3] == 0xFF {
			return 4
		}
	case 0xEF:
		if len(buf) >= 3 && buf[1] == 0xBB && buf[2] == 0xBF {
			return 3
		}
	case 0xFE:
		if len(buf) >= 2 && buf[1] == 0xFF {
			return 2
		}
	case 0xFF:
		if len(buf) >= 2 && buf[1] == 0xFE {
			if len(buf) >= 4 && buf[2] == 0x00 && buf[3] == 0x00 {
				return 4
			}
			return 2
		}
	}
	return 0
}
