package boundary

import (
	"encoding/binary"
	"math/bits"
)

// SWAR (SIMD Within A Register) constants for the null-byte detection trick.
// The expression ((x - loBits) & ^x & hiBits) has the high bit set in every
// byte of x that is zero. Borrows can flag bytes above a true zero, but the
// lowest flagged byte is always a real match, which is all a forward search needs.
const (
	loBits = 0x0101010101010101
	hiBits = 0x8080808080808080
)

// byteSet is a small set of needle bytes searched for 8 bytes at a time.
type byteSet struct {
	words [3]uint64 // needles broadcast to all 8 lanes
	raw   [3]byte
	n     int
}

// newByteSet builds a search set from up to three needle bytes.
func newByteSet(needles ...byte) byteSet {
	var s byteSet
	for _, c := range needles {
		if s.n == len(s.raw) {
			break
		}
		s.raw[s.n] = c
		s.words[s.n] = uint64(c) * loBits
		s.n++
	}
	return s
}

// newlineSet matches CR and LF.
var newlineSet = newByteSet('\r', '\n')

// structuralSet matches CR, LF and the quote character.
func structuralSet(quote byte) byteSet {
	return newByteSet('\r', '\n', quote)
}

// has reports whether c is one of the needles.
func (s *byteSet) has(c byte) bool {
	for i := 0; i < s.n; i++ {
		if s.raw[i] == c {
			return true
		}
	}
	return false
}

// index returns the index of the first needle byte in b, or -1.
func (s *byteSet) index(b []byte) int {
	i := 0

	// Fast path: whole 8-byte words.
	for ; i+8 <= len(b); i += 8 {
		word := binary.LittleEndian.Uint64(b[i:])

		var match uint64
		for j := 0; j < s.n; j++ {
			x := word ^ s.words[j]
			match |= (x - loBits) & ^x & hiBits
		}
		if match != 0 {
			return i + bits.TrailingZeros64(match)/8
		}
	}

	// Tail shorter than a word.
	for ; i < len(b); i++ {
		if s.has(b[i]) {
			return i
		}
	}
	return -1
}
