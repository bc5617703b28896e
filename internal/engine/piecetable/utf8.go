package piecetable

import "unicode/utf8"

var newline = []byte{'\n'}

// decodeRune decodes the first codepoint in b. It returns -1 for malformed
// input; a literal U+FFFD in the text is reported as itself.
func decodeRune(b []byte) (rune, int) {
	r, size := utf8.DecodeRune(b)
	if r == utf8.RuneError && size <= 1 {
		return -1, size
	}
	return r, size
}

// advance returns the byte offset of the n-th codepoint in b.
// Malformed bytes or a short slice are reported through corrupt.
func advance(op string, b []byte, n int) int {
	off := 0
	for ; n > 0; n-- {
		if off >= len(b) {
			corrupt(op, "codepoint index past end of piece (%d bytes)", len(b))
		}
		r, size := decodeRune(b[off:])
		if r < 0 {
			corrupt(op, "malformed UTF-8 at piece byte %d", off)
		}
		off += size
	}
	return off
}
