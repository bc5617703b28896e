package piecetable

import (
	"bytes"
	"fmt"
	"unicode/utf8"
)

// Validate checks every piece against its backing buffer and returns an
// *InvariantError describing the first violation found.
func (t *PieceTable) Validate() error {
	for i, p := range t.pieces {
		if p.length <= 0 {
			return &InvariantError{Op: "Validate", Detail: fmt.Sprintf("piece %d is empty", i)}
		}
		buf := t.bufferFor(p.buffer)
		if p.start < 0 || p.start+p.length > len(buf) {
			return &InvariantError{Op: "Validate", Detail: fmt.Sprintf("piece %d %s exceeds %s buffer of %d bytes", i, p, p.buffer, len(buf))}
		}

		data := buf[p.start : p.start+p.length]
		if !utf8.Valid(data) {
			return &InvariantError{Op: "Validate", Detail: fmt.Sprintf("piece %d %s is not valid UTF-8", i, p)}
		}
		if n := utf8.RuneCount(data); n != p.codepoints {
			return &InvariantError{Op: "Validate", Detail: fmt.Sprintf("piece %d caches %d codepoints, has %d", i, p.codepoints, n)}
		}
		if n := bytes.Count(data, newline); n != p.lines {
			return &InvariantError{Op: "Validate", Detail: fmt.Sprintf("piece %d caches %d newlines, has %d", i, p.lines, n)}
		}
	}
	return nil
}
