package piecetable

import (
	"bytes"
	"fmt"
	"unicode/utf8"
)

// Position is a resolved location in the document.
// All fields are 0-based; Col and Offset count codepoints.
type Position struct {
	Line   int // Line index
	Col    int // Codepoint column within the line
	Offset int // Codepoint offset from document start
}

// String returns a human-readable representation of the position.
func (p Position) String() string {
	return fmt.Sprintf("(%d:%d @%d)", p.Line, p.Col, p.Offset)
}

// location identifies a byte inside the piece sequence.
// When atEnd is set the location is just past the last piece.
type location struct {
	piece   int
	byteOff int
	atEnd   bool
}

// findPosition resolves a codepoint offset to the piece containing it and
// the byte offset within that piece. An offset equal to the document length
// resolves to the end of the buffer. Offsets beyond that are not found.
func (t *PieceTable) findPosition(offset int) (location, bool) {
	if offset < 0 {
		return location{}, false
	}

	total := 0
	for i, p := range t.pieces {
		if total+p.codepoints > offset {
			rel := offset - total
			if p.isASCII() {
				return location{piece: i, byteOff: rel}, true
			}
			return location{piece: i, byteOff: advance("findPosition", t.bytesOf(p), rel)}, true
		}
		total += p.codepoints
	}

	if total == offset {
		return location{piece: len(t.pieces), atEnd: true}, true
	}
	return location{}, false
}

// lineHead is where a line begins: a piece index, a byte offset inside that
// piece (possibly equal to its length), and the codepoint offset from the
// start of the document.
type lineHead struct {
	piece   int
	byteOff int
	offset  int
}

// lineStart locates the first character of line. Whole pieces are skipped
// using their cached newline counts; only the piece holding the line's
// leading newline is scanned.
func (t *PieceTable) lineStart(line int) (lineHead, bool) {
	if line < 0 {
		return lineHead{}, false
	}
	if line == 0 {
		return lineHead{}, true
	}

	lines, cps := 0, 0
	for i, p := range t.pieces {
		if lines+p.lines < line {
			lines += p.lines
			cps += p.codepoints
			continue
		}

		b := t.bytesOf(p)
		off := 0
		for need := line - lines; need > 0; need-- {
			nl := bytes.IndexByte(b[off:], '\n')
			if nl < 0 {
				corrupt("lineStart", "piece %d caches %d newlines but has fewer", i, p.lines)
			}
			off += nl + 1
		}
		if p.isASCII() {
			cps += off
		} else {
			cps += utf8.RuneCount(b[:off])
		}
		return lineHead{piece: i, byteOff: off, offset: cps}, true
	}
	return lineHead{}, false
}

// lineWidth counts the codepoints from a line head up to the next '\n' or
// the end of the document, continuing across pieces.
func (t *PieceTable) lineWidth(h lineHead) int {
	width := 0
	off := h.byteOff
	for i := h.piece; i < len(t.pieces); i++ {
		p := t.pieces[i]
		b := t.bytesOf(p)[off:]
		off = 0

		if nl := bytes.IndexByte(b, '\n'); nl >= 0 {
			return width + utf8.RuneCount(b[:nl])
		}
		width += utf8.RuneCount(b)
	}
	return width
}

// ClampPosition returns the valid position nearest to (line, col).
// A column past the end of the line is clamped to the line's last column,
// which is the position just after its final character. Returns false if
// either coordinate is negative or the line does not exist.
func (t *PieceTable) ClampPosition(line, col int) (Position, bool) {
	if line < 0 || col < 0 {
		return Position{}, false
	}

	h, ok := t.lineStart(line)
	if !ok {
		return Position{}, false
	}

	if maxCol := t.lineWidth(h); col > maxCol {
		col = maxCol
	}
	return Position{Line: line, Col: col, Offset: h.offset + col}, true
}

// LineLength returns the number of codepoints on line, excluding its '\n'.
func (t *PieceTable) LineLength(line int) (int, bool) {
	h, ok := t.lineStart(line)
	if !ok {
		return 0, false
	}
	return t.lineWidth(h), true
}

// OffsetToPosition converts a codepoint offset to a line and column.
// The end of the document is a valid offset.
func (t *PieceTable) OffsetToPosition(offset int) (Position, bool) {
	if offset < 0 {
		return Position{}, false
	}

	line, col, cps := 0, 0, 0
	for _, p := range t.pieces {
		if cps+p.codepoints <= offset {
			b := t.bytesOf(p)
			if p.lines > 0 {
				line += p.lines
				col = utf8.RuneCount(b[bytes.LastIndexByte(b, '\n')+1:])
			} else {
				col += p.codepoints
			}
			cps += p.codepoints
			continue
		}

		b := t.bytesOf(p)
		off := 0
		for ; cps < offset; cps++ {
			r, size := decodeRune(b[off:])
			if r < 0 {
				corrupt("OffsetToPosition", "malformed UTF-8 at piece byte %d", off)
			}
			if r == '\n' {
				line++
				col = 0
			} else {
				col++
			}
			off += size
		}
		break
	}

	if cps != offset {
		return Position{}, false
	}
	return Position{Line: line, Col: col, Offset: offset}, true
}
