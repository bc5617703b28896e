package piecetable

import (
	"bytes"
	"fmt"
	"unicode/utf8"
)

// BufferRole identifies which backing buffer a piece refers to.
type BufferRole uint8

const (
	// Original is the immutable text the table was created from.
	Original BufferRole = iota
	// Append is the grow-only store of inserted text.
	Append
)

// String returns the string representation of the role.
func (r BufferRole) String() string {
	switch r {
	case Original:
		return "original"
	case Append:
		return "append"
	default:
		return fmt.Sprintf("BufferRole(%d)", uint8(r))
	}
}

// Piece describes a contiguous byte range in one backing buffer together
// with cached metrics for that range. Pieces are immutable once created;
// edits replace them in the sequence.
type Piece struct {
	start      int
	length     int
	buffer     BufferRole
	codepoints int
	lines      int
}

// newPiece builds a piece over buf[start:start+length], scanning the range
// for its codepoint and newline counts.
func newPiece(role BufferRole, buf []byte, start, length int) Piece {
	data := buf[start : start+length]
	return Piece{
		start:      start,
		length:     length,
		buffer:     role,
		codepoints: utf8.RuneCount(data),
		lines:      bytes.Count(data, newline),
	}
}

// Start returns the byte offset of the piece within its buffer.
func (p Piece) Start() int { return p.start }

// Len returns the byte length of the piece.
func (p Piece) Len() int { return p.length }

// Buffer returns the backing buffer the piece refers to.
func (p Piece) Buffer() BufferRole { return p.buffer }

// Codepoints returns the number of codepoints in the piece.
func (p Piece) Codepoints() int { return p.codepoints }

// Lines returns the number of '\n' bytes in the piece.
func (p Piece) Lines() int { return p.lines }

// String returns a debug representation of the piece.
func (p Piece) String() string {
	return fmt.Sprintf("%s[%d:%d] cp=%d nl=%d", p.buffer, p.start, p.start+p.length, p.codepoints, p.lines)
}

// isASCII reports whether every byte in the piece is a single codepoint.
func (p Piece) isASCII() bool {
	return p.codepoints == p.length
}
