package piecetable

import (
	"bytes"
	"io"
	"slices"
	"strings"
	"unicode/utf8"
)

// PieceTable is a document represented as a sequence of pieces over an
// immutable original buffer and an append-only buffer.
type PieceTable struct {
	original []byte
	add      []byte
	pieces   []Piece
}

// FromBytes creates a table whose original buffer is a copy of data.
// It fails with ErrInvalidUTF8 if data is not well-formed UTF-8.
func FromBytes(data []byte) (*PieceTable, error) {
	if !utf8.Valid(data) {
		return nil, invalidUTF8Error(data)
	}

	t := &PieceTable{original: bytes.Clone(data)}
	if len(t.original) > 0 {
		t.pieces = []Piece{newPiece(Original, t.original, 0, len(t.original))}
	}
	return t, nil
}

// FromString creates a table from an in-memory string.
func FromString(s string) (*PieceTable, error) {
	if !utf8.ValidString(s) {
		return nil, invalidUTF8Error([]byte(s))
	}

	t := &PieceTable{original: []byte(s)}
	if len(t.original) > 0 {
		t.pieces = []Piece{newPiece(Original, t.original, 0, len(t.original))}
	}
	return t, nil
}

// bufferFor returns the backing buffer for a role.
func (t *PieceTable) bufferFor(role BufferRole) []byte {
	if role == Append {
		return t.add
	}
	return t.original
}

// bytesOf returns the bytes a piece covers. The slice aliases table storage
// and must not be modified or retained across edits.
func (t *PieceTable) bytesOf(p Piece) []byte {
	return t.bufferFor(p.buffer)[p.start : p.start+p.length]
}

// Read Operations

// TotalCodepointCount returns the number of codepoints in the document.
func (t *PieceTable) TotalCodepointCount() int {
	n := 0
	for _, p := range t.pieces {
		n += p.codepoints
	}
	return n
}

// Len returns the byte length of the document.
func (t *PieceTable) Len() int {
	n := 0
	for _, p := range t.pieces {
		n += p.length
	}
	return n
}

// LineCount returns the number of lines, which is one more than the number
// of '\n' bytes. An empty document has one line.
func (t *PieceTable) LineCount() int {
	n := 1
	for _, p := range t.pieces {
		n += p.lines
	}
	return n
}

// IsEmpty returns true if the document has no text.
func (t *PieceTable) IsEmpty() bool {
	return len(t.pieces) == 0
}

// PieceCount returns the number of pieces in the sequence.
func (t *PieceTable) PieceCount() int {
	return len(t.pieces)
}

// Pieces returns a copy of the piece sequence.
func (t *PieceTable) Pieces() []Piece {
	return slices.Clone(t.pieces)
}

// Materialize returns the full document in a freshly allocated slice.
func (t *PieceTable) Materialize() []byte {
	out := make([]byte, 0, t.Len())
	for _, p := range t.pieces {
		out = append(out, t.bytesOf(p)...)
	}
	return out
}

// MaterializeFromLine returns the document from the first character of
// line (0-based) to the end. The result is empty if line does not exist.
func (t *PieceTable) MaterializeFromLine(line int) []byte {
	ls, ok := t.lineStart(line)
	if !ok || ls.piece >= len(t.pieces) {
		return []byte{}
	}

	out := append([]byte(nil), t.bytesOf(t.pieces[ls.piece])[ls.byteOff:]...)
	for _, p := range t.pieces[ls.piece+1:] {
		out = append(out, t.bytesOf(p)...)
	}
	return out
}

// String returns the document as a string.
func (t *PieceTable) String() string {
	var sb strings.Builder
	sb.Grow(t.Len())
	for _, p := range t.pieces {
		sb.Write(t.bytesOf(p))
	}
	return sb.String()
}

// WriteTo writes the document to w piece by piece.
func (t *PieceTable) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for _, p := range t.pieces {
		n, err := w.Write(t.bytesOf(p))
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// CodepointAt returns the codepoint at a 0-based codepoint offset.
// Returns false if offset is negative or at or beyond the end.
func (t *PieceTable) CodepointAt(offset int) (rune, bool) {
	loc, ok := t.findPosition(offset)
	if !ok || loc.atEnd {
		return 0, false
	}

	b := t.bytesOf(t.pieces[loc.piece])[loc.byteOff:]
	r, _ := decodeRune(b)
	if r < 0 {
		corrupt("CodepointAt", "malformed UTF-8 in piece %d at byte %d", loc.piece, loc.byteOff)
	}
	return r, true
}
