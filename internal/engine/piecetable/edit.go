package piecetable

import (
	"fmt"
	"slices"
	"unicode/utf8"
)

// Write Operations

// Insert splices text into the document at a codepoint offset.
// The table is unchanged when an error is returned.
func (t *PieceTable) Insert(offset int, text string) error {
	if !utf8.ValidString(text) {
		return fmt.Errorf("insert at %d: %w", offset, invalidUTF8Error([]byte(text)))
	}

	loc, ok := t.findPosition(offset)
	if !ok {
		return fmt.Errorf("insert at %d of %d: %w", offset, t.TotalCodepointCount(), ErrInvalidPosition)
	}
	if text == "" {
		return nil
	}

	start := len(t.add)
	t.add = append(t.add, text...)
	inserted := newPiece(Append, t.add, start, len(text))

	switch {
	case loc.atEnd:
		t.pieces = append(t.pieces, inserted)
	case loc.byteOff == 0:
		t.pieces = slices.Insert(t.pieces, loc.piece, inserted)
	default:
		before, after := t.split(t.pieces[loc.piece], loc.byteOff)
		t.pieces = slices.Replace(t.pieces, loc.piece, loc.piece+1, before, inserted, after)
	}
	return nil
}

// Delete removes the half-open codepoint range [start, end).
// A range with start == end is a no-op.
func (t *PieceTable) Delete(start, end int) error {
	if start < 0 || end < start {
		return fmt.Errorf("delete [%d, %d): %w", start, end, ErrInvalidPosition)
	}

	from, ok := t.findPosition(start)
	if !ok {
		return fmt.Errorf("delete [%d, %d) of %d: %w", start, end, t.TotalCodepointCount(), ErrInvalidPosition)
	}
	to, ok := t.findPosition(end)
	if !ok {
		return fmt.Errorf("delete [%d, %d) of %d: %w", start, end, t.TotalCodepointCount(), ErrInvalidPosition)
	}
	if start == end {
		return nil
	}

	// Retained fragments of the two boundary pieces.
	keep := make([]Piece, 0, 2)
	if from.byteOff > 0 {
		before, _ := t.split(t.pieces[from.piece], from.byteOff)
		keep = append(keep, before)
	}

	last := to.piece
	if !to.atEnd && to.byteOff > 0 {
		_, after := t.split(t.pieces[to.piece], to.byteOff)
		keep = append(keep, after)
		last = to.piece + 1
	}

	t.pieces = slices.Replace(t.pieces, from.piece, last, keep...)
	return nil
}

// Backspace deletes the codepoint before offset and returns the new cursor
// offset. At the start of the document it does nothing.
func (t *PieceTable) Backspace(offset int) (int, error) {
	if offset == 0 {
		return 0, nil
	}
	if err := t.Delete(offset-1, offset); err != nil {
		return offset, err
	}
	return offset - 1, nil
}

// split divides p at a byte offset strictly inside it. Both halves get
// freshly computed metrics.
func (t *PieceTable) split(p Piece, byteOff int) (Piece, Piece) {
	if byteOff <= 0 || byteOff >= p.length {
		corrupt("split", "offset %d outside piece %s", byteOff, p)
	}
	buf := t.bufferFor(p.buffer)
	before := newPiece(p.buffer, buf, p.start, byteOff)
	after := newPiece(p.buffer, buf, p.start+byteOff, p.length-byteOff)
	return before, after
}
