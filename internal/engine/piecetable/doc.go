// Package piecetable provides the text storage used by the editor: a piece
// table over two backing buffers.
//
// The original buffer holds the text the table was created from and is never
// modified. Every inserted string is appended to a second, append-only buffer.
// The document is the in-order concatenation of a list of pieces, each of
// which names a byte range in one of the two buffers together with cached
// metrics (codepoint count and newline count) for that range.
//
// Key features:
//   - Edits never copy the document; they split pieces and append text
//   - All addressing is in codepoints, not bytes
//   - Line/column queries skip whole pieces using cached newline counts
//   - Input is validated as UTF-8 before any state changes
//
// Basic usage:
//
//	t, err := piecetable.FromString("The dog.\nThe cat.")
//	if err != nil {
//	    return err
//	}
//	_ = t.Insert(0, "NEW")     // "NEWThe dog.\nThe cat."
//	_ = t.Delete(0, 3)         // "The dog.\nThe cat."
//	pos, _ := t.ClampPosition(1, 99)
//	// pos == Position{Line: 1, Col: 8, Offset: 17}
//
// A PieceTable is not safe for concurrent use. It is owned by a single editor
// window and mutated from the goroutine that drives it.
//
// Bytes the table produced itself are always valid UTF-8. A decode failure on
// such bytes means the piece bookkeeping is broken, and the table panics with
// an *InvariantError rather than returning a recoverable error.
package piecetable
