package app

import (
	"math"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/dshills/piecewise/internal/engine/piecetable"
)

// Window is a view of one piece table with its own cursor.
type Window struct {
	id       int
	name     string
	path     string
	table    *piecetable.PieceTable
	cursor   piecetable.Position
	wantCol  int // column vertical moves try to keep
	top      int // first visible line
	modified bool
	log      *zap.Logger
}

func newWindow(id int, name, path string, t *piecetable.PieceTable, log *zap.Logger) *Window {
	return &Window{
		id:    id,
		name:  name,
		path:  path,
		table: t,
		log:   log.With(zap.Int("window", id)),
	}
}

// ID returns the window id.
func (w *Window) ID() int { return w.id }

// Name returns the display name.
func (w *Window) Name() string { return w.name }

// Path returns the file the window was loaded from, if any.
func (w *Window) Path() string { return w.path }

// Table returns the window's text.
func (w *Window) Table() *piecetable.PieceTable { return w.table }

// Cursor returns the cursor position.
func (w *Window) Cursor() piecetable.Position { return w.cursor }

// Top returns the first visible line.
func (w *Window) Top() int { return w.top }

// Modified reports whether the text has been edited.
func (w *Window) Modified() bool { return w.modified }

// InsertText inserts s at the cursor and moves the cursor past it.
func (w *Window) InsertText(s string) error {
	if s == "" {
		return nil
	}
	at := w.cursor.Offset
	if err := w.table.Insert(at, s); err != nil {
		w.log.Warn("insert failed", zap.Int("offset", at), zap.Error(err))
		return err
	}
	n := utf8.RuneCountInString(s)
	w.modified = true
	w.log.Debug("insert", zap.Int("offset", at), zap.Int("codepoints", n), zap.Int("pieces", w.table.PieceCount()))
	w.setOffset(at + n)
	return nil
}

// Backspace deletes the codepoint before the cursor.
func (w *Window) Backspace() error {
	at := w.cursor.Offset
	off, err := w.table.Backspace(at)
	if err != nil {
		w.log.Warn("backspace failed", zap.Int("offset", at), zap.Error(err))
		return err
	}
	if off != at {
		w.modified = true
		w.log.Debug("delete", zap.Int("start", off), zap.Int("end", at), zap.Int("pieces", w.table.PieceCount()))
	}
	w.setOffset(off)
	return nil
}

// DeleteForward deletes the codepoint under the cursor.
func (w *Window) DeleteForward() error {
	at := w.cursor.Offset
	if at >= w.table.TotalCodepointCount() {
		return nil
	}
	if err := w.table.Delete(at, at+1); err != nil {
		w.log.Warn("delete failed", zap.Int("offset", at), zap.Error(err))
		return err
	}
	w.modified = true
	w.log.Debug("delete", zap.Int("start", at), zap.Int("end", at+1), zap.Int("pieces", w.table.PieceCount()))
	w.setOffset(at)
	return nil
}

// setOffset moves the cursor to a codepoint offset and resets the
// desired column.
func (w *Window) setOffset(offset int) {
	pos, ok := w.table.OffsetToPosition(offset)
	if !ok {
		pos, _ = w.table.OffsetToPosition(w.table.TotalCodepointCount())
	}
	w.cursor = pos
	w.wantCol = pos.Col
}

// MoveLeft moves back one codepoint, onto the previous line if needed.
func (w *Window) MoveLeft() bool {
	if w.cursor.Offset == 0 {
		return false
	}
	w.setOffset(w.cursor.Offset - 1)
	return true
}

// MoveRight moves forward one codepoint, onto the next line if needed.
func (w *Window) MoveRight() bool {
	if w.cursor.Offset >= w.table.TotalCodepointCount() {
		return false
	}
	w.setOffset(w.cursor.Offset + 1)
	return true
}

// MoveUp moves up n lines, keeping the desired column where the line
// is long enough.
func (w *Window) MoveUp(n int) bool {
	return w.moveToLine(max(w.cursor.Line-n, 0))
}

// MoveDown moves down n lines.
func (w *Window) MoveDown(n int) bool {
	return w.moveToLine(min(w.cursor.Line+n, w.table.LineCount()-1))
}

func (w *Window) moveToLine(line int) bool {
	if line == w.cursor.Line {
		return false
	}
	pos, ok := w.table.ClampPosition(line, w.wantCol)
	if !ok {
		return false
	}
	w.cursor = pos
	return true
}

// LineStart moves to column 0.
func (w *Window) LineStart() {
	pos, ok := w.table.ClampPosition(w.cursor.Line, 0)
	if ok {
		w.cursor = pos
		w.wantCol = 0
	}
}

// LineEnd moves past the last character of the line. Later vertical
// moves stick to line ends.
func (w *Window) LineEnd() {
	pos, ok := w.table.ClampPosition(w.cursor.Line, math.MaxInt)
	if ok {
		w.cursor = pos
		w.wantCol = math.MaxInt
	}
}

// scroll adjusts the top line so the cursor stays visible with margin
// lines above and below it.
func (w *Window) scroll(height, margin int) {
	if height <= 0 {
		return
	}
	margin = min(margin, (height-1)/2)
	if w.cursor.Line < w.top+margin {
		w.top = max(w.cursor.Line-margin, 0)
	}
	if w.cursor.Line > w.top+height-1-margin {
		w.top = w.cursor.Line - (height - 1 - margin)
	}
}
