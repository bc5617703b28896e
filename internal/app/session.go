package app

import (
	"fmt"
	"path/filepath"
	"slices"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/dshills/piecewise/internal/engine/piecetable"
)

// Session owns the open windows. Window ids come from a counter on the
// session, start at 1 and are never reused.
type Session struct {
	id           string
	nextWindowID int
	windows      []*Window
	active       int // index into windows, -1 when empty
	log          *zap.Logger
}

// NewSession creates an empty session. A nil logger discards output.
func NewSession(log *zap.Logger) *Session {
	if log == nil {
		log = zap.NewNop()
	}
	id := uuid.NewString()
	return &Session{
		id:           id,
		nextWindowID: 1,
		active:       -1,
		log:          log.With(zap.String("session", id)),
	}
}

// ID returns the session's unique identifier.
func (s *Session) ID() string {
	return s.id
}

// OpenFile loads path into a new window and makes it active.
func (s *Session) OpenFile(path string) (*Window, error) {
	t, err := piecetable.FromFile(path)
	if err != nil {
		s.log.Warn("open failed", zap.String("path", path), zap.Error(err))
		return nil, NewOperationError("open", path, err)
	}
	return s.add(filepath.Base(path), path, t), nil
}

// OpenString creates a window over text and makes it active.
func (s *Session) OpenString(name, text string) (*Window, error) {
	t, err := piecetable.FromString(text)
	if err != nil {
		return nil, NewOperationError("open", name, err)
	}
	return s.add(name, "", t), nil
}

func (s *Session) add(name, path string, t *piecetable.PieceTable) *Window {
	id := s.nextWindowID
	s.nextWindowID++

	w := newWindow(id, name, path, t, s.log)
	s.windows = append(s.windows, w)
	s.active = len(s.windows) - 1

	s.log.Info("window opened",
		zap.Int("window", id),
		zap.String("name", name),
		zap.Int("codepoints", t.TotalCodepointCount()),
		zap.Int("lines", t.LineCount()),
	)
	return w
}

// Close removes the window with the given id. If it was active, the
// window before it becomes active, or the next one if it was first.
func (s *Session) Close(id int) error {
	i := slices.IndexFunc(s.windows, func(w *Window) bool { return w.id == id })
	if i < 0 {
		return fmt.Errorf("close %d: %w", id, ErrWindowNotFound)
	}

	s.windows = slices.Delete(s.windows, i, i+1)
	switch {
	case len(s.windows) == 0:
		s.active = -1
	case i < s.active || (i == s.active && i > 0):
		s.active--
	}

	s.log.Info("window closed", zap.Int("window", id))
	return nil
}

// Active returns the active window, or nil if none are open.
func (s *Session) Active() *Window {
	if s.active < 0 {
		return nil
	}
	return s.windows[s.active]
}

// ActiveIndex returns the position of the active window in Windows,
// or -1 if none are open.
func (s *Session) ActiveIndex() int {
	return s.active
}

// Next activates the following window, wrapping around, and returns it.
func (s *Session) Next() *Window {
	if len(s.windows) == 0 {
		return nil
	}
	s.active = (s.active + 1) % len(s.windows)
	return s.windows[s.active]
}

// Get returns the window with the given id.
func (s *Session) Get(id int) (*Window, bool) {
	i := slices.IndexFunc(s.windows, func(w *Window) bool { return w.id == id })
	if i < 0 {
		return nil, false
	}
	return s.windows[i], true
}

// Windows returns the open windows in the order they were opened.
func (s *Session) Windows() []*Window {
	return slices.Clone(s.windows)
}

// Count returns the number of open windows.
func (s *Session) Count() int {
	return len(s.windows)
}
