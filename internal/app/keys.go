package app

import (
	"github.com/dshills/piecewise/internal/renderer/backend"
)

// handleEvent processes a backend event.
// Returns ErrQuit if the application should exit.
func (app *Application) handleEvent(ev backend.Event) error {
	switch ev.Type {
	case backend.EventKey:
		return app.handleKey(ev)
	case backend.EventResize:
		app.width, app.height = ev.Width, ev.Height
	case backend.EventPaste:
		return app.handlePaste(ev)
	case backend.EventInterrupt:
		app.applyReloads()
	}
	return nil
}

// handlePaste buffers the keys of a bracketed paste and inserts them with
// a single edit when the paste ends.
func (app *Application) handlePaste(ev backend.Event) error {
	if ev.PasteStart {
		app.pasting = true
		app.paste.Reset()
		return nil
	}

	app.pasting = false
	text := app.paste.String()
	app.paste.Reset()

	w := app.session.Active()
	if w == nil || text == "" {
		return nil
	}
	if err := w.InsertText(text); err != nil {
		app.backend.Beep()
	}
	return nil
}

func (app *Application) collectPaste(ev backend.Event) {
	switch ev.Key {
	case backend.KeyRune:
		app.paste.WriteRune(ev.Rune)
	case backend.KeyEnter:
		app.paste.WriteByte('\n')
	case backend.KeyTab:
		app.paste.WriteByte('\t')
	}
}

// handleKey processes keyboard input.
func (app *Application) handleKey(ev backend.Event) error {
	if app.pasting {
		app.collectPaste(ev)
		return nil
	}

	switch ev.Key {
	case backend.KeyCtrlQ:
		return ErrQuit
	case backend.KeyCtrlN:
		app.session.Next()
		return nil
	case backend.KeyCtrlW:
		if w := app.session.Active(); w != nil {
			if err := app.session.Close(w.ID()); err != nil {
				return err
			}
		}
		if app.session.Count() == 0 {
			return ErrQuit
		}
		return nil
	}

	w := app.session.Active()
	if w == nil {
		return nil
	}

	page := max(app.height-2, 1)
	ok := true
	var err error
	switch ev.Key {
	case backend.KeyRune:
		err = w.InsertText(string(ev.Rune))
	case backend.KeyEnter:
		err = w.InsertText("\n")
	case backend.KeyTab:
		err = w.InsertText("\t")
	case backend.KeyBackspace:
		err = w.Backspace()
	case backend.KeyDelete:
		err = w.DeleteForward()
	case backend.KeyLeft:
		ok = w.MoveLeft()
	case backend.KeyRight:
		ok = w.MoveRight()
	case backend.KeyUp:
		ok = w.MoveUp(1)
	case backend.KeyDown:
		ok = w.MoveDown(1)
	case backend.KeyPageUp:
		ok = w.MoveUp(page)
	case backend.KeyPageDown:
		ok = w.MoveDown(page)
	case backend.KeyHome:
		w.LineStart()
	case backend.KeyEnd:
		w.LineEnd()
	}

	if !ok || err != nil {
		app.backend.Beep()
	}
	return nil
}
