package app

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/dshills/piecewise/internal/config"
	"github.com/dshills/piecewise/internal/renderer/backend"
)

func newTestWindow(t *testing.T, text string) *Window {
	t.Helper()
	w, err := NewSession(nil).OpenString("test", text)
	require.NoError(t, err)
	return w
}

// newTestApp builds an application over in-memory windows without
// reading configuration from the environment.
func newTestApp(t *testing.T, cfg config.Config, texts ...string) (*Application, *backend.NullBackend) {
	t.Helper()
	nb := backend.NewNullBackend(40, 10)
	require.NoError(t, nb.Init())

	app := &Application{
		cfg:     cfg,
		log:     zap.NewNop(),
		session: NewSession(nil),
		backend: nb,
		width:   40,
		height:  10,
		reloads: make(chan reload, 4),
	}
	for _, text := range texts {
		_, err := app.session.OpenString("[scratch]", text)
		require.NoError(t, err)
	}
	return app, nb
}

func key(k backend.Key) backend.Event {
	return backend.Event{Type: backend.EventKey, Key: k}
}

func runeKey(r rune) backend.Event {
	return backend.Event{Type: backend.EventKey, Key: backend.KeyRune, Rune: r}
}

func post(nb *backend.NullBackend, events ...backend.Event) {
	for _, ev := range events {
		nb.PostEvent(ev)
	}
}
