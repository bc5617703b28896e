package backend

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

func TestNullBackendInit(t *testing.T) {
	b := NewNullBackend(80, 24)
	if err := b.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	w, h := b.Size()
	if w != 80 || h != 24 {
		t.Errorf("expected size (80, 24), got (%d, %d)", w, h)
	}
}

func TestNullBackendSetGetCell(t *testing.T) {
	b := NewNullBackend(80, 24)
	b.Init()

	cell := NewStyledCell('X', Style{Foreground: RGB(255, 0, 0)})
	b.SetCell(10, 5, cell)

	if got := b.GetCell(10, 5); got != cell {
		t.Errorf("cell mismatch: expected %+v, got %+v", cell, got)
	}

	// Out of bounds should be ignored/return empty
	b.SetCell(-1, 0, cell)
	b.SetCell(100, 0, cell)
	if got := b.GetCell(-1, 0); got != EmptyCell() {
		t.Error("out of bounds should return empty cell")
	}
}

func TestNullBackendRow(t *testing.T) {
	b := NewNullBackend(10, 2)
	b.Init()

	for i, r := range "hi there" {
		b.SetCell(i, 1, NewCell(r))
	}
	if got := b.Row(1); got != "hi there" {
		t.Errorf("Row(1) = %q, want %q", got, "hi there")
	}
	if got := b.Row(0); got != "" {
		t.Errorf("Row(0) = %q, want empty", got)
	}

	b.Clear()
	if got := b.Row(1); got != "" {
		t.Errorf("Row(1) after Clear = %q, want empty", got)
	}
}

func TestNullBackendEvents(t *testing.T) {
	b := NewNullBackend(80, 24)
	b.Init()

	b.PostEvent(Event{Type: EventKey, Key: KeyRune, Rune: 'a'})
	b.Resize(100, 40)

	if ev := b.PollEvent(); ev.Type != EventKey || ev.Rune != 'a' {
		t.Errorf("first event = %+v, want key 'a'", ev)
	}
	if ev := b.PollEvent(); ev.Type != EventResize || ev.Width != 100 || ev.Height != 40 {
		t.Errorf("second event = %+v, want resize 100x40", ev)
	}
}

func TestRuneWidth(t *testing.T) {
	tests := []struct {
		r    rune
		want int
	}{
		{'a', 1},
		{'\t', 0},
		{'\n', 0},
		{'世', 2},
		{'🎉', 2},
		{'é', 1},
	}
	for _, tt := range tests {
		if got := RuneWidth(tt.r); got != tt.want {
			t.Errorf("RuneWidth(%q) = %d, want %d", tt.r, got, tt.want)
		}
	}
}

func TestFromColorful(t *testing.T) {
	c, err := colorful.Hex("#afd7ff")
	if err != nil {
		t.Fatal(err)
	}
	got := FromColorful(c)
	if want := RGB(0xaf, 0xd7, 0xff); got != want {
		t.Errorf("FromColorful = %+v, want %+v", got, want)
	}
	if ColorDefault.Set || !ColorDefault.IsDefault() {
		t.Error("ColorDefault should be the default colour")
	}
}

func TestConvertEvent(t *testing.T) {
	ev := convertEvent(tcell.NewEventKey(tcell.KeyRune, 'z', tcell.ModAlt))
	if ev.Type != EventKey || ev.Key != KeyRune || ev.Rune != 'z' || !ev.Mod.Has(ModAlt) {
		t.Errorf("key event = %+v", ev)
	}

	ev = convertEvent(tcell.NewEventKey(tcell.KeyBackspace2, 0, tcell.ModNone))
	if ev.Key != KeyBackspace {
		t.Errorf("backspace converted to %v", ev.Key)
	}

	ev = convertEvent(tcell.NewEventResize(120, 50))
	if ev.Type != EventResize || ev.Width != 120 || ev.Height != 50 {
		t.Errorf("resize event = %+v", ev)
	}

	if ev := convertEvent(tcell.NewEventInterrupt(nil)); ev.Type != EventInterrupt {
		t.Errorf("interrupt converted to %+v", ev)
	}
	if ev := convertEvent(nil); ev.Type != EventNone {
		t.Errorf("nil converted to %+v", ev)
	}
}

func TestConvertStyle(t *testing.T) {
	st := convertStyle(Style{Foreground: RGB(1, 2, 3), Reverse: true})
	fg, bg, attrs := st.Decompose()
	if fg != tcell.NewRGBColor(1, 2, 3) {
		t.Errorf("foreground = %v", fg)
	}
	if bg != tcell.ColorDefault {
		t.Errorf("background = %v, want default", bg)
	}
	if attrs&tcell.AttrReverse == 0 {
		t.Error("reverse attribute not set")
	}
}
