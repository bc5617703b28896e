package app

import (
	"bytes"
	"fmt"
	"strconv"
	"unicode/utf8"

	"github.com/rivo/uniseg"

	"github.com/dshills/piecewise/internal/config"
	"github.com/dshills/piecewise/internal/renderer/backend"
)

var lineBreak = []byte{'\n'}

// cluster is one grapheme cluster of a line placed on screen.
type cluster struct {
	r     rune // first rune; the one drawn
	col   int  // codepoint column of r
	runes int
	x     int // first screen cell
	width int
}

// layoutLine splits a line into grapheme clusters and assigns screen
// cells. Tabs advance to the next multiple of tabWidth and control
// characters are shown as '?'.
func layoutLine(line []byte, tabWidth int) []cluster {
	var out []cluster
	col, x, state := 0, 0, -1
	for len(line) > 0 {
		var g []byte
		var width int
		g, line, width, state = uniseg.FirstGraphemeCluster(line, state)

		r, _ := utf8.DecodeRune(g)
		n := utf8.RuneCount(g)
		switch {
		case r == '\t':
			width = tabWidth - x%tabWidth
		case width == 0:
			r, width = '?', 1
		}

		out = append(out, cluster{r: r, col: col, runes: n, x: x, width: width})
		col += n
		x += width
	}
	return out
}

// cellOf returns the screen cell of codepoint column col. Columns inside
// a cluster map to the cluster's first cell; columns past the end map to
// the cell after the last cluster.
func cellOf(clusters []cluster, col int) int {
	for _, c := range clusters {
		if col < c.col+c.runes {
			return c.x
		}
	}
	if len(clusters) == 0 {
		return 0
	}
	last := clusters[len(clusters)-1]
	return last.x + last.width
}

// draw paints the active window and the status line.
func (app *Application) draw() {
	b := app.backend
	b.Clear()
	defer b.Show()

	textHeight := app.height - 1
	w := app.session.Active()
	if w == nil || textHeight < 1 || app.width < 1 {
		b.HideCursor()
		return
	}
	w.scroll(textHeight, app.cfg.Editor.ScrollOff)

	t := w.Table()
	gutter := 0
	if app.cfg.UI.ShowLineNumbers {
		gutter = len(strconv.Itoa(t.LineCount())) + 1
	}
	numberStyle := backend.Style{Dim: true}

	cur := w.Cursor()
	cursorX, cursorY := 0, -1
	text := t.MaterializeFromLine(w.Top())
	for row := 0; row < textHeight; row++ {
		lineNo := w.Top() + row
		if lineNo >= t.LineCount() {
			break
		}
		var line []byte
		line, text, _ = bytes.Cut(text, lineBreak)

		if gutter > 0 {
			drawString(b, 0, row, gutter, fmt.Sprintf("%*d ", gutter-1, lineNo+1), numberStyle)
		}

		clusters := layoutLine(line, app.cfg.Editor.TabWidth)
		for _, c := range clusters {
			x := gutter + c.x
			if x+c.width > app.width {
				break
			}
			if c.r == '\t' {
				continue
			}
			b.SetCell(x, row, backend.Cell{Rune: c.r, Width: c.width})
		}

		if lineNo == cur.Line {
			cursorX, cursorY = gutter+cellOf(clusters, cur.Col), row
		}
	}

	app.drawStatus(w, textHeight)

	if cursorY < 0 {
		b.HideCursor()
		return
	}
	b.ShowCursor(min(cursorX, app.width-1), cursorY)
}

func (app *Application) drawStatus(w *Window, y int) {
	style := app.statusStyle()
	for x := 0; x < app.width; x++ {
		app.backend.SetCell(x, y, backend.Cell{Rune: ' ', Width: 1, Style: style})
	}

	left := " " + w.Name()
	if w.Modified() {
		left += " [+]"
	}
	cur := w.Cursor()
	right := fmt.Sprintf("%d:%d  %d chars  %d/%d ",
		cur.Line+1, cur.Col+1, w.Table().TotalCodepointCount(),
		app.session.ActiveIndex()+1, app.session.Count())

	end := drawString(app.backend, 0, y, app.width, left, style)
	if rx := app.width - uniseg.StringWidth(right); rx > end {
		drawString(app.backend, rx, y, app.width, right, style)
	}
}

// statusStyle builds the status line style from the configured colours,
// falling back to reverse video.
func (app *Application) statusStyle() backend.Style {
	fg, err := config.ParseColor(app.cfg.UI.StatusForeground)
	if err != nil {
		return backend.Style{Reverse: true}
	}
	bg, err := config.ParseColor(app.cfg.UI.StatusBackground)
	if err != nil {
		return backend.Style{Reverse: true}
	}
	return backend.Style{
		Foreground: backend.FromColorful(fg),
		Background: backend.FromColorful(bg),
	}
}

// drawString draws s from x up to maxX and returns the cell after it.
func drawString(b backend.Backend, x, y, maxX int, s string, style backend.Style) int {
	for _, r := range s {
		w := backend.RuneWidth(r)
		if w == 0 {
			continue
		}
		if x+w > maxX {
			break
		}
		b.SetCell(x, y, backend.Cell{Rune: r, Width: w, Style: style})
		x += w
	}
	return x
}
