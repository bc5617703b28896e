package backend

import (
	"github.com/lucasb-eyer/go-colorful"
	"github.com/rivo/uniseg"
)

// Color is a 24-bit colour. The zero value is the terminal default.
type Color struct {
	R, G, B uint8
	Set     bool
}

// ColorDefault is the terminal's default colour.
var ColorDefault = Color{}

// RGB returns a true-colour value.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, Set: true}
}

// FromColorful converts a parsed colour.
func FromColorful(c colorful.Color) Color {
	r, g, b := c.Clamped().RGB255()
	return RGB(r, g, b)
}

// IsDefault returns true for the terminal default colour.
func (c Color) IsDefault() bool {
	return !c.Set
}

// Style holds the visual attributes of a cell.
type Style struct {
	Foreground Color
	Background Color
	Bold       bool
	Reverse    bool
	Dim        bool
}

// DefaultStyle returns the terminal default style.
func DefaultStyle() Style {
	return Style{}
}

// Cell is a single screen cell.
type Cell struct {
	Rune  rune
	Width int // Display width in columns; 2 for wide glyphs
	Style Style
}

// NewCell creates a cell with the default style.
func NewCell(r rune) Cell {
	return Cell{Rune: r, Width: RuneWidth(r), Style: DefaultStyle()}
}

// NewStyledCell creates a cell with the given style.
func NewStyledCell(r rune, style Style) Cell {
	return Cell{Rune: r, Width: RuneWidth(r), Style: style}
}

// EmptyCell returns a blank cell.
func EmptyCell() Cell {
	return Cell{Rune: ' ', Width: 1}
}

// RuneWidth returns the number of columns r occupies on screen.
// Control characters occupy none.
func RuneWidth(r rune) int {
	if r < 0x20 || r == 0x7f {
		return 0
	}
	return uniseg.StringWidth(string(r))
}
