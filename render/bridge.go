package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/hero-field/core"
)

// ColorMode selects how RGB values reach the terminal
type ColorMode int

const (
	// ColorTrue emits 24-bit colors
	ColorTrue ColorMode = iota
	// Color256 snaps colors to the xterm 256 palette
	Color256
)

// ParseColorMode accepts "truecolor", "256" or "" (truecolor)
func ParseColorMode(s string) (ColorMode, bool) {
	switch s {
	case "", "truecolor", "24bit":
		return ColorTrue, true
	case "256":
		return Color256, true
	}
	return ColorTrue, false
}

var xterm256 = func() []tcell.Color {
	p := make([]tcell.Color, 256)
	for i := range p {
		p[i] = tcell.PaletteColor(i)
	}
	return p
}()

// RGBToTcell converts RGB to tcell.Color
func RGBToTcell(rgb core.RGB) tcell.Color {
	return tcell.NewRGBColor(int32(rgb.R), int32(rgb.G), int32(rgb.B))
}

// TcellToRGB converts tcell.Color to RGB; ColorDefault maps to fallback
func TcellToRGB(c tcell.Color, fallback core.RGB) core.RGB {
	if c == tcell.ColorDefault {
		return fallback
	}
	r, g, b := c.RGB()
	return core.RGB{R: uint8(r), G: uint8(g), B: uint8(b)}
}

// Color converts rgb for the mode
func (m ColorMode) Color(rgb core.RGB) tcell.Color {
	c := RGBToTcell(rgb)
	if m == Color256 {
		return tcell.FindColor(c, xterm256)
	}
	return c
}

// Style builds a tcell style from foreground and background
func (m ColorMode) Style(fg, bg core.RGB) tcell.Style {
	return tcell.StyleDefault.Foreground(m.Color(fg)).Background(m.Color(bg))
}
