package render

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// TextWidth returns the display width of s in cells
func TextWidth(s string) int {
	return runewidth.StringWidth(s)
}

// DrawText writes s at (x, y) clipped to maxWidth cells and returns the width drawn
// maxWidth <= 0 means unclipped
func DrawText(screen tcell.Screen, x, y int, s string, style tcell.Style, maxWidth int) int {
	if maxWidth > 0 && runewidth.StringWidth(s) > maxWidth {
		s = runewidth.Truncate(s, maxWidth, "…")
	}
	col := x
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		screen.SetContent(col, y, r, nil, style)
		col += w
	}
	return col - x
}

// DrawCentered writes s centered within [x, x+width) and returns its start column
func DrawCentered(screen tcell.Screen, x, y, width int, s string, style tcell.Style) int {
	w := runewidth.StringWidth(s)
	start := x + max((width-w)/2, 0)
	DrawText(screen, start, y, s, style, width)
	return start
}

// Wrap breaks text on spaces into lines no wider than width cells
// Words wider than width are hard-truncated onto their own line
func Wrap(text string, width int) []string {
	if width <= 0 {
		return nil
	}
	var lines []string
	var line strings.Builder
	lineWidth := 0
	for _, word := range strings.Fields(text) {
		ww := runewidth.StringWidth(word)
		if ww > width {
			word = runewidth.Truncate(word, width, "…")
			ww = runewidth.StringWidth(word)
		}
		switch {
		case lineWidth == 0:
			line.WriteString(word)
			lineWidth = ww
		case lineWidth+1+ww <= width:
			line.WriteByte(' ')
			line.WriteString(word)
			lineWidth += 1 + ww
		default:
			lines = append(lines, line.String())
			line.Reset()
			line.WriteString(word)
			lineWidth = ww
		}
	}
	if lineWidth > 0 {
		lines = append(lines, line.String())
	}
	return lines
}

// FillRect paints a cell rectangle with spaces in style
func FillRect(screen tcell.Screen, x, y, width, height int, style tcell.Style) {
	for row := y; row < y+height; row++ {
		for col := x; col < x+width; col++ {
			screen.SetContent(col, row, ' ', nil, style)
		}
	}
}
