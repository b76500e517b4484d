package render

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/hero-field/core"
	"github.com/lixenwraith/hero-field/parameter"
)

// HalfBlock renders two vertically stacked sub-pixels in one cell
const HalfBlock = '▀'

// CellSurface is a particle canvas at half-block resolution: each terminal cell
// holds two square sub-pixels, each covering SubPixel x SubPixel logical pixels
type CellSurface struct {
	cols, rows int
	background core.RGB
	pixels     []core.RGB // cols * rows*2, row-major
}

// SubPixel is the logical pixel edge of one half-block sub-pixel
const SubPixel = parameter.CellPixelWidth

// NewCellSurface creates a surface covering cols x rows cells
func NewCellSurface(cols, rows int, background core.RGB) *CellSurface {
	s := &CellSurface{background: background}
	s.Resize(cols, rows)
	return s
}

// Resize reallocates for a new cell size and clears
func (s *CellSurface) Resize(cols, rows int) {
	s.cols, s.rows = max(cols, 0), max(rows, 0)
	size := s.cols * s.rows * 2
	if cap(s.pixels) < size {
		s.pixels = make([]core.RGB, size)
	} else {
		s.pixels = s.pixels[:size]
	}
	s.Clear()
}

// Cells returns the surface size in terminal cells
func (s *CellSurface) Cells() (cols, rows int) {
	return s.cols, s.rows
}

// Size returns the surface size in logical pixels; zero when unmeasured
func (s *CellSurface) Size() (width, height int) {
	return s.cols * parameter.CellPixelWidth, s.rows * parameter.CellPixelHeight
}

// Clear resets every sub-pixel to the background
func (s *CellSurface) Clear() {
	if len(s.pixels) == 0 {
		return
	}
	s.pixels[0] = s.background
	for filled := 1; filled < len(s.pixels); filled *= 2 {
		copy(s.pixels[filled:], s.pixels[:filled])
	}
}

// FillDisc blends c into every sub-pixel the disc touches; a disc smaller than
// a sub-pixel still lights the one containing its center
func (s *CellSurface) FillDisc(x, y, r float64, c core.Color) {
	if c.A <= 0 || math.IsNaN(x) || math.IsNaN(y) {
		return
	}
	x0 := int(math.Floor((x - r) / SubPixel))
	x1 := int(math.Floor((x + r) / SubPixel))
	y0 := int(math.Floor((y - r) / SubPixel))
	y1 := int(math.Floor((y + r) / SubPixel))
	for py := y0; py <= y1; py++ {
		for px := x0; px <= x1; px++ {
			s.blend(px, py, c)
		}
	}
}

func (s *CellSurface) blend(px, py int, c core.Color) {
	if px < 0 || px >= s.cols || py < 0 || py >= s.rows*2 {
		return
	}
	i := py*s.cols + px
	s.pixels[i] = s.pixels[i].Blend(c.RGB, c.A)
}

// Pixel returns the sub-pixel at (px, py) in sub-pixel coordinates
func (s *CellSurface) Pixel(px, py int) core.RGB {
	if px < 0 || px >= s.cols || py < 0 || py >= s.rows*2 {
		return s.background
	}
	return s.pixels[py*s.cols+px]
}

// Flush draws the surface at cell origin (x, y) of screen, composited over the
// background with the given opacity; cells left at the background are not
// written, so content drawn underneath shows through
func (s *CellSurface) Flush(screen tcell.Screen, x, y int, opacity float64, mode ColorMode) {
	if opacity <= 0 {
		return
	}
	for row := 0; row < s.rows; row++ {
		for col := 0; col < s.cols; col++ {
			top := s.background.Blend(s.pixels[(row*2)*s.cols+col], opacity)
			bottom := s.background.Blend(s.pixels[(row*2+1)*s.cols+col], opacity)
			if top == s.background && bottom == s.background {
				continue
			}
			screen.SetContent(x+col, y+row, HalfBlock, nil, mode.Style(top, bottom))
		}
	}
}
