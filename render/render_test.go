package render

import (
	"image"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/hero-field/core"
)

var (
	white = core.RGB{R: 255, G: 255, B: 255}
	blue  = core.RGB{R: 37, G: 99, B: 235}
)

func simScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, s.Init())
	s.SetSize(w, h)
	t.Cleanup(s.Fini)
	return s
}

func TestRGBToTcellRoundTrip(t *testing.T) {
	c := RGBToTcell(blue)
	assert.Equal(t, blue, TcellToRGB(c, white))
	assert.Equal(t, white, TcellToRGB(tcell.ColorDefault, white))
}

func TestParseColorMode(t *testing.T) {
	for in, want := range map[string]ColorMode{"": ColorTrue, "truecolor": ColorTrue, "256": Color256} {
		got, ok := ParseColorMode(in)
		assert.True(t, ok, in)
		assert.Equal(t, want, got, in)
	}
	_, ok := ParseColorMode("16")
	assert.False(t, ok)

	c := Color256.Color(blue)
	assert.False(t, c.IsRGB(), "256 mode should yield a palette color")
}

func TestCellSurfaceGeometry(t *testing.T) {
	s := NewCellSurface(10, 4, white)
	cols, rows := s.Cells()
	assert.Equal(t, 10, cols)
	assert.Equal(t, 4, rows)

	w, h := s.Size()
	assert.Equal(t, 120, w)
	assert.Equal(t, 96, h)

	empty := NewCellSurface(0, 0, white)
	w, h = empty.Size()
	assert.Zero(t, w)
	assert.Zero(t, h)
	empty.FillDisc(1, 1, 1, core.Opaque(blue))
	empty.Clear()
}

func TestCellSurfaceFillDisc(t *testing.T) {
	s := NewCellSurface(10, 4, white)

	// logical (30, 40) lands in sub-pixel (2, 3)
	s.FillDisc(30, 40, 1, core.Opaque(blue))
	assert.Equal(t, blue, s.Pixel(2, 3))
	assert.Equal(t, white, s.Pixel(2, 2))

	s.FillDisc(30, 16, 1, core.Color{RGB: blue, A: 0.5})
	half := s.Pixel(2, 1)
	assert.NotEqual(t, white, half)
	assert.NotEqual(t, blue, half)

	// off-canvas discs are clipped silently
	s.FillDisc(-100, -100, 2, core.Opaque(blue))
	s.FillDisc(1e6, 1e6, 2, core.Opaque(blue))

	s.Clear()
	assert.Equal(t, white, s.Pixel(2, 3))
}

func TestCellSurfaceFlush(t *testing.T) {
	screen := simScreen(t, 10, 4)
	s := NewCellSurface(10, 4, white)
	s.FillDisc(30, 40, 1, core.Opaque(blue)) // cell (2, 1), bottom half

	s.Flush(screen, 0, 0, 1, ColorTrue)
	screen.Show()

	r, _, style, _ := screen.GetContent(2, 1)
	assert.Equal(t, HalfBlock, r)
	fg, bg, _ := style.Decompose()
	assert.Equal(t, RGBToTcell(white), fg)
	assert.Equal(t, RGBToTcell(blue), bg)

	r, _, _, _ = screen.GetContent(5, 3)
	assert.Equal(t, ' ', r)
}

func TestCellSurfaceFlushKeepsUnderlay(t *testing.T) {
	screen := simScreen(t, 10, 4)
	DrawText(screen, 0, 3, "headline", tcell.StyleDefault, 0)

	s := NewCellSurface(10, 4, white)
	s.FillDisc(30, 40, 1, core.Opaque(blue))
	s.Flush(screen, 0, 0, 1, ColorTrue)

	r, _, _, _ := screen.GetContent(0, 3)
	assert.Equal(t, 'h', r, "background cells must not overwrite text")
}

func TestCellSurfaceFlushOpacity(t *testing.T) {
	screen := simScreen(t, 10, 4)
	s := NewCellSurface(10, 4, white)
	s.FillDisc(30, 40, 1, core.Opaque(blue))

	s.Flush(screen, 0, 0, 0, ColorTrue)
	r, _, _, _ := screen.GetContent(2, 1)
	assert.NotEqual(t, HalfBlock, r, "zero opacity writes nothing")

	s.Flush(screen, 0, 0, 0.5, ColorTrue)
	_, _, style, _ := screen.GetContent(2, 1)
	_, bg, _ := style.Decompose()
	assert.Equal(t, RGBToTcell(white.Blend(blue, 0.5)), bg)
}

func TestImageSurfaceFillDisc(t *testing.T) {
	s := NewImageSurface(40, 20)
	w, h := s.Size()
	require.Equal(t, 40, w)
	require.Equal(t, 20, h)

	s.FillDisc(10, 10, 3, core.Opaque(blue))
	center := s.Image().RGBAAt(10, 10)
	assert.Greater(t, center.A, uint8(250))
	assert.InDelta(t, blue.B, center.B, 3)
	assert.Zero(t, s.Image().RGBAAt(30, 10).A)

	// partially off-canvas disc must not panic and must cover the edge
	s.FillDisc(0, 0, 3, core.Opaque(blue))
	assert.NotZero(t, s.Image().RGBAAt(0, 0).A)

	s.Clear()
	assert.Zero(t, s.Image().RGBAAt(10, 10).A)
}

func TestImageSurfaceComposite(t *testing.T) {
	s := NewImageSurface(8, 8)
	s.FillDisc(4, 4, 3, core.Opaque(blue))

	dst := image.NewRGBA(image.Rect(0, 0, 8, 8))
	s.Composite(dst, white, 0)
	assert.Equal(t, uint8(255), dst.RGBAAt(4, 4).R, "zero opacity shows only background")

	s.Composite(dst, white, 1)
	got := dst.RGBAAt(4, 4)
	assert.InDelta(t, blue.R, got.R, 3)
	assert.InDelta(t, blue.B, got.B, 3)
}

func TestWrap(t *testing.T) {
	lines := Wrap("Beyond tools. A true partner in thought", 14)
	assert.Equal(t, []string{"Beyond tools.", "A true partner", "in thought"}, lines)
	for _, l := range lines {
		assert.LessOrEqual(t, TextWidth(l), 14)
	}

	assert.Nil(t, Wrap("anything", 0))
	assert.Equal(t, []string{"abcd…"}, Wrap("abcdefghij", 5))
}

func TestDrawTextAndCentered(t *testing.T) {
	screen := simScreen(t, 20, 2)
	style := tcell.StyleDefault

	n := DrawText(screen, 0, 0, "Colsy Labs", style, 0)
	assert.Equal(t, 10, n)
	r, _, _, _ := screen.GetContent(6, 0)
	assert.Equal(t, 'L', r)

	n = DrawText(screen, 0, 1, "Colsy Labs", style, 6)
	assert.Equal(t, 6, n)

	start := DrawCentered(screen, 0, 1, 20, "AI", style)
	assert.Equal(t, 9, start)
}
