// Package glyph turns a headline into convergence targets: the text is
// rendered once to an offscreen alpha raster and pixel coordinates with enough
// coverage are collected on a fixed stride in row-major order.
package glyph

import (
	"image"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/lixenwraith/hero-field/core"
	"github.com/lixenwraith/hero-field/parameter"
)

// Options tunes rasterization and scanning
type Options struct {
	// Stride is the scan step in pixels on both axes
	Stride int
	// Threshold keeps a pixel when its alpha is strictly greater
	Threshold uint8
	// FontDivisor derives font size from canvas width: width / FontDivisor
	FontDivisor float64
	// MaxFontSize caps the derived font size
	MaxFontSize float64
	// FontSize overrides the derived size when positive
	FontSize float64
}

// DefaultOptions returns the hero sampling parameters
func DefaultOptions() Options {
	return Options{
		Stride:      parameter.GlyphSampleStride,
		Threshold:   parameter.GlyphAlphaThreshold,
		FontDivisor: parameter.GlyphFontDivisor,
		MaxFontSize: parameter.GlyphFontSizeMax,
	}
}

// FontSizeFor returns the font size used for a canvas of the given width
func (o Options) FontSizeFor(width int) float64 {
	if o.FontSize > 0 {
		return o.FontSize
	}
	div := o.FontDivisor
	if div <= 0 {
		div = parameter.GlyphFontDivisor
	}
	size := float64(width) / div
	if o.MaxFontSize > 0 {
		size = math.Min(size, o.MaxFontSize)
	}
	return size
}

// Rasterize renders text centered horizontally and vertically (em-box middle) onto
// a width x height alpha raster
func Rasterize(text string, width, height int, spec FontSpec, opts Options) (*image.Alpha, error) {
	dst := image.NewAlpha(image.Rect(0, 0, max(width, 0), max(height, 0)))
	if text == "" || width <= 0 || height <= 0 {
		return dst, nil
	}

	face, err := NewFace(spec, opts.FontSizeFor(width))
	if err != nil {
		return nil, err
	}
	defer face.Close()

	d := &font.Drawer{Dst: dst, Src: image.Opaque, Face: face}
	advance := d.MeasureString(text)
	m := face.Metrics()
	d.Dot = fixed.Point26_6{
		X: (fixed.I(width) - advance) / 2,
		Y: fixed.I(height)/2 + (m.Ascent-m.Descent)/2,
	}
	d.DrawString(text)

	return dst, nil
}

// Scan walks the raster row-major on stride and keeps coordinates whose alpha exceeds threshold
func Scan(img *image.Alpha, stride int, threshold uint8) []core.Point {
	if stride < 1 {
		stride = 1
	}
	b := img.Bounds()
	var points []core.Point
	for y := b.Min.Y; y < b.Max.Y; y += stride {
		for x := b.Min.X; x < b.Max.X; x += stride {
			if img.AlphaAt(x, y).A > threshold {
				points = append(points, core.Point{X: x, Y: y})
			}
		}
	}
	return points
}

// Sample renders text and returns the ordered glyph sample set
// Empty text or an unmeasured canvas yields zero samples and no error
// Font failure yields zero samples and an error wrapping ErrFontUnavailable
func Sample(text string, width, height int, spec FontSpec, opts Options) ([]core.Point, error) {
	if text == "" || width <= 0 || height <= 0 {
		return nil, nil
	}
	raster, err := Rasterize(text, width, height, spec, opts)
	if err != nil {
		return nil, err
	}
	return Scan(raster, opts.Stride, opts.Threshold), nil
}

// Bounds returns the smallest area covering all samples (zero area when empty)
func Bounds(samples []core.Point) core.Area {
	if len(samples) == 0 {
		return core.Area{}
	}
	minX, minY := samples[0].X, samples[0].Y
	maxX, maxY := minX, minY
	for _, p := range samples[1:] {
		minX = min(minX, p.X)
		minY = min(minY, p.Y)
		maxX = max(maxX, p.X)
		maxY = max(maxY, p.Y)
	}
	return core.Area{X: minX, Y: minY, Width: maxX - minX + 1, Height: maxY - minY + 1}
}
