package render

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/vector"

	"github.com/lixenwraith/hero-field/core"
)

// kappa places cubic control points for a quarter circle
const kappa = 0.5522847498

// ImageSurface is an antialiased particle canvas over a transparent RGBA image
type ImageSurface struct {
	img  *image.RGBA
	ras  *vector.Rasterizer
	mask *image.Alpha // per-disc coverage, reused across calls
}

// NewImageSurface creates a width x height transparent canvas
func NewImageSurface(width, height int) *ImageSurface {
	return &ImageSurface{
		img: image.NewRGBA(image.Rect(0, 0, max(width, 0), max(height, 0))),
		ras: vector.NewRasterizer(0, 0),
	}
}

// Size returns the canvas size in pixels
func (s *ImageSurface) Size() (width, height int) {
	b := s.img.Bounds()
	return b.Dx(), b.Dy()
}

// Image exposes the canvas
func (s *ImageSurface) Image() *image.RGBA {
	return s.img
}

// Clear makes every pixel transparent
func (s *ImageSurface) Clear() {
	clear(s.img.Pix)
}

// FillDisc composites an antialiased disc over the canvas
func (s *ImageSurface) FillDisc(x, y, r float64, c core.Color) {
	if r <= 0 || c.A <= 0 || math.IsNaN(x) || math.IsNaN(y) {
		return
	}
	box := image.Rect(
		int(math.Floor(x-r)), int(math.Floor(y-r)),
		int(math.Ceil(x+r))+1, int(math.Ceil(y+r))+1,
	)
	if box.Intersect(s.img.Bounds()).Empty() {
		return
	}

	// rasterizer space starts at box.Min; draw.DrawMask clips at the canvas edge
	cx, cy := float32(x-float64(box.Min.X)), float32(y-float64(box.Min.Y))
	rr, k := float32(r), float32(r*kappa)

	z := s.ras
	z.Reset(box.Dx(), box.Dy())
	z.MoveTo(cx+rr, cy)
	z.CubeTo(cx+rr, cy+k, cx+k, cy+rr, cx, cy+rr)
	z.CubeTo(cx-k, cy+rr, cx-rr, cy+k, cx-rr, cy)
	z.CubeTo(cx-rr, cy-k, cx-k, cy-rr, cx, cy-rr)
	z.CubeTo(cx+k, cy-rr, cx+rr, cy-k, cx+rr, cy)
	z.ClosePath()

	maskRect := image.Rect(0, 0, box.Dx(), box.Dy())
	if s.mask == nil || s.mask.Bounds() != maskRect {
		s.mask = image.NewAlpha(maskRect)
	} else {
		clear(s.mask.Pix)
	}
	z.DrawOp = draw.Src
	z.Draw(s.mask, maskRect, image.Opaque, image.Point{})

	src := image.NewUniform(color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(math.Round(min(c.A, 1) * 255))})
	draw.DrawMask(s.img, box, src, image.Point{}, s.mask, image.Point{}, draw.Over)
}

// Composite draws the canvas over an opaque background at opacity into dst
func (s *ImageSurface) Composite(dst draw.Image, background core.RGB, opacity float64) {
	b := s.img.Bounds()
	draw.Draw(dst, b, image.NewUniform(color.RGBA{R: background.R, G: background.G, B: background.B, A: 255}), image.Point{}, draw.Src)
	if opacity <= 0 {
		return
	}
	mask := image.NewUniform(color.Alpha{A: uint8(math.Round(math.Min(opacity, 1) * 255))})
	draw.DrawMask(dst, b, s.img, b.Min, mask, image.Point{}, draw.Over)
}
