package export

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/gif"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/lixenwraith/hero-field/core"
	"github.com/lixenwraith/hero-field/parameter/visual"
)

// rampSteps per color keeps the palette within 256 entries
const rampSteps = 85

// Palette holds ramps from the page background to each color the hero draws
func Palette() color.Palette {
	bg := visual.RgbPageBackground
	p := color.Palette{color.RGBA{R: bg.R, G: bg.G, B: bg.B, A: 255}}
	for _, c := range []core.RGB{visual.RgbParticleAccent, visual.RgbParticleNeutral, visual.RgbHeadline} {
		for i := 1; i <= rampSteps; i++ {
			m := bg.Blend(c, float64(i)/rampSteps)
			p = append(p, color.RGBA{R: m.R, G: m.G, B: m.B, A: 255})
		}
	}
	return p
}

// minDelay is the shortest GIF frame delay players honor, in 1/100 s
const minDelay = 2

// GIFWriter accumulates paletted frames for one animation
type GIFWriter struct {
	anim    gif.GIF
	fps     int
	elapsed int // centiseconds handed out so far
	palette color.Palette
}

// NewGIFWriter creates a looping animation at fps
// GIF delays are whole centiseconds; each frame gets the rounded distance to
// its ideal end time so the total tracks frames/fps
func NewGIFWriter(fps int) *GIFWriter {
	return &GIFWriter{
		fps:     max(fps, 1),
		palette: Palette(),
	}
}

// nextDelay returns the delay of the frame about to be added
func (g *GIFWriter) nextDelay() int {
	n := len(g.anim.Delay) + 1
	end := (n*100 + g.fps/2) / g.fps
	d := max(end-g.elapsed, minDelay)
	g.elapsed += d
	return d
}

// Duration returns the total playback time of the added frames
func (g *GIFWriter) Duration() time.Duration {
	return time.Duration(g.elapsed) * 10 * time.Millisecond
}

// Add quantizes img with Floyd-Steinberg dithering and appends it
func (g *GIFWriter) Add(img image.Image) {
	b := img.Bounds()
	frame := image.NewPaletted(b, g.palette)
	draw.FloydSteinberg.Draw(frame, b, img, b.Min)
	g.anim.Image = append(g.anim.Image, frame)
	g.anim.Delay = append(g.anim.Delay, g.nextDelay())
}

// Len returns the number of frames added
func (g *GIFWriter) Len() int {
	return len(g.anim.Image)
}

// Encode writes the animation
func (g *GIFWriter) Encode(w io.Writer) error {
	if len(g.anim.Image) == 0 {
		return fmt.Errorf("gif has no frames")
	}
	if err := gif.EncodeAll(w, &g.anim); err != nil {
		return fmt.Errorf("failed to encode gif: %w", err)
	}
	return nil
}

// WritePNG writes frame i as dir/frame_NNNN.png
func WritePNG(dir string, i int, img image.Image) (string, error) {
	path := filepath.Join(dir, fmt.Sprintf("frame_%04d.png", i))
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create frame: %w", err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return "", fmt.Errorf("failed to encode frame %d: %w", i, err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("failed to close frame %d: %w", i, err)
	}
	return path, nil
}
