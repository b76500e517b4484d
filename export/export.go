// Package export plays the hero headlessly on an offscreen image surface and
// writes the frames as an animated GIF and numbered PNGs.
package export

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"
	"math/rand/v2"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/lixenwraith/hero-field/engine"
	"github.com/lixenwraith/hero-field/glyph"
	"github.com/lixenwraith/hero-field/hero"
	"github.com/lixenwraith/hero-field/parameter"
	"github.com/lixenwraith/hero-field/parameter/visual"
	"github.com/lixenwraith/hero-field/render"
)

// ErrStatic means the size is below the animation breakpoint
var ErrStatic = errors.New("hero animation disabled at this size")

// maxSimSeconds bounds a run that renders until the script settles
const maxSimSeconds = 30

// Options configures a headless run
type Options struct {
	Width, Height int
	// FPS is the capture rate; the simulation always steps at DefaultFPS
	FPS int
	// Frames to capture; 0 captures until the script settles plus a short hold
	Frames        int
	Seed          uint64
	ParticleCount int
	Logger        *zap.Logger
}

// Result summarizes a run
type Result struct {
	Frames    int
	Simulated time.Duration
	GIF       string
	PNGs      []string
}

// Capture summarizes a Render pass
type Capture struct {
	Frames int
	// Simulated is the synthetic clock time from the first to the last captured
	// frame plus one frame period, the span a correctly paced playback shows
	Simulated time.Duration
}

// Render mounts the hero on an image surface, advances it on a synthetic clock
// and passes each captured frame to emit; img is reused between calls
// Frame i is captured on the first simulation step at or after i/FPS seconds
func Render(opts Options, emit func(i int, img *image.RGBA) error) (Capture, error) {
	var res Capture
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	if opts.FPS <= 0 {
		return res, fmt.Errorf("export fps %d must be positive", opts.FPS)
	}

	clock := engine.NewMockTimeProvider(time.Unix(0, 0).UTC())
	sched := engine.NewFrameScheduler()
	surface := render.NewImageSurface(opts.Width, opts.Height)

	ho := hero.DefaultOptions()
	ho.Clock = clock
	ho.Logger = log
	if opts.ParticleCount > 0 {
		ho.Count = opts.ParticleCount
	}
	if opts.Seed != 0 {
		ho.Rand = rand.New(rand.NewPCG(opts.Seed, opts.Seed>>1|1))
	}
	h := hero.Mount(sched, surface, opts.Width, ho)
	defer h.Teardown()
	if !h.Animated() {
		return res, fmt.Errorf("%w: %dx%d", ErrStatic, opts.Width, opts.Height)
	}

	headline, err := glyph.Rasterize(ho.Headline, opts.Width, opts.Height, ho.Font, ho.Sampling)
	if err != nil {
		log.Warn("headline overlay unavailable", zap.Error(err))
		headline = nil
	}

	simRate := parameter.DefaultFPS
	step := time.Second / time.Duration(simRate)
	hold := max(opts.FPS/2, 1)

	img := image.NewRGBA(image.Rect(0, 0, opts.Width, opts.Height))
	period := time.Second / time.Duration(opts.FPS)
	var first time.Time
	done := false
	for sim := 0; sim < simRate*maxSimSeconds && !done; sim++ {
		sched.Tick(clock.Advance(step))

		// integer form of sim/simRate >= captured/FPS; rates above simRate repeat a step
		for !done && sim*opts.FPS >= res.Frames*simRate {
			compose(img, surface, headline, h.UI())
			if err := emit(res.Frames, img); err != nil {
				return res, err
			}
			now := clock.Now()
			if res.Frames == 0 {
				first = now
			}
			res.Frames++
			res.Simulated = now.Sub(first) + period

			switch {
			case opts.Frames > 0:
				done = res.Frames >= opts.Frames
			case h.Settled():
				hold--
				done = hold <= 0
			}
		}
	}

	log.Debug("export rendered",
		zap.Int("frames", res.Frames),
		zap.Duration("simulated", res.Simulated),
		zap.Int("width", opts.Width),
		zap.Int("height", opts.Height),
		zap.Bool("settled", h.Settled()),
	)
	return res, nil
}

// compose paints the page background, the canvas at its animated opacity and
// the crisp headline at its animated opacity
func compose(dst *image.RGBA, canvas *render.ImageSurface, headline *image.Alpha, ui hero.UI) {
	canvas.Composite(dst, visual.RgbPageBackground, ui.CanvasOpacity)
	if headline == nil || ui.HeadlineOpacity <= 0 {
		return
	}
	c := visual.RgbHeadline
	src := image.NewUniform(color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(math.Round(math.Min(ui.HeadlineOpacity, 1) * 255))})
	draw.DrawMask(dst, dst.Bounds(), src, image.Point{}, headline, image.Point{}, draw.Over)
}

// Run renders opts and writes a GIF to output and PNG frames into frameDir;
// an empty path skips that format
func Run(opts Options, output, frameDir string) (Result, error) {
	var res Result
	if output == "" && frameDir == "" {
		return res, errors.New("export needs an output file or a frame directory")
	}
	if frameDir != "" {
		if err := os.MkdirAll(frameDir, 0755); err != nil {
			return res, fmt.Errorf("failed to create frame directory: %w", err)
		}
	}

	anim := NewGIFWriter(opts.FPS)
	capture, err := Render(opts, func(i int, img *image.RGBA) error {
		if output != "" {
			anim.Add(img)
		}
		if frameDir != "" {
			path, err := WritePNG(frameDir, i, img)
			if err != nil {
				return err
			}
			res.PNGs = append(res.PNGs, path)
		}
		return nil
	})
	res.Frames, res.Simulated = capture.Frames, capture.Simulated
	if err != nil {
		return res, err
	}

	if output != "" {
		if dir := filepath.Dir(output); dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return res, fmt.Errorf("failed to create output directory: %w", err)
			}
		}
		f, err := os.Create(output)
		if err != nil {
			return res, fmt.Errorf("failed to create gif: %w", err)
		}
		if err := anim.Encode(f); err != nil {
			f.Close()
			return res, err
		}
		if err := f.Close(); err != nil {
			return res, fmt.Errorf("failed to close gif: %w", err)
		}
		res.GIF = output
	}
	return res, nil
}
