package export

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/gif"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/hero-field/parameter/visual"
)

func testOptions() Options {
	return Options{Width: 800, Height: 200, FPS: 30, Frames: 10, Seed: 11, ParticleCount: 150}
}

func countWhere(img *image.RGBA, pred func(c color.RGBA) bool) int {
	n := 0
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if pred(img.RGBAAt(x, y)) {
				n++
			}
		}
	}
	return n
}

func notBackground(c color.RGBA) bool {
	bg := visual.RgbPageBackground
	return c.R != bg.R || c.G != bg.G || c.B != bg.B
}

func TestRenderFixedFrameCount(t *testing.T) {
	var indices []int
	res, err := Render(testOptions(), func(i int, img *image.RGBA) error {
		indices = append(indices, i)
		assert.Equal(t, image.Rect(0, 0, 800, 200), img.Bounds())
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 10, res.Frames)
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, indices)
}

func TestRenderUntilSettled(t *testing.T) {
	opts := testOptions()
	opts.Frames = 0
	opts.FPS = 10

	var first, last *image.RGBA
	res, err := Render(opts, func(i int, img *image.RGBA) error {
		if i == 0 {
			first = image.NewRGBA(img.Bounds())
			copy(first.Pix, img.Pix)
		}
		last = img
		return nil
	})
	require.NoError(t, err)

	// 0.5s delay + 3.2s script at 10 captures per second, plus the hold
	assert.GreaterOrEqual(t, res.Frames, 37)
	assert.Less(t, res.Frames, 10*maxSimSeconds)

	assert.Positive(t, countWhere(first, notBackground), "particles visible at the start")

	// canvas faded out; only the dark headline remains
	dark := func(c color.RGBA) bool { return c.R < 100 && c.G < 100 && c.B < 100 }
	blue := func(c color.RGBA) bool { return c.B > 200 && c.R < 80 }
	assert.Positive(t, countWhere(last, dark))
	assert.Zero(t, countWhere(last, blue), "no accent particles after the canvas fade")
}

func TestPlaybackMatchesSimulatedTime(t *testing.T) {
	for _, fps := range []int{10, 24, 25, 30, 40, 50} {
		t.Run(fmt.Sprintf("%dfps", fps), func(t *testing.T) {
			opts := testOptions()
			opts.Frames = 0
			opts.FPS = fps
			opts.ParticleCount = 50

			gw := NewGIFWriter(fps)
			res, err := Render(opts, func(_ int, img *image.RGBA) error {
				gw.Add(img)
				return nil
			})
			require.NoError(t, err)
			require.Equal(t, res.Frames, gw.Len())

			// script plus start delay is 3.7s; the hold adds half a second
			assert.Greater(t, res.Simulated, 3700*time.Millisecond)
			assert.Less(t, res.Simulated, 5*time.Second)

			// one simulation step of capture jitter plus one centisecond of rounding
			tolerance := time.Second/60 + 10*time.Millisecond
			assert.InDelta(t, res.Simulated.Seconds(), gw.Duration().Seconds(), tolerance.Seconds(),
				"%d frames play for %v but cover %v", res.Frames, gw.Duration(), res.Simulated)
		})
	}
}

func TestCaptureFollowsFrameBoundaries(t *testing.T) {
	opts := testOptions()
	opts.FPS = 40
	opts.Frames = 9

	res, err := Render(opts, func(int, *image.RGBA) error { return nil })
	require.NoError(t, err)
	// 40 fps on a 60 Hz simulation: frame 8 lands on step 12, 200ms after frame 0
	assert.Equal(t, 9, res.Frames)
	assert.InDelta(t, (225 * time.Millisecond).Seconds(), res.Simulated.Seconds(), 1e-6)
}

func TestRenderNarrowIsStatic(t *testing.T) {
	opts := testOptions()
	opts.Width = 600
	_, err := Render(opts, func(int, *image.RGBA) error { return nil })
	assert.ErrorIs(t, err, ErrStatic)
}

func TestRenderStopsOnEmitError(t *testing.T) {
	boom := errors.New("disk full")
	res, err := Render(testOptions(), func(i int, _ *image.RGBA) error {
		if i == 2 {
			return boom
		}
		return nil
	})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 2, res.Frames)
}

func TestRenderRejectsZeroFPS(t *testing.T) {
	opts := testOptions()
	opts.FPS = 0
	_, err := Render(opts, func(int, *image.RGBA) error { return nil })
	assert.Error(t, err)
}

func TestPalette(t *testing.T) {
	p := Palette()
	assert.LessOrEqual(t, len(p), 256)
	assert.Equal(t, color.RGBA{R: 255, G: 255, B: 255, A: 255}, p[0])
	a := visual.RgbParticleAccent
	assert.Contains(t, p, color.Color(color.RGBA{R: a.R, G: a.G, B: a.B, A: 255}))
}

func TestGIFWriter(t *testing.T) {
	w := NewGIFWriter(25)
	var buf bytes.Buffer
	assert.Error(t, w.Encode(&buf), "empty animation")

	img := image.NewRGBA(image.Rect(0, 0, 16, 8))
	for i := 0; i < 3; i++ {
		img.Set(i, i, color.RGBA{R: 37, G: 99, B: 235, A: 255})
		w.Add(img)
	}
	require.Equal(t, 3, w.Len())
	require.NoError(t, w.Encode(&buf))

	decoded, err := gif.DecodeAll(&buf)
	require.NoError(t, err)
	assert.Len(t, decoded.Image, 3)
	assert.Equal(t, []int{4, 4, 4}, decoded.Delay)
}

func TestGIFDelaysCarryRemainder(t *testing.T) {
	tests := []struct {
		fps   int
		delay []int
	}{
		{30, []int{3, 4, 3, 3, 4, 3}},
		{40, []int{3, 2, 3, 2, 3, 2}},
		{24, []int{4, 4, 5, 4, 4, 4}},
		{50, []int{2, 2, 2, 2, 2, 2}},
	}
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%dfps", tt.fps), func(t *testing.T) {
			w := NewGIFWriter(tt.fps)
			for range tt.delay {
				w.Add(img)
			}
			var buf bytes.Buffer
			require.NoError(t, w.Encode(&buf))
			decoded, err := gif.DecodeAll(&buf)
			require.NoError(t, err)
			assert.Equal(t, tt.delay, decoded.Delay)

			sum := 0
			for _, d := range tt.delay {
				sum += d
			}
			assert.Equal(t, time.Duration(sum)*10*time.Millisecond, w.Duration())
		})
	}
}

func TestRunWritesGIFAndFrames(t *testing.T) {
	dir := t.TempDir()
	opts := testOptions()
	opts.Frames = 4

	res, err := Run(opts, filepath.Join(dir, "out", "hero.gif"), filepath.Join(dir, "frames"))
	require.NoError(t, err)
	assert.Equal(t, 4, res.Frames)
	require.Len(t, res.PNGs, 4)
	assert.Equal(t, filepath.Join(dir, "frames", "frame_0003.png"), res.PNGs[3])

	f, err := os.Open(res.GIF)
	require.NoError(t, err)
	defer f.Close()
	decoded, err := gif.DecodeAll(f)
	require.NoError(t, err)
	assert.Len(t, decoded.Image, 4)
}

func TestRunNeedsATarget(t *testing.T) {
	_, err := Run(testOptions(), "", "")
	assert.Error(t, err)
}
