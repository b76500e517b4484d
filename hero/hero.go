// Package hero mounts the landing hero: a particle field that condenses into the
// headline under a scripted timeline, then hands over to crisp text and UI.
package hero

import (
	"math/rand/v2"
	"time"

	"go.uber.org/zap"

	"github.com/lixenwraith/hero-field/engine"
	"github.com/lixenwraith/hero-field/glyph"
	"github.com/lixenwraith/hero-field/parameter"
	"github.com/lixenwraith/hero-field/particle"
	"github.com/lixenwraith/hero-field/timeline"
)

// Canvas is the drawing surface the field renders into, sized in logical pixels
type Canvas interface {
	particle.Surface
	Size() (width, height int)
}

// UI holds the animated presentation properties outside the canvas
type UI struct {
	HeadlineOpacity   float64
	CanvasOpacity     float64
	SubheadingOpacity float64
	SubheadingY       float64 // downward offset in logical pixels
	CTAOpacity        float64
	CTAY              float64
}

// InitialUI is the markup state before any animation: text hidden, canvas shown
func InitialUI() UI {
	return UI{CanvasOpacity: 1}
}

// StaticUI is the settled state, also shown when animation is gated off
func StaticUI() UI {
	return UI{HeadlineOpacity: 1, SubheadingOpacity: 1, CTAOpacity: 1}
}

// Options configures a mount
type Options struct {
	Headline string
	Count    int
	Font     glyph.FontSpec
	Sampling glyph.Options
	// Rand seeds particle scatter; nil uses a time-seeded source
	Rand *rand.Rand
	// Clock drives the timeline; nil uses system time
	Clock engine.Clock
	// Delay before the timeline starts
	Delay time.Duration
	// OnHeadline runs once when the headline starts fading in
	OnHeadline func()
	Logger     *zap.Logger
}

// DefaultOptions returns the landing page configuration
func DefaultOptions() Options {
	return Options{
		Headline: parameter.HeroHeadline,
		Count:    parameter.HeroParticleCount,
		Font:     glyph.FontSpec{Family: parameter.HeroFontFamily, Weight: glyph.WeightBold},
		Sampling: glyph.DefaultOptions(),
		Delay:    parameter.HeroTimelineDelay,
	}
}

// Hero is one mounted hero instance
type Hero struct {
	ui   UI
	ctrl particle.Control

	field  *particle.Field
	canvas Canvas
	tl     *timeline.Timeline
	driver *timeline.TimeDriver

	sched   *engine.FrameScheduler
	frameID engine.FrameID
	frames  uint64

	animated bool
	tornDown bool
	log      *zap.Logger
}

// Mount builds the field and timeline and requests the first frame
// Narrow viewports, a nil canvas or an unmeasured canvas get a static hero:
// final UI state, no field, no frame callback
func Mount(sched *engine.FrameScheduler, canvas Canvas, viewportWidth int, opts Options) *Hero {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	h := &Hero{
		ui:     InitialUI(),
		ctrl:   particle.Control{Attraction: 0, Chaos: 1},
		sched:  sched,
		canvas: canvas,
		log:    log,
	}

	reason := gate(canvas, viewportWidth)
	if reason != "" {
		h.ui = StaticUI()
		log.Debug("hero animation disabled", zap.String("reason", reason), zap.Int("viewport_width", viewportWidth))
		return h
	}

	width, height := canvas.Size()
	samples, err := glyph.Sample(opts.Headline, width, height, opts.Font, opts.Sampling)
	if err != nil {
		// zero samples: particles settle back on their origins
		log.Warn("headline sampling failed", zap.Error(err))
		samples = nil
	}

	rng := opts.Rand
	if rng == nil {
		seed := uint64(time.Now().UnixNano())
		rng = rand.New(rand.NewPCG(seed, seed>>1|1))
	}
	h.field = particle.New(opts.Count, width, height, samples, rng)

	clock := opts.Clock
	if clock == nil {
		clock = engine.NewTimeProvider()
	}
	h.tl = h.buildTimeline(opts.OnHeadline)
	if err := h.tl.Err(); err != nil {
		log.Error("hero timeline build", zap.Error(err))
	}
	h.driver = timeline.NewTimeDriver(h.tl, clock, opts.Delay)

	h.animated = true
	h.frameID = sched.Request(h.frame)

	log.Debug("hero mounted",
		zap.Int("width", width),
		zap.Int("height", height),
		zap.Int("samples", len(samples)),
		zap.Int("particles", h.field.Len()),
	)
	return h
}

// gate returns why animation is disabled, or "" when it may run
func gate(canvas Canvas, viewportWidth int) string {
	if viewportWidth < parameter.HeroBreakpoint {
		return "narrow viewport"
	}
	if canvas == nil {
		return "no canvas"
	}
	if w, h := canvas.Size(); w <= 0 || h <= 0 {
		return "canvas not measured"
	}
	return ""
}

func (h *Hero) buildTimeline(onHeadline func()) *timeline.Timeline {
	tl := timeline.New(timeline.Vars{})

	// Synthesis
	tl.Add(timeline.At(0),
		timeline.Vars{Duration: parameter.HeroSynthesisDuration, Ease: parameter.HeroSynthesisEase},
		timeline.To(&h.ctrl.Attraction, 1),
		timeline.To(&h.ctrl.Chaos, 0),
	)
	tl.Add(timeline.At(parameter.HeroHeadlineAt),
		timeline.Vars{Duration: parameter.HeroHeadlineDuration, Ease: parameter.HeroHeadlineEase},
		timeline.To(&h.ui.HeadlineOpacity, 1),
	)
	tl.Add(timeline.At(parameter.HeroCanvasFadeAt),
		timeline.Vars{Duration: parameter.HeroCanvasFadeDuration, Ease: parameter.HeroCanvasFadeEase},
		timeline.To(&h.ui.CanvasOpacity, 0),
	)

	// UI reveal
	reveal := timeline.Vars{Duration: parameter.HeroRevealDuration, Ease: parameter.HeroRevealEase}
	tl.Add(timeline.At(parameter.HeroSubheadingAt), reveal,
		timeline.FromTo(&h.ui.SubheadingOpacity, 0, 1),
		timeline.FromTo(&h.ui.SubheadingY, parameter.HeroRevealOffsetY, 0),
	)
	tl.Add(timeline.At(parameter.HeroCTAAt), reveal,
		timeline.FromTo(&h.ui.CTAOpacity, 0, 1),
		timeline.FromTo(&h.ui.CTAY, parameter.HeroRevealOffsetY, 0),
	)

	if onHeadline != nil {
		tl.Call(timeline.At(parameter.HeroHeadlineAt), onHeadline)
	}
	return tl
}

// frame advances timeline, integrator and canvas once, then re-requests itself
func (h *Hero) frame(time.Time) {
	if h.tornDown {
		return
	}
	h.driver.Tick()
	h.field.Step(h.ctrl)
	h.field.Draw(h.canvas)
	h.frames++
	h.frameID = h.sched.Request(h.frame)
}

// Teardown cancels the pending frame and reverts every timeline-touched
// property; safe to call repeatedly and on a static hero
func (h *Hero) Teardown() {
	if h.tornDown {
		return
	}
	h.tornDown = true
	if h.frameID != 0 {
		h.sched.Cancel(h.frameID)
		h.frameID = 0
	}
	if h.tl != nil {
		h.tl.Revert()
	}
	h.log.Debug("hero torn down", zap.Uint64("frames", h.frames))
}

// UI returns the current presentation state
func (h *Hero) UI() UI {
	return h.ui
}

// Control returns the current control signal
func (h *Hero) Control() particle.Control {
	return h.ctrl
}

// Field returns the particle field; nil for a static hero
func (h *Hero) Field() *particle.Field {
	return h.field
}

// Animated reports whether the capability gate allowed animation
func (h *Hero) Animated() bool {
	return h.animated
}

// Settled reports whether the script has finished playing
func (h *Hero) Settled() bool {
	return !h.animated || h.tl.Done()
}

// TimelineTime returns the playhead in seconds
func (h *Hero) TimelineTime() float64 {
	if h.tl == nil {
		return 0
	}
	return h.tl.Time()
}

// Frames returns the number of frames rendered
func (h *Hero) Frames() uint64 {
	return h.frames
}

// TornDown reports whether Teardown ran
func (h *Hero) TornDown() bool {
	return h.tornDown
}
