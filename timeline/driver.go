package timeline

import (
	"math"
	"time"

	"github.com/charmbracelet/harmonica"

	"github.com/lixenwraith/hero-field/vmath"
)

// Clock supplies the time a TimeDriver measures elapsed playback against
type Clock interface {
	Now() time.Time
}

// TimeDriver plays a timeline once in real time after a start delay
type TimeDriver struct {
	tl    *Timeline
	clock Clock
	start time.Time
	delay time.Duration
}

// NewTimeDriver starts the playback clock now; the playhead stays at zero
// until delay has elapsed
func NewTimeDriver(tl *Timeline, clock Clock, delay time.Duration) *TimeDriver {
	return &TimeDriver{tl: tl, clock: clock, start: clock.Now(), delay: delay}
}

// Tick seeks the timeline to the current elapsed time and reports whether
// playback has finished
func (d *TimeDriver) Tick() bool {
	elapsed := d.clock.Now().Sub(d.start) - d.delay
	if elapsed < 0 {
		return false
	}
	d.tl.Seek(elapsed.Seconds())
	return d.tl.Done()
}

// Elapsed returns playback time after the delay, zero before it
func (d *TimeDriver) Elapsed() time.Duration {
	return max(d.clock.Now().Sub(d.start)-d.delay, 0)
}

// ScrollTrigger maps a scroll range onto timeline progress
type ScrollTrigger struct {
	// Start and End are scroll offsets in logical pixels; progress is 0 at
	// Start and 1 at End
	Start, End float64
	// Scrub is the catch-up time in seconds; zero or less seeks directly
	Scrub float64
}

// Progress maps a scroll offset to [0,1]
func (s ScrollTrigger) Progress(scrollY float64) float64 {
	span := s.End - s.Start
	if span <= 0 {
		if scrollY >= s.End {
			return 1
		}
		return 0
	}
	return vmath.Clamp((scrollY-s.Start)/span, 0, 1)
}

const settleEpsilon = 1e-4

// ScrollDriver scrubs a timeline by scroll position, smoothing the playhead
// with a critically damped spring so it trails the scrollbar by about Scrub seconds
type ScrollDriver struct {
	tl      *Timeline
	trigger ScrollTrigger
	spring  harmonica.Spring
	smooth  bool

	target   float64
	progress float64
	velocity float64
}

// NewScrollDriver creates a driver stepped fps times per second
func NewScrollDriver(tl *Timeline, trigger ScrollTrigger, fps int) *ScrollDriver {
	d := &ScrollDriver{tl: tl, trigger: trigger}
	if trigger.Scrub > 0 {
		d.smooth = true
		d.spring = harmonica.NewSpring(harmonica.FPS(max(fps, 1)), 4/trigger.Scrub, 1.0)
	}
	return d
}

// Trigger returns the scroll range
func (d *ScrollDriver) Trigger() ScrollTrigger {
	return d.trigger
}

// SetTrigger replaces the scroll range, e.g. after a resize
func (d *ScrollDriver) SetTrigger(t ScrollTrigger) {
	d.trigger.Start, d.trigger.End = t.Start, t.End
}

// Scroll records the current scroll offset; without scrub it seeks immediately
func (d *ScrollDriver) Scroll(scrollY float64) {
	d.target = d.trigger.Progress(scrollY)
	if !d.smooth {
		d.progress = d.target
		d.tl.SetProgress(d.progress)
	}
}

// Tick advances the smoothing spring one frame and seeks the timeline
// Returns true while the playhead is still catching up
func (d *ScrollDriver) Tick() bool {
	if !d.smooth {
		return false
	}
	if d.Settled() {
		return false
	}
	d.progress, d.velocity = d.spring.Update(d.progress, d.velocity, d.target)
	if math.Abs(d.target-d.progress) < settleEpsilon && math.Abs(d.velocity) < settleEpsilon {
		d.progress, d.velocity = d.target, 0
	}
	d.tl.SetProgress(d.progress)
	return !d.Settled()
}

// Settled reports whether the playhead matches the scroll position
func (d *ScrollDriver) Settled() bool {
	return d.progress == d.target && d.velocity == 0
}

// Progress returns the smoothed playhead fraction
func (d *ScrollDriver) Progress() float64 {
	return d.progress
}
