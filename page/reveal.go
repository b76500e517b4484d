package page

import (
	"github.com/lixenwraith/hero-field/engine"
	"github.com/lixenwraith/hero-field/timeline"
)

// Element is one revealed block: opacity and a downward offset in pixels
type Element struct {
	Opacity float64
	Y       float64
}

// reveal is a timeline that plays once, in real time, from the first Trigger
type reveal struct {
	tl     *timeline.Timeline
	clock  engine.Clock
	driver *timeline.TimeDriver
}

func newReveal(tl *timeline.Timeline, clock engine.Clock) *reveal {
	return &reveal{tl: tl, clock: clock}
}

// Trigger starts playback; later calls are no-ops
func (r *reveal) Trigger() {
	if r.driver == nil && !r.tl.Reverted() {
		r.driver = timeline.NewTimeDriver(r.tl, r.clock, 0)
	}
}

func (r *reveal) Triggered() bool {
	return r.driver != nil
}

// Tick reports whether playback is still running
func (r *reveal) Tick() bool {
	if r.driver == nil {
		return false
	}
	return !r.driver.Tick()
}

func (r *reveal) Teardown() {
	r.tl.Revert()
}
