// Package timeline sequences property tweens on a shared playhead.
// Entries are placed with GSAP-style position strings and rendered by seeking;
// a driver decides where the playhead goes (elapsed time or scroll progress).
package timeline

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/lixenwraith/hero-field/vmath"
)

// DefaultDuration is the tween length in seconds when none is given
const DefaultDuration = 0.5

// Vars configures one tween or stagger group
type Vars struct {
	// Duration in seconds; zero uses the timeline default
	Duration float64
	// Ease name such as "power2.out"; empty uses the timeline default
	Ease string
	// Stagger is the start offset between consecutive targets of a Stagger group
	Stagger float64
}

type tween struct {
	start  float64
	dur    float64
	ease   Ease
	tracks []Track
}

func (tw *tween) end() float64 {
	return tw.start + tw.dur
}

func (tw *tween) render(t float64) {
	p := 1.0
	switch {
	case tw.dur > 0:
		p = vmath.Clamp((t-tw.start)/tw.dur, 0, 1)
	case t < tw.start:
		p = 0
	}
	e := tw.ease(p)
	for _, tr := range tw.tracks {
		tr.render(e)
	}
}

type callback struct {
	at    float64
	fn    func()
	fired bool
}

// Timeline holds tweens, labels and callbacks on one playhead
type Timeline struct {
	defaults Vars
	ease     Ease

	tweens []*tween // insertion order
	order  []*tween // start-time order, rebuilt lazily
	sorted bool
	calls  []*callback
	labels map[string]float64

	prevStart float64
	prevEnd   float64
	duration  float64

	time     float64
	reverted bool
	err      error
}

// New creates an empty timeline with tween defaults
func New(defaults Vars) *Timeline {
	if defaults.Duration <= 0 {
		defaults.Duration = DefaultDuration
	}
	if defaults.Ease == "" {
		defaults.Ease = DefaultEase
	}
	tl := &Timeline{
		defaults: defaults,
		labels:   make(map[string]float64),
	}
	tl.ease = tl.parseEase(defaults.Ease)
	return tl
}

// At formats an absolute position in seconds
func At(seconds float64) string {
	return strconv.FormatFloat(seconds, 'f', -1, 64)
}

// Add places one tween of tracks at pos
//
// Position forms: "" (timeline end), "1.5" (absolute), "+=1" / "-=0.5" (relative
// to the end), "<" / ">" (start / end of the previous entry, optionally followed
// by an offset such as "<0.2" or ">-=1"), "label" and "label+=2".
func (tl *Timeline) Add(pos string, vars Vars, tracks ...Track) *Timeline {
	start := tl.resolve(pos)
	tw := tl.newTween(start, vars, tracks)
	tl.prevStart, tl.prevEnd = start, tw.end()
	return tl
}

// Stagger places n tweens built by each(i), starting vars.Stagger seconds apart
// The group counts as one entry for "<" and ">" positions
func (tl *Timeline) Stagger(pos string, vars Vars, n int, each func(i int) []Track) *Timeline {
	start := tl.resolve(pos)
	end := start
	for i := 0; i < n; i++ {
		tw := tl.newTween(start+float64(i)*vars.Stagger, vars, each(i))
		end = max(end, tw.end())
	}
	tl.prevStart, tl.prevEnd = start, end
	return tl
}

// AddLabel names a position for later entries
func (tl *Timeline) AddLabel(name, pos string) *Timeline {
	tl.labels[name] = tl.resolve(pos)
	return tl
}

// Label returns a label's time
func (tl *Timeline) Label(name string) (float64, bool) {
	t, ok := tl.labels[name]
	return t, ok
}

// Call runs fn when the playhead moves forward across pos
// Seeking back before pos re-arms it
func (tl *Timeline) Call(pos string, fn func()) *Timeline {
	at := tl.resolve(pos)
	tl.calls = append(tl.calls, &callback{at: at, fn: fn})
	tl.duration = max(tl.duration, at)
	return tl
}

func (tl *Timeline) newTween(start float64, vars Vars, tracks []Track) *tween {
	dur := vars.Duration
	if dur <= 0 {
		dur = tl.defaults.Duration
	}
	ease := tl.ease
	if vars.Ease != "" {
		ease = tl.parseEase(vars.Ease)
	}

	tw := &tween{start: start, dur: dur, ease: ease, tracks: tracks}
	for _, tr := range tracks {
		tr.snapshot()
		tr.immediate()
	}
	tl.tweens = append(tl.tweens, tw)
	tl.sorted = false
	tl.duration = max(tl.duration, tw.end())
	return tw
}

func (tl *Timeline) parseEase(name string) Ease {
	e, ok := ParseEase(name)
	if !ok {
		tl.fail(fmt.Errorf("unknown ease %q", name))
	}
	return e
}

func (tl *Timeline) fail(err error) {
	if tl.err == nil {
		tl.err = err
	}
}

// Err returns the first build error (bad position or ease); the offending entry
// was still placed, at the timeline end or with the default ease
func (tl *Timeline) Err() error {
	return tl.err
}

func (tl *Timeline) resolve(pos string) float64 {
	pos = strings.TrimSpace(pos)
	if pos == "" {
		return tl.duration
	}

	var base float64
	rest := pos
	switch {
	case pos[0] == '<':
		base, rest = tl.prevStart, pos[1:]
	case pos[0] == '>':
		base, rest = tl.prevEnd, pos[1:]
	case strings.HasPrefix(pos, "+=") || strings.HasPrefix(pos, "-="):
		base = tl.duration
	default:
		if v, err := strconv.ParseFloat(pos, 64); err == nil {
			return max(v, 0)
		}
		name := pos
		if i := strings.Index(pos, "+="); i > 0 {
			name, rest = pos[:i], pos[i:]
		} else if i := strings.Index(pos, "-="); i > 0 {
			name, rest = pos[:i], pos[i:]
		} else {
			rest = ""
		}
		t, ok := tl.labels[name]
		if !ok {
			// unknown labels are created at the end
			t = tl.duration
			tl.labels[name] = t
		}
		base = t
	}

	offset, err := parseOffset(rest)
	if err != nil {
		tl.fail(fmt.Errorf("position %q: %w", pos, err))
		return tl.duration
	}
	return max(base+offset, 0)
}

// parseOffset reads "", "+=x", "-=x" or a bare signed number
func parseOffset(s string) (float64, error) {
	sign := 1.0
	switch {
	case s == "":
		return 0, nil
	case strings.HasPrefix(s, "+="):
		s = s[2:]
	case strings.HasPrefix(s, "-="):
		s, sign = s[2:], -1
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	return sign * v, nil
}

// Duration returns the end of the last entry in seconds
func (tl *Timeline) Duration() float64 {
	return tl.duration
}

// Time returns the playhead position in seconds
func (tl *Timeline) Time() float64 {
	return tl.time
}

// Progress returns the playhead as a fraction of the duration
func (tl *Timeline) Progress() float64 {
	if tl.duration <= 0 {
		return 1
	}
	return tl.time / tl.duration
}

// SetProgress seeks to a fraction of the duration
func (tl *Timeline) SetProgress(p float64) {
	tl.Seek(vmath.Clamp(p, 0, 1) * tl.duration)
}

// Done reports whether the playhead reached the end
func (tl *Timeline) Done() bool {
	return tl.time >= tl.duration
}

// Seek moves the playhead to t (clamped to the duration) and renders every
// tween whose span intersects the travelled range; forward in start order,
// backward in reverse so chained tweens on one property resolve correctly
// No-op after Revert
func (tl *Timeline) Seek(t float64) {
	if tl.reverted {
		return
	}
	t = vmath.Clamp(t, 0, tl.duration)
	old := tl.time
	order := tl.ordered()

	if t >= old {
		for _, tw := range order {
			if tw.end() >= old && tw.start <= t {
				tw.render(t)
			}
		}
		tl.time = t
		for _, c := range tl.calls {
			if !c.fired && c.at <= t {
				c.fired = true
				c.fn()
			}
		}
		return
	}

	for i := len(order) - 1; i >= 0; i-- {
		tw := order[i]
		if tw.end() >= t && tw.start <= old {
			tw.render(t)
		}
	}
	tl.time = t
	for _, c := range tl.calls {
		if c.at > t {
			c.fired = false
		}
	}
}

func (tl *Timeline) ordered() []*tween {
	if !tl.sorted {
		tl.order = slices.Clone(tl.tweens)
		slices.SortStableFunc(tl.order, func(a, b *tween) int {
			switch {
			case a.start < b.start:
				return -1
			case a.start > b.start:
				return 1
			}
			return 0
		})
		tl.sorted = true
	}
	return tl.order
}

// Revert restores every touched property to its value before the timeline
// was built and freezes the timeline; safe to call repeatedly
func (tl *Timeline) Revert() {
	if tl.reverted {
		return
	}
	tl.reverted = true
	for i := len(tl.tweens) - 1; i >= 0; i-- {
		tracks := tl.tweens[i].tracks
		for j := len(tracks) - 1; j >= 0; j-- {
			tracks[j].restore()
		}
	}
}

// Reverted reports whether Revert ran
func (tl *Timeline) Reverted() bool {
	return tl.reverted
}
