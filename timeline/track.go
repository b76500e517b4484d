package timeline

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/hero-field/core"
	"github.com/lixenwraith/hero-field/vmath"
)

// Track animates one property toward a value
// Tracks are bound to a timeline by Add or Stagger and must not be shared
type Track interface {
	// snapshot records the pre-timeline value for Revert
	snapshot()
	// immediate applies the from value of from-style tracks at build time
	immediate()
	// render applies eased progress, capturing the start value on first use
	render(p float64)
	// restore writes the snapshot back
	restore()
}

type mixFunc[T any] func(a, b T, p float64) T

// prop is the generic Track behind every constructor
type prop[T any] struct {
	target *T
	mix    mixFunc[T]

	from, to T
	hasFrom  bool // from fixed at build time (FromTo, From)
	toOrig   bool // to is the pre-timeline value (From)

	orig     T
	start    T
	captured bool
}

func (t *prop[T]) snapshot() {
	t.orig = *t.target
	if t.toOrig {
		t.to = t.orig
	}
}

func (t *prop[T]) immediate() {
	if t.hasFrom {
		*t.target = t.from
	}
}

func (t *prop[T]) render(p float64) {
	if !t.captured {
		t.start = *t.target
		if t.hasFrom {
			t.start = t.from
		}
		t.captured = true
	}
	switch {
	case p <= 0:
		*t.target = t.start
	case p >= 1:
		*t.target = t.to
	default:
		*t.target = t.mix(t.start, t.to, p)
	}
}

func (t *prop[T]) restore() {
	*t.target = t.orig
}

// To tweens *target from its value at first render to v
func To(target *float64, v float64) Track {
	return &prop[float64]{target: target, mix: vmath.Lerp, to: v}
}

// FromTo sets *target to from when added, then tweens it to v
func FromTo(target *float64, from, v float64) Track {
	return &prop[float64]{target: target, mix: vmath.Lerp, from: from, to: v, hasFrom: true}
}

// From sets *target to from when added, then tweens it back to its prior value
func From(target *float64, from float64) Track {
	return &prop[float64]{target: target, mix: vmath.Lerp, from: from, hasFrom: true, toOrig: true}
}

// ColorTo tweens *target to v through CIE-L*a*b* so midpoints keep perceived lightness
func ColorTo(target *core.RGB, v core.RGB) Track {
	return &prop[core.RGB]{target: target, mix: mixLab, to: v}
}

// TextTo types v over *target left to right, replacing the old text as it goes
func TextTo(target *string, v string) Track {
	return &prop[string]{target: target, mix: mixText, to: v}
}

func toColorful(c core.RGB) colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

func mixLab(a, b core.RGB, p float64) core.RGB {
	r, g, bl := toColorful(a).BlendLab(toColorful(b), p).Clamped().RGB255()
	return core.RGB{R: r, G: g, B: bl}
}

func mixText(a, b string, p float64) string {
	oldRunes, newRunes := []rune(a), []rune(b)
	n := int(math.Round(p * float64(max(len(oldRunes), len(newRunes)))))
	head := newRunes[:min(n, len(newRunes))]
	tail := oldRunes[min(n, len(oldRunes)):]
	return string(head) + string(tail)
}
