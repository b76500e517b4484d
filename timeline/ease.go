package timeline

import (
	"math"
	"strings"
)

// Ease maps linear progress in [0,1] to eased progress with Ease(0)=0 and Ease(1)=1
type Ease func(p float64) float64

// DefaultEase is used when neither a tween nor the timeline defaults name one
const DefaultEase = "power1.out"

// Linear is the identity ease
func Linear(p float64) float64 { return p }

// powerIn returns p^(n+1); power1 is quadratic, power4 quintic
func powerIn(n int) Ease {
	exp := float64(n + 1)
	return func(p float64) float64 { return math.Pow(p, exp) }
}

func expoIn(p float64) float64 {
	if p <= 0 {
		return 0
	}
	return math.Pow(2, 10*(p-1))
}

func sineIn(p float64) float64 {
	if p >= 1 {
		return 1
	}
	return 1 - math.Cos(p*math.Pi/2)
}

func circIn(p float64) float64 {
	return 1 - math.Sqrt(1-p*p)
}

// out mirrors an in-curve
func out(in Ease) Ease {
	return func(p float64) float64 { return 1 - in(1-p) }
}

// inOut runs in for the first half and out for the second
func inOut(in Ease) Ease {
	return func(p float64) float64 {
		if p < 0.5 {
			return in(p*2) / 2
		}
		return 1 - in((1-p)*2)/2
	}
}

var families = map[string]Ease{
	"power1": powerIn(1),
	"quad":   powerIn(1),
	"power2": powerIn(2),
	"cubic":  powerIn(2),
	"power3": powerIn(3),
	"quart":  powerIn(3),
	"power4": powerIn(4),
	"quint":  powerIn(4),
	"expo":   expoIn,
	"sine":   sineIn,
	"circ":   circIn,
}

// ParseEase resolves names such as "power3.inOut", "expo.out" or "none"
// A family without a direction is an out-ease; unknown names report ok=false
// and return the default ease
func ParseEase(name string) (ease Ease, ok bool) {
	name = strings.TrimSpace(name)
	switch name {
	case "none", "linear", "power0", "power0.in", "power0.out", "power0.inOut":
		return Linear, true
	}

	family, dir, _ := strings.Cut(name, ".")
	in, found := families[family]
	if !found {
		return defaultEase, false
	}
	switch dir {
	case "in":
		return in, true
	case "", "out":
		return out(in), true
	case "inOut":
		return inOut(in), true
	default:
		return defaultEase, false
	}
}

var defaultEase = out(powerIn(1))
