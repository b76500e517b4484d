package physics

import (
	"github.com/lixenwraith/hero-field/vmath"
)

// Kinetic holds sub-pixel position and per-frame velocity
type Kinetic struct {
	Pos vmath.Vec2
	Vel vmath.Vec2
}

// Attract adds a pull toward target proportional to the remaining offset: v += (target-p)*gain
func Attract(k *Kinetic, target vmath.Vec2, gain float64) {
	if gain == 0 {
		return
	}
	k.Vel = vmath.V2Add(k.Vel, vmath.V2Scale(vmath.V2Sub(target, k.Pos), gain))
}

// Repel pushes away from anchor with constant magnitude gain along the unit direction
// No-op when the particle sits exactly on the anchor
func Repel(k *Kinetic, anchor vmath.Vec2, gain float64) {
	if gain == 0 {
		return
	}
	toAnchor := vmath.V2Sub(anchor, k.Pos)
	if vmath.V2MagSq(toAnchor) == 0 {
		return
	}
	k.Vel = vmath.V2Sub(k.Vel, vmath.V2Scale(vmath.V2Normalize(toAnchor), gain))
}

// Damp scales velocity by factor (friction)
func Damp(k *Kinetic, factor float64) {
	k.Vel = vmath.V2Scale(k.Vel, factor)
}

// Integrate advances position by one step of velocity
func Integrate(k *Kinetic) {
	k.Pos = vmath.V2Add(k.Pos, k.Vel)
}
