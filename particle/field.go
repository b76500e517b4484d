// Package particle implements the hero particle field: a fixed set of point
// particles scattered over a canvas that converge onto glyph samples under an
// externally driven control signal.
package particle

import (
	"math/rand/v2"

	"github.com/lixenwraith/hero-field/core"
	"github.com/lixenwraith/hero-field/parameter"
	"github.com/lixenwraith/hero-field/parameter/visual"
	"github.com/lixenwraith/hero-field/physics"
	"github.com/lixenwraith/hero-field/vmath"
)

// Control is the signal driving force integration
// Written only by the orchestrating timeline, read only by Step
type Control struct {
	Attraction float64 // 0 = no pull toward target, 1 = full pull
	Chaos      float64 // 0 = no push away from origin, 1 = full push
}

// Particle is one simulated point
type Particle struct {
	physics.Kinetic
	Origin vmath.Vec2
	Target vmath.Vec2
	Radius float64
	Color  core.Color
	// Text is set when the particle was assigned a glyph sample
	Text bool
}

// Surface receives the rendered field
type Surface interface {
	Clear()
	FillDisc(x, y, r float64, c core.Color)
}

// Field owns a fixed-size particle set
type Field struct {
	particles []Particle
	width     float64
	height    float64
}

// New scatters count particles uniformly over a width x height canvas and assigns
// particle i the sample i mod len(samples); with no samples every target is its origin
func New(count, width, height int, samples []core.Point, rng *rand.Rand) *Field {
	if count < 0 {
		count = 0
	}
	f := &Field{
		particles: make([]Particle, count),
		width:     float64(width),
		height:    float64(height),
	}

	for i := range f.particles {
		origin := vmath.Vec2{X: rng.Float64() * f.width, Y: rng.Float64() * f.height}
		p := &f.particles[i]
		p.Pos = origin
		p.Origin = origin
		p.Target = origin
		p.Vel = vmath.Vec2{
			X: (rng.Float64() - 0.5) * parameter.ParticleInitialSpeedSpan,
			Y: (rng.Float64() - 0.5) * parameter.ParticleInitialSpeedSpan,
		}
		p.Radius = parameter.ParticleRadiusMin + rng.Float64()*parameter.ParticleRadiusSpan
		p.Color = core.Color{
			RGB: visual.RgbParticleNeutral,
			A:   parameter.ParticleAlphaMin + rng.Float64()*parameter.ParticleAlphaSpan,
		}

		if len(samples) > 0 {
			s := samples[i%len(samples)]
			p.Target = vmath.Vec2{X: float64(s.X), Y: float64(s.Y)}
			p.Color = core.Opaque(visual.RgbParticleAccent)
			p.Text = true
		}
	}

	return f
}

// Len returns the fixed particle count
func (f *Field) Len() int {
	return len(f.particles)
}

// Particles exposes the particle slice for inspection; callers must not resize it
func (f *Field) Particles() []Particle {
	return f.particles
}

// Size returns the canvas dimensions the field was scattered over
func (f *Field) Size() (width, height float64) {
	return f.width, f.height
}

// Step advances every particle by one frame under ctrl
func (f *Field) Step(ctrl Control) {
	attract := parameter.ParticleAttractionGain * ctrl.Attraction
	repel := parameter.ParticleChaosGain * ctrl.Chaos

	for i := range f.particles {
		p := &f.particles[i]
		physics.Attract(&p.Kinetic, p.Target, attract)
		physics.Repel(&p.Kinetic, p.Origin, repel)
		physics.Damp(&p.Kinetic, parameter.ParticleDamping)
		physics.Integrate(&p.Kinetic)
	}
}

// Draw clears the surface and renders each particle as a filled disc
func (f *Field) Draw(s Surface) {
	s.Clear()
	for i := range f.particles {
		p := &f.particles[i]
		s.FillDisc(p.Pos.X, p.Pos.Y, p.Radius, p.Color)
	}
}
