package particle

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/hero-field/core"
	"github.com/lixenwraith/hero-field/parameter/visual"
	"github.com/lixenwraith/hero-field/vmath"
)

func seeded() *rand.Rand {
	return rand.New(rand.NewPCG(7, 11))
}

// recordingSurface counts discs and remembers the last frame
type recordingSurface struct {
	clears int
	discs  []vmath.Vec2
}

func (s *recordingSurface) Clear() {
	s.clears++
	s.discs = s.discs[:0]
}

func (s *recordingSurface) FillDisc(x, y, r float64, c core.Color) {
	s.discs = append(s.discs, vmath.Vec2{X: x, Y: y})
}

func TestNewParticleCount(t *testing.T) {
	samples := []core.Point{{X: 1, Y: 1}, {X: 2, Y: 2}, {X: 3, Y: 3}}
	for _, n := range []int{0, 1, 2, 3, 7, 500} {
		f := New(n, 800, 200, samples, seeded())
		require.Equal(t, n, f.Len(), "count %d", n)
		for i, p := range f.Particles() {
			assert.True(t, p.Text, "particle %d should be text-forming", i)
			want := samples[i%len(samples)]
			assert.Equal(t, vmath.Vec2{X: float64(want.X), Y: float64(want.Y)}, p.Target)
			assert.Equal(t, core.Opaque(visual.RgbParticleAccent), p.Color)
			assert.Equal(t, p.Origin, p.Pos)
		}
	}

	assert.Equal(t, 0, New(-5, 800, 200, samples, seeded()).Len())
}

func TestNewScatterBounds(t *testing.T) {
	f := New(1000, 320, 120, nil, seeded())
	for i, p := range f.Particles() {
		assert.GreaterOrEqual(t, p.Origin.X, 0.0, "particle %d", i)
		assert.Less(t, p.Origin.X, 320.0, "particle %d", i)
		assert.GreaterOrEqual(t, p.Origin.Y, 0.0, "particle %d", i)
		assert.Less(t, p.Origin.Y, 120.0, "particle %d", i)
		assert.GreaterOrEqual(t, p.Radius, 0.5)
		assert.Less(t, p.Radius, 2.0)
		assert.LessOrEqual(t, math.Abs(p.Vel.X), 0.25)
		assert.LessOrEqual(t, math.Abs(p.Vel.Y), 0.25)
	}
}

func TestNoSamplesTargetsOrigin(t *testing.T) {
	f := New(64, 400, 100, nil, seeded())
	for i, p := range f.Particles() {
		assert.Equal(t, p.Origin, p.Target, "particle %d", i)
		assert.False(t, p.Text)
		assert.Equal(t, visual.RgbParticleNeutral, p.Color.RGB)
		assert.GreaterOrEqual(t, p.Color.A, 0.2)
		assert.Less(t, p.Color.A, 0.7)
	}

	// full attraction with identity targets settles back on the origin
	for i := 0; i < 2000; i++ {
		f.Step(Control{Attraction: 1})
	}
	for i, p := range f.Particles() {
		assert.InDelta(t, 0, vmath.V2Dist(p.Pos, p.Origin), 1e-3, "particle %d", i)
	}
}

func TestConvergesUnderFullAttraction(t *testing.T) {
	samples := []core.Point{{X: 100, Y: 50}, {X: 400, Y: 20}, {X: 700, Y: 180}, {X: 10, Y: 190}}
	f := New(200, 800, 200, samples, seeded())

	const window = 100
	const windows = 20
	prevMax := make([]float64, f.Len())

	for w := 0; w < windows; w++ {
		curMax := make([]float64, f.Len())
		for s := 0; s < window; s++ {
			f.Step(Control{Attraction: 1, Chaos: 0})
			for i, p := range f.Particles() {
				curMax[i] = math.Max(curMax[i], vmath.V2Dist(p.Pos, p.Target))
			}
		}
		if w > 0 {
			for i := range curMax {
				if curMax[i] > prevMax[i]+1e-9 {
					t.Fatalf("window %d: particle %d envelope grew %.6f -> %.6f", w, i, prevMax[i], curMax[i])
				}
			}
		}
		prevMax = curMax
	}

	for i, p := range f.Particles() {
		assert.Less(t, vmath.V2Dist(p.Pos, p.Target), 0.01, "particle %d did not converge", i)
	}
}

func TestChaosDispersesWithBoundedVelocity(t *testing.T) {
	f := New(50, 800, 200, []core.Point{{X: 400, Y: 100}}, seeded())

	for step := 0; step < 10000; step++ {
		f.Step(Control{Attraction: 0, Chaos: 1})
		for i, p := range f.Particles() {
			speed := vmath.V2Mag(p.Vel)
			if math.IsNaN(speed) || speed > 2.0 {
				t.Fatalf("step %d particle %d: speed %v out of bounds", step, i, speed)
			}
		}
	}

	for i, p := range f.Particles() {
		assert.Greater(t, vmath.V2Dist(p.Pos, p.Origin), 1000.0, "particle %d should drift away from origin", i)
	}
}

func TestDrawRendersEveryParticle(t *testing.T) {
	f := New(25, 100, 100, nil, seeded())
	s := &recordingSurface{}

	f.Draw(s)
	f.Step(Control{Chaos: 1})
	f.Draw(s)

	assert.Equal(t, 2, s.clears)
	require.Len(t, s.discs, 25)
	for i, p := range f.Particles() {
		assert.Equal(t, p.Pos, s.discs[i])
	}
}
