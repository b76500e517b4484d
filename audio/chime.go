package audio

import (
	"fmt"
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/lixenwraith/hero-field/parameter"
)

// envelope applies linear attack/release shaping to a finite stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
}

// NewEnvelope shapes s over duration; the stream ends after duration
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	return &envelope{
		streamer:       beep.Take(total, s),
		attackSamples:  min(rate.N(attack), total),
		releaseSamples: min(rate.N(release), total),
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		g := e.gain(e.position)
		samples[i][0] *= g
		samples[i][1] *= g
		e.position++
	}
	return n, ok
}

func (e *envelope) gain(pos int) float64 {
	g := 1.0
	if e.attackSamples > 0 && pos < e.attackSamples {
		g = float64(pos) / float64(e.attackSamples)
	}
	if releaseStart := e.totalSamples - e.releaseSamples; e.releaseSamples > 0 && pos >= releaseStart {
		g = math.Min(g, float64(e.totalSamples-pos)/float64(e.releaseSamples))
	}
	return math.Max(g, 0)
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume converts a linear gain to beep's log2 volume; zero gain is silent
func newVolume(s beep.Streamer, gain float64) beep.Streamer {
	if gain <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(gain)}
}

// NewChime builds the headline chime at rate, scaled by gain
// Partials are normalized so the mixed peak never exceeds gain
func NewChime(rate beep.SampleRate, gain float64) (beep.Streamer, error) {
	var sum float64
	for _, p := range parameter.ChimePartials {
		sum += p.Gain
	}

	parts := make([]beep.Streamer, 0, len(parameter.ChimePartials))
	for _, p := range parameter.ChimePartials {
		tone, err := generators.SineTone(rate, parameter.ChimeFundamental*p.Ratio)
		if err != nil {
			return nil, fmt.Errorf("chime partial %.2f: %w", p.Ratio, err)
		}
		shaped := NewEnvelope(tone, parameter.ChimeDuration, parameter.ChimeAttack, parameter.ChimeRelease, rate)
		parts = append(parts, newVolume(shaped, p.Gain/sum))
	}
	return newVolume(beep.Mix(parts...), gain), nil
}
