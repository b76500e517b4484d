package parameter

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 48000

	// AudioBufferDuration determines playback latency
	AudioBufferDuration = 100 * time.Millisecond
)

// Headline Chime
// Soft bell: a fundamental with two quieter upper partials, short attack, long release
const (
	ChimeDuration = 1200 * time.Millisecond
	ChimeAttack   = 8 * time.Millisecond
	ChimeRelease  = 1000 * time.Millisecond

	// ChimeFundamental is E5
	ChimeFundamental = 659.25

	// ChimeVolume is the master gain applied to the mixed partials (0-1)
	ChimeVolume = 0.35
)

// ChimePartials are frequency ratios and relative gains over the fundamental
var ChimePartials = [...]struct{ Ratio, Gain float64 }{
	{1.0, 1.0},
	{2.0, 0.35},
	{3.01, 0.12},
}
