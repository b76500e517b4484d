// Package audio plays the synthesized cues of the page through the system speaker.
// Every operation is a no-op until Initialize succeeds, so a machine without an
// audio device runs silently.
package audio

import (
	"fmt"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"go.uber.org/zap"

	"github.com/lixenwraith/hero-field/parameter"
)

const sampleRate = beep.SampleRate(parameter.AudioSampleRate)

// Player owns the speaker and a mixer that cues are added to
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	initialized bool
	played      int
	log         *zap.Logger
}

// NewPlayer creates an uninitialized player
func NewPlayer(log *zap.Logger) *Player {
	if log == nil {
		log = zap.NewNop()
	}
	return &Player{
		mixer:  &beep.Mixer{},
		volume: parameter.ChimeVolume,
		log:    log,
	}
}

// Initialize opens the speaker; a second call is a no-op
func (p *Player) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(parameter.AudioBufferDuration)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}
	speaker.Play(p.mixer)
	p.initialized = true
	p.log.Debug("audio initialized", zap.Int("sample_rate", int(sampleRate)))
	return nil
}

// Enable initializes the speaker and logs a warning instead of failing
// Returns whether sound is available
func (p *Player) Enable() bool {
	if err := p.Initialize(); err != nil {
		p.log.Warn("audio disabled", zap.Error(err))
		return false
	}
	return true
}

// Initialized reports whether the speaker is open
func (p *Player) Initialized() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.initialized
}

// SetVolume sets the linear cue gain, clamped to [0,1]
func (p *Player) SetVolume(v float64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.volume = min(max(v, 0), 1)
}

// PlayChime queues the headline chime
func (p *Player) PlayChime() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	chime, err := NewChime(sampleRate, p.volume)
	if err != nil {
		p.log.Warn("chime synthesis", zap.Error(err))
		return
	}
	speaker.Lock()
	p.mixer.Add(chime)
	speaker.Unlock()
	p.played++
}

// Played returns how many cues were queued
func (p *Player) Played() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.played
}

// Cleanup clears queued cues and closes the speaker
func (p *Player) Cleanup() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	p.mixer = &beep.Mixer{}
	p.initialized = false
}
