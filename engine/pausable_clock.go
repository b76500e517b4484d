package engine

import (
	"sync"
	"time"
)

// PausableClock derives animation time from a base clock, freezing while paused
// Timelines driven through it hold their position across a pause
type PausableClock struct {
	mu sync.RWMutex

	base  Clock
	epoch time.Time // base time at construction

	paused          bool
	pauseStart      time.Time     // base time when the current pause began
	totalPausedTime time.Duration // cumulative completed pauses
}

// NewPausableClock wraps base; a nil base uses the system clock
func NewPausableClock(base Clock) *PausableClock {
	if base == nil {
		base = NewTimeProvider()
	}
	return &PausableClock{
		base:  base,
		epoch: base.Now(),
	}
}

// Now returns animation time: base elapsed minus paused time
func (pc *PausableClock) Now() time.Time {
	pc.mu.RLock()
	defer pc.mu.RUnlock()

	if pc.paused {
		return pc.epoch.Add(pc.pauseStart.Sub(pc.epoch) - pc.totalPausedTime)
	}
	return pc.epoch.Add(pc.base.Now().Sub(pc.epoch) - pc.totalPausedTime)
}

// RealTime returns the base clock time, unaffected by pause
func (pc *PausableClock) RealTime() time.Time {
	return pc.base.Now()
}

// Pause freezes animation time; repeated calls are no-ops
func (pc *PausableClock) Pause() {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	if pc.paused {
		return
	}
	pc.paused = true
	pc.pauseStart = pc.base.Now()
}

// Resume continues animation time; repeated calls are no-ops
func (pc *PausableClock) Resume() {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	if !pc.paused {
		return
	}
	pc.paused = false
	pc.totalPausedTime += pc.base.Now().Sub(pc.pauseStart)
	pc.pauseStart = time.Time{}
}

// Toggle flips the pause state and reports whether the clock is now paused
func (pc *PausableClock) Toggle() bool {
	if pc.IsPaused() {
		pc.Resume()
		return false
	}
	pc.Pause()
	return true
}

// IsPaused returns current pause state
func (pc *PausableClock) IsPaused() bool {
	pc.mu.RLock()
	defer pc.mu.RUnlock()
	return pc.paused
}

// TotalPauseDuration returns cumulative pause time including an active pause
func (pc *PausableClock) TotalPauseDuration() time.Duration {
	pc.mu.RLock()
	defer pc.mu.RUnlock()

	total := pc.totalPausedTime
	if pc.paused {
		total += pc.base.Now().Sub(pc.pauseStart)
	}
	return total
}
