package engine

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/hero-field/core"
	"github.com/lixenwraith/hero-field/parameter"
)

// FrameLoop paces frames on a fixed interval and publishes each frame's clock
// time on a channel. The consumer owns all frame work, so simulation state is
// only touched from its goroutine. A slow consumer coalesces frames instead of
// queueing them.
type FrameLoop struct {
	clock    Clock
	interval time.Duration
	frames   chan time.Time

	frameCount atomic.Uint64

	mu       sync.Mutex
	running  bool
	stopped  bool
	stopChan chan struct{}
	wg       sync.WaitGroup
}

// NewFrameLoop creates a loop at fps frames per second, clamped to [1, MaxFPS]
// Frame timestamps come from clock; a nil clock uses system time
func NewFrameLoop(clock Clock, fps int) *FrameLoop {
	if clock == nil {
		clock = NewTimeProvider()
	}
	fps = max(1, min(fps, parameter.MaxFPS))
	return &FrameLoop{
		clock:    clock,
		interval: time.Second / time.Duration(fps),
		frames:   make(chan time.Time, 1),
		stopChan: make(chan struct{}),
	}
}

// Frames delivers frame timestamps; it is never closed
func (l *FrameLoop) Frames() <-chan time.Time {
	return l.frames
}

// Interval returns the frame period
func (l *FrameLoop) Interval() time.Duration {
	return l.interval
}

// FrameCount returns the number of frames delivered
func (l *FrameLoop) FrameCount() uint64 {
	return l.frameCount.Load()
}

// Start begins pacing; no-op when running or after Stop
func (l *FrameLoop) Start() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.running || l.stopped {
		return
	}
	l.running = true
	l.wg.Add(1)
	core.Go(l.run)
}

// Stop halts the loop and blocks until its goroutine exits
// Safe to call repeatedly and before Start; no frame is published after it returns
func (l *FrameLoop) Stop() {
	l.mu.Lock()
	if !l.stopped {
		l.stopped = true
		close(l.stopChan)
	}
	l.mu.Unlock()
	l.wg.Wait()
}

// Running reports whether the loop goroutine was started and not stopped
func (l *FrameLoop) Running() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.running && !l.stopped
}

func (l *FrameLoop) run() {
	defer l.wg.Done()

	next := time.Now().Add(l.interval)
	timer := time.NewTimer(l.interval)
	defer timer.Stop()

	for {
		select {
		case <-l.stopChan:
			return
		case <-timer.C:
		}

		select {
		case l.frames <- l.clock.Now():
			l.frameCount.Add(1)
		case <-l.stopChan:
			return
		default:
		}

		// Drift correction: keep the cadence, resync when far behind
		now := time.Now()
		next = next.Add(l.interval)
		if now.Sub(next) > l.interval*2 {
			next = now.Add(l.interval)
		}
		timer.Reset(max(next.Sub(now), 0))
	}
}
