package engine

import (
	"sync"
	"time"
)

// FrameID identifies a pending frame request; zero is never issued
type FrameID uint64

// FrameFunc runs once on the next frame with that frame's timestamp
type FrameFunc func(now time.Time)

// FrameScheduler queues one-shot per-frame callbacks
// Callbacks requested while a frame runs are deferred to the following frame,
// so a callback that re-requests itself runs exactly once per Tick
type FrameScheduler struct {
	mu      sync.Mutex
	nextID  FrameID
	queue   []FrameID
	pending map[FrameID]FrameFunc
}

// NewFrameScheduler creates an empty scheduler
func NewFrameScheduler() *FrameScheduler {
	return &FrameScheduler{pending: make(map[FrameID]FrameFunc)}
}

// Request queues fn for the next frame and returns its cancel handle
func (s *FrameScheduler) Request(fn FrameFunc) FrameID {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	id := s.nextID
	s.pending[id] = fn
	s.queue = append(s.queue, id)
	return id
}

// Cancel drops a pending request; unknown or already-run ids are ignored
func (s *FrameScheduler) Cancel(id FrameID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.pending, id)
}

// Tick runs every callback queued before this call in request order and returns how many ran
// A callback cancelled by an earlier callback in the same frame does not run
func (s *FrameScheduler) Tick(now time.Time) int {
	s.mu.Lock()
	batch := s.queue
	s.queue = nil
	s.mu.Unlock()

	ran := 0
	for _, id := range batch {
		s.mu.Lock()
		fn, ok := s.pending[id]
		delete(s.pending, id)
		s.mu.Unlock()

		if ok {
			fn(now)
			ran++
		}
	}
	return ran
}

// Pending returns the number of live requests
func (s *FrameScheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending)
}
