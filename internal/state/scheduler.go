package state

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/Demian-Yim/Flow-Up/internal/models"
)

// DefaultFlushWindow is the quiescence interval after which the latest
// pending snapshot is written to the store.
const DefaultFlushWindow = time.Second

// WriteFunc persists one whole snapshot to the remote store.
type WriteFunc func(ctx context.Context, snap *models.Snapshot) error

// Scheduler decouples low-latency local mutations from remote write volume.
// Every enqueue replaces the pending snapshot and restarts the timer; when
// the timer fires only the latest snapshot is written. A pending flush is
// superseded by the next enqueue, never dropped once the timer has fired.
// Writes are held back until MarkReady: a freshly booted client must not
// overwrite remote state with its empty initial state.
type Scheduler struct {
	mu      sync.Mutex
	write   WriteFunc
	window  time.Duration
	timer   *time.Timer
	pending *models.Snapshot
	ready   bool
	stopped bool
}

func NewScheduler(window time.Duration, write WriteFunc) *Scheduler {
	if window <= 0 {
		window = DefaultFlushWindow
	}
	return &Scheduler{write: write, window: window}
}

// MarkReady opens the write path after the first remote snapshot arrives.
func (s *Scheduler) MarkReady() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ready = true
}

// Enqueue records snap as the latest pending snapshot and restarts the
// debounce timer. Before MarkReady it is a no-op.
func (s *Scheduler) Enqueue(snap *models.Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.ready || s.stopped {
		return
	}
	s.pending = snap
	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(s.window, s.flush)
}

func (s *Scheduler) flush() {
	s.mu.Lock()
	snap := s.pending
	s.pending = nil
	s.timer = nil
	s.mu.Unlock()
	if snap == nil {
		return
	}
	if err := s.write(context.Background(), snap); err != nil {
		// No automatic retry: the next user-triggered mutation's flush is
		// the recovery path.
		log.Printf("scheduler: snapshot write failed: %v", err)
	}
}

// Flush writes any pending snapshot immediately, bypassing the timer. Used
// on shutdown so the last burst of edits is not lost with the process.
func (s *Scheduler) Flush() {
	s.mu.Lock()
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.mu.Unlock()
	s.flush()
}

// Stop cancels any pending timer and rejects further enqueues.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopped = true
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.pending = nil
}
