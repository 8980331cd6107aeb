package state

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/Demian-Yim/Flow-Up/internal/models"
)

type writeRecorder struct {
	mu    sync.Mutex
	snaps []*models.Snapshot
}

func (w *writeRecorder) write(_ context.Context, snap *models.Snapshot) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.snaps = append(w.snaps, snap)
	return nil
}

func (w *writeRecorder) count() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.snaps)
}

func (w *writeRecorder) last() *models.Snapshot {
	w.mu.Lock()
	defer w.mu.Unlock()
	if len(w.snaps) == 0 {
		return nil
	}
	return w.snaps[len(w.snaps)-1]
}

func snapWithParticipants(n int) *models.Snapshot {
	snap := &models.Snapshot{}
	for i := 0; i < n; i++ {
		snap.Participants = append(snap.Participants, models.Participant{ID: string(rune('a' + i))})
	}
	return snap
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition not reached in time")
}

func TestSchedulerCoalescesBurst(t *testing.T) {
	rec := &writeRecorder{}
	sched := NewScheduler(30*time.Millisecond, rec.write)
	defer sched.Stop()
	sched.MarkReady()

	// burst of mutations inside one window
	sched.Enqueue(snapWithParticipants(1))
	sched.Enqueue(snapWithParticipants(2))
	sched.Enqueue(snapWithParticipants(3))

	waitFor(t, func() bool { return rec.count() >= 1 })
	time.Sleep(60 * time.Millisecond) // confirm nothing else fires

	if got := rec.count(); got != 1 {
		t.Fatalf("burst must coalesce into one write, got %d", got)
	}
	if got := len(rec.last().Participants); got != 3 {
		t.Fatalf("only the latest snapshot must be written, got %d participants", got)
	}
}

func TestSchedulerTimerRestartsOnEnqueue(t *testing.T) {
	rec := &writeRecorder{}
	sched := NewScheduler(50*time.Millisecond, rec.write)
	defer sched.Stop()
	sched.MarkReady()

	sched.Enqueue(snapWithParticipants(1))
	time.Sleep(30 * time.Millisecond)
	sched.Enqueue(snapWithParticipants(2))
	time.Sleep(30 * time.Millisecond)

	// 60ms elapsed but the timer restarted at 30ms, so nothing fired yet
	if got := rec.count(); got != 0 {
		t.Fatalf("write fired before quiescence window elapsed (%d writes)", got)
	}

	waitFor(t, func() bool { return rec.count() == 1 })
	if got := len(rec.last().Participants); got != 2 {
		t.Fatalf("latest snapshot must win, got %d participants", got)
	}
}

func TestSchedulerHoldsWritesUntilReady(t *testing.T) {
	rec := &writeRecorder{}
	sched := NewScheduler(10*time.Millisecond, rec.write)
	defer sched.Stop()

	// boot-time local state must never overwrite the remote document
	sched.Enqueue(snapWithParticipants(1))
	time.Sleep(40 * time.Millisecond)
	if got := rec.count(); got != 0 {
		t.Fatalf("write before first remote snapshot, got %d", got)
	}

	sched.MarkReady()
	sched.Enqueue(snapWithParticipants(2))
	waitFor(t, func() bool { return rec.count() == 1 })
}

func TestSchedulerFlushWritesPendingImmediately(t *testing.T) {
	rec := &writeRecorder{}
	sched := NewScheduler(time.Hour, rec.write)
	sched.MarkReady()

	sched.Enqueue(snapWithParticipants(2))
	sched.Flush()

	if got := rec.count(); got != 1 {
		t.Fatalf("flush must write the pending snapshot, got %d writes", got)
	}
	// no pending left, a second flush is a no-op
	sched.Flush()
	if got := rec.count(); got != 1 {
		t.Fatalf("flush without pending must be a no-op, got %d writes", got)
	}
}

func TestSchedulerStopRejectsEnqueue(t *testing.T) {
	rec := &writeRecorder{}
	sched := NewScheduler(10*time.Millisecond, rec.write)
	sched.MarkReady()
	sched.Stop()

	sched.Enqueue(snapWithParticipants(1))
	time.Sleep(40 * time.Millisecond)
	if got := rec.count(); got != 0 {
		t.Fatalf("stopped scheduler must not write, got %d", got)
	}
}
