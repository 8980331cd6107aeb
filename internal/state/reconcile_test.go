package state

import (
	"context"
	"testing"
	"time"

	"github.com/Demian-Yim/Flow-Up/internal/models"
)

func TestReconcileReplacesLocalState(t *testing.T) {
	s := newTestSession(t, RoleAttendee)
	s.AddParticipant(participant("local", "Local Only"))

	remote := &models.Snapshot{
		Participants: []models.Participant{{ID: "r1", Name: "Remote"}},
		Teams: []models.Team{
			{ID: "t1", Name: "Red", Members: []models.Participant{{ID: "r1", Name: "Remote"}}},
		},
	}
	s.Reconcile(context.Background(), remote)

	snap := s.Snapshot()
	if len(snap.Participants) != 1 || snap.Participants[0].ID != "r1" {
		t.Fatalf("remote snapshot must fully replace local state, got %+v", snap.Participants)
	}
	if s.Loading() {
		t.Fatal("loading flag must be cleared after reconciliation")
	}
}

func TestReconcileDefaultsAbsentFields(t *testing.T) {
	s := newTestSession(t, RoleAttendee)

	s.Reconcile(context.Background(), &models.Snapshot{})

	snap := s.Snapshot()
	if snap.AmbiancePlaylist == nil || snap.AmbiancePlaylist.Mood != "welcome" {
		t.Fatalf("absent playlist must default to the welcome playlist, got %+v", snap.AmbiancePlaylist)
	}
	if snap.WorkshopNotice == nil || snap.WorkshopNotice.Title == "" {
		t.Fatalf("absent notice must default, got %+v", snap.WorkshopNotice)
	}

	// nil snapshot behaves like a missing document
	s.Reconcile(context.Background(), nil)
	if s.Snapshot().AmbiancePlaylist == nil {
		t.Fatal("nil snapshot must reconcile to defaults")
	}
}

func TestReconcileKeepsPresentDocuments(t *testing.T) {
	s := newTestSession(t, RoleAttendee)

	remote := &models.Snapshot{
		AmbiancePlaylist: &models.AmbiancePlaylist{Mood: "party"},
		WorkshopNotice:   &models.WorkshopNotice{Title: "Day 2"},
	}
	s.Reconcile(context.Background(), remote)

	snap := s.Snapshot()
	if snap.AmbiancePlaylist.Mood != "party" {
		t.Fatalf("present playlist must not be defaulted away, got %+v", snap.AmbiancePlaylist)
	}
	if snap.WorkshopNotice.Title != "Day 2" {
		t.Fatalf("present notice must not be defaulted away, got %+v", snap.WorkshopNotice)
	}
}

func TestReconcileTriggersMatchesAgainstIncomingSet(t *testing.T) {
	m := &countingMatcher{}
	s := newTestSession(t, RoleAttendee, WithMatcher(m))

	// local set has one interest; the incoming one has three
	s.AddNetworkingInterest(context.Background(), models.NetworkingInterest{ParticipantID: "local", Name: "L", Interests: "go"})
	if m.callCount() != 0 {
		t.Fatalf("unexpected recompute before threshold: %d", m.callCount())
	}

	remote := &models.Snapshot{
		NetworkingInterests: []models.NetworkingInterest{
			{ParticipantID: "a", Name: "Ana", Interests: "go"},
			{ParticipantID: "b", Name: "Ben", Interests: "rust"},
			{ParticipantID: "c", Name: "Cid", Interests: "music"},
		},
	}
	s.Reconcile(context.Background(), remote)

	if m.callCount() != 1 {
		t.Fatalf("reconcile with >=2 interests must recompute once, got %d", m.callCount())
	}
	if got := len(m.calls[0]); got != 3 {
		t.Fatalf("recompute must see the incoming set (3), got %d", got)
	}

	// below threshold: no recompute
	s.Reconcile(context.Background(), &models.Snapshot{
		NetworkingInterests: []models.NetworkingInterest{{ParticipantID: "a", Name: "Ana", Interests: "go"}},
	})
	if m.callCount() != 1 {
		t.Fatalf("reconcile below threshold must not recompute, got %d", m.callCount())
	}
}

func TestReconcileMarksSchedulerReady(t *testing.T) {
	rec := &writeRecorder{}
	sched := NewScheduler(10*time.Millisecond, rec.write)
	defer sched.Stop()
	s := newTestSession(t, RoleAttendee, WithScheduler(sched))

	// before any remote snapshot: mutations must not reach the store
	s.AddParticipant(participant("p1", "Ana"))
	time.Sleep(40 * time.Millisecond)
	if got := rec.count(); got != 0 {
		t.Fatalf("flush before first remote snapshot, got %d writes", got)
	}

	s.Reconcile(context.Background(), &models.Snapshot{})

	s.AddParticipant(participant("p2", "Ben"))
	waitFor(t, func() bool { return rec.count() >= 1 })
	if got := len(rec.last().Participants); got != 1 {
		t.Fatalf("flushed snapshot must reflect post-reconcile state, got %d participants", got)
	}
}

func TestReconcileDoesNotEnqueueItself(t *testing.T) {
	rec := &writeRecorder{}
	sched := NewScheduler(10*time.Millisecond, rec.write)
	defer sched.Stop()
	s := newTestSession(t, RoleAttendee, WithScheduler(sched))

	s.Reconcile(context.Background(), &models.Snapshot{
		Participants: []models.Participant{{ID: "r1", Name: "Remote"}},
	})
	time.Sleep(40 * time.Millisecond)

	// echoing a reconciled snapshot back to the store would loop forever
	if got := rec.count(); got != 0 {
		t.Fatalf("reconciliation must not write back to the store, got %d writes", got)
	}
}
