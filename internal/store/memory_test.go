package store

import (
	"context"
	"sync"
	"testing"

	"github.com/Demian-Yim/Flow-Up/internal/models"
)

type snapCollector struct {
	mu    sync.Mutex
	snaps []*models.Snapshot
}

func (c *snapCollector) collect(snap *models.Snapshot) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.snaps = append(c.snaps, snap)
}

func (c *snapCollector) count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.snaps)
}

func (c *snapCollector) last() *models.Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.snaps) == 0 {
		return nil
	}
	return c.snaps[len(c.snaps)-1]
}

func TestMemorySubscribeSeedsMissingDocument(t *testing.T) {
	m := NewMemory()
	col := &snapCollector{}

	unsub, err := m.Subscribe(context.Background(), "w1", col.collect)
	if err != nil {
		t.Fatalf("Subscribe: %v", err)
	}
	defer unsub()

	if col.count() != 1 {
		t.Fatalf("subscribe must deliver the current document immediately, got %d", col.count())
	}
	seeded := col.last()
	if seeded.AmbiancePlaylist == nil || seeded.WorkshopNotice == nil {
		t.Fatalf("missing document must be seeded with defaults, got %+v", seeded)
	}
}

func TestMemoryWriteNotifiesSubscribers(t *testing.T) {
	m := NewMemory()
	a, b := &snapCollector{}, &snapCollector{}

	unsubA, err := m.Subscribe(context.Background(), "w1", a.collect)
	if err != nil {
		t.Fatalf("Subscribe a: %v", err)
	}
	defer unsubA()
	unsubB, err := m.Subscribe(context.Background(), "w1", b.collect)
	if err != nil {
		t.Fatalf("Subscribe b: %v", err)
	}

	snap := &models.Snapshot{Participants: []models.Participant{{ID: "p1", Name: "Ana"}}}
	if err := m.Write(context.Background(), "w1", snap); err != nil {
		t.Fatalf("Write: %v", err)
	}

	if a.count() != 2 || b.count() != 2 {
		t.Fatalf("both subscribers must see the write, got a=%d b=%d", a.count(), b.count())
	}
	if got := a.last().Participants[0].ID; got != "p1" {
		t.Fatalf("delivered snapshot wrong: %s", got)
	}

	// after unsubscribe, b stops receiving
	unsubB()
	if err := m.Write(context.Background(), "w1", snap); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if a.count() != 3 {
		t.Fatalf("a must keep receiving, got %d", a.count())
	}
	if b.count() != 2 {
		t.Fatalf("b must stop after unsubscribe, got %d", b.count())
	}
}

func TestMemoryWorkshopsAreIsolated(t *testing.T) {
	m := NewMemory()
	col := &snapCollector{}

	unsub, err := m.Subscribe(context.Background(), "w1", col.collect)
	if err != nil {
		t.Fatalf("Subscribe: %v", err)
	}
	defer unsub()

	if err := m.Write(context.Background(), "w2", &models.Snapshot{}); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if col.count() != 1 {
		t.Fatalf("write to another workshop must not be delivered, got %d", col.count())
	}
}

func TestMemoryDeliversClones(t *testing.T) {
	m := NewMemory()
	col := &snapCollector{}

	unsub, err := m.Subscribe(context.Background(), "w1", col.collect)
	if err != nil {
		t.Fatalf("Subscribe: %v", err)
	}
	defer unsub()

	snap := &models.Snapshot{Participants: []models.Participant{{ID: "p1", Name: "Ana"}}}
	if err := m.Write(context.Background(), "w1", snap); err != nil {
		t.Fatalf("Write: %v", err)
	}

	// mutate the delivered copy, then read the document again
	col.last().Participants[0].Name = "Mutated"

	col2 := &snapCollector{}
	unsub2, err := m.Subscribe(context.Background(), "w1", col2.collect)
	if err != nil {
		t.Fatalf("Subscribe: %v", err)
	}
	defer unsub2()
	if got := col2.last().Participants[0].Name; got != "Ana" {
		t.Fatalf("store must hand out clones, document changed to %q", got)
	}
}
