package store

import (
	"context"
	"sync"

	"github.com/Demian-Yim/Flow-Up/internal/models"
)

// Memory is an in-process document store. It backs tests and single-node
// deployments running without a database (degraded mode).
type Memory struct {
	mu     sync.Mutex
	docs   map[string]*models.Snapshot
	subs   map[string]map[int]func(*models.Snapshot)
	nextID int
}

func NewMemory() *Memory {
	return &Memory{
		docs: make(map[string]*models.Snapshot),
		subs: make(map[string]map[int]func(*models.Snapshot)),
	}
}

func (m *Memory) Write(ctx context.Context, workshopID string, snap *models.Snapshot) error {
	m.mu.Lock()
	m.docs[workshopID] = snap.Clone()
	var fns []func(*models.Snapshot)
	for _, fn := range m.subs[workshopID] {
		fns = append(fns, fn)
	}
	m.mu.Unlock()

	for _, fn := range fns {
		fn(snap.Clone())
	}
	return nil
}

func (m *Memory) Subscribe(ctx context.Context, workshopID string, fn func(*models.Snapshot)) (func(), error) {
	m.mu.Lock()
	doc, ok := m.docs[workshopID]
	if !ok {
		doc = models.DefaultSnapshot()
		m.docs[workshopID] = doc
	}
	if m.subs[workshopID] == nil {
		m.subs[workshopID] = make(map[int]func(*models.Snapshot))
	}
	id := m.nextID
	m.nextID++
	m.subs[workshopID][id] = fn
	current := doc.Clone()
	m.mu.Unlock()

	fn(current)

	return func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		delete(m.subs[workshopID], id)
	}, nil
}
