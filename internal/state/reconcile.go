package state

import (
	"context"

	"github.com/Demian-Yim/Flow-Up/internal/models"
)

// Reconcile replaces local state with an incoming remote snapshot. The
// remote document is authoritative once received (last-writer-wins): this is
// a full replacement, not a field-level merge. Absent optional fields default
// to the canned playlist and notice. When the incoming interest set has at
// least two entries the match map is recomputed against the incoming set,
// never the pre-update local one; matches are device-local derived state so
// this cannot echo a write back to the store.
func (s *Session) Reconcile(ctx context.Context, snap *models.Snapshot) {
	if snap == nil {
		snap = models.DefaultSnapshot()
	}

	s.mu.Lock()
	s.loading = true
	next := snap.Clone()
	if next.AmbiancePlaylist == nil {
		next.AmbiancePlaylist = models.DefaultPlaylist()
	}
	if next.WorkshopNotice == nil {
		next.WorkshopNotice = models.DefaultNotice()
	}
	s.snap = next
	interests := append([]models.NetworkingInterest(nil), next.NetworkingInterests...)
	s.mu.Unlock()

	if len(interests) >= 2 {
		s.recomputeMatches(ctx, interests)
	}

	s.mu.Lock()
	s.loading = false
	clone := s.snap.Clone()
	s.mu.Unlock()

	// The remote document has been received at least once, so flushing our
	// own snapshots can no longer clobber it with boot-time empty state.
	if s.sched != nil {
		s.sched.MarkReady()
	}
	if s.onChange != nil {
		s.onChange(clone)
	}
}
