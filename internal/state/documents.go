package state

import "github.com/Demian-Yim/Flow-Up/internal/models"

// UpdateNotice replaces the workshop notice (single current value).
func (s *Session) UpdateNotice(notice models.WorkshopNotice) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap.WorkshopNotice = &notice
	s.changed()
}

// UpdatePlaylist replaces the ambiance playlist (single current value).
func (s *Session) UpdatePlaylist(pl models.AmbiancePlaylist) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap.AmbiancePlaylist = &pl
	s.changed()
}

// UpdateSummary replaces the workshop wrap-up summary (single current value).
func (s *Session) UpdateSummary(sum models.WorkshopSummary) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap.WorkshopSummary = &sum
	s.changed()
}
