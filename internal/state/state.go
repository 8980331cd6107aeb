// Package state holds the shared workshop session state and is its only
// writer. Every mutation applies locally first, then enqueues the full
// snapshot for a debounced flush to the document store; remote snapshots
// arriving from the subscription replace local state wholesale.
package state

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/Demian-Yim/Flow-Up/internal/models"
)

// Role is the acting device's role for this session container.
type Role string

const (
	RoleAttendee Role = "attendee"
	RoleAdmin    Role = "admin"
)

// Matcher recomputes networking matches from the current interest set. It
// must always return a usable result; collaborator failures degrade to a
// heuristic inside the implementation, never to an error surfaced here.
type Matcher interface {
	Matches(ctx context.Context, interests []models.NetworkingInterest) (map[string][]models.NetworkingMatch, error)
}

// MenuProvider produces a full menu replacement for FetchMenu.
type MenuProvider interface {
	Menu(ctx context.Context, query string) (*models.RestaurantInfo, []models.Meal, error)
}

// Session is the reactive local state container. All mutations are
// transactional from the caller's point of view: cascades apply together or
// not at all, and absence of a target entity is always a safe no-op so the
// API stays idempotent under duplicate delivery.
type Session struct {
	mu            sync.Mutex
	snap          *models.Snapshot
	matches       map[string][]models.NetworkingMatch
	role          Role
	currentUserID string
	loading       bool

	matcher  Matcher
	menus    MenuProvider
	sched    *Scheduler
	onChange func(*models.Snapshot)

	now   func() time.Time
	newID func() string
}

// Option configures a Session.
type Option func(*Session)

// WithScheduler attaches the persistence scheduler; without one the session
// is purely local (used by tests and read-only tooling).
func WithScheduler(sched *Scheduler) Option {
	return func(s *Session) { s.sched = sched }
}

// WithMatcher attaches the networking match collaborator.
func WithMatcher(m Matcher) Option {
	return func(s *Session) { s.matcher = m }
}

// WithMenuProvider attaches the menu collaborator used by FetchMenu.
func WithMenuProvider(p MenuProvider) Option {
	return func(s *Session) { s.menus = p }
}

// WithOnChange registers a hook invoked with a snapshot clone after every
// local mutation and every reconciliation. The server uses it to broadcast.
func WithOnChange(fn func(*models.Snapshot)) Option {
	return func(s *Session) { s.onChange = fn }
}

// WithClock overrides time stamping, for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Session) { s.now = now }
}

// WithIDSource overrides feedback id generation, for tests.
func WithIDSource(fn func() string) Option {
	return func(s *Session) { s.newID = fn }
}

func NewSession(role Role, opts ...Option) *Session {
	s := &Session{
		snap:    models.DefaultSnapshot(),
		matches: map[string][]models.NetworkingMatch{},
		role:    role,
		now:     time.Now,
	}
	s.newID = func() string {
		return fmt.Sprintf("fb_%d", s.now().UnixNano())
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Snapshot returns a deep copy of the current shared state.
func (s *Session) Snapshot() *models.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snap.Clone()
}

// Matches returns the derived match list for one participant.
func (s *Session) Matches(participantID string) []models.NetworkingMatch {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.NetworkingMatch(nil), s.matches[participantID]...)
}

// AllMatches returns the whole derived match map.
func (s *Session) AllMatches() map[string][]models.NetworkingMatch {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[string][]models.NetworkingMatch, len(s.matches))
	for id, m := range s.matches {
		out[id] = append([]models.NetworkingMatch(nil), m...)
	}
	return out
}

// Loading reports whether a reconciliation is in progress.
func (s *Session) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// Role returns the acting device role.
func (s *Session) Role() Role {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.role
}

// SetRole switches the device role (the password gate lives at the HTTP
// boundary, not here).
func (s *Session) SetRole(role Role) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.role = role
}

// CurrentUser returns the local "this device's participant" pointer, or nil.
func (s *Session) CurrentUser() *models.Participant {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.currentUserID == "" {
		return nil
	}
	for _, p := range s.snap.Participants {
		if p.ID == s.currentUserID {
			cp := p
			return &cp
		}
	}
	return nil
}

// changed persists and broadcasts after a mutation. Callers hold s.mu.
func (s *Session) changed() {
	clone := s.snap.Clone()
	if s.sched != nil {
		s.sched.Enqueue(clone)
	}
	if s.onChange != nil {
		s.onChange(clone)
	}
}

// AddParticipant upserts by id. On an attendee device the new record also
// becomes the local current-user pointer; that pointer is never persisted.
func (s *Session) AddParticipant(p models.Participant) {
	s.mu.Lock()
	defer s.mu.Unlock()

	replaced := false
	for i := range s.snap.Participants {
		if s.snap.Participants[i].ID == p.ID {
			s.snap.Participants[i] = p
			replaced = true
			break
		}
	}
	if !replaced {
		s.snap.Participants = append(s.snap.Participants, p)
	}
	if s.role == RoleAttendee {
		s.currentUserID = p.ID
	}
	s.changed()
}

// RemoveParticipant drops the participant and cascades into every
// participant-keyed collection, then reruns team/score integrity. A missing
// id is a no-op.
func (s *Session) RemoveParticipant(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	found := false
	kept := s.snap.Participants[:0]
	for _, p := range s.snap.Participants {
		if p.ID == id {
			found = true
			continue
		}
		kept = append(kept, p)
	}
	if !found {
		return
	}
	s.snap.Participants = kept

	intros := s.snap.Introductions[:0]
	for _, in := range s.snap.Introductions {
		if in.ParticipantID != id {
			intros = append(intros, in)
		}
	}
	s.snap.Introductions = intros

	sels := s.snap.Selections[:0]
	for _, sel := range s.snap.Selections {
		if sel.ParticipantID != id {
			sels = append(sels, sel)
		}
	}
	s.snap.Selections = sels

	fb := s.snap.Feedback[:0]
	for _, f := range s.snap.Feedback {
		if f.ParticipantID != id {
			fb = append(fb, f)
		}
	}
	s.snap.Feedback = fb

	interests := s.snap.NetworkingInterests[:0]
	for _, ni := range s.snap.NetworkingInterests {
		if ni.ParticipantID != id {
			interests = append(interests, ni)
		}
	}
	s.snap.NetworkingInterests = interests
	delete(s.matches, id)

	teams := s.snap.Teams[:0]
	for _, t := range s.snap.Teams {
		members := t.Members[:0]
		for _, m := range t.Members {
			if m.ID != id {
				members = append(members, m)
			}
		}
		t.Members = members
		if len(t.Members) > 0 {
			teams = append(teams, t)
		}
	}
	s.snap.Teams = teams
	s.syncScores()

	if s.currentUserID == id {
		s.currentUserID = ""
	}
	s.changed()
}

// AddIntroduction upserts by participant id, preserving the order of other
// entries.
func (s *Session) AddIntroduction(intro models.Introduction) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.snap.Introductions {
		if s.snap.Introductions[i].ParticipantID == intro.ParticipantID {
			s.snap.Introductions[i] = intro
			s.changed()
			return
		}
	}
	s.snap.Introductions = append(s.snap.Introductions, intro)
	s.changed()
}

// AddFeedback appends a freshly stamped record at the head of the feed.
func (s *Session) AddFeedback(participantID, name, message, category string) models.Feedback {
	s.mu.Lock()
	defer s.mu.Unlock()

	f := models.Feedback{
		ID:            s.newID(),
		ParticipantID: participantID,
		Name:          name,
		Message:       message,
		Category:      category,
		Timestamp:     s.now(),
	}
	s.snap.Feedback = append([]models.Feedback{f}, s.snap.Feedback...)
	s.changed()
	return f
}

// ToggleFeedbackAddressed flips the addressed flag; missing id is a no-op.
func (s *Session) ToggleFeedbackAddressed(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.snap.Feedback {
		if s.snap.Feedback[i].ID == id {
			s.snap.Feedback[i].IsAddressed = !s.snap.Feedback[i].IsAddressed
			s.changed()
			return
		}
	}
}

// AddNetworkingInterest upserts by participant id. Once the interest set has
// at least two entries the match map is recomputed through the collaborator;
// this is the one mutation that awaits an external call before returning.
func (s *Session) AddNetworkingInterest(ctx context.Context, interest models.NetworkingInterest) {
	s.mu.Lock()
	replaced := false
	for i := range s.snap.NetworkingInterests {
		if s.snap.NetworkingInterests[i].ParticipantID == interest.ParticipantID {
			s.snap.NetworkingInterests[i] = interest
			replaced = true
			break
		}
	}
	if !replaced {
		s.snap.NetworkingInterests = append(s.snap.NetworkingInterests, interest)
	}
	interests := append([]models.NetworkingInterest(nil), s.snap.NetworkingInterests...)
	s.changed()
	s.mu.Unlock()

	if len(interests) >= 2 {
		s.recomputeMatches(ctx, interests)
	}
}

// recomputeMatches runs the collaborator outside the lock so slow external
// calls never stall unrelated mutations.
func (s *Session) recomputeMatches(ctx context.Context, interests []models.NetworkingInterest) {
	if s.matcher == nil {
		return
	}
	matches, err := s.matcher.Matches(ctx, interests)
	if err != nil {
		log.Printf("state: match recompute failed: %v", err)
		return
	}
	s.mu.Lock()
	s.matches = matches
	s.mu.Unlock()
}
