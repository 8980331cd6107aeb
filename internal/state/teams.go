package state

import (
	"sort"

	"github.com/Demian-Yim/Flow-Up/internal/models"
)

// UpdateTeams replaces the whole team structure (team shuffle) and reruns
// score synchronization. Memberless teams are kept as given: a freshly set up
// team starts empty and still needs its score slot on the board. Pruning only
// happens when membership changes drain a team (move, participant removal).
func (s *Session) UpdateTeams(teams []models.Team) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := make([]models.Team, 0, len(teams))
	for _, t := range teams {
		t.Members = append([]models.Participant(nil), t.Members...)
		next = append(next, t)
	}
	s.snap.Teams = next
	s.syncScores()
	s.changed()
}

// MoveParticipantToTeam relocates one participant. The target team's member
// list is re-sorted alphabetically by name so independent clients converge on
// the same display order. The target team is resolved before the participant
// is detached: an unknown team id or a participant found in no team leaves
// everything untouched, so a stale id from a client can never lose a member.
func (s *Session) MoveParticipantToTeam(participantID, newTeamID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	target := -1
	for ti := range s.snap.Teams {
		if s.snap.Teams[ti].ID == newTeamID {
			target = ti
			break
		}
	}
	if target == -1 {
		return
	}

	var moved *models.Participant
	for ti := range s.snap.Teams {
		members := s.snap.Teams[ti].Members
		for mi := range members {
			if members[mi].ID == participantID {
				m := members[mi]
				moved = &m
				s.snap.Teams[ti].Members = append(members[:mi], members[mi+1:]...)
				break
			}
		}
		if moved != nil {
			break
		}
	}
	if moved == nil {
		return
	}

	s.snap.Teams[target].Members = append(s.snap.Teams[target].Members, *moved)
	sort.Slice(s.snap.Teams[target].Members, func(a, b int) bool {
		return s.snap.Teams[target].Members[a].Name < s.snap.Teams[target].Members[b].Name
	})

	s.pruneEmptyTeams()
	s.syncScores()
	s.changed()
}

// UpdateScore adjusts one team's tally by delta*ScoreWeight, clamped to
// [0, ScoreMax], and re-sorts the ranking. An unknown team id is a no-op.
func (s *Session) UpdateScore(teamID string, delta int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.snap.Scores {
		if s.snap.Scores[i].TeamID == teamID {
			score := s.snap.Scores[i].Score + delta*models.ScoreWeight
			if score < 0 {
				score = 0
			}
			if score > models.ScoreMax {
				score = models.ScoreMax
			}
			s.snap.Scores[i].Score = score
			s.sortScores()
			s.changed()
			return
		}
	}
}

// Scores returns the current ranking, best first.
func (s *Session) Scores() []models.TeamScore {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.TeamScore(nil), s.snap.Scores...)
}

func (s *Session) pruneEmptyTeams() {
	teams := s.snap.Teams[:0]
	for _, t := range s.snap.Teams {
		if len(t.Members) > 0 {
			teams = append(teams, t)
		}
	}
	s.snap.Teams = teams
}

// syncScores keeps the score set aligned with the team set after any
// restructuring: surviving team ids retain their score, ids no longer present
// are retained but marked orphaned, and new ids start at zero. Callers hold
// s.mu.
func (s *Session) syncScores() {
	live := make(map[string]string, len(s.snap.Teams))
	for _, t := range s.snap.Teams {
		live[t.ID] = t.Name
	}

	next := make([]models.TeamScore, 0, len(s.snap.Scores)+len(s.snap.Teams))
	seen := make(map[string]bool, len(s.snap.Scores))
	for _, sc := range s.snap.Scores {
		seen[sc.TeamID] = true
		if name, ok := live[sc.TeamID]; ok {
			sc.Name = name
			sc.Orphaned = false
		} else {
			sc.Orphaned = true
		}
		next = append(next, sc)
	}
	for _, t := range s.snap.Teams {
		if !seen[t.ID] {
			next = append(next, models.TeamScore{TeamID: t.ID, Name: t.Name})
		}
	}
	s.snap.Scores = next
	s.sortScores()
}

func (s *Session) sortScores() {
	sort.SliceStable(s.snap.Scores, func(a, b int) bool {
		return s.snap.Scores[a].Score > s.snap.Scores[b].Score
	})
}
