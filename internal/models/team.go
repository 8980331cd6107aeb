package models

// Team holds its members by value, not by reference: removing a participant
// from the canonical set must also prune the copy held here.
type Team struct {
	ID      string        `json:"id"`
	Name    string        `json:"name"`
	Members []Participant `json:"members"`
}

// TeamScore is the running tally for one team. TeamID is not required to
// resolve: when a team disappears in a restructuring its score entry is kept
// with Orphaned set, so tally history survives accidental reshuffles.
type TeamScore struct {
	TeamID   string `json:"team_id"`
	Name     string `json:"name"`
	Score    int    `json:"score"`
	Orphaned bool   `json:"orphaned,omitempty"`
}

const (
	// ScoreWeight multiplies the raw admin delta on every score change.
	ScoreWeight = 10
	// ScoreMax caps a team score; together with the zero floor it keeps
	// repeated taps from producing unbounded or negative totals.
	ScoreMax = 9990
)
