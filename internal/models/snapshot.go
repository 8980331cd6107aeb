package models

// Snapshot is the complete shared-state document at one point in time. It is
// what the scheduler writes to the store and what the subscription delivers
// back; top-level fields map one-to-one to the shared collections. There is
// no schema version field: absent fields default at the reconciliation
// boundary.
type Snapshot struct {
	Participants        []Participant        `json:"participants"`
	Introductions       []Introduction       `json:"introductions"`
	Teams               []Team               `json:"teams"`
	Scores              []TeamScore          `json:"scores"`
	RestaurantInfo      *RestaurantInfo      `json:"restaurantInfo,omitempty"`
	Meals               []Meal               `json:"meals"`
	Selections          []MealSelection      `json:"selections"`
	Feedback            []Feedback           `json:"feedback"`
	NetworkingInterests []NetworkingInterest `json:"networkingInterests"`
	AmbiancePlaylist    *AmbiancePlaylist    `json:"ambiancePlaylist,omitempty"`
	WorkshopSummary     *WorkshopSummary     `json:"workshopSummary,omitempty"`
	WorkshopNotice      *WorkshopNotice      `json:"workshopNotice,omitempty"`
}

// DefaultSnapshot seeds a workshop document that does not exist yet.
func DefaultSnapshot() *Snapshot {
	return &Snapshot{
		AmbiancePlaylist: DefaultPlaylist(),
		WorkshopNotice:   DefaultNotice(),
	}
}

// Clone returns a deep copy so callers can hand snapshots across goroutine
// boundaries without sharing backing arrays.
func (s *Snapshot) Clone() *Snapshot {
	if s == nil {
		return nil
	}
	out := &Snapshot{
		Participants:        append([]Participant(nil), s.Participants...),
		Introductions:       append([]Introduction(nil), s.Introductions...),
		Scores:              append([]TeamScore(nil), s.Scores...),
		Meals:               append([]Meal(nil), s.Meals...),
		Selections:          append([]MealSelection(nil), s.Selections...),
		Feedback:            append([]Feedback(nil), s.Feedback...),
		NetworkingInterests: append([]NetworkingInterest(nil), s.NetworkingInterests...),
	}
	for _, t := range s.Teams {
		t.Members = append([]Participant(nil), t.Members...)
		out.Teams = append(out.Teams, t)
	}
	if s.RestaurantInfo != nil {
		ri := *s.RestaurantInfo
		out.RestaurantInfo = &ri
	}
	if s.AmbiancePlaylist != nil {
		pl := *s.AmbiancePlaylist
		pl.Tracks = append([]Track(nil), s.AmbiancePlaylist.Tracks...)
		out.AmbiancePlaylist = &pl
	}
	if s.WorkshopSummary != nil {
		ws := *s.WorkshopSummary
		out.WorkshopSummary = &ws
	}
	if s.WorkshopNotice != nil {
		wn := *s.WorkshopNotice
		out.WorkshopNotice = &wn
	}
	return out
}
