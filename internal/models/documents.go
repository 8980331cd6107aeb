package models

import "time"

// Track is one song in the ambiance playlist.
type Track struct {
	Title  string `json:"title"`
	Artist string `json:"artist"`
}

// AmbiancePlaylist is a single-current-value document: updating it replaces
// the whole playlist, there is no merge.
type AmbiancePlaylist struct {
	Mood   string  `json:"mood"`
	Tracks []Track `json:"tracks"`
}

// WorkshopSummary is the AI wrap-up report the facilitator generates at the
// end of the day.
type WorkshopSummary struct {
	FeedbackSummary   string    `json:"feedback_summary"`
	NetworkingSummary string    `json:"networking_summary"`
	GeneratedAt       time.Time `json:"generated_at"`
}

// WorkshopNotice is the admin-authored logistics sheet shown to attendees.
type WorkshopNotice struct {
	Title           string `json:"title"`
	Date            string `json:"date"`
	ArrivalInfo     string `json:"arrival_info"`
	Requirements    string `json:"requirements"`
	SurveyLink      string `json:"survey_link,omitempty"`
	LocationName    string `json:"location_name"`
	LocationAddress string `json:"location_address"`
	MapLink         string `json:"map_link,omitempty"`
}

// DefaultPlaylist is what attendees see before the facilitator has picked a
// mood, and what an absent playlist field reconciles to.
func DefaultPlaylist() *AmbiancePlaylist {
	return &AmbiancePlaylist{
		Mood: "welcome",
		Tracks: []Track{
			{Title: "Here Comes the Sun", Artist: "The Beatles"},
			{Title: "Walking on Sunshine", Artist: "Katrina and the Waves"},
			{Title: "Good Day", Artist: "Surfaces"},
		},
	}
}

// DefaultNotice fills in an absent notice field on reconciliation.
func DefaultNotice() *WorkshopNotice {
	return &WorkshopNotice{
		Title:       "Welcome to the workshop",
		Date:        "TBA",
		ArrivalInfo: "Details will be posted by the facilitator.",
	}
}
