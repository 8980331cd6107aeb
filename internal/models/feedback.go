package models

import "time"

type Feedback struct {
	ID            string    `json:"id"`
	ParticipantID string    `json:"participant_id"`
	Name          string    `json:"name"`
	Message       string    `json:"message"`
	Category      string    `json:"category"`
	Timestamp     time.Time `json:"timestamp"`
	IsAddressed   bool      `json:"is_addressed"`
}

const (
	FeedbackQuestion   = "Question"
	FeedbackSuggestion = "Suggestion"
	FeedbackPraise     = "Praise"
)
