package handlers

import "github.com/Demian-Yim/Flow-Up/internal/models"

type ErrorResponse struct {
	Error string `json:"error" example:"something went wrong"`
}

type MessageResponse struct {
	Message string `json:"message" example:"ok"`
}

// Type aliases so swag can resolve models in annotations.
type Participant = models.Participant
type Team = models.Team
type Feedback = models.Feedback
type Snapshot = models.Snapshot
