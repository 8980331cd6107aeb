package handlers

import (
	"net/http"

	"github.com/Demian-Yim/Flow-Up/internal/models"
	"github.com/Demian-Yim/Flow-Up/internal/services"
	"github.com/Demian-Yim/Flow-Up/internal/state"

	"github.com/gin-gonic/gin"
)

type TeamHandler struct {
	session *state.Session
	gen     *services.GenerateService
}

func NewTeamHandler(session *state.Session, gen *services.GenerateService) *TeamHandler {
	return &TeamHandler{session: session, gen: gen}
}

type UpdateTeamsRequest struct {
	Teams []models.Team `json:"teams" binding:"required"`
}

// UpdateTeams godoc
// @Summary      Replace the team structure
// @Description  Bulk team shuffle; scores are re-synced to the new team set and memberless teams keep their score slot
// @Tags         teams
// @Accept       json
// @Produce      json
// @Param        request body UpdateTeamsRequest true "New teams"
// @Success      200 {object} MessageResponse
// @Failure      400 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /api/v1/teams [put]
func (h *TeamHandler) UpdateTeams(c *gin.Context) {
	var req UpdateTeamsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	h.session.UpdateTeams(req.Teams)
	c.JSON(http.StatusOK, MessageResponse{Message: "teams updated"})
}

type MoveParticipantRequest struct {
	ParticipantID string `json:"participant_id" binding:"required"`
	TeamID        string `json:"team_id" binding:"required"`
}

// MoveParticipant godoc
// @Summary      Move a participant to another team
// @Tags         teams
// @Accept       json
// @Produce      json
// @Param        request body MoveParticipantRequest true "Move"
// @Success      200 {object} MessageResponse
// @Failure      400 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /api/v1/teams/move [post]
func (h *TeamHandler) MoveParticipant(c *gin.Context) {
	var req MoveParticipantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	h.session.MoveParticipantToTeam(req.ParticipantID, req.TeamID)
	c.JSON(http.StatusOK, MessageResponse{Message: "participant moved"})
}

type TeamNamesRequest struct {
	Keywords string `json:"keywords" binding:"required" example:"innovation, energy"`
}

type TeamNamesResponse struct {
	Names []string `json:"names"`
}

// SuggestTeamNames godoc
// @Summary      Suggest team names
// @Description  AI-backed name suggestions; canned names when generation is unavailable
// @Tags         teams
// @Accept       json
// @Produce      json
// @Param        request body TeamNamesRequest true "Keywords"
// @Success      200 {object} TeamNamesResponse
// @Failure      400 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /api/v1/teams/names [post]
func (h *TeamHandler) SuggestTeamNames(c *gin.Context) {
	var req TeamNamesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, TeamNamesResponse{Names: h.gen.TeamNames(c.Request.Context(), req.Keywords)})
}

type UpdateScoreRequest struct {
	Delta int `json:"delta" binding:"required" example:"1"`
}

// UpdateScore godoc
// @Summary      Adjust a team score
// @Description  Applies delta times the score weight, clamped to the valid range
// @Tags         scores
// @Accept       json
// @Produce      json
// @Param        teamId path string true "Team ID"
// @Param        request body UpdateScoreRequest true "Delta"
// @Success      200 {object} MessageResponse
// @Failure      400 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /api/v1/scores/{teamId} [post]
func (h *TeamHandler) UpdateScore(c *gin.Context) {
	var req UpdateScoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	h.session.UpdateScore(c.Param("teamId"), req.Delta)
	c.JSON(http.StatusOK, MessageResponse{Message: "score updated"})
}
