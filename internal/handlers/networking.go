package handlers

import (
	"net/http"

	"github.com/Demian-Yim/Flow-Up/internal/models"
	"github.com/Demian-Yim/Flow-Up/internal/state"

	"github.com/gin-gonic/gin"
)

type NetworkingHandler struct {
	session *state.Session
}

func NewNetworkingHandler(session *state.Session) *NetworkingHandler {
	return &NetworkingHandler{session: session}
}

type InterestRequest struct {
	ParticipantID string `json:"participant_id" binding:"required"`
	Name          string `json:"name" binding:"required"`
	Interests     string `json:"interests" binding:"required" example:"react, hiking, side projects"`
}

type MatchesResponse struct {
	Matches []models.NetworkingMatch `json:"matches"`
}

// SubmitInterest godoc
// @Summary      Submit networking interests
// @Description  Upserts the participant's interests; once two or more are in, matches are recomputed before the call returns
// @Tags         networking
// @Accept       json
// @Produce      json
// @Param        request body InterestRequest true "Interests"
// @Success      200 {object} MatchesResponse
// @Failure      400 {object} ErrorResponse
// @Router       /api/v1/networking/interests [post]
func (h *NetworkingHandler) SubmitInterest(c *gin.Context) {
	var req InterestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	h.session.AddNetworkingInterest(c.Request.Context(), models.NetworkingInterest{
		ParticipantID: req.ParticipantID,
		Name:          req.Name,
		Interests:     req.Interests,
	})
	c.JSON(http.StatusOK, MatchesResponse{Matches: h.session.Matches(req.ParticipantID)})
}

// GetMatches godoc
// @Summary      Get matches for one participant
// @Tags         networking
// @Produce      json
// @Param        participantId path string true "Participant ID"
// @Success      200 {object} MatchesResponse
// @Router       /api/v1/networking/matches/{participantId} [get]
func (h *NetworkingHandler) GetMatches(c *gin.Context) {
	c.JSON(http.StatusOK, MatchesResponse{Matches: h.session.Matches(c.Param("participantId"))})
}
