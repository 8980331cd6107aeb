package handlers

import (
	"net/http"
	"time"

	"github.com/Demian-Yim/Flow-Up/internal/models"
	"github.com/Demian-Yim/Flow-Up/internal/state"

	"github.com/gin-gonic/gin"
)

// WorkshopHandler exposes the shared session state and the participant-keyed
// mutations every device may call.
type WorkshopHandler struct {
	session *state.Session
}

func NewWorkshopHandler(session *state.Session) *WorkshopHandler {
	return &WorkshopHandler{session: session}
}

type StateResponse struct {
	Snapshot *models.Snapshot                    `json:"snapshot"`
	Matches  map[string][]models.NetworkingMatch `json:"matches"`
	Loading  bool                                `json:"loading"`
}

// GetState godoc
// @Summary      Get the full workshop state
// @Description  Returns the current snapshot plus derived networking matches
// @Tags         workshop
// @Produce      json
// @Success      200 {object} StateResponse
// @Router       /api/v1/state [get]
func (h *WorkshopHandler) GetState(c *gin.Context) {
	c.JSON(http.StatusOK, StateResponse{
		Snapshot: h.session.Snapshot(),
		Matches:  h.session.AllMatches(),
		Loading:  h.session.Loading(),
	})
}

type CheckInRequest struct {
	ID           string `json:"id" binding:"required" example:"dev_9f2c"`
	Name         string `json:"name" binding:"required" example:"Jamie"`
	CheckInImage string `json:"check_in_image" example:"data:image/jpeg;base64,..."`
}

// CheckIn godoc
// @Summary      Check in a participant
// @Description  Upserts the participant record by device id and stamps the check-in time
// @Tags         participants
// @Accept       json
// @Produce      json
// @Param        request body CheckInRequest true "Check-in data"
// @Success      201 {object} Participant
// @Failure      400 {object} ErrorResponse
// @Router       /api/v1/participants [post]
func (h *WorkshopHandler) CheckIn(c *gin.Context) {
	var req CheckInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	p := models.Participant{
		ID:           req.ID,
		Name:         req.Name,
		CheckInTime:  time.Now().Format(time.RFC3339),
		CheckInImage: req.CheckInImage,
	}
	h.session.AddParticipant(p)
	c.JSON(http.StatusCreated, p)
}

// RemoveParticipant godoc
// @Summary      Remove a participant
// @Description  Drops the participant and cascades into teams, selections, feedback and interests
// @Tags         participants
// @Produce      json
// @Param        id path string true "Participant ID"
// @Success      200 {object} MessageResponse
// @Security     BearerAuth
// @Router       /api/v1/participants/{id} [delete]
func (h *WorkshopHandler) RemoveParticipant(c *gin.Context) {
	h.session.RemoveParticipant(c.Param("id"))
	c.JSON(http.StatusOK, MessageResponse{Message: "participant removed"})
}

type IntroductionRequest struct {
	ParticipantID string `json:"participant_id" binding:"required"`
	Name          string `json:"name" binding:"required"`
	Style         string `json:"style" binding:"required,oneof=expert friendly humorous"`
	Text          string `json:"text" binding:"required"`
}

// SaveIntroduction godoc
// @Summary      Save a self introduction
// @Description  Upserts the introduction for one participant
// @Tags         introductions
// @Accept       json
// @Produce      json
// @Param        request body IntroductionRequest true "Introduction"
// @Success      200 {object} MessageResponse
// @Failure      400 {object} ErrorResponse
// @Router       /api/v1/introductions [post]
func (h *WorkshopHandler) SaveIntroduction(c *gin.Context) {
	var req IntroductionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	h.session.AddIntroduction(models.Introduction{
		ParticipantID: req.ParticipantID,
		Name:          req.Name,
		Style:         req.Style,
		Text:          req.Text,
	})
	c.JSON(http.StatusOK, MessageResponse{Message: "introduction saved"})
}
