package handlers

import (
	"net/http"

	"github.com/Demian-Yim/Flow-Up/internal/state"

	"github.com/gin-gonic/gin"
)

type FeedbackHandler struct {
	session *state.Session
}

func NewFeedbackHandler(session *state.Session) *FeedbackHandler {
	return &FeedbackHandler{session: session}
}

type FeedbackRequest struct {
	ParticipantID string `json:"participant_id" binding:"required"`
	Name          string `json:"name" binding:"required" example:"anonymous"`
	Message       string `json:"message" binding:"required"`
	Category      string `json:"category" binding:"required,oneof=Question Suggestion Praise"`
}

// SubmitFeedback godoc
// @Summary      Submit feedback
// @Description  Appends a stamped feedback record at the head of the live feed
// @Tags         feedback
// @Accept       json
// @Produce      json
// @Param        request body FeedbackRequest true "Feedback"
// @Success      201 {object} Feedback
// @Failure      400 {object} ErrorResponse
// @Router       /api/v1/feedback [post]
func (h *FeedbackHandler) SubmitFeedback(c *gin.Context) {
	var req FeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	f := h.session.AddFeedback(req.ParticipantID, req.Name, req.Message, req.Category)
	c.JSON(http.StatusCreated, f)
}

// ToggleAddressed godoc
// @Summary      Toggle the addressed flag on a feedback item
// @Tags         feedback
// @Produce      json
// @Param        id path string true "Feedback ID"
// @Success      200 {object} MessageResponse
// @Security     BearerAuth
// @Router       /api/v1/feedback/{id}/toggle [post]
func (h *FeedbackHandler) ToggleAddressed(c *gin.Context) {
	h.session.ToggleFeedbackAddressed(c.Param("id"))
	c.JSON(http.StatusOK, MessageResponse{Message: "feedback toggled"})
}
