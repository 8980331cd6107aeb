package handlers

import (
	"net/http"

	"github.com/Demian-Yim/Flow-Up/internal/models"
	"github.com/Demian-Yim/Flow-Up/internal/services"
	"github.com/Demian-Yim/Flow-Up/internal/state"

	"github.com/gin-gonic/gin"
)

// DocumentHandler covers the single-current-value documents: notice,
// ambiance playlist, wrap-up summary, plus the motivation quote endpoint.
type DocumentHandler struct {
	session *state.Session
	gen     *services.GenerateService
}

func NewDocumentHandler(session *state.Session, gen *services.GenerateService) *DocumentHandler {
	return &DocumentHandler{session: session, gen: gen}
}

type NoticeRequest struct {
	Title           string `json:"title" binding:"required"`
	Date            string `json:"date"`
	ArrivalInfo     string `json:"arrival_info"`
	Requirements    string `json:"requirements"`
	SurveyLink      string `json:"survey_link"`
	LocationName    string `json:"location_name"`
	LocationAddress string `json:"location_address"`
	MapLink         string `json:"map_link"`
}

// UpdateNotice godoc
// @Summary      Replace the workshop notice
// @Tags         documents
// @Accept       json
// @Produce      json
// @Param        request body NoticeRequest true "Notice"
// @Success      200 {object} MessageResponse
// @Failure      400 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /api/v1/notice [put]
func (h *DocumentHandler) UpdateNotice(c *gin.Context) {
	var req NoticeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	h.session.UpdateNotice(models.WorkshopNotice{
		Title:           req.Title,
		Date:            req.Date,
		ArrivalInfo:     req.ArrivalInfo,
		Requirements:    req.Requirements,
		SurveyLink:      req.SurveyLink,
		LocationName:    req.LocationName,
		LocationAddress: req.LocationAddress,
		MapLink:         req.MapLink,
	})
	c.JSON(http.StatusOK, MessageResponse{Message: "notice updated"})
}

type PlaylistRequest struct {
	Mood string `json:"mood" binding:"required" example:"focus"`
}

// GeneratePlaylist godoc
// @Summary      Generate and set the ambiance playlist
// @Description  AI-picked tracks for the mood; canned playlist when generation is unavailable
// @Tags         documents
// @Accept       json
// @Produce      json
// @Param        request body PlaylistRequest true "Mood"
// @Success      200 {object} models.AmbiancePlaylist
// @Failure      400 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /api/v1/ambiance/generate [post]
func (h *DocumentHandler) GeneratePlaylist(c *gin.Context) {
	var req PlaylistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	pl := h.gen.Playlist(c.Request.Context(), req.Mood)
	h.session.UpdatePlaylist(pl)
	c.JSON(http.StatusOK, pl)
}

// GenerateSummary godoc
// @Summary      Generate the workshop wrap-up summary
// @Description  Summarizes today's feedback and networking interests and stores the result
// @Tags         documents
// @Produce      json
// @Success      200 {object} models.WorkshopSummary
// @Security     BearerAuth
// @Router       /api/v1/summary/generate [post]
func (h *DocumentHandler) GenerateSummary(c *gin.Context) {
	snap := h.session.Snapshot()
	sum := h.gen.Summary(c.Request.Context(), snap.Feedback, snap.NetworkingInterests)
	h.session.UpdateSummary(sum)
	c.JSON(http.StatusOK, sum)
}

type MotivationRequest struct {
	Topic string `json:"topic" binding:"required" example:"teamwork"`
}

type MotivationResponse struct {
	Quote string `json:"quote"`
}

// Motivation godoc
// @Summary      Get a motivational quote
// @Tags         documents
// @Accept       json
// @Produce      json
// @Param        request body MotivationRequest true "Topic"
// @Success      200 {object} MotivationResponse
// @Failure      400 {object} ErrorResponse
// @Router       /api/v1/motivation [post]
func (h *DocumentHandler) Motivation(c *gin.Context) {
	var req MotivationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, MotivationResponse{Quote: h.gen.Motivation(c.Request.Context(), req.Topic)})
}

type GenerateIntroductionsRequest struct {
	Name      string `json:"name" binding:"required"`
	Job       string `json:"job" binding:"required"`
	Interests string `json:"interests" binding:"required"`
}

// GenerateIntroductions godoc
// @Summary      Generate three styled self introductions
// @Tags         introductions
// @Accept       json
// @Produce      json
// @Param        request body GenerateIntroductionsRequest true "Profile"
// @Success      200 {object} map[string]string
// @Failure      400 {object} ErrorResponse
// @Router       /api/v1/introductions/generate [post]
func (h *DocumentHandler) GenerateIntroductions(c *gin.Context) {
	var req GenerateIntroductionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, h.gen.Introductions(c.Request.Context(), req.Name, req.Job, req.Interests))
}
