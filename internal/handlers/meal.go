package handlers

import (
	"net/http"
	"strconv"

	"github.com/Demian-Yim/Flow-Up/internal/models"
	"github.com/Demian-Yim/Flow-Up/internal/state"

	"github.com/gin-gonic/gin"
)

type MealHandler struct {
	session *state.Session
}

func NewMealHandler(session *state.Session) *MealHandler {
	return &MealHandler{session: session}
}

type FetchMenuRequest struct {
	Query string `json:"query" binding:"required" example:"korean lunch near the venue"`
}

// FetchMenu godoc
// @Summary      Replace the whole menu
// @Description  Fetches a fresh AI-composed menu, replaces all meals and restaurant info and clears every selection
// @Tags         meals
// @Accept       json
// @Produce      json
// @Param        request body FetchMenuRequest true "Menu query"
// @Success      200 {object} MessageResponse
// @Failure      400 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /api/v1/menu/fetch [post]
func (h *MealHandler) FetchMenu(c *gin.Context) {
	var req FetchMenuRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	h.session.FetchMenu(c.Request.Context(), req.Query)
	c.JSON(http.StatusOK, MessageResponse{Message: "menu replaced"})
}

type MealRequest struct {
	ID            int    `json:"id" binding:"required"`
	Name          string `json:"name" binding:"required"`
	Description   string `json:"description"`
	Price         int    `json:"price" binding:"min=0"`
	Stock         int    `json:"stock" binding:"min=0"`
	IsRecommended bool   `json:"is_recommended"`
}

func (r MealRequest) meal() models.Meal {
	return models.Meal{
		ID:            r.ID,
		Name:          r.Name,
		Description:   r.Description,
		Price:         r.Price,
		Stock:         r.Stock,
		IsRecommended: r.IsRecommended,
	}
}

// AddMeal godoc
// @Summary      Add or replace a meal
// @Tags         meals
// @Accept       json
// @Produce      json
// @Param        request body MealRequest true "Meal"
// @Success      201 {object} MessageResponse
// @Failure      400 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /api/v1/meals [post]
func (h *MealHandler) AddMeal(c *gin.Context) {
	var req MealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	h.session.AddMeal(req.meal())
	c.JSON(http.StatusCreated, MessageResponse{Message: "meal added"})
}

// UpdateMeal godoc
// @Summary      Update a meal
// @Tags         meals
// @Accept       json
// @Produce      json
// @Param        id path int true "Meal ID"
// @Param        request body MealRequest true "Meal"
// @Success      200 {object} MessageResponse
// @Failure      400 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /api/v1/meals/{id} [put]
func (h *MealHandler) UpdateMeal(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid meal id"})
		return
	}
	var req MealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	meal := req.meal()
	meal.ID = id
	h.session.UpdateMeal(meal)
	c.JSON(http.StatusOK, MessageResponse{Message: "meal updated"})
}

// DeleteMeal godoc
// @Summary      Delete a meal
// @Description  Removes the meal; existing selections keep their meal id and render as "no longer offered"
// @Tags         meals
// @Produce      json
// @Param        id path int true "Meal ID"
// @Success      200 {object} MessageResponse
// @Failure      400 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /api/v1/meals/{id} [delete]
func (h *MealHandler) DeleteMeal(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid meal id"})
		return
	}

	h.session.DeleteMeal(id)
	c.JSON(http.StatusOK, MessageResponse{Message: "meal deleted"})
}

type SelectionRequest struct {
	ParticipantID string `json:"participant_id" binding:"required"`
	MealID        int    `json:"meal_id" binding:"required"`
}

// SelectMeal godoc
// @Summary      Pick a meal
// @Description  Upserts the participant's selection; a new pick replaces the old one
// @Tags         meals
// @Accept       json
// @Produce      json
// @Param        request body SelectionRequest true "Selection"
// @Success      200 {object} MessageResponse
// @Failure      400 {object} ErrorResponse
// @Router       /api/v1/selections [post]
func (h *MealHandler) SelectMeal(c *gin.Context) {
	var req SelectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	h.session.AddSelection(models.MealSelection{
		ParticipantID: req.ParticipantID,
		MealID:        req.MealID,
	})
	c.JSON(http.StatusOK, MessageResponse{Message: "selection saved"})
}
