package handlers

import (
	"net/http"

	"github.com/Demian-Yim/Flow-Up/internal/services"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authService *services.AuthService
}

func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type AdminLoginRequest struct {
	Passphrase string `json:"passphrase" binding:"required" example:"workshop-2026"`
}

type AuthResponse struct {
	Token string `json:"token" example:"eyJhbGciOiJIUzI1NiIs..."`
	Role  string `json:"role" example:"admin"`
}

// AdminLogin godoc
// @Summary      Switch to the facilitator role
// @Description  Exchange the shared admin passphrase for an admin token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body AdminLoginRequest true "Passphrase"
// @Success      200 {object} AuthResponse
// @Failure      401 {object} ErrorResponse
// @Router       /api/v1/auth/admin [post]
func (h *AuthHandler) AdminLogin(c *gin.Context) {
	var req AdminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	token, err := h.authService.AdminLogin(req.Passphrase)
	if err != nil {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, AuthResponse{Token: token, Role: "admin"})
}

// AttendeeToken godoc
// @Summary      Get an attendee token
// @Description  Issue an attendee-role token; no credential required
// @Tags         auth
// @Produce      json
// @Success      200 {object} AuthResponse
// @Router       /api/v1/auth/attendee [post]
func (h *AuthHandler) AttendeeToken(c *gin.Context) {
	token, err := h.authService.AttendeeToken()
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, AuthResponse{Token: token, Role: "attendee"})
}
