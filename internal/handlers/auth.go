package handlers

import (
	"errors"
	"net/http"

	"databridge-api/internal/auth"
	"databridge-api/internal/middleware"
	"databridge-api/internal/services"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	Verifier *auth.Verifier
	Tokens   *auth.TokenService
	Stats    *services.StatsService
}

func NewAuthHandler(v *auth.Verifier, tokens *auth.TokenService, stats *services.StatsService) *AuthHandler {
	return &AuthHandler{Verifier: v, Tokens: tokens, Stats: stats}
}

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Username and password required")
		return
	}

	id, err := h.Verifier.Authenticate(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials"})
			return
		}
		fail(c, err, "Error during login")
		return
	}

	token, err := h.Tokens.Issue(id)
	if err != nil {
		fail(c, err, "Error during login")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user": gin.H{
			"id":       id.ID,
			"username": id.Username,
			"email":    id.Email,
		},
	})
}

func (h *AuthHandler) Me(c *gin.Context) {
	claims, ok := middleware.CurrentClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Access token required"})
		return
	}

	user, err := h.Verifier.Profile(c.Request.Context(), claims.AdminID)
	if err != nil {
		fail(c, err, "Error fetching user info")
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *AuthHandler) DashboardStats(c *gin.Context) {
	stats, err := h.Stats.Dashboard(c.Request.Context())
	if err != nil {
		fail(c, err, "Error fetching dashboard stats")
		return
	}
	c.JSON(http.StatusOK, stats)
}
