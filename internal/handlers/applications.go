package handlers

import (
	"net/http"

	"databridge-api/internal/models"
	"databridge-api/internal/services"

	"github.com/gin-gonic/gin"
)

type ApplicationHandler struct {
	Applications *services.ApplicationService
}

func NewApplicationHandler(apps *services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{Applications: apps}
}

type statusRequest struct {
	Status string `json:"status"`
}

func (h *ApplicationHandler) List(c *gin.Context) {
	apps, err := h.Applications.List(c.Request.Context())
	if err != nil {
		fail(c, err, "Error fetching applications")
		return
	}
	c.JSON(http.StatusOK, apps)
}

func (h *ApplicationHandler) Get(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	app, err := h.Applications.Get(c.Request.Context(), id)
	if err != nil {
		fail(c, err, "Error fetching application")
		return
	}
	c.JSON(http.StatusOK, app)
}

// Create is public: candidates apply without an account.
func (h *ApplicationHandler) Create(c *gin.Context) {
	var in services.ApplicationInput
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, "Missing required fields")
		return
	}
	app, err := h.Applications.Create(c.Request.Context(), in)
	if err != nil {
		fail(c, err, "Error submitting application")
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message":     "Application submitted successfully",
		"application": app,
	})
}

func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req statusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid status")
		return
	}
	app, err := h.Applications.UpdateStatus(c.Request.Context(), id, models.ApplicationStatus(req.Status))
	if err != nil {
		fail(c, err, "Error updating application status")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":     "Application status updated",
		"application": app,
	})
}
