package handlers

import (
	"net/http"

	"databridge-api/internal/models"
	"databridge-api/internal/services"

	"github.com/gin-gonic/gin"
)

type ContactHandler struct {
	Contacts *services.ContactService
}

func NewContactHandler(contacts *services.ContactService) *ContactHandler {
	return &ContactHandler{Contacts: contacts}
}

func (h *ContactHandler) List(c *gin.Context) {
	contacts, err := h.Contacts.List(c.Request.Context())
	if err != nil {
		fail(c, err, "Error fetching contact queries")
		return
	}
	c.JSON(http.StatusOK, contacts)
}

func (h *ContactHandler) Get(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	contact, err := h.Contacts.Get(c.Request.Context(), id)
	if err != nil {
		fail(c, err, "Error fetching contact query")
		return
	}
	c.JSON(http.StatusOK, contact)
}

// Create backs both the contact form and the callback widget.
func (h *ContactHandler) Create(c *gin.Context) {
	var in services.ContactInput
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, "Missing required fields")
		return
	}
	contact, err := h.Contacts.Create(c.Request.Context(), in)
	if err != nil {
		fail(c, err, "Error submitting message")
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": "Message sent successfully",
		"contact": contact,
	})
}

func (h *ContactHandler) UpdateStatus(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req statusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid status")
		return
	}
	contact, err := h.Contacts.UpdateStatus(c.Request.Context(), id, models.ContactStatus(req.Status))
	if err != nil {
		fail(c, err, "Error updating contact status")
		return
	}
	c.JSON(http.StatusOK, contact)
}
