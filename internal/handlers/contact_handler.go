package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sanparkangkor/sanpark-tours-api/internal/forms"
	"github.com/sanparkangkor/sanpark-tours-api/internal/services"
)

type ContactHandler struct {
	service services.ContactSubmitter
}

func NewContactHandler(service services.ContactSubmitter) *ContactHandler {
	return &ContactHandler{service: service}
}

// SubmitContact handles POST /api/v1/contact.
func (h *ContactHandler) SubmitContact(c *gin.Context) {
	var payload forms.Payload
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	resp, err := h.service.SubmitContact(c.Request.Context(), payload)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to send message", err)
		return
	}

	if !resp.Success {
		c.JSON(http.StatusBadRequest, resp)
		return
	}

	c.JSON(http.StatusOK, resp)
}
