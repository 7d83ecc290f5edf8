package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sanparkangkor/sanpark-tours-api/internal/services"
)

type ToursHandler struct {
	service services.TourProvider
}

func NewToursHandler(service services.TourProvider) *ToursHandler {
	return &ToursHandler{service: service}
}

// GetTours handles GET /api/v1/tours.
func (h *ToursHandler) GetTours(c *gin.Context) {
	resp, err := h.service.GetTours(c.Request.Context())
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to load tours data", err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
