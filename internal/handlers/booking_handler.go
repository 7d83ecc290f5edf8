package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sanparkangkor/sanpark-tours-api/internal/forms"
	"github.com/sanparkangkor/sanpark-tours-api/internal/services"
)

type BookingHandler struct {
	service services.BookingSubmitter
}

func NewBookingHandler(service services.BookingSubmitter) *BookingHandler {
	return &BookingHandler{service: service}
}

// SubmitBooking handles POST /api/v1/bookings.
func (h *BookingHandler) SubmitBooking(c *gin.Context) {
	var payload forms.Payload
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	resp, err := h.service.SubmitBooking(c.Request.Context(), payload)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to process booking", err)
		return
	}

	if !resp.Success {
		c.JSON(http.StatusBadRequest, resp)
		return
	}

	c.JSON(http.StatusOK, resp)
}
