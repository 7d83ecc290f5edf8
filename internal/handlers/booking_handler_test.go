package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sanparkangkor/sanpark-tours-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func bookingRouter(service *MockBookingSubmitter) *gin.Engine {
	handler := NewBookingHandler(service)
	router := gin.New()
	router.POST("/api/v1/bookings", handler.SubmitBooking)
	return router
}

func TestBookingHandler_SubmitBooking_Success(t *testing.T) {
	service := new(MockBookingSubmitter)
	service.On("SubmitBooking", mock.Anything, mock.Anything).Return(&models.SubmissionResponse{
		Success:   true,
		Message:   "Booking submitted successfully",
		BookingID: "SP1735689600000A1B2",
		Data: map[string]any{
			"name":           "A",
			"email":          "a@b.com",
			"tourType":       "Sunrise",
			"tourDate":       "2025-01-01",
			"numberOfPeople": float64(2),
		},
	}, nil)

	router := bookingRouter(service)
	w := httptest.NewRecorder()
	body := `{"name":"A","email":"a@b.com","phone":"123","tourType":"Sunrise","tourDate":"2025-01-01","numberOfPeople":2}`
	req := httptest.NewRequest("POST", "/api/v1/bookings", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{
		"success": true,
		"message": "Booking submitted successfully",
		"bookingId": "SP1735689600000A1B2",
		"data": {"name":"A","email":"a@b.com","tourType":"Sunrise","tourDate":"2025-01-01","numberOfPeople":2}
	}`, w.Body.String())
	service.AssertExpectations(t)
}

func TestBookingHandler_SubmitBooking_MissingFields(t *testing.T) {
	service := new(MockBookingSubmitter)
	service.On("SubmitBooking", mock.Anything, mock.Anything).Return(&models.SubmissionResponse{
		Success:  false,
		Error:    "Missing required fields",
		Required: []string{"phone", "tourDate"},
	}, nil)

	router := bookingRouter(service)
	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/v1/bookings", strings.NewReader(`{"name":"A","email":"a@b.com","numberOfPeople":2,"tourType":"Sunrise"}`))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{
		"success": false,
		"error": "Missing required fields",
		"required": ["phone", "tourDate"]
	}`, w.Body.String())
}

func TestBookingHandler_SubmitBooking_DispatchFailure(t *testing.T) {
	service := new(MockBookingSubmitter)
	service.On("SubmitBooking", mock.Anything, mock.Anything).
		Return(nil, errors.New("failed to send notification emails"))

	router := bookingRouter(service)
	w := httptest.NewRecorder()
	body := `{"name":"A","email":"a@b.com","phone":"123","tourType":"Sunrise","tourDate":"2025-01-01","numberOfPeople":2}`
	req := httptest.NewRequest("POST", "/api/v1/bookings", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{
		"success": false,
		"error": "Failed to process booking",
		"message": "failed to send notification emails"
	}`, w.Body.String())
}

func TestBookingHandler_SubmitBooking_MalformedJSON(t *testing.T) {
	service := new(MockBookingSubmitter)

	router := bookingRouter(service)
	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/v1/bookings", strings.NewReader(`{"name":`))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	service.AssertNotCalled(t, "SubmitBooking")
}
