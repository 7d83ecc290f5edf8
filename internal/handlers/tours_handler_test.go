package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sanparkangkor/sanpark-tours-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func toursRouter(service *MockTourProvider) *gin.Engine {
	handler := NewToursHandler(service)
	router := gin.New()
	router.GET("/api/v1/tours", handler.GetTours)
	return router
}

func TestToursHandler_GetTours_Success(t *testing.T) {
	service := new(MockTourProvider)
	service.On("GetTours", mock.Anything).Return(&models.ToursResponse{
		Success:   true,
		Data:      json.RawMessage(`[{"id":"angkor-sunrise","title":"Angkor Wat Sunrise Tour"}]`),
		Timestamp: "2025-01-01T00:00:00Z",
	}, nil)

	router := toursRouter(service)
	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/v1/tours", http.NoBody)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, true, resp["success"])
	assert.Equal(t, "2025-01-01T00:00:00Z", resp["timestamp"])
	tours, ok := resp["data"].([]any)
	require.True(t, ok)
	assert.Len(t, tours, 1)
}

func TestToursHandler_GetTours_CatalogUnavailable(t *testing.T) {
	service := new(MockTourProvider)
	service.On("GetTours", mock.Anything).Return(nil, errors.New("tour catalog not loaded"))

	router := toursRouter(service)
	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/v1/tours", http.NoBody)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{
		"success": false,
		"error": "Failed to load tours data",
		"message": "tour catalog not loaded"
	}`, w.Body.String())
}
