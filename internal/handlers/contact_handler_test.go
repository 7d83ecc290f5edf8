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

func contactRouter(service *MockContactSubmitter) *gin.Engine {
	handler := NewContactHandler(service)
	router := gin.New()
	router.POST("/api/v1/contact", handler.SubmitContact)
	return router
}

func TestContactHandler_SubmitContact_Success(t *testing.T) {
	service := new(MockContactSubmitter)
	service.On("SubmitContact", mock.Anything, mock.Anything).Return(&models.SubmissionResponse{
		Success: true,
		Message: "Message sent successfully",
	}, nil)

	router := contactRouter(service)
	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/v1/contact", strings.NewReader(`{"name":"A","email":"a@b.com","message":"Hi"}`))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success": true, "message": "Message sent successfully"}`, w.Body.String())
	service.AssertExpectations(t)
}

func TestContactHandler_SubmitContact_MissingMessage(t *testing.T) {
	service := new(MockContactSubmitter)
	service.On("SubmitContact", mock.Anything, mock.Anything).Return(&models.SubmissionResponse{
		Success:  false,
		Error:    "Missing required fields",
		Required: []string{"message"},
	}, nil)

	router := contactRouter(service)
	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/v1/contact", strings.NewReader(`{"name":"A","email":"a@b.com"}`))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{
		"success": false,
		"error": "Missing required fields",
		"required": ["message"]
	}`, w.Body.String())
}

func TestContactHandler_SubmitContact_DispatchFailure(t *testing.T) {
	service := new(MockContactSubmitter)
	service.On("SubmitContact", mock.Anything, mock.Anything).
		Return(nil, errors.New("failed to send notification emails"))

	router := contactRouter(service)
	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/v1/contact", strings.NewReader(`{"name":"A","email":"a@b.com","message":"Hi"}`))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{
		"success": false,
		"error": "Failed to send message",
		"message": "failed to send notification emails"
	}`, w.Body.String())
}
