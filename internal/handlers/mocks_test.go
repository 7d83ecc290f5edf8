package handlers

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/sanparkangkor/sanpark-tours-api/internal/forms"
	"github.com/sanparkangkor/sanpark-tours-api/internal/models"
	"github.com/stretchr/testify/mock"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// MockBookingSubmitter is a mock implementation of services.BookingSubmitter
type MockBookingSubmitter struct {
	mock.Mock
}

func (m *MockBookingSubmitter) SubmitBooking(ctx context.Context, payload forms.Payload) (*models.SubmissionResponse, error) {
	args := m.Called(ctx, payload)
	if resp := args.Get(0); resp != nil {
		return resp.(*models.SubmissionResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

// MockContactSubmitter is a mock implementation of services.ContactSubmitter
type MockContactSubmitter struct {
	mock.Mock
}

func (m *MockContactSubmitter) SubmitContact(ctx context.Context, payload forms.Payload) (*models.SubmissionResponse, error) {
	args := m.Called(ctx, payload)
	if resp := args.Get(0); resp != nil {
		return resp.(*models.SubmissionResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

// MockTourProvider is a mock implementation of services.TourProvider
type MockTourProvider struct {
	mock.Mock
}

func (m *MockTourProvider) GetTours(ctx context.Context) (*models.ToursResponse, error) {
	args := m.Called(ctx)
	if resp := args.Get(0); resp != nil {
		return resp.(*models.ToursResponse), args.Error(1)
	}
	return nil, args.Error(1)
}
