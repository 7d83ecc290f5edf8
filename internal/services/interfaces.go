package services

import (
	"context"

	"github.com/sanparkangkor/sanpark-tours-api/internal/forms"
	"github.com/sanparkangkor/sanpark-tours-api/internal/mailer"
	"github.com/sanparkangkor/sanpark-tours-api/internal/models"
)

// PairSender dispatches a customer/business envelope pair all-or-nothing.
// Satisfied by mailer.Dispatcher.
type PairSender interface {
	SendPair(ctx context.Context, customer, business mailer.Envelope) error
}

// BookingSubmitter is the booking service surface consumed by handlers.
type BookingSubmitter interface {
	SubmitBooking(ctx context.Context, payload forms.Payload) (*models.SubmissionResponse, error)
}

// ContactSubmitter is the contact service surface consumed by handlers.
type ContactSubmitter interface {
	SubmitContact(ctx context.Context, payload forms.Payload) (*models.SubmissionResponse, error)
}

// TourProvider is the catalog service surface consumed by handlers.
type TourProvider interface {
	GetTours(ctx context.Context) (*models.ToursResponse, error)
}
