package services

import (
	"context"

	"github.com/sanparkangkor/sanpark-tours-api/config"
	"github.com/sanparkangkor/sanpark-tours-api/internal/forms"
	"github.com/sanparkangkor/sanpark-tours-api/internal/mailer"
	"github.com/sanparkangkor/sanpark-tours-api/internal/models"
	"github.com/sanparkangkor/sanpark-tours-api/internal/templates"
	"github.com/sanparkangkor/sanpark-tours-api/pkg/bookingid"
	"github.com/sanparkangkor/sanpark-tours-api/pkg/metrics"
)

// BookingService handles tour booking form submissions.
type BookingService struct {
	dispatcher PairSender
	renderer   *templates.Renderer
	config     *config.Config
}

// NewBookingService creates a new booking service instance
func NewBookingService(dispatcher PairSender, renderer *templates.Renderer, cfg *config.Config) *BookingService {
	return &BookingService{
		dispatcher: dispatcher,
		renderer:   renderer,
		config:     cfg,
	}
}

// SubmitBooking validates the payload, assigns a booking reference, and sends
// the confirmation/lead email pair. Nothing is persisted; the booking exists
// only in the two emails and the response.
func (s *BookingService) SubmitBooking(ctx context.Context, payload forms.Payload) (*models.SubmissionResponse, error) {
	return submit(ctx, s.dispatcher, payload, formSpec{
		kind:     "booking",
		required: models.BookingRequiredFields,
		metric:   metrics.BookingSubmissions,
		build:    s.buildEnvelopes,
	})
}

func (s *BookingService) buildEnvelopes(p forms.Payload) (mailer.Envelope, mailer.Envelope, *models.SubmissionResponse, error) {
	id := bookingid.New()

	customerHTML, err := s.renderer.BookingCustomer(p, id)
	if err != nil {
		return mailer.Envelope{}, mailer.Envelope{}, nil, err
	}
	businessHTML, err := s.renderer.BookingBusiness(p, id)
	if err != nil {
		return mailer.Envelope{}, mailer.Envelope{}, nil, err
	}

	from := s.config.Mail.Username
	customer := mailer.Envelope{
		From:     from,
		To:       p.Str("email"),
		Subject:  templates.BookingCustomerSubject(id),
		HTMLBody: customerHTML,
	}
	business := mailer.Envelope{
		From:     from,
		To:       s.config.Mail.BusinessEmail,
		Subject:  templates.BookingBusinessSubject(id),
		HTMLBody: businessHTML,
	}

	result := &models.SubmissionResponse{
		Success:   true,
		Message:   "Booking submitted successfully",
		BookingID: id,
		Data:      p.Pick(models.BookingEchoFields...),
	}

	return customer, business, result, nil
}
