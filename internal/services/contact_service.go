package services

import (
	"context"

	"github.com/sanparkangkor/sanpark-tours-api/config"
	"github.com/sanparkangkor/sanpark-tours-api/internal/forms"
	"github.com/sanparkangkor/sanpark-tours-api/internal/mailer"
	"github.com/sanparkangkor/sanpark-tours-api/internal/models"
	"github.com/sanparkangkor/sanpark-tours-api/internal/templates"
	"github.com/sanparkangkor/sanpark-tours-api/pkg/metrics"
)

// ContactService handles general inquiry form submissions.
type ContactService struct {
	dispatcher PairSender
	renderer   *templates.Renderer
	config     *config.Config
}

// NewContactService creates a new contact service instance
func NewContactService(dispatcher PairSender, renderer *templates.Renderer, cfg *config.Config) *ContactService {
	return &ContactService{
		dispatcher: dispatcher,
		renderer:   renderer,
		config:     cfg,
	}
}

// SubmitContact validates the payload and sends the inquiry/auto-reply email
// pair.
func (s *ContactService) SubmitContact(ctx context.Context, payload forms.Payload) (*models.SubmissionResponse, error) {
	return submit(ctx, s.dispatcher, payload, formSpec{
		kind:     "contact",
		required: models.ContactRequiredFields,
		metric:   metrics.ContactSubmissions,
		build:    s.buildEnvelopes,
	})
}

func (s *ContactService) buildEnvelopes(p forms.Payload) (mailer.Envelope, mailer.Envelope, *models.SubmissionResponse, error) {
	customerHTML, err := s.renderer.ContactCustomer(p)
	if err != nil {
		return mailer.Envelope{}, mailer.Envelope{}, nil, err
	}
	businessHTML, err := s.renderer.ContactBusiness(p)
	if err != nil {
		return mailer.Envelope{}, mailer.Envelope{}, nil, err
	}

	from := s.config.Mail.Username
	customer := mailer.Envelope{
		From:     from,
		To:       p.Str("email"),
		Subject:  templates.ContactCustomerSubject(s.config.Contact.BusinessName),
		HTMLBody: customerHTML,
	}
	business := mailer.Envelope{
		From:     from,
		To:       s.config.Mail.BusinessEmail,
		Subject:  templates.ContactBusinessSubject(p.Str("subject")),
		HTMLBody: businessHTML,
	}

	result := &models.SubmissionResponse{
		Success: true,
		Message: "Message sent successfully",
	}

	return customer, business, result, nil
}
