package services

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sanparkangkor/sanpark-tours-api/internal/forms"
	"github.com/sanparkangkor/sanpark-tours-api/internal/mailer"
	"github.com/sanparkangkor/sanpark-tours-api/internal/models"
	"github.com/sanparkangkor/sanpark-tours-api/pkg/logger"
	"github.com/sanparkangkor/sanpark-tours-api/pkg/tracing"
	"go.uber.org/zap"
)

// errorMissingFields is the fixed client-error text for failed validation.
const errorMissingFields = "Missing required fields"

// formSpec parameterizes the shared submission pipeline per endpoint: which
// fields are mandatory, which counter tracks outcomes, and how a validated
// payload becomes the customer/business envelope pair plus the success body.
type formSpec struct {
	kind     string
	required []string
	metric   *prometheus.CounterVec
	build    func(p forms.Payload) (customer, business mailer.Envelope, result *models.SubmissionResponse, err error)
}

// submit runs validation, envelope construction, and the dual-email dispatch.
//
// Validation failures are returned as a value, not an error: they are client
// errors, detected before any side effect, and carry the missing field names.
// Rendering and dispatch failures are returned as errors for the handler to
// map to a server-error response. There is no retry and no partial-success
// reporting.
func submit(ctx context.Context, dispatcher PairSender, payload forms.Payload, spec formSpec) (*models.SubmissionResponse, error) {
	ctx, span := tracing.StartSpan(ctx, "services.submit."+spec.kind)
	defer span.End()

	if missing := forms.MissingFields(payload, spec.required); len(missing) > 0 {
		spec.metric.WithLabelValues("validation_failed").Inc()
		logger.Debug("Form submission rejected",
			zap.String("form", spec.kind),
			zap.Strings("missing", missing))
		return &models.SubmissionResponse{
			Success:  false,
			Error:    errorMissingFields,
			Required: missing,
		}, nil
	}

	customer, business, result, err := spec.build(payload)
	if err != nil {
		spec.metric.WithLabelValues("error").Inc()
		logger.Error("Failed to render notification emails",
			zap.String("form", spec.kind),
			zap.Error(err))
		return nil, err
	}

	if err := dispatcher.SendPair(ctx, customer, business); err != nil {
		spec.metric.WithLabelValues("send_failed").Inc()
		return nil, err
	}

	spec.metric.WithLabelValues("success").Inc()
	return result, nil
}
