package mailer

import (
	"context"
	"errors"
	"time"

	"github.com/sanparkangkor/sanpark-tours-api/pkg/logger"
	"github.com/sanparkangkor/sanpark-tours-api/pkg/metrics"
	"github.com/sanparkangkor/sanpark-tours-api/pkg/tracing"
	"go.uber.org/zap"
)

// ErrDispatchFailed is returned when any send of a pair fails. The caller only
// ever sees this generic failure; per-recipient outcomes are logged and counted
// but never surfaced.
var ErrDispatchFailed = errors.New("failed to send notification emails")

// Dispatcher fans the customer/business envelope pair out over the transport.
type Dispatcher struct {
	sender Sender
}

// NewDispatcher creates a dispatcher over the given transport.
func NewDispatcher(sender Sender) *Dispatcher {
	return &Dispatcher{sender: sender}
}

// SendPair submits both envelopes concurrently and joins. The pair is
// all-or-nothing: if either send fails the whole dispatch is reported as
// failed, even though the other email may already have been delivered. There
// is no retry and no compensating action.
func (d *Dispatcher) SendPair(ctx context.Context, customer, business Envelope) error {
	ctx, span := tracing.StartSpan(ctx, "mailer.SendPair")
	defer span.End()

	results := make(chan error, 2)

	go func() { results <- d.send(ctx, "customer", customer) }()
	go func() { results <- d.send(ctx, "business", business) }()

	var failed bool
	for i := 0; i < 2; i++ {
		if err := <-results; err != nil {
			failed = true
		}
	}

	if failed {
		return ErrDispatchFailed
	}
	return nil
}

func (d *Dispatcher) send(ctx context.Context, recipientKind string, env Envelope) error {
	start := time.Now()
	err := d.sender.Send(ctx, env)
	duration := metrics.MeasureDuration(start)

	status := "success"
	if err != nil {
		status = "error"
		logger.Error("Email send failed",
			zap.String("recipient_kind", recipientKind),
			zap.String("subject", env.Subject),
			zap.Error(err))
	}

	metrics.EmailSendDuration.WithLabelValues(recipientKind, status).Observe(duration)
	metrics.EmailSendTotal.WithLabelValues(recipientKind, status).Inc()

	return err
}
