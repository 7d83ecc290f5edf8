// Package mailer delivers the booking and contact notification emails.
//
// The SMTP transport is constructed once at startup and reused for every
// request; the dispatcher fans a customer/business envelope pair out
// concurrently and reports all-or-nothing.
package mailer

import "context"

// Envelope is a fully rendered outbound message ready for dispatch.
type Envelope struct {
	From     string
	To       string
	Subject  string
	HTMLBody string
}

// Sender submits a single envelope to the mail transport.
type Sender interface {
	Send(ctx context.Context, env Envelope) error
}
