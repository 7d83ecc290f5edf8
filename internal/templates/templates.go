// Package templates renders the notification emails for booking and contact
// submissions. All user-supplied values are HTML-escaped before interpolation;
// the contact message additionally keeps its line breaks as <br> tags.
package templates

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/sanparkangkor/sanpark-tours-api/config"
	"github.com/sanparkangkor/sanpark-tours-api/internal/forms"
)

var funcMap = template.FuncMap{
	"nl2br": nl2br,
}

// nl2br escapes the value and then converts newlines to <br>. Escaping happens
// first so a crafted message cannot smuggle markup past the conversion.
func nl2br(s string) template.HTML {
	escaped := template.HTMLEscapeString(s)
	escaped = strings.ReplaceAll(escaped, "\r\n", "\n")
	return template.HTML(strings.ReplaceAll(escaped, "\n", "<br>")) //nolint:gosec // input escaped above
}

var bookingCustomerTmpl = template.Must(template.New("booking_customer").Parse(`<h2>Booking Confirmation - {{.BusinessName}}</h2>
<p>Dear {{.Name}},</p>
<p>Thank you for booking with {{.BusinessName}}! Your booking has been received.</p>

<h3>Booking Details:</h3>
<ul>
  <li><strong>Booking ID:</strong> {{.BookingID}}</li>
  <li><strong>Tour Type:</strong> {{.TourType}}</li>
  <li><strong>Date:</strong> {{.TourDate}}</li>
  <li><strong>Number of People:</strong> {{.NumberOfPeople}}</li>
  <li><strong>Language:</strong> {{.Language}}</li>
  {{- if .SpecialRequests}}
  <li><strong>Special Requests:</strong> {{.SpecialRequests}}</li>
  {{- end}}
</ul>

<p>We will contact you within 24 hours to confirm your booking and provide payment details.</p>
<p>For immediate assistance, contact us on WhatsApp: {{.WhatsAppPhone}}</p>

<p>Best regards,<br>{{.BusinessName}} Team</p>
`))

var bookingBusinessTmpl = template.Must(template.New("booking_business").Parse(`<h2>New Booking Received</h2>
<h3>Customer Details:</h3>
<ul>
  <li><strong>Name:</strong> {{.Name}}</li>
  <li><strong>Email:</strong> {{.Email}}</li>
  <li><strong>Phone:</strong> {{.Phone}}</li>
</ul>

<h3>Booking Details:</h3>
<ul>
  <li><strong>Booking ID:</strong> {{.BookingID}}</li>
  <li><strong>Tour Type:</strong> {{.TourType}}</li>
  <li><strong>Date:</strong> {{.TourDate}}</li>
  <li><strong>Number of People:</strong> {{.NumberOfPeople}}</li>
  <li><strong>Language:</strong> {{.Language}}</li>
  {{- if .SpecialRequests}}
  <li><strong>Special Requests:</strong> {{.SpecialRequests}}</li>
  {{- end}}
</ul>

<p>Please contact the customer within 24 hours to confirm the booking.</p>
`))

var contactBusinessTmpl = template.Must(template.New("contact_business").Funcs(funcMap).Parse(`<h2>New Contact Form Submission</h2>
<h3>Contact Details:</h3>
<ul>
  <li><strong>Name:</strong> {{.Name}}</li>
  <li><strong>Email:</strong> {{.Email}}</li>
  {{- if .Phone}}
  <li><strong>Phone:</strong> {{.Phone}}</li>
  {{- end}}
  {{- if .Subject}}
  <li><strong>Subject:</strong> {{.Subject}}</li>
  {{- end}}
</ul>

<h3>Message:</h3>
<p>{{nl2br .Message}}</p>

<p>Received at: {{.ReceivedAt}}</p>
`))

var contactCustomerTmpl = template.Must(template.New("contact_customer").Funcs(funcMap).Parse(`<h2>Thank you for contacting {{.BusinessName}}</h2>
<p>Dear {{.Name}},</p>
<p>Thank you for reaching out to us. We have received your message and will get back to you within 24 hours.</p>

<h3>Your Message:</h3>
<p>{{nl2br .Message}}</p>

<p>For immediate assistance, you can also contact us on WhatsApp: {{.WhatsAppPhone}}</p>

<p>Best regards,<br>{{.BusinessName}} Team</p>
`))

// Renderer builds the four notification email bodies from validated payloads.
type Renderer struct {
	businessName  string
	whatsAppPhone string
	now           func() time.Time
}

// NewRenderer creates a renderer with the business contact details from config.
func NewRenderer(cfg config.ContactConfig) *Renderer {
	return &Renderer{
		businessName:  cfg.BusinessName,
		whatsAppPhone: cfg.WhatsAppPhone,
		now:           time.Now,
	}
}

type bookingEmailData struct {
	BusinessName    string
	BookingID       string
	Name            string
	Email           string
	Phone           string
	TourType        string
	TourDate        string
	NumberOfPeople  string
	Language        string
	SpecialRequests string
	WhatsAppPhone   string
}

type contactEmailData struct {
	BusinessName  string
	Name          string
	Email         string
	Phone         string
	Subject       string
	Message       string
	WhatsAppPhone string
	ReceivedAt    string
}

func (r *Renderer) bookingData(p forms.Payload, bookingID string) bookingEmailData {
	language := p.Str("preferredLanguage")
	if language == "" {
		language = "English"
	}

	return bookingEmailData{
		BusinessName:    r.businessName,
		BookingID:       bookingID,
		Name:            p.Str("name"),
		Email:           p.Str("email"),
		Phone:           p.Str("phone"),
		TourType:        p.Str("tourType"),
		TourDate:        displayDate(p.Str("tourDate")),
		NumberOfPeople:  p.Str("numberOfPeople"),
		Language:        language,
		SpecialRequests: p.Str("specialRequests"),
		WhatsAppPhone:   r.whatsAppPhone,
	}
}

func (r *Renderer) contactData(p forms.Payload) contactEmailData {
	return contactEmailData{
		BusinessName:  r.businessName,
		Name:          p.Str("name"),
		Email:         p.Str("email"),
		Phone:         p.Str("phone"),
		Subject:       p.Str("subject"),
		Message:       p.Str("message"),
		WhatsAppPhone: r.whatsAppPhone,
		ReceivedAt:    r.now().UTC().Format("Jan 2, 2006 15:04 MST"),
	}
}

// BookingCustomer renders the confirmation email sent to the customer.
func (r *Renderer) BookingCustomer(p forms.Payload, bookingID string) (string, error) {
	return execute(bookingCustomerTmpl, r.bookingData(p, bookingID))
}

// BookingBusiness renders the new-booking lead email sent to the business.
func (r *Renderer) BookingBusiness(p forms.Payload, bookingID string) (string, error) {
	return execute(bookingBusinessTmpl, r.bookingData(p, bookingID))
}

// ContactCustomer renders the auto-reply sent to the submitter.
func (r *Renderer) ContactCustomer(p forms.Payload) (string, error) {
	return execute(contactCustomerTmpl, r.contactData(p))
}

// ContactBusiness renders the inquiry email sent to the business.
func (r *Renderer) ContactBusiness(p forms.Payload) (string, error) {
	return execute(contactBusinessTmpl, r.contactData(p))
}

// BookingCustomerSubject is the subject line of the customer confirmation.
func BookingCustomerSubject(bookingID string) string {
	return "Booking Confirmation - " + bookingID
}

// BookingBusinessSubject is the subject line of the business lead email.
func BookingBusinessSubject(bookingID string) string {
	return "New Booking - " + bookingID
}

// ContactBusinessSubject is the subject line of the inquiry email.
func ContactBusinessSubject(subject string) string {
	if subject == "" {
		subject = "New Message"
	}
	return "Contact Form: " + subject
}

// ContactCustomerSubject is the subject line of the auto-reply.
func ContactCustomerSubject(businessName string) string {
	return "Thank you for contacting " + businessName
}

func execute(tmpl *template.Template, data any) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render %s: %w", tmpl.Name(), err)
	}
	return buf.String(), nil
}

var dateLayouts = []string{"2006-01-02", time.RFC3339, "01/02/2006"}

// displayDate formats the submitted tour date for the email. The date is
// display-only: on parse failure the raw string is shown unchanged.
func displayDate(raw string) string {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format("January 2, 2006")
		}
	}
	return raw
}
