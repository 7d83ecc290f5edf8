package models

// BookingRequiredFields lists the mandatory booking form fields, in the order
// they are reported back to the client when missing.
var BookingRequiredFields = []string{"name", "email", "phone", "tourType", "tourDate", "numberOfPeople"}

// BookingEchoFields is the subset of submitted values echoed back in a
// successful booking response.
var BookingEchoFields = []string{"name", "email", "tourType", "tourDate", "numberOfPeople"}

// SubmissionResponse is the wire shape shared by the booking and contact
// endpoints. Success responses carry Message (and BookingID/Data for bookings);
// validation failures carry Error plus the missing field names.
type SubmissionResponse struct {
	Success   bool           `json:"success"`
	Message   string         `json:"message,omitempty"`
	BookingID string         `json:"bookingId,omitempty"`
	Data      map[string]any `json:"data,omitempty"`
	Error     string         `json:"error,omitempty"`
	Required  []string       `json:"required,omitempty"`
}
