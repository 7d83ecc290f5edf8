package models

import "encoding/json"

// Tour is one catalog entry from the static tours resource.
type Tour struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	Duration    string  `json:"duration"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Image       string  `json:"image"`
	ImageKey    string  `json:"imageKey,omitempty"`
	Popularity  int     `json:"popularity"`
}

// ToursResponse is the catalog endpoint wire shape. Data is kept as raw JSON so
// the endpoint stays a pure passthrough of the resource file.
type ToursResponse struct {
	Success   bool            `json:"success"`
	Data      json.RawMessage `json:"data,omitempty"`
	Timestamp string          `json:"timestamp,omitempty"`
	Error     string          `json:"error,omitempty"`
	Message   string          `json:"message,omitempty"`
}
