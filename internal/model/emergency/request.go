package emergency

import "time"

// Request is an emergency-contact submission. Name and Message are optional;
// Contact is required. IsResolved is flipped later by an operator, never by
// the submitting client.
type Request struct {
	ID         string    `json:"id"`
	Name       string    `json:"name,omitempty"`
	Contact    string    `json:"contact"`
	Message    string    `json:"message,omitempty"`
	IsResolved bool      `json:"isResolved"`
	CreatedAt  time.Time `json:"createdAt"`
}
