package message

import "time"

// Message represents a single contact-form submission.
type Message struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email,omitempty"`
	Body      string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}
