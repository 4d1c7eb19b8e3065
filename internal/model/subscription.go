package model

import "time"

// Subscription represents one email address watching one ZIP code.
// A subscription is never physically deleted; unsubscribing flips Active off
// and a repeat subscribe reactivates the same row.
type Subscription struct {
	ID         string     `json:"id"`
	Email      string     `json:"email"`
	ZipCode    string     `json:"zip_code"`
	Active     bool       `json:"active"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
	LastSentAt *time.Time `json:"last_sent_at,omitempty"`
}
