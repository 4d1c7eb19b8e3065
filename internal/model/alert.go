package model

import "time"

// Alert is one active weather alert, reduced to the fields this service
// reads. Fetched fresh per run; no identity is tracked across runs.
type Alert struct {
	Event       string     `json:"event"`
	Headline    string     `json:"headline"`
	Description string     `json:"description"`
	Severity    string     `json:"severity"`
	Effective   time.Time  `json:"effective"`
	Expires     *time.Time `json:"expires,omitempty"`
}
