package repository

import (
	"time"

	"frostwatch-srv/internal/model"
)

// CreateOptions contains options for creating a subscription.
type CreateOptions struct {
	Subscription model.Subscription
}

// UpdateOptions contains options for updating a subscription.
// Only non-nil fields are applied.
type UpdateOptions struct {
	ID         string
	ZipCode    *string
	Active     *bool
	LastSentAt *time.Time
}
