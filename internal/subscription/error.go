package subscription

import "errors"

var (
	ErrNotFound     = errors.New("subscription not found")
	ErrInvalidEmail = errors.New("invalid email address")
	ErrInvalidZip   = errors.New("invalid zip code")
	ErrInvalidToken = errors.New("invalid unsubscribe token")
)
