package mailer

import "errors"

var (
	errAPIKeyRequired = errors.New("mailer: API key is required")

	// ErrSendFailed covers network errors and non-2xx responses. The batch
	// runner counts it and moves on; no retry is attempted.
	ErrSendFailed = errors.New("mailer: send failed")
)
