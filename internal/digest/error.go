package digest

import "errors"

var (
	// ErrListSubscriptions means the run could not fetch the active
	// subscription list and was aborted before processing anyone.
	ErrListSubscriptions = errors.New("listing active subscriptions failed")
)
