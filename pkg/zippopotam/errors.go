package zippopotam

import "errors"

var (
	// ErrLookupFailed covers network errors, non-200 responses, and malformed
	// payloads. Callers treat all of them as "no location available".
	ErrLookupFailed = errors.New("zippopotam: lookup failed")
)
