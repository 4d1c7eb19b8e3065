package nws

import "errors"

var (
	// ErrRequestFailed covers network errors and non-200 responses from the NWS API.
	ErrRequestFailed = errors.New("nws: request failed")
	// ErrNoZone means the points endpoint returned no forecast zone for the coordinates.
	ErrNoZone = errors.New("nws: no forecast zone for point")
)
