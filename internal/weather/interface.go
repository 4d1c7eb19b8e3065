package weather

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// Lookup resolves a ZIP code to its location and the active frost/freeze
	// alerts for its forecast zone. Upstream failures (geocoding, NWS) are
	// logged and degrade to an empty report with a nil Location; the returned
	// error is reserved for context cancellation.
	Lookup(ctx context.Context, zip string) (Report, error)
}
