package digest

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// Run processes every active subscription once: lookup, render, send,
	// throttle. One subscriber's failure never aborts the batch; only a
	// failure to list the subscriptions does.
	Run(ctx context.Context) (RunOutput, error)
}
