// Package ratelimit provides the fixed-interval gate used to pace outbound
// email sends. The policy (one request per interval) lives here so the batch
// iteration logic never hard-codes a sleep.
package ratelimit

import (
	"context"
	"time"

	"github.com/jonboulle/clockwork"
)

// ILimiter blocks the caller according to the configured pacing policy.
type ILimiter interface {
	// Wait blocks for one full interval or until ctx is done.
	Wait(ctx context.Context) error
}

type fixedIntervalGate struct {
	interval time.Duration
	clock    clockwork.Clock
}

// NewFixedInterval returns a gate that blocks for exactly interval on every
// Wait call. Pass nil to use the real clock; tests inject a fake.
func NewFixedInterval(interval time.Duration, clock clockwork.Clock) ILimiter {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &fixedIntervalGate{
		interval: interval,
		clock:    clock,
	}
}

func (g *fixedIntervalGate) Wait(ctx context.Context) error {
	if g.interval <= 0 {
		return nil
	}
	select {
	case <-g.clock.After(g.interval):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
