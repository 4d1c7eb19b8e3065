package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWait_BlocksForExactlyOneInterval(t *testing.T) {
	fc := clockwork.NewFakeClock()
	gate := NewFixedInterval(time.Second, fc)

	done := make(chan error, 1)
	go func() {
		done <- gate.Wait(context.Background())
	}()

	fc.BlockUntil(1)

	// Just short of the interval: still blocked.
	fc.Advance(999 * time.Millisecond)
	select {
	case <-done:
		t.Fatal("Wait returned before the interval elapsed")
	case <-time.After(10 * time.Millisecond):
	}

	fc.Advance(time.Millisecond)
	require.NoError(t, <-done)
}

func TestWait_EveryCallBlocksAgain(t *testing.T) {
	fc := clockwork.NewFakeClock()
	gate := NewFixedInterval(time.Second, fc)
	start := fc.Now()

	done := make(chan struct{})
	go func() {
		for i := 0; i < 3; i++ {
			_ = gate.Wait(context.Background())
		}
		close(done)
	}()

	for i := 0; i < 3; i++ {
		fc.BlockUntil(1)
		fc.Advance(time.Second)
	}
	<-done

	assert.Equal(t, 3*time.Second, fc.Now().Sub(start))
}

func TestWait_CanceledContext(t *testing.T) {
	fc := clockwork.NewFakeClock()
	gate := NewFixedInterval(time.Second, fc)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- gate.Wait(ctx)
	}()

	fc.BlockUntil(1)
	cancel()
	assert.ErrorIs(t, <-done, context.Canceled)
}

func TestWait_ZeroIntervalNeverBlocks(t *testing.T) {
	gate := NewFixedInterval(0, clockwork.NewFakeClock())
	require.NoError(t, gate.Wait(context.Background()))
}
