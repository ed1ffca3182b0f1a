package hrmsclient

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPollerRunsImmediatelyAndOnTicks(t *testing.T) {
	poller := NewPoller()
	defer poller.Stop()

	var runs atomic.Int64
	poller.Every(10*time.Millisecond, func(ctx context.Context) {
		runs.Add(1)
	})

	assert.Eventually(t, func() bool { return runs.Load() >= 3 }, time.Second, 5*time.Millisecond)
}

func TestPollerStopTearsDownAllLoops(t *testing.T) {
	poller := NewPoller()

	var a, b atomic.Int64
	poller.Every(5*time.Millisecond, func(ctx context.Context) { a.Add(1) })
	poller.Every(5*time.Millisecond, func(ctx context.Context) { b.Add(1) })

	assert.Eventually(t, func() bool { return a.Load() >= 2 && b.Load() >= 2 }, time.Second, time.Millisecond)

	poller.Stop()
	aAfter, bAfter := a.Load(), b.Load()
	time.Sleep(30 * time.Millisecond)

	assert.Equal(t, aAfter, a.Load())
	assert.Equal(t, bAfter, b.Load())
}

func TestPollerEveryAfterStopIsNoop(t *testing.T) {
	poller := NewPoller()
	poller.Stop()

	var runs atomic.Int64
	poller.Every(time.Millisecond, func(ctx context.Context) { runs.Add(1) })

	time.Sleep(20 * time.Millisecond)
	assert.Zero(t, runs.Load())
}
