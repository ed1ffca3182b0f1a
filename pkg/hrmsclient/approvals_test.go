package hrmsclient

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBulkApproverAllSucceed(t *testing.T) {
	var calls atomic.Int64
	approver := NewBulkApprover(func(ctx context.Context, id string) error {
		calls.Add(1)
		return nil
	})

	outcome := approver.Run(context.Background(), []string{"a", "b", "c"})

	assert.Equal(t, 3, outcome.Succeeded)
	assert.Equal(t, 0, outcome.Failed)
	assert.Nil(t, outcome.Errors)
	assert.Equal(t, int64(3), calls.Load())
}

func TestBulkApproverFailureDoesNotShortCircuit(t *testing.T) {
	var calls atomic.Int64
	approver := NewBulkApprover(func(ctx context.Context, id string) error {
		calls.Add(1)
		if id == "bad" {
			return errors.New("already processed")
		}
		return nil
	})

	outcome := approver.Run(context.Background(), []string{"a", "bad", "c", "d"})

	assert.Equal(t, 3, outcome.Succeeded)
	assert.Equal(t, 1, outcome.Failed)
	assert.Contains(t, outcome.Errors, "bad")
	assert.Equal(t, int64(4), calls.Load(), "every item must settle")
}

func TestBulkApproverBoundedConcurrency(t *testing.T) {
	var mu sync.Mutex
	inFlight, peak := 0, 0

	block := make(chan struct{})
	approver := NewBulkApprover(func(ctx context.Context, id string) error {
		mu.Lock()
		inFlight++
		if inFlight > peak {
			peak = inFlight
		}
		mu.Unlock()

		<-block

		mu.Lock()
		inFlight--
		mu.Unlock()
		return nil
	})

	done := make(chan BulkOutcome)
	ids := make([]string, 40)
	for i := range ids {
		ids[i] = string(rune('a' + i%26))
	}
	go func() { done <- approver.Run(context.Background(), ids) }()

	close(block)
	outcome := <-done

	assert.Equal(t, 40, outcome.Succeeded)
	assert.LessOrEqual(t, peak, bulkApproveLimit)
}

func TestBulkApproverEmpty(t *testing.T) {
	approver := NewBulkApprover(func(ctx context.Context, id string) error { return nil })
	outcome := approver.Run(context.Background(), nil)
	assert.Equal(t, 0, outcome.Succeeded)
	assert.Equal(t, 0, outcome.Failed)
}
