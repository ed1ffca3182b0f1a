package hrmsclient

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"
)

const bulkApproveLimit = 10

// BulkOutcome is the per-item result of a bulk approval run.
type BulkOutcome struct {
	Succeeded int
	Failed    int
	Errors    map[string]error
}

// BulkApprover fans out per-item decision calls with bounded
// concurrency. Every item settles: one failure never cancels the
// remaining calls.
type BulkApprover struct {
	decide func(ctx context.Context, id string) error
}

// NewBulkApprover wraps a single-item decision call. The same approver
// works for attendance records and leave applications.
func NewBulkApprover(decide func(ctx context.Context, id string) error) *BulkApprover {
	return &BulkApprover{decide: decide}
}

func (b *BulkApprover) Run(ctx context.Context, ids []string) BulkOutcome {
	outcome := BulkOutcome{}
	if len(ids) == 0 {
		return outcome
	}

	var mu sync.Mutex
	g := &errgroup.Group{}
	g.SetLimit(bulkApproveLimit)

	for _, id := range ids {
		id := id
		g.Go(func() error {
			err := b.decide(ctx, id)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				outcome.Failed++
				if outcome.Errors == nil {
					outcome.Errors = make(map[string]error)
				}
				outcome.Errors[id] = err
			} else {
				outcome.Succeeded++
			}
			return nil
		})
	}

	_ = g.Wait()
	return outcome
}
