package hrmsclient

import (
	"context"
	"sync"
	"time"
)

// Common refresh cadences.
const (
	DashboardInterval = 30 * time.Second
	QRRefreshInterval = 4 * time.Minute
	CountdownInterval = time.Second
)

// Poller runs independent fixed-interval refresh loops. Each loop has
// its own ticker; stopping the poller tears all of them down and waits
// for in-flight ticks to return.
type Poller struct {
	mu      sync.Mutex
	cancels []context.CancelFunc
	wg      sync.WaitGroup
	stopped bool
}

func NewPoller() *Poller {
	return &Poller{}
}

// Every schedules fn on a fixed interval. fn runs once immediately,
// then on every tick until Stop.
func (p *Poller) Every(interval time.Duration, fn func(ctx context.Context)) {
	p.mu.Lock()
	if p.stopped {
		p.mu.Unlock()
		return
	}
	ctx, cancel := context.WithCancel(context.Background())
	p.cancels = append(p.cancels, cancel)
	p.wg.Add(1)
	p.mu.Unlock()

	go func() {
		defer p.wg.Done()
		fn(ctx)

		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				fn(ctx)
			}
		}
	}()
}

// Stop cancels every loop and blocks until they exit. Safe to call
// more than once.
func (p *Poller) Stop() {
	p.mu.Lock()
	p.stopped = true
	cancels := p.cancels
	p.cancels = nil
	p.mu.Unlock()

	for _, cancel := range cancels {
		cancel()
	}
	p.wg.Wait()
}
