package scheduler

import (
	"context"
	"time"

	"ProfileScout/internal/ports"
)

// TickerScheduler runs a job immediately and then on a fixed interval.
type TickerScheduler struct {
	interval time.Duration
	stop     chan struct{}
}

var _ ports.Scheduler = (*TickerScheduler)(nil)

// NewTickerScheduler builds a scheduler with the given cadence.
func NewTickerScheduler(interval time.Duration) *TickerScheduler {
	return &TickerScheduler{interval: interval}
}

// Start begins ticking. Calling Start twice is a no-op.
func (t *TickerScheduler) Start(ctx context.Context, job func()) error {
	if job == nil {
		return nil
	}

	if t.stop != nil {
		return nil
	}

	// The goroutine reads a local copy so Stop can nil the field without
	// racing the select below.
	stop := make(chan struct{})
	t.stop = stop
	go func() {
		ticker := time.NewTicker(t.interval)
		defer ticker.Stop()
		job()
		for {
			select {
			case <-ticker.C:
				job()
			case <-ctx.Done():
				return
			case <-stop:
				return
			}
		}
	}()

	return nil
}

// Stop halts the ticker goroutine.
func (t *TickerScheduler) Stop(ctx context.Context) error {
	if t.stop == nil {
		return nil
	}
	close(t.stop)
	t.stop = nil
	return nil
}
