package usecase

import (
	"context"

	"ProfileScout/internal/ports"
)

// Scheduler wires the ticker driver with the digest job.
type Scheduler struct {
	driver ports.Scheduler
	job    *DigestJob
}

// NewScheduler returns a helper to start/stop the recurring digest.
func NewScheduler(driver ports.Scheduler, job *DigestJob) *Scheduler {
	return &Scheduler{driver: driver, job: job}
}

// Start registers the digest job with the provided scheduler.
func (s *Scheduler) Start(ctx context.Context) error {
	if s.driver == nil || s.job == nil {
		return nil
	}

	return s.driver.Start(ctx, func() {
		if err := s.job.Run(ctx); err != nil && s.job.logger != nil {
			s.job.logger.Warn("digest cycle failed", "error", err)
		}
	})
}

// Stop gracefully tears down the underlying scheduler.
func (s *Scheduler) Stop(ctx context.Context) error {
	if s.driver == nil {
		return nil
	}

	return s.driver.Stop(ctx)
}
