package recommend

import (
	"context"
	"time"

	"github.com/sony/gobreaker"

	"ProfileScout/internal/domain"
	"ProfileScout/internal/ports"
)

// BreakerSettings tune the per-source circuit breaker.
type BreakerSettings struct {
	MaxFailures uint32
	OpenTimeout time.Duration
}

// DefaultBreakerSettings trip after three consecutive failures and probe
// again after thirty seconds.
func DefaultBreakerSettings() BreakerSettings {
	return BreakerSettings{MaxFailures: 3, OpenTimeout: 30 * time.Second}
}

// breakerSource wraps a ContentSource so a provider that keeps failing is
// rejected cheaply instead of burning its timeout on every request. An
// open circuit surfaces as a fetch error, which the aggregator already
// treats as an empty result.
type breakerSource struct {
	inner   ports.ContentSource
	breaker *gobreaker.CircuitBreaker
}

var _ ports.ContentSource = (*breakerSource)(nil)

// WithBreaker wraps src with a circuit breaker.
func WithBreaker(src ports.ContentSource, settings BreakerSettings) ports.ContentSource {
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:    src.Name(),
		Timeout: settings.OpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= settings.MaxFailures
		},
	})
	return &breakerSource{inner: src, breaker: cb}
}

func (b *breakerSource) Name() string {
	return b.inner.Name()
}

func (b *breakerSource) Fetch(ctx context.Context, categories []domain.Category) ([]domain.CandidateItem, error) {
	result, err := b.breaker.Execute(func() (interface{}, error) {
		return b.inner.Fetch(ctx, categories)
	})
	if err != nil {
		return nil, err
	}
	return result.([]domain.CandidateItem), nil
}
