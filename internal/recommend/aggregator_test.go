package recommend

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ProfileScout/internal/domain"
	"ProfileScout/internal/ports"
)

type stubSource struct {
	name  string
	items []domain.CandidateItem
	err   error
	delay time.Duration
}

var _ ports.ContentSource = (*stubSource)(nil)

func (s *stubSource) Name() string { return s.name }

func (s *stubSource) Fetch(ctx context.Context, _ []domain.Category) ([]domain.CandidateItem, error) {
	if s.delay > 0 {
		select {
		case <-time.After(s.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	return s.items, s.err
}

func item(id string) domain.CandidateItem {
	return domain.CandidateItem{CanonicalID: id, Title: id}
}

func TestAggregatorMergesAllSources(t *testing.T) {
	t.Parallel()

	agg := NewAggregator([]ports.ContentSource{
		&stubSource{name: "alpha", items: []domain.CandidateItem{item("https://a/1"), item("https://a/2")}},
		&stubSource{name: "beta", items: []domain.CandidateItem{item("https://b/1")}},
	}, time.Second, nil)

	items := agg.Fetch(context.Background(), []domain.Category{domain.CategoryTechnology})
	require.Len(t, items, 3)

	// Source identity and priority follow registration order.
	assert.Equal(t, "alpha", items[0].SourceName)
	assert.Equal(t, 0, items[0].SourcePriority)
	assert.Equal(t, "beta", items[2].SourceName)
	assert.Equal(t, 1, items[2].SourcePriority)
}

func TestAggregatorToleratesSourceFailure(t *testing.T) {
	t.Parallel()

	agg := NewAggregator([]ports.ContentSource{
		&stubSource{name: "broken", err: errors.New("upstream exploded")},
		&stubSource{name: "healthy", items: []domain.CandidateItem{item("https://ok/1")}},
	}, time.Second, nil)

	items := agg.Fetch(context.Background(), nil)
	require.Len(t, items, 1)
	assert.Equal(t, "healthy", items[0].SourceName)
}

func TestAggregatorSourceTimeoutDoesNotAbortOthers(t *testing.T) {
	t.Parallel()

	agg := NewAggregator([]ports.ContentSource{
		&stubSource{name: "slow", delay: 500 * time.Millisecond, items: []domain.CandidateItem{item("https://slow/1")}},
		&stubSource{name: "fast", items: []domain.CandidateItem{item("https://fast/1")}},
	}, 50*time.Millisecond, nil)

	items := agg.Fetch(context.Background(), nil)
	require.Len(t, items, 1)
	assert.Equal(t, "fast", items[0].SourceName)
}

func TestAggregatorWaitsForSlowButValidSource(t *testing.T) {
	t.Parallel()

	agg := NewAggregator([]ports.ContentSource{
		&stubSource{name: "slow", delay: 100 * time.Millisecond, items: []domain.CandidateItem{item("https://slow/1")}},
		&stubSource{name: "fast", items: []domain.CandidateItem{item("https://fast/1")}},
	}, time.Second, nil)

	items := agg.Fetch(context.Background(), nil)
	assert.Len(t, items, 2)
}

func TestBreakerOpensAfterConsecutiveFailures(t *testing.T) {
	t.Parallel()

	failing := &stubSource{name: "flaky", err: errors.New("boom")}
	wrapped := WithBreaker(failing, BreakerSettings{MaxFailures: 2, OpenTimeout: time.Minute})

	ctx := context.Background()
	for i := 0; i < 2; i++ {
		_, err := wrapped.Fetch(ctx, nil)
		require.Error(t, err)
	}

	// Circuit is now open: the inner source is not consulted anymore.
	failing.err = nil
	failing.items = []domain.CandidateItem{item("https://late/1")}
	_, err := wrapped.Fetch(ctx, nil)
	assert.Error(t, err)
}

func TestBreakerPassesThroughSuccess(t *testing.T) {
	t.Parallel()

	healthy := &stubSource{name: "ok", items: []domain.CandidateItem{item("https://ok/1")}}
	wrapped := WithBreaker(healthy, DefaultBreakerSettings())

	items, err := wrapped.Fetch(context.Background(), nil)
	require.NoError(t, err)
	assert.Len(t, items, 1)
	assert.Equal(t, "ok", wrapped.Name())
}
