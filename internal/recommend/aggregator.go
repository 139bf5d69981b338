package recommend

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"ProfileScout/internal/domain"
	"ProfileScout/internal/ports"
)

// Aggregator queries every registered content source concurrently and
// merges whatever arrived. A failing source degrades to an empty result
// for that source only: a thinner recommendation pool beats a failed
// request.
type Aggregator struct {
	sources       []ports.ContentSource
	sourceTimeout time.Duration
	logger        *slog.Logger
}

// NewAggregator wires the configured sources. sourceTimeout bounds each
// individual fetch, not the whole fan-out.
func NewAggregator(sources []ports.ContentSource, sourceTimeout time.Duration, logger *slog.Logger) *Aggregator {
	return &Aggregator{
		sources:       sources,
		sourceTimeout: sourceTimeout,
		logger:        logger,
	}
}

type fetchResult struct {
	items []domain.CandidateItem
	err   error
}

// Fetch fans out to all sources and waits for every one to settle. There
// is no early return on first completion: skipping a slow-but-valid source
// would silently bias results toward one provider. Errors are captured per
// slot, logged, and never propagated. Cancelling ctx cancels in-flight
// fetches cooperatively; results already settled remain usable.
func (a *Aggregator) Fetch(ctx context.Context, categories []domain.Category) []domain.CandidateItem {
	results := make([]fetchResult, len(a.sources))

	var wg sync.WaitGroup
	for i, src := range a.sources {
		wg.Add(1)
		go func(slot int, src ports.ContentSource) {
			defer wg.Done()

			fetchCtx, cancel := context.WithTimeout(ctx, a.sourceTimeout)
			defer cancel()

			items, err := src.Fetch(fetchCtx, categories)
			results[slot] = fetchResult{items: items, err: err}
		}(i, src)
	}
	wg.Wait()

	var merged []domain.CandidateItem
	for i, res := range results {
		src := a.sources[i]
		if res.err != nil {
			a.debug("source fetch failed", "source", src.Name(), "error", res.err)
			continue
		}

		for _, item := range res.items {
			if item.SourceName == "" {
				item.SourceName = src.Name()
			}
			item.SourcePriority = i
			merged = append(merged, item)
		}
		a.debug("source settled", "source", src.Name(), "count", len(res.items))
	}

	a.debug("aggregation done", "sources", len(a.sources), "total_items", len(merged))
	return merged
}

func (a *Aggregator) debug(msg string, args ...interface{}) {
	if a.logger != nil {
		a.logger.Debug(msg, args...)
	}
}
