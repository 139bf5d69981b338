package recommend

import (
	"log/slog"

	"ProfileScout/internal/domain"
)

// Dedupe merges the aggregated pool by canonical identity. When two items
// collide the one with the higher raw score survives; on an exact tie the
// lower source priority wins, then first-seen. The losing duplicate is
// discarded whole, never merged field by field. Items without a canonical
// identity cannot be deduplicated or bucketed and are dropped; the dropped
// count is logged but never fails the request. Idempotent: Dedupe(Dedupe(x))
// equals Dedupe(x).
func Dedupe(items []domain.CandidateItem, logger *slog.Logger) []domain.CandidateItem {
	byID := make(map[string]int, len(items))
	out := make([]domain.CandidateItem, 0, len(items))
	dropped := 0

	for _, item := range items {
		id := domain.CanonicalizeID(item.CanonicalID)
		if id == "" {
			dropped++
			continue
		}
		item.CanonicalID = id

		idx, seen := byID[id]
		if !seen {
			byID[id] = len(out)
			out = append(out, item)
			continue
		}

		if wins(item, out[idx]) {
			out[idx] = item
		}
	}

	if dropped > 0 && logger != nil {
		logger.Info("dropped malformed candidates", "count", dropped)
	}
	return out
}

// wins reports whether the challenger replaces the incumbent for the same
// canonical identity.
func wins(challenger, incumbent domain.CandidateItem) bool {
	if challenger.RawScore != incumbent.RawScore {
		return challenger.RawScore > incumbent.RawScore
	}
	return challenger.SourcePriority < incumbent.SourcePriority
}
