package recommend

import (
	"sort"

	"ProfileScout/internal/domain"
	"ProfileScout/internal/profile"
	"ProfileScout/pkg/wordmatch"
)

// BucketConfig carries the injectable bucket-sizing thresholds.
type BucketConfig struct {
	ScoreThreshold int
	MinPerBucket   int
	MaxPerBucket   int
}

// DefaultBucketConfig: include everything scoring at least 25 up to seven
// per bucket, but never fewer than three when the bucket has that many.
func DefaultBucketConfig() BucketConfig {
	return BucketConfig{ScoreThreshold: 25, MinPerBucket: 3, MaxPerBucket: 7}
}

type scoredItem struct {
	item   domain.CandidateItem
	score  int
	reason string
}

// Bucket assigns every ranked candidate to exactly one profile category
// (its highest keyword/tag overlap, defaulting to the primary category so
// no candidate is orphaned), then trims each bucket: sorted by match score
// descending, sized clamp(#items >= threshold, min, max). Lower-scoring
// items pad up to the floor; items are never invented.
func Bucket(items []domain.CandidateItem, prof domain.Profile, cfg BucketConfig) []domain.RankedRecommendation {
	buckets := make(map[domain.Category][]scoredItem, len(prof.Categories))

	for _, item := range items {
		score, reason := Rank(item, prof)
		label := assignCategory(item, prof)
		buckets[label] = append(buckets[label], scoredItem{item: item, score: score, reason: reason})
	}

	var out []domain.RankedRecommendation
	for _, label := range prof.CategoryLabels() {
		group := buckets[label]
		if len(group) == 0 {
			continue
		}

		sort.SliceStable(group, func(i, j int) bool {
			return group[i].score > group[j].score
		})

		take := bucketSize(group, cfg)
		for _, entry := range group[:take] {
			out = append(out, domain.RankedRecommendation{
				Item:          entry.item,
				MatchScore:    entry.score,
				CategoryGroup: label,
				Reason:        entry.reason,
			})
		}
	}
	return out
}

// assignCategory picks the profile category the candidate overlaps most.
func assignCategory(item domain.CandidateItem, prof domain.Profile) domain.Category {
	text := item.SearchableText()

	best := prof.PrimaryCategory()
	bestScore := 0
	for _, label := range prof.CategoryLabels() {
		if score := wordmatch.Total(text, profile.CategoryKeywords(label)); score > bestScore {
			best = label
			bestScore = score
		}
	}
	return best
}

func bucketSize(group []scoredItem, cfg BucketConfig) int {
	decent := 0
	for _, entry := range group {
		if entry.score >= cfg.ScoreThreshold {
			decent++
		}
	}

	size := decent
	if size < cfg.MinPerBucket {
		size = cfg.MinPerBucket
	}
	if size > cfg.MaxPerBucket {
		size = cfg.MaxPerBucket
	}
	if size > len(group) {
		size = len(group)
	}
	return size
}
