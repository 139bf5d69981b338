package recommend

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ProfileScout/internal/domain"
)

func wellnessItem(n int, extra string) domain.CandidateItem {
	return domain.CandidateItem{
		CanonicalID: fmt.Sprintf("https://wellness/%d", n),
		Title:       "meditation yoga mindfulness " + extra,
	}
}

func TestBucketCeiling(t *testing.T) {
	t.Parallel()

	prof := wellnessProfile()

	var items []domain.CandidateItem
	for i := 0; i < 12; i++ {
		items = append(items, wellnessItem(i, "sleep wellness future vision paradigm"))
	}

	recs := Bucket(items, prof, DefaultBucketConfig())

	counts := map[domain.Category]int{}
	for _, rec := range recs {
		counts[rec.CategoryGroup]++
	}
	assert.Equal(t, 7, counts[domain.CategoryWellness])
}

func TestBucketFloorPadsWithLowScoringItems(t *testing.T) {
	t.Parallel()

	prof := wellnessProfile()
	cfg := DefaultBucketConfig()

	// Items that barely overlap: scores land below the threshold, but the
	// bucket still fills to the floor instead of coming back empty.
	items := []domain.CandidateItem{
		{CanonicalID: "https://w/1", Title: "gym"},
		{CanonicalID: "https://w/2", Title: "gym"},
		{CanonicalID: "https://w/3", Title: "gym"},
		{CanonicalID: "https://w/4", Title: "gym"},
	}

	recs := Bucket(items, prof, cfg)
	require.Len(t, recs, cfg.MinPerBucket)
}

func TestBucketNeverInventsItems(t *testing.T) {
	t.Parallel()

	prof := wellnessProfile()

	items := []domain.CandidateItem{{CanonicalID: "https://w/1", Title: "yoga"}}

	recs := Bucket(items, prof, DefaultBucketConfig())
	assert.Len(t, recs, 1)
}

func TestBucketSortedByScoreWithinBucket(t *testing.T) {
	t.Parallel()

	prof := wellnessProfile()

	items := []domain.CandidateItem{
		{CanonicalID: "https://w/low", Title: "gym"},
		{CanonicalID: "https://w/high", Title: "meditation yoga mindfulness sleep wellness"},
		{CanonicalID: "https://w/mid", Title: "yoga sleep"},
	}

	recs := Bucket(items, prof, DefaultBucketConfig())
	require.NotEmpty(t, recs)
	for i := 1; i < len(recs); i++ {
		if recs[i].CategoryGroup == recs[i-1].CategoryGroup {
			assert.LessOrEqual(t, recs[i].MatchScore, recs[i-1].MatchScore)
		}
	}
}

func TestBucketAssignsEveryItemSomewhere(t *testing.T) {
	t.Parallel()

	prof := wellnessProfile()

	// No overlap with any profile category: lands in the primary bucket.
	items := []domain.CandidateItem{
		{CanonicalID: "https://none/1", Title: "quarterly report"},
	}

	recs := Bucket(items, prof, DefaultBucketConfig())
	require.Len(t, recs, 1)
	assert.Equal(t, domain.CategoryWellness, recs[0].CategoryGroup)
}

func TestBucketGroupsByStrongestOverlap(t *testing.T) {
	t.Parallel()

	prof := wellnessProfile()

	items := []domain.CandidateItem{
		{CanonicalID: "https://food/1", Title: "sourdough recipe and fermentation cooking notes"},
		{CanonicalID: "https://well/1", Title: "meditation and mindfulness"},
	}

	recs := Bucket(items, prof, DefaultBucketConfig())
	require.Len(t, recs, 2)

	groups := map[string]domain.Category{}
	for _, rec := range recs {
		groups[rec.Item.CanonicalID] = rec.CategoryGroup
	}
	assert.Equal(t, domain.CategoryFood, groups["https://food/1"])
	assert.Equal(t, domain.CategoryWellness, groups["https://well/1"])
}
