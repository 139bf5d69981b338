package recommend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ProfileScout/internal/domain"
)

func TestDedupeKeepsHigherScore(t *testing.T) {
	t.Parallel()

	items := []domain.CandidateItem{
		{CanonicalID: "https://example.com/repo", RawScore: 40, SourceName: "alpha"},
		{CanonicalID: "https://example.com/repo/", RawScore: 65, SourceName: "beta"},
	}

	out := Dedupe(items, nil)
	require.Len(t, out, 1)
	assert.Equal(t, 65.0, out[0].RawScore)
	assert.Equal(t, "beta", out[0].SourceName)
}

func TestDedupeNormalizesIdentity(t *testing.T) {
	t.Parallel()

	items := []domain.CandidateItem{
		{CanonicalID: "HTTPS://Example.com/Item/", RawScore: 1},
		{CanonicalID: "https://example.com/item", RawScore: 1},
	}

	out := Dedupe(items, nil)
	require.Len(t, out, 1)
	assert.Equal(t, "https://example.com/item", out[0].CanonicalID)
}

func TestDedupeTieBreaksBySourcePriority(t *testing.T) {
	t.Parallel()

	items := []domain.CandidateItem{
		{CanonicalID: "https://example.com/x", RawScore: 10, SourcePriority: 2, SourceName: "later"},
		{CanonicalID: "https://example.com/x", RawScore: 10, SourcePriority: 0, SourceName: "earlier"},
	}

	out := Dedupe(items, nil)
	require.Len(t, out, 1)
	assert.Equal(t, "earlier", out[0].SourceName)
}

func TestDedupeDropsMalformed(t *testing.T) {
	t.Parallel()

	items := []domain.CandidateItem{
		{CanonicalID: "", Title: "no identity"},
		{CanonicalID: "   ", Title: "blank identity"},
		{CanonicalID: "https://example.com/ok", Title: "fine"},
	}

	out := Dedupe(items, nil)
	require.Len(t, out, 1)
	assert.Equal(t, "fine", out[0].Title)
}

func TestDedupeIdempotent(t *testing.T) {
	t.Parallel()

	items := []domain.CandidateItem{
		{CanonicalID: "https://a/1", RawScore: 3},
		{CanonicalID: "https://a/1", RawScore: 9},
		{CanonicalID: "https://b/2", RawScore: 1},
	}

	once := Dedupe(items, nil)
	twice := Dedupe(once, nil)
	assert.Equal(t, once, twice)
}
