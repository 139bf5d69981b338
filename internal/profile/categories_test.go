package profile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ProfileScout/internal/domain"
)

func corpusFromText(text string) domain.SignalCorpus {
	return domain.SignalCorpus{
		Segments: []domain.Segment{
			{Source: domain.SourceConversation, Text: text, Weight: 1.0},
		},
		MessageCount: 3,
	}
}

func TestDetectCategoriesWellnessOnly(t *testing.T) {
	t.Parallel()

	corpus := corpusFromText("I practice meditation and yoga, value mindfulness, and track my sleep.")

	tags := DetectCategories(corpus, 3)
	require.Len(t, tags, 1)
	assert.Equal(t, domain.CategoryWellness, tags[0].Label)
	assert.GreaterOrEqual(t, tags[0].Score, 4)
}

func TestDetectCategoriesSortedAndCapped(t *testing.T) {
	t.Parallel()

	corpus := corpusFromText(`
		software code developer api cloud startup
		invest trading market portfolio
		music song album
		painting gallery art design
	`)

	tags := DetectCategories(corpus, 3)
	require.Len(t, tags, 3)
	assert.Equal(t, domain.CategoryTechnology, tags[0].Label)
	for i := 1; i < len(tags); i++ {
		assert.LessOrEqual(t, tags[i].Score, tags[i-1].Score)
	}
	for _, tag := range tags {
		assert.GreaterOrEqual(t, tag.Score, 3)
	}
}

func TestDetectCategoriesFallback(t *testing.T) {
	t.Parallel()

	// A single incidental mention never qualifies, but the profile must
	// not end up categoryless either.
	corpus := corpusFromText("went for coffee yesterday")

	tags := DetectCategories(corpus, 3)
	require.Len(t, tags, 1)
	assert.Equal(t, domain.CategoryFood, tags[0].Label)
	assert.Less(t, tags[0].Score, 3)
}

func TestDetectCategoriesNeverBelowThresholdUnlessFallback(t *testing.T) {
	t.Parallel()

	// Two wellness hits plus four tech hits: only technology qualifies.
	corpus := corpusFromText("yoga and meditation, but mostly software, code, api design, cloud automation")

	tags := DetectCategories(corpus, 3)
	require.NotEmpty(t, tags)
	for _, tag := range tags {
		assert.GreaterOrEqual(t, tag.Score, 3, "tag %s below threshold", tag.Label)
	}
}
