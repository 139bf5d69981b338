package profile

import (
	"sort"

	"ProfileScout/internal/domain"
	"ProfileScout/pkg/wordmatch"
)

const maxCategoryTags = 3

// DetectCategories scores the fixed vocabulary against the corpus and
// returns at most three tags sorted descending by score, each at or above
// minScore. A single passing mention is never enough to label someone: the
// accumulated score, not keyword presence, decides. If nothing qualifies
// exactly one fallback tag (the highest-scoring) is returned, so a profile
// is never categoryless.
func DetectCategories(corpus domain.SignalCorpus, minScore int) []domain.CategoryTag {
	text := corpus.FullText()

	scored := make([]domain.CategoryTag, 0, len(categoryOrder))
	for _, category := range categoryOrder {
		scored = append(scored, domain.CategoryTag{
			Label: category,
			Score: wordmatch.Total(text, categoryKeywords[category]),
		})
	}

	// Stable sort keeps vocabulary declaration order on equal scores.
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	qualifying := make([]domain.CategoryTag, 0, maxCategoryTags)
	for _, tag := range scored {
		if tag.Score >= minScore {
			qualifying = append(qualifying, tag)
		}
		if len(qualifying) == maxCategoryTags {
			break
		}
	}

	if len(qualifying) == 0 {
		return []domain.CategoryTag{scored[0]}
	}
	return qualifying
}
