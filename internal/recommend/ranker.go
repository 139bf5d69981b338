package recommend

import (
	"fmt"

	"ProfileScout/internal/domain"
	"ProfileScout/internal/profile"
	"ProfileScout/pkg/wordmatch"
)

// Component caps for the match score. The composition mirrors category
// detection: accumulated evidence scores, quantity alone never dominates.
const (
	overlapCap   = 40
	affinityCap  = 15
	structureCap = 15

	highDimension  = 65
	lowDimension   = 35
	lowPopularity  = 100
	highPopularity = 1000
)

// overlapWeights give diminishing value to the 1st..4th matched profile
// category.
var overlapWeights = [...]int{18, 12, 7, 3}

// Rank scores one candidate against the profile and derives a reason from
// whichever component contributed most. The reason is cosmetic and never
// feeds back into the number.
func Rank(item domain.CandidateItem, prof domain.Profile) (int, string) {
	text := item.SearchableText()

	overlap, matchedCategory := categoryOverlap(text, prof)
	affinity := archetypeAffinity(text, prof.Archetype)
	structure := structuralBonus(item, text, prof)

	score := clampScore(overlap + affinity + structure)

	reason := fmt.Sprintf("matches your %s archetype", prof.Archetype)
	switch maxComponent(overlap, affinity, structure) {
	case overlap:
		if matchedCategory != "" {
			reason = fmt.Sprintf("strong overlap with your %s interest", matchedCategory)
		}
	case affinity:
		// keep archetype phrasing
	case structure:
		reason = "fits how you engage with new things"
	}

	return score, reason
}

// categoryOverlap counts profile categories whose keyword list intersects
// the candidate text, weighting earlier matches more. Returns the first
// matched label for reason text.
func categoryOverlap(text string, prof domain.Profile) (int, domain.Category) {
	points := 0
	var first domain.Category

	matches := 0
	for _, label := range prof.CategoryLabels() {
		if !wordmatch.Contains(text, profile.CategoryKeywords(label)) {
			continue
		}
		if matches < len(overlapWeights) {
			points += overlapWeights[matches]
		}
		if first == "" {
			first = label
		}
		matches++
	}

	if points > overlapCap {
		points = overlapCap
	}
	return points, first
}

// archetypeAffinity scores hits against the archetype keyword set with
// diminishing returns: the first three hits weigh most, the next three
// less, anything beyond barely.
func archetypeAffinity(text string, archetype domain.Archetype) int {
	hits := wordmatch.Total(text, profile.ArchetypeKeywords(archetype))

	points := 3 * minInt(hits, 3)
	if hits > 3 {
		points += 2 * minInt(hits-3, 3)
	}
	if hits > 6 {
		points += hits - 6
	}

	if points > affinityCap {
		points = affinityCap
	}
	return points
}

// structuralBonus rewards candidates whose shape fits the dimension
// profile: conviction steers exact vs novel category matches, intuition
// steers early vs established items, contribution rewards community
// signals.
func structuralBonus(item domain.CandidateItem, text string, prof domain.Profile) int {
	points := 0
	primary := prof.PrimaryCategory()
	primaryMatch := wordmatch.Contains(text, profile.CategoryKeywords(primary))

	switch {
	case prof.Dimensions.Conviction >= highDimension && primaryMatch:
		points += 6
	case prof.Dimensions.Conviction <= lowDimension && !primaryMatch:
		points += 6
	}

	early := wordmatch.Contains(text, profile.EarlyStageKeywords()) ||
		(item.Popularity > 0 && item.Popularity < lowPopularity)
	established := wordmatch.Contains(text, profile.EstablishedKeywords()) ||
		item.Popularity >= highPopularity

	switch {
	case prof.Dimensions.Intuition >= highDimension && early:
		points += 5
	case prof.Dimensions.Intuition <= lowDimension && established:
		points += 5
	}

	if prof.Dimensions.Contribution > profile.ContributionOverride &&
		wordmatch.Contains(text, profile.CommunityKeywords()) {
		points += 4
	}

	if points > structureCap {
		points = structureCap
	}
	return points
}

func clampScore(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

func maxComponent(values ...int) int {
	m := values[0]
	for _, v := range values[1:] {
		if v > m {
			m = v
		}
	}
	return m
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
