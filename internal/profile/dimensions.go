package profile

import (
	"fmt"
	"sort"

	"ProfileScout/internal/domain"
	"ProfileScout/pkg/wordmatch"
)

// Baselines and factor bounds for the three dimensions.
const (
	dimensionMin = 0
	dimensionMax = 100

	convictionBaseline = 50
	intuitionBaseline  = 50

	manyTopicsCount      = 6
	manyTopicsPenalty    = -10
	singleTopicBonus     = 15
	dominanceRatio       = 3
	dominanceBonus       = 20
	lexicalStep          = 5
	lexicalCap           = 25
	repeatRateHigh       = 0.5
	repeatRateLow        = 0.15
	repeatRateHighBonus  = 15
	repeatRateLowPenalty = -10
	concentrationBonus   = 10
	spreadPenalty        = -10

	intuitionStep        = 5
	activityIntuitionCap = 15

	creationPointsPerHit   = 8
	creationCap            = 30
	engagementPointsPerHit = 6
	engagementCap          = 30
	evangelismPointsPerHit = 5
	evangelismCap          = 20
	governancePointsPerHit = 7
	governanceCap          = 20
)

// ScoreDimensions computes the three behavioral axes from the corpus.
// Pure function of its input: no I/O, no hidden state, so each dimension
// is independently unit-testable.
func ScoreDimensions(corpus domain.SignalCorpus) domain.DimensionScore {
	text := corpus.FullText()

	conviction, convictionWhy := scoreConviction(text, corpus.Activity)
	intuition, intuitionWhy := scoreIntuition(text, corpus.Activity)
	contribution, contributionWhy := scoreContribution(text, corpus.Activity)

	return domain.DimensionScore{
		Conviction:   conviction,
		Intuition:    intuition,
		Contribution: contribution,
		Rationale: domain.DimensionRationale{
			Conviction:   convictionWhy,
			Intuition:    intuitionWhy,
			Contribution: contributionWhy,
		},
	}
}

// scoreConviction starts at the midpoint and applies independent additive
// factors: topic concentration, topic dominance, the exploration-vs-
// commitment lexical net, and (when present) activity concentration.
func scoreConviction(text string, activity *domain.ActivitySignals) (int, string) {
	score := convictionBaseline
	why := "balanced topic spread"

	topicScores := make([]int, 0, len(categoryOrder))
	for _, category := range categoryOrder {
		if hits := wordmatch.Total(text, categoryKeywords[category]); hits > 0 {
			topicScores = append(topicScores, hits)
		}
	}
	sort.Sort(sort.Reverse(sort.IntSlice(topicScores)))

	switch {
	case len(topicScores) >= manyTopicsCount:
		score += manyTopicsPenalty
		why = fmt.Sprintf("attention spread across %d topics", len(topicScores))
	case len(topicScores) <= 1:
		score += singleTopicBonus
		why = "attention concentrated on a single topic"
	}

	if len(topicScores) >= 2 && topicScores[1] > 0 && topicScores[0] >= dominanceRatio*topicScores[1] {
		score += dominanceBonus
		why = "one topic dominates the conversation"
	}

	explore := wordmatch.Total(text, explorationWords)
	commit := wordmatch.Total(text, commitmentWords)
	if net := commit - explore; net != 0 {
		adj := clamp(net*lexicalStep, -lexicalCap, lexicalCap)
		score += adj
		if abs(adj) >= lexicalCap {
			if net > 0 {
				why = "strongly commitment-oriented vocabulary"
			} else {
				why = "strongly exploration-oriented vocabulary"
			}
		}
	}

	if activity != nil && activity.Interactions > 0 {
		repeatRate := float64(activity.RepeatInteractions) / float64(activity.Interactions)
		switch {
		case repeatRate >= repeatRateHigh:
			score += repeatRateHighBonus
			why = "high repeat-interaction rate in activity log"
		case repeatRate <= repeatRateLow:
			score += repeatRateLowPenalty
		}

		if activity.UniqueEntities > 0 {
			perEntity := float64(activity.Interactions) / float64(activity.UniqueEntities)
			if perEntity >= 4 {
				score += concentrationBonus
			} else if activity.UniqueEntities >= 10 {
				score += spreadPenalty
			}
		}
	}

	return clamp(score, dimensionMin, dimensionMax), why
}

// scoreIntuition weighs vision vocabulary against analysis vocabulary,
// then lets structured early/mature markers shift the result.
func scoreIntuition(text string, activity *domain.ActivitySignals) (int, string) {
	score := intuitionBaseline
	why := "no strong lean between vision and analysis"

	vision := wordmatch.Total(text, visionWords)
	analysis := wordmatch.Total(text, analysisWords)
	if net := vision - analysis; net != 0 {
		score += net * intuitionStep
		if net > 0 {
			why = fmt.Sprintf("vision vocabulary outweighs analysis by %d hits", net)
		} else {
			why = fmt.Sprintf("analysis vocabulary outweighs vision by %d hits", -net)
		}
	}

	if activity != nil {
		shift := clamp(intuitionStep*(activity.EarlyMarkers-activity.MatureMarkers),
			-activityIntuitionCap, activityIntuitionCap)
		score += shift
		if shift >= activityIntuitionCap {
			why = "activity concentrated in early-stage entities"
		} else if shift <= -activityIntuitionCap {
			why = "activity concentrated in established entities"
		}
	}

	return clamp(score, dimensionMin, dimensionMax), why
}

// scoreContribution is additive only: zero baseline, capped points per
// evidence category, final clamp at 100.
func scoreContribution(text string, activity *domain.ActivitySignals) (int, string) {
	creation := min(wordmatch.Total(text, creationWords)*creationPointsPerHit, creationCap)
	engagement := min(wordmatch.Total(text, engagementWords)*engagementPointsPerHit, engagementCap)
	evangelism := min(wordmatch.Total(text, evangelismWords)*evangelismPointsPerHit, evangelismCap)

	governance := 0
	if activity != nil {
		governance = min(activity.GovernanceActions*governancePointsPerHit, governanceCap)
	}

	score := creation + engagement + evangelism + governance

	why := "little visible contribution activity"
	switch maxOf(creation, engagement, evangelism, governance) {
	case 0:
	case creation:
		why = "creates and publishes content"
	case engagement:
		why = "active in community discussions"
	case evangelism:
		why = "brings others in through recommendations"
	case governance:
		why = "participates in collective governance"
	}

	return clamp(score, dimensionMin, dimensionMax), why
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func maxOf(values ...int) int {
	m := values[0]
	for _, v := range values[1:] {
		if v > m {
			m = v
		}
	}
	return m
}
