package profile

import "ProfileScout/internal/domain"

// Thresholds for archetype classification. The contribution override is
// checked first and supersedes the quadrant test entirely.
const (
	// ContributionOverride is the single canonical cutoff above which a
	// person classifies as cultivator regardless of the other axes.
	ContributionOverride = 55

	quadrantMidpoint = 50
)

// Classify maps a dimension score to one of the five archetypes. Total
// and deterministic over the whole clamped input space: every combination
// classifies, the same input always yields the same archetype.
func Classify(ds domain.DimensionScore) domain.Archetype {
	if ds.Contribution > ContributionOverride {
		return domain.ArchetypeCultivator
	}

	highConviction := ds.Conviction >= quadrantMidpoint
	highIntuition := ds.Intuition >= quadrantMidpoint

	switch {
	case highConviction && highIntuition:
		return domain.ArchetypeVisionary
	case !highConviction && highIntuition:
		return domain.ArchetypeExplorer
	case highConviction && !highIntuition:
		return domain.ArchetypeOptimizer
	default:
		return domain.ArchetypeInnovator
	}
}
