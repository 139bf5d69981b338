package profile

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"ProfileScout/internal/domain"
)

func TestClassifyQuadrants(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name       string
		conviction int
		intuition  int
		want       domain.Archetype
	}{
		{"high conviction high intuition", 80, 75, domain.ArchetypeVisionary},
		{"low conviction high intuition", 30, 75, domain.ArchetypeExplorer},
		{"high conviction low intuition", 80, 20, domain.ArchetypeOptimizer},
		{"low conviction low intuition", 30, 20, domain.ArchetypeInnovator},
		{"midpoint counts as high", 50, 50, domain.ArchetypeVisionary},
		{"just below midpoint", 49, 49, domain.ArchetypeInnovator},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			ds := domain.DimensionScore{
				Conviction:   tc.conviction,
				Intuition:    tc.intuition,
				Contribution: 20,
			}
			assert.Equal(t, tc.want, Classify(ds))
		})
	}
}

func TestClassifyCultivatorOverride(t *testing.T) {
	t.Parallel()

	// Contribution above the cutoff wins regardless of the other axes.
	for _, conviction := range []int{0, 49, 50, 100} {
		for _, intuition := range []int{0, 49, 50, 100} {
			ds := domain.DimensionScore{
				Conviction:   conviction,
				Intuition:    intuition,
				Contribution: ContributionOverride + 1,
			}
			assert.Equal(t, domain.ArchetypeCultivator, Classify(ds))
		}
	}

	// At exactly the cutoff the quadrant logic still applies.
	ds := domain.DimensionScore{Conviction: 80, Intuition: 75, Contribution: ContributionOverride}
	assert.Equal(t, domain.ArchetypeVisionary, Classify(ds))
}

func TestClassifyTotalAndDeterministic(t *testing.T) {
	t.Parallel()

	// Sweep the clamped input space on a coarse grid: every point must
	// classify, and classify the same way twice.
	valid := map[domain.Archetype]bool{
		domain.ArchetypeVisionary:  true,
		domain.ArchetypeExplorer:   true,
		domain.ArchetypeOptimizer:  true,
		domain.ArchetypeInnovator:  true,
		domain.ArchetypeCultivator: true,
	}

	for c := 0; c <= 100; c += 5 {
		for i := 0; i <= 100; i += 5 {
			for contrib := 0; contrib <= 100; contrib += 5 {
				ds := domain.DimensionScore{Conviction: c, Intuition: i, Contribution: contrib}
				first := Classify(ds)
				assert.True(t, valid[first], "unclassifiable input %+v", ds)
				assert.Equal(t, first, Classify(ds))
			}
		}
	}
}
