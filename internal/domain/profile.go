package domain

// SegmentSource tags where a piece of evidence came from.
type SegmentSource string

const (
	SourceConversation  SegmentSource = "conversation"
	SourceSocialProfile SegmentSource = "social_profile"
	SourceStructured    SegmentSource = "structured"
)

// Segment is one typed fragment of evidence text.
type Segment struct {
	Source SegmentSource
	Text   string
	Weight float64
}

// ActivitySignals are optional structured counters extracted from a
// person's activity log by upstream collectors.
type ActivitySignals struct {
	Interactions       int
	RepeatInteractions int
	UniqueEntities     int
	EarlyMarkers       int
	MatureMarkers      int
	GovernanceActions  int
}

// SignalCorpus is the merged, tagged evidence for one request. It is built
// once, never mutated afterwards, and discarded when scoring completes.
type SignalCorpus struct {
	Segments     []Segment
	MessageCount int
	Activity     *ActivitySignals
}

// FullText concatenates all segment text for keyword scanning.
func (c SignalCorpus) FullText() string {
	var out string
	for _, seg := range c.Segments {
		if out != "" {
			out += "\n"
		}
		out += seg.Text
	}
	return out
}

// HasActivity reports whether structured activity signals are present.
func (c SignalCorpus) HasActivity() bool {
	return c.Activity != nil
}

// Category is one entry of the fixed topic vocabulary.
type Category string

const (
	CategoryTechnology Category = "technology"
	CategoryFinance    Category = "finance"
	CategoryGaming     Category = "gaming"
	CategoryArt        Category = "art"
	CategoryMusic      Category = "music"
	CategoryWellness   Category = "wellness"
	CategoryScience    Category = "science"
	CategorySports     Category = "sports"
	CategoryTravel     Category = "travel"
	CategoryFood       Category = "food"
)

// CategoryTag is a scored topic label attached to a profile.
type CategoryTag struct {
	Label Category
	Score int
}

// DimensionRationale explains which factor dominated each dimension score.
type DimensionRationale struct {
	Conviction   string
	Intuition    string
	Contribution string
}

// DimensionScore holds the three behavioral axes, each clamped to [0,100].
type DimensionScore struct {
	Conviction   int
	Intuition    int
	Contribution int
	Rationale    DimensionRationale
}

// Archetype is one of five fixed behavioral classes.
type Archetype string

const (
	ArchetypeVisionary  Archetype = "visionary"
	ArchetypeExplorer   Archetype = "explorer"
	ArchetypeOptimizer  Archetype = "optimizer"
	ArchetypeInnovator  Archetype = "innovator"
	ArchetypeCultivator Archetype = "cultivator"
)

// Profile is the terminal artifact of profile building: ranked categories,
// dimension scores, and the derived archetype.
type Profile struct {
	Categories []CategoryTag
	Dimensions DimensionScore
	Archetype  Archetype
}

// PrimaryCategory returns the highest-ranked category label. Profiles are
// never categoryless, so callers may rely on a usable value.
func (p Profile) PrimaryCategory() Category {
	if len(p.Categories) == 0 {
		return CategoryTechnology
	}
	return p.Categories[0].Label
}

// CategoryLabels lists the profile categories in rank order.
func (p Profile) CategoryLabels() []Category {
	labels := make([]Category, 0, len(p.Categories))
	for _, tag := range p.Categories {
		labels = append(labels, tag.Label)
	}
	return labels
}
