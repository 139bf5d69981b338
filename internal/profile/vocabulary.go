package profile

import "ProfileScout/internal/domain"

// Keyword tables are data, not code branches: scoring logic never names a
// concrete category or archetype, it only walks these maps.

// categoryOrder fixes iteration order so tie-breaking is deterministic.
var categoryOrder = []domain.Category{
	domain.CategoryTechnology,
	domain.CategoryFinance,
	domain.CategoryGaming,
	domain.CategoryArt,
	domain.CategoryMusic,
	domain.CategoryWellness,
	domain.CategoryScience,
	domain.CategorySports,
	domain.CategoryTravel,
	domain.CategoryFood,
}

var categoryKeywords = map[domain.Category][]string{
	domain.CategoryTechnology: {
		"software", "programming", "code", "developer", "hardware",
		"startup", "app", "api", "open source", "automation", "cloud", "ai",
	},
	domain.CategoryFinance: {
		"invest", "trading", "market", "portfolio", "stock", "crypto",
		"token", "yield", "savings", "budget", "asset",
	},
	domain.CategoryGaming: {
		"game", "gaming", "esports", "console", "multiplayer", "quest",
		"rpg", "speedrun", "streamer", "guild",
	},
	domain.CategoryArt: {
		"art", "painting", "design", "illustration", "gallery", "sketch",
		"sculpture", "creative", "exhibition", "drawing",
	},
	domain.CategoryMusic: {
		"music", "song", "album", "concert", "playlist", "vinyl",
		"producer", "band", "dj", "melody", "festival",
	},
	domain.CategoryWellness: {
		"meditation", "yoga", "mindfulness", "sleep", "wellness",
		"breathing", "therapy", "fitness", "nutrition", "self-care", "gym",
	},
	domain.CategoryScience: {
		"research", "physics", "biology", "chemistry", "experiment",
		"astronomy", "neuroscience", "paper", "hypothesis", "lab",
	},
	domain.CategorySports: {
		"football", "basketball", "tennis", "running", "marathon",
		"cycling", "league", "match", "training", "championship",
	},
	domain.CategoryTravel: {
		"travel", "trip", "flight", "backpacking", "destination",
		"hiking", "abroad", "itinerary", "hostel", "passport",
	},
	domain.CategoryFood: {
		"cooking", "recipe", "restaurant", "baking", "cuisine",
		"coffee", "wine", "ingredient", "chef", "fermentation",
	},
}

var archetypeKeywords = map[domain.Archetype][]string{
	domain.ArchetypeVisionary: {
		"future", "vision", "paradigm", "revolutionary", "transform",
		"frontier", "breakthrough", "ambitious",
	},
	domain.ArchetypeExplorer: {
		"discover", "experiment", "curious", "novel", "variety",
		"adventure", "emerging", "alternative",
	},
	domain.ArchetypeOptimizer: {
		"efficient", "optimize", "metrics", "proven", "reliable",
		"process", "refine", "practical",
	},
	domain.ArchetypeInnovator: {
		"build", "prototype", "tinker", "invent", "hack",
		"workshop", "craft", "diy",
	},
	domain.ArchetypeCultivator: {
		"community", "share", "mentor", "teach", "contribute",
		"collaborate", "volunteer", "organize",
	},
}

// Lexical tables feeding the dimension scorer.
var (
	explorationWords = []string{
		"curious", "experiment", "variety", "explore", "dabble",
		"new things", "try out", "browse",
	}
	commitmentWords = []string{
		"focused", "dedicated", "specialize", "committed", "deep dive",
		"long term", "mastery", "discipline",
	}

	visionWords = []string{
		"future", "believe", "paradigm", "imagine", "potential",
		"someday", "disrupt", "dream",
	}
	analysisWords = []string{
		"data", "metrics", "roi", "evidence", "benchmark",
		"statistics", "measured", "track record",
	}

	creationWords = []string{
		"wrote", "created", "published", "recorded", "launched",
		"blog", "newsletter", "video",
	}
	engagementWords = []string{
		"community", "meetup", "discussion", "forum", "replied",
		"moderat", "hosted", "event",
	}
	evangelismWords = []string{
		"recommend", "shared", "invited", "told my friends",
		"spread the word", "referral", "introduced",
	}
)

// Candidate-side signal tables used by the ranker.
var (
	earlyStageWords = []string{
		"beta", "experimental", "early access", "alpha", "preview",
		"prototype", "upcoming",
	}
	establishedWords = []string{
		"established", "trusted", "official", "stable", "popular",
		"classic", "standard",
	}
	communityWords = []string{
		"community", "collaborative", "open source", "group",
		"together", "contributors", "shared",
	}
)

// CategoryKeywords exposes the keyword list for one category. The returned
// slice must not be mutated.
func CategoryKeywords(c domain.Category) []string {
	return categoryKeywords[c]
}

// ArchetypeKeywords exposes the keyword list for one archetype.
func ArchetypeKeywords(a domain.Archetype) []string {
	return archetypeKeywords[a]
}

// EarlyStageKeywords marks candidates as early or experimental.
func EarlyStageKeywords() []string { return earlyStageWords }

// EstablishedKeywords marks candidates as mature or mainstream.
func EstablishedKeywords() []string { return establishedWords }

// CommunityKeywords marks candidates carrying collaborative signals.
func CommunityKeywords() []string { return communityWords }
