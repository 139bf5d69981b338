package domain

import "strings"

// CandidateItem is a piece of content fetched from one of the registered
// sources. Immutable once fetched; the same item may arrive from several
// sources and is reconciled by CanonicalID.
type CandidateItem struct {
	CanonicalID    string
	Title          string
	Description    string
	Tags           []string
	Popularity     int
	SourceName     string
	RawScore       float64
	SourcePriority int
}

// SearchableText joins the fields a keyword scan should see.
func (c CandidateItem) SearchableText() string {
	parts := []string{c.Title, c.Description}
	parts = append(parts, c.Tags...)
	return strings.Join(parts, " ")
}

// CanonicalizeID normalizes an item identifier (typically a URL) so the
// same item is recognized across sources: lower-cased, surrounding
// whitespace and trailing slashes removed.
func CanonicalizeID(raw string) string {
	id := strings.ToLower(strings.TrimSpace(raw))
	return strings.TrimRight(id, "/")
}

// RankedRecommendation is a candidate scored against a profile and assigned
// to one of the profile's category buckets. Built fresh per request.
type RankedRecommendation struct {
	Item          CandidateItem
	MatchScore    int
	CategoryGroup Category
	Reason        string
}
