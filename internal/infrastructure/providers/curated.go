package providers

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"ProfileScout/internal/domain"
	"ProfileScout/internal/ports"
	"ProfileScout/internal/source"
)

// CuratedSource serves a hand-maintained YAML catalog. Entries may carry
// category labels; when hints are given, only entries matching a hinted
// category (or carrying none) are returned.
type CuratedSource struct {
	name   string
	path   string
	logger *slog.Logger
}

var _ ports.ContentSource = (*CuratedSource)(nil)

type catalogEntry struct {
	URL         string   `yaml:"url"`
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Tags        []string `yaml:"tags"`
	Categories  []string `yaml:"categories"`
	Popularity  int      `yaml:"popularity"`
	Score       float64  `yaml:"score"`
}

// NewCuratedSource builds the adapter. Required option: "path".
func NewCuratedSource(spec source.Spec, logger *slog.Logger) (ports.ContentSource, error) {
	path := spec.Options["path"]
	if path == "" {
		return nil, fmt.Errorf("curated provider %s: option path is required", spec.Name)
	}

	return &CuratedSource{name: spec.Name, path: path, logger: logger}, nil
}

// Name identifies the source in logs and on fetched items.
func (c *CuratedSource) Name() string {
	return c.name
}

// Fetch reads the catalog on every call so edits show up without a
// restart. The file is small; caching would only hide staleness.
func (c *CuratedSource) Fetch(_ context.Context, categories []domain.Category) ([]domain.CandidateItem, error) {
	raw, err := os.ReadFile(c.path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}

	var entries []catalogEntry
	if err := yaml.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}

	hinted := map[string]bool{}
	for _, category := range categories {
		hinted[string(category)] = true
	}

	var items []domain.CandidateItem
	for _, entry := range entries {
		if entry.URL == "" || !matchesHints(entry, hinted) {
			continue
		}
		items = append(items, domain.CandidateItem{
			CanonicalID: entry.URL,
			Title:       entry.Title,
			Description: entry.Description,
			Tags:        entry.Tags,
			Popularity:  entry.Popularity,
			RawScore:    entry.Score,
		})
	}

	c.debug("catalog loaded", "path", c.path, "entries", len(entries), "matched", len(items))
	return items, nil
}

func matchesHints(entry catalogEntry, hinted map[string]bool) bool {
	if len(hinted) == 0 || len(entry.Categories) == 0 {
		return true
	}
	for _, category := range entry.Categories {
		if hinted[category] {
			return true
		}
	}
	return false
}

func (c *CuratedSource) debug(msg string, args ...interface{}) {
	if c.logger != nil {
		c.logger.Debug(msg, args...)
	}
}
