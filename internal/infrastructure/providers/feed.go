package providers

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/mmcdole/gofeed"

	"ProfileScout/internal/domain"
	"ProfileScout/internal/ports"
	"ProfileScout/internal/source"
)

// FeedSource pulls candidates from RSS/Atom feeds.
type FeedSource struct {
	name   string
	feeds  []string
	parser *gofeed.Parser
	logger *slog.Logger
}

var _ ports.ContentSource = (*FeedSource)(nil)

// NewFeedSource builds the adapter. Required option: "feeds", a
// comma-separated list of feed URLs.
func NewFeedSource(spec source.Spec, logger *slog.Logger) (ports.ContentSource, error) {
	raw := spec.Options["feeds"]
	if raw == "" {
		return nil, fmt.Errorf("feed provider %s: option feeds is required", spec.Name)
	}

	var feeds []string
	for _, feedURL := range strings.Split(raw, ",") {
		if feedURL = strings.TrimSpace(feedURL); feedURL != "" {
			feeds = append(feeds, feedURL)
		}
	}

	return &FeedSource{
		name:   spec.Name,
		feeds:  feeds,
		parser: gofeed.NewParser(),
		logger: logger,
	}, nil
}

// Name identifies the source in logs and on fetched items.
func (f *FeedSource) Name() string {
	return f.name
}

// Fetch parses every configured feed and flattens the entries. A single
// unreadable feed fails the whole source; the aggregator treats that as
// an empty result anyway.
func (f *FeedSource) Fetch(ctx context.Context, _ []domain.Category) ([]domain.CandidateItem, error) {
	var items []domain.CandidateItem
	for _, feedURL := range f.feeds {
		feed, err := f.parser.ParseURLWithContext(feedURL, ctx)
		if err != nil {
			return nil, fmt.Errorf("parse feed %s: %w", feedURL, err)
		}

		for _, entry := range feed.Items {
			if entry.Link == "" {
				continue
			}
			items = append(items, domain.CandidateItem{
				CanonicalID: entry.Link,
				Title:       entry.Title,
				Description: entry.Description,
				Tags:        entry.Categories,
			})
		}
		f.debug("feed parsed", "url", feedURL, "entries", len(feed.Items))
	}
	return items, nil
}

func (f *FeedSource) debug(msg string, args ...interface{}) {
	if f.logger != nil {
		f.logger.Debug(msg, args...)
	}
}
