package providers

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"ProfileScout/internal/domain"
	"ProfileScout/internal/ports"
	"ProfileScout/internal/source"
)

// AwesomeSource scrapes a curated "awesome list" style HTML page: every
// list entry with a link becomes a candidate, with the link text as title
// and the remaining entry text as description.
type AwesomeSource struct {
	name    string
	pageURL string
	client  *http.Client
	logger  *slog.Logger
}

var _ ports.ContentSource = (*AwesomeSource)(nil)

// NewAwesomeSource builds the adapter. Required option: "url".
func NewAwesomeSource(spec source.Spec, logger *slog.Logger) (ports.ContentSource, error) {
	pageURL := spec.Options["url"]
	if pageURL == "" {
		return nil, fmt.Errorf("awesome provider %s: option url is required", spec.Name)
	}

	return &AwesomeSource{
		name:    spec.Name,
		pageURL: pageURL,
		client:  &http.Client{Timeout: 20 * time.Second},
		logger:  logger,
	}, nil
}

// Name identifies the source in logs and on fetched items.
func (a *AwesomeSource) Name() string {
	return a.name
}

// Fetch downloads and parses the list page. Category hints are not used:
// the whole list is returned and relevance is decided by the ranker.
func (a *AwesomeSource) Fetch(ctx context.Context, _ []domain.Category) ([]domain.CandidateItem, error) {
	doc, err := a.fetchDocument(ctx)
	if err != nil {
		return nil, err
	}

	var items []domain.CandidateItem
	doc.Find("ul li").Each(func(_ int, li *goquery.Selection) {
		link := li.Find("a").First()
		href, ok := link.Attr("href")
		if !ok || !strings.HasPrefix(href, "http") {
			return
		}

		title := strings.TrimSpace(link.Text())
		if title == "" {
			return
		}

		description := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(li.Text()), title))
		description = strings.TrimLeft(description, " -–—:")

		items = append(items, domain.CandidateItem{
			CanonicalID: href,
			Title:       title,
			Description: description,
		})
	})

	a.debug("awesome list parsed", "url", a.pageURL, "count", len(items))
	return items, nil
}

func (a *AwesomeSource) fetchDocument(ctx context.Context) (*goquery.Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, a.pageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", "ProfileScout/1.0")

	resp, err := a.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request document: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("list page returned %s", resp.Status)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parse document: %w", err)
	}

	return doc, nil
}

func (a *AwesomeSource) debug(msg string, args ...interface{}) {
	if a.logger != nil {
		a.logger.Debug(msg, args...)
	}
}
