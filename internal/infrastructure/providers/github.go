package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"ProfileScout/internal/domain"
	"ProfileScout/internal/ports"
	"ProfileScout/internal/profile"
	"ProfileScout/internal/source"
)

const (
	defaultGitHubEndpoint = "https://api.github.com"
	githubPerPage         = 10

	// Unauthenticated search is limited to 10 requests/minute; staying a
	// bit under keeps a burst of categories from tripping it.
	githubRatePerSecond = 0.15
)

// GitHubSource queries the repository search API, one query per profile
// category, using the category's top keywords as search terms.
type GitHubSource struct {
	name     string
	endpoint string
	token    string
	client   *http.Client
	limiter  *rate.Limiter
	logger   *slog.Logger
}

var _ ports.ContentSource = (*GitHubSource)(nil)

// NewGitHubSource builds the adapter from a provider spec. Recognized
// options: "endpoint" (override for tests), "token".
func NewGitHubSource(spec source.Spec, logger *slog.Logger) (ports.ContentSource, error) {
	endpoint := spec.Options["endpoint"]
	if endpoint == "" {
		endpoint = defaultGitHubEndpoint
	}

	return &GitHubSource{
		name:     spec.Name,
		endpoint: strings.TrimRight(endpoint, "/"),
		token:    spec.Options["token"],
		client:   &http.Client{Timeout: 15 * time.Second},
		limiter:  rate.NewLimiter(rate.Limit(githubRatePerSecond), 2),
		logger:   logger,
	}, nil
}

// Name identifies the source in logs and on fetched items.
func (g *GitHubSource) Name() string {
	return g.name
}

// Fetch runs one search per category hint and flattens the results.
func (g *GitHubSource) Fetch(ctx context.Context, categories []domain.Category) ([]domain.CandidateItem, error) {
	var items []domain.CandidateItem
	for _, category := range categories {
		page, err := g.search(ctx, category)
		if err != nil {
			return nil, fmt.Errorf("search %s: %w", category, err)
		}
		items = append(items, page...)
	}
	return items, nil
}

type githubSearchResponse struct {
	Items []struct {
		FullName    string   `json:"full_name"`
		HTMLURL     string   `json:"html_url"`
		Description string   `json:"description"`
		Topics      []string `json:"topics"`
		Stars       int      `json:"stargazers_count"`
		Score       float64  `json:"score"`
	} `json:"items"`
}

func (g *GitHubSource) search(ctx context.Context, category domain.Category) ([]domain.CandidateItem, error) {
	if err := g.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	query := url.Values{}
	query.Set("q", searchTerms(category))
	query.Set("sort", "stars")
	query.Set("per_page", fmt.Sprintf("%d", githubPerPage))

	endpoint := fmt.Sprintf("%s/search/repositories?%s", g.endpoint, query.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("new request: %w", err)
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	if g.token != "" {
		req.Header.Set("Authorization", "Bearer "+g.token)
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("github returned %s", resp.Status)
	}

	var payload githubSearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	items := make([]domain.CandidateItem, 0, len(payload.Items))
	for _, repo := range payload.Items {
		items = append(items, domain.CandidateItem{
			CanonicalID: repo.HTMLURL,
			Title:       repo.FullName,
			Description: repo.Description,
			Tags:        repo.Topics,
			Popularity:  repo.Stars,
			RawScore:    repo.Score,
		})
	}

	g.debug("github search settled", "category", category, "count", len(items))
	return items, nil
}

// searchTerms joins a category's leading keywords into a search query.
func searchTerms(category domain.Category) string {
	keywords := profile.CategoryKeywords(category)
	if len(keywords) == 0 {
		return string(category)
	}
	if len(keywords) > 3 {
		keywords = keywords[:3]
	}
	return strings.Join(keywords, " ")
}

func (g *GitHubSource) debug(msg string, args ...interface{}) {
	if g.logger != nil {
		g.logger.Debug(msg, args...)
	}
}
