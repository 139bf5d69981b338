package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"ProfileScout/internal/domain"
	"ProfileScout/internal/ports"
	"ProfileScout/internal/profile"
	"ProfileScout/internal/recommend"
)

// EngineDeps wires configuration and adapters into the core engine.
type EngineDeps struct {
	MinMessages      int
	MinCategoryScore int
	SourceTimeout    time.Duration
	BucketConfig     recommend.BucketConfig
	Sources          []ports.ContentSource
	Logger           *slog.Logger
}

// Engine exposes the two entry points of the core: BuildProfile and
// Recommend. It is stateless across requests; every request constructs
// its own corpus, profile, and candidate pool from scratch, so nothing is
// cached between calls.
type Engine struct {
	minMessages      int
	minCategoryScore int
	sourceTimeout    time.Duration
	bucketCfg        recommend.BucketConfig
	sources          []ports.ContentSource
	logger           *slog.Logger
}

// NewEngine constructs the engine.
func NewEngine(deps EngineDeps) *Engine {
	return &Engine{
		minMessages:      deps.MinMessages,
		minCategoryScore: deps.MinCategoryScore,
		sourceTimeout:    deps.SourceTimeout,
		bucketCfg:        deps.BucketConfig,
		sources:          deps.Sources,
		logger:           deps.Logger,
	}
}

// BuildProfile turns raw evidence into a behavioral profile. The only
// failure mode is *domain.InsufficientSignalError; scoring itself cannot
// fail once a corpus exists.
func (e *Engine) BuildProfile(ctx context.Context, evidence profile.EvidenceInput) (domain.Profile, error) {
	logger := e.requestLogger()

	corpus, err := profile.BuildCorpus(evidence, e.minMessages)
	if err != nil {
		logger.Info("profile build rejected", "error", err)
		return domain.Profile{}, err
	}

	categories := profile.DetectCategories(corpus, e.minCategoryScore)
	dimensions := profile.ScoreDimensions(corpus)
	archetype := profile.Classify(dimensions)

	logger.Debug("profile built",
		"messages", corpus.MessageCount,
		"primary_category", categories[0].Label,
		"archetype", archetype)

	return domain.Profile{
		Categories: categories,
		Dimensions: dimensions,
		Archetype:  archetype,
	}, nil
}

// Recommend fetches candidates from the given sources (falling back to
// the engine's configured set), deduplicates, ranks against the profile,
// and buckets into the profile's categories. Per-source failures degrade
// to thinner results and never surface to the caller.
func (e *Engine) Recommend(ctx context.Context, prof domain.Profile, sources []ports.ContentSource) ([]domain.RankedRecommendation, error) {
	if sources == nil {
		sources = e.sources
	}
	logger := e.requestLogger()

	aggregator := recommend.NewAggregator(sources, e.sourceTimeout, logger)
	pool := aggregator.Fetch(ctx, prof.CategoryLabels())

	deduped := recommend.Dedupe(pool, logger)
	recs := recommend.Bucket(deduped, prof, e.bucketCfg)

	logger.Debug("recommendation pipeline done",
		"fetched", len(pool),
		"deduplicated", len(deduped),
		"recommended", len(recs))

	return recs, nil
}

func (e *Engine) requestLogger() *slog.Logger {
	logger := e.logger
	if logger == nil {
		logger = slog.Default()
	}
	return logger.With("request_id", uuid.NewString())
}
