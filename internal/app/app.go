package app

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"ProfileScout/internal/config"
	"ProfileScout/internal/infrastructure/providers"
	"ProfileScout/internal/infrastructure/scheduler"
	"ProfileScout/internal/infrastructure/storage"
	"ProfileScout/internal/infrastructure/webhook"
	"ProfileScout/internal/logging"
	"ProfileScout/internal/ports"
	"ProfileScout/internal/profile"
	"ProfileScout/internal/recommend"
	"ProfileScout/internal/source"
	"ProfileScout/internal/usecase"
)

// Application wires configs to the engine and the digest workflow.
type Application struct {
	cfg    config.Config
	logger *slog.Logger
	digest *usecase.DigestJob
	loop   *usecase.Scheduler
}

// New builds a runnable application instance.
func New(cfg config.Config, baseLogger *slog.Logger) (*Application, error) {
	if baseLogger == nil {
		baseLogger = logging.New(cfg.Logging.Level, cfg.Logging.Format)
	}

	registry := source.NewRegistry()
	registry.Register("github", providers.NewGitHubSource)
	registry.Register("awesome", providers.NewAwesomeSource)
	registry.Register("feed", providers.NewFeedSource)
	registry.Register("curated", providers.NewCuratedSource)

	sources, err := registry.Build(toSourceSpecs(cfg.Providers), baseLogger)
	if err != nil {
		return nil, fmt.Errorf("build providers: %w", err)
	}

	breakerSettings := recommend.BreakerSettings{
		MaxFailures: cfg.Aggregator.BreakerMaxFailures,
		OpenTimeout: cfg.Aggregator.BreakerOpenTimeout(),
	}
	for i, src := range sources {
		sources[i] = recommend.WithBreaker(src, breakerSettings)
	}

	engine := usecase.NewEngine(usecase.EngineDeps{
		MinMessages:      cfg.Scoring.MinMessages,
		MinCategoryScore: cfg.Scoring.MinCategoryScore,
		SourceTimeout:    cfg.Aggregator.SourceTimeout(),
		BucketConfig: recommend.BucketConfig{
			ScoreThreshold: cfg.Scoring.ScoreThreshold,
			MinPerBucket:   cfg.Scoring.MinPerBucket,
			MaxPerBucket:   cfg.Scoring.MaxPerBucket,
		},
		Sources: sources,
		Logger:  baseLogger.With("component", "engine"),
	})

	var repository ports.RecommendationRepository
	if cfg.Database.DSN != "" {
		db, err := sql.Open("postgres", cfg.Database.DSN)
		if err != nil {
			return nil, fmt.Errorf("open database: %w", err)
		}
		repository = storage.NewPostgresRepository(db)
	}

	var notifier ports.Notifier
	if cfg.Digest.WebhookURL != "" {
		notifier = webhook.NewNotifier(cfg.Digest.WebhookURL)
	}

	evidence, err := loadEvidence(cfg.Digest)
	if err != nil {
		return nil, err
	}

	digest := usecase.NewDigestJob(usecase.DigestDeps{
		Engine:     engine,
		Subject:    cfg.Digest.Subject,
		Evidence:   evidence,
		Repository: repository,
		Notifier:   notifier,
		Logger:     baseLogger.With("component", "digest"),
	})

	application := &Application{cfg: cfg, logger: baseLogger, digest: digest}
	if cfg.Digest.Recurring {
		driver := scheduler.NewTickerScheduler(cfg.Digest.Interval())
		application.loop = usecase.NewScheduler(driver, digest)
	}

	return application, nil
}

// Run executes the digest once, or keeps it running on the configured
// interval when recurring mode is on.
func (a *Application) Run(ctx context.Context) error {
	if a.loop != nil {
		if err := a.loop.Start(ctx); err != nil {
			return fmt.Errorf("start scheduler: %w", err)
		}
		<-ctx.Done()
		return a.loop.Stop(context.Background())
	}

	if a.digest == nil {
		return nil
	}
	return a.digest.Run(ctx)
}

func toSourceSpecs(cfg []config.ProviderConfig) []source.Spec {
	specs := make([]source.Spec, 0, len(cfg))
	for _, provider := range cfg {
		specs = append(specs, source.Spec{
			Name:     provider.Name,
			Kind:     provider.Kind,
			Priority: provider.Priority,
			Options:  provider.Options,
		})
	}
	return specs
}

func loadEvidence(cfg config.DigestConfig) (profile.EvidenceInput, error) {
	var evidence profile.EvidenceInput

	if cfg.TranscriptPath != "" {
		raw, err := os.ReadFile(cfg.TranscriptPath)
		if err != nil {
			return evidence, fmt.Errorf("read transcript: %w", err)
		}
		evidence.Conversation = string(raw)
	}

	if cfg.SocialPath != "" {
		raw, err := os.ReadFile(cfg.SocialPath)
		if err != nil {
			return evidence, fmt.Errorf("read social profile: %w", err)
		}
		evidence.SocialProfile = strings.TrimSpace(string(raw))
	}

	return evidence, nil
}
