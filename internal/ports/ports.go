package ports

import (
	"context"

	"ProfileScout/internal/domain"
)

// ContentSource pulls candidate items from one upstream provider. The
// category hints carry the profile's ranked labels; implementations decide
// how to translate them into provider-specific queries.
type ContentSource interface {
	Name() string
	Fetch(ctx context.Context, categories []domain.Category) ([]domain.CandidateItem, error)
}

// RecommendationRepository persists delivered recommendation sets for
// audit and history. The engine never requires one to be present.
type RecommendationRepository interface {
	SaveDelivered(ctx context.Context, subject string, recs []domain.RankedRecommendation) error
	DeliveredIDs(ctx context.Context, subject string, ids []string) (map[string]bool, error)
}

// Notifier ships a finished recommendation digest to an outbound channel.
type Notifier interface {
	PublishDigest(ctx context.Context, digest string) error
}

// Scheduler controls when recurring digest jobs execute.
type Scheduler interface {
	Start(ctx context.Context, job func()) error
	Stop(ctx context.Context) error
}
