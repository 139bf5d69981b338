package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"ProfileScout/internal/domain"
	"ProfileScout/internal/ports"
	"ProfileScout/internal/profile"
)

// DigestJob periodically rebuilds a subject's profile, runs the
// recommendation pipeline, and ships anything not delivered before.
// Candidate pools change between runs, which is why the profile and
// recommendations are always recomputed rather than cached.
type DigestJob struct {
	engine     *Engine
	subject    string
	evidence   profile.EvidenceInput
	repository ports.RecommendationRepository
	notifier   ports.Notifier
	logger     *slog.Logger
}

// DigestDeps wires the digest job.
type DigestDeps struct {
	Engine     *Engine
	Subject    string
	Evidence   profile.EvidenceInput
	Repository ports.RecommendationRepository
	Notifier   ports.Notifier
	Logger     *slog.Logger
}

// NewDigestJob constructs the recurring digest workflow.
func NewDigestJob(deps DigestDeps) *DigestJob {
	return &DigestJob{
		engine:     deps.Engine,
		subject:    deps.Subject,
		evidence:   deps.Evidence,
		repository: deps.Repository,
		notifier:   deps.Notifier,
		logger:     deps.Logger,
	}
}

// Run executes one digest cycle.
func (j *DigestJob) Run(ctx context.Context) error {
	if j.engine == nil {
		return nil
	}

	prof, err := j.engine.BuildProfile(ctx, j.evidence)
	if err != nil {
		return fmt.Errorf("build profile: %w", err)
	}

	recs, err := j.engine.Recommend(ctx, prof, nil)
	if err != nil {
		return fmt.Errorf("recommend: %w", err)
	}

	fresh, err := j.filterDelivered(ctx, recs)
	if err != nil {
		return fmt.Errorf("load delivery history: %w", err)
	}
	if len(fresh) == 0 {
		j.debug("nothing new to deliver", "subject", j.subject)
		return nil
	}

	if j.repository != nil {
		if err := j.repository.SaveDelivered(ctx, j.subject, fresh); err != nil {
			return fmt.Errorf("persist delivery: %w", err)
		}
	}

	if j.notifier == nil {
		return nil
	}

	return j.notifier.PublishDigest(ctx, buildDigestMessage(prof, fresh))
}

func (j *DigestJob) filterDelivered(ctx context.Context, recs []domain.RankedRecommendation) ([]domain.RankedRecommendation, error) {
	if j.repository == nil || len(recs) == 0 {
		return recs, nil
	}

	ids := make([]string, len(recs))
	for i, rec := range recs {
		ids[i] = rec.Item.CanonicalID
	}

	seen, err := j.repository.DeliveredIDs(ctx, j.subject, ids)
	if err != nil {
		return nil, err
	}

	fresh := make([]domain.RankedRecommendation, 0, len(recs))
	for _, rec := range recs {
		if !seen[rec.Item.CanonicalID] {
			fresh = append(fresh, rec)
		}
	}
	return fresh, nil
}

func buildDigestMessage(prof domain.Profile, recs []domain.RankedRecommendation) string {
	message := fmt.Sprintf("Recommendations for a %s profile\n\n", prof.Archetype)

	var group domain.Category
	for _, rec := range recs {
		if rec.CategoryGroup != group {
			group = rec.CategoryGroup
			message += fmt.Sprintf("## %s\n", group)
		}
		message += fmt.Sprintf("- %s (%d/100)\n  %s\n  %s\n",
			rec.Item.Title,
			rec.MatchScore,
			rec.Reason,
			rec.Item.CanonicalID)
	}

	return message
}

func (j *DigestJob) debug(msg string, args ...interface{}) {
	if j.logger != nil {
		j.logger.Debug(msg, args...)
	}
}
