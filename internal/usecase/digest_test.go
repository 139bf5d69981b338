package usecase

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ProfileScout/internal/domain"
)

type memoryRepository struct {
	delivered map[string]bool
}

func newMemoryRepository() *memoryRepository {
	return &memoryRepository{delivered: map[string]bool{}}
}

func (m *memoryRepository) SaveDelivered(_ context.Context, _ string, recs []domain.RankedRecommendation) error {
	for _, rec := range recs {
		m.delivered[rec.Item.CanonicalID] = true
	}
	return nil
}

func (m *memoryRepository) DeliveredIDs(_ context.Context, _ string, ids []string) (map[string]bool, error) {
	out := map[string]bool{}
	for _, id := range ids {
		if m.delivered[id] {
			out[id] = true
		}
	}
	return out, nil
}

type recordingNotifier struct {
	digests []string
}

func (r *recordingNotifier) PublishDigest(_ context.Context, digest string) error {
	r.digests = append(r.digests, digest)
	return nil
}

func TestDigestJobDeliversOnce(t *testing.T) {
	t.Parallel()

	source := &fakeSource{
		name: "curated",
		items: []domain.CandidateItem{
			{CanonicalID: "https://ok/yoga", Title: "yoga and meditation guide"},
		},
	}
	repo := newMemoryRepository()
	notifier := &recordingNotifier{}

	job := NewDigestJob(DigestDeps{
		Engine:     testEngine(source),
		Subject:    "tester",
		Evidence:   wellnessEvidence(),
		Repository: repo,
		Notifier:   notifier,
	})

	ctx := context.Background()
	require.NoError(t, job.Run(ctx))
	require.Len(t, notifier.digests, 1)
	assert.True(t, strings.Contains(notifier.digests[0], "yoga and meditation guide"))
	assert.True(t, strings.Contains(notifier.digests[0], "wellness"))

	// Second run: everything already delivered, nothing published.
	require.NoError(t, job.Run(ctx))
	assert.Len(t, notifier.digests, 1)
}

func TestDigestJobWithoutRepositoryStillPublishes(t *testing.T) {
	t.Parallel()

	source := &fakeSource{
		name:  "curated",
		items: []domain.CandidateItem{{CanonicalID: "https://ok/1", Title: "mindfulness handbook"}},
	}
	notifier := &recordingNotifier{}

	job := NewDigestJob(DigestDeps{
		Engine:   testEngine(source),
		Subject:  "tester",
		Evidence: wellnessEvidence(),
		Notifier: notifier,
	})

	require.NoError(t, job.Run(context.Background()))
	assert.Len(t, notifier.digests, 1)
}

func TestDigestJobSurfacesInsufficientSignal(t *testing.T) {
	t.Parallel()

	job := NewDigestJob(DigestDeps{
		Engine: testEngine(),
	})

	err := job.Run(context.Background())
	require.Error(t, err)
}
