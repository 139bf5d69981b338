package profile

import (
	"strings"

	"ProfileScout/internal/domain"
)

// EvidenceInput carries the raw material handed over by collectors: a
// conversational transcript, optional social-profile text, and optional
// structured activity counters. No schema is imposed beyond source tags.
type EvidenceInput struct {
	Conversation  string
	SocialProfile string
	Activity      *domain.ActivitySignals
}

// Weights applied per evidence source when segments are merged.
// Conversation text is first-hand and weighs full; bio text is curated
// self-presentation and weighs less.
const (
	conversationWeight  = 1.0
	socialProfileWeight = 0.6
)

// BuildCorpus merges the available evidence into one immutable corpus.
// The minimum threshold is gated on the number of conversational messages,
// not on character count. Below threshold the caller receives an explicit
// *domain.InsufficientSignalError, never an empty-but-successful corpus.
func BuildCorpus(input EvidenceInput, minMessages int) (domain.SignalCorpus, error) {
	messages := SplitMessages(input.Conversation)
	if len(messages) < minMessages {
		return domain.SignalCorpus{}, &domain.InsufficientSignalError{
			Observed: len(messages),
			Required: minMessages,
		}
	}

	segments := []domain.Segment{
		{
			Source: domain.SourceConversation,
			Text:   strings.Join(messages, "\n"),
			Weight: conversationWeight,
		},
	}

	if bio := strings.TrimSpace(input.SocialProfile); bio != "" {
		segments = append(segments, domain.Segment{
			Source: domain.SourceSocialProfile,
			Text:   bio,
			Weight: socialProfileWeight,
		})
	}

	return domain.SignalCorpus{
		Segments:     segments,
		MessageCount: len(messages),
		Activity:     input.Activity,
	}, nil
}

// SplitMessages breaks a raw transcript into discrete messages using a
// line/turn heuristic: every non-empty line counts as one message, and a
// role prefix ("user:", "assistant:", "> ") starts a new turn even when
// lines were joined.
func SplitMessages(transcript string) []string {
	var messages []string
	for _, line := range strings.Split(transcript, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		messages = append(messages, stripRolePrefix(line))
	}
	return messages
}

var rolePrefixes = []string{"user:", "assistant:", "them:", "me:", "> "}

func stripRolePrefix(line string) string {
	lower := strings.ToLower(line)
	for _, prefix := range rolePrefixes {
		if strings.HasPrefix(lower, prefix) {
			return strings.TrimSpace(line[len(prefix):])
		}
	}
	return line
}
