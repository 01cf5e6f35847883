package topic

import (
	"context"
	"fmt"
	"strings"

	"github.com/heartmarshall/lexicon-journal/internal/domain"
	"github.com/heartmarshall/lexicon-journal/internal/provider"
)

const dailyPrompt = `Generate a unique, thought-provoking daily writing topic for a journal.
Also provide 2 sophisticated vocabulary words that would fit well with this topic.
Return JSON with keys: topic, description, vocabulary (array of objects with word, definition, example).`

var dailySchema = provider.Object(
	provider.Field("topic", provider.String("Short title of the writing topic")),
	provider.Field("description", provider.String("One or two sentences inviting the writer in")),
	provider.Field("vocabulary", provider.Array(provider.Object(
		provider.Field("word", provider.String("")),
		provider.Field("definition", provider.String("")),
		provider.Field("example", provider.String("An example sentence using the word")),
	))),
)

type dailyContent struct {
	Topic       string                   `json:"topic"`
	Description string                   `json:"description"`
	Vocabulary  []domain.VocabularyEntry `json:"vocabulary"`
}

// generateDaily asks the provider for a new daily topic keyed by dateKey.
func (s *Service) generateDaily(ctx context.Context, settings domain.Settings, dateKey string) (domain.Topic, error) {
	var out dailyContent
	if err := s.gen.GenerateStructured(ctx, settings, dailyPrompt, dailySchema, &out); err != nil {
		return domain.Topic{}, err
	}

	title := strings.TrimSpace(out.Topic)
	if title == "" {
		return domain.Topic{}, fmt.Errorf("topic: generated topic has no title: %w", domain.ErrMalformedResponse)
	}

	vocab := make([]domain.VocabularyEntry, 0, len(out.Vocabulary))
	for _, v := range out.Vocabulary {
		if strings.TrimSpace(v.Word) == "" {
			continue
		}
		vocab = append(vocab, v)
	}

	return domain.Topic{
		IdentityKey: dateKey,
		Title:       title,
		Description: strings.TrimSpace(out.Description),
		Vocabulary:  vocab,
	}, nil
}

// Fallback is the built-in topic shown when generation fails at startup.
func Fallback(dateKey string) domain.Topic {
	return domain.Topic{
		IdentityKey: dateKey,
		Title:       "The Sound of Silence",
		Description: "Reflect on a time when silence communicated more than words ever could.",
		Vocabulary: []domain.VocabularyEntry{
			{
				Word:       "Ineffable",
				Definition: "Too great or extreme to be expressed or described in words.",
				Example:    "The beauty of the sunset was ineffable.",
			},
			{
				Word:       "Resonance",
				Definition: "The quality in a sound of being deep, full, and reverberating.",
				Example:    "Her speech had a deep resonance with the audience.",
			},
		},
	}
}
