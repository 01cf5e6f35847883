// Package assistant runs the AI-backed writing aids: outline, analysis,
// autocomplete and grammar fix. Each operation kind has its own busy flag and
// its result lands only on the topic that was active when it started.
package assistant

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/lexicon-journal/internal/domain"
	"github.com/heartmarshall/lexicon-journal/internal/provider"
	"github.com/heartmarshall/lexicon-journal/internal/session"
)

//go:generate moq -out mocks_test.go -pkg assistant . generator textApplier

type generator interface {
	GenerateText(ctx context.Context, settings domain.Settings, prompt string) (string, error)
	GenerateStructured(ctx context.Context, settings domain.Settings, prompt string, schema provider.Schema, dst any) error
}

type textApplier interface {
	ApplyFor(ctx context.Context, sess *session.Session, topicKey, text string) (bool, error)
}

// Limits are the character thresholds of the assistant, counted in
// grapheme clusters.
type Limits struct {
	AnalyzeMinChars   int
	GrammarMinChars   int
	CompletionContext int
}

// DefaultLimits returns the thresholds used when config does not set them.
func DefaultLimits() Limits {
	return Limits{
		AnalyzeMinChars:   50,
		GrammarMinChars:   10,
		CompletionContext: 1000,
	}
}

// Service runs assistant operations against a session.
type Service struct {
	gen    generator
	editor textApplier
	limits Limits
	log    *slog.Logger
}

// NewService creates an assistant Service.
func NewService(log *slog.Logger, gen generator, editor textApplier, limits Limits) *Service {
	return &Service{
		gen:    gen,
		editor: editor,
		limits: limits,
		log:    log.With("service", "assistant"),
	}
}

// begin claims the busy flag for op or fails with ErrBusy.
func begin(sess *session.Session, op session.Op) error {
	if !sess.TryBegin(op) {
		return fmt.Errorf("%s: %w", op, domain.ErrBusy)
	}
	return nil
}

// requireTopic returns the active topic or a validation error.
func requireTopic(sess *session.Session) (domain.Topic, error) {
	t, ok := sess.Topic()
	if !ok {
		return domain.Topic{}, domain.NewValidationError("topic", "no active topic")
	}
	return t, nil
}
