// Package editor handles text changes: it persists the draft of the active
// topic and recomputes progress after every change.
package editor

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/lexicon-journal/internal/domain"
	"github.com/heartmarshall/lexicon-journal/internal/session"
)

//go:generate moq -out mocks_test.go -pkg editor . draftStore progressTracker

type draftStore interface {
	SaveDraft(ctx context.Context, topicKey, text string) error
	RemoveDraft(ctx context.Context, topicKey string) error
}

type progressTracker interface {
	Recompute(ctx context.Context, sess *session.Session) (domain.Progress, error)
}

// Service is the single entry point for text changes.
type Service struct {
	drafts   draftStore
	progress progressTracker
	log      *slog.Logger
}

// NewService creates an editor Service.
func NewService(log *slog.Logger, drafts draftStore, progress progressTracker) *Service {
	return &Service{
		drafts:   drafts,
		progress: progress,
		log:      log.With("service", "editor"),
	}
}

// SetText replaces the current text typed by the user.
func (s *Service) SetText(ctx context.Context, sess *session.Session, text string) (domain.Progress, error) {
	key := sess.SetText(text)
	return s.afterChange(ctx, sess, key, text)
}

// ApplyFor replaces the text only while topicKey is still active. Assistant
// results go through here so they cannot land on a different topic.
func (s *Service) ApplyFor(ctx context.Context, sess *session.Session, topicKey, text string) (bool, error) {
	if !sess.SetTextFor(topicKey, text) {
		return false, nil
	}
	_, err := s.afterChange(ctx, sess, topicKey, text)
	return true, err
}

// afterChange saves or clears the draft and recomputes progress. Without
// an active topic nothing is persisted.
func (s *Service) afterChange(ctx context.Context, sess *session.Session, key, text string) (domain.Progress, error) {
	if key != "" {
		var err error
		if text == "" {
			err = s.drafts.RemoveDraft(ctx, key)
		} else {
			err = s.drafts.SaveDraft(ctx, key, text)
		}
		if err != nil {
			return domain.Progress{}, fmt.Errorf("editor: persist draft: %w", err)
		}
	}

	p, err := s.progress.Recompute(ctx, sess)
	if err != nil {
		return p, fmt.Errorf("editor: recompute progress: %w", err)
	}
	return p, nil
}
