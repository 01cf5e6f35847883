// Package settings reads and saves the user-editable journal settings.
package settings

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/lexicon-journal/internal/domain"
	"github.com/heartmarshall/lexicon-journal/internal/session"
)

//go:generate moq -out mocks_test.go -pkg settings . settingsStore progressTracker

type settingsStore interface {
	SaveSettings(ctx context.Context, settings domain.Settings) error
}

type progressTracker interface {
	Recompute(ctx context.Context, sess *session.Session) (domain.Progress, error)
}

// Service owns settings changes.
type Service struct {
	store    settingsStore
	progress progressTracker
	log      *slog.Logger
}

// NewService creates a settings Service.
func NewService(log *slog.Logger, store settingsStore, progress progressTracker) *Service {
	return &Service{
		store:    store,
		progress: progress,
		log:      log.With("service", "settings"),
	}
}

// Get returns the settings of the session.
func (s *Service) Get(sess *session.Session) domain.Settings {
	return sess.Settings()
}

// Save validates and persists input, makes it the session settings and
// recomputes progress against the new word goal.
func (s *Service) Save(ctx context.Context, sess *session.Session, input SaveInput) (domain.Settings, domain.Progress, error) {
	if err := input.Validate(); err != nil {
		return domain.Settings{}, domain.Progress{}, err
	}
	settings := input.Settings()

	if err := s.store.SaveSettings(ctx, settings); err != nil {
		return domain.Settings{}, domain.Progress{}, fmt.Errorf("save settings: %w", err)
	}
	sess.SetSettings(settings)

	s.log.InfoContext(ctx, "settings saved",
		slog.String("provider", settings.Provider.String()),
		slog.Int("target_words", settings.TargetWordCount),
	)

	p, err := s.progress.Recompute(ctx, sess)
	if err != nil {
		return settings, p, fmt.Errorf("save settings: recompute progress: %w", err)
	}
	return settings, p, nil
}
