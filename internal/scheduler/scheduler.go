// Package scheduler runs the background jobs of the journal.
package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-co-op/gocron"

	"github.com/heartmarshall/lexicon-journal/internal/domain"
)

//go:generate moq -out mocks_test.go -pkg scheduler . prewarmer settingsSource

type prewarmer interface {
	Prewarm(ctx context.Context, settings domain.Settings) (bool, error)
}

type settingsSource interface {
	Settings() domain.Settings
}

// Scheduler generates each day's topic ahead of the first request.
type Scheduler struct {
	cron     *gocron.Scheduler
	topics   prewarmer
	settings settingsSource
	at       string
	log      *slog.Logger
}

// New creates a scheduler that prewarms at the given "HH:MM" wall-clock time
// in loc.
func New(log *slog.Logger, topics prewarmer, settings settingsSource, at string, loc *time.Location) *Scheduler {
	return &Scheduler{
		cron:     gocron.NewScheduler(loc),
		topics:   topics,
		settings: settings,
		at:       at,
		log:      log.With("component", "scheduler"),
	}
}

// Start registers the jobs and runs them in the background until Stop.
// Jobs run with ctx.
func (s *Scheduler) Start(ctx context.Context) error {
	if _, err := s.cron.Every(1).Day().At(s.at).Do(s.prewarm, ctx); err != nil {
		return fmt.Errorf("scheduler: prewarm job: %w", err)
	}
	s.cron.StartAsync()
	s.log.Info("scheduler started", slog.String("prewarm_at", s.at))
	return nil
}

// Stop terminates all scheduled jobs.
func (s *Scheduler) Stop() {
	s.cron.Stop()
}

func (s *Scheduler) prewarm(ctx context.Context) {
	generated, err := s.topics.Prewarm(ctx, s.settings.Settings())
	if err != nil {
		s.log.WarnContext(ctx, "prewarm daily topic", slog.String("error", err.Error()))
		return
	}
	if generated {
		s.log.InfoContext(ctx, "daily topic ready")
	}
}
