// Package topic decides which writing topic is active: today's generated
// topic or a course day. It loads or generates topics and swaps drafts when
// the active topic changes.
package topic

import (
	"context"
	"log/slog"
	"time"

	"github.com/heartmarshall/lexicon-journal/internal/course"
	"github.com/heartmarshall/lexicon-journal/internal/domain"
	"github.com/heartmarshall/lexicon-journal/internal/provider"
)

//go:generate moq -out generator_mock_test.go -pkg topic . generator

type contentStore interface {
	DailyTopic(ctx context.Context, dateKey string) (domain.Topic, bool, error)
	SaveDailyTopic(ctx context.Context, t domain.Topic) error
	Draft(ctx context.Context, topicKey string) (string, error)
	RemoveDraft(ctx context.Context, topicKey string) error
	CompletedDays(ctx context.Context) (domain.CompletionSet, error)
	Preference(ctx context.Context, name string) (string, error)
	SetPreference(ctx context.Context, name, value string) error
}

type generator interface {
	GenerateStructured(ctx context.Context, settings domain.Settings, prompt string, schema provider.Schema, dst any) error
}

type catalog interface {
	Day(n int) (course.Day, error)
	All() []course.Day
}

// PrefCurrentDay stores the last course day the user selected.
const PrefCurrentDay = "course.current-day"

// Service manages the active topic of a session.
type Service struct {
	store   contentStore
	gen     generator
	catalog catalog
	now     func() time.Time
	log     *slog.Logger
}

// NewService creates a topic Service.
func NewService(log *slog.Logger, store contentStore, gen generator, catalog catalog) *Service {
	return &Service{
		store:   store,
		gen:     gen,
		catalog: catalog,
		now:     time.Now,
		log:     log.With("service", "topic"),
	}
}

func (s *Service) todayKey() string {
	return domain.DailyKey(s.now())
}
