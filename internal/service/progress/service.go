// Package progress derives word-count progress from the current text and
// records course days whose goal was reached.
package progress

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/lexicon-journal/internal/domain"
	"github.com/heartmarshall/lexicon-journal/internal/session"
	"github.com/heartmarshall/lexicon-journal/internal/textutil"
)

//go:generate moq -out completion_store_mock_test.go -pkg progress . completionStore

type completionStore interface {
	AddCompletedDay(ctx context.Context, day int) (bool, error)
}

// Service recomputes progress and applies the course completion side effect.
type Service struct {
	store completionStore
	log   *slog.Logger
}

// NewService creates a progress Service.
func NewService(log *slog.Logger, store completionStore) *Service {
	return &Service{
		store: store,
		log:   log.With("service", "progress"),
	}
}

// Compute returns progress for text against target. It has no side effects.
func Compute(text string, target int) domain.Progress {
	words := textutil.WordCount(text)
	f := Fraction(words, target)
	return domain.Progress{
		WordCount:       words,
		TargetWordCount: target,
		Fraction:        f,
		Percent:         percent(words, target),
		GoalReached:     target > 0 && words >= target,
	}
}

// percent is the whole percentage of the goal written, rounded down so that
// 100 appears only once the goal is reached.
func percent(words, target int) int {
	if target <= 0 || words <= 0 {
		return 0
	}
	if words >= target {
		return 100
	}
	return words * 100 / target
}

// Fraction returns min(words/target, 1). A non-positive target yields 0.
func Fraction(words, target int) float64 {
	if target <= 0 || words <= 0 {
		return 0
	}
	if words >= target {
		return 1
	}
	return float64(words) / float64(target)
}

// Recompute derives progress from the session and, when the active topic is
// a course day whose goal is reached, adds that day to the completion set.
// Days are never removed here.
func (s *Service) Recompute(ctx context.Context, sess *session.Session) (domain.Progress, error) {
	snap := sess.Snapshot()
	p := Compute(snap.Text, snap.Settings.TargetWordCount)

	if snap.Topic == nil || !snap.Topic.IsCourseTopic() || !p.GoalReached {
		return p, nil
	}

	added, err := s.store.AddCompletedDay(ctx, snap.Topic.CourseDay)
	if err != nil {
		return p, err
	}
	if added {
		s.log.InfoContext(ctx, "goal reached",
			slog.Int("day", snap.Topic.CourseDay),
			slog.Int("words", p.WordCount),
		)
	}
	return p, nil
}
