package store

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/lexicon-journal/internal/domain"
)

// CompletedDays returns the set of completed course days.
func (s *Store) CompletedDays(ctx context.Context) (domain.CompletionSet, error) {
	var days []int
	if _, err := s.getJSON(ctx, keyCompletedDays, &days); err != nil {
		return nil, err
	}
	return domain.NewCompletionSet(days...), nil
}

// AddCompletedDay records a completed course day. It reports whether the day
// was newly added; adding a recorded day is a no-op.
func (s *Store) AddCompletedDay(ctx context.Context, day int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	set, err := s.CompletedDays(ctx)
	if err != nil {
		return false, err
	}
	if day <= 0 || set.Contains(day) {
		return false, nil
	}

	if err := s.setJSON(ctx, keyCompletedDays, []int(set.With(day))); err != nil {
		return false, err
	}

	s.log.InfoContext(ctx, "course day completed", slog.Int("day", day))
	return true, nil
}
