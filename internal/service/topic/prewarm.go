package topic

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/lexicon-journal/internal/domain"
)

// Prewarm generates and caches today's topic if it is not cached yet, so the
// first request of the day does not wait on the provider. The session is not
// touched. It reports whether a topic was generated.
func (s *Service) Prewarm(ctx context.Context, settings domain.Settings) (bool, error) {
	key := s.todayKey()

	if _, ok, err := s.store.DailyTopic(ctx, key); err != nil {
		return false, fmt.Errorf("prewarm: %w", err)
	} else if ok {
		return false, nil
	}

	t, err := s.generateDaily(ctx, settings, key)
	if err != nil {
		return false, fmt.Errorf("prewarm: %w", err)
	}
	if err := s.store.SaveDailyTopic(ctx, t); err != nil {
		return false, fmt.Errorf("prewarm: %w", err)
	}

	s.log.InfoContext(ctx, "daily topic prewarmed", slog.String("key", key), slog.String("title", t.Title))
	return true, nil
}
