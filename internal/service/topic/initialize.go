package topic

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/lexicon-journal/internal/domain"
	"github.com/heartmarshall/lexicon-journal/internal/session"
)

// Initialize activates today's topic: the cached one if present, otherwise a
// freshly generated one, otherwise the built-in fallback. It never fails;
// problems are logged so the user can always start writing.
func (s *Service) Initialize(ctx context.Context, sess *session.Session) domain.Topic {
	t := s.loadDaily(ctx, sess)

	if err := s.activate(ctx, sess, t, false); err != nil {
		s.log.ErrorContext(ctx, "restore draft at startup", slog.String("error", err.Error()))
		sess.SwitchTopic(t, "")
	}
	return t
}

// loadDaily returns today's topic from the cache or generates and caches it.
// Generation failures yield the fallback topic, which is not cached.
func (s *Service) loadDaily(ctx context.Context, sess *session.Session) domain.Topic {
	key := s.todayKey()

	cached, ok, err := s.store.DailyTopic(ctx, key)
	if err != nil {
		s.log.WarnContext(ctx, "read cached topic", slog.String("key", key), slog.String("error", err.Error()))
	}
	if ok {
		return cached
	}

	sess.SetLoading(true)
	defer sess.SetLoading(false)

	t, err := s.generateDaily(ctx, sess.Settings(), key)
	if err != nil {
		s.log.WarnContext(ctx, "generate daily topic, using fallback",
			slog.String("key", key),
			slog.String("error", err.Error()),
		)
		return Fallback(key)
	}

	if err := s.store.SaveDailyTopic(ctx, t); err != nil {
		s.log.WarnContext(ctx, "cache daily topic", slog.String("key", key), slog.String("error", err.Error()))
	}

	s.log.InfoContext(ctx, "daily topic generated", slog.String("key", key), slog.String("title", t.Title))
	return t
}
