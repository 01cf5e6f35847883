package topic

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/lexicon-journal/internal/domain"
	"github.com/heartmarshall/lexicon-journal/internal/session"
)

// RefreshResult reports the outcome of RefreshDailyTopic.
type RefreshResult struct {
	Topic     domain.Topic `json:"topic"`
	Refreshed bool         `json:"refreshed"`
}

// RefreshDailyTopic replaces today's topic with a newly generated one,
// ignoring the cache. The draft stored under today's key belonged to the
// replaced topic and is removed, so the new topic starts empty.
//
// Generation failures are logged and leave the active topic unchanged; they
// are not returned. Refreshing outside daily mode is a validation error.
func (s *Service) RefreshDailyTopic(ctx context.Context, sess *session.Session) (RefreshResult, error) {
	current, ok := sess.Topic()
	if ok && current.IsCourseTopic() {
		return RefreshResult{}, domain.NewValidationError("mode", "new daily topics are only available outside the course")
	}

	if !sess.TryBegin(session.OpRefresh) {
		return RefreshResult{}, fmt.Errorf("refresh topic: %w", domain.ErrBusy)
	}
	defer sess.End(session.OpRefresh)

	startKey := current.IdentityKey
	key := s.todayKey()

	sess.SetLoading(true)
	t, err := s.generateDaily(ctx, sess.Settings(), key)
	sess.SetLoading(false)
	if err != nil {
		s.log.WarnContext(ctx, "refresh daily topic", slog.String("key", key), slog.String("error", err.Error()))
		return RefreshResult{Topic: current, Refreshed: false}, nil
	}

	if err := s.store.SaveDailyTopic(ctx, t); err != nil {
		s.log.WarnContext(ctx, "cache refreshed topic", slog.String("key", key), slog.String("error", err.Error()))
	}

	// The user may have moved to a course day while we waited.
	if sess.TopicKey() != startKey {
		s.log.InfoContext(ctx, "topic changed during refresh, not switching", slog.String("key", key))
		active, _ := sess.Topic()
		return RefreshResult{Topic: active, Refreshed: false}, nil
	}

	if err := s.store.RemoveDraft(ctx, key); err != nil {
		return RefreshResult{}, fmt.Errorf("refresh topic: clear draft: %w", err)
	}
	if err := s.activate(ctx, sess, t, true); err != nil {
		return RefreshResult{}, err
	}

	s.log.InfoContext(ctx, "daily topic refreshed", slog.String("key", key), slog.String("title", t.Title))
	return RefreshResult{Topic: t, Refreshed: true}, nil
}
