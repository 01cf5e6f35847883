package topic

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/heartmarshall/lexicon-journal/internal/domain"
	"github.com/heartmarshall/lexicon-journal/internal/session"
)

// SelectCourseDay makes a course day the active topic. No network call is
// made; the topic comes from the catalog.
func (s *Service) SelectCourseDay(ctx context.Context, sess *session.Session, day int) (domain.Topic, error) {
	entry, err := s.catalog.Day(day)
	if err != nil {
		return domain.Topic{}, err
	}

	t := entry.Topic()
	if err := s.activate(ctx, sess, t, false); err != nil {
		return domain.Topic{}, err
	}

	if err := s.store.SetPreference(ctx, PrefCurrentDay, strconv.Itoa(day)); err != nil {
		s.log.WarnContext(ctx, "remember course day", slog.Int("day", day), slog.String("error", err.Error()))
	}
	return t, nil
}

// SelectDaily leaves the course and returns to today's topic.
func (s *Service) SelectDaily(ctx context.Context, sess *session.Session) (domain.Topic, error) {
	current, ok := sess.Topic()
	if ok && !current.IsCourseTopic() && current.IdentityKey == s.todayKey() {
		return current, nil
	}

	t := s.loadDaily(ctx, sess)
	if err := s.activate(ctx, sess, t, false); err != nil {
		return domain.Topic{}, fmt.Errorf("select daily: %w", err)
	}
	return t, nil
}
