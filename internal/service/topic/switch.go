package topic

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/lexicon-journal/internal/domain"
	"github.com/heartmarshall/lexicon-journal/internal/session"
)

// activate makes t the active topic. When the identity key changes, or force
// is set, the stored draft for t becomes the current text and the plan and
// analysis are dropped. Otherwise only the topic value is replaced.
func (s *Service) activate(ctx context.Context, sess *session.Session, t domain.Topic, force bool) error {
	if !force && sess.TopicKey() == t.IdentityKey {
		sess.ReplaceTopic(t)
		return nil
	}

	draft, err := s.store.Draft(ctx, t.IdentityKey)
	if err != nil {
		return fmt.Errorf("topic: load draft: %w", err)
	}

	sess.SwitchTopic(t, draft)
	s.log.DebugContext(ctx, "topic switched",
		slog.String("key", t.IdentityKey),
		slog.String("kind", string(t.Kind())),
		slog.Bool("draft_restored", draft != ""),
	)
	return nil
}
