package assistant

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/lexicon-journal/internal/domain"
	"github.com/heartmarshall/lexicon-journal/internal/session"
	"github.com/heartmarshall/lexicon-journal/internal/textutil"
)

// FixGrammar replaces the current text with a corrected version. Failures
// are logged and leave the text untouched; they are not returned.
func (s *Service) FixGrammar(ctx context.Context, sess *session.Session) (TextResult, error) {
	snap := sess.Snapshot()
	if textutil.CharCount(snap.Text) < s.limits.GrammarMinChars {
		return TextResult{}, domain.NewValidationError("text",
			fmt.Sprintf("at least %d characters are required", s.limits.GrammarMinChars))
	}
	key := snap.TopicKey()
	if key == "" {
		return TextResult{}, domain.NewValidationError("topic", "no active topic")
	}

	if err := begin(sess, session.OpGrammar); err != nil {
		return TextResult{}, err
	}
	defer sess.End(session.OpGrammar)

	fixed, err := s.gen.GenerateText(ctx, sess.Settings(), grammarPrompt(snap.Text))
	if err != nil {
		s.log.WarnContext(ctx, "fix grammar", slog.String("key", key), slog.String("error", err.Error()))
		return TextResult{Text: snap.Text}, nil
	}
	fixed = strings.TrimSpace(fixed)
	if fixed == "" {
		s.log.WarnContext(ctx, "fix grammar: empty response", slog.String("key", key))
		return TextResult{Text: snap.Text}, nil
	}

	applied, err := s.editor.ApplyFor(ctx, sess, key, fixed)
	if err != nil {
		s.log.WarnContext(ctx, "apply grammar fix", slog.String("key", key), slog.String("error", err.Error()))
	}
	if !applied {
		s.log.InfoContext(ctx, "grammar fix discarded, topic changed", slog.String("key", key))
		return TextResult{Text: sess.Snapshot().Text}, nil
	}
	return TextResult{Text: fixed, Applied: true}, nil
}
