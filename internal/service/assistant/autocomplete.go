package assistant

import (
	"context"
	"log/slog"
	"strings"

	"github.com/heartmarshall/lexicon-journal/internal/session"
	"github.com/heartmarshall/lexicon-journal/internal/textutil"
)

// TextResult is the outcome of an operation that rewrites the current text.
type TextResult struct {
	Text    string `json:"text"`
	Applied bool   `json:"applied"`
}

// AutoComplete continues the current text by a sentence or two. Failures are
// logged and leave the text untouched; they are not returned.
func (s *Service) AutoComplete(ctx context.Context, sess *session.Session) (TextResult, error) {
	t, err := requireTopic(sess)
	if err != nil {
		return TextResult{}, err
	}
	if err := begin(sess, session.OpAutocomplete); err != nil {
		return TextResult{}, err
	}
	defer sess.End(session.OpAutocomplete)

	text := sess.Snapshot().Text
	prompt := completionPrompt(t.Title, textutil.Tail(text, s.limits.CompletionContext))

	completion, err := s.gen.GenerateText(ctx, sess.Settings(), prompt)
	if err != nil {
		s.log.WarnContext(ctx, "autocomplete", slog.String("key", t.IdentityKey), slog.String("error", err.Error()))
		return TextResult{Text: text}, nil
	}
	completion = strings.TrimSpace(completion)
	if completion == "" {
		return TextResult{Text: text}, nil
	}

	// Append to the latest text; the writer may have kept typing.
	current := sess.Snapshot()
	if current.TopicKey() != t.IdentityKey {
		s.log.InfoContext(ctx, "completion discarded, topic changed", slog.String("key", t.IdentityKey))
		return TextResult{Text: current.Text}, nil
	}
	next := appendCompletion(current.Text, completion)

	applied, err := s.editor.ApplyFor(ctx, sess, t.IdentityKey, next)
	if err != nil {
		s.log.WarnContext(ctx, "apply completion", slog.String("key", t.IdentityKey), slog.String("error", err.Error()))
	}
	if !applied {
		return TextResult{Text: current.Text}, nil
	}
	return TextResult{Text: next, Applied: true}, nil
}

// appendCompletion joins text and completion with a single space unless text
// is empty or already ends with whitespace.
func appendCompletion(text, completion string) string {
	if text == "" || textutil.EndsWithSpace(text) {
		return text + completion
	}
	return text + " " + completion
}
