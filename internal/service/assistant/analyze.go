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

// AnalysisResult is the outcome of AnalyzeWriting.
type AnalysisResult struct {
	Analysis domain.AnalysisResult `json:"analysis"`
	Applied  bool                  `json:"applied"`
}

type rawAnalysis struct {
	Score       float64  `json:"score"`
	Feedback    string   `json:"feedback"`
	Suggestions []string `json:"suggestions"`
}

// AnalyzeWriting scores the current text against the active topic. Short
// texts are rejected before any provider call.
func (s *Service) AnalyzeWriting(ctx context.Context, sess *session.Session) (AnalysisResult, error) {
	t, err := requireTopic(sess)
	if err != nil {
		return AnalysisResult{}, err
	}
	text := sess.Snapshot().Text
	if textutil.CharCount(text) < s.limits.AnalyzeMinChars {
		return AnalysisResult{}, domain.NewValidationError("text",
			fmt.Sprintf("at least %d characters are required", s.limits.AnalyzeMinChars))
	}

	if err := begin(sess, session.OpAnalyze); err != nil {
		return AnalysisResult{}, err
	}
	defer sess.End(session.OpAnalyze)

	var raw rawAnalysis
	if err := s.gen.GenerateStructured(ctx, sess.Settings(), analyzePrompt(t.Title, text), analyzeSchema, &raw); err != nil {
		return AnalysisResult{}, fmt.Errorf("analyze writing: %w", err)
	}

	res := domain.AnalysisResult{
		Score:       domain.ClampScore(raw.Score),
		Feedback:    strings.TrimSpace(raw.Feedback),
		Suggestions: make([]string, 0, len(raw.Suggestions)),
	}
	for _, sug := range raw.Suggestions {
		if sug = strings.TrimSpace(sug); sug != "" {
			res.Suggestions = append(res.Suggestions, sug)
		}
	}

	applied := sess.SetAnalysisFor(t.IdentityKey, res)
	if !applied {
		s.log.InfoContext(ctx, "analysis discarded, topic changed", slog.String("key", t.IdentityKey))
	}
	return AnalysisResult{Analysis: res, Applied: applied}, nil
}
