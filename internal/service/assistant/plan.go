package assistant

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/lexicon-journal/internal/domain"
	"github.com/heartmarshall/lexicon-journal/internal/session"
)

// PlanResult is the outcome of GeneratePlan.
type PlanResult struct {
	Plan    string `json:"plan"`
	Applied bool   `json:"applied"`
}

// GeneratePlan asks for a markdown outline of the active topic and stores it
// as the session plan. Provider errors are returned; the plan is unchanged.
func (s *Service) GeneratePlan(ctx context.Context, sess *session.Session) (PlanResult, error) {
	t, err := requireTopic(sess)
	if err != nil {
		return PlanResult{}, err
	}
	if err := begin(sess, session.OpPlan); err != nil {
		return PlanResult{}, err
	}
	defer sess.End(session.OpPlan)

	plan, err := s.gen.GenerateText(ctx, sess.Settings(), planPrompt(t.Title))
	if err != nil {
		return PlanResult{}, fmt.Errorf("generate plan: %w", err)
	}
	plan = strings.TrimSpace(plan)
	if plan == "" {
		return PlanResult{}, fmt.Errorf("generate plan: empty outline: %w", domain.ErrMalformedResponse)
	}

	applied := sess.SetPlanFor(t.IdentityKey, plan)
	if !applied {
		s.log.InfoContext(ctx, "plan discarded, topic changed", slog.String("key", t.IdentityKey))
	}
	return PlanResult{Plan: plan, Applied: applied}, nil
}
