package rest

import (
	"context"
	"io"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/lexicon-journal/internal/domain"
	"github.com/heartmarshall/lexicon-journal/internal/service/assistant"
	"github.com/heartmarshall/lexicon-journal/internal/service/settings"
	"github.com/heartmarshall/lexicon-journal/internal/service/topic"
	"github.com/heartmarshall/lexicon-journal/internal/session"
)

type topicService interface {
	RefreshDailyTopic(ctx context.Context, sess *session.Session) (topic.RefreshResult, error)
	SelectDaily(ctx context.Context, sess *session.Session) (domain.Topic, error)
	SelectCourseDay(ctx context.Context, sess *session.Session, day int) (domain.Topic, error)
	Roadmap(ctx context.Context, sess *session.Session) (topic.Roadmap, error)
}

type editorService interface {
	SetText(ctx context.Context, sess *session.Session, text string) (domain.Progress, error)
}

type progressService interface {
	Recompute(ctx context.Context, sess *session.Session) (domain.Progress, error)
}

type assistantService interface {
	GeneratePlan(ctx context.Context, sess *session.Session) (assistant.PlanResult, error)
	AnalyzeWriting(ctx context.Context, sess *session.Session) (assistant.AnalysisResult, error)
	AutoComplete(ctx context.Context, sess *session.Session) (assistant.TextResult, error)
	FixGrammar(ctx context.Context, sess *session.Session) (assistant.TextResult, error)
}

type settingsService interface {
	Get(sess *session.Session) domain.Settings
	Save(ctx context.Context, sess *session.Session, input settings.SaveInput) (domain.Settings, domain.Progress, error)
}

type exporter interface {
	WriteWorkbook(ctx context.Context, w io.Writer) error
}

// Services groups what JournalHandler calls into.
type Services struct {
	Topics    topicService
	Editor    editorService
	Progress  progressService
	Assistant assistantService
	Settings  settingsService
	Export    exporter
}

// JournalHandler serves the journal API for the process session.
type JournalHandler struct {
	sess *session.Session
	svc  Services
	log  *slog.Logger
}

// detached returns the request context without its cancellation. Generation
// runs to completion even when the client goes away.
func detached(r *http.Request) context.Context {
	return context.WithoutCancel(r.Context())
}

// NewJournalHandler creates a JournalHandler.
func NewJournalHandler(logger *slog.Logger, sess *session.Session, svc Services) *JournalHandler {
	return &JournalHandler{
		sess: sess,
		svc:  svc,
		log:  logger.With("handler", "journal"),
	}
}
