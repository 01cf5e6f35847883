package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/heartmarshall/lexicon-journal/internal/adapter/provider/anthropic"
	"github.com/heartmarshall/lexicon-journal/internal/adapter/provider/ollama"
	"github.com/heartmarshall/lexicon-journal/internal/config"
	"github.com/heartmarshall/lexicon-journal/internal/course"
	"github.com/heartmarshall/lexicon-journal/internal/domain"
	"github.com/heartmarshall/lexicon-journal/internal/provider"
	"github.com/heartmarshall/lexicon-journal/internal/scheduler"
	"github.com/heartmarshall/lexicon-journal/internal/service/assistant"
	"github.com/heartmarshall/lexicon-journal/internal/service/editor"
	"github.com/heartmarshall/lexicon-journal/internal/service/export"
	"github.com/heartmarshall/lexicon-journal/internal/service/progress"
	"github.com/heartmarshall/lexicon-journal/internal/service/settings"
	"github.com/heartmarshall/lexicon-journal/internal/service/topic"
	"github.com/heartmarshall/lexicon-journal/internal/session"
	"github.com/heartmarshall/lexicon-journal/internal/store"
	"github.com/heartmarshall/lexicon-journal/internal/transport/middleware"
	"github.com/heartmarshall/lexicon-journal/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, opens the
// store, restores the session, and serves HTTP until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("store", cfg.Store.Driver),
		slog.Bool("hosted_llm", cfg.LLM.HostedAvailable()),
	)

	kv, closeStore, err := OpenStore(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeStore()

	st := store.New(logger, kv)
	gateway := NewGateway(cfg.LLM, logger)

	// Services.
	progressSvc := progress.NewService(logger, st)
	editorSvc := editor.NewService(logger, st, progressSvc)
	topicSvc := topic.NewService(logger, st, gateway, course.Default)
	assistantSvc := assistant.NewService(logger, gateway, editorSvc, assistant.Limits{
		AnalyzeMinChars:   cfg.Writing.AnalyzeMinChars,
		GrammarMinChars:   cfg.Writing.GrammarMinChars,
		CompletionContext: cfg.Writing.CompletionContext,
	})
	settingsSvc := settings.NewService(logger, st, progressSvc)
	exportSvc := export.NewService(logger, st, course.Default)

	// Session.
	sess, err := restoreSession(ctx, cfg, st, gateway.HostedAvailable())
	if err != nil {
		return err
	}
	active := topicSvc.Initialize(ctx, sess)
	logger.Info("session restored",
		slog.String("topic", active.IdentityKey),
		slog.String("provider", sess.Settings().Provider.String()),
	)

	// Background jobs.
	if cfg.Scheduler.Enabled {
		sched := scheduler.New(logger, topicSvc, sess, cfg.Scheduler.PrewarmAt, time.Local)
		if err := sched.Start(ctx); err != nil {
			return err
		}
		defer sched.Stop()
	}

	// HTTP.
	journal := rest.NewJournalHandler(logger, sess, rest.Services{
		Topics:    topicSvc,
		Editor:    editorSvc,
		Progress:  progressSvc,
		Assistant: assistantSvc,
		Settings:  settingsSvc,
		Export:    exportSvc,
	})
	health := rest.NewHealthHandler(kv, cfg.Store.Driver, BuildVersion())
	handler := middleware.Stack(logger, cfg.CORS)(rest.NewRouter(health, journal))

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		BaseContext:  func(net.Listener) context.Context { return ctx },
	}

	return serve(ctx, srv, cfg.Server.ShutdownTimeout, logger)
}

// NewGateway builds the provider gateway. The hosted backend is wired only
// when an API key is configured.
func NewGateway(cfg config.LLMConfig, logger *slog.Logger) *provider.Gateway {
	var hosted provider.Backend
	if cfg.HostedAvailable() {
		hosted = anthropic.NewClient(cfg.HostedAPIKey, cfg.HostedModel, cfg.HostedMaxTokens, logger)
	}
	local := ollama.Factory(&http.Client{}, logger)
	return provider.NewGateway(logger, hosted, local, cfg.RequestTimeout)
}

// restoreSession builds the session from stored settings. Defaults come from
// config and prefer the hosted provider only when it is available.
func restoreSession(ctx context.Context, cfg *config.Config, st *store.Store, hostedAvailable bool) (*session.Session, error) {
	def := domain.Settings{
		LocalEndpointURL: cfg.LLM.LocalEndpoint,
		LocalModelName:   cfg.LLM.LocalModel,
		TargetWordCount:  cfg.Writing.DefaultTargetWords,
	}.WithDefaults(domain.DefaultSettings(hostedAvailable))

	stored, err := st.Settings(ctx, def)
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}
	return session.New(stored), nil
}

func serve(ctx context.Context, srv *http.Server, shutdownTimeout time.Duration, logger *slog.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http shutdown: %w", err)
	}
	return nil
}
