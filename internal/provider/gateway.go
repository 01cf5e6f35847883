package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/heartmarshall/lexicon-journal/internal/domain"
)

// LocalFactory builds a backend for a local model server. It is called per
// request because the endpoint and model are user settings.
type LocalFactory func(endpointURL, model string) Backend

// Gateway routes generation requests to the backend selected by settings.
// It holds no per-call state.
type Gateway struct {
	hosted  Backend
	local   LocalFactory
	timeout time.Duration
	log     *slog.Logger
}

// NewGateway creates a Gateway. hosted may be nil when no hosted credentials
// are configured. A zero timeout leaves calls unbounded.
func NewGateway(logger *slog.Logger, hosted Backend, local LocalFactory, timeout time.Duration) *Gateway {
	return &Gateway{
		hosted:  hosted,
		local:   local,
		timeout: timeout,
		log:     logger.With("service", "provider"),
	}
}

// HostedAvailable reports whether the hosted backend can serve requests.
func (g *Gateway) HostedAvailable() bool {
	return g.hosted != nil
}

// GenerateText asks the selected backend for free text.
func (g *Gateway) GenerateText(ctx context.Context, settings domain.Settings, prompt string) (string, error) {
	b, err := g.backend(settings)
	if err != nil {
		return "", err
	}

	ctx, cancel := g.withTimeout(ctx)
	defer cancel()

	start := time.Now()
	text, err := b.GenerateText(ctx, prompt)
	if err != nil {
		return "", g.fail(ctx, settings, "text", err)
	}

	g.log.DebugContext(ctx, "text generated",
		slog.String("provider", settings.Provider.String()),
		slog.Int("chars", len(text)),
		slog.Duration("took", time.Since(start)),
	)
	return text, nil
}

// GenerateStructured asks the selected backend for JSON shaped by schema and
// decodes it into dst. A response that does not decode is ErrMalformedResponse.
func (g *Gateway) GenerateStructured(ctx context.Context, settings domain.Settings, prompt string, schema Schema, dst any) error {
	b, err := g.backend(settings)
	if err != nil {
		return err
	}

	ctx, cancel := g.withTimeout(ctx)
	defer cancel()

	start := time.Now()
	raw, err := b.GenerateStructured(ctx, prompt, schema)
	if err != nil {
		return g.fail(ctx, settings, "structured", err)
	}

	if err := json.Unmarshal(raw, dst); err != nil {
		g.log.WarnContext(ctx, "structured response does not decode",
			slog.String("provider", settings.Provider.String()),
			slog.String("error", err.Error()),
		)
		return fmt.Errorf("provider: decode response: %w: %v", domain.ErrMalformedResponse, err)
	}

	g.log.DebugContext(ctx, "structured response decoded",
		slog.String("provider", settings.Provider.String()),
		slog.Duration("took", time.Since(start)),
	)
	return nil
}

func (g *Gateway) backend(settings domain.Settings) (Backend, error) {
	switch settings.Provider {
	case domain.ProviderHosted:
		if g.hosted == nil {
			return nil, fmt.Errorf("provider: hosted backend not configured: %w", domain.ErrProviderUnavailable)
		}
		return g.hosted, nil
	case domain.ProviderLocal:
		endpoint := strings.TrimSpace(settings.LocalEndpointURL)
		model := strings.TrimSpace(settings.LocalModelName)
		if endpoint == "" || model == "" || g.local == nil {
			return nil, fmt.Errorf("provider: local backend needs endpoint and model: %w", domain.ErrProviderUnavailable)
		}
		u, err := url.Parse(endpoint)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return nil, fmt.Errorf("provider: local endpoint %q: %w", endpoint, domain.ErrProviderUnavailable)
		}
		return g.local(endpoint, model), nil
	default:
		return nil, fmt.Errorf("provider: unknown provider %q: %w", settings.Provider, domain.ErrProviderUnavailable)
	}
}

func (g *Gateway) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if g.timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, g.timeout)
}

// fail classifies backend errors that arrive without a provider sentinel as
// transport failures.
func (g *Gateway) fail(ctx context.Context, settings domain.Settings, kind string, err error) error {
	if !domain.IsProviderError(err) {
		err = fmt.Errorf("%w: %w", domain.ErrTransport, err)
	}
	g.log.WarnContext(ctx, "generation failed",
		slog.String("provider", settings.Provider.String()),
		slog.String("kind", kind),
		slog.String("error", err.Error()),
	)
	return err
}
