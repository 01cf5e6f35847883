// Package ollama talks to a local Ollama-compatible model server.
package ollama

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/heartmarshall/lexicon-journal/internal/domain"
	"github.com/heartmarshall/lexicon-journal/internal/provider"
)

const (
	generatePath = "/api/generate"

	// jsonInstruction replaces server-side schema enforcement, which the
	// local API does not offer.
	jsonInstruction = "\n\nIMPORTANT: RESPOND ONLY WITH VALID JSON. NO MARKDOWN."

	maxErrorBody = 512
)

// Client calls /api/generate on one server with one model. It never retries.
type Client struct {
	endpoint   string
	model      string
	httpClient *http.Client
	log        *slog.Logger
}

// NewClient creates a Client. Calls carry no timeout of their own; the
// caller's context bounds them.
func NewClient(endpoint, model string, logger *slog.Logger) *Client {
	return NewClientWithHTTP(endpoint, model, http.DefaultClient, logger)
}

// NewClientWithHTTP creates a Client with a custom http.Client.
func NewClientWithHTTP(endpoint, model string, httpClient *http.Client, logger *slog.Logger) *Client {
	return &Client{
		endpoint:   strings.TrimRight(endpoint, "/"),
		model:      model,
		httpClient: httpClient,
		log:        logger.With("adapter", "ollama"),
	}
}

// Factory returns a provider.LocalFactory that shares one http.Client.
func Factory(httpClient *http.Client, logger *slog.Logger) provider.LocalFactory {
	return func(endpoint, model string) provider.Backend {
		return NewClientWithHTTP(endpoint, model, httpClient, logger)
	}
}

type generateRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	Stream bool   `json:"stream"`
}

type generateResponse struct {
	Response string `json:"response"`
}

// GenerateText returns the model's raw response text.
func (c *Client) GenerateText(ctx context.Context, prompt string) (string, error) {
	return c.generate(ctx, prompt)
}

// GenerateStructured asks for JSON only, removes one surrounding code fence
// and checks that what is left parses. The schema is not sent; the prompt
// is expected to describe the shape.
func (c *Client) GenerateStructured(ctx context.Context, prompt string, _ provider.Schema) (json.RawMessage, error) {
	raw, err := c.generate(ctx, prompt+jsonInstruction)
	if err != nil {
		return nil, err
	}

	cleaned := strings.TrimSpace(StripFence(raw))
	if !json.Valid([]byte(cleaned)) {
		c.log.WarnContext(ctx, "ollama returned non-JSON output",
			slog.String("model", c.model),
			slog.Int("chars", len(raw)),
		)
		return nil, fmt.Errorf("ollama: response is not JSON: %w", domain.ErrMalformedResponse)
	}
	return json.RawMessage(cleaned), nil
}

func (c *Client) generate(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(generateRequest{Model: c.model, Prompt: prompt, Stream: false})
	if err != nil {
		return "", fmt.Errorf("ollama: encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint+generatePath, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("ollama: create request: %w", domain.ErrProviderUnavailable)
	}
	req.Header.Set("Content-Type", "application/json")

	c.log.DebugContext(ctx, "ollama request", slog.String("model", c.model), slog.Int("prompt_chars", len(prompt)))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("ollama: request failed: %w: %w", domain.ErrTransport, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return "", fmt.Errorf("ollama: unexpected status %d: %s: %w",
			resp.StatusCode, strings.TrimSpace(string(snippet)), domain.ErrTransport)
	}

	var out generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("ollama: decode response: %w: %w", domain.ErrTransport, err)
	}

	c.log.DebugContext(ctx, "ollama response", slog.String("model", c.model), slog.Int("chars", len(out.Response)))
	return out.Response, nil
}
