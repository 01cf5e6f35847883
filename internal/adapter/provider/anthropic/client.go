// Package anthropic serves the hosted provider through the Anthropic Messages API.
package anthropic

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	anthropic "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/heartmarshall/lexicon-journal/internal/domain"
	"github.com/heartmarshall/lexicon-journal/internal/provider"
)

// toolName is the single tool a structured call forces. Its input schema is
// the requested output shape, so the tool input is the answer.
const toolName = "respond"

// Client implements provider.Backend for the hosted model.
type Client struct {
	client    anthropic.Client
	model     string
	maxTokens int64
	log       *slog.Logger
}

// NewClient creates a Client. SDK retries are disabled; a failed call is
// reported to the caller as is.
func NewClient(apiKey, model string, maxTokens int64, logger *slog.Logger, opts ...option.RequestOption) *Client {
	base := []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithMaxRetries(0),
	}
	return &Client{
		client:    anthropic.NewClient(append(base, opts...)...),
		model:     model,
		maxTokens: maxTokens,
		log:       logger.With("adapter", "anthropic"),
	}
}

// GenerateText returns the concatenated text blocks of the reply.
func (c *Client) GenerateText(ctx context.Context, prompt string) (string, error) {
	msg, err := c.client.Messages.New(ctx, c.params(prompt))
	if err != nil {
		return "", c.mapError(ctx, err)
	}

	var sb strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			sb.WriteString(block.Text)
		}
	}
	text := strings.TrimSpace(sb.String())

	c.log.DebugContext(ctx, "anthropic text reply",
		slog.String("stop_reason", string(msg.StopReason)),
		slog.Int("chars", len(text)),
	)
	return text, nil
}

// GenerateStructured forces the respond tool and returns its input.
func (c *Client) GenerateStructured(ctx context.Context, prompt string, schema provider.Schema) (json.RawMessage, error) {
	if schema.Type != provider.TypeObject {
		return nil, fmt.Errorf("anthropic: structured output needs an object schema, got %q", schema.Type)
	}

	params := c.params(prompt)
	params.Tools = []anthropic.ToolUnionParam{{
		OfTool: &anthropic.ToolParam{
			Name:        toolName,
			Description: anthropic.String("Return the answer in this exact shape."),
			InputSchema: anthropic.ToolInputSchemaParam{
				Properties: schema.PropertiesMap(),
				Required:   schema.Required(),
			},
		},
	}}
	params.ToolChoice = anthropic.ToolChoiceUnionParam{
		OfTool: &anthropic.ToolChoiceToolParam{Name: toolName},
	}

	msg, err := c.client.Messages.New(ctx, params)
	if err != nil {
		return nil, c.mapError(ctx, err)
	}

	for _, block := range msg.Content {
		if block.Type == "tool_use" && block.Name == toolName {
			if !json.Valid(block.Input) {
				break
			}
			return block.Input, nil
		}
	}

	c.log.WarnContext(ctx, "anthropic reply has no tool input", slog.String("stop_reason", string(msg.StopReason)))
	return nil, fmt.Errorf("anthropic: no %s tool call in reply: %w", toolName, domain.ErrMalformedResponse)
}

func (c *Client) params(prompt string) anthropic.MessageNewParams {
	return anthropic.MessageNewParams{
		Model:     anthropic.Model(c.model),
		MaxTokens: c.maxTokens,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	}
}

// mapError keeps rejected credentials apart from other failures: a bad key
// means the hosted provider is unusable, not that the network flaked.
func (c *Client) mapError(ctx context.Context, err error) error {
	var apiErr *anthropic.Error
	if errors.As(err, &apiErr) {
		c.log.WarnContext(ctx, "anthropic api error", slog.Int("status", apiErr.StatusCode))
		if apiErr.StatusCode == http.StatusUnauthorized || apiErr.StatusCode == http.StatusForbidden {
			return fmt.Errorf("anthropic: credentials rejected (%d): %w", apiErr.StatusCode, domain.ErrProviderUnavailable)
		}
		return fmt.Errorf("anthropic: status %d: %w", apiErr.StatusCode, domain.ErrTransport)
	}
	return fmt.Errorf("anthropic: %w: %w", domain.ErrTransport, err)
}
