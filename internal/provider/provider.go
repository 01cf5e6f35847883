// Package provider is the gateway between the journal and the language model
// backends. Callers describe what they want; the gateway picks the backend
// the current settings select.
package provider

import (
	"context"
	"encoding/json"
)

//go:generate moq -out backend_mock_test.go -pkg provider . Backend

// Backend is one language model endpoint.
//
// GenerateStructured must return syntactically valid JSON; whether it matches
// the schema is checked by the caller while decoding.
type Backend interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
	GenerateStructured(ctx context.Context, prompt string, schema Schema) (json.RawMessage, error)
}
