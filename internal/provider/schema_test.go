package provider

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSchema_JSONSchema(t *testing.T) {
	t.Parallel()

	s := Object(
		Field("topic", String("title")),
		Field("score", Number("")),
		Field("vocabulary", Array(Object(
			Field("word", String("")),
			Field("definition", String("")),
		))),
	)

	got := s.JSONSchema()

	assert.Equal(t, "object", got["type"])
	assert.Equal(t, []string{"topic", "score", "vocabulary"}, got["required"])

	props := got["properties"].(map[string]any)
	assert.Equal(t, map[string]any{"type": "string", "description": "title"}, props["topic"])
	assert.Equal(t, map[string]any{"type": "number"}, props["score"])

	vocab := props["vocabulary"].(map[string]any)
	assert.Equal(t, "array", vocab["type"])
	items := vocab["items"].(map[string]any)
	assert.Equal(t, []string{"word", "definition"}, items["required"])
}

func TestSchema_EmptyObject(t *testing.T) {
	t.Parallel()

	got := Object().JSONSchema()
	assert.Equal(t, map[string]any{}, got["properties"])
	_, hasRequired := got["required"]
	assert.False(t, hasRequired)
}
