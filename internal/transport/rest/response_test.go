package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/lexicon-journal/internal/domain"
)

func TestHandleError_Mapping(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "validation", err: domain.NewValidationError("text", "too short"), want: http.StatusBadRequest},
		{name: "wrapped sentinel validation", err: fmt.Errorf("x: %w", domain.ErrValidation), want: http.StatusBadRequest},
		{name: "not found", err: fmt.Errorf("course day 31: %w", domain.ErrNotFound), want: http.StatusNotFound},
		{name: "busy", err: fmt.Errorf("plan: %w", domain.ErrBusy), want: http.StatusConflict},
		{name: "unavailable", err: domain.ErrProviderUnavailable, want: http.StatusServiceUnavailable},
		{name: "transport", err: fmt.Errorf("%w: %w", domain.ErrTransport, errors.New("dial tcp")), want: http.StatusBadGateway},
		{name: "malformed", err: domain.ErrMalformedResponse, want: http.StatusBadGateway},
		{name: "other", err: errors.New("disk on fire"), want: http.StatusInternalServerError},
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec := httptest.NewRecorder()
			handleError(logger, rec, httptest.NewRequest(http.MethodGet, "/", nil), tt.err)

			assert.Equal(t, tt.want, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
		})
	}
}

func TestHandleError_ValidationFields(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	err := domain.NewValidationErrors([]domain.FieldError{
		{Field: "provider", Message: "must be HOSTED or LOCAL"},
		{Field: "targetWordCount", Message: "must be between 1 and 100000"},
	})
	handleError(slog.New(slog.NewTextHandler(io.Discard, nil)), rec, httptest.NewRequest(http.MethodPut, "/api/settings", nil), err)

	var body errorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "validation failed", body.Error)
	require.Len(t, body.Fields, 2)
	assert.Equal(t, "targetWordCount", body.Fields[1].Field)
}
