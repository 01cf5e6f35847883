// Package store is the persistence boundary of the journal. It maps typed
// journal state onto a flat string key-value backend.
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"sync"
)

// Backend is a raw string key-value store. Writes are total and last write
// wins. Get reports absence with ok=false, not an error.
type Backend interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
	Keys(ctx context.Context, prefix string) ([]string, error)
}

// Key namespaces.
const (
	keySettings      = "settings"
	keyCompletedDays = "completed-days"
	prefixContent    = "content:"
	prefixDraft      = "draft:"
	prefixPref       = "pref:"
)

// Store provides typed access to journal state. Reads of absent keys return
// defaults instead of errors.
type Store struct {
	kv  Backend
	log *slog.Logger

	// mu serializes read-modify-write sequences.
	mu sync.Mutex
}

// New creates a Store over kv.
func New(logger *slog.Logger, kv Backend) *Store {
	return &Store{
		kv:  kv,
		log: logger.With("service", "store"),
	}
}

// getJSON decodes the value at key into dst. A value that does not decode is
// logged and reported as absent.
func (s *Store) getJSON(ctx context.Context, key string, dst any) (bool, error) {
	raw, ok, err := s.kv.Get(ctx, key)
	if err != nil {
		return false, fmt.Errorf("store: get %s: %w", key, err)
	}
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		s.log.WarnContext(ctx, "ignoring corrupt stored value",
			slog.String("key", key),
			slog.String("error", err.Error()),
		)
		return false, nil
	}
	return true, nil
}

func (s *Store) setJSON(ctx context.Context, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("store: encode %s: %w", key, err)
	}
	if err := s.kv.Set(ctx, key, string(raw)); err != nil {
		return fmt.Errorf("store: set %s: %w", key, err)
	}
	return nil
}

func (s *Store) keysWithPrefix(ctx context.Context, prefix string) ([]string, error) {
	keys, err := s.kv.Keys(ctx, prefix)
	if err != nil {
		return nil, fmt.Errorf("store: list %s*: %w", prefix, err)
	}
	out := make([]string, 0, len(keys))
	for _, k := range keys {
		if rest, ok := strings.CutPrefix(k, prefix); ok && rest != "" {
			out = append(out, rest)
		}
	}
	return out, nil
}
