package store

import (
	"context"

	"github.com/heartmarshall/lexicon-journal/internal/domain"
)

// Settings returns the saved settings with missing fields taken from def,
// or def itself when nothing was saved.
func (s *Store) Settings(ctx context.Context, def domain.Settings) (domain.Settings, error) {
	var saved domain.Settings
	ok, err := s.getJSON(ctx, keySettings, &saved)
	if err != nil {
		return domain.Settings{}, err
	}
	if !ok {
		return def, nil
	}
	return saved.WithDefaults(def), nil
}

// SaveSettings replaces the stored settings.
func (s *Store) SaveSettings(ctx context.Context, settings domain.Settings) error {
	return s.setJSON(ctx, keySettings, settings)
}

// Preference returns a named preference, or "" when unset.
func (s *Store) Preference(ctx context.Context, name string) (string, error) {
	v, _, err := s.kv.Get(ctx, prefixPref+name)
	if err != nil {
		return "", err
	}
	return v, nil
}

// SetPreference stores a named preference.
func (s *Store) SetPreference(ctx context.Context, name, value string) error {
	return s.kv.Set(ctx, prefixPref+name, value)
}
