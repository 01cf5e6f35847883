package store

import (
	"context"
	"fmt"
	"sort"

	"github.com/heartmarshall/lexicon-journal/internal/domain"
)

// DailyTopic returns the generated topic cached for a calendar day key.
func (s *Store) DailyTopic(ctx context.Context, dateKey string) (domain.Topic, bool, error) {
	var t domain.Topic
	ok, err := s.getJSON(ctx, prefixContent+dateKey, &t)
	if err != nil || !ok {
		return domain.Topic{}, false, err
	}
	if t.IdentityKey != dateKey || t.Title == "" {
		s.log.WarnContext(ctx, "ignoring cached topic with mismatched key")
		return domain.Topic{}, false, nil
	}
	return t, true, nil
}

// SaveDailyTopic caches a generated topic under its identity key,
// overwriting any previous entry for that day.
func (s *Store) SaveDailyTopic(ctx context.Context, t domain.Topic) error {
	if t.IsCourseTopic() {
		return fmt.Errorf("store: course topic %s is not cacheable", t.IdentityKey)
	}
	return s.setJSON(ctx, prefixContent+t.IdentityKey, t)
}

// Draft is stored free text for one topic.
type Draft struct {
	Key  string
	Text string
}

// Draft returns the text stored for a topic key, or "" when none is stored.
func (s *Store) Draft(ctx context.Context, topicKey string) (string, error) {
	v, _, err := s.kv.Get(ctx, prefixDraft+topicKey)
	if err != nil {
		return "", fmt.Errorf("store: get draft %s: %w", topicKey, err)
	}
	return v, nil
}

// SaveDraft overwrites the draft for a topic key.
func (s *Store) SaveDraft(ctx context.Context, topicKey, text string) error {
	if err := s.kv.Set(ctx, prefixDraft+topicKey, text); err != nil {
		return fmt.Errorf("store: set draft %s: %w", topicKey, err)
	}
	return nil
}

// RemoveDraft deletes the draft for a topic key. Removing an absent draft is
// not an error.
func (s *Store) RemoveDraft(ctx context.Context, topicKey string) error {
	if err := s.kv.Remove(ctx, prefixDraft+topicKey); err != nil {
		return fmt.Errorf("store: remove draft %s: %w", topicKey, err)
	}
	return nil
}

// Drafts returns every stored draft ordered by key.
func (s *Store) Drafts(ctx context.Context) ([]Draft, error) {
	keys, err := s.keysWithPrefix(ctx, prefixDraft)
	if err != nil {
		return nil, err
	}
	sort.Strings(keys)

	drafts := make([]Draft, 0, len(keys))
	for _, k := range keys {
		text, ok, err := s.kv.Get(ctx, prefixDraft+k)
		if err != nil {
			return nil, fmt.Errorf("store: get draft %s: %w", k, err)
		}
		if !ok {
			continue
		}
		drafts = append(drafts, Draft{Key: k, Text: text})
	}
	return drafts, nil
}
