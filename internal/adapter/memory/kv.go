// Package memory is an in-process key-value backend. Contents are lost when
// the process exits.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
)

// KV is a map guarded by a RWMutex.
type KV struct {
	mu   sync.RWMutex
	data map[string]string
}

// NewKV creates an empty KV.
func NewKV() *KV {
	return &KV{data: make(map[string]string)}
}

func (m *KV) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *KV) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	m.data[key] = value
	m.mu.Unlock()
	return nil
}

func (m *KV) Remove(_ context.Context, key string) error {
	m.mu.Lock()
	delete(m.data, key)
	m.mu.Unlock()
	return nil
}

// Keys returns the keys starting with prefix in lexical order.
func (m *KV) Keys(_ context.Context, prefix string) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	keys := make([]string, 0)
	for k := range m.data {
		if strings.HasPrefix(k, prefix) {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys, nil
}

// Ping always succeeds.
func (m *KV) Ping(context.Context) error { return nil }
