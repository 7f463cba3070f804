package cache

import (
	"context"
	"fmt"
	"sync"

	"github.com/at-ishikawa/sven/internal/lexicon"
)

// MemoryStore keeps artifacts in memory. It is safe for concurrent use.
type MemoryStore struct {
	mu        sync.RWMutex
	artifacts map[string][]byte
}

var _ Store = (*MemoryStore)(nil)

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{artifacts: make(map[string][]byte)}
}

func (m *MemoryStore) Exists(_ context.Context, key string) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.artifacts[key]
	return ok, nil
}

func (m *MemoryStore) Read(_ context.Context, key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	contents, ok := m.artifacts[key]
	if !ok {
		return nil, fmt.Errorf("%w: %w", lexicon.ErrFileSystem, &NotFoundError{Key: key})
	}
	return append([]byte(nil), contents...), nil
}

func (m *MemoryStore) Write(_ context.Context, key string, contents []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.artifacts[key] = append([]byte(nil), contents...)
	return nil
}

// Keys returns the stored keys. The order is unspecified.
func (m *MemoryStore) Keys() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	keys := make([]string, 0, len(m.artifacts))
	for key := range m.artifacts {
		keys = append(keys, key)
	}
	return keys
}
