package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"
)

// MemoryStore is the default in-process backend: a map guarded by an
// RWMutex with lazy eviction on read. It is scoped to one process; there
// is no cross-process coherency.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]Entry
	ttls    TTLs
	now     func() time.Time
}

// NewMemoryStore creates an in-process cache with per-provider TTLs.
func NewMemoryStore(ttls TTLs) *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]Entry),
		ttls:    ttls,
		now:     time.Now,
	}
}

func (m *MemoryStore) fullKey(provider, key string) string {
	return fmt.Sprintf("%s:%s", provider, key)
}

// Get returns the entry if it is within the provider's TTL.
func (m *MemoryStore) Get(_ context.Context, provider, key string) (*Entry, error) {
	entry, ok := m.lookup(provider, key)
	if !ok {
		return nil, nil
	}
	if m.now().Sub(entry.InsertedAt) > m.ttls.TTL(provider) {
		return nil, nil
	}
	return &entry, nil
}

// GetStale returns the entry regardless of TTL, for rate-limit fallback.
func (m *MemoryStore) GetStale(_ context.Context, provider, key string) (*Entry, error) {
	entry, ok := m.lookup(provider, key)
	if !ok {
		return nil, nil
	}
	return &entry, nil
}

// Put stores the value with the current time.
func (m *MemoryStore) Put(_ context.Context, provider, key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal cache value: %w", err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[m.fullKey(provider, key)] = Entry{Value: data, InsertedAt: m.now()}
	return nil
}

// lookup reads an entry, dropping it when the retention window has closed.
func (m *MemoryStore) lookup(provider, key string) (Entry, bool) {
	fk := m.fullKey(provider, key)

	m.mu.RLock()
	entry, ok := m.entries[fk]
	m.mu.RUnlock()
	if !ok {
		return Entry{}, false
	}

	if m.now().Sub(entry.InsertedAt) > StaleRetention {
		m.mu.Lock()
		// A Put may have refreshed the key since the read lock was
		// released; only evict the entry that was actually seen expired.
		if current, still := m.entries[fk]; still && current.InsertedAt.Equal(entry.InsertedAt) {
			delete(m.entries, fk)
		}
		m.mu.Unlock()
		return Entry{}, false
	}
	return entry, true
}
