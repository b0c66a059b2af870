package store

import (
	"sync"

	"weatherserve/internal/weather"
)

// MemoryStore is a concurrency-safe in-memory holder of the most recently
// fetched weather records. It keeps exactly one current sequence which is
// replaced wholesale on every successful fetch; previous contents are never
// merged with new ones.
type MemoryStore struct {
	mu      sync.RWMutex
	records []weather.Record
}

// NewMemoryStore creates an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Replace overwrites the stored sequence with records. The slice is copied
// so later caller-side mutation cannot reach the stored contents.
func (s *MemoryStore) Replace(records []weather.Record) {
	copied := make([]weather.Record, len(records))
	copy(copied, records)

	s.mu.Lock()
	s.records = copied
	s.mu.Unlock()
}

// Snapshot returns a copy of the current sequence, safe to use after the
// lock is released. It is empty until the first Replace.
func (s *MemoryStore) Snapshot() []weather.Record {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]weather.Record, len(s.records))
	copy(out, s.records)
	return out
}
