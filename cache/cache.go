// Package cache stores fetched metadata collections keyed by collection type
// and filter value. Reads are consulted before any network call; writes only
// happen after a full page aggregation succeeds, so a stored entry is never
// partial.
package cache

import (
	"strings"
	"sync"

	"github.com/justin4957/UNStatsExplorer/table"
)

// Store is the lookup consulted by every metadata retrieval.
type Store interface {
	// Get returns the cached result for key, if present and still valid.
	Get(key string) (table.Result, bool)

	// Put stores value under key, overwriting any previous entry.
	Put(key string, value table.Result) error
}

// Key derives the deterministic cache key for a collection and an optional
// filter value, e.g. "indicators_3" or "indicators_all".
func Key(collection, filter string) string {
	filter = strings.TrimSpace(filter)
	if filter == "" {
		filter = "all"
	}
	return collection + "_" + filter
}

// Memory is a map-backed Store living for the lifetime of its owner. There
// is no eviction: the reference collections are small and slow-changing, so
// unbounded growth is accepted.
type Memory struct {
	mu      sync.RWMutex
	entries map[string]table.Result
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{entries: make(map[string]table.Result)}
}

// Get returns the entry for key.
func (m *Memory) Get(key string) (table.Result, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	res, ok := m.entries[key]
	return res, ok
}

// Put stores value under key, replacing any existing entry.
func (m *Memory) Put(key string, value table.Result) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.entries[key] = value
	return nil
}

// Len returns the number of stored entries.
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.entries)
}
