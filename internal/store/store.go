// Package store provides the in-memory keyed entity store shared by the
// catalog, accounts and NFT services. Entities live in process memory for
// the lifetime of the process; durability comes from whole-store snapshots
// taken at the restart boundaries.
package store

import "sync"

// Store maps keys to entity records. A single writer mutates at a time;
// readers share access. List and Snapshot return point-in-time copies, so
// callers may keep iterating while the live map moves on.
type Store[K comparable, V any] struct {
	mu      sync.RWMutex
	entries map[K]V
}

// New returns an empty store.
func New[K comparable, V any]() *Store[K, V] {
	return &Store[K, V]{entries: make(map[K]V)}
}

// Get returns the entity stored under id.
func (s *Store[K, V]) Get(id K) (V, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.entries[id]
	return v, ok
}

// Contains reports whether id is present.
func (s *Store[K, V]) Contains(id K) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.entries[id]
	return ok
}

// Upsert creates or replaces the entity stored under id.
func (s *Store[K, V]) Upsert(id K, v V) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[id] = v
}

// Len returns the number of stored entities.
func (s *Store[K, V]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.entries)
}

// List returns a copy of all stored entities in map order.
func (s *Store[K, V]) List() []V {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]V, 0, len(s.entries))
	for _, v := range s.entries {
		out = append(out, v)
	}
	return out
}

// Snapshot returns a copy of the full mapping.
func (s *Store[K, V]) Snapshot() map[K]V {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[K]V, len(s.entries))
	for k, v := range s.entries {
		out[k] = v
	}
	return out
}

// Replace swaps the entire mapping in one step. Used on snapshot restore;
// a nil argument resets the store to empty.
func (s *Store[K, V]) Replace(entries map[K]V) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if entries == nil {
		s.entries = make(map[K]V)
		return
	}
	s.entries = entries
}
