// ABOUTME: Store interface for the learned alias tier, plus in-memory implementation.
// ABOUTME: Learned aliases grow monotonically; no expiry, no size cap.
package alias

import (
	"sort"
	"sync"

	"github.com/harperreed/pulse/internal/models"
)

// Store is the learned alias tier: header strings confirmed at runtime as
// referring to a known field. Implementations must serialize writes.
type Store interface {
	// Get returns the learned aliases for (category, field), lower-cased.
	Get(c models.Category, field string) ([]string, error)

	// Put records a confirmed header string for (category, field).
	// Duplicate puts are no-ops.
	Put(c models.Category, field, header string) error

	// All returns every learned entry, keyed category -> field -> aliases.
	All() (map[models.Category]map[string][]string, error)

	// Forget drops learned aliases for a field. An empty field drops the
	// whole category.
	Forget(c models.Category, field string) error

	Close() error
}

// MemoryStore is a map-backed Store for tests and the "memory" backend.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string][]string // "category/field" -> aliases
}

// Compile-time check that MemoryStore implements Store.
var _ Store = (*MemoryStore)(nil)

// NewMemoryStore creates an empty in-memory learned tier.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(map[string][]string)}
}

func memKey(c models.Category, field string) string {
	return string(c) + "/" + field
}

// Get returns the learned aliases for (category, field).
func (s *MemoryStore) Get(c models.Category, field string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	got := s.entries[memKey(c, field)]
	out := make([]string, len(got))
	copy(out, got)
	return out, nil
}

// Put records a confirmed header for (category, field).
func (s *MemoryStore) Put(c models.Category, field, header string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := memKey(c, field)
	s.entries[key] = appendUnique(s.entries[key], normalizeHeader(header))
	return nil
}

// All returns every learned entry.
func (s *MemoryStore) All() (map[models.Category]map[string][]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make(map[models.Category]map[string][]string)
	for key, aliases := range s.entries {
		c, field := splitKey(key)
		if out[c] == nil {
			out[c] = make(map[string][]string)
		}
		cp := make([]string, len(aliases))
		copy(cp, aliases)
		sort.Strings(cp)
		out[c][field] = cp
	}
	return out, nil
}

// Forget drops learned aliases for a field, or the whole category.
func (s *MemoryStore) Forget(c models.Category, field string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if field != "" {
		delete(s.entries, memKey(c, field))
		return nil
	}
	for _, f := range Fields(c) {
		delete(s.entries, memKey(c, f))
	}
	return nil
}

// Close is a no-op for the in-memory store.
func (s *MemoryStore) Close() error { return nil }
