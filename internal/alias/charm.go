// ABOUTME: Charm KV backed alias store with automatic cloud sync.
// ABOUTME: Learned aliases follow the user across devices, E2E encrypted.
package alias

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/charmbracelet/charm/kv"
	"github.com/harperreed/pulse/internal/models"
)

const (
	dbName    = "pulse"
	charmHost = "charm.2389.dev"
)

// CharmStore persists the learned alias tier in Charm KV.
type CharmStore struct {
	kv       *kv.KV
	autoSync bool
	mu       sync.Mutex
}

var _ Store = (*CharmStore)(nil)

// OpenCharm opens the Charm-backed alias store. Falls back to local-only
// mode when no Charm account is linked.
func OpenCharm() (*CharmStore, error) {
	// Set server before opening KV
	if err := os.Setenv("CHARM_HOST", charmHost); err != nil {
		return nil, err
	}

	db, err := kv.OpenWithDefaultsFallback(dbName)
	if err != nil {
		return nil, fmt.Errorf("open charm kv: %w", err)
	}

	s := &CharmStore{kv: db, autoSync: true}

	// Pull remote data on startup (skip in read-only mode)
	if !db.IsReadOnly() {
		_ = db.Sync()
	}

	return s, nil
}

// SetAutoSync enables or disables automatic sync after writes.
func (s *CharmStore) SetAutoSync(enabled bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.autoSync = enabled
}

func (s *CharmStore) syncIfEnabled() {
	if s.autoSync && !s.kv.IsReadOnly() {
		_ = s.kv.Sync()
	}
}

// Get returns the learned aliases for (category, field).
func (s *CharmStore) Get(c models.Category, field string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.get(storeKey(c, field))
}

// get reads and decodes one key. A missing key reads as an empty list.
func (s *CharmStore) get(key string) ([]string, error) {
	keys, err := s.kv.Keys()
	if err != nil {
		return nil, err
	}
	keyBytes := []byte(key)
	for _, k := range keys {
		if !bytes.Equal(k, keyBytes) {
			continue
		}
		val, err := s.kv.Get(k)
		if err != nil {
			return nil, err
		}
		return decodeAliases(val)
	}
	return nil, nil
}

// Put records a confirmed header for (category, field).
func (s *CharmStore) Put(c models.Category, field, header string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.kv.IsReadOnly() {
		return fmt.Errorf("cannot write: database is locked by another process (MCP server?)")
	}

	key := storeKey(c, field)
	got, err := s.get(key)
	if err != nil {
		return err
	}

	updated := appendUnique(got, normalizeHeader(header))
	if len(updated) == len(got) {
		return nil
	}

	data, err := json.Marshal(updated)
	if err != nil {
		return err
	}
	if err := s.kv.Set([]byte(key), data); err != nil {
		return err
	}
	s.syncIfEnabled()
	return nil
}

// All returns every learned entry under the alias namespace.
func (s *CharmStore) All() (map[models.Category]map[string][]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	keys, err := s.kv.Keys()
	if err != nil {
		return nil, err
	}

	out := make(map[models.Category]map[string][]string)
	prefix := []byte(KeyPrefix)
	for _, k := range keys {
		if !bytes.HasPrefix(k, prefix) {
			continue
		}
		c, field, ok := parseKey(string(k))
		if !ok {
			continue
		}
		val, err := s.kv.Get(k)
		if err != nil {
			return nil, err
		}
		aliases, err := decodeAliases(val)
		if err != nil {
			return nil, err
		}
		if out[c] == nil {
			out[c] = make(map[string][]string)
		}
		out[c][field] = aliases
	}
	return out, nil
}

// Forget drops learned aliases for a field, or the whole category.
func (s *CharmStore) Forget(c models.Category, field string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.kv.IsReadOnly() {
		return fmt.Errorf("cannot write: database is locked by another process (MCP server?)")
	}

	fields := []string{field}
	if field == "" {
		fields = Fields(c)
	}
	for _, f := range fields {
		if err := s.kv.Delete([]byte(storeKey(c, f))); err != nil {
			return err
		}
	}
	s.syncIfEnabled()
	return nil
}

// Close closes the KV database connection.
func (s *CharmStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.kv != nil {
		return s.kv.Close()
	}
	return nil
}

// decodeAliases unmarshals a stored JSON string array.
func decodeAliases(data []byte) ([]string, error) {
	var out []string
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("decode alias entry: %w", err)
	}
	return out, nil
}
