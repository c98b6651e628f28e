// ABOUTME: Badger-backed alias store for installs without a Charm account.
// ABOUTME: Same key layout as the Charm backend, local disk only.
package alias

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"

	badger "github.com/dgraph-io/badger/v3"
	"github.com/harperreed/pulse/internal/models"
)

// LocalStore persists the learned alias tier in a local Badger database.
type LocalStore struct {
	db *badger.DB
	mu sync.Mutex
}

var _ Store = (*LocalStore)(nil)

// OpenLocal opens (or creates) a Badger-backed alias store at dir.
func OpenLocal(dir string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, fmt.Errorf("create alias directory: %w", err)
	}

	opts := badger.DefaultOptions(dir).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open alias store: %w", err)
	}
	return &LocalStore{db: db}, nil
}

// Get returns the learned aliases for (category, field).
func (s *LocalStore) Get(c models.Category, field string) ([]string, error) {
	var out []string
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(storeKey(c, field)))
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			decoded, err := decodeAliases(val)
			if err != nil {
				return err
			}
			out = decoded
			return nil
		})
	})
	return out, err
}

// Put records a confirmed header for (category, field).
func (s *LocalStore) Put(c models.Category, field, header string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	got, err := s.Get(c, field)
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
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(storeKey(c, field)), data)
	})
}

// All returns every learned entry under the alias namespace.
func (s *LocalStore) All() (map[models.Category]map[string][]string, error) {
	out := make(map[models.Category]map[string][]string)
	err := s.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefix := []byte(KeyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()
			c, field, ok := parseKey(string(item.Key()))
			if !ok {
				continue
			}
			err := item.Value(func(val []byte) error {
				aliases, err := decodeAliases(val)
				if err != nil {
					return err
				}
				if out[c] == nil {
					out[c] = make(map[string][]string)
				}
				out[c][field] = aliases
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	return out, err
}

// Forget drops learned aliases for a field, or the whole category.
func (s *LocalStore) Forget(c models.Category, field string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	fields := []string{field}
	if field == "" {
		fields = Fields(c)
	}
	return s.db.Update(func(txn *badger.Txn) error {
		for _, f := range fields {
			if err := txn.Delete([]byte(storeKey(c, f))); err != nil && err != badger.ErrKeyNotFound {
				return err
			}
		}
		return nil
	})
}

// Close closes the Badger database.
func (s *LocalStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}
