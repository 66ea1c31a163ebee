package infra

import (
	"fmt"
	"log"
	"sync"
	"time"

	bolt "go.etcd.io/bbolt"

	"flashtrade/internal/domain"
)

var bucketName = []byte("flashtrade")

// BoltStore is the single local key-value store backing all persisted state.
// All values are JSON documents written by the repositories.
type BoltStore struct {
	db *bolt.DB
}

// NewBoltStore opens (or creates) the store file at path
func NewBoltStore(path string) (*BoltStore, error) {
	if path == "" {
		return nil, fmt.Errorf("store path is required")
	}

	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open store at %s: %w", path, err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketName)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create store bucket: %w", err)
	}

	log.Printf("[OK] Store opened at %s", path)
	return &BoltStore{db: db}, nil
}

// Get retrieves the raw value for a key; ok is false when absent
func (s *BoltStore) Get(key string) ([]byte, bool) {
	var value []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		if v := tx.Bucket(bucketName).Get([]byte(key)); v != nil {
			value = make([]byte, len(v))
			copy(value, v)
		}
		return nil
	})
	if err != nil {
		// Treat a failed read as absence: callers see "first run", not an error
		log.Printf("[WARN] Store read failed for key %q: %v", key, err)
		return nil, false
	}
	return value, value != nil
}

// Set stores the raw value for a key
func (s *BoltStore) Set(key string, value []byte) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketName).Put([]byte(key), value)
	})
}

// Remove deletes a key; removing an absent key is a no-op
func (s *BoltStore) Remove(key string) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketName).Delete([]byte(key))
	})
}

// Close closes the underlying store file
func (s *BoltStore) Close() error {
	return s.db.Close()
}

// MemoryStore is an in-memory Store used by tests and short-lived sessions
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string][]byte
}

// NewMemoryStore creates an empty MemoryStore
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string][]byte)}
}

// Get retrieves the raw value for a key; ok is false when absent
func (s *MemoryStore) Get(key string) ([]byte, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[key]
	return v, ok
}

// Set stores the raw value for a key
func (s *MemoryStore) Set(key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := make([]byte, len(value))
	copy(cp, value)
	s.values[key] = cp
	return nil
}

// Remove deletes a key
func (s *MemoryStore) Remove(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, key)
	return nil
}

// Close is a no-op for the in-memory store
func (s *MemoryStore) Close() error {
	return nil
}

// NullStore is the degraded-mode store used when the data file cannot be
// opened: every read reports absent and every write is a silent no-op, so the
// engine keeps running with in-memory state only.
type NullStore struct{}

// NewNullStore creates a NullStore
func NewNullStore() *NullStore {
	return &NullStore{}
}

// Get always reports the key as absent
func (NullStore) Get(string) ([]byte, bool) { return nil, false }

// Set discards the value
func (NullStore) Set(string, []byte) error { return nil }

// Remove is a no-op
func (NullStore) Remove(string) error { return nil }

// Close is a no-op
func (NullStore) Close() error { return nil }

var (
	_ domain.Store = (*BoltStore)(nil)
	_ domain.Store = (*MemoryStore)(nil)
	_ domain.Store = NullStore{}
)
