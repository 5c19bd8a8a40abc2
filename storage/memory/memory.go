// Package memory provides a thread-safe in-memory implementation of storage.Store.
package memory

import (
	"fmt"
	"sync"

	"github.com/caothongdev/portfolio/storage"
)

// Store is a thread-safe in-memory implementation of storage.Store.
// Suitable for testing, demos, and single-process use cases.
type Store struct {
	mu   sync.RWMutex
	data map[string]string
}

var _ storage.Store = (*Store)(nil)

// NewStore creates a new empty in-memory Store.
func NewStore() *Store {
	return &Store{data: make(map[string]string)}
}

func (s *Store) Get(key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	value, ok := s.data[key]
	if !ok {
		return "", fmt.Errorf("%s: %w", key, storage.ErrKeyNotFound)
	}
	return value, nil
}

func (s *Store) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = value
	return nil
}

func (s *Store) Remove(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
	return nil
}
