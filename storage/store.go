// Package storage provides the flat key-value persistence layer backing the
// portfolio core. All values are UTF-8 strings; composite structures are
// stored as JSON by the callers.
package storage

import "errors"

// ErrKeyNotFound is returned by Get when a key has no stored value.
var ErrKeyNotFound = errors.New("key not found")

// Store defines the interface for persistent key-value storage scoped to one
// deployment. The store offers no transactions or compare-and-swap;
// read-modify-write sequences are only safe within a single process.
type Store interface {
	// Get returns the value stored under key, or ErrKeyNotFound.
	Get(key string) (string, error)
	// Set stores value under key, overwriting any previous value.
	Set(key string, value string) error
	// Remove deletes the value stored under key. Removing an absent key is
	// not an error.
	Remove(key string) error
}
