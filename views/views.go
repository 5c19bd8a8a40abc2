// Package views tracks per-post view counts in a storage.Store.
package views

import (
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/caothongdev/portfolio/storage"
)

const storageKey = "blog-views"

// Counter maps content keys to monotonically increasing view counts.
// Counts only decrease on explicit reset. The in-process mutex keeps
// read-modify-write increments atomic for one process; multi-process
// sharing of the store is last-write-wins.
type Counter struct {
	store  storage.Store
	logger *slog.Logger
	mu     sync.Mutex
}

// NewCounter creates a Counter over the given store.
func NewCounter(store storage.Store, logger *slog.Logger) *Counter {
	if logger == nil {
		logger = slog.Default()
	}
	return &Counter{store: store, logger: logger.With("component", "views")}
}

// Increment adds one view for key, initializing the count on first view.
func (c *Counter) Increment(key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	counts := c.load()
	counts[key]++
	return c.persist(counts)
}

// Get returns the view count for key, zero if never viewed.
func (c *Counter) Get(key string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.load()[key]
}

// All returns a copy of every view count.
func (c *Counter) All() map[string]int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.load()
}

// Reset removes the count for one key.
func (c *Counter) Reset(key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	counts := c.load()
	delete(counts, key)
	return c.persist(counts)
}

// ResetAll removes every count.
func (c *Counter) ResetAll() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.store.Remove(storageKey)
}

// load reads the stored map; missing or corrupt data reads as empty.
func (c *Counter) load() map[string]int {
	counts := make(map[string]int)
	raw, err := c.store.Get(storageKey)
	if err != nil {
		return counts
	}
	if err := json.Unmarshal([]byte(raw), &counts); err != nil {
		c.logger.Error("corrupt view counts, treating as empty", "error", err)
		return make(map[string]int)
	}
	return counts
}

func (c *Counter) persist(counts map[string]int) error {
	data, err := json.Marshal(counts)
	if err != nil {
		return err
	}
	return c.store.Set(storageKey, string(data))
}
