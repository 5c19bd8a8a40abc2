// Package activity records user actions in an append-only, capped log with
// per-instance observer broadcast for reactive consumers.
package activity

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/caothongdev/portfolio/storage"
)

// Type classifies an activity record.
type Type string

const (
	TypeBlogCreated Type = "blog_created"
	TypeBlogUpdated Type = "blog_updated"
	TypeBlogDeleted Type = "blog_deleted"
	TypeBlogViewed  Type = "blog_viewed"
	TypeContactSent Type = "contact_sent"
	TypeExport      Type = "export"
	TypeImport      Type = "import"
	TypeLogin       Type = "login"
	TypeLogout      Type = "logout"
)

// Record is one logged activity. ID and Timestamp are assigned by Log.
type Record struct {
	ID          string         `json:"id"`
	Type        Type           `json:"type"`
	Title       string         `json:"title"`
	Description string         `json:"description,omitempty"`
	Timestamp   string         `json:"timestamp"`
	Metadata    map[string]any `json:"metadata,omitempty"`
}

// Observer receives the three distinct notifications the logger broadcasts.
// Implementations must not call back into the Logger from a notification.
type Observer interface {
	ActivityLogged(rec Record)
	ActivityDeleted(id string)
	ActivitiesCleared()
}

const (
	storageKey = "portfolio_activities"
	// maxRecords caps the stored log; the oldest entries are evicted first.
	maxRecords = 50
)

// Logger is an append-only activity log over a storage.Store. The stored
// list is newest-first and capped at maxRecords. One Logger per process is
// expected; concurrent writers from other processes sharing the store can
// lose updates, which is an accepted limitation of the flat store.
type Logger struct {
	store  storage.Store
	logger *slog.Logger
	now    func() time.Time

	mu        sync.Mutex
	observers map[int]Observer
	nextObs   int
}

// Option configures a Logger.
type Option func(*Logger)

// WithClock overrides the time source. Used by tests.
func WithClock(now func() time.Time) Option {
	return func(l *Logger) { l.now = now }
}

// WithLogger sets the structured diagnostic logger.
func WithLogger(logger *slog.Logger) Option {
	return func(l *Logger) { l.logger = logger.With("component", "activity") }
}

// NewLogger creates a Logger over the given store.
func NewLogger(store storage.Store, opts ...Option) *Logger {
	l := &Logger{
		store:     store,
		now:       time.Now,
		observers: make(map[int]Observer),
	}
	for _, opt := range opts {
		opt(l)
	}
	if l.logger == nil {
		l.logger = slog.Default().With("component", "activity")
	}
	return l
}

// Subscribe registers an observer and returns its unsubscribe func.
func (l *Logger) Subscribe(o Observer) func() {
	l.mu.Lock()
	defer l.mu.Unlock()
	id := l.nextObs
	l.nextObs++
	l.observers[id] = o
	return func() {
		l.mu.Lock()
		defer l.mu.Unlock()
		delete(l.observers, id)
	}
}

func (l *Logger) snapshotObservers() []Observer {
	l.mu.Lock()
	defer l.mu.Unlock()
	obs := make([]Observer, 0, len(l.observers))
	for _, o := range l.observers {
		obs = append(obs, o)
	}
	return obs
}

// Log assigns an ID and timestamp to rec, prepends it to the stored list,
// truncates to the cap, persists, and notifies observers. Persistence
// failures are logged and otherwise swallowed; activity logging is
// fire-and-forget.
func (l *Logger) Log(rec Record) {
	rec.ID = l.generateID()
	rec.Timestamp = l.now().UTC().Format(time.RFC3339)

	records := append([]Record{rec}, l.All()...)
	if len(records) > maxRecords {
		records = records[:maxRecords]
	}
	if !l.persist(records) {
		return
	}
	for _, o := range l.snapshotObservers() {
		o.ActivityLogged(rec)
	}
}

// All returns every stored record, newest first. Missing or corrupt stored
// data reads as an empty log.
func (l *Logger) All() []Record {
	raw, err := l.store.Get(storageKey)
	if err != nil {
		return nil
	}
	var records []Record
	if err := json.Unmarshal([]byte(raw), &records); err != nil {
		l.logger.Error("corrupt activity log, treating as empty", "error", err)
		return nil
	}
	return records
}

// Recent returns the newest limit records.
func (l *Logger) Recent(limit int) []Record {
	records := l.All()
	if limit < len(records) {
		records = records[:limit]
	}
	return records
}

// ByType returns all records of the given type, newest first.
func (l *Logger) ByType(t Type) []Record {
	var out []Record
	for _, rec := range l.All() {
		if rec.Type == t {
			out = append(out, rec)
		}
	}
	return out
}

// FromLastDays returns records no older than the given number of days.
func (l *Logger) FromLastDays(days int) []Record {
	cutoff := l.now().AddDate(0, 0, -days)
	var out []Record
	for _, rec := range l.All() {
		ts, err := time.Parse(time.RFC3339, rec.Timestamp)
		if err != nil {
			continue
		}
		if !ts.Before(cutoff) {
			out = append(out, rec)
		}
	}
	return out
}

// Clear empties the log and notifies observers.
func (l *Logger) Clear() {
	if err := l.store.Remove(storageKey); err != nil {
		l.logger.Error("clearing activity log", "error", err)
		return
	}
	for _, o := range l.snapshotObservers() {
		o.ActivitiesCleared()
	}
}

// Delete removes one record by ID and notifies observers.
func (l *Logger) Delete(id string) {
	records := l.All()
	kept := make([]Record, 0, len(records))
	for _, rec := range records {
		if rec.ID != id {
			kept = append(kept, rec)
		}
	}
	if !l.persist(kept) {
		return
	}
	for _, o := range l.snapshotObservers() {
		o.ActivityDeleted(id)
	}
}

func (l *Logger) persist(records []Record) bool {
	data, err := json.Marshal(records)
	if err != nil {
		l.logger.Error("encoding activity log", "error", err)
		return false
	}
	if err := l.store.Set(storageKey, string(data)); err != nil {
		l.logger.Error("persisting activity log", "error", err)
		return false
	}
	return true
}

// generateID builds a time-ordered, process-unique ID. Not cryptographically
// unique; collisions across processes are tolerable for a display log.
func (l *Logger) generateID() string {
	suffix := make([]byte, 4)
	rand.Read(suffix)
	return fmt.Sprintf("%d-%s", l.now().UnixMilli(), hex.EncodeToString(suffix))
}
