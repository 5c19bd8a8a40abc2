package blog

import (
	"encoding/json"
	"log/slog"
	"strings"
	"time"

	"github.com/caothongdev/portfolio/storage"
	"golang.org/x/text/unicode/norm"
)

const (
	storageKey = "portfolio_blogs"
	backupKey  = "portfolio_blogs_backup"
)

// Manager owns the post collection in a storage.Store. Domain violations
// (duplicate title, missing post, rename collision) surface as sentinel
// errors; persistence failures degrade to ErrSaveFailed or a false return,
// since the store is best-effort.
type Manager struct {
	store  storage.Store
	logger *slog.Logger
	now    func() time.Time
}

// Option configures a Manager.
type Option func(*Manager)

// WithClock overrides the time source. Used by tests.
func WithClock(now func() time.Time) Option {
	return func(m *Manager) { m.now = now }
}

// WithLogger sets the structured diagnostic logger.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Manager) { m.logger = logger.With("component", "blog") }
}

// NewManager creates a Manager over the given store.
func NewManager(store storage.Store, opts ...Option) *Manager {
	m := &Manager{
		store: store,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.logger == nil {
		m.logger = slog.Default().With("component", "blog")
	}
	return m
}

// All returns the full post mapping. When nothing is stored (first run) or
// the stored value does not parse, the hard-coded seed posts are returned,
// so the collection is never truly empty.
func (m *Manager) All() Posts {
	raw, err := m.store.Get(storageKey)
	if err != nil {
		return seedPosts()
	}
	var posts Posts
	if err := json.Unmarshal([]byte(raw), &posts); err != nil {
		m.logger.Error("corrupt post data, falling back to seed posts", "error", err)
		return seedPosts()
	}
	return posts
}

// Save persists the full mapping, copying the current value to the backup
// slot first and stamping any record missing an UPDATED_AT. Returns false on
// any persistence failure; callers should treat that as "change not saved".
func (m *Manager) Save(posts Posts) bool {
	if current, err := m.store.Get(storageKey); err == nil {
		if err := m.store.Set(backupKey, current); err != nil {
			m.logger.Error("writing post backup", "error", err)
			return false
		}
	}

	stamped := make(Posts, len(posts))
	nowISO := m.now().UTC().Format(time.RFC3339)
	for title, post := range posts {
		if post.UpdatedAt == "" {
			post.UpdatedAt = nowISO
		}
		stamped[title] = post
	}

	data, err := json.Marshal(stamped)
	if err != nil {
		m.logger.Error("encoding posts", "error", err)
		return false
	}
	if err := m.store.Set(storageKey, string(data)); err != nil {
		m.logger.Error("persisting posts", "error", err)
		return false
	}
	return true
}

// Add inserts a new post under title. The title must not already exist.
func (m *Manager) Add(title string, post Post) error {
	posts := m.All()
	if _, exists := posts[title]; exists {
		return ErrDuplicateTitle
	}
	nowISO := m.now().UTC().Format(time.RFC3339)
	post.CreatedAt = nowISO
	post.UpdatedAt = nowISO
	if post.Status == "" {
		post.Status = StatusPublished
	}
	posts[title] = post
	if !m.Save(posts) {
		return ErrSaveFailed
	}
	return nil
}

// Update replaces the post stored under oldTitle. When newTitle differs this
// is a move: the old key is deleted and the record re-inserted under the new
// one, guarding against collisions with existing titles. CREATED_AT is
// preserved from the original record; UPDATED_AT is refreshed.
func (m *Manager) Update(oldTitle, newTitle string, post Post) error {
	posts := m.All()
	existing, ok := posts[oldTitle]
	if !ok {
		return ErrPostNotFound
	}
	if oldTitle != newTitle {
		if _, collision := posts[newTitle]; collision {
			return ErrTitleExists
		}
	}
	post.CreatedAt = existing.CreatedAt
	if post.CreatedAt == "" {
		post.CreatedAt = m.now().UTC().Format(time.RFC3339)
	}
	post.UpdatedAt = m.now().UTC().Format(time.RFC3339)
	if post.Status == "" {
		post.Status = StatusPublished
	}
	if oldTitle != newTitle {
		delete(posts, oldTitle)
	}
	posts[newTitle] = post
	if !m.Save(posts) {
		return ErrSaveFailed
	}
	return nil
}

// Delete removes the post stored under title.
func (m *Manager) Delete(title string) error {
	posts := m.All()
	if _, ok := posts[title]; !ok {
		return ErrPostNotFound
	}
	delete(posts, title)
	if !m.Save(posts) {
		return ErrSaveFailed
	}
	return nil
}

// Search returns the posts whose title, description, or any tag contains
// query, case-insensitively. Both sides are Unicode-normalized so composed
// and decomposed forms of accented text match.
func (m *Manager) Search(query string) Posts {
	term := searchFold(query)
	matched := make(Posts)
	for title, post := range m.All() {
		if strings.Contains(searchFold(title), term) ||
			strings.Contains(searchFold(post.Description), term) ||
			anyTagMatches(post.Tags, term) {
			matched[title] = post
		}
	}
	return matched
}

func anyTagMatches(tags []string, term string) bool {
	for _, tag := range tags {
		if strings.Contains(searchFold(tag), term) {
			return true
		}
	}
	return false
}

func searchFold(s string) string {
	return strings.ToLower(norm.NFC.String(s))
}

// ByStatus returns the posts with the given status. A record without a
// status counts as published.
func (m *Manager) ByStatus(status Status) Posts {
	matched := make(Posts)
	for title, post := range m.All() {
		if post.EffectiveStatus() == status {
			matched[title] = post
		}
	}
	return matched
}

// ExportAll serializes the full mapping as indented JSON.
func (m *Manager) ExportAll() (string, error) {
	data, err := json.MarshalIndent(m.All(), "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// ImportAll parses serialized and fully replaces the stored mapping via
// Save, inheriting the backup-before-write guarantee. No merge is performed.
func (m *Manager) ImportAll(serialized string) error {
	var posts Posts
	if err := json.Unmarshal([]byte(serialized), &posts); err != nil {
		return ErrInvalidImport
	}
	if !m.Save(posts) {
		return ErrSaveFailed
	}
	return nil
}

// RestoreFromBackup copies the single backup slot back into the primary
// slot. Returns false when no backup exists or the write fails.
func (m *Manager) RestoreFromBackup() bool {
	backup, err := m.store.Get(backupKey)
	if err != nil {
		return false
	}
	if err := m.store.Set(storageKey, backup); err != nil {
		m.logger.Error("restoring post backup", "error", err)
		return false
	}
	return true
}
