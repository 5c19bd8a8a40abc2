package activity

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caothongdev/portfolio/storage/memory"
)

type fakeClock struct {
	t time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) now() time.Time {
	return c.t
}

func (c *fakeClock) advance(d time.Duration) {
	c.t = c.t.Add(d)
}

// recordingObserver collects every notification it receives.
type recordingObserver struct {
	logged  []Record
	deleted []string
	cleared int
}

func (o *recordingObserver) ActivityLogged(rec Record) { o.logged = append(o.logged, rec) }
func (o *recordingObserver) ActivityDeleted(id string) { o.deleted = append(o.deleted, id) }
func (o *recordingObserver) ActivitiesCleared()        { o.cleared++ }

func newTestLogger(t *testing.T) (*Logger, *fakeClock) {
	t.Helper()
	clock := newFakeClock()
	return NewLogger(memory.NewStore(), WithClock(clock.now)), clock
}

func TestLog(t *testing.T) {
	l, _ := newTestLogger(t)

	l.Log(Record{Type: TypeBlogCreated, Title: "first"})
	l.Log(Record{Type: TypeBlogUpdated, Title: "second"})

	records := l.All()
	require.Len(t, records, 2)
	assert.Equal(t, "second", records[0].Title, "newest first")
	assert.Equal(t, "first", records[1].Title)
	assert.NotEmpty(t, records[0].ID)
	assert.NotEmpty(t, records[0].Timestamp)
	assert.NotEqual(t, records[0].ID, records[1].ID)
}

func TestCap(t *testing.T) {
	l, clock := newTestLogger(t)

	for i := 0; i < 60; i++ {
		l.Log(Record{Type: TypeBlogViewed, Title: fmt.Sprintf("entry %02d", i)})
		clock.advance(time.Second)
	}

	records := l.All()
	require.Len(t, records, maxRecords, "log is capped at 50 entries")
	assert.Equal(t, "entry 59", records[0].Title, "newest kept")
	assert.Equal(t, "entry 10", records[len(records)-1].Title, "ten oldest evicted")
}

func TestObservers(t *testing.T) {
	l, _ := newTestLogger(t)
	obs := &recordingObserver{}
	unsubscribe := l.Subscribe(obs)

	l.Log(Record{Type: TypeLogin, Title: "login"})
	require.Len(t, obs.logged, 1)
	assert.Equal(t, "login", obs.logged[0].Title)
	assert.NotEmpty(t, obs.logged[0].ID, "observers see the assigned ID")

	l.Delete(obs.logged[0].ID)
	require.Len(t, obs.deleted, 1)
	assert.Equal(t, obs.logged[0].ID, obs.deleted[0])

	l.Clear()
	assert.Equal(t, 1, obs.cleared)

	unsubscribe()
	l.Log(Record{Type: TypeLogout, Title: "logout"})
	assert.Len(t, obs.logged, 1, "unsubscribed observers stop receiving")
}

func TestFilters(t *testing.T) {
	l, clock := newTestLogger(t)

	l.Log(Record{Type: TypeBlogCreated, Title: "old post"})
	clock.advance(72 * time.Hour)
	l.Log(Record{Type: TypeBlogCreated, Title: "new post"})
	l.Log(Record{Type: TypeLogin, Title: "login"})

	t.Run("by type", func(t *testing.T) {
		created := l.ByType(TypeBlogCreated)
		require.Len(t, created, 2)
		assert.Equal(t, "new post", created[0].Title)
		assert.Empty(t, l.ByType(TypeExport))
	})

	t.Run("recent", func(t *testing.T) {
		recent := l.Recent(2)
		require.Len(t, recent, 2)
		assert.Equal(t, "login", recent[0].Title)
	})

	t.Run("from last days", func(t *testing.T) {
		lastDay := l.FromLastDays(1)
		require.Len(t, lastDay, 2)
		assert.Equal(t, "login", lastDay[0].Title)
		assert.Len(t, l.FromLastDays(4), 3)
	})
}

func TestDelete(t *testing.T) {
	l, _ := newTestLogger(t)

	l.Log(Record{Type: TypeBlogCreated, Title: "keep"})
	l.Log(Record{Type: TypeBlogCreated, Title: "drop"})

	records := l.All()
	require.Len(t, records, 2)
	l.Delete(records[0].ID)

	records = l.All()
	require.Len(t, records, 1)
	assert.Equal(t, "keep", records[0].Title)
}

func TestClear(t *testing.T) {
	l, _ := newTestLogger(t)
	l.Log(Record{Type: TypeBlogCreated, Title: "a"})
	l.Clear()
	assert.Empty(t, l.All())
}

func TestCorruptData(t *testing.T) {
	store := memory.NewStore()
	require.NoError(t, store.Set(storageKey, "{not json"))
	l := NewLogger(store)
	assert.Empty(t, l.All(), "corrupt stored data reads as empty")

	// Logging over a corrupt value replaces it.
	l.Log(Record{Type: TypeLogin, Title: "login"})
	assert.Len(t, l.All(), 1)
}

func TestFormatRelativeTime(t *testing.T) {
	now := time.Date(2025, 1, 10, 12, 0, 0, 0, time.UTC)
	stamp := func(d time.Duration) string {
		return now.Add(-d).Format(time.RFC3339)
	}

	assert.Equal(t, "just now", FormatRelativeTime(stamp(30*time.Second), now))
	assert.Equal(t, "5 minutes ago", FormatRelativeTime(stamp(5*time.Minute), now))
	assert.Equal(t, "3 hours ago", FormatRelativeTime(stamp(3*time.Hour), now))
	assert.Equal(t, "2 days ago", FormatRelativeTime(stamp(48*time.Hour), now))
	assert.Equal(t, "bogus", FormatRelativeTime("bogus", now))
}
