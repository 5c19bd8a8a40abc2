package views

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caothongdev/portfolio/storage/memory"
)

func TestCounter(t *testing.T) {
	c := NewCounter(memory.NewStore(), nil)

	t.Run("increment initializes on first view", func(t *testing.T) {
		assert.Equal(t, 0, c.Get("post-a"))
		require.NoError(t, c.Increment("post-a"))
		assert.Equal(t, 1, c.Get("post-a"))
		require.NoError(t, c.Increment("post-a"))
		require.NoError(t, c.Increment("post-b"))
		assert.Equal(t, 2, c.Get("post-a"))
		assert.Equal(t, 1, c.Get("post-b"))
	})

	t.Run("all", func(t *testing.T) {
		assert.Equal(t, map[string]int{"post-a": 2, "post-b": 1}, c.All())
	})

	t.Run("reset one", func(t *testing.T) {
		require.NoError(t, c.Reset("post-a"))
		assert.Equal(t, 0, c.Get("post-a"))
		assert.Equal(t, 1, c.Get("post-b"))
	})

	t.Run("reset all", func(t *testing.T) {
		require.NoError(t, c.ResetAll())
		assert.Empty(t, c.All())
	})
}

func TestCounterCorruptData(t *testing.T) {
	store := memory.NewStore()
	require.NoError(t, store.Set(storageKey, "not json"))
	c := NewCounter(store, nil)

	assert.Equal(t, 0, c.Get("post-a"), "corrupt stored data reads as empty")
	require.NoError(t, c.Increment("post-a"))
	assert.Equal(t, 1, c.Get("post-a"))
}
