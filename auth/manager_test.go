package auth

import (
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

func newTestManager(t *testing.T) (*Manager, *fakeClock) {
	t.Helper()
	clock := newFakeClock()
	return NewManager(memory.NewStore(), WithClock(clock.now)), clock
}

func TestInitializeCredentials(t *testing.T) {
	m, _ := newTestManager(t)

	assert.False(t, m.CredentialsSet())
	require.NoError(t, m.InitializeCredentials("a@b.com", "Abcd1234"))
	assert.True(t, m.CredentialsSet())

	email, ok := m.StoredEmail()
	require.True(t, ok)
	assert.Equal(t, "a@b.com", email)
}

func TestLogin(t *testing.T) {
	t.Run("fresh setup then login succeeds", func(t *testing.T) {
		m, _ := newTestManager(t)
		require.NoError(t, m.InitializeCredentials("a@b.com", "Abcd1234"))
		require.NoError(t, m.Login("a@b.com", "Abcd1234"))
		assert.True(t, m.Authenticated())
	})

	t.Run("not configured", func(t *testing.T) {
		m, _ := newTestManager(t)
		err := m.Login("a@b.com", "Abcd1234")
		assert.ErrorIs(t, err, ErrNotConfigured)
	})

	t.Run("wrong password reports remaining attempts", func(t *testing.T) {
		m, _ := newTestManager(t)
		require.NoError(t, m.InitializeCredentials("a@b.com", "Abcd1234"))

		err := m.Login("a@b.com", "wrong")
		require.ErrorIs(t, err, ErrInvalidCredentials)
		assert.Contains(t, err.Error(), "4 attempts remaining")
		assert.Equal(t, 4, m.RemainingAttempts())
	})

	t.Run("email comparison is case-sensitive", func(t *testing.T) {
		// The stored email is compared byte-for-byte, so a case mismatch
		// fails even with the correct password. Carried over as-is from
		// the behavior the stored records were created against.
		m, _ := newTestManager(t)
		require.NoError(t, m.InitializeCredentials("Admin@b.com", "Abcd1234"))
		err := m.Login("admin@b.com", "Abcd1234")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestLockout(t *testing.T) {
	t.Run("five failures lock the account", func(t *testing.T) {
		m, clock := newTestManager(t)
		require.NoError(t, m.InitializeCredentials("a@b.com", "Abcd1234"))

		for i := 0; i < MaxFailedAttempts; i++ {
			err := m.Login("a@b.com", "wrong")
			require.ErrorIs(t, err, ErrInvalidCredentials)
		}
		st := m.AccountLocked()
		assert.True(t, st.Locked)
		assert.Equal(t, 15, st.RemainingMinutes())

		// Even the correct password fails while locked, without consuming
		// an attempt.
		err := m.Login("a@b.com", "Abcd1234")
		assert.ErrorIs(t, err, ErrAccountLocked)
		assert.Contains(t, err.Error(), "locked")
		assert.Equal(t, 0, m.RemainingAttempts())

		// The lockout lifts on its own once the duration passes.
		clock.advance(LockoutDuration + time.Second)
		assert.False(t, m.AccountLocked().Locked)
		assert.NoError(t, m.Login("a@b.com", "Abcd1234"))
	})

	t.Run("success clears the failure counter", func(t *testing.T) {
		m, _ := newTestManager(t)
		require.NoError(t, m.InitializeCredentials("a@b.com", "Abcd1234"))

		require.Error(t, m.Login("a@b.com", "wrong"))
		require.NoError(t, m.Login("a@b.com", "Abcd1234"))
		assert.Equal(t, MaxFailedAttempts, m.RemainingAttempts())
	})
}

func TestSessionExpiry(t *testing.T) {
	m, clock := newTestManager(t)
	require.NoError(t, m.InitializeCredentials("a@b.com", "Abcd1234"))
	require.NoError(t, m.Login("a@b.com", "Abcd1234"))

	assert.True(t, m.Authenticated())

	clock.advance(SessionDuration + time.Minute)
	assert.False(t, m.Authenticated(), "session should expire lazily with no logout call")
	assert.Nil(t, m.SessionInfo())

	// Lazy expiry performed a logout, so the session stays gone even if
	// the clock went backwards afterwards.
	clock.advance(-2 * time.Minute)
	assert.False(t, m.Authenticated())
}

func TestLogout(t *testing.T) {
	m, _ := newTestManager(t)
	require.NoError(t, m.InitializeCredentials("a@b.com", "Abcd1234"))
	require.NoError(t, m.Login("a@b.com", "Abcd1234"))

	m.Logout()
	assert.False(t, m.Authenticated())

	// Logout is unconditional; calling it again is harmless.
	m.Logout()
}

func TestChangePassword(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		m, _ := newTestManager(t)
		require.NoError(t, m.InitializeCredentials("a@b.com", "Abcd1234"))
		require.NoError(t, m.Login("a@b.com", "Abcd1234"))

		require.NoError(t, m.ChangePassword("Abcd1234", "NewPass99"))
		assert.True(t, m.Authenticated(), "password change keeps the session")

		m.Logout()
		assert.ErrorIs(t, m.Login("a@b.com", "Abcd1234"), ErrInvalidCredentials)
		m.clearFailedAttempts()
		assert.NoError(t, m.Login("a@b.com", "NewPass99"))
	})

	t.Run("wrong current password", func(t *testing.T) {
		m, _ := newTestManager(t)
		require.NoError(t, m.InitializeCredentials("a@b.com", "Abcd1234"))
		assert.ErrorIs(t, m.ChangePassword("wrong", "NewPass99"), ErrWrongPassword)
	})

	t.Run("new password too short", func(t *testing.T) {
		m, _ := newTestManager(t)
		require.NoError(t, m.InitializeCredentials("a@b.com", "Abcd1234"))
		assert.ErrorIs(t, m.ChangePassword("Abcd1234", "short"), ErrPasswordTooShort)
	})

	t.Run("not configured", func(t *testing.T) {
		m, _ := newTestManager(t)
		assert.ErrorIs(t, m.ChangePassword("Abcd1234", "NewPass99"), ErrNotConfigured)
	})
}

func TestSessionInfo(t *testing.T) {
	m, clock := newTestManager(t)
	require.NoError(t, m.InitializeCredentials("a@b.com", "Abcd1234"))

	assert.Nil(t, m.SessionInfo())

	require.NoError(t, m.Login("a@b.com", "Abcd1234"))
	info := m.SessionInfo()
	require.NotNil(t, info)
	assert.Equal(t, 24*60, info.ExpiresIn)
	assert.True(t, info.ExpiresAt.Equal(clock.now().Add(SessionDuration)))

	clock.advance(23 * time.Hour)
	info = m.SessionInfo()
	require.NotNil(t, info)
	assert.Equal(t, 60, info.ExpiresIn)
}

func TestArgon2idScheme(t *testing.T) {
	store := memory.NewStore()
	m := NewManager(store, WithArgon2id())
	require.NoError(t, m.InitializeCredentials("a@b.com", "Abcd1234"))

	hash, err := store.Get("admin_password_hash")
	require.NoError(t, err)
	assert.Contains(t, hash, "$argon2id$")

	assert.NoError(t, m.Login("a@b.com", "Abcd1234"))
	assert.ErrorIs(t, m.Login("a@b.com", "wrong"), ErrInvalidCredentials)
}
