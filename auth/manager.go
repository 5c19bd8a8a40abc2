// Package auth owns the admin credential record, session state, and the
// brute-force lockout counter. All state lives in a storage.Store under the
// keys documented on the constants below; every read of a time-bounded value
// (session, lockout) lazily expires it, so no background timer is needed.
package auth

import (
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/caothongdev/portfolio/storage"
)

// Storage keys. One logical admin account per deployment.
const (
	keyEmail          = "admin_email"
	keyPasswordHash   = "admin_password_hash"
	keySession        = "admin_authenticated"
	keySessionExpiry  = "admin_session_expiry"
	keyFailedAttempts = "admin_failed_attempts"
	keyLockoutUntil   = "admin_lockout_until"
)

const (
	// SessionDuration is how long a session stays valid after login.
	SessionDuration = 24 * time.Hour
	// MaxFailedAttempts is the number of consecutive failures before lockout.
	MaxFailedAttempts = 5
	// LockoutDuration is how long the account stays locked once the
	// threshold is reached.
	LockoutDuration = 15 * time.Minute
	// MinPasswordLength applies to new passwords on change.
	MinPasswordLength = 8
)

// Manager owns admin credentials, the session, and the lockout counter.
// It assumes exclusive single-admin access to the store: the read-modify-write
// of the attempt counter is not safe across concurrent callers sharing one
// store without external locking.
type Manager struct {
	store  storage.Store
	logger *slog.Logger
	now    func() time.Time
	hash   func(string) (string, error)
}

// Option configures a Manager.
type Option func(*Manager)

// WithClock overrides the time source. Used by tests to simulate expiry.
func WithClock(now func() time.Time) Option {
	return func(m *Manager) { m.now = now }
}

// WithLogger sets the structured logger for auth events.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Manager) { m.logger = logger.With("component", "auth") }
}

// WithArgon2id makes the manager store new password hashes in the argon2id
// format instead of the compat salted-SHA-256 format. Existing records in
// any format keep verifying.
func WithArgon2id() Option {
	return func(m *Manager) { m.hash = HashPasswordArgon2id }
}

// NewManager creates a Manager over the given store.
func NewManager(store storage.Store, opts ...Option) *Manager {
	m := &Manager{
		store: store,
		now:   time.Now,
		hash:  HashPassword,
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.logger == nil {
		m.logger = slog.Default().With("component", "auth")
	}
	return m
}

// InitializeCredentials stores the admin email and password hash. Calling it
// again overwrites the existing record; the single-admin design has no
// uniqueness to enforce.
func (m *Manager) InitializeCredentials(email, password string) error {
	hash, err := m.hash(password)
	if err != nil {
		return err
	}
	if err := m.store.Set(keyEmail, email); err != nil {
		return fmt.Errorf("storing email: %w", err)
	}
	if err := m.store.Set(keyPasswordHash, hash); err != nil {
		return fmt.Errorf("storing password hash: %w", err)
	}
	m.logger.Info("admin credentials initialized")
	return nil
}

// CredentialsSet reports whether both credential fields are present.
func (m *Manager) CredentialsSet() bool {
	_, emailOK := m.get(keyEmail)
	_, hashOK := m.get(keyPasswordHash)
	return emailOK && hashOK
}

// StoredEmail returns the configured admin email, if any.
func (m *Manager) StoredEmail() (string, bool) {
	return m.get(keyEmail)
}

// LockStatus describes the result of an AccountLocked query.
type LockStatus struct {
	Locked    bool
	Remaining time.Duration
}

// RemainingMinutes returns the remaining lockout time rounded up to whole minutes.
func (s LockStatus) RemainingMinutes() int {
	if s.Remaining <= 0 {
		return 0
	}
	return int((s.Remaining + time.Minute - 1) / time.Minute)
}

// AccountLocked reports whether the account is currently locked out. A
// lockout whose deadline has passed is cleared as a side effect, together
// with the failed-attempt counter.
func (m *Manager) AccountLocked() LockStatus {
	raw, ok := m.get(keyLockoutUntil)
	if !ok {
		return LockStatus{}
	}
	until := parseMillis(raw)
	now := m.now()
	if now.Before(until) {
		return LockStatus{Locked: true, Remaining: until.Sub(now)}
	}
	m.remove(keyLockoutUntil)
	m.remove(keyFailedAttempts)
	return LockStatus{}
}

// RemainingAttempts returns how many failed logins are left before lockout.
func (m *Manager) RemainingAttempts() int {
	remaining := MaxFailedAttempts - m.failedAttempts()
	if remaining < 0 {
		return 0
	}
	return remaining
}

func (m *Manager) failedAttempts() int {
	raw, ok := m.get(keyFailedAttempts)
	if !ok {
		return 0
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}
	return n
}

func (m *Manager) recordFailedAttempt() {
	attempts := m.failedAttempts() + 1
	m.set(keyFailedAttempts, strconv.Itoa(attempts))
	if attempts >= MaxFailedAttempts {
		until := m.now().Add(LockoutDuration)
		m.set(keyLockoutUntil, strconv.FormatInt(until.UnixMilli(), 10))
		m.logger.Warn("account locked after repeated failures",
			"attempts", attempts, "locked_until", until)
	}
}

func (m *Manager) clearFailedAttempts() {
	m.remove(keyFailedAttempts)
	m.remove(keyLockoutUntil)
}

// Login verifies email and password, maintaining the lockout counter.
// A locked account fails immediately without consuming an attempt. Emails
// compare case-sensitively, matching the behavior the stored record was
// created against.
func (m *Manager) Login(email, password string) error {
	if st := m.AccountLocked(); st.Locked {
		return fmt.Errorf("%w: try again in %d minutes", ErrAccountLocked, st.RemainingMinutes())
	}

	storedEmail, emailOK := m.get(keyEmail)
	storedHash, hashOK := m.get(keyPasswordHash)
	if !emailOK || !hashOK {
		return ErrNotConfigured
	}

	if email != storedEmail || !VerifyPassword(password, storedHash) {
		m.recordFailedAttempt()
		remaining := m.RemainingAttempts()
		m.logger.Warn("failed login attempt", "remaining_attempts", remaining)
		if remaining > 0 {
			return fmt.Errorf("%w (%d attempts remaining)", ErrInvalidCredentials, remaining)
		}
		return fmt.Errorf("%w (account locked for %d minutes)",
			ErrInvalidCredentials, int(LockoutDuration/time.Minute))
	}

	m.clearFailedAttempts()
	expiry := m.now().Add(SessionDuration)
	if err := m.set(keySession, "true"); err != nil {
		return fmt.Errorf("storing session: %w", err)
	}
	if err := m.set(keySessionExpiry, strconv.FormatInt(expiry.UnixMilli(), 10)); err != nil {
		return fmt.Errorf("storing session expiry: %w", err)
	}
	m.logger.Info("admin login", "session_expires_at", expiry)
	return nil
}

// Authenticated reports whether an unexpired session is active. An expired
// session is logged out as a side effect.
func (m *Manager) Authenticated() bool {
	_, sessionOK := m.get(keySession)
	raw, expiryOK := m.get(keySessionExpiry)
	if !sessionOK || !expiryOK {
		return false
	}
	if m.now().After(parseMillis(raw)) {
		m.Logout()
		return false
	}
	return true
}

// Logout clears the session unconditionally.
func (m *Manager) Logout() {
	m.remove(keySession)
	m.remove(keySessionExpiry)
}

// ChangePassword verifies the current password and stores a hash of the new
// one. The active session is kept.
func (m *Manager) ChangePassword(currentPassword, newPassword string) error {
	storedHash, ok := m.get(keyPasswordHash)
	if !ok {
		return ErrNotConfigured
	}
	if !VerifyPassword(currentPassword, storedHash) {
		return ErrWrongPassword
	}
	if len(newPassword) < MinPasswordLength {
		return ErrPasswordTooShort
	}
	hash, err := m.hash(newPassword)
	if err != nil {
		return err
	}
	if err := m.set(keyPasswordHash, hash); err != nil {
		return fmt.Errorf("storing password hash: %w", err)
	}
	m.logger.Info("admin password changed")
	return nil
}

// SessionInfo describes the active session for display.
type SessionInfo struct {
	ExpiresIn int // whole minutes, rounded up
	ExpiresAt time.Time
}

// SessionInfo returns the current session expiry, or nil when no session is
// active or it has already expired.
func (m *Manager) SessionInfo() *SessionInfo {
	raw, ok := m.get(keySessionExpiry)
	if !ok {
		return nil
	}
	expiry := parseMillis(raw)
	remaining := expiry.Sub(m.now())
	if remaining <= 0 {
		return nil
	}
	return &SessionInfo{
		ExpiresIn: int((remaining + time.Minute - 1) / time.Minute),
		ExpiresAt: expiry,
	}
}

func parseMillis(s string) time.Time {
	ms, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return time.Time{}
	}
	return time.UnixMilli(ms)
}

func (m *Manager) get(key string) (string, bool) {
	value, err := m.store.Get(key)
	if err != nil {
		return "", false
	}
	return value, true
}

func (m *Manager) set(key, value string) error {
	return m.store.Set(key, value)
}

func (m *Manager) remove(key string) {
	if err := m.store.Remove(key); err != nil {
		m.logger.Error("removing key", "key", key, "error", err)
	}
}
