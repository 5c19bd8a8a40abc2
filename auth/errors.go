package auth

import "errors"

var (
	// ErrNotConfigured indicates no admin credentials have been set up yet.
	ErrNotConfigured = errors.New("admin account not configured")
	// ErrAccountLocked indicates login is temporarily denied after repeated failures.
	ErrAccountLocked = errors.New("account locked")
	// ErrInvalidCredentials is returned for any email/password mismatch. The
	// message never reveals which part was wrong, to avoid account enumeration.
	ErrInvalidCredentials = errors.New("email or password incorrect")
	// ErrWrongPassword indicates the current password check failed during a
	// password change.
	ErrWrongPassword = errors.New("current password incorrect")
	// ErrPasswordTooShort indicates the new password fails the minimum length rule.
	ErrPasswordTooShort = errors.New("password must be at least 8 characters")
)
