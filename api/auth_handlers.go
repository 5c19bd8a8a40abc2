package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/caothongdev/portfolio/auth"
)

// Setup handles POST /auth/setup. It stores the admin credential record;
// calling it again overwrites the record, matching the single-admin design.
func (a *API) Setup(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeJSON[SetupRequest](w, r)
	if !ok {
		return
	}
	if req.Email == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "email and password are required")
		return
	}
	if len(req.Password) < auth.MinPasswordLength {
		writeError(w, http.StatusBadRequest, auth.ErrPasswordTooShort.Error())
		return
	}
	if err := a.auth.InitializeCredentials(req.Email, req.Password); err != nil {
		mapError(w, err)
		return
	}
	a.audit.log(AuditSetup, r)
	w.WriteHeader(http.StatusCreated)
}

// Login handles POST /auth/login.
func (a *API) Login(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeJSON[LoginRequest](w, r)
	if !ok {
		return
	}
	if err := a.auth.Login(req.Email, req.Password); err != nil {
		if errors.Is(err, auth.ErrAccountLocked) {
			a.audit.logFailure(AuditLoginLocked, r, "account locked")
		} else {
			a.audit.logFailure(AuditLoginFailure, r, "invalid credentials")
		}
		mapError(w, err)
		return
	}

	token := a.sessions.issue()
	expiresAt := time.Now().Add(auth.SessionDuration)
	writeSessionCookie(w, r, token, expiresAt)

	a.activities.AdminLogin()
	a.audit.log(AuditLoginSuccess, r)
	w.WriteHeader(http.StatusNoContent)
}

// Logout handles POST /auth/logout. Logging out without a session is a no-op.
func (a *API) Logout(w http.ResponseWriter, r *http.Request) {
	hadSession := a.auth.Authenticated()
	a.auth.Logout()
	a.sessions.clear()
	clearSessionCookie(w, r)
	if hadSession {
		a.activities.AdminLogout()
		a.audit.log(AuditLogout, r)
	}
	w.WriteHeader(http.StatusNoContent)
}

// AuthStatus handles GET /auth/status. It is public so the login page can
// render the setup flow and lockout state.
func (a *API) AuthStatus(w http.ResponseWriter, r *http.Request) {
	lock := a.auth.AccountLocked()
	writeJSON(w, http.StatusOK, AuthStatusResponse{
		CredentialsSet:    a.auth.CredentialsSet(),
		Authenticated:     a.auth.Authenticated(),
		Locked:            lock.Locked,
		RemainingMinutes:  lock.RemainingMinutes(),
		RemainingAttempts: a.auth.RemainingAttempts(),
	})
}

// Session handles GET /auth/session.
func (a *API) Session(w http.ResponseWriter, r *http.Request) {
	info := a.auth.SessionInfo()
	if info == nil {
		writeError(w, http.StatusNotFound, "no active session")
		return
	}
	writeJSON(w, http.StatusOK, SessionResponse{
		ExpiresInMinutes: info.ExpiresIn,
		ExpiresAt:        info.ExpiresAt.Local().Format("02/01/2006 15:04:05"),
	})
}

// ChangePassword handles POST /auth/password. The active session is kept.
func (a *API) ChangePassword(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeJSON[ChangePasswordRequest](w, r)
	if !ok {
		return
	}
	if err := a.auth.ChangePassword(req.CurrentPassword, req.NewPassword); err != nil {
		mapError(w, err)
		return
	}
	a.audit.log(AuditPasswordChanged, r)
	w.WriteHeader(http.StatusNoContent)
}
