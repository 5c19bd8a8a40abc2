package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"
)

// AuditEvent identifies the type of security-relevant action being logged.
type AuditEvent string

const (
	AuditSetup           AuditEvent = "setup"
	AuditLoginSuccess    AuditEvent = "login_success"
	AuditLoginFailure    AuditEvent = "login_failure"
	AuditLoginLocked     AuditEvent = "login_locked"
	AuditLogout          AuditEvent = "logout"
	AuditPasswordChanged AuditEvent = "password_changed"
	AuditPostsImported   AuditEvent = "posts_imported"
	AuditPostsRestored   AuditEvent = "posts_restored"
)

// auditLogger wraps slog.Logger for structured security audit logging.
type auditLogger struct {
	logger *slog.Logger
}

func newAuditLogger(logger *slog.Logger) *auditLogger {
	return &auditLogger{
		logger: logger.With("component", "audit"),
	}
}

// log writes a structured audit log entry. Credential material never appears
// in attrs; only generic outcome data is logged.
func (al *auditLogger) log(event AuditEvent, r *http.Request, attrs ...slog.Attr) {
	baseAttrs := []slog.Attr{
		slog.String("event", string(event)),
		slog.String("remote_addr", r.RemoteAddr),
		slog.String("timestamp", time.Now().UTC().Format(time.RFC3339)),
	}
	baseAttrs = append(baseAttrs, attrs...)
	al.logger.LogAttrs(context.Background(), slog.LevelInfo, "audit", baseAttrs...)
}

func (al *auditLogger) logFailure(event AuditEvent, r *http.Request, reason string, attrs ...slog.Attr) {
	attrs = append([]slog.Attr{slog.String("reason", reason)}, attrs...)
	al.log(event, r, attrs...)
}
