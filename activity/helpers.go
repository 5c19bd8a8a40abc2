package activity

import (
	"fmt"
	"time"
)

// Typed convenience constructors for the common activities.

func (l *Logger) BlogCreated(title string) {
	l.Log(Record{
		Type:        TypeBlogCreated,
		Title:       fmt.Sprintf("Blog %q created", title),
		Description: "New blog post",
		Metadata:    map[string]any{"blogTitle": title},
	})
}

func (l *Logger) BlogUpdated(title string) {
	l.Log(Record{
		Type:        TypeBlogUpdated,
		Title:       fmt.Sprintf("Blog %q updated", title),
		Description: "Blog post updated",
		Metadata:    map[string]any{"blogTitle": title},
	})
}

func (l *Logger) BlogDeleted(title string) {
	l.Log(Record{
		Type:        TypeBlogDeleted,
		Title:       fmt.Sprintf("Blog %q deleted", title),
		Description: "Blog post deleted",
		Metadata:    map[string]any{"blogTitle": title},
	})
}

func (l *Logger) BlogViewed(title string) {
	l.Log(Record{
		Type:        TypeBlogViewed,
		Title:       fmt.Sprintf("Blog %q viewed", title),
		Description: "Blog post viewed",
		Metadata:    map[string]any{"blogTitle": title},
	})
}

func (l *Logger) ContactSent(name, email string) {
	l.Log(Record{
		Type:        TypeContactSent,
		Title:       fmt.Sprintf("%s sent a message", name),
		Description: "New contact message",
		Metadata:    map[string]any{"name": name, "email": email},
	})
}

func (l *Logger) DataExported() {
	l.Log(Record{
		Type:        TypeExport,
		Title:       "Backup data exported",
		Description: "Exported backup file",
	})
}

func (l *Logger) DataImported() {
	l.Log(Record{
		Type:        TypeImport,
		Title:       "Backup data imported",
		Description: "Imported backup file",
	})
}

func (l *Logger) AdminLogin() {
	l.Log(Record{
		Type:        TypeLogin,
		Title:       "Admin panel login",
		Description: "Login successful",
	})
}

func (l *Logger) AdminLogout() {
	l.Log(Record{
		Type:        TypeLogout,
		Title:       "Admin panel logout",
		Description: "Logged out",
	})
}

// FormatRelativeTime renders an RFC3339 timestamp as a short relative phrase
// for display next to a record.
func FormatRelativeTime(timestamp string, now time.Time) string {
	ts, err := time.Parse(time.RFC3339, timestamp)
	if err != nil {
		return timestamp
	}
	diff := now.Sub(ts)
	switch {
	case diff < time.Minute:
		return "just now"
	case diff < time.Hour:
		return fmt.Sprintf("%d minutes ago", int(diff/time.Minute))
	case diff < 24*time.Hour:
		return fmt.Sprintf("%d hours ago", int(diff/time.Hour))
	case diff < 7*24*time.Hour:
		return fmt.Sprintf("%d days ago", int(diff/(24*time.Hour)))
	}
	return ts.Local().Format("02/01/2006")
}
