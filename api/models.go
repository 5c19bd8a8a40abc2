package api

import (
	"github.com/caothongdev/portfolio/activity"
	"github.com/caothongdev/portfolio/blog"
)

// ErrorResponse is the JSON body of every error reply.
type ErrorResponse struct {
	Error string `json:"error"`
}

// SetupRequest is the JSON body for POST /auth/setup.
type SetupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest is the JSON body for POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthStatusResponse is returned from GET /auth/status.
type AuthStatusResponse struct {
	CredentialsSet    bool `json:"credentials_set"`
	Authenticated     bool `json:"authenticated"`
	Locked            bool `json:"locked"`
	RemainingMinutes  int  `json:"remaining_minutes,omitempty"`
	RemainingAttempts int  `json:"remaining_attempts"`
}

// SessionResponse is returned from GET /auth/session.
type SessionResponse struct {
	ExpiresInMinutes int    `json:"expires_in_minutes"`
	ExpiresAt        string `json:"expires_at"`
}

// ChangePasswordRequest is the JSON body for POST /auth/password.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

// PostRequest is the JSON body for POST /posts and PUT /posts/{title}.
// On update, Title is the new title; a changed title renames the post.
type PostRequest struct {
	Title string    `json:"title"`
	Post  blog.Post `json:"post"`
}

// ListPostsResponse is returned from GET /posts and /posts/search.
type ListPostsResponse struct {
	Posts blog.Posts `json:"posts"`
}

// ExportResponse is returned from GET /posts/export.
type ExportResponse struct {
	Data string `json:"data"`
}

// ImportRequest is the JSON body for POST /posts/import.
type ImportRequest struct {
	Data string `json:"data"`
}

// ListActivitiesResponse is returned from GET /activities.
type ListActivitiesResponse struct {
	Activities []activity.Record `json:"activities"`
}

// ViewsResponse is returned from GET /views.
type ViewsResponse struct {
	Views map[string]int `json:"views"`
}

// ViewCountResponse is returned from POST /views/{slug}.
type ViewCountResponse struct {
	Slug  string `json:"slug"`
	Count int    `json:"count"`
}

// ContactRequest is the JSON body for POST /contact. The message is recorded
// as an activity; delivery is handled outside this service.
type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}
