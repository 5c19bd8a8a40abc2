// Package api exposes the portfolio admin core over a REST API.
package api

import (
	_ "embed"
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-openapi/runtime/middleware"

	"github.com/caothongdev/portfolio/activity"
	"github.com/caothongdev/portfolio/auth"
	"github.com/caothongdev/portfolio/blog"
	"github.com/caothongdev/portfolio/views"
)

//go:embed openapi.yaml
var openapiSpec []byte

// API holds the dependencies needed by the REST handlers.
type API struct {
	auth       *auth.Manager
	posts      *blog.Manager
	activities *activity.Logger
	counts     *views.Counter
	sessions   *sessionStore
	audit      *auditLogger
}

// Option configures the API instance.
type Option func(*API)

// WithLogger sets the structured logger for audit events.
// If not set, a default JSON logger writing to stderr is used.
func WithLogger(logger *slog.Logger) Option {
	return func(a *API) {
		a.audit = newAuditLogger(logger)
	}
}

// New creates a new API instance wired to the four core managers.
func New(authManager *auth.Manager, posts *blog.Manager, activities *activity.Logger, counts *views.Counter, opts ...Option) *API {
	a := &API{
		auth:       authManager,
		posts:      posts,
		activities: activities,
		counts:     counts,
		sessions:   &sessionStore{},
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.audit == nil {
		a.audit = newAuditLogger(slog.New(slog.NewJSONHandler(os.Stderr, nil)))
	}
	return a
}

// Router returns a chi.Router with all API routes mounted.
func (a *API) Router() chi.Router {
	r := chi.NewRouter()

	r.Get("/openapi.yaml", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/yaml")
		w.Write(openapiSpec)
	})

	r.Handle("/docs*", middleware.SwaggerUI(middleware.SwaggerUIOpts{
		SpecURL: "/api/v1/openapi.yaml",
		Path:    "api/v1/docs",
	}, nil))

	r.Handle("/redoc*", middleware.Redoc(middleware.RedocOpts{
		SpecURL: "/api/v1/openapi.yaml",
		Path:    "api/v1/redoc",
	}, nil))

	r.Post("/auth/setup", a.Setup)
	r.Post("/auth/login", a.Login)
	r.Post("/auth/logout", a.Logout)
	r.Get("/auth/status", a.AuthStatus)
	r.With(a.AuthMiddleware).Get("/auth/session", a.Session)
	r.With(a.AuthMiddleware).Post("/auth/password", a.ChangePassword)

	r.Get("/posts", a.ListPosts)
	r.Get("/posts/search", a.SearchPosts)
	r.Post("/views/{slug}", a.IncrementView)
	r.Get("/views", a.ListViews)
	r.Post("/contact", a.Contact)

	// Content mutation and analytics management require an admin session.
	r.Group(func(r chi.Router) {
		r.Use(a.AuthMiddleware)
		r.Post("/posts", a.CreatePost)
		r.Put("/posts/{title}", a.UpdatePost)
		r.Delete("/posts/{title}", a.DeletePost)
		r.Get("/posts/export", a.ExportPosts)
		r.Post("/posts/import", a.ImportPosts)
		r.Post("/posts/restore", a.RestorePosts)

		r.Get("/activities", a.ListActivities)
		r.Delete("/activities", a.ClearActivities)
		r.Delete("/activities/{id}", a.DeleteActivity)

		r.Delete("/views/{slug}", a.ResetView)
		r.Delete("/views", a.ResetAllViews)
	})

	return r
}
