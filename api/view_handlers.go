package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// IncrementView handles POST /views/{slug}. Each call counts one view and
// records a blog_viewed activity.
func (a *API) IncrementView(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	if err := a.counts.Increment(slug); err != nil {
		mapError(w, err)
		return
	}
	a.activities.BlogViewed(slug)
	writeJSON(w, http.StatusOK, ViewCountResponse{Slug: slug, Count: a.counts.Get(slug)})
}

// ListViews handles GET /views.
func (a *API) ListViews(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, ViewsResponse{Views: a.counts.All()})
}

// ResetView handles DELETE /views/{slug}.
func (a *API) ResetView(w http.ResponseWriter, r *http.Request) {
	if err := a.counts.Reset(chi.URLParam(r, "slug")); err != nil {
		mapError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ResetAllViews handles DELETE /views.
func (a *API) ResetAllViews(w http.ResponseWriter, r *http.Request) {
	if err := a.counts.ResetAll(); err != nil {
		mapError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
