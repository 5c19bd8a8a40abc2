package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/caothongdev/portfolio/blog"
)

// ListPosts handles GET /posts. The optional status query filters on
// draft/published; records without a status count as published.
func (a *API) ListPosts(w http.ResponseWriter, r *http.Request) {
	status := r.URL.Query().Get("status")
	var posts blog.Posts
	switch status {
	case "":
		posts = a.posts.All()
	case string(blog.StatusDraft), string(blog.StatusPublished):
		posts = a.posts.ByStatus(blog.Status(status))
	default:
		writeError(w, http.StatusBadRequest, "status must be draft or published")
		return
	}
	writeJSON(w, http.StatusOK, ListPostsResponse{Posts: posts})
}

// SearchPosts handles GET /posts/search?q=.
func (a *API) SearchPosts(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	if query == "" {
		writeError(w, http.StatusBadRequest, "q is required")
		return
	}
	writeJSON(w, http.StatusOK, ListPostsResponse{Posts: a.posts.Search(query)})
}

// CreatePost handles POST /posts.
func (a *API) CreatePost(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeJSON[PostRequest](w, r)
	if !ok {
		return
	}
	if req.Title == "" {
		writeError(w, http.StatusBadRequest, "title is required")
		return
	}
	if err := a.posts.Add(req.Title, req.Post); err != nil {
		mapError(w, err)
		return
	}
	a.activities.BlogCreated(req.Title)
	w.WriteHeader(http.StatusCreated)
}

// UpdatePost handles PUT /posts/{title}. A body title differing from the
// path title renames the post; the old key disappears.
func (a *API) UpdatePost(w http.ResponseWriter, r *http.Request) {
	oldTitle := chi.URLParam(r, "title")
	req, ok := decodeJSON[PostRequest](w, r)
	if !ok {
		return
	}
	newTitle := req.Title
	if newTitle == "" {
		newTitle = oldTitle
	}
	if err := a.posts.Update(oldTitle, newTitle, req.Post); err != nil {
		mapError(w, err)
		return
	}
	a.activities.BlogUpdated(newTitle)
	w.WriteHeader(http.StatusNoContent)
}

// DeletePost handles DELETE /posts/{title}.
func (a *API) DeletePost(w http.ResponseWriter, r *http.Request) {
	title := chi.URLParam(r, "title")
	if err := a.posts.Delete(title); err != nil {
		mapError(w, err)
		return
	}
	a.activities.BlogDeleted(title)
	w.WriteHeader(http.StatusNoContent)
}

// ExportPosts handles GET /posts/export.
func (a *API) ExportPosts(w http.ResponseWriter, r *http.Request) {
	data, err := a.posts.ExportAll()
	if err != nil {
		mapError(w, err)
		return
	}
	a.activities.DataExported()
	writeJSON(w, http.StatusOK, ExportResponse{Data: data})
}

// ImportPosts handles POST /posts/import. The payload fully replaces the
// stored mapping; the previous state lands in the backup slot.
func (a *API) ImportPosts(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeJSON[ImportRequest](w, r)
	if !ok {
		return
	}
	if err := a.posts.ImportAll(req.Data); err != nil {
		mapError(w, err)
		return
	}
	a.activities.DataImported()
	a.audit.log(AuditPostsImported, r)
	w.WriteHeader(http.StatusNoContent)
}

// RestorePosts handles POST /posts/restore.
func (a *API) RestorePosts(w http.ResponseWriter, r *http.Request) {
	if !a.posts.RestoreFromBackup() {
		writeError(w, http.StatusNotFound, "no backup available")
		return
	}
	a.audit.log(AuditPostsRestored, r)
	w.WriteHeader(http.StatusNoContent)
}
