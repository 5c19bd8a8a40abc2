package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/caothongdev/portfolio/activity"
)

// ListActivities handles GET /activities. Optional query parameters:
// type (activity type), days (last N days), limit (newest N records).
func (a *API) ListActivities(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var records []activity.Record
	switch {
	case q.Get("type") != "":
		records = a.activities.ByType(activity.Type(q.Get("type")))
	case q.Get("days") != "":
		days, err := strconv.Atoi(q.Get("days"))
		if err != nil || days < 0 {
			writeError(w, http.StatusBadRequest, "days must be a non-negative integer")
			return
		}
		records = a.activities.FromLastDays(days)
	case q.Get("limit") != "":
		limit, err := strconv.Atoi(q.Get("limit"))
		if err != nil || limit < 0 {
			writeError(w, http.StatusBadRequest, "limit must be a non-negative integer")
			return
		}
		records = a.activities.Recent(limit)
	default:
		records = a.activities.All()
	}
	if records == nil {
		records = []activity.Record{}
	}
	writeJSON(w, http.StatusOK, ListActivitiesResponse{Activities: records})
}

// ClearActivities handles DELETE /activities.
func (a *API) ClearActivities(w http.ResponseWriter, r *http.Request) {
	a.activities.Clear()
	w.WriteHeader(http.StatusNoContent)
}

// DeleteActivity handles DELETE /activities/{id}.
func (a *API) DeleteActivity(w http.ResponseWriter, r *http.Request) {
	a.activities.Delete(chi.URLParam(r, "id"))
	w.WriteHeader(http.StatusNoContent)
}
