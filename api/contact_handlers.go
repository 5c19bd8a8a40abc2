package api

import (
	"net/http"
	"strings"
)

// Contact handles POST /contact. The message is recorded as a contact_sent
// activity so it shows up in the admin dashboard; delivery (email) happens
// outside this service.
func (a *API) Contact(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeJSON[ContactRequest](w, r)
	if !ok {
		return
	}
	if req.Name == "" || req.Email == "" || req.Message == "" {
		writeError(w, http.StatusBadRequest, "name, email, and message are required")
		return
	}
	if !strings.Contains(req.Email, "@") {
		writeError(w, http.StatusBadRequest, "email is not valid")
		return
	}
	a.activities.ContactSent(req.Name, req.Email)
	w.WriteHeader(http.StatusAccepted)
}
