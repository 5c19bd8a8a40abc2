package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/caothongdev/portfolio/auth"
	"github.com/caothongdev/portfolio/blog"
	"github.com/caothongdev/portfolio/storage"
)

const maxBodySize = 1 << 20

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, ErrorResponse{Error: msg})
}

func mapError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, auth.ErrAccountLocked):
		writeError(w, http.StatusTooManyRequests, err.Error())
	case errors.Is(err, auth.ErrInvalidCredentials):
		writeError(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, auth.ErrWrongPassword):
		writeError(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, auth.ErrNotConfigured):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, auth.ErrPasswordTooShort):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, blog.ErrDuplicateTitle):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, blog.ErrTitleExists):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, blog.ErrPostNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, blog.ErrInvalidImport):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, storage.ErrKeyNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}

// decodeJSON decodes the request body into T, writing a 400 response and
// returning false on failure.
func decodeJSON[T any](w http.ResponseWriter, r *http.Request) (T, bool) {
	var v T
	body := http.MaxBytesReader(w, r.Body, maxBodySize)
	dec := json.NewDecoder(body)
	if err := dec.Decode(&v); err != nil {
		if errors.Is(err, io.EOF) {
			writeError(w, http.StatusBadRequest, "request body is required")
		} else {
			writeError(w, http.StatusBadRequest, "invalid JSON body")
		}
		return v, false
	}
	return v, true
}
