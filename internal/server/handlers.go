package server

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/jonathan/venture-match/internal/server/middleware"
	"github.com/jonathan/venture-match/internal/types"
)

// writeJSON writes a JSON response
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON response: %v", err)
	}
}

// writeError writes an error JSON response
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// writeServiceError maps a service error to its HTTP status
func writeServiceError(w http.ResponseWriter, err error) {
	writeError(w, HTTPStatus(err), err.Error())
}

// pathUUID parses a UUID path parameter. Writes a 400 response and returns
// false when the value is missing or malformed.
func pathUUID(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue(name))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid "+name)
		return uuid.Nil, false
	}
	return id, true
}

// queryInt parses an integer query parameter with a default.
func queryInt(r *http.Request, name string, defaultValue int) int {
	value := r.URL.Query().Get(name)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil || n < 1 {
		return defaultValue
	}
	return n
}

// pageParams extracts page and limit query parameters, clamping the limit to
// the search maximum.
func pageParams(r *http.Request) (page, limit int) {
	page = queryInt(r, "page", types.DefaultSearchPage)
	limit = queryInt(r, "limit", types.DefaultSearchLimit)
	if limit > 100 {
		limit = 100
	}
	return page, limit
}

// identity extracts the authenticated user from the request context. Writes a
// 401 response and returns false when the middleware did not run.
func identity(w http.ResponseWriter, r *http.Request) (uuid.UUID, string, bool) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return uuid.Nil, "", false
	}
	role, err := middleware.GetUserRole(r)
	if err != nil {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return uuid.Nil, "", false
	}
	return userID, role, true
}
