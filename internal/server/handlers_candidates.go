package server

import (
	"encoding/json"
	"net/http"

	"github.com/jonathan/venture-match/internal/types"
)

// handleListCandidates returns one page of the candidate directory.
// Query parameters: page, limit, sort, order.
func (s *Server) handleListCandidates(w http.ResponseWriter, r *http.Request) {
	page, limit := pageParams(r)
	sortField := r.URL.Query().Get("sort")
	order := r.URL.Query().Get("order")

	resp, err := s.engine.ListCandidates(r.Context(), page, limit, sortField, order)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list candidates")
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// handleGetCandidate returns one candidate's full profile.
func (s *Server) handleGetCandidate(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	candidate, err := s.store.GetCandidate(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to get candidate")
		return
	}
	if candidate == nil {
		writeError(w, http.StatusNotFound, "candidate not found")
		return
	}
	writeJSON(w, http.StatusOK, candidate)
}

// handleSearchCandidates runs a scored candidate search.
func (s *Server) handleSearchCandidates(w http.ResponseWriter, r *http.Request) {
	var req types.CandidateSearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	resp, err := s.engine.Search(r.Context(), &req)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "search failed")
		return
	}
	writeJSON(w, http.StatusOK, resp)
}
