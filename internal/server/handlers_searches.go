package server

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/google/uuid"

	"github.com/jonathan/venture-match/internal/types"
)

// getOwnedSavedSearch loads a saved search and checks the caller owns it.
func (s *Server) getOwnedSavedSearch(w http.ResponseWriter, r *http.Request, founderID uuid.UUID) *types.SavedSearch {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return nil
	}

	search, err := s.store.GetSavedSearch(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to get saved search")
		return nil
	}
	if search == nil {
		writeServiceError(w, &ErrNotFound{Resource: "saved search", ID: id})
		return nil
	}
	if search.FounderID != founderID {
		writeServiceError(w, &ErrForbidden{Reason: "saved search belongs to another founder"})
		return nil
	}
	return search
}

func (s *Server) handleCreateSavedSearch(w http.ResponseWriter, r *http.Request) {
	userID, role, ok := identity(w, r)
	if !ok {
		return
	}
	if role != types.RoleFounder {
		writeServiceError(w, &ErrForbidden{Reason: "only founders can save searches"})
		return
	}

	var input types.SavedSearchInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := input.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}
	if err := input.SearchCriteria.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	search, err := s.store.CreateSavedSearch(r.Context(), userID, &input)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to create saved search")
		return
	}
	writeJSON(w, http.StatusCreated, search)
}

func (s *Server) handleListSavedSearches(w http.ResponseWriter, r *http.Request) {
	userID, _, ok := identity(w, r)
	if !ok {
		return
	}

	searches, err := s.store.ListSavedSearches(r.Context(), userID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list saved searches")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"searches": searches})
}

// handleGetSavedSearch returns a saved search and records the access so the
// UI can order searches by recency.
func (s *Server) handleGetSavedSearch(w http.ResponseWriter, r *http.Request) {
	userID, _, ok := identity(w, r)
	if !ok {
		return
	}
	search := s.getOwnedSavedSearch(w, r, userID)
	if search == nil {
		return
	}

	if err := s.store.TouchSavedSearch(r.Context(), search.ID); err != nil {
		log.Printf("failed to record saved search use %s: %v", search.ID, err)
	}
	writeJSON(w, http.StatusOK, search)
}

func (s *Server) handleDeleteSavedSearch(w http.ResponseWriter, r *http.Request) {
	userID, _, ok := identity(w, r)
	if !ok {
		return
	}
	search := s.getOwnedSavedSearch(w, r, userID)
	if search == nil {
		return
	}

	if err := s.store.DeleteSavedSearch(r.Context(), search.ID); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to delete saved search")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "saved search deleted"})
}
