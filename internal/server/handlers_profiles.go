package server

import (
	"encoding/json"
	"net/http"

	"github.com/jonathan/venture-match/internal/db"
	"github.com/jonathan/venture-match/internal/types"
)

// handleListFounders returns the founder directory. Supports funding_stage,
// location (substring match), background, and limit query params.
func (s *Server) handleListFounders(w http.ResponseWriter, r *http.Request) {
	filters := db.FounderProfileFilters{
		FundingStage: r.URL.Query().Get("funding_stage"),
		Location:     r.URL.Query().Get("location"),
		Background:   r.URL.Query().Get("background"),
		Limit:        queryInt(r, "limit", 0),
	}

	profiles, err := s.store.ListFounderProfiles(r.Context(), filters)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list founder profiles")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"founders": profiles})
}

// upsertFounderProfile handles both POST /founders and PUT /founders/{id}.
// A founder has at most one profile, keyed on their user ID, so create and
// replace are the same write.
func (s *Server) upsertFounderProfile(w http.ResponseWriter, r *http.Request, status int) {
	userID, role, ok := identity(w, r)
	if !ok {
		return
	}
	if role != types.RoleFounder {
		writeServiceError(w, &ErrForbidden{Reason: "only founders can manage a founder profile"})
		return
	}

	var input types.FounderProfileInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := input.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	profile, err := s.store.UpsertFounderProfile(r.Context(), userID, &input)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to save founder profile")
		return
	}
	writeJSON(w, status, profile)
}

func (s *Server) handleUpsertFounder(w http.ResponseWriter, r *http.Request) {
	s.upsertFounderProfile(w, r, http.StatusCreated)
}

// handleUpdateFounder replaces a founder profile. The path ID must be the
// caller's own user ID.
func (s *Server) handleUpdateFounder(w http.ResponseWriter, r *http.Request) {
	userID, _, ok := identity(w, r)
	if !ok {
		return
	}
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	if id != userID {
		writeServiceError(w, &ErrForbidden{Reason: "cannot modify another founder's profile"})
		return
	}
	s.upsertFounderProfile(w, r, http.StatusOK)
}

func (s *Server) handleGetFounder(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	profile, err := s.store.GetFounderProfile(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to get founder profile")
		return
	}
	if profile == nil {
		writeServiceError(w, &ErrNotFound{Resource: "founder profile", ID: id})
		return
	}
	writeJSON(w, http.StatusOK, profile)
}

// upsertInvestorProfile handles both POST /investors and PUT /investors/{id}.
func (s *Server) upsertInvestorProfile(w http.ResponseWriter, r *http.Request, status int) {
	userID, role, ok := identity(w, r)
	if !ok {
		return
	}
	if role != types.RoleInvestor {
		writeServiceError(w, &ErrForbidden{Reason: "only investors can manage an investor profile"})
		return
	}

	var input types.InvestorProfileInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := input.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	profile, err := s.store.UpsertInvestorProfile(r.Context(), userID, &input)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to save investor profile")
		return
	}
	writeJSON(w, status, profile)
}

func (s *Server) handleUpsertInvestor(w http.ResponseWriter, r *http.Request) {
	s.upsertInvestorProfile(w, r, http.StatusCreated)
}

func (s *Server) handleUpdateInvestor(w http.ResponseWriter, r *http.Request) {
	userID, _, ok := identity(w, r)
	if !ok {
		return
	}
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	if id != userID {
		writeServiceError(w, &ErrForbidden{Reason: "cannot modify another investor's profile"})
		return
	}
	s.upsertInvestorProfile(w, r, http.StatusOK)
}

func (s *Server) handleGetInvestor(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	profile, err := s.store.GetInvestorProfile(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to get investor profile")
		return
	}
	if profile == nil {
		writeServiceError(w, &ErrNotFound{Resource: "investor profile", ID: id})
		return
	}
	writeJSON(w, http.StatusOK, profile)
}
