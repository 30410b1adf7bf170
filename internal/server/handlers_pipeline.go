package server

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/jonathan/venture-match/internal/db"
	"github.com/jonathan/venture-match/internal/types"
)

// getOwnedDeal loads a pipeline deal and checks the caller owns it.
func (s *Server) getOwnedDeal(w http.ResponseWriter, r *http.Request, investorID uuid.UUID) *types.PipelineDeal {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return nil
	}

	deal, err := s.store.GetDeal(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to get deal")
		return nil
	}
	if deal == nil {
		writeServiceError(w, &ErrNotFound{Resource: "deal", ID: id})
		return nil
	}
	if deal.InvestorID != investorID {
		writeServiceError(w, &ErrForbidden{Reason: "deal belongs to another investor"})
		return nil
	}
	return deal
}

func (s *Server) handleCreateDeal(w http.ResponseWriter, r *http.Request) {
	userID, role, ok := identity(w, r)
	if !ok {
		return
	}
	if role != types.RoleInvestor {
		writeServiceError(w, &ErrForbidden{Reason: "only investors can manage a deal pipeline"})
		return
	}

	var input types.PipelineDealInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := input.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	deal, err := s.store.CreateDeal(r.Context(), userID, &input)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to create deal")
		return
	}
	writeJSON(w, http.StatusCreated, deal)
}

func (s *Server) handleListDeals(w http.ResponseWriter, r *http.Request) {
	userID, _, ok := identity(w, r)
	if !ok {
		return
	}
	page, limit := pageParams(r)
	filters := db.DealFilters{
		Stage:  r.URL.Query().Get("stage"),
		Status: types.DealStatus(r.URL.Query().Get("status")),
	}

	deals, total, err := s.store.ListDeals(r.Context(), userID, filters, page, limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list deals")
		return
	}
	writeJSON(w, http.StatusOK, types.DealListResponse{
		Deals:      deals,
		Pagination: types.NewPagination(page, limit, total),
	})
}

func (s *Server) handleGetDeal(w http.ResponseWriter, r *http.Request) {
	userID, _, ok := identity(w, r)
	if !ok {
		return
	}
	deal := s.getOwnedDeal(w, r, userID)
	if deal == nil {
		return
	}
	writeJSON(w, http.StatusOK, deal)
}

func (s *Server) handleUpdateDeal(w http.ResponseWriter, r *http.Request) {
	userID, _, ok := identity(w, r)
	if !ok {
		return
	}
	deal := s.getOwnedDeal(w, r, userID)
	if deal == nil {
		return
	}

	var update types.PipelineDealUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := update.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	updated, err := s.store.UpdateDeal(r.Context(), deal.ID, &update)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to update deal")
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (s *Server) handleDeleteDeal(w http.ResponseWriter, r *http.Request) {
	userID, _, ok := identity(w, r)
	if !ok {
		return
	}
	deal := s.getOwnedDeal(w, r, userID)
	if deal == nil {
		return
	}

	if err := s.store.DeleteDeal(r.Context(), deal.ID); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to delete deal")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "deal removed from pipeline"})
}
