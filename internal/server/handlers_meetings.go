package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/venture-match/internal/types"
)

// getOwnedMeeting loads a meeting and checks the caller requested it.
func (s *Server) getOwnedMeeting(w http.ResponseWriter, r *http.Request, investorID uuid.UUID) *types.Meeting {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return nil
	}

	meeting, err := s.store.GetMeeting(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to get meeting")
		return nil
	}
	if meeting == nil {
		writeServiceError(w, &ErrNotFound{Resource: "meeting", ID: id})
		return nil
	}
	if meeting.InvestorID != investorID {
		writeServiceError(w, &ErrForbidden{Reason: "meeting belongs to another investor"})
		return nil
	}
	return meeting
}

func (s *Server) handleCreateMeeting(w http.ResponseWriter, r *http.Request) {
	userID, role, ok := identity(w, r)
	if !ok {
		return
	}
	if role != types.RoleInvestor {
		writeServiceError(w, &ErrForbidden{Reason: "only investors can request meetings"})
		return
	}

	var input types.MeetingRequestInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := input.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	meeting, err := s.store.CreateMeeting(r.Context(), userID, &input)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to create meeting request")
		return
	}
	writeJSON(w, http.StatusCreated, meeting)
}

func (s *Server) handleListMeetings(w http.ResponseWriter, r *http.Request) {
	userID, _, ok := identity(w, r)
	if !ok {
		return
	}

	meetings, err := s.store.ListMeetings(r.Context(), userID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list meetings")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"meetings": meetings})
}

func (s *Server) handleGetMeeting(w http.ResponseWriter, r *http.Request) {
	userID, _, ok := identity(w, r)
	if !ok {
		return
	}
	meeting := s.getOwnedMeeting(w, r, userID)
	if meeting == nil {
		return
	}
	writeJSON(w, http.StatusOK, meeting)
}

func (s *Server) handleScheduleMeeting(w http.ResponseWriter, r *http.Request) {
	userID, _, ok := identity(w, r)
	if !ok {
		return
	}
	meeting := s.getOwnedMeeting(w, r, userID)
	if meeting == nil {
		return
	}

	var body struct {
		ScheduledAt time.Time `json:"scheduled_at"`
		MeetingURL  string    `json:"meeting_url"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if body.ScheduledAt.IsZero() {
		writeError(w, http.StatusBadRequest, "scheduled_at is required")
		return
	}

	scheduled, err := s.store.ScheduleMeeting(r.Context(), meeting.ID, body.ScheduledAt, body.MeetingURL)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to schedule meeting")
		return
	}
	writeJSON(w, http.StatusOK, scheduled)
}

func (s *Server) handleUpdateMeetingStatus(w http.ResponseWriter, r *http.Request) {
	userID, _, ok := identity(w, r)
	if !ok {
		return
	}
	meeting := s.getOwnedMeeting(w, r, userID)
	if meeting == nil {
		return
	}

	var body struct {
		Status types.MeetingStatus `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	switch body.Status {
	case types.MeetingRequested, types.MeetingScheduled, types.MeetingCompleted, types.MeetingCancelled:
	default:
		writeError(w, http.StatusBadRequest, "invalid meeting status")
		return
	}

	if err := s.store.UpdateMeetingStatus(r.Context(), meeting.ID, body.Status); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to update meeting status")
		return
	}
	meeting.Status = body.Status
	writeJSON(w, http.StatusOK, meeting)
}
