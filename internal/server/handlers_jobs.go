package server

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/jonathan/venture-match/internal/types"
)

// getOwnedJob loads a job posting and checks the caller owns it. Writes the
// error response and returns nil when the job is missing or owned by someone
// else.
func (s *Server) getOwnedJob(w http.ResponseWriter, r *http.Request, founderID uuid.UUID) *types.JobPosting {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return nil
	}

	job, err := s.store.GetJobPosting(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to get job posting")
		return nil
	}
	if job == nil {
		writeServiceError(w, &ErrNotFound{Resource: "job posting", ID: id})
		return nil
	}
	if job.FounderID != founderID {
		writeServiceError(w, &ErrForbidden{Reason: "job posting belongs to another founder"})
		return nil
	}
	return job
}

func (s *Server) handleCreateJob(w http.ResponseWriter, r *http.Request) {
	userID, role, ok := identity(w, r)
	if !ok {
		return
	}
	if role != types.RoleFounder {
		writeServiceError(w, &ErrForbidden{Reason: "only founders can create job postings"})
		return
	}

	var input types.JobPostingInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := input.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	job, err := s.store.CreateJobPosting(r.Context(), userID, &input)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to create job posting")
		return
	}
	writeJSON(w, http.StatusCreated, job)
}

func (s *Server) handleListJobs(w http.ResponseWriter, r *http.Request) {
	userID, _, ok := identity(w, r)
	if !ok {
		return
	}
	page, limit := pageParams(r)

	jobs, total, err := s.store.ListJobPostings(r.Context(), userID, page, limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list job postings")
		return
	}
	writeJSON(w, http.StatusOK, types.JobListResponse{
		Jobs:       jobs,
		Pagination: types.NewPagination(page, limit, total),
	})
}

func (s *Server) handleGetJob(w http.ResponseWriter, r *http.Request) {
	userID, _, ok := identity(w, r)
	if !ok {
		return
	}
	job := s.getOwnedJob(w, r, userID)
	if job == nil {
		return
	}
	writeJSON(w, http.StatusOK, job)
}

func (s *Server) handleUpdateJob(w http.ResponseWriter, r *http.Request) {
	userID, _, ok := identity(w, r)
	if !ok {
		return
	}
	job := s.getOwnedJob(w, r, userID)
	if job == nil {
		return
	}

	var input types.JobPostingInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := input.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	updated, err := s.store.UpdateJobPosting(r.Context(), job.ID, &input)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to update job posting")
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (s *Server) handleUpdateJobStatus(w http.ResponseWriter, r *http.Request) {
	userID, _, ok := identity(w, r)
	if !ok {
		return
	}
	job := s.getOwnedJob(w, r, userID)
	if job == nil {
		return
	}

	var body struct {
		Status types.JobStatus `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	switch body.Status {
	case types.JobActive, types.JobPaused, types.JobClosed:
	default:
		writeError(w, http.StatusBadRequest, "invalid job status")
		return
	}

	if err := s.store.UpdateJobStatus(r.Context(), job.ID, body.Status); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to update job status")
		return
	}
	job.Status = body.Status
	writeJSON(w, http.StatusOK, job)
}

func (s *Server) handleDeleteJob(w http.ResponseWriter, r *http.Request) {
	userID, _, ok := identity(w, r)
	if !ok {
		return
	}
	job := s.getOwnedJob(w, r, userID)
	if job == nil {
		return
	}

	if err := s.store.DeleteJobPosting(r.Context(), job.ID); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to delete job posting")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "job posting deleted"})
}
