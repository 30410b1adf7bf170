package server

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/venture-match/internal/db"
	"github.com/jonathan/venture-match/internal/types"
)

// mockStore is an in-memory Store implementation for end-to-end handler
// tests.
type mockStore struct {
	*mockAuthStore

	candidates []types.CandidateProfile
	detailed   map[uuid.UUID]*types.DetailedCandidateProfile
	experience map[uuid.UUID][]types.WorkExperience

	jobs      map[uuid.UUID]*types.JobPosting
	searches  map[uuid.UUID]*types.SavedSearch
	deals     map[uuid.UUID]*types.PipelineDeal
	meetings  map[uuid.UUID]*types.Meeting
	founders  map[uuid.UUID]*types.FounderProfile
	investors map[uuid.UUID]*types.InvestorProfile

	pingErr error
}

func newMockStore() *mockStore {
	return &mockStore{
		mockAuthStore: newMockAuthStore(),
		detailed:      make(map[uuid.UUID]*types.DetailedCandidateProfile),
		experience:    make(map[uuid.UUID][]types.WorkExperience),
		jobs:          make(map[uuid.UUID]*types.JobPosting),
		searches:      make(map[uuid.UUID]*types.SavedSearch),
		deals:         make(map[uuid.UUID]*types.PipelineDeal),
		meetings:      make(map[uuid.UUID]*types.Meeting),
		founders:      make(map[uuid.UUID]*types.FounderProfile),
		investors:     make(map[uuid.UUID]*types.InvestorProfile),
	}
}

func (m *mockStore) Ping(_ context.Context) error { return m.pingErr }

func (m *mockStore) ListCandidates(_ context.Context, _ types.SearchFilters) ([]types.CandidateProfile, error) {
	return m.candidates, nil
}

func (m *mockStore) ListCandidatesPage(_ context.Context, page, limit int, _, _ string) ([]types.CandidateProfile, int, error) {
	sorted := make([]types.CandidateProfile, len(m.candidates))
	copy(sorted, m.candidates)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Name < sorted[j].Name })

	start := (page - 1) * limit
	if start >= len(sorted) {
		return nil, len(m.candidates), nil
	}
	end := start + limit
	if end > len(sorted) {
		end = len(sorted)
	}
	return sorted[start:end], len(m.candidates), nil
}

func (m *mockStore) RecentWorkExperience(_ context.Context, candidateID uuid.UUID, limit int) ([]types.WorkExperience, error) {
	entries := m.experience[candidateID]
	if len(entries) > limit {
		entries = entries[:limit]
	}
	return entries, nil
}

func (m *mockStore) GetCandidate(_ context.Context, candidateID uuid.UUID) (*types.DetailedCandidateProfile, error) {
	return m.detailed[candidateID], nil
}

func (m *mockStore) CreateJobPosting(_ context.Context, founderID uuid.UUID, input *types.JobPostingInput) (*types.JobPosting, error) {
	now := time.Now()
	job := &types.JobPosting{
		JobPostingInput: *input,
		ID:              uuid.New(),
		FounderID:       founderID,
		Status:          types.JobActive,
		PostedAt:        now,
		UpdatedAt:       now,
	}
	m.jobs[job.ID] = job
	return job, nil
}

func (m *mockStore) GetJobPosting(_ context.Context, id uuid.UUID) (*types.JobPosting, error) {
	return m.jobs[id], nil
}

func (m *mockStore) ListJobPostings(_ context.Context, founderID uuid.UUID, page, limit int) ([]types.JobPosting, int, error) {
	var owned []types.JobPosting
	for _, job := range m.jobs {
		if job.FounderID == founderID {
			owned = append(owned, *job)
		}
	}
	start := (page - 1) * limit
	if start >= len(owned) {
		return nil, len(owned), nil
	}
	end := start + limit
	if end > len(owned) {
		end = len(owned)
	}
	return owned[start:end], len(owned), nil
}

func (m *mockStore) UpdateJobPosting(_ context.Context, id uuid.UUID, input *types.JobPostingInput) (*types.JobPosting, error) {
	job, ok := m.jobs[id]
	if !ok {
		return nil, nil
	}
	job.JobPostingInput = *input
	job.UpdatedAt = time.Now()
	return job, nil
}

func (m *mockStore) UpdateJobStatus(_ context.Context, id uuid.UUID, status types.JobStatus) error {
	job, ok := m.jobs[id]
	if !ok {
		return fmt.Errorf("job posting not found: %s", id)
	}
	job.Status = status
	return nil
}

func (m *mockStore) DeleteJobPosting(_ context.Context, id uuid.UUID) error {
	if _, ok := m.jobs[id]; !ok {
		return fmt.Errorf("job posting not found: %s", id)
	}
	delete(m.jobs, id)
	return nil
}

func (m *mockStore) CreateSavedSearch(_ context.Context, founderID uuid.UUID, input *types.SavedSearchInput) (*types.SavedSearch, error) {
	search := &types.SavedSearch{
		ID:             uuid.New(),
		FounderID:      founderID,
		Name:           input.Name,
		SearchCriteria: input.SearchCriteria,
		CreatedAt:      time.Now(),
	}
	m.searches[search.ID] = search
	return search, nil
}

func (m *mockStore) GetSavedSearch(_ context.Context, id uuid.UUID) (*types.SavedSearch, error) {
	return m.searches[id], nil
}

func (m *mockStore) ListSavedSearches(_ context.Context, founderID uuid.UUID) ([]types.SavedSearch, error) {
	var owned []types.SavedSearch
	for _, search := range m.searches {
		if search.FounderID == founderID {
			owned = append(owned, *search)
		}
	}
	return owned, nil
}

func (m *mockStore) TouchSavedSearch(_ context.Context, id uuid.UUID) error {
	search, ok := m.searches[id]
	if !ok {
		return fmt.Errorf("saved search not found: %s", id)
	}
	now := time.Now()
	search.LastUsed = &now
	return nil
}

func (m *mockStore) DeleteSavedSearch(_ context.Context, id uuid.UUID) error {
	if _, ok := m.searches[id]; !ok {
		return fmt.Errorf("saved search not found: %s", id)
	}
	delete(m.searches, id)
	return nil
}

func (m *mockStore) CreateDeal(_ context.Context, investorID uuid.UUID, input *types.PipelineDealInput) (*types.PipelineDeal, error) {
	stage := input.InitialStage
	if stage == "" {
		stage = "sourced"
	}
	now := time.Now()
	deal := &types.PipelineDeal{
		ID:          uuid.New(),
		InvestorID:  investorID,
		FounderID:   input.FounderID,
		FounderName: input.FounderName,
		CompanyName: input.CompanyName,
		Stage:       stage,
		Status:      types.DealActive,
		AddedAt:     now,
		UpdatedAt:   now,
	}
	m.deals[deal.ID] = deal
	return deal, nil
}

func (m *mockStore) GetDeal(_ context.Context, id uuid.UUID) (*types.PipelineDeal, error) {
	return m.deals[id], nil
}

func (m *mockStore) ListDeals(_ context.Context, investorID uuid.UUID, filters db.DealFilters, page, limit int) ([]types.PipelineDeal, int, error) {
	var owned []types.PipelineDeal
	for _, deal := range m.deals {
		if deal.InvestorID != investorID {
			continue
		}
		if filters.Stage != "" && deal.Stage != filters.Stage {
			continue
		}
		if filters.Status != "" && deal.Status != filters.Status {
			continue
		}
		owned = append(owned, *deal)
	}
	start := (page - 1) * limit
	if start >= len(owned) {
		return nil, len(owned), nil
	}
	end := start + limit
	if end > len(owned) {
		end = len(owned)
	}
	return owned[start:end], len(owned), nil
}

func (m *mockStore) UpdateDeal(_ context.Context, id uuid.UUID, update *types.PipelineDealUpdate) (*types.PipelineDeal, error) {
	deal, ok := m.deals[id]
	if !ok {
		return nil, nil
	}
	if update.Stage != nil {
		deal.Stage = *update.Stage
	}
	if update.Status != nil {
		deal.Status = *update.Status
	}
	if update.NextAction != nil {
		deal.NextAction = *update.NextAction
	}
	if update.MatchScore != nil {
		deal.MatchScore = *update.MatchScore
	}
	if update.Notes != nil {
		deal.Notes = update.Notes
	}
	deal.UpdatedAt = time.Now()
	return deal, nil
}

func (m *mockStore) DeleteDeal(_ context.Context, id uuid.UUID) error {
	if _, ok := m.deals[id]; !ok {
		return fmt.Errorf("deal not found: %s", id)
	}
	delete(m.deals, id)
	return nil
}

func (m *mockStore) CreateMeeting(_ context.Context, investorID uuid.UUID, input *types.MeetingRequestInput) (*types.Meeting, error) {
	duration := input.Duration
	if duration == 0 {
		duration = 30
	}
	meeting := &types.Meeting{
		ID:          uuid.New(),
		InvestorID:  investorID,
		FounderID:   input.FounderID,
		MeetingType: input.MeetingType,
		Duration:    duration,
		Agenda:      input.Agenda,
		Status:      types.MeetingRequested,
		RequestedAt: time.Now(),
	}
	m.meetings[meeting.ID] = meeting
	return meeting, nil
}

func (m *mockStore) GetMeeting(_ context.Context, id uuid.UUID) (*types.Meeting, error) {
	return m.meetings[id], nil
}

func (m *mockStore) ListMeetings(_ context.Context, investorID uuid.UUID) ([]types.Meeting, error) {
	var owned []types.Meeting
	for _, meeting := range m.meetings {
		if meeting.InvestorID == investorID {
			owned = append(owned, *meeting)
		}
	}
	return owned, nil
}

func (m *mockStore) ScheduleMeeting(_ context.Context, id uuid.UUID, scheduledAt time.Time, meetingURL string) (*types.Meeting, error) {
	meeting, ok := m.meetings[id]
	if !ok {
		return nil, nil
	}
	meeting.Status = types.MeetingScheduled
	meeting.ScheduledAt = &scheduledAt
	meeting.MeetingURL = meetingURL
	return meeting, nil
}

func (m *mockStore) UpdateMeetingStatus(_ context.Context, id uuid.UUID, status types.MeetingStatus) error {
	meeting, ok := m.meetings[id]
	if !ok {
		return fmt.Errorf("meeting not found: %s", id)
	}
	meeting.Status = status
	return nil
}

func (m *mockStore) UpsertFounderProfile(_ context.Context, userID uuid.UUID, input *types.FounderProfileInput) (*types.FounderProfile, error) {
	now := time.Now()
	profile := &types.FounderProfile{
		FounderProfileInput: *input,
		ID:                  userID,
		CreatedAt:           now,
		UpdatedAt:           now,
	}
	if existing, ok := m.founders[userID]; ok {
		profile.CreatedAt = existing.CreatedAt
	}
	m.founders[userID] = profile
	return profile, nil
}

func (m *mockStore) GetFounderProfile(_ context.Context, id uuid.UUID) (*types.FounderProfile, error) {
	return m.founders[id], nil
}

func (m *mockStore) ListFounderProfiles(_ context.Context, filters db.FounderProfileFilters) ([]types.FounderProfile, error) {
	var profiles []types.FounderProfile
	for _, profile := range m.founders {
		if filters.FundingStage != "" && profile.FundingStage != filters.FundingStage {
			continue
		}
		if filters.Location != "" && !strings.Contains(strings.ToLower(profile.Location), strings.ToLower(filters.Location)) {
			continue
		}
		if filters.Background != "" && profile.Background != filters.Background {
			continue
		}
		profiles = append(profiles, *profile)
	}
	if filters.Limit > 0 && len(profiles) > filters.Limit {
		profiles = profiles[:filters.Limit]
	}
	return profiles, nil
}

func (m *mockStore) UpsertInvestorProfile(_ context.Context, userID uuid.UUID, input *types.InvestorProfileInput) (*types.InvestorProfile, error) {
	now := time.Now()
	profile := &types.InvestorProfile{
		InvestorProfileInput: *input,
		ID:                   userID,
		CreatedAt:            now,
		UpdatedAt:            now,
	}
	if existing, ok := m.investors[userID]; ok {
		profile.CreatedAt = existing.CreatedAt
	}
	m.investors[userID] = profile
	return profile, nil
}

func (m *mockStore) GetInvestorProfile(_ context.Context, id uuid.UUID) (*types.InvestorProfile, error) {
	return m.investors[id], nil
}

// newTestServer spins up the full middleware and routing stack over a mock
// store.
func newTestServer(t *testing.T) (*httptest.Server, *mockStore, *Server) {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret-key-for-jwt-signing-minimum-32-bytes")
	t.Setenv("BCRYPT_COST", "10")
	t.Setenv("RATE_LIMIT_ENABLED", "false")

	store := newMockStore()
	srv, err := newWithStore(store, "*")
	require.NoError(t, err)

	ts := httptest.NewServer(srv.httpServer.Handler)
	t.Cleanup(func() {
		ts.Close()
		srv.rateLimiter.Stop()
	})
	return ts, store, srv
}

func tokenFor(t *testing.T, srv *Server, role string) (uuid.UUID, string) {
	t.Helper()
	userID := uuid.New()
	token, err := srv.jwtService.GenerateToken(userID, role)
	require.NoError(t, err)
	return userID, token
}

// doRequest issues an HTTP request with an optional bearer token and JSON
// body.
func doRequest(t *testing.T, method, url, token string, body any) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}
	req, err := http.NewRequest(method, url, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

func seedCandidate(store *mockStore, name string) types.CandidateProfile {
	candidate := types.CandidateProfile{
		ID:              uuid.New(),
		Name:            name,
		Email:           name + "@example.com",
		Location:        "Remote",
		WorkAuthStatus:  types.AuthCitizen,
		Availability:    types.ActivelyLooking,
		Skills:          []string{"Go", "PostgreSQL"},
		ExperienceLevel: types.LevelSenior,
	}
	store.candidates = append(store.candidates, candidate)
	store.detailed[candidate.ID] = &types.DetailedCandidateProfile{
		CandidateProfile: candidate,
		Bio:              "Backend engineer",
	}
	return candidate
}

func searchBody() map[string]any {
	return map[string]any{
		"job_requirements": map[string]any{
			"required_skills":  []string{"go"},
			"experience_level": "senior",
			"is_remote":        true,
		},
	}
}

func TestHealthEndpoint(t *testing.T) {
	ts, _, _ := newTestServer(t)

	resp := doRequest(t, http.MethodGet, ts.URL+"/health", "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	decodeBody(t, resp, &body)
	assert.Equal(t, "ok", body["status"])
}

func TestHealthEndpoint_DatabaseDown(t *testing.T) {
	ts, store, _ := newTestServer(t)
	store.pingErr = fmt.Errorf("connection refused")

	resp := doRequest(t, http.MethodGet, ts.URL+"/health", "", nil)
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)

	var body map[string]string
	decodeBody(t, resp, &body)
	assert.Equal(t, "degraded", body["status"])
}

func TestProtectedEndpoints_RequireAuth(t *testing.T) {
	ts, _, _ := newTestServer(t)

	paths := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/candidates"},
		{http.MethodPost, "/candidates/search"},
		{http.MethodGet, "/jobs"},
		{http.MethodGet, "/searches"},
		{http.MethodGet, "/pipeline/deals"},
		{http.MethodGet, "/meetings"},
		{http.MethodPut, "/auth/password"},
	}
	for _, tc := range paths {
		resp := doRequest(t, tc.method, ts.URL+tc.path, "", nil)
		resp.Body.Close()
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, "%s %s", tc.method, tc.path)
	}
}

func TestRegisterLoginFlow(t *testing.T) {
	ts, _, _ := newTestServer(t)

	resp := doRequest(t, http.MethodPost, ts.URL+"/auth/register", "", map[string]string{
		"name":     "Ada Founder",
		"email":    "ada@example.com",
		"password": "password123",
		"role":     types.RoleFounder,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var registered types.LoginResponse
	decodeBody(t, resp, &registered)
	require.NotNil(t, registered.User)
	require.NotEmpty(t, registered.Token)
	assert.Equal(t, types.RoleFounder, registered.User.Role)

	resp = doRequest(t, http.MethodPost, ts.URL+"/auth/login", "", map[string]string{
		"email":    "ada@example.com",
		"password": "password123",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var loggedIn types.LoginResponse
	decodeBody(t, resp, &loggedIn)
	assert.Equal(t, registered.User.ID, loggedIn.User.ID)

	// The issued token works against protected endpoints.
	resp = doRequest(t, http.MethodGet, ts.URL+"/candidates", loggedIn.Token, nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	ts, _, _ := newTestServer(t)

	body := map[string]string{
		"name":     "Ada Founder",
		"email":    "ada@example.com",
		"password": "password123",
		"role":     types.RoleFounder,
	}
	resp := doRequest(t, http.MethodPost, ts.URL+"/auth/register", "", body)
	resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = doRequest(t, http.MethodPost, ts.URL+"/auth/register", "", body)
	resp.Body.Close()
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestCandidateSearch(t *testing.T) {
	ts, store, srv := newTestServer(t)
	seedCandidate(store, "Grace")
	seedCandidate(store, "Linus")
	_, token := tokenFor(t, srv, types.RoleFounder)

	resp := doRequest(t, http.MethodPost, ts.URL+"/candidates/search", token, searchBody())
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var result types.CandidateSearchResponse
	decodeBody(t, resp, &result)
	require.Len(t, result.Candidates, 2)
	assert.Equal(t, 2, result.SearchMetadata.TotalMatches)
	for _, matched := range result.Candidates {
		assert.Equal(t, 100.0, matched.MatchScore)
	}
}

func TestCandidateSearch_InvalidBody(t *testing.T) {
	ts, _, srv := newTestServer(t)
	_, token := tokenFor(t, srv, types.RoleFounder)

	// required_skills missing
	resp := doRequest(t, http.MethodPost, ts.URL+"/candidates/search", token, map[string]any{
		"job_requirements": map[string]any{"experience_level": "senior"},
	})
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestListCandidates(t *testing.T) {
	ts, store, srv := newTestServer(t)
	for _, name := range []string{"Grace", "Linus", "Ada"} {
		seedCandidate(store, name)
	}
	_, token := tokenFor(t, srv, types.RoleFounder)

	resp := doRequest(t, http.MethodGet, ts.URL+"/candidates?page=1&limit=2", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var result types.CandidateListResponse
	decodeBody(t, resp, &result)
	require.Len(t, result.Candidates, 2)
	assert.Equal(t, 3, result.Pagination.Total)
	assert.True(t, result.Pagination.HasNext)
}

func TestGetCandidate(t *testing.T) {
	ts, store, srv := newTestServer(t)
	candidate := seedCandidate(store, "Grace")
	_, token := tokenFor(t, srv, types.RoleFounder)

	resp := doRequest(t, http.MethodGet, ts.URL+"/candidates/"+candidate.ID.String(), token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var detailed types.DetailedCandidateProfile
	decodeBody(t, resp, &detailed)
	assert.Equal(t, candidate.ID, detailed.ID)
	assert.Equal(t, "Backend engineer", detailed.Bio)
}

func TestGetCandidate_NotFound(t *testing.T) {
	ts, _, srv := newTestServer(t)
	_, token := tokenFor(t, srv, types.RoleFounder)

	resp := doRequest(t, http.MethodGet, ts.URL+"/candidates/"+uuid.NewString(), token, nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func jobBody() map[string]any {
	return map[string]any{
		"title":            "Senior Backend Engineer",
		"job_description":  "Build the matching platform backend.",
		"required_skills":  []string{"go", "postgresql"},
		"experience_level": "senior",
		"location":         "Remote",
		"is_remote":        true,
		"salary_range":     map[string]any{"min": 150000, "max": 200000, "currency": "USD"},
		"employment_type":  "full_time",
		"department":       "Engineering",
	}
}

func TestJobLifecycle(t *testing.T) {
	ts, _, srv := newTestServer(t)
	_, token := tokenFor(t, srv, types.RoleFounder)

	// Create
	resp := doRequest(t, http.MethodPost, ts.URL+"/jobs", token, jobBody())
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var job types.JobPosting
	decodeBody(t, resp, &job)
	assert.Equal(t, types.JobActive, job.Status)

	// Get
	resp = doRequest(t, http.MethodGet, ts.URL+"/jobs/"+job.ID.String(), token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	// Update
	updated := jobBody()
	updated["title"] = "Staff Backend Engineer"
	resp = doRequest(t, http.MethodPut, ts.URL+"/jobs/"+job.ID.String(), token, updated)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var afterUpdate types.JobPosting
	decodeBody(t, resp, &afterUpdate)
	assert.Equal(t, "Staff Backend Engineer", afterUpdate.Title)

	// Status change
	resp = doRequest(t, http.MethodPut, ts.URL+"/jobs/"+job.ID.String()+"/status", token, map[string]string{"status": "paused"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var afterStatus types.JobPosting
	decodeBody(t, resp, &afterStatus)
	assert.Equal(t, types.JobPaused, afterStatus.Status)

	// List
	resp = doRequest(t, http.MethodGet, ts.URL+"/jobs", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var list types.JobListResponse
	decodeBody(t, resp, &list)
	assert.Len(t, list.Jobs, 1)

	// Delete
	resp = doRequest(t, http.MethodDelete, ts.URL+"/jobs/"+job.ID.String(), token, nil)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = doRequest(t, http.MethodGet, ts.URL+"/jobs/"+job.ID.String(), token, nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestJobOwnership(t *testing.T) {
	ts, _, srv := newTestServer(t)
	_, ownerToken := tokenFor(t, srv, types.RoleFounder)
	_, otherToken := tokenFor(t, srv, types.RoleFounder)

	resp := doRequest(t, http.MethodPost, ts.URL+"/jobs", ownerToken, jobBody())
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var job types.JobPosting
	decodeBody(t, resp, &job)

	resp = doRequest(t, http.MethodGet, ts.URL+"/jobs/"+job.ID.String(), otherToken, nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp = doRequest(t, http.MethodDelete, ts.URL+"/jobs/"+job.ID.String(), otherToken, nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestCreateJob_InvestorForbidden(t *testing.T) {
	ts, _, srv := newTestServer(t)
	_, token := tokenFor(t, srv, types.RoleInvestor)

	resp := doRequest(t, http.MethodPost, ts.URL+"/jobs", token, jobBody())
	resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestSavedSearchLifecycle(t *testing.T) {
	ts, _, srv := newTestServer(t)
	_, token := tokenFor(t, srv, types.RoleFounder)

	resp := doRequest(t, http.MethodPost, ts.URL+"/searches", token, map[string]any{
		"name":            "Senior Go engineers",
		"search_criteria": searchBody(),
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var search types.SavedSearch
	decodeBody(t, resp, &search)
	assert.Nil(t, search.LastUsed)

	// Fetching the search records the use.
	resp = doRequest(t, http.MethodGet, ts.URL+"/searches/"+search.ID.String(), token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = doRequest(t, http.MethodGet, ts.URL+"/searches", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var list struct {
		Searches []types.SavedSearch `json:"searches"`
	}
	decodeBody(t, resp, &list)
	require.Len(t, list.Searches, 1)
	assert.NotNil(t, list.Searches[0].LastUsed)

	resp = doRequest(t, http.MethodDelete, ts.URL+"/searches/"+search.ID.String(), token, nil)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = doRequest(t, http.MethodGet, ts.URL+"/searches/"+search.ID.String(), token, nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestDealLifecycle(t *testing.T) {
	ts, _, srv := newTestServer(t)
	_, token := tokenFor(t, srv, types.RoleInvestor)

	resp := doRequest(t, http.MethodPost, ts.URL+"/pipeline/deals", token, map[string]any{
		"founder_id":   uuid.NewString(),
		"founder_name": "Ada Founder",
		"company_name": "Example Labs",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var deal types.PipelineDeal
	decodeBody(t, resp, &deal)
	assert.Equal(t, "sourced", deal.Stage)
	assert.Equal(t, types.DealActive, deal.Status)

	// Update stage and score
	stage := "diligence"
	score := 85
	resp = doRequest(t, http.MethodPut, ts.URL+"/pipeline/deals/"+deal.ID.String(), token, map[string]any{
		"stage":       stage,
		"match_score": score,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var afterUpdate types.PipelineDeal
	decodeBody(t, resp, &afterUpdate)
	assert.Equal(t, stage, afterUpdate.Stage)
	assert.Equal(t, score, afterUpdate.MatchScore)

	// Stage filter
	resp = doRequest(t, http.MethodGet, ts.URL+"/pipeline/deals?stage=diligence", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var list types.DealListResponse
	decodeBody(t, resp, &list)
	assert.Len(t, list.Deals, 1)

	resp = doRequest(t, http.MethodGet, ts.URL+"/pipeline/deals?stage=sourced", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var empty types.DealListResponse
	decodeBody(t, resp, &empty)
	assert.Len(t, empty.Deals, 0)

	// Delete
	resp = doRequest(t, http.MethodDelete, ts.URL+"/pipeline/deals/"+deal.ID.String(), token, nil)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestCreateDeal_FounderForbidden(t *testing.T) {
	ts, _, srv := newTestServer(t)
	_, token := tokenFor(t, srv, types.RoleFounder)

	resp := doRequest(t, http.MethodPost, ts.URL+"/pipeline/deals", token, map[string]any{
		"founder_id": uuid.NewString(),
	})
	resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestMeetingLifecycle(t *testing.T) {
	ts, _, srv := newTestServer(t)
	_, token := tokenFor(t, srv, types.RoleInvestor)

	resp := doRequest(t, http.MethodPost, ts.URL+"/meetings", token, map[string]any{
		"founder_id":   uuid.NewString(),
		"meeting_type": "intro_call",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var meeting types.Meeting
	decodeBody(t, resp, &meeting)
	assert.Equal(t, types.MeetingRequested, meeting.Status)
	assert.Equal(t, 30, meeting.Duration)

	// Schedule
	scheduledAt := time.Now().Add(48 * time.Hour).UTC().Truncate(time.Second)
	resp = doRequest(t, http.MethodPut, ts.URL+"/meetings/"+meeting.ID.String()+"/schedule", token, map[string]any{
		"scheduled_at": scheduledAt,
		"meeting_url":  "https://meet.example.com/abc",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var scheduled types.Meeting
	decodeBody(t, resp, &scheduled)
	assert.Equal(t, types.MeetingScheduled, scheduled.Status)
	require.NotNil(t, scheduled.ScheduledAt)
	assert.True(t, scheduled.ScheduledAt.Equal(scheduledAt))

	// Complete
	resp = doRequest(t, http.MethodPut, ts.URL+"/meetings/"+meeting.ID.String()+"/status", token, map[string]string{"status": "completed"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var completed types.Meeting
	decodeBody(t, resp, &completed)
	assert.Equal(t, types.MeetingCompleted, completed.Status)

	resp = doRequest(t, http.MethodGet, ts.URL+"/meetings", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var list struct {
		Meetings []types.Meeting `json:"meetings"`
	}
	decodeBody(t, resp, &list)
	assert.Len(t, list.Meetings, 1)
}

func TestMeeting_InvalidStatus(t *testing.T) {
	ts, _, srv := newTestServer(t)
	_, token := tokenFor(t, srv, types.RoleInvestor)

	resp := doRequest(t, http.MethodPost, ts.URL+"/meetings", token, map[string]any{
		"founder_id":   uuid.NewString(),
		"meeting_type": "intro_call",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var meeting types.Meeting
	decodeBody(t, resp, &meeting)

	resp = doRequest(t, http.MethodPut, ts.URL+"/meetings/"+meeting.ID.String()+"/status", token, map[string]string{"status": "rescheduled"})
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestCORSPreflight(t *testing.T) {
	ts, _, _ := newTestServer(t)

	req, err := http.NewRequest(http.MethodOptions, ts.URL+"/candidates", nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
}

func founderProfileBody(name string) map[string]any {
	return map[string]any{
		"name":             name,
		"email":            strings.ToLower(name) + "@example.com",
		"role":             "CEO",
		"background":       "technical",
		"experience_level": "serial_founder",
		"location":         "San Francisco, CA",
		"focus_areas":      []string{"developer tools"},
		"company_name":     name + " Labs",
		"funding_stage":    "seed",
	}
}

func TestFounderProfileLifecycle(t *testing.T) {
	ts, _, srv := newTestServer(t)
	founderID, token := tokenFor(t, srv, types.RoleFounder)

	resp := doRequest(t, http.MethodPost, ts.URL+"/founders", token, founderProfileBody("Ada"))
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var profile types.FounderProfile
	decodeBody(t, resp, &profile)
	assert.Equal(t, founderID, profile.ID)
	assert.Equal(t, "seed", profile.FundingStage)

	// Any authenticated user can read a founder profile.
	_, investorToken := tokenFor(t, srv, types.RoleInvestor)
	resp = doRequest(t, http.MethodGet, ts.URL+"/founders/"+founderID.String(), investorToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	body := founderProfileBody("Ada")
	body["funding_stage"] = "series_a"
	resp = doRequest(t, http.MethodPut, ts.URL+"/founders/"+founderID.String(), token, body)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decodeBody(t, resp, &profile)
	assert.Equal(t, "series_a", profile.FundingStage)
}

func TestFounderProfile_NotFound(t *testing.T) {
	ts, _, srv := newTestServer(t)
	_, token := tokenFor(t, srv, types.RoleFounder)

	resp := doRequest(t, http.MethodGet, ts.URL+"/founders/"+uuid.NewString(), token, nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestFounderProfile_Validation(t *testing.T) {
	ts, _, srv := newTestServer(t)
	_, token := tokenFor(t, srv, types.RoleFounder)

	body := founderProfileBody("Ada")
	delete(body, "focus_areas")
	resp := doRequest(t, http.MethodPost, ts.URL+"/founders", token, body)
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestFounderProfile_RoleAndOwnership(t *testing.T) {
	ts, _, srv := newTestServer(t)
	founderID, founderToken := tokenFor(t, srv, types.RoleFounder)
	_, investorToken := tokenFor(t, srv, types.RoleInvestor)
	_, otherFounderToken := tokenFor(t, srv, types.RoleFounder)

	resp := doRequest(t, http.MethodPost, ts.URL+"/founders", founderToken, founderProfileBody("Ada"))
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	// Investors cannot create founder profiles.
	resp = doRequest(t, http.MethodPost, ts.URL+"/founders", investorToken, founderProfileBody("Eve"))
	resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	// A founder cannot rewrite someone else's profile.
	resp = doRequest(t, http.MethodPut, ts.URL+"/founders/"+founderID.String(), otherFounderToken, founderProfileBody("Eve"))
	resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestListFounders_Filters(t *testing.T) {
	ts, store, srv := newTestServer(t)
	_, token := tokenFor(t, srv, types.RoleInvestor)

	ctx := context.Background()
	seedInput := func(name, stage, location string) {
		input := types.FounderProfileInput{
			Name:            name,
			Email:           strings.ToLower(name) + "@example.com",
			Role:            "CEO",
			Background:      "technical",
			ExperienceLevel: "first_time",
			Location:        location,
			FocusAreas:      []string{"fintech"},
			FundingStage:    stage,
		}
		_, err := store.UpsertFounderProfile(ctx, uuid.New(), &input)
		require.NoError(t, err)
	}
	seedInput("Ada", "seed", "San Francisco, CA")
	seedInput("Grace", "series_a", "New York, NY")
	seedInput("Joan", "seed", "Austin, TX")

	resp := doRequest(t, http.MethodGet, ts.URL+"/founders?funding_stage=seed", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var list struct {
		Founders []types.FounderProfile `json:"founders"`
	}
	decodeBody(t, resp, &list)
	assert.Len(t, list.Founders, 2)

	resp = doRequest(t, http.MethodGet, ts.URL+"/founders?location=york", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decodeBody(t, resp, &list)
	require.Len(t, list.Founders, 1)
	assert.Equal(t, "Grace", list.Founders[0].Name)

	resp = doRequest(t, http.MethodGet, ts.URL+"/founders?limit=1", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decodeBody(t, resp, &list)
	assert.Len(t, list.Founders, 1)
}

func investorProfileBody(name string) map[string]any {
	return map[string]any{
		"name":      name,
		"email":     strings.ToLower(name) + "@example.com",
		"firm_name": name + " Capital",
		"investment_thesis": map[string]any{
			"stage_focus":        []string{"seed", "series_a"},
			"sector_preferences": []string{"fintech"},
			"geographic_focus":   "North America",
			"check_size_range":   "$250k-$1M",
			"investment_style":   "hands_on",
		},
		"accredited": true,
	}
}

func TestInvestorProfileLifecycle(t *testing.T) {
	ts, _, srv := newTestServer(t)
	investorID, token := tokenFor(t, srv, types.RoleInvestor)

	resp := doRequest(t, http.MethodPost, ts.URL+"/investors", token, investorProfileBody("Vera"))
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var profile types.InvestorProfile
	decodeBody(t, resp, &profile)
	assert.Equal(t, investorID, profile.ID)
	assert.Equal(t, []string{"seed", "series_a"}, profile.InvestmentThesis.StageFocus)

	resp = doRequest(t, http.MethodGet, ts.URL+"/investors/"+investorID.String(), token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	body := investorProfileBody("Vera")
	body["firm_name"] = "Vera Ventures"
	resp = doRequest(t, http.MethodPut, ts.URL+"/investors/"+investorID.String(), token, body)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decodeBody(t, resp, &profile)
	assert.Equal(t, "Vera Ventures", profile.FirmName)
}

func TestInvestorProfile_RoleAndOwnership(t *testing.T) {
	ts, _, srv := newTestServer(t)
	investorID, investorToken := tokenFor(t, srv, types.RoleInvestor)
	_, founderToken := tokenFor(t, srv, types.RoleFounder)
	_, otherInvestorToken := tokenFor(t, srv, types.RoleInvestor)

	resp := doRequest(t, http.MethodPost, ts.URL+"/investors", investorToken, investorProfileBody("Vera"))
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = doRequest(t, http.MethodPost, ts.URL+"/investors", founderToken, investorProfileBody("Mallory"))
	resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp = doRequest(t, http.MethodPut, ts.URL+"/investors/"+investorID.String(), otherInvestorToken, investorProfileBody("Mallory"))
	resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestInvestorProfile_MissingThesis(t *testing.T) {
	ts, _, srv := newTestServer(t)
	_, token := tokenFor(t, srv, types.RoleInvestor)

	body := investorProfileBody("Vera")
	delete(body, "investment_thesis")
	resp := doRequest(t, http.MethodPost, ts.URL+"/investors", token, body)
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
