package server

import (
	"context"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/venture-match/internal/config"
	"github.com/jonathan/venture-match/internal/db"
	"github.com/jonathan/venture-match/internal/matching"
	"github.com/jonathan/venture-match/internal/server/middleware"
	"github.com/jonathan/venture-match/internal/server/ratelimit"
	"github.com/jonathan/venture-match/internal/types"
)

// Store is the full database surface the HTTP handlers depend on.
type Store interface {
	AuthStore
	matching.CandidateStore

	GetCandidate(ctx context.Context, candidateID uuid.UUID) (*types.DetailedCandidateProfile, error)

	CreateJobPosting(ctx context.Context, founderID uuid.UUID, input *types.JobPostingInput) (*types.JobPosting, error)
	GetJobPosting(ctx context.Context, id uuid.UUID) (*types.JobPosting, error)
	ListJobPostings(ctx context.Context, founderID uuid.UUID, page, limit int) ([]types.JobPosting, int, error)
	UpdateJobPosting(ctx context.Context, id uuid.UUID, input *types.JobPostingInput) (*types.JobPosting, error)
	UpdateJobStatus(ctx context.Context, id uuid.UUID, status types.JobStatus) error
	DeleteJobPosting(ctx context.Context, id uuid.UUID) error

	CreateSavedSearch(ctx context.Context, founderID uuid.UUID, input *types.SavedSearchInput) (*types.SavedSearch, error)
	GetSavedSearch(ctx context.Context, id uuid.UUID) (*types.SavedSearch, error)
	ListSavedSearches(ctx context.Context, founderID uuid.UUID) ([]types.SavedSearch, error)
	TouchSavedSearch(ctx context.Context, id uuid.UUID) error
	DeleteSavedSearch(ctx context.Context, id uuid.UUID) error

	CreateDeal(ctx context.Context, investorID uuid.UUID, input *types.PipelineDealInput) (*types.PipelineDeal, error)
	GetDeal(ctx context.Context, id uuid.UUID) (*types.PipelineDeal, error)
	ListDeals(ctx context.Context, investorID uuid.UUID, filters db.DealFilters, page, limit int) ([]types.PipelineDeal, int, error)
	UpdateDeal(ctx context.Context, id uuid.UUID, update *types.PipelineDealUpdate) (*types.PipelineDeal, error)
	DeleteDeal(ctx context.Context, id uuid.UUID) error

	CreateMeeting(ctx context.Context, investorID uuid.UUID, input *types.MeetingRequestInput) (*types.Meeting, error)
	GetMeeting(ctx context.Context, id uuid.UUID) (*types.Meeting, error)
	ListMeetings(ctx context.Context, investorID uuid.UUID) ([]types.Meeting, error)
	ScheduleMeeting(ctx context.Context, id uuid.UUID, scheduledAt time.Time, meetingURL string) (*types.Meeting, error)
	UpdateMeetingStatus(ctx context.Context, id uuid.UUID, status types.MeetingStatus) error

	UpsertFounderProfile(ctx context.Context, userID uuid.UUID, input *types.FounderProfileInput) (*types.FounderProfile, error)
	GetFounderProfile(ctx context.Context, id uuid.UUID) (*types.FounderProfile, error)
	ListFounderProfiles(ctx context.Context, filters db.FounderProfileFilters) ([]types.FounderProfile, error)
	UpsertInvestorProfile(ctx context.Context, userID uuid.UUID, input *types.InvestorProfileInput) (*types.InvestorProfile, error)
	GetInvestorProfile(ctx context.Context, id uuid.UUID) (*types.InvestorProfile, error)

	Ping(ctx context.Context) error
}

// Server represents the HTTP server
type Server struct {
	httpServer  *http.Server
	store       Store
	database    *db.DB
	engine      *matching.Engine
	corsOrigin  string
	rateLimiter *ratelimit.Limiter
	jwtService  *JWTService
	userService *UserService
	authHandler *AuthHandler
}

// New creates a new server instance backed by PostgreSQL
func New(cfg *config.ServerConfig) (*Server, error) {
	database, err := db.Connect(context.Background(), cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	s, err := newWithStore(database, cfg.CORSOrigin)
	if err != nil {
		database.Close()
		return nil, err
	}
	s.database = database
	s.httpServer.Addr = cfg.Addr()
	return s, nil
}

// newWithStore builds a server on top of any Store implementation. Used
// directly by tests.
func newWithStore(store Store, corsOrigin string) (*Server, error) {
	s := &Server{
		store:      store,
		engine:     matching.NewEngine(store, matching.DefaultConfig()),
		corsOrigin: corsOrigin,
	}

	s.rateLimiter = ratelimit.NewLimiter(ratelimit.LoadConfig())

	passwordConfig, err := config.NewPasswordConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to create password config: %w", err)
	}
	s.userService = NewUserService(store, passwordConfig)

	jwtConfig, err := config.NewJWTConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to create JWT config: %w", err)
	}
	s.jwtService = NewJWTService(jwtConfig)
	s.authHandler = NewAuthHandler(s.userService, s.jwtService)

	s.httpServer = &http.Server{
		Handler:      s.withRateLimit(s.withLogging(s.withCORS(s.routes()))),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// routes builds the router: public endpoints plus a JWT-protected API.
func (s *Server) routes() http.Handler {
	// Protected API endpoints
	api := http.NewServeMux()

	api.HandleFunc("PUT /auth/password", s.handleUpdatePassword)

	api.HandleFunc("GET /candidates", s.handleListCandidates)
	api.HandleFunc("GET /candidates/{id}", s.handleGetCandidate)
	api.HandleFunc("POST /candidates/search", s.handleSearchCandidates)

	api.HandleFunc("POST /jobs", s.handleCreateJob)
	api.HandleFunc("GET /jobs", s.handleListJobs)
	api.HandleFunc("GET /jobs/{id}", s.handleGetJob)
	api.HandleFunc("PUT /jobs/{id}", s.handleUpdateJob)
	api.HandleFunc("PUT /jobs/{id}/status", s.handleUpdateJobStatus)
	api.HandleFunc("DELETE /jobs/{id}", s.handleDeleteJob)

	api.HandleFunc("POST /searches", s.handleCreateSavedSearch)
	api.HandleFunc("GET /searches", s.handleListSavedSearches)
	api.HandleFunc("GET /searches/{id}", s.handleGetSavedSearch)
	api.HandleFunc("DELETE /searches/{id}", s.handleDeleteSavedSearch)

	api.HandleFunc("POST /pipeline/deals", s.handleCreateDeal)
	api.HandleFunc("GET /pipeline/deals", s.handleListDeals)
	api.HandleFunc("GET /pipeline/deals/{id}", s.handleGetDeal)
	api.HandleFunc("PUT /pipeline/deals/{id}", s.handleUpdateDeal)
	api.HandleFunc("DELETE /pipeline/deals/{id}", s.handleDeleteDeal)

	api.HandleFunc("GET /founders", s.handleListFounders)
	api.HandleFunc("POST /founders", s.handleUpsertFounder)
	api.HandleFunc("GET /founders/{id}", s.handleGetFounder)
	api.HandleFunc("PUT /founders/{id}", s.handleUpdateFounder)

	api.HandleFunc("POST /investors", s.handleUpsertInvestor)
	api.HandleFunc("GET /investors/{id}", s.handleGetInvestor)
	api.HandleFunc("PUT /investors/{id}", s.handleUpdateInvestor)

	api.HandleFunc("POST /meetings", s.handleCreateMeeting)
	api.HandleFunc("GET /meetings", s.handleListMeetings)
	api.HandleFunc("GET /meetings/{id}", s.handleGetMeeting)
	api.HandleFunc("PUT /meetings/{id}/schedule", s.handleScheduleMeeting)
	api.HandleFunc("PUT /meetings/{id}/status", s.handleUpdateMeetingStatus)

	authMW := middleware.AuthMiddleware(s.jwtService.AsTokenValidator())

	// Public endpoints; everything else goes through the auth middleware.
	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("POST /auth/register", s.authHandler.Register)
	mux.HandleFunc("POST /auth/login", s.authHandler.Login)
	mux.Handle("/", authMW(api))

	return mux
}

// Start begins listening for requests
func (s *Server) Start() error {
	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Server starting on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-stop
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	if s.rateLimiter != nil {
		s.rateLimiter.Stop()
	}
	if s.database != nil {
		s.database.Close()
	}
	log.Println("Server stopped")
	return nil
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	origin := s.corsOrigin
	if origin == "" {
		origin = "*"
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", origin)
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withRateLimit adds rate limiting middleware
func (s *Server) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		clientID := s.extractClientID(r)

		allowed, info := s.rateLimiter.Allow(clientID, r.URL.Path, r.Method)
		s.setRateLimitHeaders(w, info)
		if !allowed {
			s.rateLimitResponse(w, info)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withLogging adds request logging
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log.Printf("[%s] %s %s", r.Method, r.URL.Path, r.RemoteAddr)
		next.ServeHTTP(w, r)
		log.Printf("[%s] %s completed in %v", r.Method, r.URL.Path, time.Since(start))
	})
}

// handleHealth returns server health status including database reachability
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if err := s.store.Ping(r.Context()); err != nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{
			"status":   "degraded",
			"database": "unreachable",
		})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleUpdatePassword handles password update requests.
func (s *Server) handleUpdatePassword(w http.ResponseWriter, r *http.Request) {
	userID, _, ok := identity(w, r)
	if !ok {
		return
	}
	s.authHandler.UpdatePassword(w, r, userID)
}

// extractClientID extracts the client identifier from the request.
// For MVP, this uses the IP address from RemoteAddr.
// In the future, this could use X-Forwarded-For header (only from trusted proxies).
func (s *Server) extractClientID(r *http.Request) string {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}

// setRateLimitHeaders sets standard rate limit headers on the response.
func (s *Server) setRateLimitHeaders(w http.ResponseWriter, info ratelimit.Info) {
	if info.Limit > 0 {
		w.Header().Set("X-RateLimit-Limit", fmt.Sprintf("%d", info.Limit))
		w.Header().Set("X-RateLimit-Remaining", fmt.Sprintf("%d", info.Remaining))
		w.Header().Set("X-RateLimit-Reset", fmt.Sprintf("%d", info.ResetTime.Unix()))
	}
}

// rateLimitResponse writes a 429 Too Many Requests response with rate limit information.
func (s *Server) rateLimitResponse(w http.ResponseWriter, info ratelimit.Info) {
	response := map[string]interface{}{
		"error":     "rate_limit_exceeded",
		"message":   "Rate limit exceeded. Please try again later.",
		"limit":     info.Limit,
		"remaining": info.Remaining,
		"reset_at":  info.ResetTime.Format(time.RFC3339),
	}

	if info.RetryAfter > 0 {
		response["retry_after"] = int(info.RetryAfter.Seconds())
		w.Header().Set("Retry-After", fmt.Sprintf("%d", int(info.RetryAfter.Seconds())))
	}

	log.Printf("[rate-limit] Rate limit exceeded: Limit=%d Remaining=%d Reset=%s",
		info.Limit, info.Remaining, info.ResetTime.Format(time.RFC3339))

	writeJSON(w, http.StatusTooManyRequests, response)
}
