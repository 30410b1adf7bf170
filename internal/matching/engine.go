package matching

import (
	"context"
	"fmt"
	"log"
	"sort"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/venture-match/internal/types"
)

// recentExperienceLimit caps how many work-history entries ride along with
// each search result.
const recentExperienceLimit = 3

// maxScoreWorkers bounds the scoring fan-out per search.
const maxScoreWorkers = 8

// CandidateStore supplies candidate data to the engine. The engine never
// mutates candidates and holds no state between calls; the store owns
// consistency.
type CandidateStore interface {
	// ListCandidates returns the candidate pool, pre-filtered by
	// availability, work-auth status and location substring where supported.
	ListCandidates(ctx context.Context, filters types.SearchFilters) ([]types.CandidateProfile, error)
	// ListCandidatesPage returns one sorted page of candidates plus the
	// total count, for the plain listing path.
	ListCandidatesPage(ctx context.Context, page, limit int, sortField, order string) ([]types.CandidateProfile, int, error)
	// RecentWorkExperience returns up to limit entries ordered by start
	// date, most recent first.
	RecentWorkExperience(ctx context.Context, candidateID uuid.UUID, limit int) ([]types.WorkExperience, error)
}

// Config holds the engine's tunables. Weights and the synonym table are
// explicit so tests can override them.
type Config struct {
	Weights  Weights
	Synonyms Synonyms
}

// DefaultConfig returns the standard engine configuration.
func DefaultConfig() Config {
	return Config{
		Weights:  DefaultWeights(),
		Synonyms: DefaultSynonyms(),
	}
}

// Engine scores and ranks candidates against job requirements. Each search
// call is an independent, read-only computation.
type Engine struct {
	store CandidateStore
	cfg   Config
}

// NewEngine creates an engine backed by the given candidate store.
func NewEngine(store CandidateStore, cfg Config) *Engine {
	if cfg.Synonyms == nil {
		cfg.Synonyms = DefaultSynonyms()
	}
	if cfg.Weights == (Weights{}) {
		cfg.Weights = DefaultWeights()
	}
	return &Engine{store: store, cfg: cfg}
}

// Search scores the filtered candidate pool against the job requirements and
// returns a gated, sorted, paginated result set with a per-candidate score
// breakdown. An empty pool yields an empty result, not an error.
func (e *Engine) Search(ctx context.Context, req *types.CandidateSearchRequest) (*types.CandidateSearchResponse, error) {
	start := time.Now()

	filters := types.SearchFilters{}
	if req.Filters != nil {
		filters = *req.Filters
	}
	criteria := types.DefaultMatchingCriteria()
	if req.Matching != nil {
		criteria = *req.Matching
	}
	pagination := types.DefaultSearchPagination()
	if req.Pagination != nil {
		pagination = *req.Pagination
	}
	sortCfg := types.DefaultSearchSort()
	if req.Sort != nil {
		sortCfg = *req.Sort
	}

	pool, err := e.store.ListCandidates(ctx, filters)
	if err != nil {
		return nil, fmt.Errorf("failed to list candidates: %w", err)
	}

	// Score candidates concurrently into an index-addressed slice so the
	// result is identical to sequential scoring; ordering is settled by the
	// deterministic sort below. A nil slot means the candidate was gated out
	// or its work-history lookup failed.
	matched := make([]*types.MatchedCandidate, len(pool))
	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(maxScoreWorkers)

	for i := range pool {
		g.Go(func() error {
			candidate := pool[i]
			score, breakdown := CalculateOverallMatch(&candidate, &req.JobRequirements, e.cfg.Synonyms, e.cfg.Weights)

			// Both gates must pass: a high overall score with weak skill
			// coverage is still excluded.
			if score < criteria.MinMatchScore || breakdown.SkillsMatch.Score < criteria.SkillMatchThreshold {
				return nil
			}

			recent, err := e.store.RecentWorkExperience(gCtx, candidate.ID, recentExperienceLimit)
			if err != nil {
				// Exclude this candidate rather than failing the search.
				log.Printf("[search] dropping candidate %s: work experience lookup failed: %v", candidate.ID, err)
				return nil
			}

			matched[i] = &types.MatchedCandidate{
				CandidateProfile: candidate,
				MatchScore:       score,
				MatchBreakdown:   breakdown,
				RecentExperience: recent,
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	results := make([]types.MatchedCandidate, 0, len(matched))
	for _, m := range matched {
		if m != nil {
			results = append(results, *m)
		}
	}

	sortMatches(results, sortCfg)

	total := len(results)
	page := paginate(results, pagination.Page, pagination.Limit)

	return &types.CandidateSearchResponse{
		Candidates: page,
		Pagination: types.NewPagination(pagination.Page, pagination.Limit, total),
		SearchMetadata: types.SearchMetadata{
			TotalMatches:     total,
			SearchTimeMS:     round2(float64(time.Since(start).Microseconds()) / 1000),
			AppliedFilters:   filters,
			MatchingCriteria: criteria,
		},
	}, nil
}

// ListCandidates returns one page of the candidate directory without scoring.
func (e *Engine) ListCandidates(ctx context.Context, page, limit int, sortField, order string) (*types.CandidateListResponse, error) {
	candidates, total, err := e.store.ListCandidatesPage(ctx, page, limit, sortField, order)
	if err != nil {
		return nil, fmt.Errorf("failed to list candidates: %w", err)
	}
	if candidates == nil {
		candidates = []types.CandidateProfile{}
	}
	return &types.CandidateListResponse{
		Candidates: candidates,
		Pagination: types.NewPagination(page, limit, total),
	}, nil
}

// sortMatches orders results in place by the requested field. Availability
// has no ordering of its own, so it sorts by the same score mapping the
// availability scorer uses. The sort is stable so equal keys keep their
// pre-sort order.
func sortMatches(results []types.MatchedCandidate, cfg types.SearchSort) {
	desc := cfg.Order == "desc"

	var less func(a, b *types.MatchedCandidate) bool
	switch cfg.Field {
	case "name":
		less = func(a, b *types.MatchedCandidate) bool { return a.Name < b.Name }
	case "experience":
		less = func(a, b *types.MatchedCandidate) bool {
			return ExperienceRank(a.ExperienceLevel) < ExperienceRank(b.ExperienceLevel)
		}
	case "availability":
		less = func(a, b *types.MatchedCandidate) bool {
			return AvailabilityScore(a.Availability) < AvailabilityScore(b.Availability)
		}
	default: // match_score
		less = func(a, b *types.MatchedCandidate) bool { return a.MatchScore < b.MatchScore }
	}

	sort.SliceStable(results, func(i, j int) bool {
		if desc {
			return less(&results[j], &results[i])
		}
		return less(&results[i], &results[j])
	})
}

// paginate slices one page out of the full result set.
func paginate(results []types.MatchedCandidate, page, limit int) []types.MatchedCandidate {
	start := (page - 1) * limit
	if start >= len(results) {
		return []types.MatchedCandidate{}
	}
	end := start + limit
	if end > len(results) {
		end = len(results)
	}
	return results[start:end]
}
