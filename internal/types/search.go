package types

import (
	"github.com/go-playground/validator/v10"
)

// Matching criteria defaults applied when the caller omits them.
const (
	DefaultSkillMatchThreshold = 70.0
	DefaultMinMatchScore       = 60.0
	DefaultSearchPage          = 1
	DefaultSearchLimit         = 20
)

// JobRequirements describes what a job needs from a candidate. It is supplied
// per search call, either inline or from a stored job posting.
type JobRequirements struct {
	Title           string          `json:"title,omitempty"`
	JobDescription  string          `json:"job_description,omitempty"`
	RequiredSkills  []string        `json:"required_skills" validate:"required,min=1,dive,min=1"`
	PreferredSkills []string        `json:"preferred_skills,omitempty"`
	ExperienceLevel ExperienceLevel `json:"experience_level" validate:"required,oneof=entry mid senior lead principal executive"`
	Location        string          `json:"location,omitempty"`
	IsRemote        bool            `json:"is_remote"`
}

// SearchFilters narrows the candidate pool before scoring. Salary filtering is
// a declared extension point; the store currently ignores it.
type SearchFilters struct {
	Availability   []Availability   `json:"availability,omitempty" validate:"omitempty,dive,oneof=actively_looking open_to_opportunities not_looking"`
	WorkAuthStatus []WorkAuthStatus `json:"work_auth_status,omitempty" validate:"omitempty,dive,oneof=citizen permanent_resident visa_holder needs_sponsorship"`
	SalaryRange    *SalaryRange     `json:"salary_range,omitempty"`
	Location       string           `json:"location,omitempty"`
}

// MatchingCriteria holds the gating thresholds for a search. These are hard
// pass/fail cutoffs, not weights.
type MatchingCriteria struct {
	SkillMatchThreshold float64 `json:"skill_match_threshold" validate:"gte=0,lte=100"`
	MinMatchScore       float64 `json:"min_match_score" validate:"gte=0,lte=100"`
	UseAIRanking        bool    `json:"use_ai_ranking,omitempty"`
}

// DefaultMatchingCriteria returns the thresholds used when a search request
// does not specify any.
func DefaultMatchingCriteria() MatchingCriteria {
	return MatchingCriteria{
		SkillMatchThreshold: DefaultSkillMatchThreshold,
		MinMatchScore:       DefaultMinMatchScore,
	}
}

// SearchPagination selects a page of results.
type SearchPagination struct {
	Page  int `json:"page" validate:"gte=1"`
	Limit int `json:"limit" validate:"gte=1,lte=100"`
}

// DefaultSearchPagination returns the first page with the default limit.
func DefaultSearchPagination() SearchPagination {
	return SearchPagination{Page: DefaultSearchPage, Limit: DefaultSearchLimit}
}

// SearchSort selects the result ordering.
type SearchSort struct {
	Field string `json:"field" validate:"oneof=match_score experience name availability"`
	Order string `json:"order" validate:"oneof=asc desc"`
}

// DefaultSearchSort returns the default ordering: best matches first.
func DefaultSearchSort() SearchSort {
	return SearchSort{Field: "match_score", Order: "desc"}
}

// CandidateSearchRequest is the full search-and-rank request body.
type CandidateSearchRequest struct {
	JobRequirements JobRequirements   `json:"job_requirements" validate:"required"`
	Filters         *SearchFilters    `json:"filters,omitempty" validate:"omitempty"`
	Matching        *MatchingCriteria `json:"matching,omitempty" validate:"omitempty"`
	Pagination      *SearchPagination `json:"pagination,omitempty" validate:"omitempty"`
	Sort            *SearchSort       `json:"sort,omitempty" validate:"omitempty"`
}

// Validate validates the CandidateSearchRequest using the validator.
func (r *CandidateSearchRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// SearchMetadata describes how a search ran, echoed back to the caller.
type SearchMetadata struct {
	TotalMatches     int              `json:"total_matches"`
	SearchTimeMS     float64          `json:"search_time_ms"`
	AppliedFilters   SearchFilters    `json:"applied_filters"`
	MatchingCriteria MatchingCriteria `json:"matching_criteria"`
}

// CandidateSearchResponse is the result of a search-and-rank call.
type CandidateSearchResponse struct {
	Candidates     []MatchedCandidate `json:"candidates"`
	Pagination     Pagination         `json:"pagination"`
	SearchMetadata SearchMetadata     `json:"search_metadata"`
}

// CandidateListResponse is the result of a plain candidate listing.
type CandidateListResponse struct {
	Candidates []CandidateProfile `json:"candidates"`
	Pagination Pagination         `json:"pagination"`
}
