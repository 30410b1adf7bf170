package types

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// JobPostingInput is the request body for creating or updating a job posting.
type JobPostingInput struct {
	Title           string          `json:"title" validate:"required,max=200"`
	JobDescription  string          `json:"job_description" validate:"required,max=5000"`
	RequiredSkills  []string        `json:"required_skills" validate:"required,min=1,max=20,dive,min=1"`
	PreferredSkills []string        `json:"preferred_skills,omitempty" validate:"omitempty,max=20"`
	ExperienceLevel ExperienceLevel `json:"experience_level" validate:"required,oneof=entry mid senior lead principal executive"`
	Location        string          `json:"location" validate:"required"`
	IsRemote        bool            `json:"is_remote"`
	SalaryRange     SalaryRange     `json:"salary_range" validate:"required"`
	Equity          *EquityRange    `json:"equity,omitempty" validate:"omitempty"`
	EmploymentType  EmploymentType  `json:"employment_type" validate:"required,oneof=full_time part_time contract internship"`
	Department      string          `json:"department" validate:"required"`
	Team            string          `json:"team,omitempty"`
}

// Validate validates the JobPostingInput using the validator.
func (r *JobPostingInput) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Requirements converts the posting into search job requirements.
func (r *JobPostingInput) Requirements() JobRequirements {
	return JobRequirements{
		Title:           r.Title,
		JobDescription:  r.JobDescription,
		RequiredSkills:  r.RequiredSkills,
		PreferredSkills: r.PreferredSkills,
		ExperienceLevel: r.ExperienceLevel,
		Location:        r.Location,
		IsRemote:        r.IsRemote,
	}
}

// JobPosting represents a stored job posting owned by a founder.
type JobPosting struct {
	JobPostingInput
	ID        uuid.UUID `json:"id"`
	FounderID uuid.UUID `json:"founder_id"`
	Status    JobStatus `json:"status"`
	PostedAt  time.Time `json:"posted_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// JobListResponse is the paginated job listing response.
type JobListResponse struct {
	Jobs       []JobPosting `json:"jobs"`
	Pagination Pagination   `json:"pagination"`
}

// SavedSearchInput is the request body for saving search criteria.
type SavedSearchInput struct {
	Name           string                 `json:"name" validate:"required,max=100"`
	SearchCriteria CandidateSearchRequest `json:"search_criteria" validate:"required"`
}

// Validate validates the SavedSearchInput using the validator.
func (r *SavedSearchInput) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// SavedSearch represents stored search criteria for quick reuse.
type SavedSearch struct {
	ID             uuid.UUID              `json:"id"`
	FounderID      uuid.UUID              `json:"founder_id"`
	Name           string                 `json:"name"`
	SearchCriteria CandidateSearchRequest `json:"search_criteria"`
	CreatedAt      time.Time              `json:"created_at"`
	LastUsed       *time.Time             `json:"last_used,omitempty"`
}
