package types

import (
	"time"

	"github.com/google/uuid"
)

// SalaryRange represents a compensation band in a single currency.
type SalaryRange struct {
	Min      float64 `json:"min" validate:"gte=0"`
	Max      float64 `json:"max" validate:"gte=0,gtefield=Min"`
	Currency string  `json:"currency,omitempty"`
}

// EquityRange represents an equity band, either in percent or basis points.
type EquityRange struct {
	Min  float64 `json:"min" validate:"gte=0"`
	Max  float64 `json:"max" validate:"gte=0,gtefield=Min"`
	Unit string  `json:"unit" validate:"oneof=percentage basis_points"`
}

// WorkExperience represents a single entry in a candidate's work history.
type WorkExperience struct {
	ID              uuid.UUID  `json:"id"`
	CandidateID     uuid.UUID  `json:"candidate_id"`
	Title           string     `json:"title"`
	Company         string     `json:"company"`
	RoleDescription string     `json:"role_description"`
	StartDate       time.Time  `json:"start_date"`
	EndDate         *time.Time `json:"end_date,omitempty"`
	IsCurrent       bool       `json:"is_current"`
	Skills          []string   `json:"skills,omitempty"`
}

// Education represents a candidate's education entry.
type Education struct {
	ID             uuid.UUID `json:"id"`
	CandidateID    uuid.UUID `json:"candidate_id"`
	Degree         string    `json:"degree"`
	Institution    string    `json:"institution"`
	FieldOfStudy   string    `json:"field_of_study"`
	GraduationYear *int      `json:"graduation_year,omitempty"`
	GPA            *float64  `json:"gpa,omitempty"`
}

// CandidateProfile represents the summary view of a candidate.
// Profiles are owned by the candidate store; the matching engine treats them
// as immutable input.
type CandidateProfile struct {
	ID                 uuid.UUID        `json:"id"`
	Name               string           `json:"name"`
	Email              string           `json:"email"`
	Phone              string           `json:"phone,omitempty"`
	Location           string           `json:"location"`
	WorkAuthStatus     WorkAuthStatus   `json:"work_auth_status"`
	Availability       Availability     `json:"availability"`
	EmploymentStatus   EmploymentStatus `json:"employment_status"`
	SalaryExpectations *SalaryRange     `json:"salary_expectations,omitempty"`
	Skills             []string         `json:"skills"`
	ExperienceLevel    ExperienceLevel  `json:"experience_level"`
	CreatedAt          time.Time        `json:"created_at"`
	UpdatedAt          time.Time        `json:"updated_at"`
}

// DetailedCandidateProfile extends CandidateProfile with full history.
type DetailedCandidateProfile struct {
	CandidateProfile
	Bio            string           `json:"bio,omitempty"`
	LinkedinURL    string           `json:"linkedin_url,omitempty"`
	PortfolioURL   string           `json:"portfolio_url,omitempty"`
	WorkExperience []WorkExperience `json:"work_experience"`
	Education      []Education      `json:"education"`
	Certifications []string         `json:"certifications,omitempty"`
}
