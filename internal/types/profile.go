package types

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// FounderProfileInput is the request body for creating or replacing a
// founder's public profile.
type FounderProfileInput struct {
	Name            string   `json:"name" validate:"required,max=255"`
	Email           string   `json:"email" validate:"required,email"`
	Role            string   `json:"role" validate:"required"`
	Background      string   `json:"background" validate:"required"`
	ExperienceLevel string   `json:"experience_level" validate:"required"`
	Location        string   `json:"location" validate:"required"`
	FocusAreas      []string `json:"focus_areas" validate:"required,min=1,dive,min=1"`
	LinkedinURL     string   `json:"linkedin_url,omitempty" validate:"omitempty,url"`
	CompanyName     string   `json:"company_name,omitempty"`
	FundingStage    string   `json:"funding_stage,omitempty"`
	Title           string   `json:"title,omitempty"`
}

// Validate validates the FounderProfileInput using the validator.
func (r *FounderProfileInput) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// FounderProfile is a founder's public profile. Its ID is the founder's user
// ID; a user has at most one profile.
type FounderProfile struct {
	FounderProfileInput
	ID        uuid.UUID `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// InvestmentThesis describes what an investor looks for.
type InvestmentThesis struct {
	StageFocus         []string `json:"stage_focus" validate:"required,min=1,dive,min=1"`
	SectorPreferences  []string `json:"sector_preferences" validate:"required,min=1,dive,min=1"`
	GeographicFocus    string   `json:"geographic_focus" validate:"required"`
	CheckSizeRange     string   `json:"check_size_range" validate:"required"`
	InvestmentStyle    string   `json:"investment_style" validate:"required"`
	DealFlowPreference string   `json:"deal_flow_preference,omitempty"`
	DueDiligenceStyle  string   `json:"due_diligence_style,omitempty"`
	ValueAddAreas      []string `json:"value_add_areas,omitempty"`
	InvestmentsPerYear *int     `json:"investments_per_year,omitempty" validate:"omitempty,gte=0"`
}

// InvestorProfileInput is the request body for creating or replacing an
// investor's profile.
type InvestorProfileInput struct {
	Name             string           `json:"name" validate:"required,max=255"`
	Email            string           `json:"email" validate:"required,email"`
	FirmName         string           `json:"firm_name,omitempty"`
	Title            string           `json:"title,omitempty"`
	InvestmentThesis InvestmentThesis `json:"investment_thesis" validate:"required"`
	LinkedinURL      string           `json:"linkedin_url,omitempty" validate:"omitempty,url"`
	Accredited       *bool            `json:"accredited,omitempty"`
}

// Validate validates the InvestorProfileInput using the validator.
func (r *InvestorProfileInput) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// InvestorProfile is an investor's profile. Its ID is the investor's user ID.
type InvestorProfile struct {
	InvestorProfileInput
	ID        uuid.UUID `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
