package types

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// PipelineDealInput is the request body for adding a founder to an
// investor's deal pipeline.
type PipelineDealInput struct {
	FounderID    uuid.UUID `json:"founder_id" validate:"required"`
	FounderName  string    `json:"founder_name,omitempty"`
	CompanyName  string    `json:"company_name,omitempty"`
	InitialStage string    `json:"initial_stage,omitempty"`
}

// Validate validates the PipelineDealInput using the validator.
func (r *PipelineDealInput) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// PipelineDealUpdate carries the mutable fields of a deal. Nil pointers mean
// "leave unchanged".
type PipelineDealUpdate struct {
	Stage         *string            `json:"stage,omitempty"`
	Status        *DealStatus        `json:"status,omitempty" validate:"omitempty,oneof=active passed invested"`
	NextAction    *string            `json:"next_action,omitempty"`
	NextActionDue *time.Time         `json:"next_action_due,omitempty"`
	MatchScore    *int               `json:"match_score,omitempty" validate:"omitempty,gte=0,lte=100"`
	KeyMetrics    map[string]any     `json:"key_metrics,omitempty"`
	RiskFlags     []string           `json:"risk_flags,omitempty"`
	Opportunities []string           `json:"opportunities,omitempty"`
	Notes         []string           `json:"notes,omitempty"`
}

// Validate validates the PipelineDealUpdate using the validator.
func (r *PipelineDealUpdate) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// PipelineDeal represents one founder in an investor's deal pipeline.
type PipelineDeal struct {
	ID            uuid.UUID      `json:"id"`
	InvestorID    uuid.UUID      `json:"investor_id"`
	FounderID     uuid.UUID      `json:"founder_id"`
	FounderName   string         `json:"founder_name,omitempty"`
	CompanyName   string         `json:"company_name,omitempty"`
	Stage         string         `json:"stage"`
	Status        DealStatus     `json:"status"`
	NextAction    string         `json:"next_action,omitempty"`
	NextActionDue *time.Time     `json:"next_action_due,omitempty"`
	MatchScore    int            `json:"match_score"`
	KeyMetrics    map[string]any `json:"key_metrics,omitempty"`
	RiskFlags     []string       `json:"risk_flags,omitempty"`
	Opportunities []string       `json:"opportunities,omitempty"`
	Notes         []string       `json:"notes,omitempty"`
	AddedAt       time.Time      `json:"added_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}

// DealListResponse is the paginated deal listing response.
type DealListResponse struct {
	Deals      []PipelineDeal `json:"deals"`
	Pagination Pagination     `json:"pagination"`
}
