package types

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// MeetingRequestInput is the request body for requesting a meeting with a
// founder.
type MeetingRequestInput struct {
	FounderID     uuid.UUID `json:"founder_id" validate:"required"`
	MeetingType   string    `json:"meeting_type" validate:"required"`
	Duration      int       `json:"duration,omitempty" validate:"omitempty,gte=15,lte=240"`
	Agenda        string    `json:"agenda,omitempty"`
	CustomMessage string    `json:"custom_message,omitempty"`
}

// Validate validates the MeetingRequestInput using the validator.
func (r *MeetingRequestInput) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Meeting represents a requested or scheduled meeting.
type Meeting struct {
	ID          uuid.UUID     `json:"id"`
	InvestorID  uuid.UUID     `json:"investor_id"`
	FounderID   uuid.UUID     `json:"founder_id"`
	FounderName string        `json:"founder_name,omitempty"`
	CompanyName string        `json:"company_name,omitempty"`
	MeetingType string        `json:"meeting_type"`
	ScheduledAt *time.Time    `json:"scheduled_at,omitempty"`
	Duration    int           `json:"duration"`
	Status      MeetingStatus `json:"status"`
	Agenda      string        `json:"agenda,omitempty"`
	Notes       string        `json:"notes,omitempty"`
	MeetingURL  string        `json:"meeting_url,omitempty"`
	RequestedAt time.Time     `json:"requested_at"`
}
