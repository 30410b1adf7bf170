// Package types provides type definitions for structured data used throughout the venture-match system.
package types

// ExperienceLevel represents a candidate's seniority band.
type ExperienceLevel string

// Experience levels, ordered from most junior to most senior.
const (
	LevelEntry     ExperienceLevel = "entry"
	LevelMid       ExperienceLevel = "mid"
	LevelSenior    ExperienceLevel = "senior"
	LevelLead      ExperienceLevel = "lead"
	LevelPrincipal ExperienceLevel = "principal"
	LevelExecutive ExperienceLevel = "executive"
)

// Availability represents how actively a candidate is job hunting.
type Availability string

// Availability statuses.
const (
	ActivelyLooking     Availability = "actively_looking"
	OpenToOpportunities Availability = "open_to_opportunities"
	NotLooking          Availability = "not_looking"
)

// WorkAuthStatus represents a candidate's work authorization.
type WorkAuthStatus string

// Work authorization statuses.
const (
	AuthCitizen           WorkAuthStatus = "citizen"
	AuthPermanentResident WorkAuthStatus = "permanent_resident"
	AuthVisaHolder        WorkAuthStatus = "visa_holder"
	AuthNeedsSponsorship  WorkAuthStatus = "needs_sponsorship"
)

// EmploymentStatus represents a candidate's current employment situation.
type EmploymentStatus string

// Employment statuses.
const (
	StatusEmployed    EmploymentStatus = "employed"
	StatusUnemployed  EmploymentStatus = "unemployed"
	StatusFreelancing EmploymentStatus = "freelancing"
	StatusStudent     EmploymentStatus = "student"
)

// EmploymentType represents the kind of position a job offers.
type EmploymentType string

// Employment types.
const (
	FullTime   EmploymentType = "full_time"
	PartTime   EmploymentType = "part_time"
	Contract   EmploymentType = "contract"
	Internship EmploymentType = "internship"
)

// JobStatus represents the lifecycle state of a job posting.
type JobStatus string

// Job statuses.
const (
	JobActive JobStatus = "active"
	JobPaused JobStatus = "paused"
	JobClosed JobStatus = "closed"
)

// MeetingStatus represents the lifecycle state of a meeting request.
type MeetingStatus string

// Meeting statuses.
const (
	MeetingRequested MeetingStatus = "requested"
	MeetingScheduled MeetingStatus = "scheduled"
	MeetingCompleted MeetingStatus = "completed"
	MeetingCancelled MeetingStatus = "cancelled"
)

// DealStatus represents the state of a pipeline deal.
type DealStatus string

// Deal statuses.
const (
	DealActive   DealStatus = "active"
	DealPassed   DealStatus = "passed"
	DealInvested DealStatus = "invested"
)
