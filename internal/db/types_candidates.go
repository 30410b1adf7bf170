package db

import (
	"encoding/json"

	"github.com/jackc/pgx/v5"

	"github.com/jonathan/venture-match/internal/types"
)

// candidateColumns lists the summary columns in scan order.
const candidateColumns = `id, name, email, COALESCE(phone, ''), location, work_auth_status,
	availability, employment_status, salary_expectations, skills, experience_level,
	created_at, updated_at`

// scanCandidate scans one candidate summary row
func scanCandidate(row pgx.Row) (*types.CandidateProfile, error) {
	var c types.CandidateProfile
	var salaryJSON []byte

	err := row.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.Location, &c.WorkAuthStatus,
		&c.Availability, &c.EmploymentStatus, &salaryJSON, &c.Skills, &c.ExperienceLevel,
		&c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}

	// Parse JSONB fields
	if salaryJSON != nil {
		var sr types.SalaryRange
		if err := json.Unmarshal(salaryJSON, &sr); err == nil {
			c.SalaryExpectations = &sr
		}
	}

	return &c, nil
}
