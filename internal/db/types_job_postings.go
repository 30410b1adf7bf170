package db

import (
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jonathan/venture-match/internal/types"
)

// jobPostingColumns lists the job posting columns in scan order.
const jobPostingColumns = `id, founder_id, title, job_description, required_skills,
	preferred_skills, experience_level, location, is_remote, salary_range, equity,
	employment_type, department, COALESCE(team, ''), status, posted_at, updated_at`

// scanJobPosting scans one job posting row
func scanJobPosting(row pgx.Row) (*types.JobPosting, error) {
	var j types.JobPosting
	var salaryJSON, equityJSON []byte

	err := row.Scan(&j.ID, &j.FounderID, &j.Title, &j.JobDescription, &j.RequiredSkills,
		&j.PreferredSkills, &j.ExperienceLevel, &j.Location, &j.IsRemote, &salaryJSON,
		&equityJSON, &j.EmploymentType, &j.Department, &j.Team, &j.Status, &j.PostedAt,
		&j.UpdatedAt)
	if err != nil {
		return nil, err
	}

	// Parse JSONB fields
	if salaryJSON != nil {
		_ = json.Unmarshal(salaryJSON, &j.SalaryRange)
	}
	if equityJSON != nil {
		var eq types.EquityRange
		if err := json.Unmarshal(equityJSON, &eq); err == nil {
			j.Equity = &eq
		}
	}

	return &j, nil
}

// jobPostingJSONFields serializes the JSONB columns of a posting input
func jobPostingJSONFields(input *types.JobPostingInput) (salaryJSON, equityJSON []byte, err error) {
	salaryJSON, err = json.Marshal(input.SalaryRange)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to marshal salary range: %w", err)
	}
	if input.Equity != nil {
		equityJSON, err = json.Marshal(input.Equity)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to marshal equity: %w", err)
		}
	}
	return salaryJSON, equityJSON, nil
}
