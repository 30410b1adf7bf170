package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/venture-match/internal/types"
)

// CreateJobPosting stores a new job posting for a founder
func (db *DB) CreateJobPosting(ctx context.Context, founderID uuid.UUID, input *types.JobPostingInput) (*types.JobPosting, error) {
	salaryJSON, equityJSON, err := jobPostingJSONFields(input)
	if err != nil {
		return nil, err
	}

	row := db.pool.QueryRow(ctx,
		`INSERT INTO job_postings (founder_id, title, job_description, required_skills,
		                           preferred_skills, experience_level, location, is_remote,
		                           salary_range, equity, employment_type, department, team, status)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, 'active')
		 RETURNING `+jobPostingColumns,
		founderID, input.Title, input.JobDescription, input.RequiredSkills,
		input.PreferredSkills, input.ExperienceLevel, input.Location, input.IsRemote,
		salaryJSON, equityJSON, input.EmploymentType, input.Department, input.Team,
	)

	posting, err := scanJobPosting(row)
	if err != nil {
		return nil, fmt.Errorf("failed to create job posting: %w", err)
	}
	return posting, nil
}

// GetJobPosting retrieves a job posting by ID
func (db *DB) GetJobPosting(ctx context.Context, id uuid.UUID) (*types.JobPosting, error) {
	row := db.pool.QueryRow(ctx,
		`SELECT `+jobPostingColumns+` FROM job_postings WHERE id = $1`, id)

	posting, err := scanJobPosting(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get job posting: %w", err)
	}
	return posting, nil
}

// ListJobPostings retrieves one page of a founder's job postings plus the
// total count
func (db *DB) ListJobPostings(ctx context.Context, founderID uuid.UUID, page, limit int) ([]types.JobPosting, int, error) {
	var total int
	err := db.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM job_postings WHERE founder_id = $1`, founderID,
	).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count job postings: %w", err)
	}

	rows, err := db.pool.Query(ctx,
		`SELECT `+jobPostingColumns+` FROM job_postings
		 WHERE founder_id = $1 ORDER BY posted_at DESC LIMIT $2 OFFSET $3`,
		founderID, limit, (page-1)*limit,
	)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list job postings: %w", err)
	}
	defer rows.Close()

	postings := []types.JobPosting{}
	for rows.Next() {
		p, err := scanJobPosting(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan job posting: %w", err)
		}
		postings = append(postings, *p)
	}
	return postings, total, rows.Err()
}

// UpdateJobPosting replaces a posting's mutable fields
func (db *DB) UpdateJobPosting(ctx context.Context, id uuid.UUID, input *types.JobPostingInput) (*types.JobPosting, error) {
	salaryJSON, equityJSON, err := jobPostingJSONFields(input)
	if err != nil {
		return nil, err
	}

	row := db.pool.QueryRow(ctx,
		`UPDATE job_postings SET title = $2, job_description = $3, required_skills = $4,
		        preferred_skills = $5, experience_level = $6, location = $7, is_remote = $8,
		        salary_range = $9, equity = $10, employment_type = $11, department = $12,
		        team = $13, updated_at = NOW()
		 WHERE id = $1
		 RETURNING `+jobPostingColumns,
		id, input.Title, input.JobDescription, input.RequiredSkills,
		input.PreferredSkills, input.ExperienceLevel, input.Location, input.IsRemote,
		salaryJSON, equityJSON, input.EmploymentType, input.Department, input.Team,
	)

	posting, err := scanJobPosting(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update job posting: %w", err)
	}
	return posting, nil
}

// UpdateJobStatus changes a posting's lifecycle status
func (db *DB) UpdateJobStatus(ctx context.Context, id uuid.UUID, status types.JobStatus) error {
	result, err := db.pool.Exec(ctx,
		`UPDATE job_postings SET status = $1, updated_at = NOW() WHERE id = $2`,
		status, id,
	)
	if err != nil {
		return fmt.Errorf("failed to update job status: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("job posting not found: %s", id)
	}
	return nil
}

// DeleteJobPosting removes a job posting
func (db *DB) DeleteJobPosting(ctx context.Context, id uuid.UUID) error {
	result, err := db.pool.Exec(ctx, `DELETE FROM job_postings WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete job posting: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("job posting not found: %s", id)
	}
	return nil
}
