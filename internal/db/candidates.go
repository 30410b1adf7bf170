package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/venture-match/internal/types"
)

// candidateSortColumns whitelists the sortable columns for the directory
// listing. Anything else falls back to name.
var candidateSortColumns = map[string]string{
	"name":         "name",
	"experience":   "experience_level",
	"availability": "availability",
	"employment":   "employment_status",
	"created_at":   "created_at",
}

// ListCandidates retrieves the candidate pool matching the given filters.
// Salary range filtering is accepted but not applied here.
func (db *DB) ListCandidates(ctx context.Context, filters types.SearchFilters) ([]types.CandidateProfile, error) {
	query := `SELECT ` + candidateColumns + ` FROM candidates WHERE 1=1`
	args := []any{}
	argNum := 1

	if len(filters.Availability) > 0 {
		query += fmt.Sprintf(" AND availability = ANY($%d)", argNum)
		args = append(args, availabilityStrings(filters.Availability))
		argNum++
	}
	if len(filters.WorkAuthStatus) > 0 {
		query += fmt.Sprintf(" AND work_auth_status = ANY($%d)", argNum)
		args = append(args, workAuthStrings(filters.WorkAuthStatus))
		argNum++
	}
	if filters.Location != "" {
		query += fmt.Sprintf(" AND location ILIKE $%d", argNum)
		args = append(args, "%"+filters.Location+"%")
	}

	query += " ORDER BY created_at ASC"

	rows, err := db.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list candidates: %w", err)
	}
	defer rows.Close()

	var candidates []types.CandidateProfile
	for rows.Next() {
		c, err := scanCandidate(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan candidate: %w", err)
		}
		candidates = append(candidates, *c)
	}
	return candidates, rows.Err()
}

// ListCandidatesPage retrieves one page of the candidate directory plus the
// total count
func (db *DB) ListCandidatesPage(ctx context.Context, page, limit int, sortField, order string) ([]types.CandidateProfile, int, error) {
	var total int
	if err := db.pool.QueryRow(ctx, `SELECT COUNT(*) FROM candidates`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count candidates: %w", err)
	}

	column, ok := candidateSortColumns[sortField]
	if !ok {
		column = "name"
	}
	direction := "ASC"
	if order == "desc" {
		direction = "DESC"
	}

	query := fmt.Sprintf(`SELECT %s FROM candidates ORDER BY %s %s LIMIT $1 OFFSET $2`,
		candidateColumns, column, direction)

	rows, err := db.pool.Query(ctx, query, limit, (page-1)*limit)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list candidates: %w", err)
	}
	defer rows.Close()

	candidates := []types.CandidateProfile{}
	for rows.Next() {
		c, err := scanCandidate(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan candidate: %w", err)
		}
		candidates = append(candidates, *c)
	}
	return candidates, total, rows.Err()
}

// GetCandidate retrieves a candidate's full profile including work history
// and education
func (db *DB) GetCandidate(ctx context.Context, candidateID uuid.UUID) (*types.DetailedCandidateProfile, error) {
	row := db.pool.QueryRow(ctx,
		`SELECT `+candidateColumns+`, COALESCE(bio, ''), COALESCE(linkedin_url, ''),
		        COALESCE(portfolio_url, ''), certifications
		 FROM candidates WHERE id = $1`,
		candidateID,
	)

	var p types.DetailedCandidateProfile
	var salaryJSON []byte
	err := row.Scan(&p.ID, &p.Name, &p.Email, &p.Phone, &p.Location, &p.WorkAuthStatus,
		&p.Availability, &p.EmploymentStatus, &salaryJSON, &p.Skills, &p.ExperienceLevel,
		&p.CreatedAt, &p.UpdatedAt, &p.Bio, &p.LinkedinURL, &p.PortfolioURL, &p.Certifications)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get candidate: %w", err)
	}
	if salaryJSON != nil {
		var sr types.SalaryRange
		if jsonErr := json.Unmarshal(salaryJSON, &sr); jsonErr == nil {
			p.SalaryExpectations = &sr
		}
	}

	experience, err := db.listWorkExperience(ctx, candidateID, 0)
	if err != nil {
		return nil, err
	}
	p.WorkExperience = experience

	education, err := db.listEducation(ctx, candidateID)
	if err != nil {
		return nil, err
	}
	p.Education = education

	return &p, nil
}

// RecentWorkExperience retrieves up to limit work history entries, most
// recent first
func (db *DB) RecentWorkExperience(ctx context.Context, candidateID uuid.UUID, limit int) ([]types.WorkExperience, error) {
	return db.listWorkExperience(ctx, candidateID, limit)
}

// listWorkExperience retrieves work history ordered by start date descending.
// A limit of 0 means no limit.
func (db *DB) listWorkExperience(ctx context.Context, candidateID uuid.UUID, limit int) ([]types.WorkExperience, error) {
	query := `SELECT id, candidate_id, title, company, COALESCE(role_description, ''),
	                 start_date, end_date, is_current, skills
	          FROM work_experiences WHERE candidate_id = $1
	          ORDER BY start_date DESC`
	args := []any{candidateID}
	if limit > 0 {
		query += " LIMIT $2"
		args = append(args, limit)
	}

	rows, err := db.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list work experience: %w", err)
	}
	defer rows.Close()

	entries := []types.WorkExperience{}
	for rows.Next() {
		var e types.WorkExperience
		if err := rows.Scan(&e.ID, &e.CandidateID, &e.Title, &e.Company, &e.RoleDescription,
			&e.StartDate, &e.EndDate, &e.IsCurrent, &e.Skills); err != nil {
			return nil, fmt.Errorf("failed to scan work experience: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// listEducation retrieves education entries, most recent graduation first
func (db *DB) listEducation(ctx context.Context, candidateID uuid.UUID) ([]types.Education, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, candidate_id, degree, institution, COALESCE(field_of_study, ''),
		        graduation_year, gpa
		 FROM education WHERE candidate_id = $1
		 ORDER BY graduation_year DESC NULLS LAST`,
		candidateID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list education: %w", err)
	}
	defer rows.Close()

	entries := []types.Education{}
	for rows.Next() {
		var e types.Education
		if err := rows.Scan(&e.ID, &e.CandidateID, &e.Degree, &e.Institution, &e.FieldOfStudy,
			&e.GraduationYear, &e.GPA); err != nil {
			return nil, fmt.Errorf("failed to scan education: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// availabilityStrings converts availability values for a text[] parameter
func availabilityStrings(values []types.Availability) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return out
}

// workAuthStrings converts work auth values for a text[] parameter
func workAuthStrings(values []types.WorkAuthStatus) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return out
}
