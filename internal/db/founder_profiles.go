package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/venture-match/internal/types"
)

// founderProfileColumns lists the founder profile columns in scan order.
const founderProfileColumns = `id, name, email, role, background, experience_level,
	location, focus_areas, COALESCE(linkedin_url, ''), COALESCE(company_name, ''),
	COALESCE(funding_stage, ''), COALESCE(title, ''), created_at, updated_at`

// scanFounderProfile scans one founder profile row
func scanFounderProfile(row pgx.Row) (*types.FounderProfile, error) {
	var p types.FounderProfile
	err := row.Scan(&p.ID, &p.Name, &p.Email, &p.Role, &p.Background, &p.ExperienceLevel,
		&p.Location, &p.FocusAreas, &p.LinkedinURL, &p.CompanyName, &p.FundingStage,
		&p.Title, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// UpsertFounderProfile creates or replaces the profile for a founder. The
// profile ID is the founder's user ID, so a second write overwrites the
// first.
func (db *DB) UpsertFounderProfile(ctx context.Context, userID uuid.UUID, input *types.FounderProfileInput) (*types.FounderProfile, error) {
	row := db.pool.QueryRow(ctx,
		`INSERT INTO founder_profiles (id, name, email, role, background, experience_level,
		                               location, focus_areas, linkedin_url, company_name,
		                               funding_stage, title)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NULLIF($9, ''), NULLIF($10, ''),
		         NULLIF($11, ''), NULLIF($12, ''))
		 ON CONFLICT (id) DO UPDATE SET
		     name = EXCLUDED.name, email = EXCLUDED.email, role = EXCLUDED.role,
		     background = EXCLUDED.background, experience_level = EXCLUDED.experience_level,
		     location = EXCLUDED.location, focus_areas = EXCLUDED.focus_areas,
		     linkedin_url = EXCLUDED.linkedin_url, company_name = EXCLUDED.company_name,
		     funding_stage = EXCLUDED.funding_stage, title = EXCLUDED.title,
		     updated_at = NOW()
		 RETURNING `+founderProfileColumns,
		userID, input.Name, input.Email, input.Role, input.Background, input.ExperienceLevel,
		input.Location, input.FocusAreas, input.LinkedinURL, input.CompanyName,
		input.FundingStage, input.Title,
	)

	profile, err := scanFounderProfile(row)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert founder profile: %w", err)
	}
	return profile, nil
}

// GetFounderProfile retrieves a founder profile by user ID
func (db *DB) GetFounderProfile(ctx context.Context, id uuid.UUID) (*types.FounderProfile, error) {
	row := db.pool.QueryRow(ctx,
		`SELECT `+founderProfileColumns+` FROM founder_profiles WHERE id = $1`, id)

	profile, err := scanFounderProfile(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get founder profile: %w", err)
	}
	return profile, nil
}

// FounderProfileFilters narrows the founder directory listing. Zero values
// mean "no filter"; Limit 0 means no cap.
type FounderProfileFilters struct {
	FundingStage string
	Location     string
	Background   string
	Limit        int
}

// ListFounderProfiles retrieves founder profiles matching the filters,
// newest first
func (db *DB) ListFounderProfiles(ctx context.Context, filters FounderProfileFilters) ([]types.FounderProfile, error) {
	query := `SELECT ` + founderProfileColumns + ` FROM founder_profiles`
	var conditions []string
	var args []any

	if filters.FundingStage != "" {
		args = append(args, filters.FundingStage)
		conditions = append(conditions, fmt.Sprintf("funding_stage = $%d", len(args)))
	}
	if filters.Location != "" {
		args = append(args, "%"+filters.Location+"%")
		conditions = append(conditions, fmt.Sprintf("location ILIKE $%d", len(args)))
	}
	if filters.Background != "" {
		args = append(args, filters.Background)
		conditions = append(conditions, fmt.Sprintf("background = $%d", len(args)))
	}

	for i, condition := range conditions {
		if i == 0 {
			query += " WHERE " + condition
		} else {
			query += " AND " + condition
		}
	}
	query += " ORDER BY created_at DESC"
	if filters.Limit > 0 {
		args = append(args, filters.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}

	rows, err := db.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list founder profiles: %w", err)
	}
	defer rows.Close()

	var profiles []types.FounderProfile
	for rows.Next() {
		profile, err := scanFounderProfile(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan founder profile: %w", err)
		}
		profiles = append(profiles, *profile)
	}
	return profiles, rows.Err()
}
