package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/venture-match/internal/types"
)

// investorProfileColumns lists the investor profile columns in scan order.
const investorProfileColumns = `id, name, email, COALESCE(firm_name, ''), COALESCE(title, ''),
	stage_focus, sector_preferences, geographic_focus, check_size_range, investment_style,
	COALESCE(deal_flow_preference, ''), COALESCE(due_diligence_style, ''), value_add_areas,
	investments_per_year, COALESCE(linkedin_url, ''), accredited, created_at, updated_at`

// scanInvestorProfile scans one investor profile row
func scanInvestorProfile(row pgx.Row) (*types.InvestorProfile, error) {
	var p types.InvestorProfile
	err := row.Scan(&p.ID, &p.Name, &p.Email, &p.FirmName, &p.Title,
		&p.InvestmentThesis.StageFocus, &p.InvestmentThesis.SectorPreferences,
		&p.InvestmentThesis.GeographicFocus, &p.InvestmentThesis.CheckSizeRange,
		&p.InvestmentThesis.InvestmentStyle, &p.InvestmentThesis.DealFlowPreference,
		&p.InvestmentThesis.DueDiligenceStyle, &p.InvestmentThesis.ValueAddAreas,
		&p.InvestmentThesis.InvestmentsPerYear, &p.LinkedinURL, &p.Accredited,
		&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// UpsertInvestorProfile creates or replaces the profile for an investor. The
// profile ID is the investor's user ID.
func (db *DB) UpsertInvestorProfile(ctx context.Context, userID uuid.UUID, input *types.InvestorProfileInput) (*types.InvestorProfile, error) {
	thesis := input.InvestmentThesis
	row := db.pool.QueryRow(ctx,
		`INSERT INTO investor_profiles (id, name, email, firm_name, title, stage_focus,
		                                sector_preferences, geographic_focus, check_size_range,
		                                investment_style, deal_flow_preference, due_diligence_style,
		                                value_add_areas, investments_per_year, linkedin_url, accredited)
		 VALUES ($1, $2, $3, NULLIF($4, ''), NULLIF($5, ''), $6, $7, $8, $9, $10,
		         NULLIF($11, ''), NULLIF($12, ''), $13, $14, NULLIF($15, ''), $16)
		 ON CONFLICT (id) DO UPDATE SET
		     name = EXCLUDED.name, email = EXCLUDED.email, firm_name = EXCLUDED.firm_name,
		     title = EXCLUDED.title, stage_focus = EXCLUDED.stage_focus,
		     sector_preferences = EXCLUDED.sector_preferences,
		     geographic_focus = EXCLUDED.geographic_focus,
		     check_size_range = EXCLUDED.check_size_range,
		     investment_style = EXCLUDED.investment_style,
		     deal_flow_preference = EXCLUDED.deal_flow_preference,
		     due_diligence_style = EXCLUDED.due_diligence_style,
		     value_add_areas = EXCLUDED.value_add_areas,
		     investments_per_year = EXCLUDED.investments_per_year,
		     linkedin_url = EXCLUDED.linkedin_url, accredited = EXCLUDED.accredited,
		     updated_at = NOW()
		 RETURNING `+investorProfileColumns,
		userID, input.Name, input.Email, input.FirmName, input.Title, thesis.StageFocus,
		thesis.SectorPreferences, thesis.GeographicFocus, thesis.CheckSizeRange,
		thesis.InvestmentStyle, thesis.DealFlowPreference, thesis.DueDiligenceStyle,
		thesis.ValueAddAreas, thesis.InvestmentsPerYear, input.LinkedinURL, input.Accredited,
	)

	profile, err := scanInvestorProfile(row)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert investor profile: %w", err)
	}
	return profile, nil
}

// GetInvestorProfile retrieves an investor profile by user ID
func (db *DB) GetInvestorProfile(ctx context.Context, id uuid.UUID) (*types.InvestorProfile, error) {
	row := db.pool.QueryRow(ctx,
		`SELECT `+investorProfileColumns+` FROM investor_profiles WHERE id = $1`, id)

	profile, err := scanInvestorProfile(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get investor profile: %w", err)
	}
	return profile, nil
}
