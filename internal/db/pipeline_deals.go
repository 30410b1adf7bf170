package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/venture-match/internal/types"
)

// dealColumns lists the pipeline deal columns in scan order.
const dealColumns = `id, investor_id, founder_id, COALESCE(founder_name, ''),
	COALESCE(company_name, ''), stage, status, COALESCE(next_action, ''),
	next_action_due, match_score, key_metrics, risk_flags, opportunities, notes,
	added_at, updated_at`

// scanDeal scans one pipeline deal row
func scanDeal(row pgx.Row) (*types.PipelineDeal, error) {
	var d types.PipelineDeal
	var metricsJSON []byte

	err := row.Scan(&d.ID, &d.InvestorID, &d.FounderID, &d.FounderName, &d.CompanyName,
		&d.Stage, &d.Status, &d.NextAction, &d.NextActionDue, &d.MatchScore,
		&metricsJSON, &d.RiskFlags, &d.Opportunities, &d.Notes, &d.AddedAt, &d.UpdatedAt)
	if err != nil {
		return nil, err
	}

	if metricsJSON != nil {
		_ = json.Unmarshal(metricsJSON, &d.KeyMetrics)
	}
	return &d, nil
}

// CreateDeal adds a founder to an investor's pipeline. New deals start in the
// given stage (default "sourced") with active status.
func (db *DB) CreateDeal(ctx context.Context, investorID uuid.UUID, input *types.PipelineDealInput) (*types.PipelineDeal, error) {
	stage := input.InitialStage
	if stage == "" {
		stage = "sourced"
	}

	row := db.pool.QueryRow(ctx,
		`INSERT INTO pipeline_deals (investor_id, founder_id, founder_name, company_name, stage, status)
		 VALUES ($1, $2, $3, $4, $5, 'active')
		 RETURNING `+dealColumns,
		investorID, input.FounderID, input.FounderName, input.CompanyName, stage,
	)

	deal, err := scanDeal(row)
	if err != nil {
		return nil, fmt.Errorf("failed to create deal: %w", err)
	}
	return deal, nil
}

// GetDeal retrieves a pipeline deal by ID
func (db *DB) GetDeal(ctx context.Context, id uuid.UUID) (*types.PipelineDeal, error) {
	row := db.pool.QueryRow(ctx,
		`SELECT `+dealColumns+` FROM pipeline_deals WHERE id = $1`, id)

	deal, err := scanDeal(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get deal: %w", err)
	}
	return deal, nil
}

// DealFilters holds optional filters for listing deals
type DealFilters struct {
	Stage  string
	Status types.DealStatus
}

// ListDeals retrieves one page of an investor's pipeline plus the total count
func (db *DB) ListDeals(ctx context.Context, investorID uuid.UUID, filters DealFilters, page, limit int) ([]types.PipelineDeal, int, error) {
	where := ` WHERE investor_id = $1`
	args := []any{investorID}
	argNum := 2

	if filters.Stage != "" {
		where += fmt.Sprintf(" AND stage = $%d", argNum)
		args = append(args, filters.Stage)
		argNum++
	}
	if filters.Status != "" {
		where += fmt.Sprintf(" AND status = $%d", argNum)
		args = append(args, filters.Status)
		argNum++
	}

	var total int
	if err := db.pool.QueryRow(ctx, `SELECT COUNT(*) FROM pipeline_deals`+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count deals: %w", err)
	}

	query := `SELECT ` + dealColumns + ` FROM pipeline_deals` + where +
		fmt.Sprintf(" ORDER BY added_at DESC LIMIT $%d OFFSET $%d", argNum, argNum+1)
	args = append(args, limit, (page-1)*limit)

	rows, err := db.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list deals: %w", err)
	}
	defer rows.Close()

	deals := []types.PipelineDeal{}
	for rows.Next() {
		d, err := scanDeal(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan deal: %w", err)
		}
		deals = append(deals, *d)
	}
	return deals, total, rows.Err()
}

// UpdateDeal applies a partial update to a deal. Nil fields are left
// unchanged.
func (db *DB) UpdateDeal(ctx context.Context, id uuid.UUID, update *types.PipelineDealUpdate) (*types.PipelineDeal, error) {
	query := `UPDATE pipeline_deals SET updated_at = NOW()`
	args := []any{id}
	argNum := 2

	set := func(column string, value any) {
		query += fmt.Sprintf(", %s = $%d", column, argNum)
		args = append(args, value)
		argNum++
	}

	if update.Stage != nil {
		set("stage", *update.Stage)
	}
	if update.Status != nil {
		set("status", *update.Status)
	}
	if update.NextAction != nil {
		set("next_action", *update.NextAction)
	}
	if update.NextActionDue != nil {
		set("next_action_due", *update.NextActionDue)
	}
	if update.MatchScore != nil {
		set("match_score", *update.MatchScore)
	}
	if update.KeyMetrics != nil {
		metricsJSON, err := json.Marshal(update.KeyMetrics)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal key metrics: %w", err)
		}
		set("key_metrics", metricsJSON)
	}
	if update.RiskFlags != nil {
		set("risk_flags", update.RiskFlags)
	}
	if update.Opportunities != nil {
		set("opportunities", update.Opportunities)
	}
	if update.Notes != nil {
		set("notes", update.Notes)
	}

	query += ` WHERE id = $1 RETURNING ` + dealColumns

	deal, err := scanDeal(db.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update deal: %w", err)
	}
	return deal, nil
}

// DeleteDeal removes a deal from the pipeline
func (db *DB) DeleteDeal(ctx context.Context, id uuid.UUID) error {
	result, err := db.pool.Exec(ctx, `DELETE FROM pipeline_deals WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete deal: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("deal not found: %s", id)
	}
	return nil
}
