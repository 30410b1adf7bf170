package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/venture-match/internal/types"
)

// CreateSavedSearch stores search criteria for later reuse
func (db *DB) CreateSavedSearch(ctx context.Context, founderID uuid.UUID, input *types.SavedSearchInput) (*types.SavedSearch, error) {
	criteriaJSON, err := json.Marshal(input.SearchCriteria)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal search criteria: %w", err)
	}

	var s types.SavedSearch
	var storedCriteria []byte
	err = db.pool.QueryRow(ctx,
		`INSERT INTO saved_searches (founder_id, name, search_criteria)
		 VALUES ($1, $2, $3)
		 RETURNING id, founder_id, name, search_criteria, created_at, last_used`,
		founderID, input.Name, criteriaJSON,
	).Scan(&s.ID, &s.FounderID, &s.Name, &storedCriteria, &s.CreatedAt, &s.LastUsed)
	if err != nil {
		return nil, fmt.Errorf("failed to create saved search: %w", err)
	}

	if err := json.Unmarshal(storedCriteria, &s.SearchCriteria); err != nil {
		return nil, fmt.Errorf("failed to parse search criteria: %w", err)
	}
	return &s, nil
}

// GetSavedSearch retrieves a saved search by ID
func (db *DB) GetSavedSearch(ctx context.Context, id uuid.UUID) (*types.SavedSearch, error) {
	var s types.SavedSearch
	var criteriaJSON []byte

	err := db.pool.QueryRow(ctx,
		`SELECT id, founder_id, name, search_criteria, created_at, last_used
		 FROM saved_searches WHERE id = $1`,
		id,
	).Scan(&s.ID, &s.FounderID, &s.Name, &criteriaJSON, &s.CreatedAt, &s.LastUsed)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get saved search: %w", err)
	}

	if err := json.Unmarshal(criteriaJSON, &s.SearchCriteria); err != nil {
		return nil, fmt.Errorf("failed to parse search criteria: %w", err)
	}
	return &s, nil
}

// ListSavedSearches retrieves a founder's saved searches, newest first
func (db *DB) ListSavedSearches(ctx context.Context, founderID uuid.UUID) ([]types.SavedSearch, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, founder_id, name, search_criteria, created_at, last_used
		 FROM saved_searches WHERE founder_id = $1 ORDER BY created_at DESC`,
		founderID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list saved searches: %w", err)
	}
	defer rows.Close()

	searches := []types.SavedSearch{}
	for rows.Next() {
		var s types.SavedSearch
		var criteriaJSON []byte
		if err := rows.Scan(&s.ID, &s.FounderID, &s.Name, &criteriaJSON, &s.CreatedAt, &s.LastUsed); err != nil {
			return nil, fmt.Errorf("failed to scan saved search: %w", err)
		}
		if err := json.Unmarshal(criteriaJSON, &s.SearchCriteria); err != nil {
			return nil, fmt.Errorf("failed to parse search criteria: %w", err)
		}
		searches = append(searches, s)
	}
	return searches, rows.Err()
}

// TouchSavedSearch records that a saved search was just executed
func (db *DB) TouchSavedSearch(ctx context.Context, id uuid.UUID) error {
	_, err := db.pool.Exec(ctx,
		`UPDATE saved_searches SET last_used = NOW() WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to touch saved search: %w", err)
	}
	return nil
}

// DeleteSavedSearch removes a saved search
func (db *DB) DeleteSavedSearch(ctx context.Context, id uuid.UUID) error {
	result, err := db.pool.Exec(ctx, `DELETE FROM saved_searches WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete saved search: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("saved search not found: %s", id)
	}
	return nil
}
