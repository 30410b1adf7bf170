package db

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/venture-match/internal/types"
)

// defaultMeetingDuration is applied when a request omits the duration.
const defaultMeetingDuration = 30

// meetingColumns lists the meeting columns in scan order.
const meetingColumns = `id, investor_id, founder_id, COALESCE(founder_name, ''),
	COALESCE(company_name, ''), meeting_type, scheduled_at, duration, status,
	COALESCE(agenda, ''), COALESCE(notes, ''), COALESCE(meeting_url, ''), requested_at`

// scanMeeting scans one meeting row
func scanMeeting(row pgx.Row) (*types.Meeting, error) {
	var m types.Meeting
	err := row.Scan(&m.ID, &m.InvestorID, &m.FounderID, &m.FounderName, &m.CompanyName,
		&m.MeetingType, &m.ScheduledAt, &m.Duration, &m.Status, &m.Agenda, &m.Notes,
		&m.MeetingURL, &m.RequestedAt)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// CreateMeeting records a meeting request from an investor to a founder
func (db *DB) CreateMeeting(ctx context.Context, investorID uuid.UUID, input *types.MeetingRequestInput) (*types.Meeting, error) {
	duration := input.Duration
	if duration == 0 {
		duration = defaultMeetingDuration
	}

	row := db.pool.QueryRow(ctx,
		`INSERT INTO meetings (investor_id, founder_id, meeting_type, duration, status, agenda, notes)
		 VALUES ($1, $2, $3, $4, 'requested', $5, $6)
		 RETURNING `+meetingColumns,
		investorID, input.FounderID, input.MeetingType, duration, input.Agenda, input.CustomMessage,
	)

	meeting, err := scanMeeting(row)
	if err != nil {
		return nil, fmt.Errorf("failed to create meeting: %w", err)
	}
	return meeting, nil
}

// GetMeeting retrieves a meeting by ID
func (db *DB) GetMeeting(ctx context.Context, id uuid.UUID) (*types.Meeting, error) {
	row := db.pool.QueryRow(ctx,
		`SELECT `+meetingColumns+` FROM meetings WHERE id = $1`, id)

	meeting, err := scanMeeting(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get meeting: %w", err)
	}
	return meeting, nil
}

// ListMeetings retrieves an investor's meetings, newest request first
func (db *DB) ListMeetings(ctx context.Context, investorID uuid.UUID) ([]types.Meeting, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT `+meetingColumns+` FROM meetings
		 WHERE investor_id = $1 ORDER BY requested_at DESC`,
		investorID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list meetings: %w", err)
	}
	defer rows.Close()

	meetings := []types.Meeting{}
	for rows.Next() {
		m, err := scanMeeting(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan meeting: %w", err)
		}
		meetings = append(meetings, *m)
	}
	return meetings, rows.Err()
}

// ScheduleMeeting confirms a requested meeting at the given time
func (db *DB) ScheduleMeeting(ctx context.Context, id uuid.UUID, scheduledAt time.Time, meetingURL string) (*types.Meeting, error) {
	row := db.pool.QueryRow(ctx,
		`UPDATE meetings SET status = 'scheduled', scheduled_at = $2, meeting_url = $3
		 WHERE id = $1
		 RETURNING `+meetingColumns,
		id, scheduledAt, meetingURL,
	)

	meeting, err := scanMeeting(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to schedule meeting: %w", err)
	}
	return meeting, nil
}

// UpdateMeetingStatus changes a meeting's lifecycle status
func (db *DB) UpdateMeetingStatus(ctx context.Context, id uuid.UUID, status types.MeetingStatus) error {
	result, err := db.pool.Exec(ctx,
		`UPDATE meetings SET status = $1 WHERE id = $2`,
		status, id,
	)
	if err != nil {
		return fmt.Errorf("failed to update meeting status: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("meeting not found: %s", id)
	}
	return nil
}
