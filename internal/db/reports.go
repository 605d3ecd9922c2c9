package db

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/career-compass/internal/types"
)

// ReportSummary is a lightweight view of a saved report for listing
type ReportSummary struct {
	ID        uuid.UUID `json:"id"`
	Kind      string    `json:"kind"`
	StreamID  string    `json:"stream_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// ReportFilters holds optional filters for listing reports
type ReportFilters struct {
	Kind     string
	StreamID string
	Limit    int
}

// SaveReport stores an analysis payload for a user and returns the report ID
func (db *DB) SaveReport(ctx context.Context, userID uuid.UUID, kind, streamID string, payload any) (uuid.UUID, error) {
	jsonBytes, err := json.Marshal(payload)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal report payload: %w", err)
	}

	var id uuid.UUID
	err = db.pool.QueryRow(ctx,
		`INSERT INTO reports (user_id, kind, stream_id, payload)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id`,
		userID, kind, streamID, jsonBytes,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save report: %w", err)
	}
	return id, nil
}

// GetReport retrieves a report by ID, scoped to its owner.
// Returns nil when no matching report exists.
func (db *DB) GetReport(ctx context.Context, userID, reportID uuid.UUID) (*types.Report, error) {
	var report types.Report
	var payload []byte
	err := db.pool.QueryRow(ctx,
		`SELECT id, user_id, kind, COALESCE(stream_id, ''), payload, created_at
		 FROM reports WHERE id = $1 AND user_id = $2`,
		reportID, userID,
	).Scan(&report.ID, &report.UserID, &report.Kind, &report.StreamID, &payload, &report.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get report: %w", err)
	}
	report.Payload = payload
	return &report, nil
}

// ListReports retrieves report summaries for a user, newest first
func (db *DB) ListReports(ctx context.Context, userID uuid.UUID, filters ReportFilters) ([]ReportSummary, error) {
	if filters.Limit == 0 {
		filters.Limit = 50
	}

	query := `SELECT id, kind, COALESCE(stream_id, ''), created_at
		FROM reports WHERE user_id = $1`
	args := []any{userID}
	argNum := 2

	if filters.Kind != "" {
		query += fmt.Sprintf(" AND kind = $%d", argNum)
		args = append(args, filters.Kind)
		argNum++
	}
	if filters.StreamID != "" {
		query += fmt.Sprintf(" AND stream_id = $%d", argNum)
		args = append(args, filters.StreamID)
		argNum++
	}

	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d", argNum)
	args = append(args, filters.Limit)

	rows, err := db.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}
	defer rows.Close()

	var reports []ReportSummary
	for rows.Next() {
		var r ReportSummary
		if err := rows.Scan(&r.ID, &r.Kind, &r.StreamID, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan report: %w", err)
		}
		reports = append(reports, r)
	}
	return reports, nil
}

// DeleteReport removes a report, scoped to its owner
func (db *DB) DeleteReport(ctx context.Context, userID, reportID uuid.UUID) error {
	result, err := db.pool.Exec(ctx,
		`DELETE FROM reports WHERE id = $1 AND user_id = $2`,
		reportID, userID,
	)
	if err != nil {
		return fmt.Errorf("failed to delete report: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("report not found: %s", reportID)
	}
	return nil
}
