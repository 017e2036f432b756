package storage

import (
	"database/sql"
	"fmt"
	"time"
)

// Activation records a single hot corner trigger attempt
type Activation struct {
	ID           int64
	Timestamp    time.Time
	CursorX      int32
	CursorY      int32
	Success      bool
	ErrorMessage string
}

// DailyStats represents activation counts for a single day
type DailyStats struct {
	Date             string
	TotalActivations int
	SuccessCount     int
	FailureCount     int
}

// SaveActivation saves an activation to the database
func (db *DB) SaveActivation(a *Activation) error {
	query := `
		INSERT INTO activations (cursor_x, cursor_y, success, error_message)
		VALUES (?, ?, ?, ?)
	`

	result, err := db.conn.Exec(query, a.CursorX, a.CursorY, a.Success, a.ErrorMessage)
	if err != nil {
		return fmt.Errorf("failed to save activation: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert ID: %w", err)
	}

	a.ID = id
	return nil
}

// GetActivations retrieves activations with pagination, newest first
func (db *DB) GetActivations(limit, offset int) ([]Activation, error) {
	query := `
		SELECT id, timestamp, cursor_x, cursor_y, success, error_message
		FROM activations
		ORDER BY timestamp DESC, id DESC
		LIMIT ? OFFSET ?
	`

	rows, err := db.conn.Query(query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query activations: %w", err)
	}
	defer rows.Close()

	var activations []Activation
	for rows.Next() {
		var a Activation
		var errorMessage sql.NullString

		err := rows.Scan(&a.ID, &a.Timestamp, &a.CursorX, &a.CursorY, &a.Success, &errorMessage)
		if err != nil {
			return nil, fmt.Errorf("failed to scan activation: %w", err)
		}

		if errorMessage.Valid {
			a.ErrorMessage = errorMessage.String
		}

		activations = append(activations, a)
	}

	return activations, rows.Err()
}

// GetActivationCount returns the total number of recorded activations
func (db *DB) GetActivationCount() (int, error) {
	var count int
	err := db.conn.QueryRow("SELECT COUNT(*) FROM activations").Scan(&count)
	return count, err
}

// GetDailyStats retrieves activation counts grouped by date for the last N days
func (db *DB) GetDailyStats(days int) ([]DailyStats, error) {
	query := `
		SELECT
			DATE(timestamp) as date,
			COUNT(*) as total_activations,
			SUM(CASE WHEN success = 1 THEN 1 ELSE 0 END) as success_count,
			SUM(CASE WHEN success = 0 THEN 1 ELSE 0 END) as failure_count
		FROM activations
		WHERE timestamp >= datetime('now', '-' || ? || ' days')
		GROUP BY DATE(timestamp)
		ORDER BY date DESC
	`

	rows, err := db.conn.Query(query, days)
	if err != nil {
		return nil, fmt.Errorf("failed to query daily stats: %w", err)
	}
	defer rows.Close()

	var stats []DailyStats
	for rows.Next() {
		var s DailyStats
		err := rows.Scan(&s.Date, &s.TotalActivations, &s.SuccessCount, &s.FailureCount)
		if err != nil {
			return nil, fmt.Errorf("failed to scan daily stats: %w", err)
		}
		stats = append(stats, s)
	}

	return stats, rows.Err()
}
