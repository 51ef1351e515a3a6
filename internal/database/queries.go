package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/zapponejosh/hdate-api/internal/calendar"
)

// querier is satisfied by both *sql.DB and *sql.Tx.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// =============================================================================
// Helper Functions
// =============================================================================

// parseTimestamp parses a timestamp from SQLite TEXT format.
// Returns the zero time if no known format matches.
func parseTimestamp(s string) time.Time {
	layouts := []string{
		time.RFC3339,
		"2006-01-02 15:04:05",
		"2006-01-02T15:04:05.999999",
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

const customDayColumns = `id, name, hebrew_month, hebrew_day, kind, notes, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCustomDay(row rowScanner) (calendar.CustomDay, error) {
	var d calendar.CustomDay
	var notes sql.NullString
	var createdAt, updatedAt string

	if err := row.Scan(&d.ID, &d.Name, &d.Month, &d.Day, &d.Kind, &notes, &createdAt, &updatedAt); err != nil {
		return calendar.CustomDay{}, err
	}

	d.Notes = notes.String
	d.CreatedAt = parseTimestamp(createdAt)
	d.UpdatedAt = parseTimestamp(updatedAt)
	return d, nil
}

// =============================================================================
// Custom Day Queries
// =============================================================================

// CreateCustomDay inserts d and fills in its ID and timestamps.
// Returns ErrInvalid for bad fields and ErrDuplicate if the same observance
// already exists.
func (db *DB) CreateCustomDay(ctx context.Context, d *calendar.CustomDay) error {
	return createCustomDay(ctx, db.DB, d)
}

// CreateCustomDay inserts d within the transaction.
func (tx *Tx) CreateCustomDay(ctx context.Context, d *calendar.CustomDay) error {
	return createCustomDay(ctx, tx.Tx, d)
}

func createCustomDay(ctx context.Context, q querier, d *calendar.CustomDay) error {
	if err := ValidateCustomDay(*d); err != nil {
		return err
	}

	var notes sql.NullString
	if d.Notes != "" {
		notes = sql.NullString{String: d.Notes, Valid: true}
	}

	result, err := q.ExecContext(ctx, `
		INSERT INTO custom_days (name, hebrew_month, hebrew_day, kind, notes)
		VALUES (?, ?, ?, ?, ?)
	`, d.Name, d.Month, d.Day, d.Kind, notes)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicate
		}
		return fmt.Errorf("insert custom day: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("get custom day id: %w", err)
	}

	created, err := getCustomDay(ctx, q, id)
	if err != nil {
		return err
	}
	*d = *created
	return nil
}

// GetCustomDay returns a custom day by ID.
// Returns ErrNotFound if it doesn't exist.
func (db *DB) GetCustomDay(ctx context.Context, id int64) (*calendar.CustomDay, error) {
	return getCustomDay(ctx, db.DB, id)
}

func getCustomDay(ctx context.Context, q querier, id int64) (*calendar.CustomDay, error) {
	row := q.QueryRowContext(ctx, `SELECT `+customDayColumns+` FROM custom_days WHERE id = ?`, id)

	d, err := scanCustomDay(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("query custom day %d: %w", id, err)
	}
	return &d, nil
}

// ListCustomDays returns every custom day ordered by Hebrew date.
func (db *DB) ListCustomDays(ctx context.Context) ([]calendar.CustomDay, error) {
	return db.listCustomDays(ctx, `SELECT `+customDayColumns+` FROM custom_days
		ORDER BY hebrew_month, hebrew_day, id`)
}

// ListCustomDaysByMonth returns the custom days stored under month.
func (db *DB) ListCustomDaysByMonth(ctx context.Context, month int) ([]calendar.CustomDay, error) {
	return db.listCustomDays(ctx, `SELECT `+customDayColumns+` FROM custom_days
		WHERE hebrew_month = ?
		ORDER BY hebrew_day, id`, month)
}

func (db *DB) listCustomDays(ctx context.Context, query string, args ...any) ([]calendar.CustomDay, error) {
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query custom days: %w", err)
	}
	defer rows.Close()

	days := []calendar.CustomDay{}
	for rows.Next() {
		d, err := scanCustomDay(rows)
		if err != nil {
			return nil, fmt.Errorf("scan custom day: %w", err)
		}
		days = append(days, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate custom days: %w", err)
	}

	return days, nil
}

// DeleteCustomDay removes a custom day.
// Returns ErrNotFound if it doesn't exist.
func (db *DB) DeleteCustomDay(ctx context.Context, id int64) error {
	result, err := db.ExecContext(ctx, `DELETE FROM custom_days WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete custom day %d: %w", id, err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete custom day %d: %w", id, err)
	}
	if n == 0 {
		return ErrNotFound
	}

	db.logger.Debug("custom day deleted", "id", id)
	return nil
}

// ImportResult reports the outcome of ImportCustomDays.
type ImportResult struct {
	Inserted int
	Skipped  int // already present
}

// ImportCustomDays inserts days in a single transaction. Days that already
// exist are skipped; any other error rolls back the whole import.
// onEach, if not nil, is called after each day is processed.
func (db *DB) ImportCustomDays(ctx context.Context, days []calendar.CustomDay, onEach func()) (ImportResult, error) {
	var res ImportResult

	err := db.WithTx(ctx, func(tx *Tx) error {
		for i := range days {
			err := tx.CreateCustomDay(ctx, &days[i])
			switch {
			case err == nil:
				res.Inserted++
			case errors.Is(err, ErrDuplicate):
				res.Skipped++
			default:
				return fmt.Errorf("custom day %d (%q): %w", i, days[i].Name, err)
			}
			if onEach != nil {
				onEach()
			}
		}
		return nil
	})
	if err != nil {
		return ImportResult{}, err
	}

	db.logger.Info("custom days imported",
		"inserted", res.Inserted,
		"skipped", res.Skipped,
	)
	return res, nil
}
