package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/example/rounds/internal/errs"
	"github.com/example/rounds/internal/ports/secondary"
)

// HistoryRepository implements secondary.HistoryRepository with SQLite.
type HistoryRepository struct {
	db *sql.DB
}

// NewHistoryRepository creates a new SQLite history repository.
func NewHistoryRepository(db *sql.DB) *HistoryRepository {
	return &HistoryRepository{db: db}
}

// Append records a generated artifact.
func (r *HistoryRepository) Append(ctx context.Context, date, info string) (*secondary.HistoryRecord, error) {
	result, err := r.db.ExecContext(ctx,
		"INSERT INTO history (date, info) VALUES (?, ?)",
		date, info,
	)
	if err != nil {
		return nil, errs.Storage("failed to append history", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, errs.Storage("failed to read history id", err)
	}

	var createdAt sql.NullTime
	record := &secondary.HistoryRecord{}
	err = r.db.QueryRowContext(ctx,
		"SELECT id, date, info, created_at FROM history WHERE id = ?",
		id,
	).Scan(&record.ID, &record.Date, &record.Info, &createdAt)
	if err != nil {
		return nil, errs.Storage("failed to fetch history record", err)
	}
	if createdAt.Valid {
		record.CreatedAt = createdAt.Time.Format(time.RFC3339)
	}

	return record, nil
}

// List returns all records by ID ascending.
func (r *HistoryRepository) List(ctx context.Context) ([]*secondary.HistoryRecord, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT id, date, info, created_at FROM history ORDER BY id ASC")
	if err != nil {
		return nil, errs.Storage("failed to list history", err)
	}
	defer rows.Close()

	var records []*secondary.HistoryRecord
	for rows.Next() {
		var createdAt sql.NullTime
		record := &secondary.HistoryRecord{}
		if err := rows.Scan(&record.ID, &record.Date, &record.Info, &createdAt); err != nil {
			return nil, errs.Storage("failed to scan history", err)
		}
		if createdAt.Valid {
			record.CreatedAt = createdAt.Time.Format(time.RFC3339)
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, errs.Storage("failed to list history", err)
	}

	return records, nil
}

// Count returns the number of records.
func (r *HistoryRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM history").Scan(&n); err != nil {
		return 0, errs.Storage("failed to count history", err)
	}
	return n, nil
}

// Ensure HistoryRepository implements the interface.
var _ secondary.HistoryRepository = (*HistoryRepository)(nil)
