package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/example/rounds/internal/errs"
	"github.com/example/rounds/internal/ports/secondary"
)

// DraftRepository implements secondary.DraftRepository with SQLite.
type DraftRepository struct {
	db *sql.DB
}

// NewDraftRepository creates a new SQLite draft repository.
func NewDraftRepository(db *sql.DB) *DraftRepository {
	return &DraftRepository{db: db}
}

// Upsert writes value under key. The statement autocommits, so it is durable on return.
func (r *DraftRepository) Upsert(ctx context.Context, key, value string) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO drafts (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP`,
		key, value,
	)
	if err != nil {
		return errs.Storage("failed to save draft", err)
	}
	return nil
}

// Get returns the value stored under key and whether it exists.
func (r *DraftRepository) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := r.db.QueryRowContext(ctx, "SELECT value FROM drafts WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, errs.Storage("failed to read draft", err)
	}
	return value, true, nil
}

// List returns every entry sorted by key.
func (r *DraftRepository) List(ctx context.Context) ([]*secondary.DraftRecord, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT key, value, updated_at FROM drafts ORDER BY key ASC")
	if err != nil {
		return nil, errs.Storage("failed to list drafts", err)
	}
	defer rows.Close()

	var drafts []*secondary.DraftRecord
	for rows.Next() {
		var updatedAt sql.NullTime
		record := &secondary.DraftRecord{}
		if err := rows.Scan(&record.Key, &record.Value, &updatedAt); err != nil {
			return nil, errs.Storage("failed to scan draft", err)
		}
		if updatedAt.Valid {
			record.UpdatedAt = updatedAt.Time.Format(time.RFC3339)
		}
		drafts = append(drafts, record)
	}
	if err := rows.Err(); err != nil {
		return nil, errs.Storage("failed to list drafts", err)
	}

	return drafts, nil
}

// DeleteAll removes every entry.
func (r *DraftRepository) DeleteAll(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM drafts"); err != nil {
		return errs.Storage("failed to clear drafts", err)
	}
	return nil
}

// Ensure DraftRepository implements the interface.
var _ secondary.DraftRepository = (*DraftRepository)(nil)
