package sqlite

import (
	"context"
	"database/sql"

	"github.com/example/rounds/internal/errs"
	"github.com/example/rounds/internal/ports/secondary"
)

// SessionRepository implements secondary.SessionReader with SQLite.
type SessionRepository struct {
	db *sql.DB
}

// NewSessionRepository creates a new SQLite session reader.
func NewSessionRepository(db *sql.DB) *SessionRepository {
	return &SessionRepository{db: db}
}

// ReadSession reads drafts and checklist items inside one transaction, so a write from another
// process cannot land between the two reads.
func (r *SessionRepository) ReadSession(ctx context.Context) (*secondary.SessionRecord, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, errs.Storage("failed to begin session read", err)
	}
	defer tx.Rollback()

	drafts, err := readDrafts(ctx, tx)
	if err != nil {
		return nil, err
	}
	items, err := readChecklist(ctx, tx)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, errs.Storage("failed to finish session read", err)
	}
	return &secondary.SessionRecord{Drafts: drafts, Items: items}, nil
}

func readDrafts(ctx context.Context, tx *sql.Tx) (map[string]string, error) {
	rows, err := tx.QueryContext(ctx, "SELECT key, value FROM drafts")
	if err != nil {
		return nil, errs.Storage("failed to read drafts", err)
	}
	defer rows.Close()

	drafts := make(map[string]string)
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, errs.Storage("failed to scan draft", err)
		}
		drafts[key] = value
	}
	if err := rows.Err(); err != nil {
		return nil, errs.Storage("failed to read drafts", err)
	}
	return drafts, nil
}

func readChecklist(ctx context.Context, tx *sql.Tx) ([]*secondary.ChecklistItemRecord, error) {
	rows, err := tx.QueryContext(ctx,
		"SELECT id, title, sort_order FROM checklist_items ORDER BY sort_order ASC, id ASC",
	)
	if err != nil {
		return nil, errs.Storage("failed to read checklist", err)
	}
	defer rows.Close()

	var items []*secondary.ChecklistItemRecord
	for rows.Next() {
		record := &secondary.ChecklistItemRecord{}
		if err := rows.Scan(&record.ID, &record.Title, &record.Order); err != nil {
			return nil, errs.Storage("failed to scan checklist item", err)
		}
		items = append(items, record)
	}
	if err := rows.Err(); err != nil {
		return nil, errs.Storage("failed to read checklist", err)
	}
	return items, nil
}

// Ensure SessionRepository implements the interface.
var _ secondary.SessionReader = (*SessionRepository)(nil)
