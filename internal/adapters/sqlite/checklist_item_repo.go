package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/example/rounds/internal/errs"
	"github.com/example/rounds/internal/ports/secondary"
)

// ChecklistItemRepository implements secondary.ChecklistItemRepository with SQLite.
type ChecklistItemRepository struct {
	db *sql.DB
}

// NewChecklistItemRepository creates a new SQLite checklist item repository.
func NewChecklistItemRepository(db *sql.DB) *ChecklistItemRepository {
	return &ChecklistItemRepository{db: db}
}

// Create appends a new item at max(order)+1, or 0 when empty.
// The maximum is read inside the INSERT statement itself.
func (r *ChecklistItemRepository) Create(ctx context.Context, title string) (*secondary.ChecklistItemRecord, error) {
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO checklist_items (title, sort_order)
		 SELECT ?, COALESCE(MAX(sort_order) + 1, 0) FROM checklist_items`,
		title,
	)
	if err != nil {
		return nil, errs.Storage("failed to create checklist item", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, errs.Storage("failed to read checklist item id", err)
	}

	return r.GetByID(ctx, id)
}

// GetByID retrieves an item by its ID.
func (r *ChecklistItemRepository) GetByID(ctx context.Context, id int64) (*secondary.ChecklistItemRecord, error) {
	record := &secondary.ChecklistItemRecord{}
	err := r.db.QueryRowContext(ctx,
		"SELECT id, title, sort_order FROM checklist_items WHERE id = ?",
		id,
	).Scan(&record.ID, &record.Title, &record.Order)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, errs.NotFound("checklist item %d", id)
	}
	if err != nil {
		return nil, errs.Storage("failed to get checklist item", err)
	}

	return record, nil
}

// List retrieves all items sorted by (order, id).
func (r *ChecklistItemRepository) List(ctx context.Context) ([]*secondary.ChecklistItemRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id, title, sort_order FROM checklist_items ORDER BY sort_order ASC, id ASC",
	)
	if err != nil {
		return nil, errs.Storage("failed to list checklist items", err)
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
		return nil, errs.Storage("failed to list checklist items", err)
	}

	return items, nil
}

// UpdateTitle replaces an item's title.
func (r *ChecklistItemRepository) UpdateTitle(ctx context.Context, id int64, title string) error {
	result, err := r.db.ExecContext(ctx, "UPDATE checklist_items SET title = ? WHERE id = ?", title, id)
	if err != nil {
		return errs.Storage("failed to update checklist item", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return errs.Storage("failed to update checklist item", err)
	}
	if rowsAffected == 0 {
		return errs.NotFound("checklist item %d", id)
	}

	return nil
}

// Delete removes an item. Survivors keep their order values; absent IDs are ignored.
func (r *ChecklistItemRepository) Delete(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM checklist_items WHERE id = ?", id); err != nil {
		return errs.Storage("failed to delete checklist item", err)
	}
	return nil
}

// Reorder reads the current sequence and rewrites it as planned, in one transaction.
func (r *ChecklistItemRepository) Reorder(ctx context.Context, plan secondary.ReorderPlan) (bool, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return false, errs.Storage("failed to begin reorder", err)
	}
	defer tx.Rollback()

	ids, err := orderedIDs(ctx, tx)
	if err != nil {
		return false, err
	}

	next, changed := plan(ids)
	if !changed {
		return false, nil
	}
	if len(next) != len(ids) {
		return false, fmt.Errorf("reorder plan returned %d ids for %d items", len(next), len(ids))
	}

	stmt, err := tx.PrepareContext(ctx, "UPDATE checklist_items SET sort_order = ? WHERE id = ?")
	if err != nil {
		return false, errs.Storage("failed to prepare reorder", err)
	}
	defer stmt.Close()

	for position, id := range next {
		if _, err := stmt.ExecContext(ctx, position, id); err != nil {
			return false, errs.Storage(fmt.Sprintf("failed to move checklist item %d", id), err)
		}
	}

	if err := tx.Commit(); err != nil {
		return false, errs.Storage("failed to commit reorder", err)
	}
	return true, nil
}

func orderedIDs(ctx context.Context, tx *sql.Tx) ([]int64, error) {
	rows, err := tx.QueryContext(ctx, "SELECT id FROM checklist_items ORDER BY sort_order ASC, id ASC")
	if err != nil {
		return nil, errs.Storage("failed to read checklist order", err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, errs.Storage("failed to scan checklist order", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, errs.Storage("failed to read checklist order", err)
	}
	return ids, nil
}

// Ensure ChecklistItemRepository implements the interface.
var _ secondary.ChecklistItemRepository = (*ChecklistItemRepository)(nil)
