// Package sqlite contains SQLite implementations of repository interfaces.
package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/example/rounds/internal/errs"
	"github.com/example/rounds/internal/ports/secondary"
)

// OptionRepository implements secondary.OptionRepository with SQLite.
type OptionRepository struct {
	db *sql.DB
}

// NewOptionRepository creates a new SQLite option repository.
func NewOptionRepository(db *sql.DB) *OptionRepository {
	return &OptionRepository{db: db}
}

// Create persists a new option.
func (r *OptionRepository) Create(ctx context.Context, category, name string) (*secondary.OptionRecord, error) {
	result, err := r.db.ExecContext(ctx,
		"INSERT INTO options (category, name) VALUES (?, ?)",
		category, name,
	)
	if err != nil {
		return nil, errs.Storage("failed to create option", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, errs.Storage("failed to read option id", err)
	}

	return &secondary.OptionRecord{ID: id, Category: category, Name: name}, nil
}

// GetByID retrieves an option by its ID.
func (r *OptionRepository) GetByID(ctx context.Context, id int64) (*secondary.OptionRecord, error) {
	record := &secondary.OptionRecord{}
	err := r.db.QueryRowContext(ctx,
		"SELECT id, category, name FROM options WHERE id = ?",
		id,
	).Scan(&record.ID, &record.Category, &record.Name)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, errs.NotFound("option %d", id)
	}
	if err != nil {
		return nil, errs.Storage("failed to get option", err)
	}

	return record, nil
}

// ListByCategory retrieves the options of one category in insertion order.
func (r *OptionRepository) ListByCategory(ctx context.Context, category string) ([]*secondary.OptionRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id, category, name FROM options WHERE category = ? ORDER BY id ASC",
		category,
	)
	if err != nil {
		return nil, errs.Storage("failed to list options", err)
	}
	defer rows.Close()

	var options []*secondary.OptionRecord
	for rows.Next() {
		record := &secondary.OptionRecord{}
		if err := rows.Scan(&record.ID, &record.Category, &record.Name); err != nil {
			return nil, errs.Storage("failed to scan option", err)
		}
		options = append(options, record)
	}
	if err := rows.Err(); err != nil {
		return nil, errs.Storage("failed to list options", err)
	}

	return options, nil
}

// UpdateName replaces an option's name.
func (r *OptionRepository) UpdateName(ctx context.Context, id int64, name string) error {
	result, err := r.db.ExecContext(ctx, "UPDATE options SET name = ? WHERE id = ?", name, id)
	if err != nil {
		return errs.Storage("failed to update option", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return errs.Storage("failed to update option", err)
	}
	if rowsAffected == 0 {
		return errs.NotFound("option %d", id)
	}

	return nil
}

// Delete removes an option. Absent IDs are ignored.
func (r *OptionRepository) Delete(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM options WHERE id = ?", id); err != nil {
		return errs.Storage("failed to delete option", err)
	}
	return nil
}

// Ensure OptionRepository implements the interface.
var _ secondary.OptionRepository = (*OptionRepository)(nil)
