// Package secondary defines the secondary ports (driven adapters) for the application.
// These are the interfaces through which the application drives external systems.
package secondary

import "context"

// OptionRepository defines the secondary port for categorized option persistence.
type OptionRepository interface {
	// Create persists a new option and returns it with its assigned ID.
	Create(ctx context.Context, category, name string) (*OptionRecord, error)

	// GetByID retrieves an option by its ID.
	GetByID(ctx context.Context, id int64) (*OptionRecord, error)

	// ListByCategory retrieves the options of one category in insertion order.
	ListByCategory(ctx context.Context, category string) ([]*OptionRecord, error)

	// UpdateName replaces an option's name. Fails with errs.ErrNotFound when absent.
	UpdateName(ctx context.Context, id int64, name string) error

	// Delete removes an option. Deleting an absent ID is not an error.
	Delete(ctx context.Context, id int64) error
}

// OptionRecord represents an option as stored in persistence.
type OptionRecord struct {
	ID       int64
	Category string // leader, machine, shift, route
	Name     string
}

// ChecklistItemRepository defines the secondary port for ordered checklist persistence.
type ChecklistItemRepository interface {
	// Create appends a new item after the current maximum order (0 when empty).
	Create(ctx context.Context, title string) (*ChecklistItemRecord, error)

	// GetByID retrieves an item by its ID.
	GetByID(ctx context.Context, id int64) (*ChecklistItemRecord, error)

	// List retrieves all items sorted by (order, id).
	List(ctx context.Context) ([]*ChecklistItemRecord, error)

	// UpdateTitle replaces an item's title. Fails with errs.ErrNotFound when absent.
	UpdateTitle(ctx context.Context, id int64, title string) error

	// Delete removes an item without renumbering the others. Deleting an absent ID is not an error.
	Delete(ctx context.Context, id int64) error

	// Reorder reads all item IDs sorted by (order, id), asks plan for the new sequence and,
	// when plan reports a change, rewrites order = position for every item.
	// The read and the rewrite run in one transaction: either every row is rewritten or none.
	Reorder(ctx context.Context, plan ReorderPlan) (bool, error)
}

// ReorderPlan maps the current ID sequence to a new one.
// Returning false leaves the stored order untouched.
type ReorderPlan func(ids []int64) ([]int64, bool)

// ChecklistItemRecord represents a checklist item as stored in persistence.
type ChecklistItemRecord struct {
	ID    int64
	Title string
	Order int
}

// DraftRepository defines the secondary port for autosaved session fields.
type DraftRepository interface {
	// Upsert writes value under key, replacing any previous value.
	Upsert(ctx context.Context, key, value string) error

	// Get returns the value stored under key and whether the key exists.
	Get(ctx context.Context, key string) (string, bool, error)

	// List returns every entry sorted by key.
	List(ctx context.Context) ([]*DraftRecord, error)

	// DeleteAll removes every entry.
	DeleteAll(ctx context.Context) error
}

// DraftRecord represents a draft entry as stored in persistence.
type DraftRecord struct {
	Key       string
	Value     string
	UpdatedAt string
}

// HistoryRepository defines the secondary port for the append-only report ledger.
// Records are never updated or deleted.
type HistoryRepository interface {
	// Append records a generated artifact.
	Append(ctx context.Context, date, info string) (*HistoryRecord, error)

	// List returns all records by ID ascending.
	List(ctx context.Context) ([]*HistoryRecord, error)

	// Count returns the number of records.
	Count(ctx context.Context) (int, error)
}

// HistoryRecord represents a history entry as stored in persistence.
type HistoryRecord struct {
	ID        int64
	Date      string
	Info      string // artifact reference (path)
	CreatedAt string
}

// SessionReader defines the secondary port for a consistent read of the whole route session.
type SessionReader interface {
	// ReadSession returns every draft and the ordered checklist as one point-in-time view.
	ReadSession(ctx context.Context) (*SessionRecord, error)
}

// SessionRecord is one consistent view of the drafts and the checklist.
type SessionRecord struct {
	Drafts map[string]string
	Items  []*ChecklistItemRecord // sorted by (order, id)
}
