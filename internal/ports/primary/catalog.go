// Package primary defines the primary ports (driving adapters) for the application.
package primary

import "context"

// CatalogService defines the primary port for admin-maintained reference data.
type CatalogService interface {
	// ListOptions retrieves the options of a category in insertion order.
	ListOptions(ctx context.Context, category string) ([]*Option, error)

	// AddOption creates a new option.
	AddOption(ctx context.Context, req AddOptionRequest) (*Option, error)

	// UpdateOption replaces an option's name.
	UpdateOption(ctx context.Context, id int64, name string) error

	// DeleteOption removes an option. Deleting an absent option is a no-op.
	DeleteOption(ctx context.Context, id int64) error

	// ListChecklistItems retrieves checklist items in display order.
	ListChecklistItems(ctx context.Context) ([]*ChecklistItem, error)

	// AddChecklistItem appends a new item at the end of the checklist.
	AddChecklistItem(ctx context.Context, title string) (*ChecklistItem, error)

	// UpdateChecklistItemTitle replaces an item's title.
	UpdateChecklistItemTitle(ctx context.Context, id int64, title string) error

	// DeleteChecklistItem removes an item. Remaining items keep their order values.
	DeleteChecklistItem(ctx context.Context, id int64) error
}

// AddOptionRequest contains parameters for adding an option.
type AddOptionRequest struct {
	Category string // leader, machine, shift, route (or lider, maquina, turma, rota)
	Name     string
}

// Option represents a categorized option at the port boundary.
type Option struct {
	ID       int64
	Category string
	Name     string
}

// ChecklistItem represents a checklist item at the port boundary.
type ChecklistItem struct {
	ID    int64
	Title string
	Order int
}
