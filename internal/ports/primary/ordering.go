package primary

import "context"

// OrderingService defines the primary port for drag reordering of checklist items.
type OrderingService interface {
	// Move places the source item next to the target item.
	Move(ctx context.Context, req ReorderRequest) (*ReorderResponse, error)

	// MoveGesture is Move for raw UI input. Non-integer IDs make the gesture a no-op.
	MoveGesture(ctx context.Context, source, target string) (*ReorderResponse, error)
}

// ReorderRequest is a drag gesture: move SourceID next to TargetID.
type ReorderRequest struct {
	SourceID int64
	TargetID int64
}

// ReorderResponse contains the result of a reorder.
type ReorderResponse struct {
	Moved bool
	Items []*ChecklistItem
}
