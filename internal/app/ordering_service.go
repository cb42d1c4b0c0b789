package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/example/rounds/internal/core/ordering"
	"github.com/example/rounds/internal/ports/primary"
	"github.com/example/rounds/internal/ports/secondary"
)

// OrderingServiceImpl implements the OrderingService interface.
// Concurrent reorders of the same checklist must be serialized by the caller.
type OrderingServiceImpl struct {
	itemRepo secondary.ChecklistItemRepository
	logger   *slog.Logger
}

// NewOrderingService creates a new OrderingService with injected dependencies.
func NewOrderingService(itemRepo secondary.ChecklistItemRepository, logger *slog.Logger) *OrderingServiceImpl {
	return &OrderingServiceImpl{
		itemRepo: itemRepo,
		logger:   logger,
	}
}

// Move places the source item next to the target item.
func (s *OrderingServiceImpl) Move(ctx context.Context, req primary.ReorderRequest) (*primary.ReorderResponse, error) {
	gesture := ordering.Gesture{Source: req.SourceID, Target: req.TargetID}

	moved, err := s.itemRepo.Reorder(ctx, ordering.Plan(gesture))
	if err != nil {
		return nil, fmt.Errorf("failed to reorder checklist: %w", err)
	}
	if moved {
		s.logger.Debug("checklist reordered", "source", req.SourceID, "target", req.TargetID)
	}

	return s.response(ctx, moved)
}

// MoveGesture is Move for raw input; malformed IDs leave the checklist untouched.
func (s *OrderingServiceImpl) MoveGesture(ctx context.Context, source, target string) (*primary.ReorderResponse, error) {
	gesture, ok := ordering.ParseGesture(source, target)
	if !ok {
		s.logger.Debug("ignoring malformed reorder gesture", "source", source, "target", target)
		return s.response(ctx, false)
	}
	return s.Move(ctx, primary.ReorderRequest{SourceID: gesture.Source, TargetID: gesture.Target})
}

func (s *OrderingServiceImpl) response(ctx context.Context, moved bool) (*primary.ReorderResponse, error) {
	records, err := s.itemRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list checklist items: %w", err)
	}
	return &primary.ReorderResponse{
		Moved: moved,
		Items: recordsToItems(records),
	}, nil
}

// Ensure OrderingServiceImpl implements the interface
var _ primary.OrderingService = (*OrderingServiceImpl)(nil)
