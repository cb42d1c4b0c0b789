package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/example/rounds/internal/errs"
	"github.com/example/rounds/internal/ports/primary"
	"github.com/example/rounds/internal/ports/secondary"
)

// HistoryServiceImpl implements the HistoryService interface.
type HistoryServiceImpl struct {
	historyRepo secondary.HistoryRepository
}

// NewHistoryService creates a new HistoryService with injected dependencies.
func NewHistoryService(historyRepo secondary.HistoryRepository) *HistoryServiceImpl {
	return &HistoryServiceImpl{
		historyRepo: historyRepo,
	}
}

// Record appends an entry. Callers must only pass artifacts that already exist.
func (s *HistoryServiceImpl) Record(ctx context.Context, date, artifactRef string) (*primary.HistoryEntry, error) {
	if strings.TrimSpace(artifactRef) == "" {
		return nil, errs.Validation("history entry needs an artifact reference")
	}

	record, err := s.historyRepo.Append(ctx, date, artifactRef)
	if err != nil {
		return nil, fmt.Errorf("failed to record history: %w", err)
	}
	return recordToHistoryEntry(record), nil
}

// List returns every entry, oldest first.
func (s *HistoryServiceImpl) List(ctx context.Context) ([]*primary.HistoryEntry, error) {
	records, err := s.historyRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list history: %w", err)
	}

	entries := make([]*primary.HistoryEntry, len(records))
	for i, r := range records {
		entries[i] = recordToHistoryEntry(r)
	}
	return entries, nil
}

func recordToHistoryEntry(r *secondary.HistoryRecord) *primary.HistoryEntry {
	return &primary.HistoryEntry{
		ID:        r.ID,
		Date:      r.Date,
		Info:      r.Info,
		CreatedAt: r.CreatedAt,
	}
}

// Ensure HistoryServiceImpl implements the interface
var _ primary.HistoryService = (*HistoryServiceImpl)(nil)
