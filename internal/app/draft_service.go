package app

import (
	"context"
	"log/slog"

	"github.com/example/rounds/internal/ports/primary"
	"github.com/example/rounds/internal/ports/secondary"
)

// DraftServiceImpl implements the DraftService interface.
// Autosave must never interrupt a session, so storage errors are logged and dropped here.
type DraftServiceImpl struct {
	draftRepo secondary.DraftRepository
	logger    *slog.Logger
}

// NewDraftService creates a new DraftService with injected dependencies.
func NewDraftService(draftRepo secondary.DraftRepository, logger *slog.Logger) *DraftServiceImpl {
	return &DraftServiceImpl{
		draftRepo: draftRepo,
		logger:    logger,
	}
}

// Set writes value under key.
func (s *DraftServiceImpl) Set(ctx context.Context, key, value string) {
	if err := s.draftRepo.Upsert(ctx, key, value); err != nil {
		s.logger.Warn("draft write dropped", "key", key, "error", err)
	}
}

// Get returns the value under key, or "" when absent or unreadable.
func (s *DraftServiceImpl) Get(ctx context.Context, key string) string {
	value, _ := s.Lookup(ctx, key)
	return value
}

// Lookup returns the value under key and whether it exists.
func (s *DraftServiceImpl) Lookup(ctx context.Context, key string) (string, bool) {
	value, found, err := s.draftRepo.Get(ctx, key)
	if err != nil {
		s.logger.Warn("draft read failed", "key", key, "error", err)
		return "", false
	}
	return value, found
}

// All returns every entry sorted by key.
func (s *DraftServiceImpl) All(ctx context.Context) []*primary.Draft {
	records, err := s.draftRepo.List(ctx)
	if err != nil {
		s.logger.Warn("draft list failed", "error", err)
		return nil
	}

	drafts := make([]*primary.Draft, len(records))
	for i, r := range records {
		drafts[i] = &primary.Draft{
			Key:       r.Key,
			Value:     r.Value,
			UpdatedAt: r.UpdatedAt,
		}
	}
	return drafts
}

// ClearAll discards every entry.
func (s *DraftServiceImpl) ClearAll(ctx context.Context) {
	if err := s.draftRepo.DeleteAll(ctx); err != nil {
		s.logger.Warn("draft clear failed", "error", err)
	}
}

// Ensure DraftServiceImpl implements the interface
var _ primary.DraftService = (*DraftServiceImpl)(nil)
