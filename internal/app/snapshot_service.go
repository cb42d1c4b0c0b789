package app

import (
	"context"
	"fmt"
	"time"

	"github.com/example/rounds/internal/core/snapshot"
	"github.com/example/rounds/internal/ports/primary"
	"github.com/example/rounds/internal/ports/secondary"
)

// SnapshotServiceImpl implements the SnapshotService interface.
// It only reads: drafts and the checklist are never modified.
type SnapshotServiceImpl struct {
	sessions secondary.SessionReader
	captures primary.CaptureService
	now      func() time.Time
}

// NewSnapshotService creates a new SnapshotService with injected dependencies.
// captures may be nil when no capture collaborator is attached.
func NewSnapshotService(sessions secondary.SessionReader, captures primary.CaptureService) *SnapshotServiceImpl {
	return &SnapshotServiceImpl{
		sessions: sessions,
		captures: captures,
		now:      time.Now,
	}
}

// Build composes the current session from a single consistent read.
func (s *SnapshotServiceImpl) Build(ctx context.Context) (*snapshot.Snapshot, error) {
	session, err := s.sessions.ReadSession(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read session: %w", err)
	}
	drafts := session.Drafts

	ident := snapshot.Identification{
		Leader:  drafts[snapshot.KeyLeader],
		Machine: drafts[snapshot.KeyMachine],
		Shift:   drafts[snapshot.KeyShift],
		Route:   drafts[snapshot.KeyRoute],
	}

	items := make([]snapshot.Item, 0, len(session.Items))
	for _, r := range session.Items {
		text, recorded := drafts[snapshot.ObservationKey(r.Title)]
		item := snapshot.Item{
			Title:       r.Title,
			Observation: snapshot.Observation{Text: text, Recorded: recorded},
		}
		if s.captures != nil {
			item.PhotoPath, _ = s.captures.Photo(r.Title)
		}
		items = append(items, item)
	}

	return snapshot.Build(drafts[snapshot.KeyDate], ident, items, s.now()), nil
}

// Ensure SnapshotServiceImpl implements the interface
var _ primary.SnapshotService = (*SnapshotServiceImpl)(nil)
