package secondary

import (
	"context"

	"github.com/example/rounds/internal/core/snapshot"
)

// ReportRenderer turns a session snapshot into a document at dest.
// It returns the final path of the written artifact.
type ReportRenderer interface {
	// Format returns the file extension this renderer produces (e.g. "pdf").
	Format() string

	// Render writes the document. A failure must leave no claim that the artifact exists.
	// An existing file at dest is never replaced; that case fails with an error matching fs.ErrExist.
	Render(ctx context.Context, snap *snapshot.Snapshot, dest string) (string, error)
}
