package primary

import (
	"context"

	"github.com/example/rounds/internal/core/snapshot"
)

// SnapshotService defines the primary port for assembling a route session.
type SnapshotService interface {
	// Build composes the current identification, checklist order and observations.
	Build(ctx context.Context) (*snapshot.Snapshot, error)
}

// ReportService defines the primary port for report generation.
type ReportService interface {
	// Generate snapshots the session, renders it and records the artifact in history.
	Generate(ctx context.Context, req GenerateReportRequest) (*GenerateReportResponse, error)
}

// HistoryService defines the primary port for the append-only report ledger.
type HistoryService interface {
	// Record appends an entry for an artifact that exists.
	Record(ctx context.Context, date, artifactRef string) (*HistoryEntry, error)

	// List returns every entry, oldest first.
	List(ctx context.Context) ([]*HistoryEntry, error)
}

// GenerateReportRequest contains parameters for generating a report.
type GenerateReportRequest struct {
	OutputDir string
	Format    string // pdf or xlsx; empty means the configured default
}

// GenerateReportResponse contains the result of generating a report.
type GenerateReportResponse struct {
	Path     string
	Entry    *HistoryEntry
	Snapshot *snapshot.Snapshot
}

// HistoryEntry represents a history record at the port boundary.
type HistoryEntry struct {
	ID        int64
	Date      string
	Info      string
	CreatedAt string
}
