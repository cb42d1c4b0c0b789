// Package app contains the application services that orchestrate the route session and its report.
package app

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/example/rounds/internal/core/snapshot"
	"github.com/example/rounds/internal/errs"
	"github.com/example/rounds/internal/ports/primary"
	"github.com/example/rounds/internal/ports/secondary"
)

// maxReportsPerName bounds the numbered names tried for one date, shift and leader.
const maxReportsPerName = 1000

// ReportDefaults holds the values used when a request leaves them empty.
type ReportDefaults struct {
	Format    string
	OutputDir string
}

// ReportServiceImpl implements the ReportService interface.
type ReportServiceImpl struct {
	snapshots primary.SnapshotService
	history   primary.HistoryService
	artifacts secondary.ArtifactStore
	renderers map[string]secondary.ReportRenderer
	defaults  ReportDefaults
	logger    *slog.Logger
}

// NewReportService creates a new ReportService with injected dependencies.
// Renderers are keyed by the format they produce.
func NewReportService(
	snapshots primary.SnapshotService,
	history primary.HistoryService,
	artifacts secondary.ArtifactStore,
	renderers []secondary.ReportRenderer,
	defaults ReportDefaults,
	logger *slog.Logger,
) *ReportServiceImpl {
	byFormat := make(map[string]secondary.ReportRenderer, len(renderers))
	for _, r := range renderers {
		byFormat[r.Format()] = r
	}
	return &ReportServiceImpl{
		snapshots: snapshots,
		history:   history,
		artifacts: artifacts,
		renderers: byFormat,
		defaults:  defaults,
		logger:    logger,
	}
}

// Generate snapshots the session, renders it and records the artifact.
// History is written only once the artifact is confirmed on disk.
func (s *ReportServiceImpl) Generate(ctx context.Context, req primary.GenerateReportRequest) (*primary.GenerateReportResponse, error) {
	format := strings.ToLower(strings.TrimSpace(req.Format))
	if format == "" {
		format = s.defaults.Format
	}
	renderer, ok := s.renderers[format]
	if !ok {
		return nil, errs.Validation("unsupported report format %q", format)
	}

	dir := req.OutputDir
	if dir == "" {
		dir = s.defaults.OutputDir
	}

	snap, err := s.snapshots.Build(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to build snapshot: %w", err)
	}

	if err := s.artifacts.EnsureDir(ctx, dir); err != nil {
		return nil, describeWriteError(dir, err)
	}

	path, err := s.render(ctx, renderer, snap, dir)
	if err != nil {
		return nil, err
	}

	exists, err := s.artifacts.Exists(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("failed to verify report %s: %w", path, err)
	}
	if !exists {
		return nil, fmt.Errorf("report %s was not written", path)
	}

	entry, err := s.history.Record(ctx, snap.Date, path)
	if err != nil {
		return nil, err
	}

	s.logger.Info("report generated", "path", path, "format", format, "items", len(snap.Items))

	return &primary.GenerateReportResponse{
		Path:     path,
		Entry:    entry,
		Snapshot: snap,
	}, nil
}

// render writes the report under the first free name for its date, shift and leader.
// A name taken by an earlier report moves on to the next numbered name, so no artifact
// referenced by history is ever replaced.
func (s *ReportServiceImpl) render(ctx context.Context, renderer secondary.ReportRenderer, snap *snapshot.Snapshot, dir string) (string, error) {
	for n := 1; n <= maxReportsPerName; n++ {
		dest := filepath.Join(dir, snapshot.NumberedFileName(snap, renderer.Format(), n))

		taken, err := s.artifacts.Exists(ctx, dest)
		if err != nil {
			return "", fmt.Errorf("failed to check %s: %w", dest, err)
		}
		if taken {
			continue
		}

		path, err := renderer.Render(ctx, snap, dest)
		if errors.Is(err, fs.ErrExist) {
			s.logger.Debug("report name taken", "dest", dest)
			continue
		}
		if err != nil {
			s.logger.Error("report rendering failed", "format", renderer.Format(), "dest", dest, "error", err)
			return "", describeWriteError(dest, err)
		}
		return path, nil
	}
	return "", fmt.Errorf("more than %d reports named %s in %s", maxReportsPerName,
		snapshot.FileName(snap, renderer.Format()), dir)
}

// describeWriteError keeps renderer errors intact and adds guidance for permission problems.
func describeWriteError(path string, err error) error {
	if errors.Is(err, fs.ErrPermission) {
		return fmt.Errorf("permission denied writing %s: close the file if another program has it open, or choose another directory with --out: %w", path, err)
	}
	return err
}

// Ensure ReportServiceImpl implements the interface
var _ primary.ReportService = (*ReportServiceImpl)(nil)
