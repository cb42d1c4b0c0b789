package cli

import (
	"context"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"

	"github.com/example/rounds/internal/errs"
	"github.com/example/rounds/internal/ports/primary"
)

// ReportAdapter translates report and history commands to service calls.
type ReportAdapter struct {
	reports  primary.ReportService
	history  primary.HistoryService
	captures primary.CaptureService
	out      io.Writer
}

// NewReportAdapter creates a new ReportAdapter with the given services.
func NewReportAdapter(reports primary.ReportService, history primary.HistoryService, captures primary.CaptureService, out io.Writer) *ReportAdapter {
	return &ReportAdapter{
		reports:  reports,
		history:  history,
		captures: captures,
		out:      out,
	}
}

// Generate attaches photos given as "title=path" and produces a report.
func (a *ReportAdapter) Generate(ctx context.Context, format, outputDir string, photos []string) (*primary.GenerateReportResponse, error) {
	for _, p := range photos {
		title, path, ok := strings.Cut(p, "=")
		if !ok {
			return nil, errs.Validation("photo %q must look like <item title>=<path>", p)
		}
		if err := a.captures.Attach(strings.TrimSpace(title), strings.TrimSpace(path)); err != nil {
			return nil, err
		}
	}

	resp, err := a.reports.Generate(ctx, primary.GenerateReportRequest{
		OutputDir: outputDir,
		Format:    format,
	})
	if err != nil {
		return nil, err
	}

	fmt.Fprintf(a.out, "%s Report written: %s\n", color.New(color.FgGreen).Sprint("✓"), resp.Path)
	fmt.Fprintf(a.out, "  Items: %d\n", len(resp.Snapshot.Items))
	fmt.Fprintf(a.out, "  History entry: %d\n", resp.Entry.ID)
	return resp, nil
}

// History prints every generated report, oldest first.
func (a *ReportAdapter) History(ctx context.Context) ([]*primary.HistoryEntry, error) {
	entries, err := a.history.List(ctx)
	if err != nil {
		return nil, err
	}

	if len(entries) == 0 {
		fmt.Fprintln(a.out, "No reports generated yet.")
		return entries, nil
	}

	w := tabwriter.NewWriter(a.out, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "ID\tDATE\tGENERATED\tARTIFACT")
	fmt.Fprintln(w, "--\t----\t---------\t--------")
	for _, e := range entries {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", e.ID, e.Date, e.CreatedAt, e.Info)
	}
	w.Flush()
	return entries, nil
}
