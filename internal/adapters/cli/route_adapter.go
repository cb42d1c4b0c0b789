package cli

import (
	"context"
	"fmt"
	"io"
	"slices"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/fatih/color"

	"github.com/example/rounds/internal/core/catalog"
	"github.com/example/rounds/internal/core/snapshot"
	"github.com/example/rounds/internal/errs"
	"github.com/example/rounds/internal/ports/primary"
)

// RouteAdapter translates route session commands to draft, catalog and snapshot services.
type RouteAdapter struct {
	drafts    primary.DraftService
	catalog   primary.CatalogService
	snapshots primary.SnapshotService
	out       io.Writer
	now       func() time.Time
}

// NewRouteAdapter creates a new RouteAdapter with the given services.
func NewRouteAdapter(drafts primary.DraftService, catalogService primary.CatalogService, snapshots primary.SnapshotService, out io.Writer) *RouteAdapter {
	return &RouteAdapter{
		drafts:    drafts,
		catalog:   catalogService,
		snapshots: snapshots,
		out:       out,
		now:       time.Now,
	}
}

// New discards the previous session and starts one dated date (today when empty).
func (a *RouteAdapter) New(ctx context.Context, date string) error {
	if date == "" {
		date = a.now().Format(snapshot.DateLayout)
	}
	if !snapshot.ValidDate(date) {
		return errs.Validation("date %q must use dd/mm/yyyy", date)
	}

	a.drafts.ClearAll(ctx)
	a.drafts.Set(ctx, snapshot.KeyDate, date)

	fmt.Fprintf(a.out, "✓ New route started for %s\n", date)
	return nil
}

// SetField stores an identification field. Accepted fields: date, leader, machine,
// shift, route (or their draft key names).
func (a *RouteAdapter) SetField(ctx context.Context, field, value string) error {
	value = strings.TrimSpace(value)

	switch strings.ToLower(strings.TrimSpace(field)) {
	case "date", snapshot.KeyDate:
		if !snapshot.ValidDate(value) {
			return errs.Validation("date %q must use dd/mm/yyyy", value)
		}
		a.drafts.Set(ctx, snapshot.KeyDate, value)
		fmt.Fprintf(a.out, "✓ Date set to %s\n", value)
		return nil
	}

	c, err := catalog.ParseCategory(field)
	if err != nil {
		return errs.Validation("unknown field %q (expected date, leader, machine, shift or route)", field)
	}

	a.drafts.Set(ctx, c.DraftKey(), value)

	marker := ""
	known, err := a.inCatalog(ctx, c, value)
	if err != nil {
		return err
	}
	if !known {
		marker = color.New(color.FgYellow).Sprint(" (not in catalog)")
	}
	fmt.Fprintf(a.out, "✓ %s set to %s%s\n", c.Label(), value, marker)
	return nil
}

// Observe stores the observation for a checklist item.
func (a *RouteAdapter) Observe(ctx context.Context, title, text string) error {
	items, err := a.catalog.ListChecklistItems(ctx)
	if err != nil {
		return err
	}
	found := slices.ContainsFunc(items, func(item *primary.ChecklistItem) bool { return item.Title == title })
	if !found {
		return errs.NotFound("checklist item %q", title)
	}

	a.drafts.Set(ctx, snapshot.ObservationKey(title), text)
	fmt.Fprintf(a.out, "✓ Observation saved for %s\n", title)
	return nil
}

// Show prints the current session as it would be reported.
func (a *RouteAdapter) Show(ctx context.Context) (*snapshot.Snapshot, error) {
	snap, err := a.snapshots.Build(ctx)
	if err != nil {
		return nil, err
	}

	fmt.Fprintf(a.out, "\nRoute: %s\n", snap.Date)
	fmt.Fprintf(a.out, "Leader:  %s\n", orDash(snap.Identification.Leader))
	fmt.Fprintf(a.out, "Machine: %s\n", orDash(snap.Identification.Machine))
	fmt.Fprintf(a.out, "Shift:   %s\n", orDash(snap.Identification.Shift))
	fmt.Fprintf(a.out, "Route:   %s\n", orDash(snap.Identification.Route))
	fmt.Fprintln(a.out)

	if len(snap.Items) == 0 {
		fmt.Fprintln(a.out, "No checklist items.")
		return snap, nil
	}

	for i, item := range snap.Items {
		note := item.Observation.String()
		if !item.Observation.Recorded {
			note = color.New(color.FgYellow).Sprint(note)
		}
		fmt.Fprintf(a.out, "%d. %s: %s\n", i+1, item.Title, note)
		if item.PhotoPath != "" {
			fmt.Fprintf(a.out, "   photo: %s\n", item.PhotoPath)
		}
	}
	fmt.Fprintln(a.out)

	return snap, nil
}

// GetDraft prints a raw draft value.
func (a *RouteAdapter) GetDraft(ctx context.Context, key string) {
	fmt.Fprintln(a.out, a.drafts.Get(ctx, key))
}

// SetDraft writes a raw draft value.
func (a *RouteAdapter) SetDraft(ctx context.Context, key, value string) {
	a.drafts.Set(ctx, key, value)
	fmt.Fprintf(a.out, "✓ %s saved\n", key)
}

// ListDrafts prints every draft entry.
func (a *RouteAdapter) ListDrafts(ctx context.Context) {
	drafts := a.drafts.All(ctx)
	if len(drafts) == 0 {
		fmt.Fprintln(a.out, "No drafts saved.")
		return
	}

	w := tabwriter.NewWriter(a.out, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "KEY\tVALUE\tUPDATED")
	fmt.Fprintln(w, "---\t-----\t-------")
	for _, d := range drafts {
		fmt.Fprintf(w, "%s\t%s\t%s\n", d.Key, d.Value, d.UpdatedAt)
	}
	w.Flush()
}

// ClearDrafts discards the whole session.
func (a *RouteAdapter) ClearDrafts(ctx context.Context) {
	a.drafts.ClearAll(ctx)
	fmt.Fprintln(a.out, "✓ Drafts cleared")
}

func (a *RouteAdapter) inCatalog(ctx context.Context, c catalog.Category, value string) (bool, error) {
	options, err := a.catalog.ListOptions(ctx, string(c))
	if err != nil {
		return false, err
	}
	return slices.ContainsFunc(options, func(o *primary.Option) bool { return o.Name == value }), nil
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
