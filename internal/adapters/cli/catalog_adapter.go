// Package cli provides thin CLI adapters that translate between command arguments
// and application services. Adapters format output and leave decisions to services.
package cli

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/fatih/color"

	"github.com/example/rounds/internal/core/catalog"
	"github.com/example/rounds/internal/ports/primary"
)

// CatalogAdapter is a thin adapter that translates CLI operations to CatalogService
// and OrderingService calls.
type CatalogAdapter struct {
	service  primary.CatalogService
	ordering primary.OrderingService
	out      io.Writer
}

// NewCatalogAdapter creates a new CatalogAdapter with the given services.
func NewCatalogAdapter(service primary.CatalogService, ordering primary.OrderingService, out io.Writer) *CatalogAdapter {
	return &CatalogAdapter{
		service:  service,
		ordering: ordering,
		out:      out,
	}
}

// ListOptions prints the options of one category, or of every category when empty.
func (a *CatalogAdapter) ListOptions(ctx context.Context, category string) error {
	categories := catalog.Categories()
	if category != "" {
		c, err := catalog.ParseCategory(category)
		if err != nil {
			return err
		}
		categories = []catalog.Category{c}
	}

	w := tabwriter.NewWriter(a.out, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "ID\tCATEGORY\tNAME")
	fmt.Fprintln(w, "--\t--------\t----")

	total := 0
	for _, c := range categories {
		options, err := a.service.ListOptions(ctx, string(c))
		if err != nil {
			return err
		}
		for _, o := range options {
			fmt.Fprintf(w, "%d\t%s\t%s\n", o.ID, o.Category, o.Name)
		}
		total += len(options)
	}

	if total == 0 {
		fmt.Fprintln(a.out, "No options found.")
		fmt.Fprintln(a.out)
		fmt.Fprintln(a.out, "Add your first option:")
		fmt.Fprintln(a.out, `  rounds option add leader "Ana"`)
		return nil
	}

	return w.Flush()
}

// AddOption creates an option and prints its ID.
func (a *CatalogAdapter) AddOption(ctx context.Context, category, name string) (*primary.Option, error) {
	option, err := a.service.AddOption(ctx, primary.AddOptionRequest{Category: category, Name: name})
	if err != nil {
		return nil, err
	}
	fmt.Fprintf(a.out, "✓ Added %s option %d: %s\n", option.Category, option.ID, option.Name)
	return option, nil
}

// EditOption renames an option.
func (a *CatalogAdapter) EditOption(ctx context.Context, id int64, name string) error {
	if err := a.service.UpdateOption(ctx, id, name); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "✓ Option %d renamed\n", id)
	return nil
}

// DeleteOption removes an option.
func (a *CatalogAdapter) DeleteOption(ctx context.Context, id int64) error {
	if err := a.service.DeleteOption(ctx, id); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "✓ Option %d deleted\n", id)
	return nil
}

// ListItems prints the checklist in display order.
func (a *CatalogAdapter) ListItems(ctx context.Context) error {
	items, err := a.service.ListChecklistItems(ctx)
	if err != nil {
		return err
	}
	if len(items) == 0 {
		fmt.Fprintln(a.out, "No checklist items found.")
		fmt.Fprintln(a.out)
		fmt.Fprintln(a.out, "Add your first item:")
		fmt.Fprintln(a.out, `  rounds item add "Check oil"`)
		return nil
	}
	return a.printItems(items, 0)
}

// AddItem appends a checklist item.
func (a *CatalogAdapter) AddItem(ctx context.Context, title string) (*primary.ChecklistItem, error) {
	item, err := a.service.AddChecklistItem(ctx, title)
	if err != nil {
		return nil, err
	}
	fmt.Fprintf(a.out, "✓ Added checklist item %d: %s (position %d)\n", item.ID, item.Title, item.Order)
	return item, nil
}

// EditItem renames a checklist item.
func (a *CatalogAdapter) EditItem(ctx context.Context, id int64, title string) error {
	if err := a.service.UpdateChecklistItemTitle(ctx, id, title); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "✓ Checklist item %d renamed\n", id)
	return nil
}

// DeleteItem removes a checklist item.
func (a *CatalogAdapter) DeleteItem(ctx context.Context, id int64) error {
	if err := a.service.DeleteChecklistItem(ctx, id); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "✓ Checklist item %d deleted\n", id)
	return nil
}

// MoveItem applies a drag gesture and prints the resulting order with the moved item marked.
func (a *CatalogAdapter) MoveItem(ctx context.Context, source, target string) (*primary.ReorderResponse, error) {
	resp, err := a.ordering.MoveGesture(ctx, source, target)
	if err != nil {
		return nil, err
	}

	if !resp.Moved {
		fmt.Fprintln(a.out, "Order unchanged.")
		return resp, nil
	}

	moved, _ := strconv.ParseInt(source, 10, 64)
	return resp, a.printItems(resp.Items, moved)
}

func (a *CatalogAdapter) printItems(items []*primary.ChecklistItem, highlight int64) error {
	w := tabwriter.NewWriter(a.out, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "#\tID\tTITLE")
	fmt.Fprintln(w, "-\t--\t-----")
	for i, item := range items {
		marker := ""
		if item.ID == highlight {
			marker = color.New(color.FgHiMagenta).Sprint(" ←")
		}
		fmt.Fprintf(w, "%d\t%d\t%s%s\n", i+1, item.ID, item.Title, marker)
	}
	return w.Flush()
}
