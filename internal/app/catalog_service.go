package app

import (
	"context"
	"fmt"

	"github.com/example/rounds/internal/core/catalog"
	"github.com/example/rounds/internal/errs"
	"github.com/example/rounds/internal/ports/primary"
	"github.com/example/rounds/internal/ports/secondary"
)

// CatalogServiceImpl implements the CatalogService interface.
type CatalogServiceImpl struct {
	optionRepo secondary.OptionRepository
	itemRepo   secondary.ChecklistItemRepository
}

// NewCatalogService creates a new CatalogService with injected dependencies.
func NewCatalogService(optionRepo secondary.OptionRepository, itemRepo secondary.ChecklistItemRepository) *CatalogServiceImpl {
	return &CatalogServiceImpl{
		optionRepo: optionRepo,
		itemRepo:   itemRepo,
	}
}

// ListOptions retrieves the options of a category in insertion order.
func (s *CatalogServiceImpl) ListOptions(ctx context.Context, category string) ([]*primary.Option, error) {
	c, err := catalog.ParseCategory(category)
	if err != nil {
		return nil, err
	}

	records, err := s.optionRepo.ListByCategory(ctx, string(c))
	if err != nil {
		return nil, fmt.Errorf("failed to list %s options: %w", c, err)
	}

	options := make([]*primary.Option, len(records))
	for i, r := range records {
		options[i] = recordToOption(r)
	}
	return options, nil
}

// AddOption creates a new option.
func (s *CatalogServiceImpl) AddOption(ctx context.Context, req primary.AddOptionRequest) (*primary.Option, error) {
	c, err := catalog.ParseCategory(req.Category)
	if err != nil {
		return nil, err
	}

	name := catalog.NormalizeName(req.Name)
	if err := catalog.CanUseName(catalog.NameContext{Entity: "option", Name: name}).Error(); err != nil {
		return nil, err
	}

	record, err := s.optionRepo.Create(ctx, string(c), name)
	if err != nil {
		return nil, fmt.Errorf("failed to add option: %w", err)
	}
	return recordToOption(record), nil
}

// UpdateOption replaces an option's name.
func (s *CatalogServiceImpl) UpdateOption(ctx context.Context, id int64, name string) error {
	exists, err := s.optionExists(ctx, id)
	if err != nil {
		return err
	}

	name = catalog.NormalizeName(name)
	guard := catalog.CanRename(catalog.RenameContext{
		Entity:  "option",
		ID:      id,
		Exists:  exists,
		NewName: name,
	})
	if err := guard.Error(); err != nil {
		return err
	}

	if err := s.optionRepo.UpdateName(ctx, id, name); err != nil {
		return fmt.Errorf("failed to update option: %w", err)
	}
	return nil
}

// DeleteOption removes an option.
func (s *CatalogServiceImpl) DeleteOption(ctx context.Context, id int64) error {
	if err := s.optionRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete option: %w", err)
	}
	return nil
}

// ListChecklistItems retrieves checklist items in display order.
func (s *CatalogServiceImpl) ListChecklistItems(ctx context.Context) ([]*primary.ChecklistItem, error) {
	records, err := s.itemRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list checklist items: %w", err)
	}
	return recordsToItems(records), nil
}

// AddChecklistItem appends a new item at the end of the checklist.
func (s *CatalogServiceImpl) AddChecklistItem(ctx context.Context, title string) (*primary.ChecklistItem, error) {
	title = catalog.NormalizeName(title)
	if err := catalog.CanUseName(catalog.NameContext{Entity: "checklist item", Name: title}).Error(); err != nil {
		return nil, err
	}

	record, err := s.itemRepo.Create(ctx, title)
	if err != nil {
		return nil, fmt.Errorf("failed to add checklist item: %w", err)
	}
	return recordToItem(record), nil
}

// UpdateChecklistItemTitle replaces an item's title.
func (s *CatalogServiceImpl) UpdateChecklistItemTitle(ctx context.Context, id int64, title string) error {
	exists := true
	if _, err := s.itemRepo.GetByID(ctx, id); err != nil {
		if !errs.IsNotFound(err) {
			return fmt.Errorf("failed to get checklist item: %w", err)
		}
		exists = false
	}

	title = catalog.NormalizeName(title)
	guard := catalog.CanRename(catalog.RenameContext{
		Entity:  "checklist item",
		ID:      id,
		Exists:  exists,
		NewName: title,
	})
	if err := guard.Error(); err != nil {
		return err
	}

	if err := s.itemRepo.UpdateTitle(ctx, id, title); err != nil {
		return fmt.Errorf("failed to update checklist item: %w", err)
	}
	return nil
}

// DeleteChecklistItem removes an item.
func (s *CatalogServiceImpl) DeleteChecklistItem(ctx context.Context, id int64) error {
	if err := s.itemRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete checklist item: %w", err)
	}
	return nil
}

func (s *CatalogServiceImpl) optionExists(ctx context.Context, id int64) (bool, error) {
	if _, err := s.optionRepo.GetByID(ctx, id); err != nil {
		if errs.IsNotFound(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to get option: %w", err)
	}
	return true, nil
}

func recordToOption(r *secondary.OptionRecord) *primary.Option {
	return &primary.Option{
		ID:       r.ID,
		Category: r.Category,
		Name:     r.Name,
	}
}

func recordToItem(r *secondary.ChecklistItemRecord) *primary.ChecklistItem {
	return &primary.ChecklistItem{
		ID:    r.ID,
		Title: r.Title,
		Order: r.Order,
	}
}

func recordsToItems(records []*secondary.ChecklistItemRecord) []*primary.ChecklistItem {
	items := make([]*primary.ChecklistItem, len(records))
	for i, r := range records {
		items[i] = recordToItem(r)
	}
	return items
}

// Ensure CatalogServiceImpl implements the interface
var _ primary.CatalogService = (*CatalogServiceImpl)(nil)
