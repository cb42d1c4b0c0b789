package app

import (
	"context"
	"testing"

	"github.com/example/rounds/internal/errs"
)

func TestHistoryService_RecordAndList(t *testing.T) {
	repo := &mockHistoryRepository{}
	service := NewHistoryService(repo)
	ctx := context.Background()

	entry, err := service.Record(ctx, "05/03/2026", "reports/05_03_2026_B_Ana.pdf")
	if err != nil {
		t.Fatalf("Record failed: %v", err)
	}
	if entry.ID != 1 || entry.Info != "reports/05_03_2026_B_Ana.pdf" {
		t.Errorf("unexpected entry %+v", entry)
	}

	entries, err := service.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("expected 1 entry, got %d", len(entries))
	}
}

func TestHistoryService_RecordRequiresReference(t *testing.T) {
	repo := &mockHistoryRepository{}
	service := NewHistoryService(repo)

	if _, err := service.Record(context.Background(), "05/03/2026", " "); !errs.IsValidation(err) {
		t.Errorf("expected validation error, got %v", err)
	}
	if len(repo.records) != 0 {
		t.Error("expected nothing recorded")
	}
}

func TestHistoryService_StorageErrorSurfaces(t *testing.T) {
	repo := &mockHistoryRepository{appendErr: errs.Storage("failed to append history", errDiskFull)}
	service := NewHistoryService(repo)

	if _, err := service.Record(context.Background(), "05/03/2026", "a.pdf"); !errs.IsStorage(err) {
		t.Errorf("expected storage error, got %v", err)
	}
}
