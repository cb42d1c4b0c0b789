package sqlite_test

import (
	"context"
	"testing"

	"github.com/example/rounds/internal/adapters/sqlite"
)

func TestHistoryRepository_Append(t *testing.T) {
	db := setupTestDB(t)
	repo := sqlite.NewHistoryRepository(db)

	record, err := repo.Append(context.Background(), "05/03/2026", "reports/05_03_2026_B_Ana.pdf")
	if err != nil {
		t.Fatalf("Append failed: %v", err)
	}
	if record.ID == 0 {
		t.Error("expected ID to be assigned")
	}
	if record.Date != "05/03/2026" {
		t.Errorf("unexpected date %q", record.Date)
	}
	if record.Info != "reports/05_03_2026_B_Ana.pdf" {
		t.Errorf("unexpected info %q", record.Info)
	}
	if record.CreatedAt == "" {
		t.Error("expected CreatedAt to be set")
	}
}

func TestHistoryRepository_ListAscending(t *testing.T) {
	db := setupTestDB(t)
	repo := sqlite.NewHistoryRepository(db)
	ctx := context.Background()

	for _, info := range []string{"first.pdf", "second.pdf", "third.xlsx"} {
		if _, err := repo.Append(ctx, "05/03/2026", info); err != nil {
			t.Fatalf("Append failed: %v", err)
		}
	}

	records, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("expected 3 records, got %d", len(records))
	}
	for i := 1; i < len(records); i++ {
		if records[i-1].ID >= records[i].ID {
			t.Errorf("records not ascending at %d", i)
		}
	}
	if records[0].Info != "first.pdf" || records[2].Info != "third.xlsx" {
		t.Errorf("unexpected order: %s, %s", records[0].Info, records[2].Info)
	}
}

func TestHistoryRepository_Count(t *testing.T) {
	db := setupTestDB(t)
	repo := sqlite.NewHistoryRepository(db)
	ctx := context.Background()

	count, err := repo.Count(ctx)
	if err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	if count != 0 {
		t.Errorf("expected 0, got %d", count)
	}

	_, _ = repo.Append(ctx, "05/03/2026", "a.pdf")
	_, _ = repo.Append(ctx, "05/03/2026", "a.pdf")

	count, err = repo.Count(ctx)
	if err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	if count != 2 {
		t.Errorf("expected duplicates to be kept, got %d", count)
	}
}
