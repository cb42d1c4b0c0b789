package sqlite_test

import (
	"context"
	"testing"

	"github.com/example/rounds/internal/adapters/sqlite"
	"github.com/example/rounds/internal/errs"
)

func TestSessionRepository_ReadSession(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	c := seedChecklistItem(t, db, "C", 0)
	a := seedChecklistItem(t, db, "A", 1)
	b := seedChecklistItem(t, db, "B", 1)

	drafts := sqlite.NewDraftRepository(db)
	for key, value := range map[string]string{"data": "05/03/2026", "lider": "Ana", "obs_A": ""} {
		if err := drafts.Upsert(ctx, key, value); err != nil {
			t.Fatalf("Upsert failed: %v", err)
		}
	}

	session, err := sqlite.NewSessionRepository(db).ReadSession(ctx)
	if err != nil {
		t.Fatalf("ReadSession failed: %v", err)
	}

	if len(session.Drafts) != 3 || session.Drafts["lider"] != "Ana" {
		t.Errorf("unexpected drafts %v", session.Drafts)
	}
	if value, ok := session.Drafts["obs_A"]; !ok || value != "" {
		t.Errorf("expected recorded empty observation, got %q (present=%v)", value, ok)
	}

	wantIDs := []int64{c, a, b}
	if len(session.Items) != len(wantIDs) {
		t.Fatalf("expected %d items, got %d", len(wantIDs), len(session.Items))
	}
	for i, want := range wantIDs {
		if session.Items[i].ID != want {
			t.Errorf("item %d: id = %d, want %d", i, session.Items[i].ID, want)
		}
	}
}

func TestSessionRepository_ReadSession_Empty(t *testing.T) {
	db := setupTestDB(t)

	session, err := sqlite.NewSessionRepository(db).ReadSession(context.Background())
	if err != nil {
		t.Fatalf("ReadSession failed: %v", err)
	}
	if len(session.Drafts) != 0 || len(session.Items) != 0 {
		t.Errorf("expected empty session, got %+v", session)
	}
}

func TestSessionRepository_ClosedDatabase(t *testing.T) {
	db := setupTestDB(t)
	repo := sqlite.NewSessionRepository(db)
	db.Close()

	if _, err := repo.ReadSession(context.Background()); !errs.IsStorage(err) {
		t.Errorf("expected storage error, got %v", err)
	}
}
