package app

import (
	"context"
	"strings"
	"testing"
)

func newTestDraftService() (*DraftServiceImpl, *mockDraftRepository) {
	repo := newMockDraftRepository()
	return NewDraftService(repo, discardLogger()), repo
}

func TestDraftService_SetGetRoundTrip(t *testing.T) {
	service, _ := newTestDraftService()
	ctx := context.Background()

	for _, value := range []string{"Ana", "", "  spaced  ", "ção"} {
		service.Set(ctx, "lider", value)
		if got := service.Get(ctx, "lider"); got != value {
			t.Errorf("Get after Set(%q) = %q", value, got)
		}
	}
}

func TestDraftService_GetMissingIsEmpty(t *testing.T) {
	service, _ := newTestDraftService()

	if got := service.Get(context.Background(), "maquina"); got != "" {
		t.Errorf("expected empty string, got %q", got)
	}
}

func TestDraftService_LookupDistinguishesEmpty(t *testing.T) {
	service, _ := newTestDraftService()
	ctx := context.Background()

	service.Set(ctx, "obs_Check oil", "")

	if _, found := service.Lookup(ctx, "obs_Check oil"); !found {
		t.Error("expected recorded empty value to be found")
	}
	if _, found := service.Lookup(ctx, "obs_Check belts"); found {
		t.Error("expected missing key to be reported absent")
	}
}

func TestDraftService_ClearAll(t *testing.T) {
	service, _ := newTestDraftService()
	ctx := context.Background()

	keys := []string{"data", "lider", "turma", "obs_Check oil"}
	for _, k := range keys {
		service.Set(ctx, k, "value")
	}

	service.ClearAll(ctx)

	for _, k := range keys {
		if got := service.Get(ctx, k); got != "" {
			t.Errorf("Get(%q) after ClearAll = %q, want empty", k, got)
		}
	}
	if all := service.All(ctx); len(all) != 0 {
		t.Errorf("expected no entries, got %d", len(all))
	}
}

func TestDraftService_All(t *testing.T) {
	service, _ := newTestDraftService()
	ctx := context.Background()

	service.Set(ctx, "turma", "B")
	service.Set(ctx, "lider", "Ana")

	all := service.All(ctx)
	if len(all) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(all))
	}
	if all[0].Key != "lider" || all[1].Key != "turma" {
		t.Errorf("expected sorted keys, got %s, %s", all[0].Key, all[1].Key)
	}
}

func TestDraftService_StorageErrorsAreSwallowed(t *testing.T) {
	repo := newMockDraftRepository()
	logger, buf := bufferLogger()
	service := NewDraftService(repo, logger)
	ctx := context.Background()

	repo.upsertErr = errDiskFull
	repo.getErr = errDiskFull
	repo.listErr = errDiskFull
	repo.deleteErr = errDiskFull

	service.Set(ctx, "lider", "Ana")
	if got := service.Get(ctx, "lider"); got != "" {
		t.Errorf("expected empty read on failure, got %q", got)
	}
	if all := service.All(ctx); all != nil {
		t.Errorf("expected nil list on failure, got %v", all)
	}
	service.ClearAll(ctx)

	logs := buf.String()
	if strings.Count(logs, "level=WARN") != 4 {
		t.Errorf("expected 4 warnings, got:\n%s", logs)
	}
	if !strings.Contains(logs, "key=lider") {
		t.Errorf("expected key in log output, got:\n%s", logs)
	}
}
