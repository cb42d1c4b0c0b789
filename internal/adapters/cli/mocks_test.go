package cli

import (
	"context"
	"errors"

	"github.com/example/rounds/internal/core/snapshot"
	"github.com/example/rounds/internal/ports/primary"
)

var errNotImplemented = errors.New("not implemented in mock")

// mockCatalogService implements primary.CatalogService for testing
type mockCatalogService struct {
	listOptionsFn func(ctx context.Context, category string) ([]*primary.Option, error)
	addOptionFn   func(ctx context.Context, req primary.AddOptionRequest) (*primary.Option, error)
	listItemsFn   func(ctx context.Context) ([]*primary.ChecklistItem, error)

	// Track calls for verification
	lastUpdatedID   int64
	lastUpdatedName string
	lastDeletedID   int64
}

func (m *mockCatalogService) ListOptions(ctx context.Context, category string) ([]*primary.Option, error) {
	if m.listOptionsFn != nil {
		return m.listOptionsFn(ctx, category)
	}
	return nil, nil
}

func (m *mockCatalogService) AddOption(ctx context.Context, req primary.AddOptionRequest) (*primary.Option, error) {
	if m.addOptionFn != nil {
		return m.addOptionFn(ctx, req)
	}
	return &primary.Option{ID: 1, Category: req.Category, Name: req.Name}, nil
}

func (m *mockCatalogService) UpdateOption(ctx context.Context, id int64, name string) error {
	m.lastUpdatedID, m.lastUpdatedName = id, name
	return nil
}

func (m *mockCatalogService) DeleteOption(ctx context.Context, id int64) error {
	m.lastDeletedID = id
	return nil
}

func (m *mockCatalogService) ListChecklistItems(ctx context.Context) ([]*primary.ChecklistItem, error) {
	if m.listItemsFn != nil {
		return m.listItemsFn(ctx)
	}
	return nil, nil
}

func (m *mockCatalogService) AddChecklistItem(ctx context.Context, title string) (*primary.ChecklistItem, error) {
	return &primary.ChecklistItem{ID: 7, Title: title, Order: 3}, nil
}

func (m *mockCatalogService) UpdateChecklistItemTitle(ctx context.Context, id int64, title string) error {
	m.lastUpdatedID, m.lastUpdatedName = id, title
	return nil
}

func (m *mockCatalogService) DeleteChecklistItem(ctx context.Context, id int64) error {
	m.lastDeletedID = id
	return nil
}

// mockOrderingService implements primary.OrderingService for testing
type mockOrderingService struct {
	moveGestureFn func(ctx context.Context, source, target string) (*primary.ReorderResponse, error)
}

func (m *mockOrderingService) Move(ctx context.Context, req primary.ReorderRequest) (*primary.ReorderResponse, error) {
	return nil, errNotImplemented
}

func (m *mockOrderingService) MoveGesture(ctx context.Context, source, target string) (*primary.ReorderResponse, error) {
	if m.moveGestureFn != nil {
		return m.moveGestureFn(ctx, source, target)
	}
	return &primary.ReorderResponse{}, nil
}

// mockDraftService implements primary.DraftService for testing
type mockDraftService struct {
	values  map[string]string
	cleared int
}

func newMockDraftService() *mockDraftService {
	return &mockDraftService{values: make(map[string]string)}
}

func (m *mockDraftService) Set(ctx context.Context, key, value string) { m.values[key] = value }

func (m *mockDraftService) Get(ctx context.Context, key string) string { return m.values[key] }

func (m *mockDraftService) Lookup(ctx context.Context, key string) (string, bool) {
	v, ok := m.values[key]
	return v, ok
}

func (m *mockDraftService) All(ctx context.Context) []*primary.Draft {
	var drafts []*primary.Draft
	for k, v := range m.values {
		drafts = append(drafts, &primary.Draft{Key: k, Value: v})
	}
	return drafts
}

func (m *mockDraftService) ClearAll(ctx context.Context) {
	m.cleared++
	clear(m.values)
}

// mockSnapshotService implements primary.SnapshotService for testing
type mockSnapshotService struct {
	snap *snapshot.Snapshot
	err  error
}

func (m *mockSnapshotService) Build(ctx context.Context) (*snapshot.Snapshot, error) {
	return m.snap, m.err
}

// mockReportService implements primary.ReportService for testing
type mockReportService struct {
	generateFn func(ctx context.Context, req primary.GenerateReportRequest) (*primary.GenerateReportResponse, error)
	lastReq    primary.GenerateReportRequest
}

func (m *mockReportService) Generate(ctx context.Context, req primary.GenerateReportRequest) (*primary.GenerateReportResponse, error) {
	m.lastReq = req
	if m.generateFn != nil {
		return m.generateFn(ctx, req)
	}
	return &primary.GenerateReportResponse{
		Path:     "reports/05_03_2026_B_Ana.pdf",
		Entry:    &primary.HistoryEntry{ID: 4},
		Snapshot: &snapshot.Snapshot{Items: []snapshot.Item{{Title: "Check oil"}}},
	}, nil
}

// mockHistoryService implements primary.HistoryService for testing
type mockHistoryService struct {
	entries []*primary.HistoryEntry
}

func (m *mockHistoryService) Record(ctx context.Context, date, artifactRef string) (*primary.HistoryEntry, error) {
	return nil, errNotImplemented
}

func (m *mockHistoryService) List(ctx context.Context) ([]*primary.HistoryEntry, error) {
	return m.entries, nil
}

// mockCaptureService implements primary.CaptureService for testing
type mockCaptureService struct {
	photos map[string]string
}

func (m *mockCaptureService) Attach(section, path string) error {
	if m.photos == nil {
		m.photos = make(map[string]string)
	}
	m.photos[section] = path
	return nil
}

func (m *mockCaptureService) Photo(section string) (string, bool) {
	p, ok := m.photos[section]
	return p, ok
}

func (m *mockCaptureService) All() map[string]string { return m.photos }

var (
	_ primary.CatalogService  = (*mockCatalogService)(nil)
	_ primary.OrderingService = (*mockOrderingService)(nil)
	_ primary.DraftService    = (*mockDraftService)(nil)
	_ primary.SnapshotService = (*mockSnapshotService)(nil)
	_ primary.ReportService   = (*mockReportService)(nil)
	_ primary.HistoryService  = (*mockHistoryService)(nil)
	_ primary.CaptureService  = (*mockCaptureService)(nil)
)
