package app

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"maps"
	"slices"
	"sort"

	"github.com/example/rounds/internal/core/snapshot"
	"github.com/example/rounds/internal/errs"
	"github.com/example/rounds/internal/ports/secondary"
)

// ============================================================================
// Mock Implementations
// ============================================================================

// Ensure mocks implement the interfaces
var (
	_ secondary.OptionRepository        = (*mockOptionRepository)(nil)
	_ secondary.ChecklistItemRepository = (*mockChecklistItemRepository)(nil)
	_ secondary.DraftRepository         = (*mockDraftRepository)(nil)
	_ secondary.HistoryRepository       = (*mockHistoryRepository)(nil)
	_ secondary.SessionReader           = (*mockSessionReader)(nil)
	_ secondary.ReportRenderer          = (*mockRenderer)(nil)
	_ secondary.ArtifactStore           = (*mockArtifactStore)(nil)
)

var errDiskFull = errors.New("disk I/O error: database or disk is full")

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func bufferLogger() (*slog.Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	return slog.New(slog.NewTextHandler(buf, nil)), buf
}

// mockOptionRepository implements secondary.OptionRepository for testing.
type mockOptionRepository struct {
	options   []*secondary.OptionRecord
	nextID    int64
	createErr error
	listErr   error
	getErr    error
	createdN  int
}

func newMockOptionRepository() *mockOptionRepository {
	return &mockOptionRepository{nextID: 1}
}

func (m *mockOptionRepository) Create(ctx context.Context, category, name string) (*secondary.OptionRecord, error) {
	if m.createErr != nil {
		return nil, m.createErr
	}
	m.createdN++
	record := &secondary.OptionRecord{ID: m.nextID, Category: category, Name: name}
	m.nextID++
	m.options = append(m.options, record)
	return record, nil
}

func (m *mockOptionRepository) GetByID(ctx context.Context, id int64) (*secondary.OptionRecord, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	for _, o := range m.options {
		if o.ID == id {
			return o, nil
		}
	}
	return nil, errs.NotFound("option %d", id)
}

func (m *mockOptionRepository) ListByCategory(ctx context.Context, category string) ([]*secondary.OptionRecord, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	var result []*secondary.OptionRecord
	for _, o := range m.options {
		if o.Category == category {
			result = append(result, o)
		}
	}
	return result, nil
}

func (m *mockOptionRepository) UpdateName(ctx context.Context, id int64, name string) error {
	for _, o := range m.options {
		if o.ID == id {
			o.Name = name
			return nil
		}
	}
	return errs.NotFound("option %d", id)
}

func (m *mockOptionRepository) Delete(ctx context.Context, id int64) error {
	m.options = slices.DeleteFunc(m.options, func(o *secondary.OptionRecord) bool { return o.ID == id })
	return nil
}

// mockChecklistItemRepository implements secondary.ChecklistItemRepository for testing.
type mockChecklistItemRepository struct {
	items      []*secondary.ChecklistItemRecord
	nextID     int64
	listErr    error
	reorderErr error
}

func newMockChecklistItemRepository(titles ...string) *mockChecklistItemRepository {
	m := &mockChecklistItemRepository{nextID: 1}
	for _, title := range titles {
		_, _ = m.Create(context.Background(), title)
	}
	return m
}

func (m *mockChecklistItemRepository) Create(ctx context.Context, title string) (*secondary.ChecklistItemRecord, error) {
	order := 0
	for _, item := range m.items {
		if item.Order >= order {
			order = item.Order + 1
		}
	}
	record := &secondary.ChecklistItemRecord{ID: m.nextID, Title: title, Order: order}
	m.nextID++
	m.items = append(m.items, record)
	return record, nil
}

func (m *mockChecklistItemRepository) GetByID(ctx context.Context, id int64) (*secondary.ChecklistItemRecord, error) {
	for _, item := range m.items {
		if item.ID == id {
			return item, nil
		}
	}
	return nil, errs.NotFound("checklist item %d", id)
}

func (m *mockChecklistItemRepository) List(ctx context.Context) ([]*secondary.ChecklistItemRecord, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	result := slices.Clone(m.items)
	sort.SliceStable(result, func(i, j int) bool {
		if result[i].Order != result[j].Order {
			return result[i].Order < result[j].Order
		}
		return result[i].ID < result[j].ID
	})
	return result, nil
}

func (m *mockChecklistItemRepository) UpdateTitle(ctx context.Context, id int64, title string) error {
	for _, item := range m.items {
		if item.ID == id {
			item.Title = title
			return nil
		}
	}
	return errs.NotFound("checklist item %d", id)
}

func (m *mockChecklistItemRepository) Delete(ctx context.Context, id int64) error {
	m.items = slices.DeleteFunc(m.items, func(item *secondary.ChecklistItemRecord) bool { return item.ID == id })
	return nil
}

func (m *mockChecklistItemRepository) Reorder(ctx context.Context, plan secondary.ReorderPlan) (bool, error) {
	if m.reorderErr != nil {
		return false, m.reorderErr
	}
	current, _ := m.List(ctx)
	ids := make([]int64, len(current))
	for i, item := range current {
		ids[i] = item.ID
	}
	next, changed := plan(ids)
	if !changed {
		return false, nil
	}
	for position, id := range next {
		for _, item := range m.items {
			if item.ID == id {
				item.Order = position
			}
		}
	}
	return true, nil
}

// mockDraftRepository implements secondary.DraftRepository for testing.
type mockDraftRepository struct {
	values    map[string]string
	upsertErr error
	getErr    error
	listErr   error
	deleteErr error
}

func newMockDraftRepository() *mockDraftRepository {
	return &mockDraftRepository{values: make(map[string]string)}
}

func (m *mockDraftRepository) Upsert(ctx context.Context, key, value string) error {
	if m.upsertErr != nil {
		return m.upsertErr
	}
	m.values[key] = value
	return nil
}

func (m *mockDraftRepository) Get(ctx context.Context, key string) (string, bool, error) {
	if m.getErr != nil {
		return "", false, m.getErr
	}
	value, ok := m.values[key]
	return value, ok, nil
}

func (m *mockDraftRepository) List(ctx context.Context) ([]*secondary.DraftRecord, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	var result []*secondary.DraftRecord
	for k, v := range m.values {
		result = append(result, &secondary.DraftRecord{Key: k, Value: v})
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Key < result[j].Key })
	return result, nil
}

func (m *mockDraftRepository) DeleteAll(ctx context.Context) error {
	if m.deleteErr != nil {
		return m.deleteErr
	}
	clear(m.values)
	return nil
}

// mockSessionReader implements secondary.SessionReader over the draft and checklist mocks.
type mockSessionReader struct {
	drafts  *mockDraftRepository
	items   *mockChecklistItemRepository
	readErr error
	reads   int
}

func newMockSessionReader(drafts *mockDraftRepository, items *mockChecklistItemRepository) *mockSessionReader {
	return &mockSessionReader{drafts: drafts, items: items}
}

func (m *mockSessionReader) ReadSession(ctx context.Context) (*secondary.SessionRecord, error) {
	m.reads++
	if m.readErr != nil {
		return nil, m.readErr
	}
	items, err := m.items.List(ctx)
	if err != nil {
		return nil, err
	}
	return &secondary.SessionRecord{Drafts: maps.Clone(m.drafts.values), Items: items}, nil
}

// mockHistoryRepository implements secondary.HistoryRepository for testing.
type mockHistoryRepository struct {
	records   []*secondary.HistoryRecord
	appendErr error
}

func (m *mockHistoryRepository) Append(ctx context.Context, date, info string) (*secondary.HistoryRecord, error) {
	if m.appendErr != nil {
		return nil, m.appendErr
	}
	record := &secondary.HistoryRecord{ID: int64(len(m.records) + 1), Date: date, Info: info}
	m.records = append(m.records, record)
	return record, nil
}

func (m *mockHistoryRepository) List(ctx context.Context) ([]*secondary.HistoryRecord, error) {
	return m.records, nil
}

func (m *mockHistoryRepository) Count(ctx context.Context) (int, error) {
	return len(m.records), nil
}

// mockRenderer implements secondary.ReportRenderer for testing.
// Successful renders register the destination in store. Like the real renderers it refuses
// to replace a destination that already exists, including names listed in taken.
type mockRenderer struct {
	format    string
	store     *mockArtifactStore
	taken     map[string]bool
	renderErr error
	rendered  []*snapshot.Snapshot
}

func (m *mockRenderer) Format() string { return m.format }

func (m *mockRenderer) Render(ctx context.Context, snap *snapshot.Snapshot, dest string) (string, error) {
	if m.renderErr != nil {
		return "", m.renderErr
	}
	if m.taken[dest] || (m.store != nil && m.store.files[dest]) {
		return "", fmt.Errorf("report %s already exists: %w", dest, fs.ErrExist)
	}
	m.rendered = append(m.rendered, snap)
	if m.store != nil {
		m.store.files[dest] = true
	}
	return dest, nil
}

// mockArtifactStore implements secondary.ArtifactStore for testing.
type mockArtifactStore struct {
	dirs      map[string]bool
	files     map[string]bool
	ensureErr error
}

func newMockArtifactStore() *mockArtifactStore {
	return &mockArtifactStore{
		dirs:  make(map[string]bool),
		files: make(map[string]bool),
	}
}

func (m *mockArtifactStore) EnsureDir(ctx context.Context, dir string) error {
	if m.ensureErr != nil {
		return m.ensureErr
	}
	m.dirs[dir] = true
	return nil
}

func (m *mockArtifactStore) Exists(ctx context.Context, path string) (bool, error) {
	return m.files[path], nil
}
