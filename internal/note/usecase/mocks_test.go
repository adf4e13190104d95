package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"notes-client/internal/model"
	"notes-client/internal/note/repository"
	"notes-client/internal/note/repository/memory"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

var errServerDown = errors.New("connection refused")

// mockRemote behaves like the notes API over an in-memory slice and records
// every call it receives.
type mockRemote struct {
	mu     sync.Mutex
	notes  []model.Note
	nextID int64
	calls  []string

	listErr   error
	recentErr error
	createErr error
	updateErr error
	deleteErr error

	// beforeList, when set, runs before a page is served (outside mu).
	beforeList func(opt repository.ListNotesOptions)
	// failList, when set, fails the page requests it returns true for.
	failList func(opt repository.ListNotesOptions) bool
	// beforeRecent, when set, runs after the recent list is computed and
	// before it is returned (outside mu).
	beforeRecent func(out []model.Note)
}

func newMockRemote(n int) *mockRemote {
	m := &mockRemote{nextID: 1}
	for i := 0; i < n; i++ {
		m.notes = append(m.notes, model.Note{
			ID:      m.nextID,
			Title:   fmt.Sprintf("Note %d", m.nextID),
			Content: fmt.Sprintf("content %d", m.nextID),
		})
		m.nextID++
	}
	return m
}

func (m *mockRemote) record(call string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, call)
}

func (m *mockRemote) Calls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.calls...)
}

func (m *mockRemote) count(call string) int {
	n := 0
	for _, c := range m.Calls() {
		if c == call {
			n++
		}
	}
	return n
}

func (m *mockRemote) setListErr(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.listErr = err
}

func (m *mockRemote) ListNotes(ctx context.Context, opt repository.ListNotesOptions) ([]model.Note, error) {
	m.record("list")
	if m.beforeList != nil {
		m.beforeList(opt)
	}

	if m.failList != nil && m.failList(opt) {
		return nil, errServerDown
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.listErr != nil {
		return nil, m.listErr
	}
	out := []model.Note{}
	for i := opt.Skip; i < len(m.notes) && i < opt.Skip+opt.Limit; i++ {
		out = append(out, m.notes[i])
	}
	return out, nil
}

func (m *mockRemote) ListRecent(ctx context.Context, limit int) ([]model.Note, error) {
	m.record("recent")
	m.mu.Lock()
	if m.recentErr != nil {
		m.mu.Unlock()
		return nil, m.recentErr
	}
	out := []model.Note{}
	for i := len(m.notes) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, m.notes[i])
	}
	m.mu.Unlock()

	if m.beforeRecent != nil {
		m.beforeRecent(out)
	}
	return out, nil
}

func (m *mockRemote) GetNote(ctx context.Context, id int64) (model.Note, error) {
	m.record("get")
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, n := range m.notes {
		if n.ID == id {
			return n, nil
		}
	}
	return model.Note{}, fmt.Errorf("%w: %w", repository.ErrFailedToGet, repository.ErrNotFound)
}

func (m *mockRemote) SearchNotes(ctx context.Context, query string) ([]model.Note, error) {
	m.record("search")
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []model.Note{}
	for _, n := range m.notes {
		if n.HasTitle(query) {
			out = append(out, n)
		}
	}
	return out, nil
}

func (m *mockRemote) CreateNote(ctx context.Context, opt repository.CreateNoteOptions) (model.Note, error) {
	m.record("create")
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.createErr != nil {
		return model.Note{}, m.createErr
	}
	n := model.Note{ID: m.nextID, Title: opt.Title, Content: opt.Content}
	m.nextID++
	m.notes = append(m.notes, n)
	return n, nil
}

func (m *mockRemote) UpdateNote(ctx context.Context, opt repository.UpdateNoteOptions) (model.Note, error) {
	m.record("update")
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.updateErr != nil {
		return model.Note{}, m.updateErr
	}
	for i := range m.notes {
		if m.notes[i].ID == opt.ID {
			m.notes[i].Title = opt.Title
			m.notes[i].Content = opt.Content
			return m.notes[i], nil
		}
	}
	return model.Note{}, fmt.Errorf("%w: %w", repository.ErrFailedToUpdate, repository.ErrNotFound)
}

func (m *mockRemote) DeleteNote(ctx context.Context, id int64) error {
	m.record("delete")
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.deleteErr != nil {
		return m.deleteErr
	}
	for i := range m.notes {
		if m.notes[i].ID == id {
			m.notes = append(m.notes[:i], m.notes[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: %w", repository.ErrFailedToDelete, repository.ErrNotFound)
}

// brokenCache fails every operation.
type brokenCache struct{}

func (brokenCache) Load(ctx context.Context) ([]model.Note, bool, error) {
	return nil, false, errors.New("disk gone")
}
func (brokenCache) Save(ctx context.Context, notes []model.Note) error {
	return errors.New("disk gone")
}

func newTestCache(t *testing.T) *memory.Cache {
	t.Helper()
	return memory.New("notes")
}

func newTestUseCase(t *testing.T, remote *mockRemote, cache repository.FallbackCache) *implUseCase {
	t.Helper()
	return New(&mockLogger{}, remote, cache, 6, 3)
}

func ids(notes []model.Note) []int64 {
	out := make([]int64, 0, len(notes))
	for _, n := range notes {
		out = append(out, n.ID)
	}
	return out
}

func containsID(notes []model.Note, id int64) bool {
	for _, n := range notes {
		if n.ID == id {
			return true
		}
	}
	return false
}
