// Package testutil provides shared test utilities and mock implementations.
package testutil

import (
	"fmt"
	"sync"
	"time"

	"github.com/runoshun/todo/internal/domain"
)

// MockClock is a test double for domain.Clock.
type MockClock struct {
	NowTime time.Time
}

// Now returns the configured time.
func (m *MockClock) Now() time.Time {
	return m.NowTime
}

// MockIDGenerator returns sequential IDs ("id-1", "id-2", ...).
type MockIDGenerator struct {
	N int
}

// NewID returns the next ID.
func (m *MockIDGenerator) NewID() string {
	m.N++
	return fmt.Sprintf("id-%d", m.N)
}

// MockTaskRepository is an in-memory test double for domain.TaskRepository.
// Fields are ordered to minimize memory padding.
type MockTaskRepository struct {
	ListErr   error
	GetErr    error
	AppendErr error
	UpdateErr error
	DeleteErr error
	ReloadErr error
	OnDisk    []*domain.Task // Replaces Tasks on Reload when non-nil
	Tasks     []*domain.Task
	Saves     int // Successful mutations
	Reloads   int
}

// NewMockTaskRepository creates a MockTaskRepository holding tasks.
func NewMockTaskRepository(tasks ...*domain.Task) *MockTaskRepository {
	return &MockTaskRepository{Tasks: tasks}
}

// List returns copies of all tasks.
func (m *MockTaskRepository) List() ([]*domain.Task, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	out := make([]*domain.Task, 0, len(m.Tasks))
	for _, t := range m.Tasks {
		out = append(out, t.Clone())
	}
	return out, nil
}

// Get returns a copy of the task at position.
func (m *MockTaskRepository) Get(position int) (*domain.Task, error) {
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	if position < 1 || position > len(m.Tasks) {
		return nil, domain.ErrInvalidPosition
	}
	return m.Tasks[position-1].Clone(), nil
}

// Append adds a task at the end.
func (m *MockTaskRepository) Append(task *domain.Task) (int, error) {
	if m.AppendErr != nil {
		return 0, m.AppendErr
	}
	m.Tasks = append(m.Tasks, task.Clone())
	m.Saves++
	return len(m.Tasks), nil
}

// Update replaces the task at position.
func (m *MockTaskRepository) Update(position int, task *domain.Task) error {
	if m.UpdateErr != nil {
		return m.UpdateErr
	}
	if position < 1 || position > len(m.Tasks) {
		return domain.ErrInvalidPosition
	}
	m.Tasks[position-1] = task.Clone()
	m.Saves++
	return nil
}

// Delete removes the task at position.
func (m *MockTaskRepository) Delete(position int) (*domain.Task, error) {
	if m.DeleteErr != nil {
		return nil, m.DeleteErr
	}
	if position < 1 || position > len(m.Tasks) {
		return nil, domain.ErrInvalidPosition
	}
	removed := m.Tasks[position-1]
	m.Tasks = append(m.Tasks[:position-1], m.Tasks[position:]...)
	m.Saves++
	return removed, nil
}

// Reload swaps in OnDisk, if set, and counts the call.
func (m *MockTaskRepository) Reload() error {
	m.Reloads++
	if m.ReloadErr != nil {
		return m.ReloadErr
	}
	if m.OnDisk != nil {
		m.Tasks = m.OnDisk
		m.OnDisk = nil
	}
	return nil
}

// LogEntry is one call recorded by MockLogger.
type LogEntry struct {
	Level    string
	Category string
	Msg      string
}

// MockLogger records log calls.
type MockLogger struct {
	Entries []LogEntry
	mu      sync.Mutex
}

func (m *MockLogger) record(level, category, msg string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Entries = append(m.Entries, LogEntry{Level: level, Category: category, Msg: msg})
}

// Debug records a debug entry.
func (m *MockLogger) Debug(category, msg string) { m.record("DEBUG", category, msg) }

// Info records an info entry.
func (m *MockLogger) Info(category, msg string) { m.record("INFO", category, msg) }

// Warn records a warning entry.
func (m *MockLogger) Warn(category, msg string) { m.record("WARN", category, msg) }

// Error records an error entry.
func (m *MockLogger) Error(category, msg string) { m.record("ERROR", category, msg) }

// ByLevel returns the recorded entries with the given level.
func (m *MockLogger) ByLevel(level string) []LogEntry {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []LogEntry
	for _, e := range m.Entries {
		if e.Level == level {
			out = append(out, e)
		}
	}
	return out
}

// Compile-time interface checks.
var (
	_ domain.Clock          = (*MockClock)(nil)
	_ domain.IDGenerator    = (*MockIDGenerator)(nil)
	_ domain.TaskRepository = (*MockTaskRepository)(nil)
	_ domain.Logger         = (*MockLogger)(nil)
)
