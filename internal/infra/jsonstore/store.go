// Package jsonstore provides a JSON file-based implementation of TaskRepository.
//
// The whole task sequence is held in memory. It is read when the store is
// created or reloaded and rewritten in full after every mutation.
package jsonstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/runoshun/todo/internal/domain"
	"github.com/spf13/afero"
)

const logCategory = "store"

// taskRecord is the on-disk shape of a task. Pointer fields let a missing
// key be told apart from a zero value.
type taskRecord struct {
	ID          *string `json:"id" validate:"required"`
	Title       *string `json:"title" validate:"required"`
	Description *string `json:"description" validate:"required"`
	Priority    *string `json:"priority" validate:"required"`
	Completed   *bool   `json:"completed" validate:"required"`
	CreatedAt   *string `json:"created_at" validate:"required"`
}

// toTask converts the record, failing if any key was absent.
func (r *taskRecord) toTask() (*domain.Task, error) {
	if err := domain.Validate(r); err != nil {
		return nil, err
	}
	return &domain.Task{
		ID:          *r.ID,
		Title:       *r.Title,
		Description: *r.Description,
		Priority:    domain.Priority(*r.Priority),
		Completed:   *r.Completed,
		CreatedAt:   *r.CreatedAt,
	}, nil
}

// Store implements domain.TaskRepository using a JSON file.
type Store struct {
	fs     afero.Fs
	logger domain.Logger
	path   string
	tasks  []*domain.Task
	mu     sync.Mutex
}

// New creates a Store bound to path on fs and loads it.
// A missing or unreadable file yields an empty store; the reason is logged.
func New(fs afero.Fs, path string, logger domain.Logger) *Store {
	s := &Store{
		fs:     fs,
		logger: logger,
		path:   path,
	}
	_ = s.load()
	return s
}

// NewOs creates a Store on the operating system filesystem.
func NewOs(path string, logger domain.Logger) *Store {
	return New(afero.NewOsFs(), path, logger)
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// Len returns the number of tasks.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.tasks)
}

// Reload re-reads the file, replacing the in-memory sequence.
// A failed read falls back to an empty sequence as on startup, and the
// error is returned so the caller can report it.
func (s *Store) Reload() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

// List returns copies of all tasks in insertion order.
func (s *Store) List() ([]*domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	tasks := make([]*domain.Task, 0, len(s.tasks))
	for _, t := range s.tasks {
		tasks = append(tasks, t.Clone())
	}
	return tasks, nil
}

// Get returns a copy of the task at the 1-based position.
func (s *Store) Get(position int) (*domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkPosition(position); err != nil {
		return nil, err
	}
	return s.tasks[position-1].Clone(), nil
}

// Append adds a task at the end and persists the store.
func (s *Store) Append(task *domain.Task) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tasks = append(s.tasks, task.Clone())
	if err := s.save(); err != nil {
		return 0, err
	}
	return len(s.tasks), nil
}

// Update replaces the task at the 1-based position and persists the store.
func (s *Store) Update(position int, task *domain.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkPosition(position); err != nil {
		return err
	}
	s.tasks[position-1] = task.Clone()
	return s.save()
}

// Delete removes the task at the 1-based position and persists the store.
func (s *Store) Delete(position int) (*domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkPosition(position); err != nil {
		return nil, err
	}
	removed := s.tasks[position-1]
	s.tasks = append(s.tasks[:position-1], s.tasks[position:]...)
	if err := s.save(); err != nil {
		return nil, err
	}
	return removed, nil
}

func (s *Store) checkPosition(position int) error {
	if position < 1 || position > len(s.tasks) {
		return fmt.Errorf("%w: %d", domain.ErrInvalidPosition, position)
	}
	return nil
}

// load reads the file into memory, falling back to an empty sequence.
func (s *Store) load() error {
	tasks, err := s.read()
	if err != nil {
		s.logWarn(fmt.Sprintf("starting with an empty task list: %v", err))
		s.tasks = nil
		return err
	}
	s.tasks = tasks
	return nil
}

func (s *Store) read() ([]*domain.Task, error) {
	content, err := afero.ReadFile(s.fs, s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read store file: %w", err)
	}

	var records []*taskRecord
	if err := json.Unmarshal(content, &records); err != nil {
		return nil, fmt.Errorf("parse store file: %w", err)
	}

	tasks := make([]*domain.Task, 0, len(records))
	for i, r := range records {
		if r == nil {
			return nil, fmt.Errorf("parse store file: task %d is null", i+1)
		}
		task, err := r.toTask()
		if err != nil {
			return nil, fmt.Errorf("parse store file: task %d: %w", i+1, err)
		}
		tasks = append(tasks, task)
	}
	return tasks, nil
}

// save writes the full sequence, replacing the file.
func (s *Store) save() error {
	content, err := domain.MarshalTasksJSON(s.tasks)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := s.fs.MkdirAll(dir, 0o750); err != nil {
			return fmt.Errorf("create directory: %w", err)
		}
	}

	// Write to temp file first, then rename over the store file
	tmpPath := s.path + ".tmp"
	if err := afero.WriteFile(s.fs, tmpPath, content, 0o600); err != nil {
		s.logError(fmt.Sprintf("write %s: %v", tmpPath, err))
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := s.fs.Rename(tmpPath, s.path); err != nil {
		_ = s.fs.Remove(tmpPath) // Clean up
		s.logError(fmt.Sprintf("rename %s: %v", tmpPath, err))
		return fmt.Errorf("rename temp file: %w", err)
	}

	s.logDebug(fmt.Sprintf("saved %d tasks to %s", len(s.tasks), s.path))
	return nil
}

func (s *Store) logDebug(msg string) {
	if s.logger != nil {
		s.logger.Debug(logCategory, msg)
	}
}

func (s *Store) logWarn(msg string) {
	if s.logger != nil {
		s.logger.Warn(logCategory, msg)
	}
}

func (s *Store) logError(msg string) {
	if s.logger != nil {
		s.logger.Error(logCategory, msg)
	}
}

// Ensure Store implements TaskRepository.
var _ domain.TaskRepository = (*Store)(nil)
