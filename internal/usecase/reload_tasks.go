package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/todo/internal/domain"
)

// ReloadTasks is the use case for re-reading the task file after it
// changed outside this process.
type ReloadTasks struct {
	tasks  domain.TaskRepository
	logger domain.Logger
}

// NewReloadTasks creates a new ReloadTasks use case.
func NewReloadTasks(tasks domain.TaskRepository, logger domain.Logger) *ReloadTasks {
	return &ReloadTasks{
		tasks:  tasks,
		logger: logger,
	}
}

// Execute replaces the in-memory tasks with the file contents.
// On a read failure the repository is left empty, as on startup.
func (uc *ReloadTasks) Execute(_ context.Context) error {
	if err := uc.tasks.Reload(); err != nil {
		return fmt.Errorf("reload tasks: %w", err)
	}
	if uc.logger != nil {
		uc.logger.Debug("task", "reloaded task file")
	}
	return nil
}
