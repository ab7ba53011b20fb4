package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/runoshun/todo/internal/domain"
)

// DeleteTaskInput contains the parameters for deleting a task.
type DeleteTaskInput struct {
	Position int // 1-based position in the full list
}

// DeleteTaskOutput contains the result of deleting a task.
type DeleteTaskOutput struct {
	Task *domain.Task // The removed task
}

// DeleteTask is the use case for deleting a task.
type DeleteTask struct {
	tasks  domain.TaskRepository
	logger domain.Logger
}

// NewDeleteTask creates a new DeleteTask use case.
func NewDeleteTask(tasks domain.TaskRepository, logger domain.Logger) *DeleteTask {
	return &DeleteTask{
		tasks:  tasks,
		logger: logger,
	}
}

// Execute removes the task at the given position. Later tasks move down by one.
// An out of range position returns domain.ErrInvalidPosition and changes nothing.
func (uc *DeleteTask) Execute(_ context.Context, in DeleteTaskInput) (*DeleteTaskOutput, error) {
	task, err := uc.tasks.Delete(in.Position)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidPosition) {
			return nil, err
		}
		return nil, fmt.Errorf("delete task: %w", err)
	}

	if uc.logger != nil {
		uc.logger.Info("task", fmt.Sprintf("deleted #%d %s: %q", in.Position, task.ID, task.Title))
	}

	return &DeleteTaskOutput{Task: task}, nil
}
