package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/runoshun/todo/internal/domain"
)

// CompleteTaskInput contains the parameters for completing a task.
type CompleteTaskInput struct {
	Position int // 1-based position in the full list
}

// CompleteTaskOutput contains the result of completing a task.
type CompleteTaskOutput struct {
	Task             *domain.Task
	AlreadyCompleted bool // The task was completed before this call
}

// CompleteTask is the use case for marking a task as completed.
type CompleteTask struct {
	tasks  domain.TaskRepository
	logger domain.Logger
}

// NewCompleteTask creates a new CompleteTask use case.
func NewCompleteTask(tasks domain.TaskRepository, logger domain.Logger) *CompleteTask {
	return &CompleteTask{
		tasks:  tasks,
		logger: logger,
	}
}

// Execute marks the task at the given position as completed.
// An out of range position returns domain.ErrInvalidPosition and changes nothing.
func (uc *CompleteTask) Execute(_ context.Context, in CompleteTaskInput) (*CompleteTaskOutput, error) {
	task, err := uc.tasks.Get(in.Position)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidPosition) {
			return nil, err
		}
		return nil, fmt.Errorf("get task: %w", err)
	}

	changed := task.Complete()
	if err := uc.tasks.Update(in.Position, task); err != nil {
		return nil, fmt.Errorf("save task: %w", err)
	}

	if uc.logger != nil && changed {
		uc.logger.Info("task", fmt.Sprintf("completed #%d %s: %q", in.Position, task.ID, task.Title))
	}

	return &CompleteTaskOutput{Task: task, AlreadyCompleted: !changed}, nil
}
