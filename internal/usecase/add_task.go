// Package usecase contains application use cases.
package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/runoshun/todo/internal/domain"
)

// AddTaskInput contains the parameters for creating a new task.
type AddTaskInput struct {
	Title       string // Task title (required)
	Description string // Task description (optional)
	Priority    string // high, medium or low (empty = medium)
}

// AddTaskOutput contains the result of creating a new task.
type AddTaskOutput struct {
	Task     *domain.Task // The created task
	Position int          // Position of the task in the list
}

// AddTask is the use case for creating a new task.
type AddTask struct {
	tasks  domain.TaskRepository
	ids    domain.IDGenerator
	clock  domain.Clock
	logger domain.Logger
}

// NewAddTask creates a new AddTask use case.
func NewAddTask(tasks domain.TaskRepository, ids domain.IDGenerator, clock domain.Clock, logger domain.Logger) *AddTask {
	return &AddTask{
		tasks:  tasks,
		ids:    ids,
		clock:  clock,
		logger: logger,
	}
}

// Execute creates a task and appends it to the end of the list.
func (uc *AddTask) Execute(_ context.Context, in AddTaskInput) (*AddTaskOutput, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, domain.ErrEmptyTitle
	}

	priority, err := domain.ParsePriority(in.Priority)
	if err != nil {
		return nil, err
	}

	task := domain.NewTask(uc.ids.NewID(), title, in.Description, priority, uc.clock.Now())
	if err := domain.ValidateTask(task); err != nil {
		return nil, fmt.Errorf("validate task: %w", err)
	}

	position, err := uc.tasks.Append(task)
	if err != nil {
		return nil, fmt.Errorf("save task: %w", err)
	}

	if uc.logger != nil {
		uc.logger.Info("task", fmt.Sprintf("created #%d %s: %q", position, task.ID, task.Title))
	}

	return &AddTaskOutput{Task: task, Position: position}, nil
}
