package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/todo/internal/domain"
)

// ListTasksInput contains the parameters for listing tasks.
type ListTasksInput struct {
	ShowCompleted bool // Include completed tasks
}

// TaskEntry is a task together with its position in the full list.
type TaskEntry struct {
	Task     *domain.Task
	Position int
}

// ListTasksOutput contains the result of listing tasks.
type ListTasksOutput struct {
	Entries []TaskEntry // Tasks to display, in list order
	Total   int         // Number of tasks in the full list, shown or not
}

// ListTasks is the use case for listing tasks.
type ListTasks struct {
	tasks domain.TaskRepository
}

// NewListTasks creates a new ListTasks use case.
func NewListTasks(tasks domain.TaskRepository) *ListTasks {
	return &ListTasks{
		tasks: tasks,
	}
}

// Execute lists tasks in order.
// Positions always index the full list, so hidden completed tasks leave
// gaps in the numbering; the shown number is the one CompleteTask and
// DeleteTask accept.
func (uc *ListTasks) Execute(_ context.Context, in ListTasksInput) (*ListTasksOutput, error) {
	tasks, err := uc.tasks.List()
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}

	entries := make([]TaskEntry, 0, len(tasks))
	for i, t := range tasks {
		if !in.ShowCompleted && t.Completed {
			continue
		}
		entries = append(entries, TaskEntry{Task: t, Position: i + 1})
	}

	return &ListTasksOutput{Entries: entries, Total: len(tasks)}, nil
}
