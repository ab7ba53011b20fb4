package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/todo/internal/domain"
)

// GetStatisticsOutput contains the task counts.
type GetStatisticsOutput struct {
	Statistics domain.Statistics
}

// GetStatistics is the use case for summarizing task completion.
type GetStatistics struct {
	tasks domain.TaskRepository
}

// NewGetStatistics creates a new GetStatistics use case.
func NewGetStatistics(tasks domain.TaskRepository) *GetStatistics {
	return &GetStatistics{
		tasks: tasks,
	}
}

// Execute counts total, completed and pending tasks.
func (uc *GetStatistics) Execute(_ context.Context) (*GetStatisticsOutput, error) {
	tasks, err := uc.tasks.List()
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	return &GetStatisticsOutput{Statistics: domain.ComputeStatistics(tasks)}, nil
}
