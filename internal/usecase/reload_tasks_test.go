package usecase

import (
	"context"
	"testing"

	"github.com/runoshun/todo/internal/domain"
	"github.com/runoshun/todo/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReloadTasks_Execute(t *testing.T) {
	repo := testutil.NewMockTaskRepository(task("A", false))
	repo.OnDisk = []*domain.Task{task("A", false), task("B", false)}
	uc := NewReloadTasks(repo, &testutil.MockLogger{})

	require.NoError(t, uc.Execute(context.Background()))

	assert.Equal(t, 1, repo.Reloads)
	out, err := NewListTasks(repo).Execute(context.Background(), ListTasksInput{})
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, entryTitles(out.Entries))
}

func TestReloadTasks_Execute_Error(t *testing.T) {
	repo := testutil.NewMockTaskRepository()
	repo.ReloadErr = assert.AnError
	uc := NewReloadTasks(repo, nil)

	err := uc.Execute(context.Background())

	require.ErrorIs(t, err, assert.AnError)
	assert.Contains(t, err.Error(), "reload tasks")
}
