package tui

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/runoshun/todo/internal/app"
	"github.com/runoshun/todo/internal/domain"
	"github.com/runoshun/todo/internal/infra/jsonstore"
	"github.com/runoshun/todo/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 3, 14, 9, 30, 0, 0, time.Local)

func testTask(title string, completed bool) *domain.Task {
	t := domain.NewTask("id-"+title, title, "", domain.PriorityMedium, testNow)
	t.Completed = completed
	return t
}

// newTestModel creates a Model over a mock repository with tasks loaded.
func newTestModel(t *testing.T, repo *testutil.MockTaskRepository) *Model {
	t.Helper()
	c := app.NewWithDeps(
		app.Config{},
		repo,
		&testutil.MockIDGenerator{},
		&testutil.MockClock{NowTime: testNow},
		&testutil.MockLogger{},
	)
	m := New(c)
	run(t, m, m.Init())
	return m
}

// run executes cmd and feeds the resulting TUI messages back into the model
// until no follow-up command remains.
func run(t *testing.T, m *Model, cmd tea.Cmd) {
	t.Helper()
	for i := 0; cmd != nil; i++ {
		require.Less(t, i, 10, "command chain did not settle")
		msg := cmd()
		if _, ok := msg.(Msg); !ok {
			return
		}
		_, cmd = m.Update(msg)
	}
}

// press sends a key to the model and returns the resulting command.
func press(m *Model, k string) tea.Cmd {
	var msg tea.KeyMsg
	switch k {
	case "enter":
		msg = tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		msg = tea.KeyMsg{Type: tea.KeyEsc}
	case "up":
		msg = tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		msg = tea.KeyMsg{Type: tea.KeyDown}
	case " ":
		msg = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
	}
	_, cmd := m.Update(msg)
	return cmd
}

func TestInit_LoadsPendingTasks(t *testing.T) {
	repo := testutil.NewMockTaskRepository(testTask("A", true), testTask("B", false))

	m := newTestModel(t, repo)

	require.Len(t, m.entries, 1)
	assert.Equal(t, 2, m.entries[0].Position)
	assert.Equal(t, 2, m.total)
}

func TestUpdate_Navigation(t *testing.T) {
	repo := testutil.NewMockTaskRepository(testTask("A", false), testTask("B", false), testTask("C", false))
	m := newTestModel(t, repo)

	press(m, "j")
	press(m, "down")
	press(m, "down")
	assert.Equal(t, 2, m.cursor, "cursor stops at the last entry")

	press(m, "k")
	assert.Equal(t, 1, m.cursor)
	press(m, "up")
	press(m, "up")
	assert.Equal(t, 0, m.cursor, "cursor stops at the first entry")
}

func TestUpdate_CompleteSelected(t *testing.T) {
	repo := testutil.NewMockTaskRepository(testTask("A", false), testTask("B", false))
	m := newTestModel(t, repo)

	press(m, "j")
	run(t, m, press(m, " "))

	assert.True(t, repo.Tasks[1].Completed)
	assert.False(t, repo.Tasks[0].Completed)
	assert.Equal(t, "Completed #2: B", m.status)
	require.Len(t, m.entries, 1, "completed task is hidden from the pending view")
	assert.Equal(t, 0, m.cursor)
}

func TestUpdate_CompleteWithEnter(t *testing.T) {
	repo := testutil.NewMockTaskRepository(testTask("A", false))
	m := newTestModel(t, repo)

	run(t, m, press(m, "enter"))

	assert.True(t, repo.Tasks[0].Completed)
	assert.Empty(t, m.entries)
}

func TestUpdate_DeleteConfirm(t *testing.T) {
	repo := testutil.NewMockTaskRepository(testTask("A", false), testTask("B", false))
	m := newTestModel(t, repo)

	press(m, "d")
	assert.Equal(t, ModeConfirm, m.mode)
	assert.Equal(t, 1, m.confirmPosition)

	run(t, m, press(m, "y"))

	assert.Equal(t, ModeNormal, m.mode)
	require.Len(t, repo.Tasks, 1)
	assert.Equal(t, "B", repo.Tasks[0].Title)
	assert.Equal(t, "Deleted #1: A", m.status)
	require.Len(t, m.entries, 1)
	assert.Equal(t, 1, m.entries[0].Position)
}

func TestUpdate_DeleteCancel(t *testing.T) {
	repo := testutil.NewMockTaskRepository(testTask("A", false))
	m := newTestModel(t, repo)

	press(m, "d")
	cmd := press(m, "n")

	assert.Nil(t, cmd)
	assert.Equal(t, ModeNormal, m.mode)
	assert.Len(t, repo.Tasks, 1)
}

func TestUpdate_ToggleShowAll(t *testing.T) {
	repo := testutil.NewMockTaskRepository(testTask("A", true), testTask("B", false))
	m := newTestModel(t, repo)
	require.Len(t, m.entries, 1)

	run(t, m, press(m, "a"))
	assert.True(t, m.showAll)
	assert.Len(t, m.entries, 2)

	run(t, m, press(m, "a"))
	assert.False(t, m.showAll)
	assert.Len(t, m.entries, 1)
}

func TestUpdate_AddTask(t *testing.T) {
	repo := testutil.NewMockTaskRepository()
	m := newTestModel(t, repo)

	press(m, "n")
	assert.Equal(t, ModeInputTitle, m.mode)
	assert.True(t, m.mode.IsInputMode())

	// Keys that have bindings in normal mode are typed as text here.
	press(m, "Buy milk q")
	run(t, m, press(m, "enter"))

	assert.Equal(t, ModeNormal, m.mode)
	require.Len(t, repo.Tasks, 1)
	assert.Equal(t, "Buy milk q", repo.Tasks[0].Title)
	assert.Equal(t, domain.PriorityMedium, repo.Tasks[0].Priority)
	assert.Equal(t, "Added #1: Buy milk q", m.status)
	assert.Len(t, m.entries, 1)
	assert.Empty(t, m.titleInput.Value())
}

func TestUpdate_AddTaskEmptyTitle(t *testing.T) {
	repo := testutil.NewMockTaskRepository()
	m := newTestModel(t, repo)

	press(m, "n")
	press(m, "   ")
	cmd := press(m, "enter")

	assert.Nil(t, cmd)
	assert.Equal(t, ModeInputTitle, m.mode)
	assert.ErrorIs(t, m.err, domain.ErrEmptyTitle)
	assert.Empty(t, repo.Tasks)
}

func TestUpdate_AddTaskEscape(t *testing.T) {
	repo := testutil.NewMockTaskRepository()
	m := newTestModel(t, repo)

	press(m, "n")
	press(m, "draft")
	press(m, "esc")

	assert.Equal(t, ModeNormal, m.mode)
	assert.Empty(t, m.titleInput.Value())
	assert.Empty(t, repo.Tasks)
}

func TestUpdate_HelpToggle(t *testing.T) {
	m := newTestModel(t, testutil.NewMockTaskRepository())

	press(m, "?")
	assert.Equal(t, ModeHelp, m.mode)

	cmd := press(m, "q")
	assert.Nil(t, cmd, "q closes help instead of quitting")
	assert.Equal(t, ModeNormal, m.mode)
}

func TestUpdate_Quit(t *testing.T) {
	m := newTestModel(t, testutil.NewMockTaskRepository())

	cmd := press(m, "q")

	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestUpdate_EmptyListIgnoresActions(t *testing.T) {
	m := newTestModel(t, testutil.NewMockTaskRepository())

	assert.Nil(t, press(m, " "))
	assert.Nil(t, press(m, "d"))
	assert.Equal(t, ModeNormal, m.mode)
}

func TestUpdate_ErrorFromUseCase(t *testing.T) {
	repo := testutil.NewMockTaskRepository(testTask("A", false))
	repo.UpdateErr = errors.New("disk full")
	m := newTestModel(t, repo)

	run(t, m, press(m, " "))

	require.Error(t, m.err)
	assert.Contains(t, m.err.Error(), "disk full")
	assert.Equal(t, ModeNormal, m.mode)

	// The next key press clears the error.
	press(m, "j")
	assert.NoError(t, m.err)
}

func TestUpdate_WindowSize(t *testing.T) {
	m := newTestModel(t, testutil.NewMockTaskRepository())

	_, cmd := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})

	assert.Nil(t, cmd)
	assert.Equal(t, 80, m.width)
	assert.Equal(t, 24, m.height)
}

// newStoreModel creates a Model over a JSON store in a temp directory.
func newStoreModel(t *testing.T) (*Model, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tasks.json")
	logger := &testutil.MockLogger{}
	c := app.NewWithDeps(
		app.Config{StorePath: path},
		jsonstore.NewOs(path, logger),
		&testutil.MockIDGenerator{},
		&testutil.MockClock{NowTime: testNow},
		logger,
	)
	m := New(c)
	run(t, m, m.Init())
	return m, path
}

// writeTasksFile replaces the task file as another process would.
func writeTasksFile(t *testing.T, path string, tasks ...*domain.Task) {
	t.Helper()
	content, err := domain.MarshalTasksJSON(tasks)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, content, 0o600))
}

func TestUpdate_RefreshReadsFile(t *testing.T) {
	m, path := newStoreModel(t)
	require.Empty(t, m.entries)

	writeTasksFile(t, path, testTask("External", false))
	run(t, m, press(m, "r"))

	require.Len(t, m.entries, 1)
	assert.Equal(t, "External", m.entries[0].Task.Title)
	assert.Equal(t, 1, m.total)
	assert.NoError(t, m.err)
}

func TestUpdate_MutationAfterRefreshKeepsExternalTasks(t *testing.T) {
	m, path := newStoreModel(t)

	writeTasksFile(t, path, testTask("External", false))
	run(t, m, press(m, "r"))
	press(m, "n")
	press(m, "Mine")
	run(t, m, press(m, "enter"))

	assert.Equal(t, "Added #2: Mine", m.status)
	reopened := jsonstore.NewOs(path, nil)
	tasks, err := reopened.List()
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	assert.Equal(t, "External", tasks[0].Title)
	assert.Equal(t, "Mine", tasks[1].Title)
}

func TestUpdate_RefreshMalformedFile(t *testing.T) {
	m, path := newStoreModel(t)
	writeTasksFile(t, path, testTask("A", false))
	run(t, m, press(m, "r"))
	require.Len(t, m.entries, 1)

	require.NoError(t, os.WriteFile(path, []byte(`[{"id": "1",`), 0o600))
	run(t, m, press(m, "r"))

	assert.Empty(t, m.entries, "a broken file reads as empty, as on startup")
	require.Error(t, m.err)
	assert.Contains(t, m.err.Error(), "reload tasks")
}

func TestUpdate_FileChangedReloads(t *testing.T) {
	m, path := newStoreModel(t)
	ch := make(chan struct{}, 1)
	m.WatchChanges(ch)

	writeTasksFile(t, path, testTask("A", false), testTask("B", false))
	ch <- struct{}{}
	msg := m.waitForChange()()
	require.Equal(t, MsgFileChanged{}, msg)

	_, cmd := m.Update(msg)
	require.NotNil(t, cmd)

	// Closing the channel ends the follow-up wait.
	close(ch)
	batch, ok := cmd().(tea.BatchMsg)
	require.True(t, ok)
	for _, c := range batch {
		if loaded, ok := c().(MsgTasksLoaded); ok {
			m.Update(loaded)
		}
	}

	require.Len(t, m.entries, 2)
	assert.Equal(t, "B", m.entries[1].Task.Title)
}
