package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/runoshun/todo/internal/app"
	"github.com/runoshun/todo/internal/usecase"
)

// Model is the main bubbletea model for the TUI.
type Model struct {
	// Dependencies (pointers first for alignment)
	container *app.Container
	err       error

	// State (slices - contain pointers)
	entries []usecase.TaskEntry
	status  string
	changes <-chan struct{} // Task file change signals (nil = not watching)

	// Components (structs with pointers)
	keys       KeyMap
	styles     Styles
	help       help.Model
	titleInput textinput.Model

	// Numeric state (smaller types last)
	mode            Mode
	total           int
	cursor          int
	width           int
	height          int
	confirmPosition int
	showAll         bool
}

// New creates a new TUI Model with the given container.
func New(c *app.Container) *Model {
	ti := textinput.New()
	ti.Placeholder = "Task title"
	ti.CharLimit = 200

	return &Model{
		container:  c,
		mode:       ModeNormal,
		keys:       DefaultKeyMap(),
		styles:     DefaultStyles(),
		help:       help.New(),
		titleInput: ti,
	}
}

// WatchChanges makes the model reload the list whenever a value arrives on changes.
// It must be called before the program starts.
func (m *Model) WatchChanges(changes <-chan struct{}) {
	m.changes = changes
}

// Init initializes the model and returns the initial command.
func (m *Model) Init() tea.Cmd {
	if m.changes == nil {
		return m.loadTasks()
	}
	return tea.Batch(m.loadTasks(), m.waitForChange())
}

// waitForChange returns a command that blocks until the task file changes.
func (m *Model) waitForChange() tea.Cmd {
	changes := m.changes
	return func() tea.Msg {
		if _, ok := <-changes; !ok {
			return nil
		}
		return MsgFileChanged{}
	}
}

// loadTasks returns a command that loads tasks from the repository.
func (m *Model) loadTasks() tea.Cmd {
	showAll := m.showAll
	return func() tea.Msg {
		return m.listTasks(showAll, nil)
	}
}

// reloadTasks returns a command that re-reads the task file before listing.
func (m *Model) reloadTasks() tea.Cmd {
	showAll := m.showAll
	return func() tea.Msg {
		err := m.container.ReloadTasksUseCase().Execute(context.Background())
		return m.listTasks(showAll, err)
	}
}

func (m *Model) listTasks(showAll bool, reloadErr error) tea.Msg {
	out, err := m.container.ListTasksUseCase().Execute(context.Background(), usecase.ListTasksInput{
		ShowCompleted: showAll,
	})
	if err != nil {
		return MsgError{Err: err}
	}
	return MsgTasksLoaded{Entries: out.Entries, Total: out.Total, Err: reloadErr}
}

// createTask returns a command that adds a task with the given title.
func (m *Model) createTask(title string) tea.Cmd {
	return func() tea.Msg {
		out, err := m.container.AddTaskUseCase().Execute(context.Background(), usecase.AddTaskInput{
			Title: title,
		})
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgTaskCreated{Title: out.Task.Title, Position: out.Position}
	}
}

// completeTask returns a command that completes the task at position.
func (m *Model) completeTask(position int) tea.Cmd {
	return func() tea.Msg {
		out, err := m.container.CompleteTaskUseCase().Execute(context.Background(), usecase.CompleteTaskInput{
			Position: position,
		})
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgTaskCompleted{Title: out.Task.Title, Position: position, AlreadyCompleted: out.AlreadyCompleted}
	}
}

// deleteTask returns a command that deletes the task at position.
func (m *Model) deleteTask(position int) tea.Cmd {
	return func() tea.Msg {
		out, err := m.container.DeleteTaskUseCase().Execute(context.Background(), usecase.DeleteTaskInput{
			Position: position,
		})
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgTaskDeleted{Title: out.Task.Title, Position: position}
	}
}

// SelectedEntry returns the entry under the cursor, or nil if the list is empty.
func (m *Model) SelectedEntry() *usecase.TaskEntry {
	if m.cursor < 0 || m.cursor >= len(m.entries) {
		return nil
	}
	return &m.entries[m.cursor]
}

// clampCursor keeps the cursor inside the visible entries.
func (m *Model) clampCursor() {
	if m.cursor >= len(m.entries) {
		m.cursor = len(m.entries) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}
