package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/runoshun/todo/internal/domain"
)

// Update handles messages and updates the model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case MsgTasksLoaded:
		m.entries = msg.Entries
		m.total = msg.Total
		m.clampCursor()
		if msg.Err != nil {
			m.err = msg.Err
		}
		return m, nil

	case MsgFileChanged:
		return m, tea.Batch(m.reloadTasks(), m.waitForChange())

	case MsgTaskCreated:
		m.mode = ModeNormal
		m.titleInput.Reset()
		m.titleInput.Blur()
		m.status = fmt.Sprintf("Added #%d: %s", msg.Position, msg.Title)
		return m, m.loadTasks()

	case MsgTaskCompleted:
		if msg.AlreadyCompleted {
			m.status = fmt.Sprintf("#%d is already completed", msg.Position)
		} else {
			m.status = fmt.Sprintf("Completed #%d: %s", msg.Position, msg.Title)
		}
		return m, m.loadTasks()

	case MsgTaskDeleted:
		m.mode = ModeNormal
		m.confirmPosition = 0
		m.status = fmt.Sprintf("Deleted #%d: %s", msg.Position, msg.Title)
		return m, m.loadTasks()

	case MsgError:
		m.err = msg.Err
		m.mode = ModeNormal
		m.confirmPosition = 0
		m.titleInput.Blur()
		return m, nil
	}

	return m, nil
}

// handleKeyMsg dispatches key presses by mode.
func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.mode {
	case ModeInputTitle:
		return m.handleInputTitleMode(msg)
	case ModeConfirm:
		return m.handleConfirmMode(msg)
	case ModeHelp:
		return m.handleHelpMode(msg)
	case ModeNormal:
	}
	return m.handleNormalMode(msg)
}

func (m *Model) handleNormalMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.err = nil
	m.status = ""

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.entries)-1 {
			m.cursor++
		}
		return m, nil

	case key.Matches(msg, m.keys.Complete):
		entry := m.SelectedEntry()
		if entry == nil {
			return m, nil
		}
		return m, m.completeTask(entry.Position)

	case key.Matches(msg, m.keys.Delete):
		entry := m.SelectedEntry()
		if entry == nil {
			return m, nil
		}
		m.mode = ModeConfirm
		m.confirmPosition = entry.Position
		return m, nil

	case key.Matches(msg, m.keys.New):
		m.mode = ModeInputTitle
		m.titleInput.Reset()
		return m, m.titleInput.Focus()

	case key.Matches(msg, m.keys.ToggleShowAll):
		m.showAll = !m.showAll
		return m, m.loadTasks()

	case key.Matches(msg, m.keys.Refresh):
		return m, m.reloadTasks()

	case key.Matches(msg, m.keys.Help):
		m.mode = ModeHelp
		return m, nil
	}

	return m, nil
}

func (m *Model) handleInputTitleMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.mode = ModeNormal
		m.err = nil
		m.titleInput.Reset()
		m.titleInput.Blur()
		return m, nil

	case key.Matches(msg, m.keys.Submit):
		title := strings.TrimSpace(m.titleInput.Value())
		if title == "" {
			m.err = domain.ErrEmptyTitle
			return m, nil
		}
		m.err = nil
		return m, m.createTask(title)
	}

	var cmd tea.Cmd
	m.titleInput, cmd = m.titleInput.Update(msg)
	return m, cmd
}

func (m *Model) handleConfirmMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Confirm):
		return m, m.deleteTask(m.confirmPosition)

	case key.Matches(msg, m.keys.Cancel):
		m.mode = ModeNormal
		m.confirmPosition = 0
		return m, nil
	}
	return m, nil
}

func (m *Model) handleHelpMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Help), key.Matches(msg, m.keys.Escape), key.Matches(msg, m.keys.Quit):
		m.mode = ModeNormal
	}
	return m, nil
}
