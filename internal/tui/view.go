package tui

import (
	"fmt"
	"strings"
)

// View renders the model.
func (m *Model) View() string {
	var b strings.Builder

	// Header
	b.WriteString(m.viewHeader())
	b.WriteString("\n\n")

	// Task list
	b.WriteString(m.viewTasks())
	b.WriteString("\n")

	// Footer
	b.WriteString(m.viewFooter())

	return m.styles.App.Render(b.String())
}

func (m *Model) viewHeader() string {
	scope := "pending"
	if m.showAll {
		scope = "all"
	}
	info := fmt.Sprintf("%s · %d of %d shown", scope, len(m.entries), m.total)
	return m.styles.Header.Render("todo") + "  " + m.styles.HeaderInfo.Render(info)
}

func (m *Model) viewTasks() string {
	if len(m.entries) == 0 {
		if m.total == 0 {
			return m.styles.Empty.Render("No tasks found.") + "\n"
		}
		return m.styles.Empty.Render("No pending tasks. Press a to show all.") + "\n"
	}

	var b strings.Builder
	for i, e := range m.entries {
		selected := i == m.cursor

		cursor := "  "
		if selected {
			cursor = m.styles.Cursor.Render("▸ ")
		}

		status := "○"
		if e.Task.Completed {
			status = "✓"
		}
		line := fmt.Sprintf("%d. %s %s %s", e.Position, status, e.Task.Priority.Icon(), e.Task.Title)

		style := m.styles.TaskNormal
		switch {
		case selected:
			style = m.styles.TaskSelected
		case e.Task.Completed:
			style = m.styles.TaskDone
		}

		b.WriteString(cursor + style.Render(line) + "\n")
		if e.Task.Description != "" {
			b.WriteString("      " + m.styles.TaskDesc.Render(e.Task.Description) + "\n")
		}
	}
	return b.String()
}

func (m *Model) viewFooter() string {
	switch m.mode {
	case ModeInputTitle:
		line := m.styles.InputPrompt.Render("New task: ") + m.titleInput.View()
		if m.err != nil {
			line += "\n" + m.styles.ErrorMsg.Render("Error: "+m.err.Error())
		}
		return line + "\n" + m.styles.Help.Render("enter save · esc cancel")

	case ModeConfirm:
		title := ""
		for _, e := range m.entries {
			if e.Position == m.confirmPosition {
				title = e.Task.Title
				break
			}
		}
		return m.styles.ConfirmMsg.Render(fmt.Sprintf("Delete #%d %q? (y/n)", m.confirmPosition, title))

	case ModeHelp:
		h := m.help
		h.ShowAll = true
		return h.View(m.keys)

	case ModeNormal:
	}

	var b strings.Builder
	if m.err != nil {
		b.WriteString(m.styles.ErrorMsg.Render("Error: "+m.err.Error()) + "\n")
	} else if m.status != "" {
		b.WriteString(m.styles.StatusMsg.Render(m.status) + "\n")
	}
	b.WriteString(m.help.View(m.keys))
	return b.String()
}
