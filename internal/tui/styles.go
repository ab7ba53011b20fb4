package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/runoshun/todo/internal/domain"
)

// Colors defines the color palette for the TUI.
var Colors = struct {
	// Base colors
	Primary lipgloss.Color
	Muted   lipgloss.Color
	Error   lipgloss.Color
	Success lipgloss.Color
	Warning lipgloss.Color

	// Title/text colors
	TitleNormal   lipgloss.Color
	TitleSelected lipgloss.Color
	TitleDone     lipgloss.Color
	DescNormal    lipgloss.Color

	// Priority colors
	High   lipgloss.Color
	Medium lipgloss.Color
	Low    lipgloss.Color
}{
	Primary: lipgloss.Color("#6C5CE7"), // Purple
	Muted:   lipgloss.Color("#636E72"), // Gray
	Error:   lipgloss.Color("#D63031"), // Red
	Success: lipgloss.Color("#00B894"), // Green
	Warning: lipgloss.Color("#FDCB6E"), // Yellow

	TitleNormal:   lipgloss.Color("#DFE6E9"), // Light gray
	TitleSelected: lipgloss.Color("#FFEAA7"), // Yellow (selected)
	TitleDone:     lipgloss.Color("#636E72"), // Gray
	DescNormal:    lipgloss.Color("#636E72"), // Gray

	High:   lipgloss.Color("#D63031"),
	Medium: lipgloss.Color("#FDCB6E"),
	Low:    lipgloss.Color("#00B894"),
}

// Styles contains all the lipgloss styles for the TUI.
type Styles struct {
	// App
	App lipgloss.Style

	// Header
	Header     lipgloss.Style
	HeaderInfo lipgloss.Style

	// Task list
	TaskNormal   lipgloss.Style
	TaskSelected lipgloss.Style
	TaskDone     lipgloss.Style
	TaskDesc     lipgloss.Style
	Cursor       lipgloss.Style
	Empty        lipgloss.Style

	// Priority badges
	PriorityHigh   lipgloss.Style
	PriorityMedium lipgloss.Style
	PriorityLow    lipgloss.Style

	// Footer
	InputPrompt lipgloss.Style
	ConfirmMsg  lipgloss.Style
	StatusMsg   lipgloss.Style
	ErrorMsg    lipgloss.Style
	Help        lipgloss.Style
}

// DefaultStyles returns the default styles.
func DefaultStyles() Styles {
	return Styles{
		App: lipgloss.NewStyle().Padding(1, 2),

		Header: lipgloss.NewStyle().
			Foreground(Colors.Primary).
			Bold(true),
		HeaderInfo: lipgloss.NewStyle().
			Foreground(Colors.Muted),

		TaskNormal: lipgloss.NewStyle().
			Foreground(Colors.TitleNormal),
		TaskSelected: lipgloss.NewStyle().
			Foreground(Colors.TitleSelected).
			Bold(true),
		TaskDone: lipgloss.NewStyle().
			Foreground(Colors.TitleDone).
			Strikethrough(true),
		TaskDesc: lipgloss.NewStyle().
			Foreground(Colors.DescNormal),
		Cursor: lipgloss.NewStyle().
			Foreground(Colors.Primary).
			Bold(true),
		Empty: lipgloss.NewStyle().
			Foreground(Colors.Muted).
			Italic(true),

		PriorityHigh:   lipgloss.NewStyle().Foreground(Colors.High),
		PriorityMedium: lipgloss.NewStyle().Foreground(Colors.Medium),
		PriorityLow:    lipgloss.NewStyle().Foreground(Colors.Low),

		InputPrompt: lipgloss.NewStyle().
			Foreground(Colors.Primary).
			Bold(true),
		ConfirmMsg: lipgloss.NewStyle().
			Foreground(Colors.Warning).
			Bold(true),
		StatusMsg: lipgloss.NewStyle().
			Foreground(Colors.Success),
		ErrorMsg: lipgloss.NewStyle().
			Foreground(Colors.Error),
		Help: lipgloss.NewStyle().
			Foreground(Colors.Muted),
	}
}

// PriorityStyle returns the style for a priority label.
func (s Styles) PriorityStyle(p domain.Priority) lipgloss.Style {
	switch p.Normalize() {
	case domain.PriorityHigh:
		return s.PriorityHigh
	case domain.PriorityLow:
		return s.PriorityLow
	case domain.PriorityMedium:
		return s.PriorityMedium
	}
	return s.TaskDesc
}
