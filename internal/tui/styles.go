package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/tcrtodo/tcrtodo/internal/domain"
)

// Colors defines the color palette for the TUI.
var Colors = struct {
	Primary lipgloss.Color
	Muted   lipgloss.Color
	Error   lipgloss.Color
	Success lipgloss.Color
	Warning lipgloss.Color

	Selected lipgloss.Color

	Pending lipgloss.Color
	Working lipgloss.Color
	Done    lipgloss.Color
}{
	Primary: lipgloss.Color("#6C5CE7"), // Purple
	Muted:   lipgloss.Color("#636E72"), // Gray
	Error:   lipgloss.Color("#D63031"), // Red
	Success: lipgloss.Color("#00B894"), // Green
	Warning: lipgloss.Color("#FDCB6E"), // Yellow

	Selected: lipgloss.Color("#FFEAA7"), // Yellow (selected row)

	Pending: lipgloss.Color("#74B9FF"), // Light blue
	Working: lipgloss.Color("#FDCB6E"), // Yellow
	Done:    lipgloss.Color("#00B894"), // Green
}

// Styles contains all the lipgloss styles for the TUI.
type Styles struct {
	App    lipgloss.Style
	Header lipgloss.Style
	Dirty  lipgloss.Style

	TaskNormal   lipgloss.Style
	TaskSelected lipgloss.Style

	StatusPending lipgloss.Style
	StatusWorking lipgloss.Style
	StatusDone    lipgloss.Style

	InputPrompt lipgloss.Style
	ConfirmBox  lipgloss.Style

	Notice   lipgloss.Style
	ErrorMsg lipgloss.Style
	Footer   lipgloss.Style
}

// DefaultStyles returns the default styles.
func DefaultStyles() Styles {
	return Styles{
		App:    lipgloss.NewStyle().Padding(1, 2),
		Header: lipgloss.NewStyle().Bold(true).Foreground(Colors.Primary),
		Dirty:  lipgloss.NewStyle().Foreground(Colors.Warning),

		TaskNormal:   lipgloss.NewStyle(),
		TaskSelected: lipgloss.NewStyle().Bold(true).Foreground(Colors.Selected),

		StatusPending: lipgloss.NewStyle().Foreground(Colors.Pending),
		StatusWorking: lipgloss.NewStyle().Foreground(Colors.Working),
		StatusDone:    lipgloss.NewStyle().Foreground(Colors.Done),

		InputPrompt: lipgloss.NewStyle().Foreground(Colors.Success),
		ConfirmBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Colors.Warning).
			Padding(0, 1),

		Notice:   lipgloss.NewStyle().Foreground(Colors.Success),
		ErrorMsg: lipgloss.NewStyle().Foreground(Colors.Error),
		Footer:   lipgloss.NewStyle().Foreground(Colors.Muted),
	}
}

// StatusStyle returns the style for a task status marker.
func (s Styles) StatusStyle(status domain.Status) lipgloss.Style {
	switch status {
	case domain.StatusWorking:
		return s.StatusWorking
	case domain.StatusDone:
		return s.StatusDone
	default:
		return s.StatusPending
	}
}
