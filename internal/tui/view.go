package tui

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/tcrtodo/tcrtodo/internal/domain"
)

// View renders the TUI.
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	if m.mode == ModeHelp {
		return m.styles.App.Render(m.viewHelp())
	}

	var b strings.Builder

	b.WriteString(m.viewHeader())
	b.WriteString("\n\n")
	b.WriteString(m.viewTaskList())
	b.WriteString("\n")
	b.WriteString(m.viewStatusLine())

	switch m.mode {
	case ModeAddingNew:
		b.WriteString("\n")
		b.WriteString(m.viewInput("New task"))
	case ModeEditingExisting:
		b.WriteString("\n")
		b.WriteString(m.viewInput("Edit task"))
	case ModeSettingCommand:
		b.WriteString("\n")
		b.WriteString(m.viewInput("Test command (used by 't')"))
	case ModeConfirmingDelete:
		b.WriteString("\n")
		b.WriteString(m.viewConfirmDelete())
	case ModeConfirmingQuit:
		b.WriteString("\n")
		b.WriteString(m.viewConfirmQuit())
	case ModeNavigate, ModeHelp:
		// No overlay.
	}

	b.WriteString("\n")
	b.WriteString(m.viewFooter())

	return m.styles.App.Render(b.String())
}

// viewHeader renders the title line with the task file name and a dirty
// marker.
func (m *Model) viewHeader() string {
	title := m.styles.Header.Render("tcrtodo")
	file := m.styles.Footer.Render(filepath.Base(m.container.Paths.TaskFile))
	if m.container.Tasks.Dirty() {
		file += m.styles.Dirty.Render(" *")
	}
	return title + "  " + file
}

// viewTaskList renders the flat task list with the selection cursor.
func (m *Model) viewTaskList() string {
	if len(m.tasks) == 0 {
		return m.styles.Footer.Render("No tasks. Press 'a' to add one.") + "\n"
	}

	var b strings.Builder
	for i, task := range m.tasks {
		marker := m.styles.StatusStyle(task.Status).Render("[" + task.Status.Marker() + "]")
		line := fmt.Sprintf("%s %s", marker, task.Description)

		if i == m.cursor {
			b.WriteString(m.styles.TaskSelected.Render("> " + line))
		} else {
			b.WriteString(m.styles.TaskNormal.Render("  " + line))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// viewStatusLine renders transient state: running indicator, last TCR
// record, notices and errors.
func (m *Model) viewStatusLine() string {
	switch {
	case m.err != nil:
		return m.styles.ErrorMsg.Render("Error: " + m.err.Error())
	case m.tcrRunning:
		return m.styles.Notice.Render(fmt.Sprintf("Running %q ...", m.testCommand))
	case m.notice != "":
		return m.styles.Notice.Render(m.notice)
	case m.record != nil:
		return m.viewRecord()
	}
	return ""
}

// viewRecord renders the outcome of the most recent TCR run.
func (m *Model) viewRecord() string {
	r := m.record
	if r.Err != nil {
		return m.styles.ErrorMsg.Render("TCR failed: " + r.Err.Error())
	}
	switch r.Action {
	case domain.ActionCommitted:
		return m.styles.Notice.Render(fmt.Sprintf("TCR: tests passed, committed (%q)", r.Command))
	case domain.ActionReverted:
		return m.styles.ErrorMsg.Render(fmt.Sprintf("TCR: tests failed (exit %d), reverted", r.ExitCode))
	default:
		return ""
	}
}

func (m *Model) viewInput(title string) string {
	return m.styles.InputPrompt.Render(title+": ") + m.input.View()
}

func (m *Model) viewConfirmDelete() string {
	task, ok := m.container.Tasks.Get(m.confirmTaskID)
	if !ok {
		return ""
	}
	return m.styles.ConfirmBox.Render(
		fmt.Sprintf("Delete %q? (enter/y: delete, esc: cancel)", task.Description),
	)
}

func (m *Model) viewConfirmQuit() string {
	return m.styles.ConfirmBox.Render(
		"Unsaved changes. Save before quitting? (y: save+quit, n: discard, esc: cancel)",
	)
}

func (m *Model) viewHelp() string {
	var b strings.Builder
	b.WriteString(m.styles.Header.Render("Help"))
	b.WriteString("\n\n")
	b.WriteString(m.help.FullHelpView(m.keys.FullHelp()))
	b.WriteString("\n\n")
	b.WriteString(m.styles.Footer.Render("esc: back"))
	return b.String()
}

func (m *Model) viewFooter() string {
	return m.styles.Footer.Render(m.help.ShortHelpView(m.keys.ShortHelp()))
}
