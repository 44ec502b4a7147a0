package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tcrtodo/tcrtodo/internal/domain"
	"github.com/tcrtodo/tcrtodo/internal/tcr"
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

	case MsgTCRFinished:
		m.tcrRunning = false
		m.record = &msg.Record
		m.err = msg.Err
		// The snapshot made it to disk and nothing changed since, so the
		// store matches the file. Edits made during the run keep it dirty.
		if m.container.Tasks.Version() == msg.FlushedVersion && !isPersistFailure(msg.Err) {
			m.container.Tasks.MarkClean()
		}
		m.refreshTasks()
		return m, nil

	case MsgExported:
		m.notice = "exported to " + msg.Path
		return m, nil

	case MsgError:
		m.err = msg.Err
		m.tcrRunning = false
		return m, nil
	}

	return m, nil
}

// handleKeyMsg handles keyboard input.
func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Transient messages are cleared by the next key press.
	m.notice = ""
	if m.err != nil {
		m.err = nil
	}

	// ctrl+c works from every mode: with unsaved changes it raises the
	// save prompt, a second ctrl+c in the prompt force-quits.
	if msg.Type == tea.KeyCtrlC {
		if m.mode == ModeConfirmingQuit || !m.container.Tasks.Dirty() {
			return m, tea.Quit
		}
		m.input.Reset()
		m.input.Blur()
		m.mode = ModeConfirmingQuit
		return m, nil
	}

	switch m.mode {
	case ModeNavigate:
		return m.handleNavigateKeys(msg)
	case ModeAddingNew, ModeEditingExisting, ModeSettingCommand:
		return m.handleInputKeys(msg)
	case ModeConfirmingDelete:
		return m.handleConfirmDeleteKeys(msg)
	case ModeConfirmingQuit:
		return m.handleConfirmQuitKeys(msg)
	case ModeHelp:
		return m.handleHelpKeys(msg)
	}
	return m, nil
}

func (m *Model) handleNavigateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.tasks)-1 {
			m.cursor++
		}
		return m, nil

	case key.Matches(msg, m.keys.Add):
		m.mode = ModeAddingNew
		m.input.Placeholder = "Task description"
		m.input.Reset()
		m.input.Focus()
		return m, nil

	case key.Matches(msg, m.keys.Edit):
		task, ok := m.SelectedTask()
		if !ok {
			return m, nil
		}
		m.mode = ModeEditingExisting
		m.editTaskID = task.ID
		m.input.Placeholder = "Task description"
		m.input.SetValue(task.Description)
		m.input.CursorEnd()
		m.input.Focus()
		return m, nil

	case key.Matches(msg, m.keys.Delete):
		task, ok := m.SelectedTask()
		if !ok {
			return m, nil
		}
		m.mode = ModeConfirmingDelete
		m.confirmTaskID = task.ID
		return m, nil

	case key.Matches(msg, m.keys.Toggle):
		task, ok := m.SelectedTask()
		if !ok {
			return m, nil
		}
		if _, err := m.container.Tasks.ToggleStatus(task.ID); err != nil {
			// A stale id is treated as a no-op.
			if !errors.Is(err, domain.ErrTaskNotFound) {
				m.err = err
			}
		}
		m.refreshTasks()
		return m, nil

	case key.Matches(msg, m.keys.TCR):
		if m.tcrRunning || m.container.Orchestrator.InFlight() {
			m.notice = "TCR run already in flight"
			return m, nil
		}
		m.tcrRunning = true
		m.record = nil
		return m, m.runTCR()

	case key.Matches(msg, m.keys.SetCommand):
		m.mode = ModeSettingCommand
		m.input.Placeholder = "Test command"
		m.input.SetValue(m.testCommand)
		m.input.CursorEnd()
		m.input.Focus()
		return m, nil

	case key.Matches(msg, m.keys.Export):
		return m, m.exportSnapshot()

	case key.Matches(msg, m.keys.Help):
		m.mode = ModeHelp
		return m, nil

	case key.Matches(msg, m.keys.Quit):
		if m.container.Tasks.Dirty() {
			m.mode = ModeConfirmingQuit
			return m, nil
		}
		return m, tea.Quit
	}
	return m, nil
}

func (m *Model) handleInputKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		// Discard the draft without mutating the store.
		m.input.Reset()
		m.input.Blur()
		m.mode = ModeNavigate
		return m, nil

	case msg.Type == tea.KeyEnter:
		return m.commitDraft()
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// commitDraft applies the draft buffer according to the current mode.
// An empty draft is rejected in add/edit modes: the mode is kept and an
// inline validation notice is raised instead.
func (m *Model) commitDraft() (tea.Model, tea.Cmd) {
	draft := m.input.Value()

	switch m.mode {
	case ModeAddingNew:
		if _, err := m.container.Tasks.Add(draft); err != nil {
			if errors.Is(err, domain.ErrEmptyDescription) {
				m.notice = "description cannot be empty"
				return m, nil
			}
			m.err = err
			return m, nil
		}
		m.refreshTasks()
		m.cursor = len(m.tasks) - 1

	case ModeEditingExisting:
		err := m.container.Tasks.UpdateDescription(m.editTaskID, draft)
		switch {
		case errors.Is(err, domain.ErrEmptyDescription):
			m.notice = "description cannot be empty"
			return m, nil
		case errors.Is(err, domain.ErrTaskNotFound):
			// Task vanished underneath the edit; drop back to navigation.
		case err != nil:
			m.err = err
			return m, nil
		}
		m.refreshTasks()

	case ModeSettingCommand:
		m.testCommand = strings.TrimSpace(m.input.Value())

	case ModeNavigate, ModeConfirmingDelete, ModeConfirmingQuit, ModeHelp:
		// Not input modes.
	}

	m.input.Reset()
	m.input.Blur()
	m.mode = ModeNavigate
	return m, nil
}

func (m *Model) handleConfirmDeleteKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Confirm):
		if err := m.container.Tasks.Remove(m.confirmTaskID); err != nil && !errors.Is(err, domain.ErrTaskNotFound) {
			m.err = err
		}
		m.confirmTaskID = 0
		m.mode = ModeNavigate
		m.refreshTasks()
		return m, nil

	case key.Matches(msg, m.keys.Escape), key.Matches(msg, m.keys.Deny):
		m.confirmTaskID = 0
		m.mode = ModeNavigate
		return m, nil
	}
	return m, nil
}

func (m *Model) handleConfirmQuitKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Confirm):
		if err := m.save(); err != nil {
			// Nothing is lost: the store stays in memory, the user may retry.
			m.err = fmt.Errorf("save failed: %w", err)
			m.mode = ModeNavigate
			return m, nil
		}
		return m, tea.Quit

	case key.Matches(msg, m.keys.Deny):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Escape):
		m.mode = ModeNavigate
		return m, nil
	}
	return m, nil
}

// isPersistFailure reports whether the run aborted while flushing the
// task file, in which case the store must stay dirty.
func isPersistFailure(err error) bool {
	var stageErr *tcr.StageError
	return errors.As(err, &stageErr) && stageErr.Stage == tcr.StagePersist
}

func (m *Model) handleHelpKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape), key.Matches(msg, m.keys.Help), key.Matches(msg, m.keys.Quit):
		m.mode = ModeNavigate
	}
	return m, nil
}
