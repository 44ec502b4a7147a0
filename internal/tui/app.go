package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tcrtodo/tcrtodo/internal/app"
	"github.com/tcrtodo/tcrtodo/internal/domain"
	"github.com/tcrtodo/tcrtodo/internal/tcr"
)

// Model is the main bubbletea model for the TUI.
type Model struct {
	// Dependencies (pointers first for alignment)
	container *app.Container
	err       error

	// Render state
	tasks  []domain.Task
	record *domain.TCRRecord
	notice string

	// Components
	keys   KeyMap
	styles Styles
	help   help.Model

	// Input state
	input textinput.Model

	// Session-local override of the configured test command
	testCommand string

	// Numeric state (smaller types last)
	mode          Mode
	cursor        int
	editTaskID    int
	confirmTaskID int
	width         int
	height        int
	tcrRunning    bool
}

// New creates a new TUI Model with the given container.
func New(c *app.Container) *Model {
	ti := textinput.New()
	ti.Placeholder = "Task description"
	ti.CharLimit = 500

	return &Model{
		container:   c,
		tasks:       c.Tasks.Snapshot(),
		keys:        DefaultKeyMap(),
		styles:      DefaultStyles(),
		help:        help.New(),
		input:       ti,
		testCommand: c.AppConfig.TCR.Command,
		mode:        ModeNavigate,
	}
}

// Init initializes the model and returns the initial command.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// SelectedTask returns the currently selected task, or false if the store
// is empty.
func (m *Model) SelectedTask() (domain.Task, bool) {
	if len(m.tasks) == 0 {
		return domain.Task{}, false
	}
	return m.tasks[m.cursor], true
}

// refreshTasks re-reads the store snapshot and clamps the cursor to
// [0, len-1]; the cursor is meaningless while the store is empty.
func (m *Model) refreshTasks() {
	m.tasks = m.container.Tasks.Snapshot()
	if m.cursor >= len(m.tasks) {
		m.cursor = len(m.tasks) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// commitMessage builds the message used when the TCR run commits.
func (m *Model) commitMessage() string {
	if task, ok := m.SelectedTask(); ok {
		return fmt.Sprintf("TCR: completed task %q", task.Description)
	}
	return m.container.AppConfig.TCR.CommitMessage
}

// runTCR returns a command that executes the TCR protocol on a worker.
// The store is only safe to touch on the event loop, so the snapshot and
// version are captured here, before the worker starts; the worker sees
// nothing but immutable input. The orchestrator rejects a second run
// while one is in flight.
func (m *Model) runTCR() tea.Cmd {
	in := tcr.RunInput{
		Tasks:   m.container.Tasks.Snapshot(),
		Command: m.testCommand,
		Message: m.commitMessage(),
	}
	if task, ok := m.SelectedTask(); ok {
		in.TaskID = task.ID
	}
	version := m.container.Tasks.Version()
	orchestrator := m.container.Orchestrator

	return func() tea.Msg {
		out, err := orchestrator.Execute(context.Background(), in)
		if out == nil {
			return MsgError{Err: err}
		}
		return MsgTCRFinished{Record: out.Record, Err: err, FlushedVersion: version}
	}
}

// exportSnapshot returns a command that writes the configured export.
// The snapshot is taken on the event loop; only the file write runs on
// the worker.
func (m *Model) exportSnapshot() tea.Cmd {
	tasks := m.container.Tasks.Snapshot()
	container := m.container

	return func() tea.Msg {
		path, err := container.ExportTasks(tasks)
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgExported{Path: path}
	}
}

// save flushes the store; on failure editor state is retained so nothing
// is lost and the user may retry.
func (m *Model) save() error {
	return m.container.Save()
}
