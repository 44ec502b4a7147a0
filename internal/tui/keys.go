package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the keybindings for the TUI.
type KeyMap struct {
	// Navigation
	Up   key.Binding
	Down key.Binding

	// Task management
	Add    key.Binding // Add new task
	Edit   key.Binding // Edit selected task
	Delete key.Binding // Delete selected task (with confirmation)
	Toggle key.Binding // Cycle status of selected task

	// Workflow
	TCR        key.Binding // Run test-commit-revert
	SetCommand key.Binding // Edit the test command
	Export     key.Binding // Export snapshot

	// General
	Help    key.Binding // Show help
	Quit    key.Binding // Quit application
	Confirm key.Binding // Confirm in modal modes
	Deny    key.Binding // Answer "no" in the quit prompt
	Escape  key.Binding // Cancel/back
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add"),
		),
		Edit: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "edit"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "toggle status"),
		),
		TCR: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "test+commit"),
		),
		SetCommand: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "set test cmd"),
		),
		Export: key.NewBinding(
			key.WithKeys("E"),
			key.WithHelp("E", "export"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter", "y"),
			key.WithHelp("enter/y", "confirm"),
		),
		Deny: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "no"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
	}
}

// ShortHelp returns keybindings to show in the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Add, k.Toggle, k.TCR, k.Help, k.Quit}
}

// FullHelp returns keybindings for the expanded help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},                      // Navigation
		{k.Add, k.Edit, k.Delete, k.Toggle}, // Task management
		{k.TCR, k.SetCommand, k.Export},     // Workflow
		{k.Help, k.Quit, k.Escape},          // General
	}
}
