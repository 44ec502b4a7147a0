// Package tui provides the terminal user interface for tcrtodo.
package tui

// Mode represents the current interaction mode.
// Modes are mutually exclusive; modal sub-states are carried alongside
// (confirmTaskID, editTaskID) so illegal combinations cannot be expressed.
type Mode int

const (
	ModeNavigate        Mode = iota // Default navigation mode
	ModeAddingNew                   // Typing the description of a new task
	ModeEditingExisting             // Editing the selected task's description
	ModeConfirmingDelete            // Waiting for delete confirmation
	ModeSettingCommand              // Editing the TCR test command
	ModeConfirmingQuit              // Dirty store, waiting for save-on-quit answer
	ModeHelp                        // Help overlay
)

// String returns the string representation of the mode.
func (m Mode) String() string {
	switch m {
	case ModeNavigate:
		return "navigate"
	case ModeAddingNew:
		return "adding"
	case ModeEditingExisting:
		return "editing"
	case ModeConfirmingDelete:
		return "confirming_delete"
	case ModeSettingCommand:
		return "setting_command"
	case ModeConfirmingQuit:
		return "confirming_quit"
	case ModeHelp:
		return "help"
	default:
		return "unknown"
	}
}

// IsInputMode returns true if the mode accepts text input into the draft.
func (m Mode) IsInputMode() bool {
	switch m {
	case ModeAddingNew, ModeEditingExisting, ModeSettingCommand:
		return true
	case ModeNavigate, ModeConfirmingDelete, ModeConfirmingQuit, ModeHelp:
		return false
	}
	return false
}
