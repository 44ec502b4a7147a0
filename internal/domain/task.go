// Package domain contains core business entities and interfaces.
package domain

// Task represents a single entry in the task list.
type Task struct {
	Description string `json:"description" yaml:"description"`
	Status      Status `json:"status" yaml:"status"`
	ID          int    `json:"id" yaml:"id"`
}

// TCRAction describes what the TCR orchestrator did after a test run.
type TCRAction string

const (
	ActionCommitted TCRAction = "committed"
	ActionReverted  TCRAction = "reverted"
	ActionNone      TCRAction = "none" // run aborted before any VCS action
)

// TCRRecord captures the outcome of the most recent TCR run.
// It is transient display state and is never persisted.
type TCRRecord struct {
	Command  string    // Test command that was run
	Err      error     // Failure of the run itself, nil on a clean commit/revert
	Action   TCRAction // VCS action taken
	ExitCode int       // Exit status of the test command
}
