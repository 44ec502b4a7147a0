package domain

import (
	"context"
	"time"
)

// TestRunner spawns the configured test command and reports its exit status.
type TestRunner interface {
	// Run executes the command to completion and returns its exit code.
	// A command that cannot be started at all (missing binary, empty
	// command) returns an error; a command that runs and fails returns
	// its non-zero exit code with a nil error.
	Run(ctx context.Context, command string) (exitCode int, err error)
}

// VersionControl is the two-operation capability the TCR loop needs.
type VersionControl interface {
	// CommitAll stages every working-tree change and commits it.
	CommitAll(message string) error

	// RevertAll discards all uncommitted changes, tracked and untracked,
	// restoring the working tree to the last commit.
	RevertAll() error

	// HasUncommittedChanges reports whether the working tree is dirty.
	HasUncommittedChanges() (bool, error)
}

// ConfigLoader loads configuration from files.
type ConfigLoader interface {
	// Load returns the merged configuration (repo + global + defaults).
	Load() (*Config, error)
}

// Logger writes application log entries.
type Logger interface {
	// Debug logs a debug message. taskID 0 means no associated task.
	Debug(taskID int, category, msg string)

	// Info logs an info message.
	Info(taskID int, category, msg string)

	// Warn logs a warning message.
	Warn(taskID int, category, msg string)

	// Error logs an error message.
	Error(taskID int, category, msg string)
}

// Clock provides time operations for testability.
type Clock interface {
	// Now returns the current time.
	Now() time.Time
}

// RealClock implements Clock using the system clock.
type RealClock struct{}

// Now returns the current time.
func (RealClock) Now() time.Time {
	return time.Now()
}
