package domain

import "errors"

// Domain errors.
var (
	ErrTaskNotFound     = errors.New("task not found")
	ErrEmptyDescription = errors.New("description cannot be empty")
	ErrInvalidStatus    = errors.New("invalid status")
	ErrTCRInFlight      = errors.New("a TCR run is already in flight")
	ErrNoTestCommand    = errors.New("no test command configured")
	ErrNotGitRepository = errors.New("not a git repository (or any of the parent directories)")
	ErrNoCommits        = errors.New("repository has no commits to revert to")
)
