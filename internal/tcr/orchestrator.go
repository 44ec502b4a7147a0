// Package tcr implements the Test-Commit-Revert orchestration loop.
package tcr

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/tcrtodo/tcrtodo/internal/domain"
	"github.com/tcrtodo/tcrtodo/internal/infra/taskfile"
)

// Stage identifies where a TCR run failed.
type Stage string

const (
	StagePersist Stage = "persist" // Flushing the task store before the run
	StageSpawn   Stage = "spawn"   // Starting the test command
	StageCommit  Stage = "commit"  // Committing after a passing run
	StageRevert  Stage = "revert"  // Reverting after a failing run
)

// StageError wraps a failure with the stage it occurred in.
// Commit and revert failures may leave the working tree in an ambiguous
// state and must be surfaced prominently, never swallowed.
type StageError struct {
	Err   error
	Stage Stage
}

func (e *StageError) Error() string {
	return fmt.Sprintf("tcr %s: %v", e.Stage, e.Err)
}

// Unwrap returns the underlying error.
func (e *StageError) Unwrap() error {
	return e.Err
}

// RunInput contains the parameters for a TCR run.
// Tasks is the snapshot to flush before the test runs; the caller takes it
// on the goroutine that owns the store, so Execute itself never has to
// reach into mutable editor state.
type RunInput struct {
	Tasks   []domain.Task // Task snapshot persisted before the run
	Command string        // Test command to run
	Message string        // Commit message used on success
	TaskID  int           // Task associated with the run, for logging (0 = none)
}

// RunOutput contains the result of a TCR run.
// The record is returned even when the run failed, for transient display.
type RunOutput struct {
	Record domain.TCRRecord
}

// Orchestrator couples test execution to version-control actions.
// At most one run may be active at a time; the flag below enforces that
// two runs never race on the working tree and the save file. The
// orchestrator holds no reference to the task store: everything it needs
// arrives as immutable input, so Execute is safe to call off the editor's
// event loop.
type Orchestrator struct {
	runner   domain.TestRunner
	vcs      domain.VersionControl
	logger   domain.Logger
	taskPath string
	inFlight atomic.Bool
}

// New creates a new Orchestrator.
func New(taskPath string, runner domain.TestRunner, vcs domain.VersionControl, logger domain.Logger) *Orchestrator {
	return &Orchestrator{
		taskPath: taskPath,
		runner:   runner,
		vcs:      vcs,
		logger:   logger,
	}
}

// InFlight reports whether a run is currently active.
func (o *Orchestrator) InFlight() bool {
	return o.inFlight.Load()
}

// Execute runs the TCR protocol to completion:
//
//  1. Flush the given task snapshot so the commit or revert captures what
//     the editor shows. A failed flush aborts the run before any test.
//  2. Run the test command to completion.
//  3. Exit 0: commit all working-tree changes.
//     Non-zero: revert all uncommitted changes.
//
// A second Execute while one is in flight returns domain.ErrTCRInFlight
// without starting a child process.
func (o *Orchestrator) Execute(ctx context.Context, in RunInput) (*RunOutput, error) {
	if !o.inFlight.CompareAndSwap(false, true) {
		return nil, domain.ErrTCRInFlight
	}
	defer o.inFlight.Store(false)

	record := domain.TCRRecord{Command: in.Command, Action: domain.ActionNone}
	out := &RunOutput{}

	// Flush first: testing against a stale save would commit or revert
	// state the user is not seeing.
	if err := taskfile.Save(o.taskPath, in.Tasks); err != nil {
		record.Err = &StageError{Stage: StagePersist, Err: err}
		out.Record = record
		o.logError(in.TaskID, "tcr", record.Err)
		return out, record.Err
	}

	exitCode, err := o.runner.Run(ctx, in.Command)
	if err != nil {
		record.Err = &StageError{Stage: StageSpawn, Err: err}
		out.Record = record
		o.logError(in.TaskID, "tcr", record.Err)
		return out, record.Err
	}
	record.ExitCode = exitCode

	if exitCode == 0 {
		if err := o.vcs.CommitAll(in.Message); err != nil {
			// The tree is left as-is, not reverted.
			record.Err = &StageError{Stage: StageCommit, Err: err}
			out.Record = record
			o.logError(in.TaskID, "tcr", record.Err)
			return out, record.Err
		}
		record.Action = domain.ActionCommitted
		o.logInfo(in.TaskID, "tcr", fmt.Sprintf("tests passed, committed: %q", in.Message))
	} else {
		if err := o.vcs.RevertAll(); err != nil {
			// Failed revert leaves the tree inconsistent; fatal for this run.
			record.Err = &StageError{Stage: StageRevert, Err: err}
			out.Record = record
			o.logError(in.TaskID, "tcr", record.Err)
			return out, record.Err
		}
		record.Action = domain.ActionReverted
		o.logInfo(in.TaskID, "tcr", fmt.Sprintf("tests failed (exit %d), reverted", exitCode))
	}

	out.Record = record
	return out, nil
}

func (o *Orchestrator) logInfo(taskID int, category, msg string) {
	if o.logger != nil {
		o.logger.Info(taskID, category, msg)
	}
}

func (o *Orchestrator) logError(taskID int, category string, err error) {
	if o.logger != nil {
		o.logger.Error(taskID, category, err.Error())
	}
}
