// Package runner spawns the configured test command.
package runner

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/tcrtodo/tcrtodo/internal/domain"
)

// Client implements domain.TestRunner by executing the command directly.
// The command string is split on whitespace into argv; it is not run
// through a shell, so a missing binary surfaces as a spawn error instead
// of an exit code.
type Client struct {
	dir string // Working directory for the command (empty = inherit)
}

// Ensure Client implements domain.TestRunner.
var _ domain.TestRunner = (*Client)(nil)

// NewClient creates a runner that executes commands in dir.
func NewClient(dir string) *Client {
	return &Client{dir: dir}
}

// Run executes the command to completion and returns its exit code.
// The child inherits the current process environment and its output is
// discarded; the TCR loop only cares about the exit status.
func (c *Client) Run(ctx context.Context, command string) (int, error) {
	argv := strings.Fields(command)
	if len(argv) == 0 {
		return 0, domain.ErrNoTestCommand
	}

	// #nosec G204 - the command comes from the user's own configuration
	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Dir = c.dir
	cmd.Env = os.Environ()

	err := cmd.Run()
	if err == nil {
		return 0, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode(), nil
	}
	return 0, fmt.Errorf("start test command %q: %w", command, err)
}
