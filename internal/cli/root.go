// Package cli provides the command-line interface for tcrtodo.
package cli

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/tcrtodo/tcrtodo/internal/app"
	"github.com/tcrtodo/tcrtodo/internal/domain"
	"github.com/tcrtodo/tcrtodo/internal/tcr"
	"github.com/tcrtodo/tcrtodo/internal/tui"
)

// newContainer builds the container for the current working directory.
// Declared as a variable so tests can substitute a fixture container.
var newContainer = func(taskFile string) (*app.Container, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("get current directory: %w", err)
	}
	return app.New(cwd, taskFile)
}

// NewRootCommand creates the root command for tcrtodo.
func NewRootCommand(version string) *cobra.Command {
	var taskFile string

	root := &cobra.Command{
		Use:   "tcrtodo",
		Short: "Terminal task list with test-commit-revert automation",
		Long: `tcrtodo is a terminal task list editor with built-in
Test-Commit-Revert (TCR): an explicit trigger saves the task file, runs
the configured test command, and either commits all working-tree changes
(tests passed) or reverts all uncommitted changes (tests failed).`,
		Version: version,
		// SilenceUsage prevents usage from being printed on errors
		SilenceUsage: true,
		// SilenceErrors prevents Cobra from printing errors (we handle it in main)
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := newContainer(taskFile)
			if err != nil {
				return err
			}
			defer func() { _ = c.Close() }()

			p := tea.NewProgram(tui.New(c), tea.WithAltScreen())
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("run TUI: %w", err)
			}
			return nil
		},
	}

	root.PersistentFlags().StringVarP(&taskFile, "file", "f", "", "task file path (default \"tasks.md\")")

	root.AddCommand(newExportCommand(&taskFile))
	root.AddCommand(newTCRCommand(&taskFile))

	return root
}

// newExportCommand creates the export subcommand.
func newExportCommand(taskFile *string) *cobra.Command {
	var format string
	var output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write a derived snapshot of the task list",
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := newContainer(*taskFile)
			if err != nil {
				return err
			}
			defer func() { _ = c.Close() }()

			if format != "" {
				c.AppConfig.Export.Format = format
			}
			if output != "" {
				c.AppConfig.Export.Path = output
			}
			if !domain.ExportFormat(c.AppConfig.Export.Format).IsValid() {
				return fmt.Errorf("unsupported export format %q", c.AppConfig.Export.Format)
			}

			path, err := c.Export()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "exported to %s\n", path)
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "", "export format: markdown, json, or yaml")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output path (default depends on format)")
	return cmd
}

// newTCRCommand creates the headless tcr subcommand. It runs the same
// orchestration the TUI's 't' key triggers.
func newTCRCommand(taskFile *string) *cobra.Command {
	var command string
	var message string

	cmd := &cobra.Command{
		Use:   "tcr",
		Short: "Run the test command and commit or revert",
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := newContainer(*taskFile)
			if err != nil {
				return err
			}
			defer func() { _ = c.Close() }()

			if command == "" {
				command = c.AppConfig.TCR.Command
			}
			if message == "" {
				message = c.AppConfig.TCR.CommitMessage
			}

			in := tcr.RunInput{
				Tasks:   c.Tasks.Snapshot(),
				Command: command,
				Message: message,
			}
			out, err := c.Orchestrator.Execute(cmd.Context(), in)
			if err != nil {
				if errors.Is(err, domain.ErrTCRInFlight) {
					return err
				}
				return fmt.Errorf("tcr run: %w", err)
			}

			switch out.Record.Action {
			case domain.ActionCommitted:
				fmt.Fprintf(cmd.OutOrStdout(), "tests passed, committed %q\n", message)
			case domain.ActionReverted:
				fmt.Fprintf(cmd.OutOrStdout(), "tests failed (exit %d), reverted\n", out.Record.ExitCode)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&command, "command", "c", "", "test command (default from config)")
	cmd.Flags().StringVarP(&message, "message", "m", "", "commit message (default from config)")
	return cmd
}
