// Package app provides the dependency injection container for the application.
package app

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/tcrtodo/tcrtodo/internal/domain"
	"github.com/tcrtodo/tcrtodo/internal/infra/config"
	"github.com/tcrtodo/tcrtodo/internal/infra/logging"
	"github.com/tcrtodo/tcrtodo/internal/infra/runner"
	"github.com/tcrtodo/tcrtodo/internal/infra/taskfile"
	"github.com/tcrtodo/tcrtodo/internal/infra/vcs"
	"github.com/tcrtodo/tcrtodo/internal/store"
	"github.com/tcrtodo/tcrtodo/internal/tcr"
)

// LogFileName is the append-only log next to the task file.
const LogFileName = ".tcrtodo.log"

// Paths holds the resolved file locations for the session.
type Paths struct {
	WorkDir  string // Directory the editor operates in
	TaskFile string // Authoritative task file
	LogFile  string // Log file
}

// Container provides dependency injection for the application.
// One container is constructed per process lifetime; it owns the task
// store loaded from the authoritative file.
type Container struct {
	// Ports (interfaces bound to implementations)
	VCS          domain.VersionControl
	Runner       domain.TestRunner
	ConfigLoader domain.ConfigLoader
	Clock        domain.Clock

	// Pointer fields
	Tasks        *store.Store
	Orchestrator *tcr.Orchestrator
	Logger       *logging.Logger
	AppConfig    *domain.Config

	// Configuration
	Paths Paths
}

// New creates a Container rooted at dir. taskFile overrides the default
// task file name when non-empty. A present-but-unparsable task file fails
// construction; the process must not silently start with an empty list.
func New(dir, taskFile string) (*Container, error) {
	if taskFile == "" {
		taskFile = domain.DefaultTaskFileName
	}
	if !filepath.IsAbs(taskFile) {
		taskFile = filepath.Join(dir, taskFile)
	}
	paths := Paths{
		WorkDir:  dir,
		TaskFile: taskFile,
		LogFile:  filepath.Join(dir, LogFileName),
	}

	configLoader := config.NewLoader(dir)
	appConfig, err := configLoader.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	tasks, err := taskfile.Load(paths.TaskFile)
	if err != nil {
		return nil, fmt.Errorf("load task file: %w", err)
	}

	logger := logging.New(paths.LogFile, logging.ParseLevel(appConfig.Log.Level))

	clock := domain.RealClock{}

	// The editor works without a repository; TCR surfaces the error when
	// triggered.
	var versionControl domain.VersionControl
	gitClient, err := vcs.NewClient(dir, clock)
	if err != nil {
		if !errors.Is(err, domain.ErrNotGitRepository) {
			return nil, err
		}
		versionControl = &vcs.Unavailable{Reason: err}
	} else {
		versionControl = gitClient
	}

	testRunner := runner.NewClient(dir)

	return &Container{
		VCS:          versionControl,
		Runner:       testRunner,
		ConfigLoader: configLoader,
		Clock:        clock,
		Tasks:        tasks,
		Orchestrator: tcr.New(paths.TaskFile, testRunner, versionControl, logger),
		Logger:       logger,
		AppConfig:    appConfig,
		Paths:        paths,
	}, nil
}

// Save flushes the task store to the authoritative file and clears the
// dirty flag.
func (c *Container) Save() error {
	if err := taskfile.Save(c.Paths.TaskFile, c.Tasks.Snapshot()); err != nil {
		return err
	}
	c.Tasks.MarkClean()
	return nil
}

// Export writes a derived snapshot of the current store using the
// configured format and path.
func (c *Container) Export() (string, error) {
	return c.ExportTasks(c.Tasks.Snapshot())
}

// ExportTasks writes a derived snapshot of the given tasks. Callers that
// run off the editor's event loop take the snapshot on the loop and pass
// it here, so nothing reads the store concurrently.
func (c *Container) ExportTasks(tasks []domain.Task) (string, error) {
	format := c.AppConfig.ExportFormat()
	path := c.AppConfig.ExportPath()
	if !filepath.IsAbs(path) {
		path = filepath.Join(c.Paths.WorkDir, path)
	}
	if err := taskfile.Export(path, format, tasks); err != nil {
		return "", err
	}
	return path, nil
}

// Close releases resources held by the container.
func (c *Container) Close() error {
	return c.Logger.Close()
}
