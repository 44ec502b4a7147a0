// Package taskfile round-trips the task store to the authoritative markdown
// file and produces derived export snapshots.
package taskfile

import (
	"fmt"
	"os"
	"strings"

	"github.com/tcrtodo/tcrtodo/internal/domain"
	"github.com/tcrtodo/tcrtodo/internal/store"
)

// header is the first line of the authoritative task file.
const header = "# Tasks"

// ParseError describes a malformed line in the task file.
// Any malformed entry fails the whole load; there is no partial load.
type ParseError struct {
	Path string
	Line int
	Msg  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s:%d: %s", e.Path, e.Line, e.Msg)
}

// Load reads the task file and returns a store seeded with its tasks,
// assigned sequential IDs in file order. A missing file yields an empty
// store; a malformed file fails the load entirely.
func Load(path string) (*store.Store, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return store.New(), nil
		}
		return nil, fmt.Errorf("read task file: %w", err)
	}

	tasks, err := parse(path, string(content))
	if err != nil {
		return nil, err
	}
	return store.FromTasks(tasks), nil
}

// parse converts file content into tasks.
func parse(path, content string) ([]domain.Task, error) {
	var tasks []domain.Task
	for i, line := range strings.Split(content, "\n") {
		lineNo := i + 1
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		if !strings.HasPrefix(trimmed, "- ") {
			return nil, &ParseError{Path: path, Line: lineNo, Msg: fmt.Sprintf("unrecognized line %q", trimmed)}
		}

		rest := strings.TrimPrefix(trimmed, "- ")
		if len(rest) < 3 || rest[0] != '[' || rest[2] != ']' {
			return nil, &ParseError{Path: path, Line: lineNo, Msg: "entry is missing a status marker"}
		}
		status, ok := domain.StatusFromMarker(string(rest[1]))
		if !ok {
			return nil, &ParseError{Path: path, Line: lineNo, Msg: fmt.Sprintf("unknown status marker %q", rest[1])}
		}
		desc := strings.TrimSpace(rest[3:])
		if desc == "" {
			return nil, &ParseError{Path: path, Line: lineNo, Msg: "entry has an empty description"}
		}
		tasks = append(tasks, domain.Task{Description: desc, Status: status})
	}
	return tasks, nil
}

// Save writes the tasks to the authoritative file. The write is atomic from
// the caller's perspective: content goes to a temp file which is then
// renamed over the target, so an interrupted save never truncates the file.
func Save(path string, tasks []domain.Task) error {
	content := render(tasks)

	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, []byte(content), 0o644); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}

// render produces the authoritative markdown content.
func render(tasks []domain.Task) string {
	var b strings.Builder
	b.WriteString(header)
	b.WriteString("\n")
	for _, t := range tasks {
		b.WriteString(fmt.Sprintf("- [%s] %s\n", t.Status.Marker(), t.Description))
	}
	return b.String()
}
