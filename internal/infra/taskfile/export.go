package taskfile

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/tcrtodo/tcrtodo/internal/domain"
)

// Export writes a derived, non-authoritative snapshot of the tasks in the
// given format. Export output is deterministic: the same tasks produce
// byte-identical files. A failed export leaves the authoritative file and
// the in-memory store untouched.
func Export(path string, format domain.ExportFormat, tasks []domain.Task) error {
	data, err := Render(format, tasks)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write export file: %w", err)
	}
	return nil
}

// Render produces the export content for the given format.
func Render(format domain.ExportFormat, tasks []domain.Task) ([]byte, error) {
	switch format {
	case domain.ExportMarkdown:
		return renderMarkdown(tasks), nil
	case domain.ExportJSON:
		return renderJSON(tasks)
	case domain.ExportYAML:
		return renderYAML(tasks)
	default:
		return nil, fmt.Errorf("unsupported export format %q", format)
	}
}

// renderMarkdown produces a document-style listing with checkbox markers
// and status labels.
func renderMarkdown(tasks []domain.Task) []byte {
	var b strings.Builder
	b.WriteString("# Tasks\n\n")
	for _, t := range tasks {
		b.WriteString(fmt.Sprintf("- [%s] %s (%s)\n", t.Status.Marker(), t.Description, t.Status.Display()))
	}
	return []byte(b.String())
}

func renderJSON(tasks []domain.Task) ([]byte, error) {
	if tasks == nil {
		tasks = []domain.Task{}
	}
	data, err := json.MarshalIndent(tasks, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal tasks: %w", err)
	}
	return append(data, '\n'), nil
}

func renderYAML(tasks []domain.Task) ([]byte, error) {
	if tasks == nil {
		tasks = []domain.Task{}
	}
	data, err := yaml.Marshal(tasks)
	if err != nil {
		return nil, fmt.Errorf("marshal tasks: %w", err)
	}
	return data, nil
}
