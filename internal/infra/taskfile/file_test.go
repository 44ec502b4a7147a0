package taskfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tcrtodo/tcrtodo/internal/domain"
)

func TestLoad_MissingFile(t *testing.T) {
	s, err := Load(filepath.Join(t.TempDir(), "tasks.md"))
	require.NoError(t, err)
	assert.Equal(t, 0, s.Len())
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.md")
	tasks := []domain.Task{
		{ID: 1, Description: "write failing test", Status: domain.StatusDone},
		{ID: 2, Description: "make it pass", Status: domain.StatusWorking},
		{ID: 3, Description: "refactor", Status: domain.StatusPending},
	}

	require.NoError(t, Save(path, tasks))

	s, err := Load(path)
	require.NoError(t, err)

	got := s.Snapshot()
	require.Len(t, got, 3)
	for i, want := range tasks {
		assert.Equal(t, want.Description, got[i].Description)
		assert.Equal(t, want.Status, got[i].Status)
		assert.Equal(t, i+1, got[i].ID, "ids are assigned in file order")
	}
}

func TestSave_WritesMarkdown(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.md")
	tasks := []domain.Task{
		{ID: 1, Description: "pending task", Status: domain.StatusPending},
		{ID: 2, Description: "working task", Status: domain.StatusWorking},
		{ID: 3, Description: "done task", Status: domain.StatusDone},
	}

	require.NoError(t, Save(path, tasks))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "# Tasks\n- [ ] pending task\n- [~] working task\n- [x] done task\n", string(content))
}

func TestSave_LeavesNoTempFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tasks.md")

	require.NoError(t, Save(path, []domain.Task{{ID: 1, Description: "x", Status: domain.StatusPending}}))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "tasks.md", entries[0].Name())
}

func TestSave_OverwritesExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.md")
	require.NoError(t, Save(path, []domain.Task{{ID: 1, Description: "old", Status: domain.StatusPending}}))
	require.NoError(t, Save(path, []domain.Task{{ID: 2, Description: "new", Status: domain.StatusDone}}))

	s, err := Load(path)
	require.NoError(t, err)
	got := s.Snapshot()
	require.Len(t, got, 1)
	assert.Equal(t, "new", got[0].Description)
}

func TestLoad_SkipsBlankLinesAndComments(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.md")
	content := "# Tasks\n\n## A section heading\n- [ ] only task\n\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	s, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 1, s.Len())
}

func TestLoad_MalformedFile(t *testing.T) {
	tests := []struct {
		name    string
		content string
		line    int
	}{
		{"unknown marker", "# Tasks\n- [?] task\n", 2},
		{"missing marker", "# Tasks\n- task without box\n", 2},
		{"empty description", "# Tasks\n- [x]   \n", 2},
		{"unrecognized line", "# Tasks\njust some prose\n", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "tasks.md")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o644))

			_, err := Load(path)
			require.Error(t, err)

			var parseErr *ParseError
			require.ErrorAs(t, err, &parseErr)
			assert.Equal(t, tt.line, parseErr.Line)
			assert.Equal(t, path, parseErr.Path)
		})
	}
}

func TestLoad_MalformedFileLoadsNothing(t *testing.T) {
	// One bad line fails the whole load; there is no partial result.
	path := filepath.Join(t.TempDir(), "tasks.md")
	content := "# Tasks\n- [ ] good task\n- [?] bad task\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	s, err := Load(path)
	require.Error(t, err)
	assert.Nil(t, s)
}

func TestParseError_Error(t *testing.T) {
	err := &ParseError{Path: "tasks.md", Line: 3, Msg: "unknown status marker"}
	assert.Equal(t, "tasks.md:3: unknown status marker", err.Error())
}
