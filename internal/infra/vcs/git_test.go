package vcs

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-git/go-git/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tcrtodo/tcrtodo/internal/domain"
)

func initRepo(t *testing.T) (*Client, string) {
	t.Helper()
	dir := t.TempDir()
	repo, err := git.PlainInit(dir, false)
	require.NoError(t, err)
	return NewClientWithRepo(repo, nil), dir
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestNewClient_NotARepository(t *testing.T) {
	_, err := NewClient(t.TempDir(), nil)
	assert.ErrorIs(t, err, domain.ErrNotGitRepository)
}

func TestCommitAll(t *testing.T) {
	client, dir := initRepo(t)
	writeFile(t, dir, "tasks.md", "# Tasks\n- [ ] ship it\n")

	require.NoError(t, client.CommitAll("save tasks"))

	dirty, err := client.HasUncommittedChanges()
	require.NoError(t, err)
	assert.False(t, dirty, "everything is committed")
}

func TestCommitAll_CleanTreeIsNotAnError(t *testing.T) {
	client, dir := initRepo(t)
	writeFile(t, dir, "tasks.md", "# Tasks\n")
	require.NoError(t, client.CommitAll("first"))

	// Nothing changed since; the commit is skipped silently.
	assert.NoError(t, client.CommitAll("second"))
}

func TestRevertAll_RestoresTrackedFiles(t *testing.T) {
	client, dir := initRepo(t)
	path := writeFile(t, dir, "tasks.md", "# Tasks\n- [ ] original\n")
	require.NoError(t, client.CommitAll("baseline"))

	writeFile(t, dir, "tasks.md", "# Tasks\n- [x] mutated\n")
	require.NoError(t, client.RevertAll())

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "# Tasks\n- [ ] original\n", string(content))
}

func TestRevertAll_RemovesUntrackedFiles(t *testing.T) {
	client, dir := initRepo(t)
	writeFile(t, dir, "tasks.md", "# Tasks\n")
	require.NoError(t, client.CommitAll("baseline"))

	stray := writeFile(t, dir, "scratch.go", "package scratch\n")
	require.NoError(t, client.RevertAll())

	_, err := os.Stat(stray)
	assert.True(t, os.IsNotExist(err), "untracked file survives revert")

	dirty, err := client.HasUncommittedChanges()
	require.NoError(t, err)
	assert.False(t, dirty)
}

func TestRevertAll_NoCommits(t *testing.T) {
	client, _ := initRepo(t)
	assert.ErrorIs(t, client.RevertAll(), domain.ErrNoCommits)
}

func TestHasUncommittedChanges(t *testing.T) {
	client, dir := initRepo(t)
	writeFile(t, dir, "tasks.md", "# Tasks\n")
	require.NoError(t, client.CommitAll("baseline"))

	dirty, err := client.HasUncommittedChanges()
	require.NoError(t, err)
	assert.False(t, dirty)

	writeFile(t, dir, "tasks.md", "# Tasks\n- [ ] new\n")
	dirty, err = client.HasUncommittedChanges()
	require.NoError(t, err)
	assert.True(t, dirty)
}

func TestUnavailable(t *testing.T) {
	reason := errors.New("no repository here")
	u := &Unavailable{Reason: reason}

	assert.ErrorIs(t, u.CommitAll("msg"), reason)
	assert.ErrorIs(t, u.RevertAll(), reason)

	_, err := u.HasUncommittedChanges()
	assert.ErrorIs(t, err, reason)
}
