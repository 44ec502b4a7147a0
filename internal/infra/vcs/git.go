// Package vcs provides the version-control backend for the TCR loop.
package vcs

import (
	"errors"
	"fmt"

	"github.com/go-git/go-git/v5"
	gitconfig "github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing/object"

	"github.com/tcrtodo/tcrtodo/internal/domain"
)

// Fallback commit identity when the repository has no user configured.
const (
	fallbackName  = "tcrtodo"
	fallbackEmail = "tcrtodo@localhost"
)

// Client implements domain.VersionControl on top of go-git.
type Client struct {
	repo  *git.Repository
	clock domain.Clock
}

// Ensure Client implements domain.VersionControl.
var _ domain.VersionControl = (*Client)(nil)

// NewClient opens the repository containing dir, walking up parent
// directories the way the git CLI does.
func NewClient(dir string, clock domain.Clock) (*Client, error) {
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		if errors.Is(err, git.ErrRepositoryNotExists) {
			return nil, domain.ErrNotGitRepository
		}
		return nil, fmt.Errorf("open git repository: %w", err)
	}
	return NewClientWithRepo(repo, clock), nil
}

// NewClientWithRepo creates a client for an already-open repository.
func NewClientWithRepo(repo *git.Repository, clock domain.Clock) *Client {
	if clock == nil {
		clock = domain.RealClock{}
	}
	return &Client{repo: repo, clock: clock}
}

// CommitAll stages every working-tree change and commits it.
// A clean tree is not an error; the commit is simply skipped.
func (c *Client) CommitAll(message string) error {
	wt, err := c.repo.Worktree()
	if err != nil {
		return fmt.Errorf("open worktree: %w", err)
	}

	if err := wt.AddWithOptions(&git.AddOptions{All: true}); err != nil {
		return fmt.Errorf("stage changes: %w", err)
	}

	_, err = wt.Commit(message, &git.CommitOptions{
		Author: c.signature(),
	})
	if err != nil {
		if errors.Is(err, git.ErrEmptyCommit) {
			return nil
		}
		return fmt.Errorf("commit changes: %w", err)
	}
	return nil
}

// RevertAll discards all uncommitted changes. Tracked files are hard-reset
// to HEAD and untracked files are removed, so the working tree matches the
// last commit exactly.
func (c *Client) RevertAll() error {
	if _, err := c.repo.Head(); err != nil {
		return domain.ErrNoCommits
	}

	wt, err := c.repo.Worktree()
	if err != nil {
		return fmt.Errorf("open worktree: %w", err)
	}

	if err := wt.Reset(&git.ResetOptions{Mode: git.HardReset}); err != nil {
		return fmt.Errorf("reset working tree: %w", err)
	}
	if err := wt.Clean(&git.CleanOptions{Dir: true}); err != nil {
		return fmt.Errorf("clean untracked files: %w", err)
	}
	return nil
}

// HasUncommittedChanges reports whether the working tree is dirty.
func (c *Client) HasUncommittedChanges() (bool, error) {
	wt, err := c.repo.Worktree()
	if err != nil {
		return false, fmt.Errorf("open worktree: %w", err)
	}
	status, err := wt.Status()
	if err != nil {
		return false, fmt.Errorf("read worktree status: %w", err)
	}
	return !status.IsClean(), nil
}

// signature builds the commit author from repository config, falling back
// to a built-in identity.
func (c *Client) signature() *object.Signature {
	name, email := fallbackName, fallbackEmail
	if cfg, err := c.repo.ConfigScoped(gitconfig.SystemScope); err == nil {
		if cfg.User.Name != "" {
			name = cfg.User.Name
		}
		if cfg.User.Email != "" {
			email = cfg.User.Email
		}
	}
	return &object.Signature{
		Name:  name,
		Email: email,
		When:  c.clock.Now(),
	}
}

// Unavailable is a VersionControl that fails every operation with the
// reason version control could not be set up. The editor stays usable
// without a repository; only the TCR trigger surfaces the error.
type Unavailable struct {
	Reason error
}

var _ domain.VersionControl = (*Unavailable)(nil)

func (u *Unavailable) CommitAll(string) error { return u.Reason }

func (u *Unavailable) RevertAll() error { return u.Reason }

func (u *Unavailable) HasUncommittedChanges() (bool, error) { return false, u.Reason }
