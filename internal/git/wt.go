package git

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"iter"
	"path/filepath"
	"strings"

	"github.com/SarthakJariwala/panqake/internal/silog"
	"github.com/SarthakJariwala/panqake/internal/xec"
)

// ErrDetachedHead indicates that a worktree is not on any branch.
var ErrDetachedHead = errors.New("in detached HEAD state")

// Worktree is a checkout of a Git repository at a specific path.
// Operations that need a working tree (checkout, rebase, commit)
// live here.
type Worktree struct {
	gitDir  string // absolute path to the worktree's .git directory
	rootDir string // absolute path to the root of the worktree
	repo    *Repository

	log  *silog.Logger
	exec execer
}

func newWorktree(gitDir, rootDir string, repo *Repository, log *silog.Logger, exec execer) *Worktree {
	return &Worktree{
		gitDir:  gitDir,
		rootDir: rootDir,
		repo:    repo,
		log:     log,
		exec:    exec,
	}
}

func (w *Worktree) gitCmd(ctx context.Context, args ...string) *xec.Cmd {
	return newGitCmd(ctx, w.log, w.exec, args...).WithDir(w.rootDir)
}

// RootDir returns the absolute path to the root directory of the worktree.
func (w *Worktree) RootDir() string { return w.rootDir }

// Repository returns the repository this worktree belongs to.
func (w *Worktree) Repository() *Repository { return w.repo }

// CurrentBranch reports the branch checked out in the worktree,
// or [ErrDetachedHead] if HEAD is not on a branch.
func (w *Worktree) CurrentBranch(ctx context.Context) (string, error) {
	name, err := w.gitCmd(ctx, "symbolic-ref", "--short", "-q", "HEAD").OutputChomp()
	if err != nil {
		if exitErr := new(xec.ExitError); errors.As(err, &exitErr) {
			return "", ErrDetachedHead
		}
		return "", fmt.Errorf("symbolic-ref: %w", err)
	}
	return name, nil
}

// Checkout switches the worktree to the given branch.
func (w *Worktree) Checkout(ctx context.Context, branch string) error {
	if err := w.gitCmd(ctx, "checkout", "--quiet", branch).Run(); err != nil {
		return fmt.Errorf("checkout %v: %w", branch, err)
	}
	return nil
}

// DetachHead detaches HEAD at the given commitish,
// leaving whatever branch was checked out free to be modified elsewhere.
func (w *Worktree) DetachHead(ctx context.Context, commitish string) error {
	if err := w.gitCmd(ctx, "checkout", "--quiet", "--detach", commitish).Run(); err != nil {
		return fmt.Errorf("detach HEAD at %v: %w", commitish, err)
	}
	return nil
}

// CommitRequest is a request to create a commit from staged changes.
type CommitRequest struct {
	Message string
	Amend   bool
	NoEdit  bool
	All     bool // stage tracked files first (commit -a)
}

// Commit records staged changes.
// Without a message or NoEdit, git opens the user's editor.
func (w *Worktree) Commit(ctx context.Context, req CommitRequest) error {
	args := []string{"commit"}
	if req.All {
		args = append(args, "--all")
	}
	if req.Amend {
		args = append(args, "--amend")
	}
	if req.NoEdit {
		args = append(args, "--no-edit")
	}
	if req.Message != "" {
		args = append(args, "--message", req.Message)
	}

	if err := w.gitCmd(ctx, args...).Run(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// HasStagedChanges reports whether the index differs from HEAD.
func (w *Worktree) HasStagedChanges(ctx context.Context) (bool, error) {
	err := w.gitCmd(ctx, "diff", "--cached", "--quiet").Run()
	if err == nil {
		return false, nil
	}
	if exitErr := new(xec.ExitError); errors.As(err, &exitErr) && exitErr.ExitCode() == 1 {
		return true, nil
	}
	return false, fmt.Errorf("diff --cached: %w", err)
}

// DetectAmended reports whether the most recent change to HEAD
// in this worktree was a commit --amend.
func (w *Worktree) DetectAmended(ctx context.Context) (bool, error) {
	out, err := w.gitCmd(ctx, "reflog", "-1", "--format=%gs", "HEAD").OutputChomp()
	if err != nil {
		return false, fmt.Errorf("reflog: %w", err)
	}
	return strings.Contains(strings.ToLower(out), "amend"), nil
}

// PullFastForward fast-forwards the checked out branch
// from its upstream.
func (w *Worktree) PullFastForward(ctx context.Context, remote, branch string) error {
	if err := w.gitCmd(ctx, "pull", "--ff-only", "--quiet", remote, branch).Run(); err != nil {
		return fmt.Errorf("pull %v %v: %w", remote, branch, err)
	}
	return nil
}

// WorktreeListItem describes one worktree of a repository.
type WorktreeListItem struct {
	// Path is the path to the worktree.
	Path string

	// Bare reports that the worktree is a bare repository.
	Bare bool

	// Detached reports that the worktree is in a detached HEAD state.
	Detached bool

	// Prunable reports that the worktree's directory no longer exists.
	Prunable bool

	// Branch checked out in the worktree, if any.
	Branch string

	// Head is the commit at HEAD.
	Head Hash
}

// Worktrees lists the worktrees of the repository.
func (r *Repository) Worktrees(ctx context.Context) iter.Seq2[*WorktreeListItem, error] {
	return func(yield func(*WorktreeListItem, error) bool) {
		cmd := r.gitCmd(ctx, "worktree", "list", "--porcelain", "-z")
		for item, err := range parseWorktreeList(cmd.Scan(scanNullDelimited)) {
			if err != nil {
				yield(nil, fmt.Errorf("worktree list: %w", err))
				return
			}
			if !yield(item, nil) {
				return
			}
		}
	}
}

// parseWorktreeList parses output of 'git worktree list --porcelain -z'.
//
//	worktree <path>
//	HEAD <hash>
//	branch refs/heads/<name>
//	<empty>
func parseWorktreeList(fields iter.Seq2[[]byte, error]) iter.Seq2[*WorktreeListItem, error] {
	return func(yield func(*WorktreeListItem, error) bool) {
		var item *WorktreeListItem
		for field, err := range fields {
			if err != nil {
				yield(nil, err)
				return
			}

			if len(field) == 0 {
				if item != nil && !yield(item, nil) {
					return
				}
				item = nil
				continue
			}

			key, value, _ := bytes.Cut(field, []byte(" "))
			if string(key) == "worktree" {
				item = &WorktreeListItem{Path: string(value)}
				continue
			}
			if item == nil {
				continue
			}

			switch string(key) {
			case "HEAD":
				item.Head = Hash(value)
			case "branch":
				item.Branch = strings.TrimPrefix(string(value), "refs/heads/")
			case "detached":
				item.Detached = true
			case "bare":
				item.Bare = true
			case "prunable":
				item.Prunable = true
			}
		}

		if item != nil {
			yield(item, nil)
		}
	}
}

// ResolveWorktreePath reports the root of the worktree
// where branch is checked out, or "" if it isn't checked out anywhere.
func (r *Repository) ResolveWorktreePath(ctx context.Context, branch string) (string, error) {
	for item, err := range r.Worktrees(ctx) {
		if err != nil {
			return "", err
		}
		if item.Branch == branch && !item.Bare && !item.Prunable {
			return filepath.Clean(item.Path), nil
		}
	}
	return "", nil
}
