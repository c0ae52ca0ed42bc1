package git

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/SarthakJariwala/panqake/internal/silog"
	"github.com/SarthakJariwala/panqake/internal/xec"
)

// OpenOptions configures the behavior of Open.
type OpenOptions struct {
	// Log specifies the logger to use for messages.
	Log *silog.Logger

	exec execer
}

// Open opens the repository containing dir.
// If dir is empty, the current working directory is used.
//
// dir may be any subdirectory of any worktree of the repository.
func Open(ctx context.Context, dir string, opts OpenOptions) (*Repository, error) {
	if opts.exec == nil {
		opts.exec = _realExec
	}
	if opts.Log == nil {
		opts.Log = silog.Nop()
	}

	out, err := newGitCmd(ctx, opts.Log, opts.exec,
		"rev-parse",
		"--path-format=absolute",
		"--show-toplevel",
		"--git-common-dir",
		"--absolute-git-dir",
	).WithDir(dir).OutputChomp()
	if err != nil {
		return nil, fmt.Errorf("not a git repository: %w", err)
	}

	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		return nil, fmt.Errorf("unexpected output from git rev-parse: %q", out)
	}

	return &Repository{
		root:      lines[0],
		commonDir: lines[1],
		gitDir:    lines[2],
		log:       opts.Log,
		exec:      opts.exec,
	}, nil
}

// Repository is a handle to a Git repository
// opened from one of its worktrees.
type Repository struct {
	root      string // top-level of the worktree Open was called in
	commonDir string // shared .git directory
	gitDir    string // .git directory of the worktree

	log  *silog.Logger
	exec execer
}

// gitCmd returns a command that runs in the repository's worktree.
func (r *Repository) gitCmd(ctx context.Context, args ...string) *xec.Cmd {
	return newGitCmd(ctx, r.log, r.exec, args...).WithDir(r.root)
}

// RootDir is the top-level directory of the worktree
// the repository was opened from.
func (r *Repository) RootDir() string { return r.root }

// MainRootDir returns the top-level directory of the main worktree.
// This is the same for every worktree of the repository.
func (r *Repository) MainRootDir() string {
	if filepath.Base(r.commonDir) == ".git" {
		return filepath.Dir(r.commonDir)
	}
	// Bare repositories have no main worktree.
	return r.commonDir
}

// RepoID returns a stable identity for the repository:
// the symlink-free absolute path of the main worktree's root.
//
// Every subdirectory and every linked worktree of a repository
// reports the same RepoID.
func (r *Repository) RepoID() string {
	return resolvePath(r.MainRootDir())
}

// LegacyRepoIDs lists identities older versions of the tool used
// for this repository: the bare directory names of the main worktree
// and of the current worktree.
func (r *Repository) LegacyRepoIDs() []string {
	canonical := r.RepoID()

	var ids []string
	for _, dir := range []string{r.MainRootDir(), r.root} {
		id := filepath.Base(resolvePath(dir))
		if id == canonical || id == "" || id == "." || id == string(filepath.Separator) {
			continue
		}
		if len(ids) > 0 && ids[0] == id {
			continue
		}
		ids = append(ids, id)
	}
	return ids
}

// Worktree returns the worktree the repository was opened from.
func (r *Repository) Worktree() *Worktree {
	return newWorktree(r.gitDir, r.root, r, r.log, r.exec)
}

// OpenWorktree opens the worktree of this repository at dir.
func (r *Repository) OpenWorktree(ctx context.Context, dir string) (*Worktree, error) {
	out, err := newGitCmd(ctx, r.log, r.exec, "rev-parse", "--show-toplevel", "--absolute-git-dir").
		WithDir(dir).
		OutputChomp()
	if err != nil {
		return nil, fmt.Errorf("open worktree %v: %w", dir, err)
	}

	rootDir, gitDir, ok := strings.Cut(out, "\n")
	if !ok {
		return nil, fmt.Errorf("unexpected output from git rev-parse: %q", out)
	}
	return newWorktree(gitDir, rootDir, r, r.log, r.exec), nil
}

func resolvePath(p string) string {
	if resolved, err := filepath.EvalSymlinks(p); err == nil {
		p = resolved
	}
	if abs, err := filepath.Abs(p); err == nil {
		p = abs
	}
	return filepath.Clean(p)
}
