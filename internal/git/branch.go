package git

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/SarthakJariwala/panqake/internal/xec"
)

// ErrNotExist indicates that a ref or object does not exist.
var ErrNotExist = errors.New("does not exist")

// PeelToCommit resolves a commitish to a commit hash.
// It returns [ErrNotExist] if the ref does not resolve.
func (r *Repository) PeelToCommit(ctx context.Context, ref string) (Hash, error) {
	out, err := r.gitCmd(ctx, "rev-parse", "--verify", "--quiet", "--end-of-options", ref+"^{commit}").
		OutputChomp()
	if err != nil {
		if exitErr := new(xec.ExitError); errors.As(err, &exitErr) {
			return "", fmt.Errorf("%v: %w", ref, ErrNotExist)
		}
		return "", fmt.Errorf("rev-parse %v: %w", ref, err)
	}
	return Hash(out), nil
}

// CommitSubject returns the subject line of the commit ref points to.
func (r *Repository) CommitSubject(ctx context.Context, ref string) (string, error) {
	out, err := r.gitCmd(ctx, "log", "-1", "--format=%s", ref, "--").OutputChomp()
	if err != nil {
		return "", fmt.Errorf("log %v: %w", ref, err)
	}
	return out, nil
}

// BranchExists reports whether a local branch with the given name exists.
func (r *Repository) BranchExists(ctx context.Context, branch string) bool {
	err := r.gitCmd(ctx, "show-ref", "--verify", "--quiet", "refs/heads/"+branch).Run()
	return err == nil
}

// ListBranches lists local branches, sorted by name.
func (r *Repository) ListBranches(ctx context.Context) ([]string, error) {
	var branches []string
	for line, err := range r.gitCmd(ctx, "for-each-ref", "--format=%(refname:short)", "refs/heads/").Lines() {
		if err != nil {
			return nil, fmt.Errorf("for-each-ref: %w", err)
		}
		if name := strings.TrimSpace(string(line)); name != "" {
			branches = append(branches, name)
		}
	}
	slices.Sort(branches)
	return branches, nil
}

// IsAncestor reports whether a is an ancestor of b.
// A commit is its own ancestor.
func (r *Repository) IsAncestor(ctx context.Context, a, b Hash) bool {
	return r.gitCmd(ctx, "merge-base", "--is-ancestor", string(a), string(b)).Run() == nil
}

// MergeBase returns the best common ancestor of a and b.
func (r *Repository) MergeBase(ctx context.Context, a, b string) (Hash, error) {
	out, err := r.gitCmd(ctx, "merge-base", a, b).OutputChomp()
	if err != nil {
		return "", fmt.Errorf("merge-base %v %v: %w", a, b, err)
	}
	return Hash(out), nil
}

// ForkPoint returns the point at which branch forked from upstream,
// consulting upstream's reflog so that rewritten upstream history
// (e.g. an amended parent) is accounted for.
//
// It returns [ErrNotExist] when no fork point can be determined.
func (r *Repository) ForkPoint(ctx context.Context, upstream, branch string) (Hash, error) {
	out, err := r.gitCmd(ctx, "merge-base", "--fork-point", upstream, branch).OutputChomp()
	if err != nil {
		if exitErr := new(xec.ExitError); errors.As(err, &exitErr) {
			return "", fmt.Errorf("fork point of %v from %v: %w", branch, upstream, ErrNotExist)
		}
		return "", fmt.Errorf("merge-base --fork-point: %w", err)
	}
	return Hash(out), nil
}

// CreateBranch creates a branch at the given commitish without checking it out.
func (r *Repository) CreateBranch(ctx context.Context, name, head string) error {
	if err := r.gitCmd(ctx, "branch", name, head).Run(); err != nil {
		return fmt.Errorf("create branch %v: %w", name, err)
	}
	return nil
}

// BranchDeleteOptions configures DeleteBranch.
type BranchDeleteOptions struct {
	// Force deletes the branch even if it is not merged.
	Force bool
}

// DeleteBranch deletes a local branch.
func (r *Repository) DeleteBranch(ctx context.Context, branch string, opts BranchDeleteOptions) error {
	flag := "--delete"
	if opts.Force {
		flag = "-D"
	}
	if err := r.gitCmd(ctx, "branch", flag, branch).Run(); err != nil {
		return fmt.Errorf("delete branch %v: %w", branch, err)
	}
	return nil
}

// RenameBranch renames a local branch.
func (r *Repository) RenameBranch(ctx context.Context, oldName, newName string) error {
	if err := r.gitCmd(ctx, "branch", "--move", oldName, newName).Run(); err != nil {
		return fmt.Errorf("rename branch %v to %v: %w", oldName, newName, err)
	}
	return nil
}

// MergedBranches lists local branches whose tips are reachable from into.
// into itself is not included.
func (r *Repository) MergedBranches(ctx context.Context, into string) ([]string, error) {
	var merged []string
	args := []string{"for-each-ref", "--format=%(refname:short)", "--merged", into, "refs/heads/"}
	for line, err := range r.gitCmd(ctx, args...).Lines() {
		if err != nil {
			return nil, fmt.Errorf("list branches merged into %v: %w", into, err)
		}
		if name := strings.TrimSpace(string(line)); name != "" && name != into {
			merged = append(merged, name)
		}
	}
	slices.Sort(merged)
	return merged, nil
}

// CountAheadBehind reports how many commits are on branch but not upstream
// (ahead), and on upstream but not branch (behind).
func (r *Repository) CountAheadBehind(ctx context.Context, upstream, branch string) (ahead, behind int, err error) {
	out, err := r.gitCmd(ctx, "rev-list", "--left-right", "--count", upstream+"..."+branch).OutputChomp()
	if err != nil {
		return 0, 0, fmt.Errorf("rev-list: %w", err)
	}

	left, right, ok := strings.Cut(strings.TrimSpace(out), "\t")
	if !ok {
		return 0, 0, fmt.Errorf("unexpected rev-list output: %q", out)
	}
	if behind, err = strconv.Atoi(left); err != nil {
		return 0, 0, fmt.Errorf("parse behind count: %w", err)
	}
	if ahead, err = strconv.Atoi(right); err != nil {
		return 0, 0, fmt.Errorf("parse ahead count: %w", err)
	}
	return ahead, behind, nil
}
