package git

import (
	"bytes"
	"context"
	"fmt"
	"strings"
)

// Fetch fetches refs from the remote.
func (r *Repository) Fetch(ctx context.Context, remote string, refspecs ...string) error {
	args := append([]string{"fetch", "--quiet", remote}, refspecs...)
	if err := r.gitCmd(ctx, args...).Run(); err != nil {
		return fmt.Errorf("fetch %v: %w", remote, err)
	}
	return nil
}

// RemoteURL reports the fetch URL of a remote.
func (r *Repository) RemoteURL(ctx context.Context, remote string) (string, error) {
	url, err := r.gitCmd(ctx, "remote", "get-url", remote).OutputChomp()
	if err != nil {
		return "", fmt.Errorf("get URL of %v: %w", remote, err)
	}
	return url, nil
}

// RemoteBranchHash asks the remote for the tip of branch.
// It returns [ErrNotExist] if the remote has no such branch.
func (r *Repository) RemoteBranchHash(ctx context.Context, remote, branch string) (Hash, error) {
	out, err := r.gitCmd(ctx, "ls-remote", "--heads", remote, "refs/heads/"+branch).Output()
	if err != nil {
		return "", fmt.Errorf("ls-remote %v: %w", remote, err)
	}

	hash, ok := parseLsRemote(out, "refs/heads/"+branch)
	if !ok {
		return "", fmt.Errorf("%v/%v: %w", remote, branch, ErrNotExist)
	}
	return hash, nil
}

// parseLsRemote finds ref in ls-remote output:
//
//	<hash>\t<ref>
func parseLsRemote(out []byte, ref string) (Hash, bool) {
	for line := range bytes.Lines(out) {
		hash, name, ok := strings.Cut(strings.TrimSpace(string(line)), "\t")
		if ok && name == ref {
			return Hash(hash), true
		}
	}
	return "", false
}

// PushOptions configures Push.
type PushOptions struct {
	// Remote to push to.
	Remote string

	// Refspec to push, e.g. "feature" or "feature:feature".
	Refspec string

	// ForceWithLease overwrites the remote ref
	// only if it still matches our remote-tracking ref.
	ForceWithLease bool

	// SetUpstream records the remote branch as the upstream
	// of the local branch.
	SetUpstream bool

	// DryRun reports what would happen without pushing.
	DryRun bool
}

// Push pushes to a remote.
func (r *Repository) Push(ctx context.Context, opts PushOptions) error {
	args := []string{"push", "--quiet"}
	if opts.ForceWithLease {
		args = append(args, "--force-with-lease")
	}
	if opts.SetUpstream {
		args = append(args, "--set-upstream")
	}
	if opts.DryRun {
		args = append(args, "--dry-run")
	}
	args = append(args, opts.Remote)
	if opts.Refspec != "" {
		args = append(args, opts.Refspec)
	}

	if err := r.gitCmd(ctx, args...).CaptureStdout().Run(); err != nil {
		return fmt.Errorf("push %v: %w", opts.Refspec, err)
	}
	return nil
}

// DeleteRemoteBranch deletes a branch on the remote.
func (r *Repository) DeleteRemoteBranch(ctx context.Context, remote, branch string) error {
	if err := r.gitCmd(ctx, "push", "--quiet", remote, "--delete", branch).Run(); err != nil {
		return fmt.Errorf("delete %v/%v: %w", remote, branch, err)
	}
	return nil
}

// DetectNonFastForward reports whether pushing branch to remote
// would be rejected without force, e.g. after an amend or rebase.
func (r *Repository) DetectNonFastForward(ctx context.Context, remote, branch string) (bool, error) {
	// A rejected dry-run exits non-zero but still prints the verdict.
	out, _ := r.gitCmd(ctx, "push", "--dry-run", "--porcelain", remote, branch).Output()
	if len(out) == 0 {
		return false, fmt.Errorf("push --dry-run to %v printed nothing", remote)
	}
	return isRejected(out), nil
}

func isRejected(porcelain []byte) bool {
	for line := range bytes.Lines(porcelain) {
		// Each ref line is "<flag>\t<from>:<to>\t<summary>"; '!' marks rejection.
		if bytes.HasPrefix(line, []byte("!\t")) || bytes.Contains(line, []byte("[rejected]")) {
			return true
		}
	}
	return false
}
