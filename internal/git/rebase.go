package git

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/SarthakJariwala/panqake/internal/xec"
)

// RebaseInterruptKind specifies the kind of rebase interruption.
type RebaseInterruptKind int

const (
	// RebaseInterruptConflict indicates that a rebase stopped
	// because of a conflict.
	RebaseInterruptConflict RebaseInterruptKind = iota

	// RebaseInterruptDeliberate indicates that a rebase stopped
	// on request, e.g. an 'edit' or 'break' instruction.
	RebaseInterruptDeliberate
)

// RebaseInterruptError indicates that a rebase did not run to completion
// and the worktree is in the middle of a rebase.
type RebaseInterruptError struct {
	Kind  RebaseInterruptKind
	State *RebaseState // always non-nil

	// Err is the failure reported by git, if any.
	Err error
}

func (e *RebaseInterruptError) Error() string {
	var msg strings.Builder
	msg.WriteString("rebase")
	if e.State != nil && e.State.Branch != "" {
		fmt.Fprintf(&msg, " of %s", e.State.Branch)
	}
	msg.WriteString(" interrupted")
	switch e.Kind {
	case RebaseInterruptConflict:
		msg.WriteString(" by a conflict")
	case RebaseInterruptDeliberate:
		msg.WriteString(" deliberately")
	}
	if e.Err != nil {
		fmt.Fprintf(&msg, ": %v", e.Err)
	}
	return msg.String()
}

func (e *RebaseInterruptError) Unwrap() error { return e.Err }

// RebaseRequest is a request to rebase a branch.
type RebaseRequest struct {
	// Branch is the branch to rebase.
	Branch string

	// Upstream is the commit the branch started from.
	// Commits between Upstream and Branch are replayed.
	Upstream string

	// Onto is the new base commit.
	// Defaults to Upstream.
	Onto string

	// Autostash stashes dirty changes before the rebase
	// and re-applies them afterwards.
	Autostash bool

	// Quiet reduces the output of the rebase.
	Quiet bool
}

// Rebase runs git rebase in the worktree.
// It returns [*RebaseInterruptError] if the rebase stopped midway.
func (w *Worktree) Rebase(ctx context.Context, req RebaseRequest) error {
	args := []string{
		// We print our own guidance on conflicts.
		"-c", "advice.mergeConflict=false",
		"rebase",
	}
	if req.Onto != "" {
		args = append(args, "--onto", req.Onto)
	}
	if req.Autostash {
		args = append(args, "--autostash")
	}
	if req.Quiet {
		args = append(args, "--quiet")
	}
	if req.Upstream != "" {
		args = append(args, req.Upstream)
	}
	if req.Branch != "" {
		args = append(args, req.Branch)
	}

	w.log.Debug("Rebasing branch",
		"branch", req.Branch,
		"onto", req.Onto,
		"upstream", req.Upstream,
		"dir", w.rootDir,
	)

	if err := w.gitCmd(ctx, args...).Run(); err != nil {
		return w.handleRebaseError(ctx, err)
	}

	// A rebase that exits cleanly but leaves state behind
	// was stopped on purpose.
	if state, err := w.RebaseState(ctx); err == nil {
		return &RebaseInterruptError{
			Kind:  RebaseInterruptDeliberate,
			State: state,
		}
	}

	if req.Autostash {
		// git exits zero even if the autostash could not be re-applied.
		unmerged, err := w.gitCmd(ctx, "diff", "--name-only", "--diff-filter=U").OutputChomp()
		if err != nil {
			return fmt.Errorf("check unmerged files: %w", err)
		}
		if unmerged != "" {
			return fmt.Errorf("%v: stashed changes could not be re-applied: %v",
				req.Branch, strings.ReplaceAll(unmerged, "\n", ", "))
		}
	}

	return nil
}

func (w *Worktree) handleRebaseError(ctx context.Context, err error) error {
	originalErr := err
	if exitErr := new(xec.ExitError); !errors.As(err, &exitErr) {
		return fmt.Errorf("rebase: %w", err)
	}

	state, err := w.RebaseState(ctx)
	if err != nil {
		// Rebase failed before it started (bad ref, dirty tree, ...).
		w.log.Debug("Failed to read rebase state", "error", err)
		return fmt.Errorf("rebase: %w", originalErr)
	}

	return &RebaseInterruptError{
		Err:   originalErr,
		Kind:  RebaseInterruptConflict,
		State: state,
	}
}

// RebaseAbort aborts an ongoing rebase,
// restoring the branch to its state before the rebase.
func (w *Worktree) RebaseAbort(ctx context.Context) error {
	if err := w.gitCmd(ctx, "rebase", "--abort").Run(); err != nil {
		return fmt.Errorf("rebase abort: %w", err)
	}
	return nil
}

// RebaseState holds information about an ongoing rebase.
type RebaseState struct {
	// Branch is the branch being rebased.
	Branch string
}

// ErrNoRebase indicates that a rebase is not in progress.
var ErrNoRebase = errors.New("no rebase in progress")

// RebaseState loads information about an ongoing rebase,
// or [ErrNoRebase] if no rebase is in progress.
func (w *Worktree) RebaseState(context.Context) (*RebaseState, error) {
	// There's no porcelain for this.
	// git keeps the state in .git/rebase-merge or .git/rebase-apply,
	// and head-name holds the ref being rebased.
	for _, name := range []string{"rebase-merge", "rebase-apply"} {
		stateDir := filepath.Join(w.gitDir, name)
		if _, err := os.Stat(stateDir); err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			return nil, fmt.Errorf("check %v: %w", name, err)
		}

		head, err := os.ReadFile(filepath.Join(stateDir, "head-name"))
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("read %v head: %w", name, err)
		}

		return &RebaseState{
			Branch: strings.TrimPrefix(strings.TrimSpace(string(head)), "refs/heads/"),
		}, nil
	}

	return nil, ErrNoRebase
}
