package restack

import (
	"fmt"
	"strings"
)

// Outcome is the terminal state of a single branch in a run.
type Outcome int

const (
	// Updated indicates that the branch was rebased
	// and its tip changed.
	Updated Outcome = iota + 1

	// AlreadyUpToDate indicates that the branch was already
	// based on the tip of its parent.
	AlreadyUpToDate

	// Conflict indicates that the rebase stopped with conflicts.
	// The rebase was aborted and the branch is unchanged.
	Conflict

	// AdapterError indicates an unexpected failure from git.
	AdapterError

	// Skipped indicates that the branch was not attempted
	// because one of its ancestors was not updated.
	Skipped
)

func (o Outcome) String() string {
	switch o {
	case Updated:
		return "updated"
	case AlreadyUpToDate:
		return "already-up-to-date"
	case Conflict:
		return "conflict"
	case AdapterError:
		return "adapter-error"
	case Skipped:
		return "skipped"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// Succeeded reports whether the outcome leaves the branch
// based on its parent.
func (o Outcome) Succeeded() bool {
	return o == Updated || o == AlreadyUpToDate
}

// Entry is the result for a single branch.
type Entry struct {
	Branch string
	Parent string

	Outcome Outcome

	// Detail is a human-readable summary of the outcome.
	Detail string

	// Cause names the failed ancestor for Skipped entries.
	Cause string

	// Err is the failure for Conflict and AdapterError entries.
	Err error

	// Pushed is set if the branch was pushed after the rebase.
	Pushed bool

	// PushErr is set if pushing the branch failed.
	PushErr error
}

// Report lists the outcome of each branch a run touched,
// in the order they were processed.
// Parents always appear before their children.
type Report struct {
	Entries []*Entry
}

// Entry returns the entry for the given branch, or nil.
func (r *Report) Entry(branch string) *Entry {
	for _, e := range r.Entries {
		if e.Branch == branch {
			return e
		}
	}
	return nil
}

// Succeeded lists entries that ended up based on their parent.
func (r *Report) Succeeded() []*Entry {
	return r.filter(func(e *Entry) bool { return e.Outcome.Succeeded() })
}

// Failed lists entries that were not brought up to date,
// including skipped entries.
func (r *Report) Failed() []*Entry {
	return r.filter(func(e *Entry) bool { return !e.Outcome.Succeeded() })
}

// Updated lists entries whose tips changed.
func (r *Report) Updated() []*Entry {
	return r.filter(func(e *Entry) bool { return e.Outcome == Updated })
}

// OK reports whether every branch was brought up to date
// and every push succeeded.
func (r *Report) OK() bool {
	for _, e := range r.Entries {
		if !e.Outcome.Succeeded() || e.PushErr != nil {
			return false
		}
	}
	return true
}

// Err returns a [*FailedError] if branches failed
// and none succeeded.
// A partially successful run is not an error:
// callers present the failures from the report.
func (r *Report) Err() error {
	failed := r.Failed()
	if len(failed) == 0 || len(r.Succeeded()) > 0 {
		return nil
	}

	branches := make([]string, len(failed))
	for i, e := range failed {
		branches[i] = e.Branch
	}
	return &FailedError{Branches: branches}
}

func (r *Report) filter(keep func(*Entry) bool) []*Entry {
	var out []*Entry
	for _, e := range r.Entries {
		if keep(e) {
			out = append(out, e)
		}
	}
	return out
}

// FailedError indicates that no branch in a run could be updated.
type FailedError struct {
	Branches []string
}

func (e *FailedError) Error() string {
	return fmt.Sprintf("could not update any branch: %v", strings.Join(e.Branches, ", "))
}

// WorktreeUnusableError indicates that a worktree was left
// in a state where no further rebases can run,
// e.g. a rebase that could not be aborted.
type WorktreeUnusableError struct {
	Dir string

	// Branch is the branch being processed, if any.
	Branch string

	Err error
}

func (e *WorktreeUnusableError) Error() string {
	var msg strings.Builder
	fmt.Fprintf(&msg, "worktree %v is unusable", e.Dir)
	if e.Branch != "" {
		fmt.Fprintf(&msg, " after rebasing %v", e.Branch)
	}
	if e.Err != nil {
		fmt.Fprintf(&msg, ": %v", e.Err)
	}
	return msg.String()
}

func (e *WorktreeUnusableError) Unwrap() error { return e.Err }
