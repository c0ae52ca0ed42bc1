// Package restack rebases a branch and everything stacked on it
// onto their parents, one branch at a time.
//
// A failure in one branch stops only the branches stacked on it;
// independent branches are still processed.
package restack

import (
	"context"
	"errors"
	"fmt"

	"github.com/SarthakJariwala/panqake/internal/git"
	"github.com/SarthakJariwala/panqake/internal/graph"
	"github.com/SarthakJariwala/panqake/internal/silog"
)

//go:generate mockgen -destination=mocks_test.go -package=restack . GitRepository,GitWorktree

// GitRepository is the subset of the git.Repository API used by the engine.
type GitRepository interface {
	PeelToCommit(ctx context.Context, ref string) (git.Hash, error)
	IsAncestor(ctx context.Context, a, b git.Hash) bool
	ForkPoint(ctx context.Context, upstream, branch string) (git.Hash, error)
	MergeBase(ctx context.Context, a, b string) (git.Hash, error)
	ResolveWorktreePath(ctx context.Context, branch string) (string, error)
	RemoteBranchHash(ctx context.Context, remote, branch string) (git.Hash, error)
	Push(ctx context.Context, opts git.PushOptions) error
}

var _ GitRepository = (*git.Repository)(nil)

// GitWorktree is the subset of the git.Worktree API used by the engine.
type GitWorktree interface {
	RootDir() string
	CurrentBranch(ctx context.Context) (string, error)
	Checkout(ctx context.Context, branch string) error
	Rebase(ctx context.Context, req git.RebaseRequest) error
	RebaseAbort(ctx context.Context) error
	RebaseState(ctx context.Context) (*git.RebaseState, error)
}

var _ GitWorktree = (*git.Worktree)(nil)

// Engine restacks branches.
type Engine struct {
	Log      *silog.Logger // required
	Repo     GitRepository // required
	Worktree GitWorktree   // required

	// OpenWorktree opens the worktree at the given directory.
	// It is used for branches checked out in another worktree.
	// If nil, such branches fail with an AdapterError.
	OpenWorktree func(ctx context.Context, dir string) (GitWorktree, error)

	// Remote to push to. Defaults to "origin".
	Remote string
}

// Request specifies the branches to restack.
type Request struct {
	// Start is the branch whose content changed.
	// Start and all its descendants are restacked.
	// If Start has no parent (e.g. trunk), only its descendants are.
	Start string // required

	// Push pushes branches that were updated.
	Push bool

	// NewBranches lists branches that should be pushed
	// even if the remote does not have them yet.
	NewBranches []string
}

// Run restacks req.Start and its descendants in g.
//
// Per-branch failures are recorded in the report, not returned.
// The returned error is non-nil only if the run could not continue:
// a worktree became unusable or ctx was cancelled.
// The partial report is returned alongside such errors.
func (e *Engine) Run(ctx context.Context, g *graph.Graph, req Request) (*Report, error) {
	r := run{
		Engine:    e,
		g:         g,
		log:       e.Log,
		report:    new(Report),
		failed:    make(map[string]string),
		worktrees: make(map[string]GitWorktree),
		remote:    e.Remote,
	}
	if r.remote == "" {
		r.remote = "origin"
	}

	if state, err := e.Worktree.RebaseState(ctx); err == nil {
		return r.report, &WorktreeUnusableError{
			Dir: e.Worktree.RootDir(),
			Err: fmt.Errorf("a rebase of %v is already in progress", state.Branch),
		}
	}

	original, err := e.Worktree.CurrentBranch(ctx)
	if err != nil {
		// Detached HEAD is fine; we just won't restore it.
		e.Log.Debug("Could not determine current branch", "error", err)
		original = ""
	}

	runErr := r.rebaseAll(ctx, req)
	if runErr == nil && req.Push {
		runErr = r.pushAll(ctx, req.NewBranches)
	}

	var unusable *WorktreeUnusableError
	if original != "" && !errors.As(runErr, &unusable) {
		if err := e.Worktree.Checkout(context.WithoutCancel(ctx), original); err != nil {
			runErr = errors.Join(runErr, fmt.Errorf("return to %v: %w", original, err))
		}
	}

	return r.report, runErr
}

type run struct {
	*Engine

	g      *graph.Graph
	log    *silog.Logger
	remote string
	report *Report

	// failed maps branches that were not brought up to date
	// to the ancestor responsible.
	failed map[string]string

	worktrees map[string]GitWorktree // dir -> worktree
}

func (r *run) frontier(start string) []string {
	nodes := append([]string{start}, r.g.DescendantsOf(start)...)
	nodes = graph.Toposort(nodes, r.g.ParentOf)

	branches := nodes[:0]
	for _, b := range nodes {
		if _, ok := r.g.ParentOf(b); ok {
			branches = append(branches, b)
		}
	}
	return branches
}

func (r *run) rebaseAll(ctx context.Context, req Request) error {
	for _, branch := range r.frontier(req.Start) {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("stopped before %v: %w", branch, err)
		}

		parent, _ := r.g.ParentOf(branch)
		entry := &Entry{Branch: branch, Parent: parent}

		if cause, ok := r.failed[parent]; ok {
			entry.Outcome = Skipped
			entry.Cause = cause
			entry.Detail = fmt.Sprintf("skipped because %v was not updated", cause)
			r.failed[branch] = cause
			r.report.Entries = append(r.report.Entries, entry)
			r.log.Debug("Skipping branch", "branch", branch, "cause", cause)
			continue
		}

		err := r.rebaseOne(ctx, entry)
		r.report.Entries = append(r.report.Entries, entry)
		if !entry.Outcome.Succeeded() {
			r.failed[branch] = branch
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// rebaseOne fills in the outcome of entry.
// It returns an error only if the run must stop.
func (r *run) rebaseOne(ctx context.Context, entry *Entry) error {
	branch, parent := entry.Branch, entry.Parent
	log := r.log.With("branch", branch)

	fail := func(err error) error {
		entry.Outcome = AdapterError
		entry.Err = err
		entry.Detail = err.Error()
		return nil
	}

	wt, err := r.worktreeFor(ctx, branch)
	if err != nil {
		fail(err)
		if unusable := new(WorktreeUnusableError); errors.As(err, &unusable) {
			return err
		}
		return nil
	}

	parentTip, err := r.Repo.PeelToCommit(ctx, parent)
	if err != nil {
		return fail(fmt.Errorf("resolve parent %v: %w", parent, err))
	}
	before, err := r.Repo.PeelToCommit(ctx, branch)
	if err != nil {
		return fail(fmt.Errorf("resolve %v: %w", branch, err))
	}

	if r.Repo.IsAncestor(ctx, parentTip, before) {
		entry.Outcome = AlreadyUpToDate
		entry.Detail = fmt.Sprintf("already based on %v", parent)
		log.Debug("Branch does not need to be restacked", "parent", parent)
		return nil
	}

	// Fork point accounts for a parent that was amended
	// or rebased after the branch was created from it.
	upstream, err := r.Repo.ForkPoint(ctx, parent, branch)
	if err != nil {
		log.Debug("Could not find fork point, using merge base", "error", err)
		upstream, err = r.Repo.MergeBase(ctx, parent, branch)
		if err != nil {
			return fail(fmt.Errorf("find where %v diverged from %v: %w", branch, parent, err))
		}
	}

	log.Debug("Rebasing", "onto", parentTip, "upstream", upstream, "dir", wt.RootDir())
	err = wt.Rebase(ctx, git.RebaseRequest{
		Branch:    branch,
		Upstream:  upstream.String(),
		Onto:      parentTip.String(),
		Autostash: true,
		Quiet:     true,
	})
	if err != nil {
		var interruptErr *git.RebaseInterruptError
		if !errors.As(err, &interruptErr) {
			return fail(fmt.Errorf("rebase %v onto %v: %w", branch, parent, err))
		}

		entry.Outcome = Conflict
		entry.Err = err
		entry.Detail = fmt.Sprintf("conflict while rebasing onto %v", parent)

		if abortErr := wt.RebaseAbort(context.WithoutCancel(ctx)); abortErr != nil {
			return &WorktreeUnusableError{
				Dir:    wt.RootDir(),
				Branch: branch,
				Err:    abortErr,
			}
		}
		log.Debug("Aborted conflicting rebase")
		return nil
	}

	after, err := r.Repo.PeelToCommit(ctx, branch)
	if err != nil {
		return fail(fmt.Errorf("resolve %v after rebase: %w", branch, err))
	}

	if after == before {
		entry.Outcome = AlreadyUpToDate
		entry.Detail = fmt.Sprintf("already based on %v", parent)
	} else {
		entry.Outcome = Updated
		entry.Detail = fmt.Sprintf("rebased onto %v", parent)
	}
	return nil
}

// worktreeFor returns the worktree where branch must be rebased:
// the worktree it is checked out in, or the engine's worktree.
func (r *run) worktreeFor(ctx context.Context, branch string) (GitWorktree, error) {
	dir, err := r.Repo.ResolveWorktreePath(ctx, branch)
	if err != nil {
		return nil, fmt.Errorf("find worktree for %v: %w", branch, err)
	}
	if dir == "" || dir == r.Worktree.RootDir() {
		return r.Worktree, nil
	}

	if wt, ok := r.worktrees[dir]; ok {
		return wt, nil
	}
	if r.OpenWorktree == nil {
		return nil, fmt.Errorf("%v is checked out in %v", branch, dir)
	}

	wt, err := r.OpenWorktree(ctx, dir)
	if err != nil {
		return nil, fmt.Errorf("open worktree %v: %w", dir, err)
	}
	if state, err := wt.RebaseState(ctx); err == nil {
		return nil, &WorktreeUnusableError{
			Dir: dir,
			Err: fmt.Errorf("a rebase of %v is already in progress", state.Branch),
		}
	}

	r.worktrees[dir] = wt
	return wt, nil
}

func (r *run) pushAll(ctx context.Context, newBranches []string) error {
	isNew := make(map[string]struct{}, len(newBranches))
	for _, b := range newBranches {
		isNew[b] = struct{}{}
	}

	for _, entry := range r.report.Updated() {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("stopped before pushing %v: %w", entry.Branch, err)
		}

		branch := entry.Branch
		remoteTip, err := r.Repo.RemoteBranchHash(ctx, r.remote, branch)
		if err != nil {
			if !errors.Is(err, git.ErrNotExist) {
				entry.PushErr = fmt.Errorf("check remote: %w", err)
				continue
			}
			if _, ok := isNew[branch]; !ok {
				r.log.Debug("Not pushing branch absent from remote", "branch", branch)
				continue
			}
			remoteTip = ""
		}

		localTip, err := r.Repo.PeelToCommit(ctx, branch)
		if err != nil {
			entry.PushErr = err
			continue
		}
		if localTip == remoteTip {
			r.log.Debug("Remote is up to date", "branch", branch)
			continue
		}

		err = r.Repo.Push(ctx, git.PushOptions{
			Remote:         r.remote,
			Refspec:        branch,
			ForceWithLease: true,
			SetUpstream:    remoteTip.IsZero(),
		})
		if err != nil {
			entry.PushErr = err
			continue
		}
		entry.Pushed = true
	}
	return nil
}
