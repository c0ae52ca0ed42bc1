// Package merge merges a branch's pull request
// and moves the rest of its stack onto its parent.
package merge

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/SarthakJariwala/panqake/internal/forge"
	"github.com/SarthakJariwala/panqake/internal/git"
	"github.com/SarthakJariwala/panqake/internal/graph"
	"github.com/SarthakJariwala/panqake/internal/handler/sync"
	"github.com/SarthakJariwala/panqake/internal/handler/update"
	"github.com/SarthakJariwala/panqake/internal/mutate"
	"github.com/SarthakJariwala/panqake/internal/restack"
	"github.com/SarthakJariwala/panqake/internal/silog"
	"github.com/SarthakJariwala/panqake/internal/ui"
)

//go:generate mockgen -destination=mocks_test.go -package=merge . GitRepository,GitWorktree,Mutator,FastForwarder,Updater

// GitRepository is the subset of the git.Repository API used here.
type GitRepository interface {
	BranchExists(ctx context.Context, branch string) bool
	DeleteRemoteBranch(ctx context.Context, remote, branch string) error
}

var _ GitRepository = (*git.Repository)(nil)

// GitWorktree is the subset of the git.Worktree API used here.
type GitWorktree interface {
	CurrentBranch(ctx context.Context) (string, error)
	Checkout(ctx context.Context, branch string) error
}

var _ GitWorktree = (*git.Worktree)(nil)

// Mutator changes the branch graph.
type Mutator interface {
	Graph(ctx context.Context) (*graph.Graph, error)
	Promote(ctx context.Context, req mutate.PromoteRequest) (*mutate.PromoteResponse, error)
}

var _ Mutator = (*mutate.Mutator)(nil)

// FastForwarder brings a local branch up to date with the remote.
type FastForwarder interface {
	FastForward(ctx context.Context, branch string) error
}

var _ FastForwarder = (*sync.Handler)(nil)

// Updater restacks branches.
type Updater interface {
	Update(ctx context.Context, req *update.Request) (*restack.Report, error)
}

var _ Updater = (*update.Handler)(nil)

// Handler merges pull requests.
type Handler struct {
	Log      *silog.Logger    // required
	View     ui.View          // required
	Repo     GitRepository    // required
	Worktree GitWorktree      // required
	Mutator  Mutator          // required
	Forge    forge.Repository // required
	Pull     FastForwarder    // required
	Updater  Updater          // required

	// Remote the pull request's branch lives on. Defaults to "origin".
	Remote string
}

func (h *Handler) remote() string {
	if h.Remote == "" {
		return "origin"
	}
	return h.Remote
}

// Request is a request to merge a branch.
type Request struct {
	Branch string // required

	// Strategy to merge with. Defaults to squash.
	Strategy forge.MergeStrategy

	// Force merges even if checks failed or are still running.
	Force bool

	// NoDeleteBranch keeps the branch on the remote.
	NoDeleteBranch bool

	// NoUpdate skips restacking the children onto the parent.
	NoUpdate bool

	// NoPush skips pushing restacked children.
	NoPush bool
}

// Result reports what a merge did.
type Result struct {
	PR *forge.PullRequest

	// Promoted describes how the graph changed.
	Promoted *mutate.PromoteResponse

	// Report is the result of restacking the children.
	// It is nil if nothing was restacked.
	Report *restack.Report
}

// Merge merges the pull request for a branch,
// then removes the branch and restacks its children onto its parent.
//
// Failures after the pull request is merged are logged and,
// where they leave the stack out of date, returned
// after the original branch has been checked out again.
func (h *Handler) Merge(ctx context.Context, req *Request) (*Result, error) {
	original, err := h.Worktree.CurrentBranch(ctx)
	if err != nil && !errors.Is(err, git.ErrDetachedHead) {
		return nil, fmt.Errorf("get current branch: %w", err)
	}

	g, err := h.Mutator.Graph(ctx)
	if err != nil {
		return nil, err
	}

	branch := req.Branch
	if g.IsTrunk(branch) {
		return nil, &graph.ProtectedBranchError{Branch: branch, Op: "merge"}
	}
	if !g.IsTracked(branch) {
		return nil, &mutate.NotTrackedError{Branch: branch}
	}
	parent, ok := g.ParentOf(branch)
	if !ok {
		return nil, fmt.Errorf("%v has no parent to merge into", branch)
	}

	pr, err := h.Forge.FindPullRequest(ctx, branch)
	if err != nil {
		if errors.Is(err, forge.ErrNotFound) {
			return nil, fmt.Errorf("%v has no open pull request: submit it with 'pq submit %v'", branch, branch)
		}
		return nil, err
	}
	if pr.Base != parent {
		h.Log.Warnf("%v: %v targets %v, not %v", branch, pr, pr.Base, parent)
	}

	if err := h.checkStatus(ctx, pr, req.Force); err != nil {
		return nil, err
	}

	children := g.ChildrenOf(branch)
	if err := h.retarget(ctx, children, parent); err != nil {
		return nil, err
	}

	strategy := req.Strategy
	if strategy == 0 {
		strategy = forge.MergeSquash
	}
	if err := h.Forge.MergePullRequest(ctx, pr, strategy); err != nil {
		return nil, err
	}
	h.Log.Infof("%v: merged %v into %v (%v)", branch, pr, parent, strategy)

	res := &Result{PR: pr}
	if !req.NoDeleteBranch {
		if err := h.Repo.DeleteRemoteBranch(ctx, h.remote(), branch); err != nil {
			h.Log.Warnf("%v: could not delete remote branch: %v", branch, err)
		}
	}

	if err := h.Pull.FastForward(ctx, parent); err != nil {
		h.Log.Warnf("%v: could not fast-forward: %v", parent, err)
	}

	res.Promoted, err = h.Mutator.Promote(ctx, mutate.PromoteRequest{
		Branch:    branch,
		DeleteRef: true,
	})
	if err != nil {
		return res, fmt.Errorf("remove %v: %w", branch, err)
	}

	var errs []error
	if !req.NoUpdate && len(res.Promoted.Children) > 0 {
		res.Report, err = h.Updater.Update(ctx, &update.Request{
			Branch: parent,
			Push:   !req.NoPush,
			Yes:    true,
		})
		if err != nil {
			errs = append(errs, fmt.Errorf("update %v: %w", parent, err))
		}
	}

	if err := h.restore(ctx, original, parent); err != nil {
		errs = append(errs, err)
	}
	return res, errors.Join(errs...)
}

// checkStatus refuses to merge a pull request with failed checks,
// and asks before merging one with checks still running.
func (h *Handler) checkStatus(ctx context.Context, pr *forge.PullRequest, force bool) error {
	checks, err := h.Forge.ChecksStatus(ctx, pr)
	if err != nil {
		if force {
			h.Log.Warnf("%v: could not get checks: %v", pr, err)
			return nil
		}
		return err
	}

	switch checks.State {
	case forge.ChecksPassed:
		return nil

	case forge.ChecksFailed:
		var failed []string
		for _, d := range checks.Details {
			if d.State == forge.ChecksFailed {
				failed = append(failed, d.Name)
			}
		}
		if force {
			h.Log.Warnf("%v: merging despite failed checks: %v", pr, strings.Join(failed, ", "))
			return nil
		}
		return fmt.Errorf("%v has failed checks: %v: use --force to merge anyway", pr, strings.Join(failed, ", "))

	case forge.ChecksPending:
		if force {
			return nil
		}
		if !ui.Interactive(h.View) {
			return fmt.Errorf("%v has checks that are still running: use --force to merge anyway", pr)
		}

		var proceed bool
		prompt := ui.NewConfirm().
			WithTitle("Merge anyway?").
			WithDescription(fmt.Sprintf("Checks on %v are still running", pr)).
			WithValue(&proceed)
		if err := ui.Run(h.View, prompt); err != nil {
			return fmt.Errorf("prompt: %w", err)
		}
		if !proceed {
			return errors.New("merge aborted")
		}
		return nil

	default:
		return fmt.Errorf("%v: unknown checks state: %v", pr, checks.State)
	}
}

// retarget points the pull requests of children at parent
// so that they stay open when the merged branch is deleted.
func (h *Handler) retarget(ctx context.Context, children []string, parent string) error {
	for _, child := range children {
		pr, err := h.Forge.FindPullRequest(ctx, child)
		if err != nil {
			if errors.Is(err, forge.ErrNotFound) {
				continue
			}
			return err
		}
		if pr.Base == parent {
			continue
		}

		if err := h.Forge.UpdateBase(ctx, pr, parent); err != nil {
			return fmt.Errorf("retarget %v: %w", child, err)
		}
		h.Log.Infof("%v: retargeted %v to %v", child, pr, parent)
	}
	return nil
}

// restore checks out original again, or fallback if it no longer exists.
// A detached HEAD is left alone.
func (h *Handler) restore(ctx context.Context, original, fallback string) error {
	if original == "" {
		return nil
	}

	target := original
	if !h.Repo.BranchExists(ctx, target) {
		target = fallback
	}

	current, err := h.Worktree.CurrentBranch(ctx)
	if err == nil && current == target {
		return nil
	}
	if err := h.Worktree.Checkout(ctx, target); err != nil {
		return fmt.Errorf("return to %v: %w", target, err)
	}
	return nil
}
