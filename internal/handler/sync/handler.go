// Package sync brings local stacks up to date with the remote:
// it fast-forwards trunk branches, removes branches that were merged,
// and restacks what remains.
package sync

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/SarthakJariwala/panqake/internal/git"
	"github.com/SarthakJariwala/panqake/internal/graph"
	"github.com/SarthakJariwala/panqake/internal/handler/update"
	"github.com/SarthakJariwala/panqake/internal/mutate"
	"github.com/SarthakJariwala/panqake/internal/restack"
	"github.com/SarthakJariwala/panqake/internal/silog"
	"github.com/SarthakJariwala/panqake/internal/ui"
)

//go:generate mockgen -destination=mocks_test.go -package=sync . GitRepository,GitWorktree,Mutator,Updater

// GitRepository is the subset of the git.Repository API used here.
type GitRepository interface {
	Fetch(ctx context.Context, remote string, refspecs ...string) error
	ResolveWorktreePath(ctx context.Context, branch string) (string, error)
	MergedBranches(ctx context.Context, into string) ([]string, error)
	BranchExists(ctx context.Context, branch string) bool
}

var _ GitRepository = (*git.Repository)(nil)

// GitWorktree is the subset of the git.Worktree API used here.
type GitWorktree interface {
	RootDir() string
	CurrentBranch(ctx context.Context) (string, error)
	Checkout(ctx context.Context, branch string) error
	PullFastForward(ctx context.Context, remote, branch string) error
}

var _ GitWorktree = (*git.Worktree)(nil)

// Mutator changes the branch graph.
type Mutator interface {
	Graph(ctx context.Context) (*graph.Graph, error)
	Promote(ctx context.Context, req mutate.PromoteRequest) (*mutate.PromoteResponse, error)
}

var _ Mutator = (*mutate.Mutator)(nil)

// Updater restacks branches.
type Updater interface {
	Update(ctx context.Context, req *update.Request) (*restack.Report, error)
}

var _ Updater = (*update.Handler)(nil)

// Handler syncs the repository with its remote.
type Handler struct {
	Log      *silog.Logger // required
	View     ui.View       // required
	Repo     GitRepository // required
	Worktree GitWorktree   // required
	Mutator  Mutator       // required
	Updater  Updater       // required

	// OpenWorktree opens the worktree at dir.
	// It is used to fast-forward branches checked out elsewhere.
	// If nil, such branches are reported as errors.
	OpenWorktree func(ctx context.Context, dir string) (GitWorktree, error)

	// Remote to sync with. Defaults to "origin".
	Remote string
}

func (h *Handler) remote() string {
	if h.Remote == "" {
		return "origin"
	}
	return h.Remote
}

// FastForward updates a local branch to match its remote counterpart.
//
// A branch that isn't checked out anywhere is updated with a fetch.
// Otherwise, the worktree it is checked out in pulls it.
// Either way, the update fails if it isn't a fast-forward.
func (h *Handler) FastForward(ctx context.Context, branch string) error {
	dir, err := h.Repo.ResolveWorktreePath(ctx, branch)
	if err != nil {
		return fmt.Errorf("find worktree for %v: %w", branch, err)
	}

	if dir == "" {
		h.Log.Debug("Fetching branch", "remote", h.remote(), "branch", branch)
		return h.Repo.Fetch(ctx, h.remote(), branch+":"+branch)
	}

	wt := h.Worktree
	if dir != h.Worktree.RootDir() {
		if h.OpenWorktree == nil {
			return fmt.Errorf("%v is checked out in %v", branch, dir)
		}
		wt, err = h.OpenWorktree(ctx, dir)
		if err != nil {
			return fmt.Errorf("open worktree %v: %w", dir, err)
		}
	}

	h.Log.Debug("Pulling branch", "remote", h.remote(), "branch", branch, "dir", dir)
	return wt.PullFastForward(ctx, h.remote(), branch)
}

// Options controls a sync.
type Options struct {
	// NoPush skips pushing restacked branches.
	NoPush bool

	// Yes removes merged branches without asking.
	// Without it, merged branches are kept in non-interactive mode.
	Yes bool
}

// Result reports what a sync did.
type Result struct {
	// Removed lists merged branches that were deleted.
	Removed []string

	// Kept lists merged branches the user chose to keep.
	Kept []string
}

// Sync updates trunk branches from the remote,
// removes tracked branches that were merged into them,
// and restacks everything else on top.
//
// Errors from restacking a trunk's stacks don't stop the others.
// They are joined and returned after the original branch is restored.
func (h *Handler) Sync(ctx context.Context, opts *Options) (*Result, error) {
	if opts == nil {
		opts = &Options{}
	}

	original, err := h.Worktree.CurrentBranch(ctx)
	if err != nil && !errors.Is(err, git.ErrDetachedHead) {
		return nil, fmt.Errorf("get current branch: %w", err)
	}

	g, err := h.Mutator.Graph(ctx)
	if err != nil {
		return nil, err
	}

	var trunks []string
	for _, t := range g.Trunks() {
		if h.Repo.BranchExists(ctx, t) {
			trunks = append(trunks, t)
		}
	}
	if len(trunks) == 0 {
		return nil, fmt.Errorf("none of the trunk branches exist: %v", g.Trunks())
	}

	var res Result
	for _, trunk := range trunks {
		if err := h.FastForward(ctx, trunk); err != nil {
			h.Log.Warnf("%v: could not fast-forward: %v", trunk, err)
		} else {
			h.Log.Infof("%v: fast-forwarded from %v", trunk, h.remote())
		}

		if err := h.removeMerged(ctx, g, trunk, opts.Yes, &res); err != nil {
			return &res, err
		}
	}

	var errs []error
	for _, trunk := range trunks {
		_, err := h.Updater.Update(ctx, &update.Request{
			Branch: trunk,
			Push:   !opts.NoPush,
			Yes:    true,
		})
		if err != nil {
			errs = append(errs, fmt.Errorf("update %v: %w", trunk, err))
		}
	}

	if err := h.restore(ctx, original, trunks[0]); err != nil {
		errs = append(errs, err)
	}
	return &res, errors.Join(errs...)
}

func (h *Handler) removeMerged(ctx context.Context, g *graph.Graph, trunk string, yes bool, res *Result) error {
	merged, err := h.Repo.MergedBranches(ctx, trunk)
	if err != nil {
		return err
	}

	// Children of a promoted branch move onto the trunk,
	// so they are candidates in the same run.
	queue := g.ChildrenOf(trunk)
	for len(queue) > 0 {
		branch := queue[0]
		queue = queue[1:]
		if !slices.Contains(merged, branch) {
			continue
		}

		if !yes {
			if !ui.Interactive(h.View) {
				h.Log.Infof("%v: merged into %v. Use --yes to delete it.", branch, trunk)
				res.Kept = append(res.Kept, branch)
				continue
			}

			remove := true
			prompt := ui.NewConfirm().
				WithTitle(fmt.Sprintf("Delete %v?", branch)).
				WithDescription(fmt.Sprintf("%v has been merged into %v", branch, trunk)).
				WithValue(&remove)
			if err := ui.Run(h.View, prompt); err != nil {
				return fmt.Errorf("prompt: %w", err)
			}
			if !remove {
				res.Kept = append(res.Kept, branch)
				continue
			}
		}

		resp, err := h.Mutator.Promote(ctx, mutate.PromoteRequest{
			Branch:    branch,
			DeleteRef: true,
		})
		if err != nil {
			return fmt.Errorf("remove %v: %w", branch, err)
		}
		res.Removed = append(res.Removed, branch)
		if resp.Parent == trunk {
			queue = append(queue, resp.Children...)
		}

		if len(resp.Children) > 0 {
			h.Log.Infof("%v: deleted; moved %v onto %v", branch, resp.Children, resp.Parent)
		} else {
			h.Log.Infof("%v: deleted", branch)
		}
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
