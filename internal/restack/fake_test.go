package restack

import (
	"context"
	"errors"
	"fmt"

	"github.com/SarthakJariwala/panqake/internal/git"
)

// fakeRepo is an in-memory commit graph that rebases the way git does:
// commits between the upstream and the branch tip are replayed onto
// the new base as new commits.
// testingT is satisfied by *testing.T and *rapid.T.
type testingT interface {
	Helper()
	Fatalf(string, ...any)
}

type fakeRepo struct {
	t testingT

	next    int
	commits map[git.Hash]git.Hash // commit -> parent ("" for root)
	refs    map[string]git.Hash
	reflog  map[string][]git.Hash // every tip a branch has had
	remote  map[string]git.Hash

	conflicts  map[string]bool   // branches whose rebase conflicts
	mirror     map[string]bool   // branches whose tips the remote follows
	worktrees  map[string]string // branch -> worktree dir
	pushErrs   map[string]error
	pushes     []git.PushOptions
	resolveErr error
}

var _ GitRepository = (*fakeRepo)(nil)

func newFakeRepo(t testingT) *fakeRepo {
	r := &fakeRepo{
		t:         t,
		commits:   make(map[git.Hash]git.Hash),
		refs:      make(map[string]git.Hash),
		reflog:    make(map[string][]git.Hash),
		remote:    make(map[string]git.Hash),
		conflicts: make(map[string]bool),
		mirror:    make(map[string]bool),
		worktrees: make(map[string]string),
		pushErrs:  make(map[string]error),
	}
	r.setRef("main", r.newCommit(""))
	return r
}

func (r *fakeRepo) newCommit(parent git.Hash) git.Hash {
	r.next++
	h := git.Hash(fmt.Sprintf("c%03d", r.next))
	r.commits[h] = parent
	return h
}

func (r *fakeRepo) setRef(branch string, h git.Hash) {
	r.refs[branch] = h
	r.reflog[branch] = append(r.reflog[branch], h)
	if r.mirror[branch] {
		r.remote[branch] = h
	}
}

// branch creates branch with one commit on top of parent.
func (r *fakeRepo) branch(name, parent string) {
	r.t.Helper()
	base, ok := r.refs[parent]
	if !ok {
		r.t.Fatalf("unknown parent %v", parent)
	}
	r.setRef(name, r.newCommit(base))
}

// advance adds a commit to branch.
func (r *fakeRepo) advance(branch string) {
	r.setRef(branch, r.newCommit(r.refs[branch]))
}

// publish copies the local tip of branch to the remote.
func (r *fakeRepo) publish(branch string) {
	r.remote[branch] = r.refs[branch]
}

func (r *fakeRepo) PeelToCommit(_ context.Context, ref string) (git.Hash, error) {
	if h, ok := r.refs[ref]; ok {
		return h, nil
	}
	if _, ok := r.commits[git.Hash(ref)]; ok {
		return git.Hash(ref), nil
	}
	return "", git.ErrNotExist
}

func (r *fakeRepo) IsAncestor(_ context.Context, a, b git.Hash) bool {
	for h := b; h != ""; h = r.commits[h] {
		if h == a {
			return true
		}
	}
	return false
}

// ForkPoint returns the first commit of branch
// that upstream has pointed at or contained at some point.
func (r *fakeRepo) ForkPoint(ctx context.Context, upstream, branch string) (git.Hash, error) {
	known := make(map[git.Hash]struct{})
	for _, tip := range r.reflog[upstream] {
		for h := tip; h != ""; h = r.commits[h] {
			known[h] = struct{}{}
		}
	}
	for h := r.refs[branch]; h != ""; h = r.commits[h] {
		if _, ok := known[h]; ok {
			return h, nil
		}
	}
	return "", errors.New("no fork point")
}

func (r *fakeRepo) MergeBase(ctx context.Context, a, b string) (git.Hash, error) {
	for h := r.refs[b]; h != ""; h = r.commits[h] {
		if r.IsAncestor(ctx, h, r.refs[a]) {
			return h, nil
		}
	}
	return "", errors.New("no merge base")
}

func (r *fakeRepo) ResolveWorktreePath(_ context.Context, branch string) (string, error) {
	if r.resolveErr != nil {
		return "", r.resolveErr
	}
	return r.worktrees[branch], nil
}

func (r *fakeRepo) RemoteBranchHash(_ context.Context, _, branch string) (git.Hash, error) {
	if h, ok := r.remote[branch]; ok {
		return h, nil
	}
	return "", git.ErrNotExist
}

func (r *fakeRepo) Push(_ context.Context, opts git.PushOptions) error {
	if err := r.pushErrs[opts.Refspec]; err != nil {
		return err
	}
	r.pushes = append(r.pushes, opts)
	r.remote[opts.Refspec] = r.refs[opts.Refspec]
	return nil
}

func (r *fakeRepo) pushed() []string {
	var names []string
	for _, p := range r.pushes {
		names = append(names, p.Refspec)
	}
	return names
}

func (r *fakeRepo) rebase(req git.RebaseRequest) error {
	tip, ok := r.refs[req.Branch]
	if !ok {
		return fmt.Errorf("unknown branch %v", req.Branch)
	}

	var replay []git.Hash
	for h := tip; h != git.Hash(req.Upstream); h = r.commits[h] {
		if h == "" {
			return fmt.Errorf("%v is not an ancestor of %v", req.Upstream, req.Branch)
		}
		replay = append(replay, h)
	}

	if r.conflicts[req.Branch] {
		return &git.RebaseInterruptError{
			Kind:  git.RebaseInterruptConflict,
			State: &git.RebaseState{Branch: req.Branch},
		}
	}

	head := git.Hash(req.Onto)
	for range replay {
		head = r.newCommit(head)
	}
	if head != tip {
		r.setRef(req.Branch, head)
	}
	return nil
}

type fakeWorktree struct {
	repo *fakeRepo
	dir  string

	current  string
	rebasing string // branch being rebased
	abortErr error

	checkouts []string
}

var _ GitWorktree = (*fakeWorktree)(nil)

func (r *fakeRepo) worktree(dir, current string) *fakeWorktree {
	return &fakeWorktree{repo: r, dir: dir, current: current}
}

func (w *fakeWorktree) RootDir() string { return w.dir }

func (w *fakeWorktree) CurrentBranch(context.Context) (string, error) {
	if w.current == "" {
		return "", git.ErrDetachedHead
	}
	return w.current, nil
}

func (w *fakeWorktree) Checkout(_ context.Context, branch string) error {
	if _, ok := w.repo.refs[branch]; !ok {
		return fmt.Errorf("unknown branch %v", branch)
	}
	w.current = branch
	w.checkouts = append(w.checkouts, branch)
	return nil
}

func (w *fakeWorktree) Rebase(_ context.Context, req git.RebaseRequest) error {
	if w.rebasing != "" {
		return errors.New("rebase already in progress")
	}
	err := w.repo.rebase(req)
	if interrupt := new(git.RebaseInterruptError); errors.As(err, &interrupt) {
		w.rebasing = req.Branch
		return err
	}
	if err == nil {
		w.current = req.Branch
	}
	return err
}

func (w *fakeWorktree) RebaseAbort(context.Context) error {
	if w.abortErr != nil {
		return w.abortErr
	}
	w.rebasing = ""
	return nil
}

func (w *fakeWorktree) RebaseState(context.Context) (*git.RebaseState, error) {
	if w.rebasing == "" {
		return nil, git.ErrNoRebase
	}
	return &git.RebaseState{Branch: w.rebasing}, nil
}
