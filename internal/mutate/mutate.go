// Package mutate changes the structure of tracked branches.
//
// Every operation validates its request against the branch graph first,
// then saves the new metadata, and only then touches the repository.
// If the repository step fails, the metadata still describes
// the intended structure, except where noted.
package mutate

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"slices"

	"github.com/SarthakJariwala/panqake/internal/git"
	"github.com/SarthakJariwala/panqake/internal/graph"
	"github.com/SarthakJariwala/panqake/internal/must"
	"github.com/SarthakJariwala/panqake/internal/silog"
	"github.com/SarthakJariwala/panqake/internal/state"
)

//go:generate mockgen -destination=mocks_test.go -package=mutate . GitRepository,GitWorktree

// GitRepository provides the repository operations used by mutations.
type GitRepository interface {
	BranchExists(ctx context.Context, branch string) bool
	ListBranches(ctx context.Context) ([]string, error)
	PeelToCommit(ctx context.Context, ref string) (git.Hash, error)
	IsAncestor(ctx context.Context, a, b git.Hash) bool
	CreateBranch(ctx context.Context, name, head string) error
	DeleteBranch(ctx context.Context, branch string, opts git.BranchDeleteOptions) error
	RenameBranch(ctx context.Context, oldName, newName string) error
}

var _ GitRepository = (*git.Repository)(nil)

// GitWorktree is the worktree the user is working in.
type GitWorktree interface {
	CurrentBranch(ctx context.Context) (string, error)
	Checkout(ctx context.Context, branch string) error
}

var _ GitWorktree = (*git.Worktree)(nil)

// Store persists branch records for a repository.
type Store interface {
	Load(ctx context.Context) (state.Records, error)
	Save(ctx context.Context, records state.Records, msg string) error
}

var _ Store = (*state.RepoStore)(nil)

// Mutator performs structural changes to tracked branches.
type Mutator struct {
	Log      *silog.Logger // required
	Repo     GitRepository // required
	Worktree GitWorktree   // required
	Store    Store         // required

	// Trunks are the branches that stacks are based on.
	// They can never be tracked, deleted, or renamed.
	Trunks []string // required
}

// Graph loads the branch graph for the repository.
func (m *Mutator) Graph(ctx context.Context) (*graph.Graph, error) {
	_, g, err := m.load(ctx)
	return g, err
}

func (m *Mutator) load(ctx context.Context) (state.Records, *graph.Graph, error) {
	records, err := m.Store.Load(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("load branches: %w", err)
	}
	g := graph.New(records.Parents(), m.Trunks)
	dropped := g.Dropped()
	for _, b := range slices.Sorted(maps.Keys(dropped)) {
		m.Log.Warnf("%v: ignoring parent %v: it forms a cycle", b, dropped[b])
	}
	return records, g, nil
}

func (m *Mutator) save(ctx context.Context, records state.Records, g *graph.Graph, msg string) error {
	if err := m.Store.Save(ctx, records.WithParents(g.Parents()), msg); err != nil {
		return fmt.Errorf("save branches: %w", err)
	}
	return nil
}

// baseOf returns the branch that b is compared against:
// its parent, or the first trunk that exists.
func (m *Mutator) baseOf(ctx context.Context, g *graph.Graph, b string) string {
	if p, ok := g.ParentOf(b); ok && p != "" && m.Repo.BranchExists(ctx, p) {
		return p
	}
	for _, trunk := range g.Trunks() {
		if m.Repo.BranchExists(ctx, trunk) {
			return trunk
		}
	}
	return ""
}

// DeleteRequest is a request to delete a branch.
type DeleteRequest struct {
	Branch string // required

	// Force deletes the branch even if it has not been merged
	// into its parent.
	Force bool
}

// DeleteResponse reports what Delete did.
type DeleteResponse struct {
	// Parent is the parent the children were moved to.
	Parent string

	// Relinked lists the children that were moved to Parent.
	Relinked []string

	// CheckedOut is the branch checked out in place of the deleted one,
	// if it was the current branch.
	CheckedOut string
}

// Delete deletes a branch and its record,
// moving its children onto its parent.
func (m *Mutator) Delete(ctx context.Context, req DeleteRequest) (*DeleteResponse, error) {
	must.NotBeBlankf(req.Branch, "branch to delete must be set")

	records, g, err := m.load(ctx)
	if err != nil {
		return nil, err
	}
	if g.IsTrunk(req.Branch) {
		return nil, &graph.ProtectedBranchError{Branch: req.Branch, Op: "delete"}
	}
	if !m.Repo.BranchExists(ctx, req.Branch) {
		return nil, &BranchNotFoundError{Branch: req.Branch}
	}

	base := m.baseOf(ctx, g, req.Branch)
	if !req.Force {
		if err := m.checkMerged(ctx, req.Branch, base); err != nil {
			return nil, err
		}
	}

	resp := &DeleteResponse{Parent: base}
	if g.IsTracked(req.Branch) {
		resp.Parent, _ = g.ParentOf(req.Branch)
		resp.Relinked = g.Remove(req.Branch)
		if err := m.save(ctx, records, g, "delete: "+req.Branch); err != nil {
			return nil, err
		}
		m.Log.Debug("Removed branch record", "branch", req.Branch, "relinked", resp.Relinked)
	}

	checkedOut, err := m.leave(ctx, req.Branch, base)
	if err != nil {
		return nil, err
	}
	resp.CheckedOut = checkedOut

	if err := m.Repo.DeleteBranch(ctx, req.Branch, git.BranchDeleteOptions{Force: true}); err != nil {
		return nil, err
	}
	return resp, nil
}

func (m *Mutator) checkMerged(ctx context.Context, branch, base string) error {
	if base == "" {
		return &UnmergedError{Branch: branch}
	}
	head, err := m.Repo.PeelToCommit(ctx, branch)
	if err != nil {
		return fmt.Errorf("resolve %v: %w", branch, err)
	}
	baseHead, err := m.Repo.PeelToCommit(ctx, base)
	if err != nil {
		return fmt.Errorf("resolve %v: %w", base, err)
	}
	if !m.Repo.IsAncestor(ctx, head, baseHead) {
		return &UnmergedError{Branch: branch, Base: base}
	}
	return nil
}

// leave checks out target if branch is the current branch.
// It returns the branch it checked out, if any.
func (m *Mutator) leave(ctx context.Context, branch, target string) (string, error) {
	// Detached HEAD reports an error: nothing to leave.
	if current, err := m.Worktree.CurrentBranch(ctx); err != nil || current != branch {
		return "", nil
	}
	if target == "" {
		return "", fmt.Errorf("%v is checked out and there is no branch to switch to", branch)
	}
	if err := m.Worktree.Checkout(ctx, target); err != nil {
		return "", fmt.Errorf("switch to %v: %w", target, err)
	}
	return target, nil
}

// Rename renames a branch and updates the records that refer to it.
//
// If git fails to rename the branch,
// the metadata change is reverted.
func (m *Mutator) Rename(ctx context.Context, oldName, newName string) error {
	must.NotBeBlankf(oldName, "branch to rename must be set")
	must.NotBeBlankf(newName, "new branch name must be set")

	records, g, err := m.load(ctx)
	if err != nil {
		return err
	}
	if g.IsTrunk(oldName) {
		return &graph.ProtectedBranchError{Branch: oldName, Op: "rename"}
	}
	if oldName == newName || m.Repo.BranchExists(ctx, newName) {
		return &BranchExistsError{Branch: newName}
	}
	if !m.Repo.BranchExists(ctx, oldName) {
		return &BranchNotFoundError{Branch: oldName}
	}

	original := records.Clone()
	renamed := records.Clone()
	renamed.Rename(oldName, newName)
	g.Rename(oldName, newName)
	msg := fmt.Sprintf("rename: %v -> %v", oldName, newName)
	if err := m.save(ctx, renamed, g, msg); err != nil {
		return err
	}

	if err := m.Repo.RenameBranch(ctx, oldName, newName); err != nil {
		if rbErr := m.Store.Save(ctx, original, "revert "+msg); rbErr != nil {
			return errors.Join(err, fmt.Errorf("revert metadata: %w", rbErr))
		}
		return err
	}
	return nil
}

// Track starts tracking an existing branch with the given parent.
func (m *Mutator) Track(ctx context.Context, branch, parent string) error {
	must.NotBeBlankf(branch, "branch to track must be set")

	records, g, err := m.load(ctx)
	if err != nil {
		return err
	}
	if g.IsTrunk(branch) {
		return &graph.ProtectedBranchError{Branch: branch, Op: "track"}
	}
	if g.IsTracked(branch) {
		p, _ := g.ParentOf(branch)
		return &AlreadyTrackedError{Branch: branch, Parent: p}
	}
	if !m.Repo.BranchExists(ctx, branch) {
		return &BranchNotFoundError{Branch: branch}
	}
	if err := m.checkParent(ctx, parent); err != nil {
		return err
	}

	if err := g.Reparent(branch, parent); err != nil {
		return err
	}
	return m.save(ctx, records, g, fmt.Sprintf("track: %v (parent %v)", branch, parent))
}

func (m *Mutator) checkParent(ctx context.Context, parent string) error {
	must.NotBeBlankf(parent, "parent branch must be set")
	if !m.Repo.BranchExists(ctx, parent) {
		return &BranchNotFoundError{Branch: parent}
	}
	return nil
}

// Untrack stops tracking a branch, moving its children onto its parent.
// The branch itself is left alone.
func (m *Mutator) Untrack(ctx context.Context, branch string) (relinked []string, err error) {
	records, g, err := m.load(ctx)
	if err != nil {
		return nil, err
	}
	if !g.IsTracked(branch) {
		return nil, &NotTrackedError{Branch: branch}
	}

	relinked = g.Remove(branch)
	if err := m.save(ctx, records, g, "untrack: "+branch); err != nil {
		return nil, err
	}
	return relinked, nil
}

// Reparent changes the parent of a tracked branch.
// It returns the previous parent.
//
// Reparent only changes metadata.
// The branch must be restacked separately.
func (m *Mutator) Reparent(ctx context.Context, branch, parent string) (oldParent string, err error) {
	records, g, err := m.load(ctx)
	if err != nil {
		return "", err
	}
	if g.IsTrunk(branch) {
		// Always fails: a CycleError if parent is below the trunk,
		// a ProtectedBranchError otherwise.
		return "", g.Reparent(branch, parent)
	}
	if !g.IsTracked(branch) {
		return "", &NotTrackedError{Branch: branch}
	}
	if err := m.checkParent(ctx, parent); err != nil {
		return "", err
	}

	oldParent, _ = g.ParentOf(branch)
	if err := g.Reparent(branch, parent); err != nil {
		return "", err
	}
	msg := fmt.Sprintf("reparent: %v (%v -> %v)", branch, oldParent, parent)
	if err := m.save(ctx, records, g, msg); err != nil {
		return "", err
	}
	return oldParent, nil
}

// PromoteRequest is a request to promote the children of a branch
// whose changes have been merged into its parent.
type PromoteRequest struct {
	Branch string // required

	// DeleteRef deletes the local branch as well.
	// The branch is deleted even if git does not consider it merged,
	// since squash and rebase merges rewrite its commits.
	DeleteRef bool
}

// PromoteResponse reports what Promote did.
type PromoteResponse struct {
	Parent     string
	Children   []string
	CheckedOut string
}

// Promote removes a merged branch from the graph,
// moving its children onto its parent.
func (m *Mutator) Promote(ctx context.Context, req PromoteRequest) (*PromoteResponse, error) {
	records, g, err := m.load(ctx)
	if err != nil {
		return nil, err
	}
	if g.IsTrunk(req.Branch) {
		return nil, &graph.ProtectedBranchError{Branch: req.Branch, Op: "promote"}
	}
	if !g.IsTracked(req.Branch) {
		return nil, &NotTrackedError{Branch: req.Branch}
	}

	parent, _ := g.ParentOf(req.Branch)
	resp := &PromoteResponse{
		Parent:   parent,
		Children: g.Remove(req.Branch),
	}
	if err := m.save(ctx, records, g, "promote: "+req.Branch); err != nil {
		return nil, err
	}

	if !req.DeleteRef || !m.Repo.BranchExists(ctx, req.Branch) {
		return resp, nil
	}

	target := parent
	if target == "" || !m.Repo.BranchExists(ctx, target) {
		target = m.baseOf(ctx, g, req.Branch)
	}
	resp.CheckedOut, err = m.leave(ctx, req.Branch, target)
	if err != nil {
		return nil, err
	}
	if err := m.Repo.DeleteBranch(ctx, req.Branch, git.BranchDeleteOptions{Force: true}); err != nil {
		return nil, err
	}
	return resp, nil
}

// Create creates a branch on top of parent, checks it out,
// and tracks it.
//
// The record is removed again if the branch could not be created.
func (m *Mutator) Create(ctx context.Context, branch, parent string) error {
	must.NotBeBlankf(branch, "branch to create must be set")

	records, g, err := m.load(ctx)
	if err != nil {
		return err
	}
	if g.IsTrunk(branch) || m.Repo.BranchExists(ctx, branch) {
		return &BranchExistsError{Branch: branch}
	}
	if err := m.checkParent(ctx, parent); err != nil {
		return err
	}
	if err := g.Reparent(branch, parent); err != nil {
		return err
	}

	original := records.Clone()
	msg := fmt.Sprintf("create: %v (parent %v)", branch, parent)
	if err := m.save(ctx, records, g, msg); err != nil {
		return err
	}

	if err := m.Repo.CreateBranch(ctx, branch, parent); err != nil {
		if rbErr := m.Store.Save(ctx, original, "revert "+msg); rbErr != nil {
			return errors.Join(err, fmt.Errorf("revert metadata: %w", rbErr))
		}
		return err
	}

	if err := m.Worktree.Checkout(ctx, branch); err != nil {
		return fmt.Errorf("switch to %v: %w", branch, err)
	}
	return nil
}

// Children returns the tracked children of branch.
// Callers that need exactly one child ask the user to pick
// when there is more than one.
func (m *Mutator) Children(ctx context.Context, branch string) ([]string, error) {
	g, err := m.Graph(ctx)
	if err != nil {
		return nil, err
	}
	return g.ChildrenOf(branch), nil
}

// PotentialParents lists branches that branch could be tracked on:
// branches whose tip is an ancestor of branch
// and that would not form a cycle.
// Trunks are listed first.
func (m *Mutator) PotentialParents(ctx context.Context, branch string) ([]string, error) {
	_, g, err := m.load(ctx)
	if err != nil {
		return nil, err
	}
	head, err := m.Repo.PeelToCommit(ctx, branch)
	if err != nil {
		return nil, fmt.Errorf("resolve %v: %w", branch, err)
	}
	names, err := m.Repo.ListBranches(ctx)
	if err != nil {
		return nil, err
	}

	descendants := make(map[string]struct{})
	for _, d := range g.DescendantsOf(branch) {
		descendants[d] = struct{}{}
	}

	var trunks, others []string
	for _, name := range names {
		if name == branch {
			continue
		}
		if _, ok := descendants[name]; ok {
			continue
		}
		tip, err := m.Repo.PeelToCommit(ctx, name)
		if err != nil {
			m.Log.Debug("Skipping unresolvable branch", "branch", name, "error", err)
			continue
		}
		if !m.Repo.IsAncestor(ctx, tip, head) {
			continue
		}
		if g.IsTrunk(name) {
			trunks = append(trunks, name)
		} else {
			others = append(others, name)
		}
	}
	slices.Sort(others)
	return append(trunks, others...), nil
}
