// Package graph models the parent/child relationships
// between tracked branches.
//
// A Graph is built fresh from stored records for each operation.
// It is a forest: every branch has at most one parent,
// and trunk branches never have one.
package graph

import (
	"maps"
	"slices"

	"go.abhg.dev/container/ring"
)

// Graph is an in-memory view of branch relationships.
//
// Nodes include tracked branches, trunk branches,
// and any parent named by a tracked branch even if it is not tracked.
// The latter are treated as untracked roots.
type Graph struct {
	parents  map[string]string   // tracked branch -> parent ("" if none)
	children map[string][]string // parent -> sorted children
	trunks   []string
	isTrunk  map[string]struct{}

	// tracked branch -> parent that was dropped
	// because it closed a cycle in the input
	dropped map[string]string
}

// New builds a graph from a mapping of tracked branches to their parents.
// An empty parent means the branch has no tracked parent.
//
// Trunk branches are never tracked:
// entries for them in parents are ignored,
// as are self-parents.
//
// Stored data may contain a cycle.
// Edges are added in branch name order,
// and an edge that would close a cycle is dropped
// so that the branch becomes a root.
// [Graph.Dropped] reports these edges.
func New(parents map[string]string, trunks []string) *Graph {
	g := &Graph{
		parents: make(map[string]string, len(parents)),
		trunks:  slices.Clone(trunks),
		isTrunk: make(map[string]struct{}, len(trunks)),
	}
	for _, t := range trunks {
		g.isTrunk[t] = struct{}{}
	}

	for _, b := range slices.Sorted(maps.Keys(parents)) {
		if b == "" || g.IsTrunk(b) {
			continue
		}
		p := parents[b]
		if p == b {
			p = ""
		}
		if p != "" && g.reaches(p, b) {
			if g.dropped == nil {
				g.dropped = make(map[string]string)
			}
			g.dropped[b] = p
			p = ""
		}
		g.parents[b] = p
	}

	g.reindex()
	return g
}

// reaches reports whether target is from or one of its ancestors.
// Edges in g.parents never form a cycle.
func (g *Graph) reaches(from, target string) bool {
	for cur := from; cur != ""; cur = g.parents[cur] {
		if cur == target {
			return true
		}
	}
	return false
}

// Dropped reports edges from the input that were ignored
// because they closed a cycle,
// as a map from branch to the parent it named.
func (g *Graph) Dropped() map[string]string {
	return maps.Clone(g.dropped)
}

func (g *Graph) reindex() {
	g.children = make(map[string][]string)
	for b, p := range g.parents {
		if p != "" {
			g.children[p] = append(g.children[p], b)
		}
	}
	for _, cs := range g.children {
		slices.Sort(cs)
	}
}

// IsTrunk reports whether b is a trunk branch.
func (g *Graph) IsTrunk(b string) bool {
	_, ok := g.isTrunk[b]
	return ok
}

// Trunks returns the trunk branches the graph was built with.
func (g *Graph) Trunks() []string {
	return slices.Clone(g.trunks)
}

// IsTracked reports whether b has a record of its own.
func (g *Graph) IsTracked(b string) bool {
	_, ok := g.parents[b]
	return ok
}

// Branches lists tracked branches in sorted order.
func (g *Graph) Branches() []string {
	return slices.Sorted(maps.Keys(g.parents))
}

// ParentOf reports the parent of b,
// or false if b has no tracked parent.
func (g *Graph) ParentOf(b string) (string, bool) {
	p := g.parents[b]
	return p, p != ""
}

// ChildrenOf lists branches whose parent is b, sorted by name.
func (g *Graph) ChildrenOf(b string) []string {
	return slices.Clone(g.children[b])
}

// AncestorsOf lists the ancestors of b, starting at its parent
// and ending at the root of its tree.
//
// Traversal stops if a branch repeats,
// so corrupt input with a cycle cannot loop forever.
func (g *Graph) AncestorsOf(b string) []string {
	var ancestors []string
	seen := map[string]struct{}{b: {}}
	for p, ok := g.ParentOf(b); ok; p, ok = g.ParentOf(p) {
		if _, dup := seen[p]; dup {
			break
		}
		seen[p] = struct{}{}
		ancestors = append(ancestors, p)
	}
	return ancestors
}

// RootOf returns the root of the tree containing b.
// This is b itself if it has no parent.
func (g *Graph) RootOf(b string) string {
	if ancestors := g.AncestorsOf(b); len(ancestors) > 0 {
		return ancestors[len(ancestors)-1]
	}
	return b
}

// DescendantsOf lists all branches below b in level order:
// children of b, then their children, and so on.
// b itself is not included.
//
// A branch is always listed after its parent.
func (g *Graph) DescendantsOf(b string) []string {
	var (
		out  []string
		q    ring.Q[string]
		seen = map[string]struct{}{b: {}}
	)
	q.Push(b)
	for !q.Empty() {
		current := q.Pop()
		for _, child := range g.children[current] {
			if _, ok := seen[child]; ok {
				continue
			}
			seen[child] = struct{}{}
			out = append(out, child)
			q.Push(child)
		}
	}
	return out
}

// CommonAncestor returns the nearest branch that is b1 or an ancestor of b1,
// and also b2 or an ancestor of b2.
func (g *Graph) CommonAncestor(b1, b2 string) (string, bool) {
	line2 := map[string]struct{}{b2: {}}
	for _, a := range g.AncestorsOf(b2) {
		line2[a] = struct{}{}
	}

	for _, a := range append([]string{b1}, g.AncestorsOf(b1)...) {
		if _, ok := line2[a]; ok {
			return a, true
		}
	}
	return "", false
}

// Roots lists the roots of all trees in the graph.
// Trunk branches come first, in the order given to [New].
// They are followed by untracked parents
// and tracked branches without a parent, sorted by name.
func (g *Graph) Roots() []string {
	others := make(map[string]struct{})
	for b, p := range g.parents {
		switch {
		case p == "":
			others[b] = struct{}{}
		case !g.IsTracked(p):
			others[p] = struct{}{}
		}
	}
	for _, t := range g.trunks {
		delete(others, t)
	}
	return append(g.Trunks(), slices.Sorted(maps.Keys(others))...)
}

// Reparent changes the parent of b to p.
// p may be empty to remove b's parent.
//
// It returns a [*CycleError] if p is b or one of its descendants,
// and otherwise a [*ProtectedBranchError] if b is a trunk branch.
// The graph is unchanged on error.
func (g *Graph) Reparent(b, p string) error {
	if p == b {
		return &CycleError{Branch: b, Parent: p}
	}
	if p != "" && slices.Contains(g.DescendantsOf(b), p) {
		return &CycleError{Branch: b, Parent: p}
	}
	if g.IsTrunk(b) {
		return &ProtectedBranchError{Branch: b, Op: "reparent"}
	}

	g.parents[b] = p
	g.reindex()
	return nil
}

// Remove deletes b from the graph,
// moving its children onto b's parent.
// Children of a branch without a parent are left without one.
//
// It returns the children that were moved.
func (g *Graph) Remove(b string) []string {
	parent := g.parents[b]
	moved := g.ChildrenOf(b)
	for _, child := range moved {
		g.parents[child] = parent
	}
	delete(g.parents, b)
	g.reindex()
	return moved
}

// Rename changes the name of oldName to newName,
// updating the parent of each of its children.
func (g *Graph) Rename(oldName, newName string) {
	if p, ok := g.parents[oldName]; ok {
		delete(g.parents, oldName)
		g.parents[newName] = p
	}
	for b, p := range g.parents {
		if p == oldName {
			g.parents[b] = newName
		}
	}
	g.reindex()
}

// Parents returns a snapshot of tracked branches and their parents
// suitable for persisting.
func (g *Graph) Parents() map[string]string {
	return maps.Clone(g.parents)
}
