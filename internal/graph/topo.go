package graph

import "github.com/SarthakJariwala/panqake/internal/must"

// Toposort performs a topological sort of the given nodes.
// parent returns the parent of a node, or false if the node doesn't have one.
//
// Nodes are kept in their original relative order
// unless a parent must be moved ahead of its child.
// A parent that is not in nodes ends the walk up from a node
// and is not added to the result.
// The graph MUST NOT have a cycle.
func Toposort[N comparable](
	nodes []N,
	parent func(N) (N, bool),
) []N {
	want := make(map[N]struct{}, len(nodes))
	for _, n := range nodes {
		want[n] = struct{}{}
	}

	topo := make([]N, 0, len(nodes))
	seen := make(map[N]struct{}, len(nodes))
	var chain []N
	for _, n := range nodes {
		// Walk up to the first placed or missing ancestor,
		// then place the chain top-down.
		chain = chain[:0]
		for cur, ok := n, true; ok; cur, ok = parent(cur) {
			if _, done := seen[cur]; done {
				break
			}
			if _, in := want[cur]; !in {
				break
			}
			must.Bef(len(chain) <= len(nodes), "cycle detected at %v", cur)
			chain = append(chain, cur)
		}

		for i := len(chain) - 1; i >= 0; i-- {
			if _, done := seen[chain[i]]; done {
				continue
			}
			seen[chain[i]] = struct{}{}
			topo = append(topo, chain[i])
		}
	}

	must.BeEqualf(len(want), len(topo),
		"topological sort produced incorrect number of elements:\n"+
			"nodes: %v\n"+
			"topo: %v", nodes, topo)

	return topo
}
