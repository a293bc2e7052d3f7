// File: methods_clone.go
// Role: Deep copies of a Graph.

package core

import "github.com/katalvlaran/reconf/bitset"

// Clone returns a deep copy of g; mutating the clone never affects g.
// Complexity: O(n·W).
func (g *Graph) Clone() *Graph {
	adj := make([]*bitset.Set, g.n)
	for v, row := range g.adj {
		adj[v] = row.Clone()
	}

	return &Graph{n: g.n, m: g.m, adj: adj}
}
