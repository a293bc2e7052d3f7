// File: methods_edges.go
// Role: Edge insertion and edge queries.
// Determinism:
//   - Edges() lists each edge once as (u, v) with u < v, sorted by u then v.

package core

import "fmt"

// AddEdge adds the undirected edge {u, v}.
//
// Behavior highlights:
//   - Idempotent: re-adding an existing edge changes nothing.
//   - Self-loops (u == v) are silently ignored and return nil.
//   - Out-of-range endpoints return ErrVertexOutOfRange and leave g unchanged.
//
// Complexity: O(1).
func (g *Graph) AddEdge(u, v int) error {
	if !g.Has(u) || !g.Has(v) {
		return fmt.Errorf("core: AddEdge(%d, %d) with order %d: %w", u, v, g.n, ErrVertexOutOfRange)
	}
	if u == v {
		return nil
	}
	if g.adj[u].Test(v) {
		return nil
	}
	g.adj[u].Set(v)
	g.adj[v].Set(u)
	g.m++

	return nil
}

// HasEdge reports whether {u, v} is an edge. Out-of-range endpoints yield false.
func (g *Graph) HasEdge(u, v int) bool {
	if !g.Has(u) || !g.Has(v) {
		return false
	}

	return g.adj[u].Test(v)
}

// Edges returns every edge once as [2]int{u, v} with u < v, ordered by u then v.
// Complexity: O(n·W + m).
func (g *Graph) Edges() [][2]int {
	out := make([][2]int, 0, g.m)
	for u := 0; u < g.n; u++ {
		g.ForEachNeighbor(u, func(v int) {
			if u < v {
				out = append(out, [2]int{u, v})
			}
		})
	}

	return out
}
