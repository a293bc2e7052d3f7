// File: methods_adjacent.go
// Role: Neighborhood queries and the independence test.
// Determinism:
//   - ForEachNeighbor and NeighborIDs yield neighbors in ascending order.

package core

import (
	"math/bits"

	"github.com/katalvlaran/reconf/bitset"
)

// Neighbors returns the adjacency row of v. The returned set is owned by g
// and must be treated as read-only.
func (g *Graph) Neighbors(v int) *bitset.Set { return g.adj[v] }

// ForEachNeighbor calls fn for every neighbor of v in ascending order.
//
// Implementation:
//   - Scan adj[v] word by word; per non-zero word, extract the lowest set
//     bit with TrailingZeros64 and clear it, so only set bits are visited.
//
// Complexity: O(W + deg(v)).
func (g *Graph) ForEachNeighbor(v int, fn func(u int)) {
	for w, word := range g.adj[v].Words() {
		for word != 0 {
			fn(w<<6 + bits.TrailingZeros64(word))
			word &= word - 1
		}
	}
}

// NeighborIDs returns the neighbors of v in ascending order.
func (g *Graph) NeighborIDs(v int) []int { return g.adj[v].Members() }

// Degree returns the number of neighbors of v.
func (g *Graph) Degree(v int) int { return g.adj[v].Count() }

// IsIndependent reports whether no two members of s are adjacent.
//
// For every v in s the row adj[v] is intersected with s; any common bit is
// a violating edge. The self bit is irrelevant since rows never contain it.
//
// Complexity: O(|s|·W).
func (g *Graph) IsIndependent(s *bitset.Set) bool {
	_, _, ok := g.Conflict(s)

	return ok
}

// Conflict returns the lexicographically smallest edge {u, v} (u < v) with
// both endpoints in s, or ok == true when s is independent.
func (g *Graph) Conflict(s *bitset.Set) (u, v int, ok bool) {
	sw := s.Words()
	for w, word := range sw {
		for word != 0 {
			u = w<<6 + bits.TrailingZeros64(word)
			word &= word - 1
			row := g.adj[u].Words()
			for b := range row {
				if m := row[b] & sw[b]; m != 0 {
					return u, b<<6 + bits.TrailingZeros64(m), false
				}
			}
		}
	}

	return -1, -1, true
}
