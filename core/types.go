// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Graph type, constructor and sentinel errors.

package core

import (
	"errors"

	"github.com/katalvlaran/reconf/bitset"
)

// ErrVertexOutOfRange indicates a vertex index outside [0, Order()).
var ErrVertexOutOfRange = errors.New("core: vertex out of range")

// Graph is an undirected simple graph over the vertices [0, n).
//
// adj[v] holds the neighbors of v; the self bit is never set, so
// adj[v].Test(v) is always false.
type Graph struct {
	n   int           // order
	m   int           // number of distinct edges
	adj []*bitset.Set // adjacency rows
}

// NewGraph returns an edgeless graph of order n. A negative n is treated as 0.
// Complexity: O(n·W) for the adjacency rows.
func NewGraph(n int) *Graph {
	if n < 0 {
		n = 0
	}
	adj := make([]*bitset.Set, n)
	for v := range adj {
		adj[v] = bitset.New(n)
	}

	return &Graph{n: n, adj: adj}
}

// Order returns the number of vertices.
func (g *Graph) Order() int { return g.n }

// Size returns the number of distinct edges.
func (g *Graph) Size() int { return g.m }

// Has reports whether v is a vertex of g.
func (g *Graph) Has(v int) bool { return v >= 0 && v < g.n }

// NewSet returns an empty bitset.Set over this graph's vertex universe.
func (g *Graph) NewSet() *bitset.Set { return bitset.New(g.n) }
