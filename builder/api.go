// SPDX-License-Identifier: MIT
// Package: reconf/builder
//
// api.go - thin public entry-point for the builder package.
//
// Design contract (strict):
//   - One orchestrator: BuildGraph(bopts, cons...). Resolves cfg, runs cons in order
//     on a draft, then materializes a core.Graph of the final order.
//   - Every constructor appends its own vertex block (disjoint union on composition).
//   - Functional options (BuilderOption) resolve into an immutable builderConfig.
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.
//   - Safety: never panic; return sentinel errors from constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/reconf/core"
)

// Constructor appends one topology block to the draft using the resolved
// builderConfig. Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Allocate their vertices with d.addVertices before emitting edges.
//   - Preserve determinism for the same config and call order.
type Constructor func(d *draft, cfg builderConfig) error

// draft accumulates vertices and edges before the graph order is known.
type draft struct {
	n     int      // vertices allocated so far
	edges [][2]int // edges in emission order
}

// addVertices allocates k new vertices and returns the index of the first.
func (d *draft) addVertices(k int) int {
	base := d.n
	d.n += k

	return base
}

// addEdge records the undirected edge {u, v}.
func (d *draft) addEdge(u, v int) {
	d.edges = append(d.edges, [2]int{u, v})
}

// BuildGraph resolves the builder configuration from bopts, applies all
// constructors in order, and returns the resulting core.Graph.
// Any constructor error is wrapped with the context "BuildGraph: %w" and
// returned immediately.
//
// Complexity:
//   - Resolving options: O(len(bopts)).
//   - Applying K constructors: Σ cost of each constructor.
//   - Materializing: O(n·W + m).
//
// Errors:
//   - Wraps constructor errors via %w; callers should branch with errors.Is
//     against builder sentinels (ErrTooFewVertices, ErrInvalidProbability, ...).
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	// Resolve deterministic builder configuration from functional options.
	cfg := newBuilderConfig(bopts...)

	d := &draft{}
	for i, fn := range cons {
		// Reject a nil constructor to avoid a panic later (programmer error).
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(d, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	// Materialize: the order is final only after every block is allocated.
	g := core.NewGraph(d.n)
	for _, e := range d.edges {
		if err := g.AddEdge(e[0], e[1]); err != nil {
			return nil, fmt.Errorf("BuildGraph: AddEdge(%d, %d): %w", e[0], e[1], err)
		}
	}

	return g, nil
}
