// SPDX-License-Identifier: MIT
// Package: reconf/builder
//
// impl_path.go - implementation of Path(n) and Isolated(n) constructors.
//
// Contract:
//   - Path: n ≥ 2 (else ErrTooFewVertices); edges (i-1,i) for i=1..n-1.
//   - Isolated: n ≥ 1; no edges (every subset is independent).
//   - Vertex indices are allocated as one contiguous block of the draft.
//   - Returns only sentinel errors; never panics at runtime.
//
// Complexity:
//   - Time: O(n) vertices + O(n-1) edges.
//   - Space: O(1) extra.

package builder

import "fmt"

// File-local constants for method tagging and parameter minima.
const (
	methodPath       = "Path"
	minPathNodes     = 2
	methodIsolated   = "Isolated"
	minIsolatedNodes = 1
)

// Path returns a Constructor that appends a simple path P_n.
func Path(n int) Constructor {
	// Return a closure capturing n; BuildGraph supplies (d,cfg).
	return func(d *draft, _ builderConfig) error {
		// Validate parameter domain early.
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}

		// Allocate the block; base is the global index of local vertex 0.
		base := d.addVertices(n)

		// Emit path edges 0-1-2-...-(n-1) in stable order.
		for i := 1; i < n; i++ {
			d.addEdge(base+i-1, base+i)
		}

		return nil
	}
}

// Isolated returns a Constructor that appends n vertices without edges.
func Isolated(n int) Constructor {
	return func(d *draft, _ builderConfig) error {
		if n < minIsolatedNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodIsolated, n, minIsolatedNodes, ErrTooFewVertices)
		}
		d.addVertices(n)

		return nil
	}
}
