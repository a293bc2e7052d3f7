// SPDX-License-Identifier: MIT
// Package: reconf/builder
//
// impl_complete.go - implementation of Complete(n), Star(n) and
// CompleteBipartite(a, b) constructors.
//
// Contract:
//   - Complete: n ≥ 1; every unordered pair i<j is an edge.
//   - Star: n ≥ 2; center at local index 0, leaves 1..n-1.
//   - CompleteBipartite: a ≥ 1 and b ≥ 1; left block 0..a-1, right block a..a+b-1,
//     every left-right pair is an edge and no edge lies inside a side.
//
// Complexity:
//   - Complete: O(n²). Star: O(n). CompleteBipartite: O(a·b).

package builder

import "fmt"

const (
	methodComplete          = "Complete"
	minCompleteNodes        = 1
	methodStar              = "Star"
	minStarNodes            = 2
	methodCompleteBipartite = "CompleteBipartite"
	minPartitionSize        = 1
)

// Complete returns a Constructor that appends the complete graph K_n.
// The only independent sets of K_n have size ≤ 1.
func Complete(n int) Constructor {
	return func(d *draft, _ builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}

		base := d.addVertices(n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				d.addEdge(base+i, base+j)
			}
		}

		return nil
	}
}

// Star returns a Constructor that appends the star S_n with one center.
func Star(n int) Constructor {
	return func(d *draft, _ builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}

		base := d.addVertices(n)
		for i := 1; i < n; i++ {
			d.addEdge(base, base+i)
		}

		return nil
	}
}

// CompleteBipartite returns a Constructor that appends K_{a,b}.
func CompleteBipartite(a, b int) Constructor {
	return func(d *draft, _ builderConfig) error {
		if a < minPartitionSize || b < minPartitionSize {
			return fmt.Errorf("%s: sizes a=%d, b=%d must be ≥ %d: %w",
				methodCompleteBipartite, a, b, minPartitionSize, ErrTooFewVertices)
		}

		base := d.addVertices(a + b)
		for i := 0; i < a; i++ {
			for j := 0; j < b; j++ {
				d.addEdge(base+i, base+a+j)
			}
		}

		return nil
	}
}
