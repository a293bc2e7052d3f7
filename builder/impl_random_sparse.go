// SPDX-License-Identifier: MIT
// Package: reconf/builder
//
// impl_random_sparse.go - Erdős–Rényi G(n,p) constructor.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - p ∈ [0,1] (else ErrInvalidProbability).
//   - Requires cfg.rng when 0 < p < 1 (else ErrNeedRandSource).
//     p == 0 and p == 1 are deterministic and need no RNG.
//   - Each unordered pair i<j is drawn once, in lexicographic order, so the
//     edge set depends only on (n, p, seed).
//
// Complexity:
//   - Time: O(n²) Bernoulli trials. Space: O(1) extra.

package builder

import "fmt"

const (
	methodRandomSparse = "RandomSparse"
	minRandomNodes     = 1
	minProbability     = 0.0
	maxProbability     = 1.0
)

// RandomSparse returns a Constructor that appends a G(n,p) random graph.
func RandomSparse(n int, p float64) Constructor {
	return func(d *draft, cfg builderConfig) error {
		if n < minRandomNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodRandomSparse, n, minRandomNodes, ErrTooFewVertices)
		}
		if p < minProbability || p > maxProbability {
			return fmt.Errorf("%s: p=%.3f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, minProbability, maxProbability, ErrInvalidProbability)
		}
		// Fractional p requires randomness; endpoints are fixed outcomes.
		stochastic := p > minProbability && p < maxProbability
		if stochastic && cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
		}

		base := d.addVertices(n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				keep := p == maxProbability
				if stochastic {
					keep = cfg.rng.Float64() < p
				}
				if keep {
					d.addEdge(base+i, base+j)
				}
			}
		}

		return nil
	}
}
