// SPDX-License-Identifier: MIT
// Package: reconf/builder
//
// instance.go - random token-jumping instance sampling.
//
// Contract:
//   - 0 ≤ k ≤ g.Order() (else ErrInvalidSize).
//   - Requires cfg.rng (else ErrNeedRandSource).
//   - Each attempt draws a random vertex permutation and greedily keeps every
//     vertex with no neighbor already kept, stopping at k tokens.
//   - After cfg.attempts failed draws, returns ErrNoIndependentSet.
//
// Complexity:
//   - Per attempt: O(n·W) where W = ⌈n/64⌉ (one Intersects per candidate).
//   - Total: O(attempts·n·W) worst case.

package builder

import (
	"fmt"

	"github.com/katalvlaran/reconf/bitset"
	"github.com/katalvlaran/reconf/core"
)

const (
	methodRandomIndependentSet = "RandomIndependentSet"
	methodRandomInstance       = "RandomInstance"
)

// RandomIndependentSet samples an independent set of exactly k vertices of g.
func RandomIndependentSet(g *core.Graph, k int, opts ...BuilderOption) (*bitset.Set, error) {
	cfg := newBuilderConfig(opts...)

	return sampleIndependent(methodRandomIndependentSet, g, k, cfg)
}

// RandomInstance samples a start and a target independent set of size k.
// Both are drawn from the same RNG stream; they may coincide on small graphs.
func RandomInstance(g *core.Graph, k int, opts ...BuilderOption) (start, target *bitset.Set, err error) {
	cfg := newBuilderConfig(opts...)

	if start, err = sampleIndependent(methodRandomInstance, g, k, cfg); err != nil {
		return nil, nil, err
	}
	if target, err = sampleIndependent(methodRandomInstance, g, k, cfg); err != nil {
		return nil, nil, err
	}

	return start, target, nil
}

// sampleIndependent runs the greedy permutation sampler under cfg.
func sampleIndependent(method string, g *core.Graph, k int, cfg builderConfig) (*bitset.Set, error) {
	if g == nil {
		return nil, fmt.Errorf("%s: nil graph: %w", method, ErrConstructFailed)
	}
	n := g.Order()
	if k < 0 || k > n {
		return nil, fmt.Errorf("%s: k=%d not in [0,%d]: %w", method, k, n, ErrInvalidSize)
	}
	if cfg.rng == nil {
		return nil, fmt.Errorf("%s: %w", method, ErrNeedRandSource)
	}

	for attempt := 0; attempt < cfg.attempts; attempt++ {
		s := g.NewSet()
		picked := 0
		for _, v := range cfg.rng.Perm(n) {
			if picked == k {
				break
			}
			// v is admissible iff none of its neighbors already holds a token.
			if g.Neighbors(v).Intersects(s) {
				continue
			}
			s.Set(v)
			picked++
		}
		if picked == k {
			return s, nil
		}
	}

	return nil, fmt.Errorf("%s: k=%d after %d attempts: %w", method, k, cfg.attempts, ErrNoIndependentSet)
}
