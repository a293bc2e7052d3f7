// SPDX-License-Identifier: MIT
// Package: reconf/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context using %w.

package builder

import "errors"

// ErrTooFewVertices indicates that a numeric parameter (n, rows, cols)
// is smaller than the allowed minimum for the requested constructor.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor or sampler
// requires an RNG (WithSeed/WithRand must be set).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a nil constructor or an exhausted strategy.
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrInvalidSize indicates a token count that is negative or exceeds the graph order.
var ErrInvalidSize = errors.New("builder: invalid token count")

// ErrNoIndependentSet indicates that sampling could not find an
// independent set of the requested size within the attempt budget.
var ErrNoIndependentSet = errors.New("builder: no independent set of requested size found")
