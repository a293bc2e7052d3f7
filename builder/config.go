// SPDX-License-Identifier: MIT
// Package: reconf/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Design:
//   • builderConfig is the single source of truth for all builder knobs.
//   • Defaults are deterministic and documented; no globals.
//   • newBuilderConfig applies options in-order (later overrides earlier).
//
// Deterministic defaults (no surprises):
//   • rng      = nil   (pure/deterministic unless seeded)
//   • attempts = 64    (rejection-sampling budget for RandomInstance)

package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors and samplers.
// It is passed by VALUE (immutable to callers).
type builderConfig struct {
	// RNG for stochastic choices; nil means “no randomness”.
	rng *rand.Rand
	// Sampling attempts before RandomInstance gives up.
	attempts int
}

// defaultAttempts bounds rejection sampling in RandomInstance.
const defaultAttempts = 64

// newBuilderConfig constructs a config with deterministic defaults and
// applies all options in order.
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		rng:      nil,
		attempts: defaultAttempts,
	}
	// Apply options in the given order; last-wins semantics.
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
