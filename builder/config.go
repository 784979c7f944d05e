// SPDX-License-Identifier: MIT
// Package: sssp/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults (no surprises):
//   • rng           = nil                (pure/deterministic unless seeded)
//   • weightFn      = DefaultWeightFn    (every edge costs DefaultEdgeWeight)
//   • bidirectional = false              (one arc per emitted edge)

package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	// RNG for stochastic choices; nil means “no randomness”.
	rng *rand.Rand
	// Weight generator for edges.
	weightFn WeightFn
	// Emit v→u after every u→v.
	bidirectional bool
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order (later overrides earlier).
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		rng:      nil,
		weightFn: DefaultWeightFn,
	}

	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// weight draws the next edge weight.
func (c builderConfig) weight() float64 {
	return c.weightFn(c.rng)
}
