// SPDX-License-Identifier: MIT
// Package: sssp/builder
//
// options.go - functional options for the builder package.
//
// Contract (strict):
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Constructors themselves MUST NOT panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import "math/rand"

// BuilderOption customizes the behavior of a constructor by mutating a
// builderConfig instance before edges are emitted.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG for stochastic builders and weights.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
// Use this in tests and examples to lock outcomes.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithWeightFn overrides the per-edge weight generator.
// The function receives the (possibly nil) RNG. Panics on nil.
func WithWeightFn(fn WeightFn) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}
	return func(c *builderConfig) {
		c.weightFn = fn
	}
}

// WithBidirectional makes every constructor emit v→u right after u→v, with
// the same weight, turning each topology into its symmetric digraph.
// Self-loops are never doubled.
func WithBidirectional() BuilderOption {
	return func(c *builderConfig) {
		c.bidirectional = true
	}
}
