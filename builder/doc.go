// Package builder provides reusable “functional-options”-style constructors
// for the edge lists consumed by the shortest-path solvers. It keeps test
// fixtures, benchmarks and the CLI generator DRY, reproducible and consistent.
//
// The package offers the following key components:
//
//   - Orchestrator:
//     – BuildEdges(bopts, cons...): runs constructors in order over one
//     shared dense node-ID space and returns ([]core.Edge, n, error).
//   - Topologies (Constructor factories):
//     – Path(n), Cycle(n), Star(n), Wheel(n), Complete(n).
//     – CompleteBipartite(n1, n2), Grid(rows, cols).
//     – RandomSparse(n, p): seeded Erdős–Rényi-like digraph.
//   - Configuration primitives:
//     – BuilderOption:     a function that mutates builderConfig before use.
//     – WithSeed / WithRand: reproducible randomness.
//     – WithBidirectional: mirror every emitted arc.
//   - Edge-weight distributions (WeightFn implementations):
//     – DefaultWeightFn:     constant weight DefaultEdgeWeight.
//     – ConstantWeightFn:    fixed user-provided value (may be negative).
//     – UniformWeightFn:     uniform ∼U[min,max).
//     – UniformIntWeightFn:  integers uniform in [min,max].
//     – NormalWeightFn:      Gaussian ∼N(mean,stddev), rounded.
//     – ExponentialWeightFn: exponential ∼Exp(rate), rounded.
//
// Guarantees:
//
//   - Determinism: the same options, seed and constructor order always yield
//     the same edge list in the same order.
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Sentinel errors (ErrTooFewVertices, ErrInvalidProbability,
//     ErrNeedRandSource, ErrConstructFailed) for invalid build parameters,
//     wrapped with the constructor name.
//
// Example:
//
//	edges, n, err := builder.BuildEdges(
//		[]builder.BuilderOption{builder.WithSeed(1), builder.WithUniformIntWeight(-2, 10)},
//		builder.Grid(4, 4),
//	)
package builder
