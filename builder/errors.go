// SPDX-License-Identifier: MIT
// Package: sssp/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context using `%w`.
//   • Validation panics are confined to option constructors (WithX...).

package builder

import "errors"

// ErrTooFewVertices indicates that a numeric parameter (e.g., n, rows, cols)
// is smaller than the allowed minimum for the requested constructor.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates that a probability value is outside the
// closed interval [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor requires a non-nil
// *rand.Rand in the resolved builderConfig (WithSeed/WithRand must be set).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates that construction could not proceed, e.g. a
// nil Constructor was passed to BuildEdges.
var ErrConstructFailed = errors.New("builder: construction failed")
