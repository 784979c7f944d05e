// Package builder provides helper functions and types for configuring
// edge-cost distributions in edge-list constructors.
package builder

import (
	"fmt"
	"math"
	"math/rand"
)

// DefaultEdgeWeight is the default weight assigned to each edge when no
// custom WeightFn is provided.
const DefaultEdgeWeight float64 = 1

// WeightFn produces an edge weight given an optional *rand.Rand source.
// It must be deterministic for a given RNG seed. Negative results are
// allowed; they are what the Bellman–Ford solver is for.
type WeightFn func(rng *rand.Rand) float64

// DefaultWeightFn always returns the constant DefaultEdgeWeight.
// Complexity: O(1) time, O(1) space. Never panics.
func DefaultWeightFn(_ *rand.Rand) float64 {
	return DefaultEdgeWeight
}

// ConstantWeightFn returns a WeightFn that always yields the provided value.
// Panics if value is NaN.
func ConstantWeightFn(value float64) WeightFn {
	if math.IsNaN(value) {
		panic("ConstantWeightFn: value must not be NaN")
	}

	return func(_ *rand.Rand) float64 {
		return value
	}
}

// UniformWeightFn returns a WeightFn sampling uniformly in [min, max).
// Panics if max < min or either bound is not finite.
// If rng is nil, yields min as a deterministic fallback.
func UniformWeightFn(min, max float64) WeightFn {
	if !isFinite(min) || !isFinite(max) || max < min {
		panic(fmt.Sprintf("UniformWeightFn: require finite min ≤ max, got min=%g, max=%g", min, max))
	}

	return func(rng *rand.Rand) float64 {
		if rng == nil || max == min {
			return min
		}

		return min + rng.Float64()*(max-min)
	}
}

// UniformIntWeightFn returns a WeightFn sampling integers uniformly in
// [min, max] inclusive. Integer costs keep path sums exact.
// Panics if max < min. If rng is nil, yields min.
func UniformIntWeightFn(min, max int) WeightFn {
	if max < min {
		panic(fmt.Sprintf("UniformIntWeightFn: require min ≤ max, got min=%d, max=%d", min, max))
	}
	span := max - min + 1

	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return float64(min)
		}

		return float64(min + rng.Intn(span))
	}
}

// NormalWeightFn returns a WeightFn sampling from N(mean, stddev) rounded to
// the nearest integer. Panics if stddev < 0.
// If rng is nil, yields math.Round(mean).
func NormalWeightFn(mean, stddev float64) WeightFn {
	if stddev < 0 || math.IsNaN(stddev) {
		panic(fmt.Sprintf("NormalWeightFn: stddev must be ≥ 0, got %f", stddev))
	}

	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return math.Round(mean)
		}

		return math.Round(rng.NormFloat64()*stddev + mean)
	}
}

// ExponentialWeightFn returns a WeightFn sampling from an exponential distribution
// with rate λ, i.e. PDF λ e^(−λx), rounded to the nearest integer.
// Panics if rate ≤ 0. If rng is nil, yields DefaultEdgeWeight.
func ExponentialWeightFn(rate float64) WeightFn {
	if !(rate > 0) {
		panic(fmt.Sprintf("ExponentialWeightFn: rate must be > 0, got %f", rate))
	}

	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return DefaultEdgeWeight
		}
		// ExpFloat64 has mean 1; dividing by rate yields mean 1/rate.
		return math.Round(rng.ExpFloat64() / rate)
	}
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// WithConstantWeight sets a fixed edge weight via ConstantWeightFn.
func WithConstantWeight(w float64) BuilderOption {
	return WithWeightFn(ConstantWeightFn(w))
}

// WithUniformWeight sets weights ∼ U[min,max) via UniformWeightFn.
func WithUniformWeight(min, max float64) BuilderOption {
	return WithWeightFn(UniformWeightFn(min, max))
}

// WithUniformIntWeight sets integer weights uniform in [min,max] via
// UniformIntWeightFn.
func WithUniformIntWeight(min, max int) BuilderOption {
	return WithWeightFn(UniformIntWeightFn(min, max))
}

// WithNormalWeight sets weights ∼ N(mean,stddev) via NormalWeightFn.
func WithNormalWeight(mean, stddev float64) BuilderOption {
	return WithWeightFn(NormalWeightFn(mean, stddev))
}

// WithExponentialWeight sets weights ∼ Exp(rate) via ExponentialWeightFn.
func WithExponentialWeight(rate float64) BuilderOption {
	return WithWeightFn(ExponentialWeightFn(rate))
}
