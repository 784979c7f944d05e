package builder_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/sssp/builder"
)

// TestWeightFnConstructors verifies that WeightFn constructors and options
// panic on invalid parameters.
func TestWeightFnConstructors(t *testing.T) {
	tests := []struct {
		name string
		fn   func()
	}{
		{"ConstantWeightFn_NaN", func() { builder.ConstantWeightFn(math.NaN()) }},
		{"UniformWeightFn_maxLessThanMin", func() { builder.UniformWeightFn(5, 4) }},
		{"UniformWeightFn_infinite", func() { builder.UniformWeightFn(0, math.Inf(1)) }},
		{"UniformIntWeightFn_maxLessThanMin", func() { builder.UniformIntWeightFn(2, 1) }},
		{"NormalWeightFn_stddevNegative", func() { builder.NormalWeightFn(0, -0.1) }},
		{"ExponentialWeightFn_zeroRate", func() { builder.ExponentialWeightFn(0) }},
		{"ExponentialWeightFn_negativeRate", func() { builder.ExponentialWeightFn(-1) }},
		{"WithWeightFn_nil", func() { builder.WithWeightFn(nil) }},
		{"WithRand_nil", func() { builder.WithRand(nil) }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Panics(t, tc.fn)
		})
	}
}

// TestWeightFnBehavior covers the runtime behavior of each WeightFn, with
// and without an RNG.
func TestWeightFnBehavior(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	assert.Equal(t, builder.DefaultEdgeWeight, builder.DefaultWeightFn(nil))
	assert.Equal(t, builder.DefaultEdgeWeight, builder.DefaultWeightFn(rng))

	assert.Equal(t, -3.5, builder.ConstantWeightFn(-3.5)(rng))

	uniform := builder.UniformWeightFn(-2, 3)
	assert.Equal(t, -2.0, uniform(nil))
	for i := 0; i < 100; i++ {
		w := uniform(rng)
		assert.GreaterOrEqual(t, w, -2.0)
		assert.Less(t, w, 3.0)
	}
	assert.Equal(t, 4.0, builder.UniformWeightFn(4, 4)(rng))

	ints := builder.UniformIntWeightFn(-1, 1)
	assert.Equal(t, -1.0, ints(nil))
	seen := map[float64]bool{}
	for i := 0; i < 200; i++ {
		seen[ints(rng)] = true
	}
	assert.Equal(t, map[float64]bool{-1: true, 0: true, 1: true}, seen)

	normal := builder.NormalWeightFn(10, 2)
	assert.Equal(t, 10.0, normal(nil))
	w := normal(rng)
	assert.Equal(t, math.Round(w), w, "normal weights are rounded")

	exp := builder.ExponentialWeightFn(0.5)
	assert.Equal(t, builder.DefaultEdgeWeight, exp(nil))
	assert.GreaterOrEqual(t, exp(rng), 0.0)
}

func TestWeightOptions(t *testing.T) {
	edges, _, err := builder.BuildEdges([]builder.BuilderOption{builder.WithConstantWeight(-2)}, builder.Cycle(3))
	assert.NoError(t, err)
	for _, e := range edges {
		assert.Equal(t, -2.0, e.Cost)
	}

	edges, _, err = builder.BuildEdges(
		[]builder.BuilderOption{builder.WithSeed(1), builder.WithExponentialWeight(1), builder.WithNormalWeight(5, 0)},
		builder.Path(5),
	)
	assert.NoError(t, err)
	for _, e := range edges {
		assert.Equal(t, 5.0, e.Cost, "last weight option wins")
	}
}
