// Package builder contains unit tests for the configuration primitives
// (builderConfig and BuilderOption).
package builder

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewBuilderConfig_Defaults(t *testing.T) {
	cfg := newBuilderConfig()
	assert.Nil(t, cfg.rng, "no randomness unless seeded")
	assert.False(t, cfg.bidirectional)
	assert.Equal(t, DefaultEdgeWeight, cfg.weight())
}

func TestNewBuilderConfig_LastWins(t *testing.T) {
	cfg := newBuilderConfig(WithConstantWeight(3), WithConstantWeight(4), WithBidirectional())
	assert.Equal(t, 4.0, cfg.weight())
	assert.True(t, cfg.bidirectional)
}

func TestWithSeed_Reproducible(t *testing.T) {
	a := newBuilderConfig(WithSeed(9))
	b := newBuilderConfig(WithSeed(9))
	assert.Equal(t, a.rng.Int63(), b.rng.Int63())
}

func TestEdgeList_Reserve(t *testing.T) {
	el := &edgeList{}
	el.reserve(4)
	el.reserve(2)
	assert.Equal(t, 4, el.n, "reserve never shrinks")
}
