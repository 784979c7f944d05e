// Package bellmanford_test covers the Bellman–Ford reference scenarios,
// negative-cycle propagation, edge-order independence and validation.
package bellmanford_test

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/sssp/bellmanford"
	"github.com/katalvlaran/sssp/core"
)

var (
	inf    = math.Inf(1)
	negInf = math.Inf(-1)
)

// BellmanFordSuite exercises BellmanFord under the reference scenarios.
type BellmanFordSuite struct {
	suite.Suite
}

// baseEdges is the seven-node graph with one negative edge (3→5, −2) and no
// negative cycle.
func baseEdges() []core.Edge {
	return []core.Edge{
		core.NewEdge(4, 5, 2),
		core.NewEdge(6, 4, 2),
		core.NewEdge(0, 1, 4),
		core.NewEdge(3, 5, -2),
		core.NewEdge(2, 4, 1),
		core.NewEdge(0, 6, 2),
		core.NewEdge(1, 2, 3),
		core.NewEdge(2, 3, 3),
	}
}

// cycleEdges is baseEdges plus the self-contained negative cycle 1→1 (−1).
func cycleEdges() []core.Edge {
	return []core.Edge{
		core.NewEdge(3, 5, -2),
		core.NewEdge(2, 4, 1),
		core.NewEdge(4, 5, 2),
		core.NewEdge(6, 4, 2),
		core.NewEdge(0, 1, 4),
		core.NewEdge(0, 6, 2),
		core.NewEdge(1, 1, -1),
		core.NewEdge(1, 2, 3),
		core.NewEdge(2, 3, 3),
	}
}

// TestNoNegativeCycle runs three orderings of the same graph.
func (s *BellmanFordSuite) TestNoNegativeCycle() {
	want := core.Distances{0, 4, 7, 10, 4, 6, 2}

	orderings := [][]core.Edge{
		baseEdges(),
		{
			core.NewEdge(3, 5, -2),
			core.NewEdge(4, 5, 2),
			core.NewEdge(6, 4, 2),
			core.NewEdge(0, 1, 4),
			core.NewEdge(0, 6, 2),
			core.NewEdge(2, 4, 1),
			core.NewEdge(1, 2, 3),
			core.NewEdge(2, 3, 3),
		},
		{
			core.NewEdge(1, 2, 3),
			core.NewEdge(0, 1, 4),
			core.NewEdge(0, 6, 2),
			core.NewEdge(2, 3, 3),
			core.NewEdge(3, 5, -2),
			core.NewEdge(2, 4, 1),
			core.NewEdge(6, 4, 2),
			core.NewEdge(4, 5, 2),
		},
	}

	for i, edges := range orderings {
		dist, err := bellmanford.BellmanFord(edges, 7, 0)
		s.Require().NoError(err)
		s.Equal(want, dist, "ordering %d", i+1)
	}
}

// TestSelfContainedNegativeCycle marks the cycle and everything downstream.
func (s *BellmanFordSuite) TestSelfContainedNegativeCycle() {
	dist, err := bellmanford.BellmanFord(cycleEdges(), 7, 0)
	s.Require().NoError(err)
	s.Equal(core.Distances{0, negInf, negInf, negInf, negInf, negInf, 2}, dist)
	s.True(dist.HasUnbounded())
}

// TestStartAtSink leaves everything but the start unreached.
func (s *BellmanFordSuite) TestStartAtSink() {
	dist, err := bellmanford.BellmanFord(cycleEdges(), 7, 5)
	s.Require().NoError(err)
	s.Equal(core.Distances{inf, inf, inf, inf, inf, 0, inf}, dist)
}

// TestStartInMiddle cannot reach 0, 1 or 6, nor the cycle on 1.
func (s *BellmanFordSuite) TestStartInMiddle() {
	dist, err := bellmanford.BellmanFord(cycleEdges(), 7, 2)
	s.Require().NoError(err)
	s.Equal(core.Distances{inf, inf, 0, 3, 1, 1, inf}, dist)
}

// TestSourceOnNegativeCycle turns the source itself into −Inf.
func (s *BellmanFordSuite) TestSourceOnNegativeCycle() {
	edges := []core.Edge{
		core.NewEdge(0, 1, 1),
		core.NewEdge(1, 0, -3),
		core.NewEdge(1, 2, 5),
	}
	dist, err := bellmanford.BellmanFord(edges, 4, 0)
	s.Require().NoError(err)
	s.Equal(core.Distances{negInf, negInf, negInf, inf}, dist)
}

// TestSingleNodeSelfLoop needs a detection pass even though n−1 == 0.
func (s *BellmanFordSuite) TestSingleNodeSelfLoop() {
	dist, err := bellmanford.BellmanFord([]core.Edge{core.NewEdge(0, 0, -1)}, 1, 0)
	s.Require().NoError(err)
	s.Equal(core.Distances{negInf}, dist)

	dist, err = bellmanford.BellmanFord([]core.Edge{core.NewEdge(0, 0, 1)}, 1, 0)
	s.Require().NoError(err)
	s.Equal(core.Distances{0}, dist)
}

// TestUnreachableNegativeCycle does not leak −Inf into the reachable part.
func (s *BellmanFordSuite) TestUnreachableNegativeCycle() {
	edges := []core.Edge{
		core.NewEdge(0, 1, 2),
		core.NewEdge(2, 3, -1),
		core.NewEdge(3, 2, -1),
	}
	dist, err := bellmanford.BellmanFord(edges, 4, 0)
	s.Require().NoError(err)
	s.Equal(core.Distances{0, 2, inf, inf}, dist)
}

// TestLongPropagationChain hangs a long tail off a negative cycle and
// expects −Inf on every node of it.
func (s *BellmanFordSuite) TestLongPropagationChain() {
	const n = 12
	// Tail edges come first, so each pass advances distances by one hop only.
	var edges []core.Edge
	for v := n - 2; v >= 1; v-- {
		edges = append(edges, core.NewEdge(v, v+1, 1))
	}
	edges = append(edges, core.NewEdge(0, 1, 1), core.NewEdge(1, 0, -5))

	dist, err := bellmanford.BellmanFord(edges, n, 0)
	s.Require().NoError(err)
	for v := 0; v < n; v++ {
		s.True(dist.Unbounded(v), "node %d should be −Inf, got %v", v, dist[v])
	}
}

// TestOnNegativeCycleHook reports each affected node exactly once.
func (s *BellmanFordSuite) TestOnNegativeCycleHook() {
	seen := make(map[int]int)
	_, err := bellmanford.BellmanFord(cycleEdges(), 7, 0, bellmanford.WithOnNegativeCycle(func(node int) {
		seen[node]++
	}))
	s.Require().NoError(err)
	s.Equal(map[int]int{1: 1, 2: 1, 3: 1, 4: 1, 5: 1}, seen)
}

// TestValidation maps bad input to core sentinels.
func (s *BellmanFordSuite) TestValidation() {
	_, err := bellmanford.BellmanFord(nil, -3, 0)
	s.True(errors.Is(err, core.ErrInvalidVertexCount), "got %v", err)

	_, err = bellmanford.BellmanFord(baseEdges(), 7, 7)
	s.True(errors.Is(err, core.ErrNodeOutOfRange), "got %v", err)

	_, err = bellmanford.BellmanFord([]core.Edge{core.NewEdge(0, 8, 1)}, 2, 0)
	s.True(errors.Is(err, core.ErrNodeOutOfRange), "got %v", err)

	dist, err := bellmanford.BellmanFord([]core.Edge{core.NewEdge(0, 1, math.NaN())}, 2, 0)
	s.True(errors.Is(err, core.ErrNaNCost), "got %v", err)
	s.Nil(dist)
}

// TestWithoutValidation gives the same answer on trusted input.
func (s *BellmanFordSuite) TestWithoutValidation() {
	dist, err := bellmanford.BellmanFord(baseEdges(), 7, 0, bellmanford.WithoutValidation())
	s.Require().NoError(err)
	s.Equal(core.Distances{0, 4, 7, 10, 4, 6, 2}, dist)
}

func TestBellmanFordSuite(t *testing.T) {
	suite.Run(t, new(BellmanFordSuite))
}

// randomSignedEdges builds m edges over n nodes with costs in [lo, hi].
func randomSignedEdges(r *rand.Rand, n, m, lo, hi int) []core.Edge {
	edges := make([]core.Edge, 0, m)
	for i := 0; i < m; i++ {
		edges = append(edges, core.NewEdge(r.Intn(n), r.Intn(n), float64(lo+r.Intn(hi-lo+1))))
	}
	return edges
}

// TestEdgeOrderIndependence shuffles random signed graphs, with and without
// negative cycles, and expects one fixed point.
func TestEdgeOrderIndependence(t *testing.T) {
	r := rand.New(rand.NewSource(99))
	for round := 0; round < 40; round++ {
		n := 1 + r.Intn(15)
		edges := randomSignedEdges(r, n, r.Intn(4*n+1), -3, 10)
		want, err := bellmanford.BellmanFord(edges, n, 0)
		require.NoError(t, err)

		for shuffle := 0; shuffle < 5; shuffle++ {
			perm := append([]core.Edge(nil), edges...)
			r.Shuffle(len(perm), func(i, j int) { perm[i], perm[j] = perm[j], perm[i] })
			got, err := bellmanford.BellmanFord(perm, n, 0)
			require.NoError(t, err)
			require.Equal(t, want, got, "round %d shuffle %d", round, shuffle)
		}
	}
}

// TestSourceIsZeroWithoutCycles checks dist[source] == 0 whenever no slot
// is −Inf, and idempotence of repeated calls.
func TestSourceIsZeroWithoutCycles(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	for round := 0; round < 40; round++ {
		n := 2 + r.Intn(12)
		source := r.Intn(n)
		edges := randomSignedEdges(r, n, r.Intn(3*n), -2, 8)

		first, err := bellmanford.BellmanFord(edges, n, source)
		require.NoError(t, err)
		second, err := bellmanford.BellmanFord(edges, n, source)
		require.NoError(t, err)
		require.Equal(t, first, second)

		if !first.Unbounded(source) {
			require.Equal(t, 0.0, first[source])
		}
	}
}
