package bellmanford

import (
	"fmt"

	"github.com/katalvlaran/sssp/core"
)

// BellmanFord computes shortest distances from source over a directed graph
// whose edges may carry negative costs.
//
// Returns:
//
//   - dist: core.Distances of length n where each slot is
//     +Inf (unreachable), a finite shortest cost, or −Inf (on or reachable
//     from a negative cycle).
//   - err:  non-nil only when validation fails. A negative cycle is a result,
//     not an error.
//
// Phases:
//
//  1. Relaxation: up to n−1 passes over edges in input order. A pass that
//     changes nothing is a fixed point; the remaining passes and the
//     detection phase are skipped because no edge can relax any more.
//  2. Detection: further passes in which every edge that still relaxes sets
//     its destination to −Inf. −Inf then flows along outgoing edges. The
//     phase ends on a pass with no change, and never runs more than n passes.
//     The bound is n rather than the textbook n−1: the first pass marks one
//     node on every reachable negative cycle and −Inf may then need n−1 more
//     hops to reach the far end of a chain. With n = 1 it also lets a negative
//     self-loop on the source be caught after zero relaxation passes.
//
// The final distances do not depend on edge order; only the number of
// passes needed to get there does.
//
// Complexity:
//
//   - Time:  O(V·E)
//   - Space: O(V)
func BellmanFord(edges []core.Edge, n, source int, opts ...Option) (core.Distances, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.Validate {
		if err := core.Validate(edges, n, source); err != nil {
			return nil, fmt.Errorf("bellmanford: %w", err)
		}
	}

	r := &runner{
		options: cfg,
		edges:   edges,
		dist:    core.NewDistances(n, source),
	}

	if r.relaxAll(n - 1) {
		r.markCycles(n)
	}

	return r.dist, nil
}

// runner holds the mutable state of one BellmanFord call.
type runner struct {
	options Options
	edges   []core.Edge    // caller-owned, read-only
	dist    core.Distances // best known distance per node
}

// relaxAll runs up to passes relaxation passes. It reports whether the last
// pass still changed a distance, i.e. whether a negative cycle may exist.
func (r *runner) relaxAll(passes int) bool {
	changed := true
	for p := 0; p < passes && changed; p++ {
		changed = false
		for _, e := range r.edges {
			if cand := r.dist[e.From] + e.Cost; cand < r.dist[e.To] {
				r.dist[e.To] = cand
				changed = true
			}
		}
	}

	// Zero passes (n ≤ 1) prove nothing: a self-loop on the source may still
	// be negative.
	return changed
}

// markCycles runs up to passes detection passes, setting every destination
// of a still-relaxing edge to −Inf. BellmanFord passes n, one more than the
// usual n−1, so that marking and propagation both fit.
func (r *runner) markCycles(passes int) {
	changed := true
	for p := 0; p < passes && changed; p++ {
		changed = false
		for _, e := range r.edges {
			if r.dist[e.From]+e.Cost < r.dist[e.To] {
				r.dist[e.To] = core.NegInf
				changed = true
				if r.options.OnNegativeCycle != nil {
					r.options.OnNegativeCycle(e.To)
				}
			}
		}
	}
}
