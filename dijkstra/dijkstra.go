package dijkstra

import (
	"fmt"

	"github.com/katalvlaran/sssp/core"
	"github.com/katalvlaran/sssp/minheap"
)

// Dijkstra computes shortest distances from source to every node of the
// directed graph given by edges over the node IDs [0, n).
//
// Returns:
//
//   - dist: core.Distances of length n; dist[v] is the minimal cost from
//     source, or +Inf if v is unreachable (or beyond MaxDistance, or not yet
//     settled when a Target stopped the search).
//   - err:  non-nil if inputs are invalid or a negative cost is present.
//
// Preconditions and validation (in order, skipped by WithoutValidation):
//  1. n ≥ 0 (core.ErrInvalidVertexCount).
//  2. 0 ≤ source < n (core.ErrNodeOutOfRange).
//  3. 0 ≤ Target < n when set (core.ErrNodeOutOfRange).
//  4. Every edge endpoint in range with a non-NaN cost (core.ErrNodeOutOfRange, core.ErrNaNCost).
//  5. No edge cost below zero (ErrNegativeWeight).
//
// Complexity:
//
//   - Time:  O((V + E) log E), the heap may hold one entry per relaxation.
//   - Space: O(V + E)
func Dijkstra(edges []core.Edge, n, source int, opts ...Option) (core.Distances, error) {
	// 1) Build options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Preconditions.
	if cfg.Validate {
		if err := validate(edges, n, source, cfg); err != nil {
			return nil, err
		}
	}

	// 3) Per-call state; nothing survives the call.
	r := &runner{
		options: cfg,
		adj:     core.BuildAdjacency(edges),
		dist:    core.NewDistances(n, source),
		visited: make([]bool, n),
		pq:      minheap.NewWithCapacity(n),
	}

	// 4) Seed the heap and run.
	r.pq.Insert(source, 0)
	r.process()

	return r.dist, nil
}

// validate runs the fail-fast checks in the documented order.
func validate(edges []core.Edge, n, source int, cfg Options) error {
	if err := core.Validate(edges, n, source); err != nil {
		return fmt.Errorf("dijkstra: %w", err)
	}
	if cfg.Target != noTarget {
		if err := core.ValidateNode(cfg.Target, n); err != nil {
			return fmt.Errorf("dijkstra: target: %w", err)
		}
	}
	if i, found := core.HasNegativeCost(edges); found {
		return fmt.Errorf("%w: edge[%d] %s", ErrNegativeWeight, i, edges[i])
	}

	return nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	options Options            // resolved configuration
	adj     core.AdjacencyList // outgoing arcs per node; read-only
	dist    core.Distances     // best known distance per node
	visited []bool             // visited[v] once v has been extracted
	pq      *minheap.MinHeap   // lazy priority queue, duplicates allowed
}

// process is the main loop. It ends when the heap is empty or when the
// target is extracted with an up-to-date distance.
func (r *runner) process() {
	for !r.pq.IsEmpty() {
		// 1) Pop the smallest recorded distance.
		item, _ := r.pq.ExtractMin()
		u, d := item.Node, item.Dist

		// 2) u is visited from its first extraction on. Later extractions of
		//    u are always stale because its best entry surfaces first.
		r.visited[u] = true

		// 3) Stale entry: a shorter distance was recorded after this push.
		if r.dist[u] < d {
			continue
		}

		// 4) d is final for u.
		if r.options.OnSettle != nil {
			r.options.OnSettle(u, d)
		}

		// 5) Early stop on the target.
		if u == r.options.Target {
			return
		}

		// 6) Relax outgoing arcs; nodes without any are skipped.
		r.relax(u, d)
	}
}

// relax examines each arc leaving u and pushes every improved neighbor.
// d is u's final distance.
func (r *runner) relax(u int, d float64) {
	arcs := r.adj.Arcs(u)
	if len(arcs) == 0 {
		return
	}

	var cand float64
	for _, a := range arcs {
		// Settled neighbors cannot improve under non-negative costs.
		if r.visited[a.To] {
			continue
		}

		cand = d + a.Cost

		// Beyond the cap: leave the neighbor untouched.
		if cand > r.options.MaxDistance {
			continue
		}

		// Strictly better only; equal distances would only add duplicates.
		if cand >= r.dist[a.To] {
			continue
		}

		r.dist[a.To] = cand
		r.pq.Insert(a.To, cand)
	}
}
