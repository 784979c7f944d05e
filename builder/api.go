// SPDX-License-Identifier: MIT
// Package: sssp/builder
//
// api.go - thin public entry-point for the builder package.
//
// Design contract (strict):
//   - One orchestrator: BuildEdges(bopts, cons...). Resolves cfg, runs cons in order.
//   - Constructors share one dense node-ID space; the vertex count is the
//     largest size any constructor asked for.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig.
//   - Determinism: same options/seed and constructor order ⇒ identical edge lists.
//   - Safety: never panic at build time; return sentinel errors from constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/sssp/core"
)

// Constructor appends a deterministic set of edges to the edge list being
// built, using the resolved builderConfig. Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Emit edges in a stable, documented order.
//   - Draw every weight through cfg.weight so seeding stays meaningful.
type Constructor func(el *edgeList, cfg builderConfig) error

// BuildEdges resolves the builder configuration from bopts and applies all
// constructors in order to one shared edge list.
//
// Returns:
//   - edges: every emitted edge in emission order.
//   - n:     vertex count, i.e. the largest node range any constructor used.
//   - err:   the first constructor error wrapped as "BuildEdges: %w".
//
// Complexity:
//   - Resolving options: O(len(bopts)).
//   - Applying K constructors: Σ cost of each constructor.
func BuildEdges(bopts []BuilderOption, cons ...Constructor) ([]core.Edge, int, error) {
	cfg := newBuilderConfig(bopts...)
	el := &edgeList{}

	for i, fn := range cons {
		if fn == nil {
			return nil, 0, fmt.Errorf("BuildEdges: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(el, cfg); err != nil {
			return nil, 0, fmt.Errorf("BuildEdges: %w", err)
		}
	}

	return el.edges, el.n, nil
}

// edgeList accumulates the output of all constructors of one BuildEdges call.
type edgeList struct {
	edges []core.Edge
	n     int // number of node IDs in use
}

// reserve widens the node range to at least [0, n).
func (el *edgeList) reserve(n int) {
	if n > el.n {
		el.n = n
	}
}

// add appends u→v with a freshly drawn weight. In bidirectional mode the
// reverse arc v→u follows immediately with the same weight.
func (el *edgeList) add(u, v int, cfg builderConfig) {
	w := cfg.weight()
	el.edges = append(el.edges, core.NewEdge(u, v, w))
	if cfg.bidirectional && u != v {
		el.edges = append(el.edges, core.NewEdge(v, u, w))
	}
}
