// Package core provides the shared data model of the shortest-path engine.
//
// Graphs are never stored as objects here: a caller hands every solver a flat
// []Edge, a vertex count n and a source node. Node IDs are dense integers in
// [0, n), which lets every per-node table be a plain slice.
//
// Types:
//
//	– Edge          {From, To, Cost}; immutable triple supplied by the caller.
//	– Arc           {To, Cost}; the outgoing half of an Edge.
//	– AdjacencyList map[from][]Arc in first-seen edge order (BuildAdjacency).
//	– Distances     []float64 indexed by node ID with +∞ / −∞ sentinels.
//
// Validation:
//
//	Validate(edges, n, source) checks, in order, n ≥ 0, 0 ≤ source < n, and
//	every edge endpoint in range with a non-NaN cost. Errors wrap the
//	sentinels ErrInvalidVertexCount, ErrNodeOutOfRange and ErrNaNCost with
//	the offending values; branch on them with errors.Is.
//
// Lifetimes:
//
//	Edges and n are owned by the caller and only read. Distances and
//	AdjacencyList values are created per solver call and never shared, so
//	concurrent calls over the same read-only edge slice need no locking.
package core
