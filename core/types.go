// Package core defines the Edge, Arc, AdjacencyList and Distances types shared
// by every shortest-path solver, together with the sentinel errors and the
// precondition checks the solvers run before touching their inputs.
//
// This file declares Edge, Arc, the sentinel errors and the validators.
//
// Errors:
//
//	ErrInvalidVertexCount - vertex count is negative.
//	ErrNodeOutOfRange     - a node ID lies outside [0, n).
//	ErrNaNCost            - an edge cost is NaN.
package core

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors for core validation.
var (
	// ErrInvalidVertexCount indicates a negative vertex count.
	ErrInvalidVertexCount = errors.New("core: vertex count must be non-negative")

	// ErrNodeOutOfRange indicates a source, target or edge endpoint outside [0, n).
	ErrNodeOutOfRange = errors.New("core: node ID out of range")

	// ErrNaNCost indicates an edge whose cost is NaN; NaN breaks every
	// distance comparison, so no solver accepts it.
	ErrNaNCost = errors.New("core: edge cost is NaN")
)

// Edge is a directed, weighted connection From→To.
//
// Node IDs are dense integers in [0, n). Cost may be negative; whether a
// negative cost is acceptable is decided by the solver, not by the type.
type Edge struct {
	// From is the source node ID.
	From int

	// To is the destination node ID.
	To int

	// Cost is the weight paid to traverse the edge.
	Cost float64
}

// NewEdge returns the edge from→to with the given cost.
func NewEdge(from, to int, cost float64) Edge {
	return Edge{From: from, To: to, Cost: cost}
}

// String renders the edge as "from→to(cost)".
func (e Edge) String() string {
	return fmt.Sprintf("%d→%d(%g)", e.From, e.To, e.Cost)
}

// Arc is the outgoing half of an Edge as stored in an AdjacencyList.
type Arc struct {
	To   int     // destination node ID
	Cost float64 // traversal cost
}

// ValidateVertexCount reports ErrInvalidVertexCount when n < 0.
func ValidateVertexCount(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: n=%d", ErrInvalidVertexCount, n)
	}

	return nil
}

// ValidateNode reports ErrNodeOutOfRange when id is outside [0, n).
// Complexity: O(1).
func ValidateNode(id, n int) error {
	if id < 0 || id >= n {
		return fmt.Errorf("%w: id=%d, n=%d", ErrNodeOutOfRange, id, n)
	}

	return nil
}

// ValidateEdges scans edges once and returns the first violation found:
// an endpoint outside [0, n) (ErrNodeOutOfRange) or a NaN cost (ErrNaNCost).
// The returned error names the offending edge index.
//
// Complexity: O(E) time, O(1) space.
func ValidateEdges(edges []Edge, n int) error {
	for i, e := range edges {
		if e.From < 0 || e.From >= n || e.To < 0 || e.To >= n {
			return fmt.Errorf("%w: edge[%d] %s, n=%d", ErrNodeOutOfRange, i, e, n)
		}
		if math.IsNaN(e.Cost) {
			return fmt.Errorf("%w: edge[%d] %d→%d", ErrNaNCost, i, e.From, e.To)
		}
	}

	return nil
}

// Validate runs the checks every solver shares, in order: vertex count,
// source bounds, then the edge scan.
func Validate(edges []Edge, n, source int) error {
	if err := ValidateVertexCount(n); err != nil {
		return err
	}
	if err := ValidateNode(source, n); err != nil {
		return fmt.Errorf("source: %w", err)
	}

	return ValidateEdges(edges, n)
}

// HasNegativeCost reports whether any edge carries a cost below zero,
// returning the index of the first such edge (or -1).
func HasNegativeCost(edges []Edge) (int, bool) {
	for i, e := range edges {
		if e.Cost < 0 {
			return i, true
		}
	}

	return -1, false
}
