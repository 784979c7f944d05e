// Package sssp defines the solver selection options and sentinel errors for
// Compute.
package sssp

import "errors"

// ErrUnknownMethod indicates that Options.Method names no known solver.
var ErrUnknownMethod = errors.New("sssp: unknown method")

// MethodAuto picks Dijkstra when every cost is non-negative and Bellman–Ford
// otherwise.
const MethodAuto = "auto"

// MethodDijkstra selects the lazy Dijkstra solver (non-negative costs only).
const MethodDijkstra = "dijkstra"

// MethodBellmanFord selects the Bellman–Ford solver (any costs, −Inf on
// negative cycles).
const MethodBellmanFord = "bellman-ford"

// Options configures Compute.
//
// Fields:
//
//	Method    string - one of MethodAuto, MethodDijkstra or MethodBellmanFord.
//	Target    int    - early-stop node for Dijkstra, read only when HasTarget.
//	HasTarget bool   - enables Target. Bellman–Ford always solves every node
//	                   and only validates Target.
//
// The zero value is usable: automatic choice and no early stop.
type Options struct {
	// Method to use. Empty means MethodAuto.
	Method string

	// Target stops Dijkstra once its distance is final.
	Target int

	// HasTarget marks Target as set.
	HasTarget bool
}

// DefaultOptions returns Options for automatic solver choice without an
// early-stop target.
func DefaultOptions() Options {
	return Options{
		Method: MethodAuto,
	}
}
