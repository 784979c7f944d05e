// Package dijkstra defines configuration options and sentinel errors
// for the lazy Dijkstra solver.
package dijkstra

import (
	"errors"
	"math"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNegativeWeight indicates that a negative edge cost was found by the
	// pre-scan. Dijkstra's label-setting order is wrong under negative costs;
	// use the bellmanford package for such graphs.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")
)

// noTarget marks Options.Target as unset.
const noTarget = -1

// Options configures the behavior of the Dijkstra algorithm.
//
// Target      – node ID whose non-stale extraction stops the search early.
//
//	Default is -1 (drain the heap).
//
// MaxDistance – candidates above MaxDistance are never pushed, so such
//
//	nodes keep +Inf. Default is +Inf.
//
// OnSettle    – called once per node when its distance becomes final.
//
// Validate    – run the O(E) precondition scan (bounds, NaN, negative costs).
type Options struct {
	Target      int                          // early-stop node, or -1
	MaxDistance float64                      // exploration cap
	OnSettle    func(node int, dist float64) // settle hook, may be nil
	Validate    bool                         // precondition scan on/off
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// WithTarget stops the search as soon as target is extracted from the heap
// with an up-to-date distance. Nodes not yet settled at that point may still
// hold tentative (over-estimated) or +Inf distances.
// Panics on a negative target.
func WithTarget(target int) Option {
	if target < 0 {
		panic("dijkstra: WithTarget(target<0)")
	}
	return func(o *Options) {
		o.Target = target
	}
}

// WithMaxDistance sets a maximum distance threshold.
// Nodes whose shortest distance would exceed max keep +Inf.
// Must pass a non-negative value; negative values panic with ErrBadMaxDistance.
func WithMaxDistance(max float64) Option {
	if max < 0 || math.IsNaN(max) {
		panic(ErrBadMaxDistance.Error())
	}
	return func(o *Options) {
		o.MaxDistance = max
	}
}

// WithOnSettle registers fn to be called with each node and its final
// distance, in non-decreasing distance order.
func WithOnSettle(fn func(node int, dist float64)) Option {
	return func(o *Options) {
		o.OnSettle = fn
	}
}

// WithoutValidation skips the precondition scan. The caller guarantees that
// every ID lies in [0, n) and every cost is a non-negative number; violations
// then surface as index-out-of-range panics or wrong distances.
func WithoutValidation() Option {
	return func(o *Options) {
		o.Validate = false
	}
}

// DefaultOptions returns an Options struct initialized with defaults:
//   - Target:      -1 (no early stop).
//   - MaxDistance: +Inf (explore everything reachable).
//   - OnSettle:    nil.
//   - Validate:    true.
func DefaultOptions() Options {
	return Options{
		Target:      noTarget,
		MaxDistance: math.Inf(1),
		OnSettle:    nil,
		Validate:    true,
	}
}
