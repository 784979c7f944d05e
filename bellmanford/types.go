// Package bellmanford defines configuration options for the Bellman–Ford
// solver.
package bellmanford

// Options configures the behavior of BellmanFord.
//
// OnNegativeCycle – called once for every node the detection phase marks
//
//	with −Inf, in marking order.
//
// Validate        – run the O(E) precondition scan (bounds, NaN).
type Options struct {
	OnNegativeCycle func(node int) // cycle hook, may be nil
	Validate        bool           // precondition scan on/off
}

// Option represents a functional option for configuring BellmanFord.
type Option func(*Options)

// WithOnNegativeCycle registers fn to observe nodes found to lie on, or be
// reachable from, a negative cycle.
func WithOnNegativeCycle(fn func(node int)) Option {
	return func(o *Options) {
		o.OnNegativeCycle = fn
	}
}

// WithoutValidation skips the precondition scan. The caller guarantees that
// every ID lies in [0, n) and no cost is NaN.
func WithoutValidation() Option {
	return func(o *Options) {
		o.Validate = false
	}
}

// DefaultOptions returns Options with validation on and no hook.
func DefaultOptions() Options {
	return Options{
		OnNegativeCycle: nil,
		Validate:        true,
	}
}
