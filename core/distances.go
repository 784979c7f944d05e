package core

import "math"

// Distances holds one shortest-path cost per node, indexed by node ID.
//
// Every slot is one of:
//   - a finite value: the best known cost from the source;
//   - math.Inf(1):    the node was never reached;
//   - math.Inf(-1):   the node lies on, or is reachable from, a negative
//     cycle (Bellman–Ford only).
//
// IEEE-754 ordering gives −∞ < finite < +∞, so relaxations need no special
// cases for the sentinels.
type Distances []float64

// Inf and NegInf are the two sentinel slot values.
var (
	Inf    = math.Inf(1)  // unreached
	NegInf = math.Inf(-1) // on or after a negative cycle
)

// NewDistances returns n slots set to +∞ except source, which is 0.
// source must already be validated against n.
// Complexity: O(n).
func NewDistances(n, source int) Distances {
	d := make(Distances, n)
	for i := range d {
		d[i] = Inf
	}
	d[source] = 0

	return d
}

// Reachable reports whether id received any finite or −∞ cost.
func (d Distances) Reachable(id int) bool {
	return !math.IsInf(d[id], 1)
}

// Unbounded reports whether id is affected by a negative cycle.
func (d Distances) Unbounded(id int) bool {
	return math.IsInf(d[id], -1)
}

// HasUnbounded reports whether any slot is −∞.
func (d Distances) HasUnbounded() bool {
	for i := range d {
		if d.Unbounded(i) {
			return true
		}
	}

	return false
}

// Clone returns an independent copy of d.
func (d Distances) Clone() Distances {
	out := make(Distances, len(d))
	copy(out, d)

	return out
}

// Equal reports whether d and other have identical length and slot values.
// Infinities compare equal to infinities of the same sign.
func (d Distances) Equal(other Distances) bool {
	if len(d) != len(other) {
		return false
	}
	for i := range d {
		if d[i] != other[i] {
			return false
		}
	}

	return true
}
