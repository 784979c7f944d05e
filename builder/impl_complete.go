// SPDX-License-Identifier: MIT
// Package: sssp/builder
//
// impl_complete.go: implementation of Complete(n) constructor.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices). K_1 reserves one node and has no edges.
//   • Emits every ordered pair (i, j) with i ≠ j, i ascending then j ascending.
//     WithBidirectional is ignored here: both directions are already present.
//
// Complexity:
//   • Time: O(n²) edges. Space: O(1) extra.

package builder

// Complete returns a Constructor for the complete digraph on n nodes.
func Complete(n int) Constructor {
	return func(el *edgeList, cfg builderConfig) error {
		if err := validateMin(methodComplete, "n", n, MinCompleteNodes); err != nil {
			return err
		}

		el.reserve(n)

		one := cfg
		one.bidirectional = false
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i == j {
					continue
				}
				el.add(i, j, one)
			}
		}

		return nil
	}
}
