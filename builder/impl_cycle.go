// SPDX-License-Identifier: MIT
// Package: sssp/builder
//
// impl_cycle.go: implementation of Cycle(n) constructor.
//
// Contract:
//   • n ≥ 3 (else ErrTooFewVertices).
//   • Reserves node IDs 0..n-1.
//   • Emits edges in stable order i → (i+1)%n for i=0..n-1.
//
// Complexity:
//   • Time: O(n). Space: O(1) extra.

package builder

// Cycle returns a Constructor that builds an n-vertex directed ring C_n.
func Cycle(n int) Constructor {
	return func(el *edgeList, cfg builderConfig) error {
		if err := validateMin(methodCycle, "n", n, MinCycleNodes); err != nil {
			return err
		}

		el.reserve(n)
		// For i == n-1 the edge closes the ring back to 0.
		for i := 0; i < n; i++ {
			el.add(i, (i+1)%n, cfg)
		}

		return nil
	}
}
