// SPDX-License-Identifier: MIT
// Package: sssp/builder
//
// impl_path.go: implementation of Path(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Reserves node IDs 0..n-1.
//   - Emits edges (i-1) → i for i=1..n-1 in stable increasing order.
//
// Complexity:
//   - Time: O(n). Space: O(1) extra.

package builder

// Path returns a Constructor that builds a directed path P_n: 0→1→…→n-1.
func Path(n int) Constructor {
	return func(el *edgeList, cfg builderConfig) error {
		if err := validateMin(methodPath, "n", n, MinPathNodes); err != nil {
			return err
		}

		el.reserve(n)
		for i := 1; i < n; i++ {
			el.add(i-1, i, cfg)
		}

		return nil
	}
}
