// SPDX-License-Identifier: MIT
// Package: sssp/builder
//
// impl_bipartite.go: implementation of CompleteBipartite(n1, n2) constructor.
//
// Contract:
//   • n1 ≥ 1 and n2 ≥ 1 (else ErrTooFewVertices).
//   • Left side is 0..n1-1, right side is n1..n1+n2-1.
//   • Emits every left → right edge, left index ascending, then right ascending.
//
// Complexity:
//   • Time: O(n1·n2) edges. Space: O(1) extra.

package builder

// CompleteBipartite returns a Constructor for K_{n1,n2} directed left to right.
func CompleteBipartite(n1, n2 int) Constructor {
	return func(el *edgeList, cfg builderConfig) error {
		if err := validateMin(methodCompleteBipartite, "n1", n1, MinPartitionSize); err != nil {
			return err
		}
		if err := validateMin(methodCompleteBipartite, "n2", n2, MinPartitionSize); err != nil {
			return err
		}

		el.reserve(n1 + n2)
		for i := 0; i < n1; i++ {
			for j := 0; j < n2; j++ {
				el.add(i, n1+j, cfg)
			}
		}

		return nil
	}
}
