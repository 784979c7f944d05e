// SPDX-License-Identifier: MIT
// Package: sssp/builder
//
// impl_star.go: implementation of Star(n) constructor.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices).
//   • Node 0 is the center; leaves are 1..n-1.
//   • Emits spokes 0 → i for i=1..n-1 in increasing order.
//
// Complexity:
//   • Time: O(n). Space: O(1) extra.

package builder

// starCenter is the node ID of the hub in Star and Wheel.
const starCenter = 0

// Star returns a Constructor that builds a star with center 0 and n-1 leaves.
func Star(n int) Constructor {
	return func(el *edgeList, cfg builderConfig) error {
		if err := validateMin(methodStar, "n", n, MinStarNodes); err != nil {
			return err
		}

		el.reserve(n)
		for leaf := 1; leaf < n; leaf++ {
			el.add(starCenter, leaf, cfg)
		}

		return nil
	}
}
