// SPDX-License-Identifier: MIT
// Package: sssp/builder
//
// impl_wheel.go: implementation of Wheel(n) constructor.
//
// Canonical model:
//   • Wₙ = hub 0 + ring over 1..n-1.
//
// Contract:
//   • n ≥ 4 (else ErrTooFewVertices), so the rim has at least 3 nodes.
//   • Emits the rim first, i → i+1 for i=1..n-2 and then (n-1) → 1,
//     followed by the spokes 0 → i for i=1..n-1.
//
// Complexity:
//   • Time: O(n). Space: O(1) extra.

package builder

// Wheel returns a Constructor that builds a wheel Wₙ with hub 0.
func Wheel(n int) Constructor {
	return func(el *edgeList, cfg builderConfig) error {
		if err := validateMin(methodWheel, "n", n, MinWheelNodes); err != nil {
			return err
		}

		el.reserve(n)

		// Rim: the ring 1→2→…→n-1→1.
		rim := n - 1
		for i := 0; i < rim; i++ {
			el.add(1+i, 1+(i+1)%rim, cfg)
		}

		// Spokes from the hub in stable order.
		for i := 1; i < n; i++ {
			el.add(starCenter, i, cfg)
		}

		return nil
	}
}
