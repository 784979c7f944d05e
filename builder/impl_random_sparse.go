// SPDX-License-Identifier: MIT
// Package: sssp/builder
//
// impl_random_sparse.go: implementation of RandomSparse(n, p) constructor.
//
// Canonical model:
//   - Erdős–Rényi-like generator over ordered pairs: include each arc (i, j),
//     i ≠ j, independently with probability p.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil when 0 < p < 1 (else ErrNeedRandSource).
//     p = 0 and p = 1 are deterministic and need no RNG.
//
// Complexity:
//   - Time: O(n²) Bernoulli trials. Space: O(1) extra.
//
// Determinism:
//   - Stable trial order: i ascending, then j ascending. Each trial draws
//     once from cfg.rng, and each kept arc then draws its weight, so a fixed
//     seed reproduces the same list.

package builder

// RandomSparse returns a Constructor that samples a random digraph over n
// nodes with independent arc probability p.
func RandomSparse(n int, p float64) Constructor {
	return func(el *edgeList, cfg builderConfig) error {
		if err := validateMin(methodRandomSparse, "n", n, MinRandomSparseNodes); err != nil {
			return err
		}
		if err := validateProbability(methodRandomSparse, p); err != nil {
			return err
		}
		stochastic := p > MinProbability && p < MaxProbability
		if stochastic && cfg.rng == nil {
			return errorf(methodRandomSparse, "p=%g", ErrNeedRandSource, p)
		}

		el.reserve(n)
		if p == MinProbability {
			return nil
		}

		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i == j {
					continue
				}
				// Float64 is in [0,1), so p = 1 keeps every arc.
				if stochastic && cfg.rng.Float64() >= p {
					continue
				}
				el.add(i, j, cfg)
			}
		}

		return nil
	}
}
