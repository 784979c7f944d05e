// Package builder provides validation helpers to enforce parameter contracts
// in Constructor factories.
package builder

import "fmt"

// validateMin ensures that got ≥ min, otherwise it returns ErrTooFewVertices
// with the constructor name and the offending value.
// Complexity: O(1).
func validateMin(method, param string, got, min int) error {
	if got < min {
		return fmt.Errorf("%s: %s=%d < min=%d: %w", method, param, got, min, ErrTooFewVertices)
	}

	return nil
}

// validateProbability enforces p ∈ [MinProbability, MaxProbability].
// NaN is rejected as well.
// Complexity: O(1).
func validateProbability(method string, p float64) error {
	if !(p >= MinProbability && p <= MaxProbability) {
		return fmt.Errorf("%s: p=%g not in [%.1f,%.1f]: %w",
			method, p, MinProbability, MaxProbability, ErrInvalidProbability)
	}

	return nil
}

// errorf prefixes a sentinel with the constructor name and formatted context.
func errorf(method, format string, sentinel error, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), sentinel)
}
