package errors

import "math"

// MaxGridSize bounds the grid side length accepted at the process boundary.
const MaxGridSize = 256

// MaxRelativeEdgeCount bounds the attempt multiplier accepted at the process boundary.
const MaxRelativeEdgeCount = 64.0

// ValidateGridSize checks that n is a usable grid side length.
func ValidateGridSize(n int) error {
	if n < 1 {
		return New(ErrCodeInvalidInput, "grid size must be positive, got %d", n)
	}
	if n > MaxGridSize {
		return New(ErrCodeInvalidInput, "grid size too large (max %d), got %d", MaxGridSize, n)
	}
	return nil
}

// ValidateProbability checks that p is a probability.
func ValidateProbability(p float64) error {
	if math.IsNaN(p) || p < 0 || p > 1 {
		return New(ErrCodeInvalidInput, "vertex probability must be in [0, 1], got %v", p)
	}
	return nil
}

// ValidateRelativeEdgeCount checks that rel is a non-negative attempt multiplier.
func ValidateRelativeEdgeCount(rel float64) error {
	if math.IsNaN(rel) || math.IsInf(rel, 0) || rel < 0 {
		return New(ErrCodeInvalidInput, "relative potential edge count must be non-negative, got %v", rel)
	}
	if rel > MaxRelativeEdgeCount {
		return New(ErrCodeInvalidInput, "relative potential edge count too large (max %g), got %v", MaxRelativeEdgeCount, rel)
	}
	return nil
}

// ValidateResolution checks an output image size in pixels.
func ValidateResolution(px int) error {
	if px < 16 || px > 8192 {
		return New(ErrCodeInvalidInput, "resolution must be between 16 and 8192 pixels, got %d", px)
	}
	return nil
}
