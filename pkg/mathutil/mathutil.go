package mathutil

import "math"

// Clamp limits x to the closed interval [lo, hi].
func Clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	// guard against NaN
	if math.IsNaN(x) {
		return lo
	}
	return x
}

// SafeDiv returns n/d, or 0 when d is numerically zero.
func SafeDiv(n, d float64) float64 {
	const eps = 1e-12
	if d > eps || d < -eps {
		return n / d
	}
	return 0
}

// NearestIndex rounds x to the nearest integer and clamps it to [0, n-1].
// n must be >= 1.
func NearestIndex(x float64, n int) int {
	i := int(math.Round(Clamp(x, 0, float64(n-1))))
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}

// Finite reports whether x is neither NaN nor infinite.
func Finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
