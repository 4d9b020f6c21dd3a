package mathutil

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClamp(t *testing.T) {
	assert.Equal(t, 0.5, Clamp(0.5, 0, 1))
	assert.Equal(t, 0.0, Clamp(-3, 0, 1))
	assert.Equal(t, 1.0, Clamp(7, 0, 1))
	assert.Equal(t, 0.0, Clamp(math.NaN(), 0, 1))
	assert.Equal(t, 80_000.0, Clamp(12_345, 80_000, 90_000))
}

func TestSafeDiv(t *testing.T) {
	assert.InDelta(t, 2.0, SafeDiv(10, 5), 1e-12)
	assert.Equal(t, 0.0, SafeDiv(10, 0))
	assert.Equal(t, 0.0, SafeDiv(10, 1e-15))
	assert.InDelta(t, -2.0, SafeDiv(10, -5), 1e-12)
}

func TestNearestIndex(t *testing.T) {
	cases := []struct {
		x    float64
		n    int
		want int
	}{
		{0, 3, 0},
		{0.49, 3, 0},
		{0.5, 3, 1},
		{1.9, 3, 2},
		{2.4, 3, 2},
		{17.0, 3, 2},  // clamped high
		{-4.2, 3, 0},  // clamped low
		{0.7, 1, 0},   // single-entry catalog
		{math.NaN(), 5, 0},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, NearestIndex(tc.x, tc.n), "x=%v n=%d", tc.x, tc.n)
	}
}

func TestFinite(t *testing.T) {
	assert.True(t, Finite(0))
	assert.True(t, Finite(-1e300))
	assert.False(t, Finite(math.NaN()))
	assert.False(t, Finite(math.Inf(1)))
	assert.False(t, Finite(math.Inf(-1)))
}
