package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHertz_Humanized_Boundaries(t *testing.T) {
	cases := []struct {
		in   Hertz
		want string
	}{
		{Hertz(0), "0.000 Hz"},
		{Hertz(999), "999.000 Hz"},
		{Hertz(1e3), "1.000 kHz"},
		{Hertz(85_000), "85.000 kHz"},
		{Hertz(1e6 - 1), "999.999 kHz"},
		{Hertz(1e6), "1.000 MHz"},
		{Hertz(13.56e6), "13.560 MHz"},
		{Hertz(1e9), "1.000 GHz"},
	}
	for _, tc := range cases {
		t.Run(tc.want, func(t *testing.T) {
			require.Equal(t, tc.want, tc.in.Humanized())
		})
	}
}

func TestHertz_Conversions(t *testing.T) {
	assert.InDelta(t, 85.0, Hertz(85_000).KHz(), 1e-12)
	assert.InDelta(t, 0.085, Hertz(85_000).MHz(), 1e-12)
}

func TestWatts_Humanized(t *testing.T) {
	cases := []struct {
		in   Watts
		want string
	}{
		{Watts(0.0000005), "0.500 µW"},
		{Watts(0.0025), "2.500 mW"},
		{Watts(1), "1.000 W"},
		{Watts(12.345), "12.345 W"},
		{Watts(1500), "1.500 kW"},
		{Watts(-3.2), "-3.200 W"},
	}
	for _, tc := range cases {
		t.Run(tc.want, func(t *testing.T) {
			require.Equal(t, tc.want, tc.in.Humanized())
		})
	}
}

func TestHenry_Humanized(t *testing.T) {
	assert.Equal(t, "24.000 µH", Henry(24e-6).Humanized())
	assert.Equal(t, "1.200 mH", Henry(1.2e-3).Humanized())
	assert.Equal(t, "10.000 nH", Henry(10e-9).Humanized())
	assert.InDelta(t, 24.0, Henry(24e-6).UH(), 1e-9)
}
