package wpt

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func testParams() Params {
	return Params{
		Coupling:       0.3,
		TX:             Coil{Turns: 10, WireDiameter: 2, WireSpacing: 1, OuterDiameter: 150},
		RX:             Coil{Turns: 8, WireDiameter: 2, WireSpacing: 1, OuterDiameter: 120},
		LoadResistance: 10,
		MOSFETCount:    1,
		DiodeCount:     1,
		IdRMS:          5,
		Vds:            48,
		Ids:            5,
		ICoil:          5,
		IdEff:          4,
		IdMean:         3,
		Vd:             48,
		R1Unit:         0.005,
		R2Unit:         0.005,
		FMin:           80_000,
		FMax:           90_000,
	}
}

func TestParams_Validate_OK(t *testing.T) {
	require.NoError(t, testParams().Validate())
}

func TestParams_Validate_Errors(t *testing.T) {
	cases := []struct {
		name string
		mut  func(*Params)
		want error
	}{
		{"zero coupling", func(p *Params) { p.Coupling = 0 }, ErrInvalidParams},
		{"coupling above one", func(p *Params) { p.Coupling = 1.2 }, ErrInvalidParams},
		{"zero mosfets", func(p *Params) { p.MOSFETCount = 0 }, ErrInvalidParams},
		{"zero diodes", func(p *Params) { p.DiodeCount = 0 }, ErrInvalidParams},
		{"zero load", func(p *Params) { p.LoadResistance = 0 }, ErrInvalidParams},
		{"negative current", func(p *Params) { p.IdRMS = -1 }, ErrInvalidParams},
		{"zero unit resistance", func(p *Params) { p.R1Unit = 0 }, ErrInvalidParams},
		{"zero turns", func(p *Params) { p.TX.Turns = 0 }, ErrBadGeometry},
		{"winding too wide", func(p *Params) { p.RX.Turns = 50 }, ErrBadGeometry},
		{"fmin equals fmax", func(p *Params) { p.FMin = p.FMax }, ErrFrequencyBounds},
		{"fmin above fmax", func(p *Params) { p.FMin = 95_000 }, ErrFrequencyBounds},
		{"zero fmin", func(p *Params) { p.FMin = 0 }, ErrFrequencyBounds},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := testParams()
			tc.mut(&p)
			require.ErrorIs(t, p.Validate(), tc.want)
		})
	}
}
