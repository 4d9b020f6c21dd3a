package wpt

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func paramSheetValues(p Params, s SwarmSettings) []float64 {
	return []float64{
		p.Coupling,
		float64(p.TX.Turns), p.TX.WireDiameter, p.TX.WireSpacing, p.TX.OuterDiameter,
		float64(p.RX.Turns), p.RX.WireDiameter, p.RX.WireSpacing, p.RX.OuterDiameter,
		p.LoadResistance,
		float64(p.MOSFETCount), float64(p.DiodeCount),
		p.IdRMS, p.Vds, p.Ids, p.ICoil, p.IdEff, p.IdMean, p.Vd,
		p.R1Unit, p.R2Unit,
		p.FMin, p.FMax,
		float64(s.Size), float64(s.MaxIterations), s.MinStep,
	}
}

func TestLoadParamsXLSX_RoundTrip(t *testing.T) {
	want := testParams()
	wantSwarm := SwarmSettings{Size: 20, MaxIterations: 50, MinStep: 1e-6}

	f := excelize.NewFile()
	header := []interface{}{"Parameter", "Value"}
	require.NoError(t, f.SetSheetRow("Sheet1", "A1", &header))
	for i, v := range paramSheetValues(want, wantSwarm) {
		row := []interface{}{fmt.Sprintf("param_%d", i), v}
		require.NoError(t, f.SetSheetRow("Sheet1", fmt.Sprintf("A%d", i+2), &row))
	}

	path := t.TempDir() + "/input_values.xlsx"
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	got, gotSwarm, err := LoadParamsXLSX(path)
	require.NoError(t, err)
	require.Equal(t, want, got)
	require.Equal(t, wantSwarm, gotSwarm)
	require.NoError(t, got.Validate())
}

func TestReadParamsXLSX_TruncatedSheet(t *testing.T) {
	f := excelize.NewFile()
	header := []interface{}{"Parameter", "Value"}
	require.NoError(t, f.SetSheetRow("Sheet1", "A1", &header))
	row := []interface{}{"coupling", 0.3}
	require.NoError(t, f.SetSheetRow("Sheet1", "A2", &row))

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	require.NoError(t, f.Close())

	_, _, err = ReadParamsXLSX(buf)
	require.ErrorIs(t, err, ErrInvalidParams)
}

func TestParseParamsYAML(t *testing.T) {
	src := []byte(`
params:
  coupling: 0.3
  tx_coil: {turns: 10, wire_diameter: 2, wire_spacing: 1, outer_diameter: 150}
  rx_coil: {turns: 8, wire_diameter: 2, wire_spacing: 1, outer_diameter: 120}
  load_resistance: 10
  mosfet_count: 1
  diode_count: 1
  id_rms: 5
  vds: 48
  ids: 5
  i_coil: 5
  id_eff: 4
  id_mean: 3
  vd: 48
  r1_unit: 0.005
  r2_unit: 0.005
  f_min: 80000
  f_max: 90000
swarm:
  size: 20
  max_iterations: 50
  min_step: 1.0e-6
`)

	p, s, err := ParseParamsYAML(src)
	require.NoError(t, err)
	require.Equal(t, testParams(), p)
	assert.Equal(t, SwarmSettings{Size: 20, MaxIterations: 50, MinStep: 1e-6}, s)
}

func TestParseParamsYAML_Malformed(t *testing.T) {
	_, _, err := ParseParamsYAML([]byte("params: [not a map"))
	require.ErrorIs(t, err, ErrInvalidParams)
}

func TestLoadParams_UnknownExtension(t *testing.T) {
	_, _, err := LoadParams("input.csv")
	require.ErrorIs(t, err, ErrInvalidParams)
}
