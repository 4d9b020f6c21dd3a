package wpt

import "fmt"

// Params is the immutable system configuration for one optimization run:
// coil geometry, coupling, load, component counts and the operating
// current/voltage stresses the converter imposes on its semiconductors.
type Params struct {
	Coupling float64 `yaml:"coupling"` // coil coupling coefficient k, (0..1]
	TX       Coil    `yaml:"tx_coil"`
	RX       Coil    `yaml:"rx_coil"`

	LoadResistance float64 `yaml:"load_resistance"` // equivalent load Req (Ω)
	MOSFETCount    int     `yaml:"mosfet_count"`
	DiodeCount     int     `yaml:"diode_count"`

	// Operating stresses.
	IdRMS  float64 `yaml:"id_rms"`  // MOSFET RMS drain current (A)
	Vds    float64 `yaml:"vds"`     // MOSFET blocking voltage (V)
	Ids    float64 `yaml:"ids"`     // switched drain current (A)
	ICoil  float64 `yaml:"i_coil"`  // primary coil current (A)
	IdEff  float64 `yaml:"id_eff"`  // diode RMS current (A)
	IdMean float64 `yaml:"id_mean"` // diode average current (A)
	Vd     float64 `yaml:"vd"`      // diode reverse voltage (V)

	// Winding resistance per metre (Ω/m).
	R1Unit float64 `yaml:"r1_unit"`
	R2Unit float64 `yaml:"r2_unit"`

	// Frequency search bounds (Hz).
	FMin float64 `yaml:"f_min"`
	FMax float64 `yaml:"f_max"`
}

// Validate checks every field for physical plausibility. It returns the first
// problem found, wrapped in ErrInvalidParams, ErrFrequencyBounds or
// ErrBadGeometry.
func (p Params) Validate() error {
	if p.Coupling <= 0 || p.Coupling > 1 {
		return fmt.Errorf("%w: coupling %g outside (0,1]", ErrInvalidParams, p.Coupling)
	}
	if p.MOSFETCount < 1 {
		return fmt.Errorf("%w: mosfet count %d", ErrInvalidParams, p.MOSFETCount)
	}
	if p.DiodeCount < 1 {
		return fmt.Errorf("%w: diode count %d", ErrInvalidParams, p.DiodeCount)
	}

	positives := []struct {
		name string
		v    float64
	}{
		{"load_resistance", p.LoadResistance},
		{"id_rms", p.IdRMS},
		{"vds", p.Vds},
		{"ids", p.Ids},
		{"i_coil", p.ICoil},
		{"id_eff", p.IdEff},
		{"id_mean", p.IdMean},
		{"vd", p.Vd},
		{"r1_unit", p.R1Unit},
		{"r2_unit", p.R2Unit},
	}
	for _, f := range positives {
		if f.v <= 0 {
			return fmt.Errorf("%w: %s must be > 0, got %g", ErrInvalidParams, f.name, f.v)
		}
	}

	for _, c := range []struct {
		side string
		coil Coil
	}{{"tx", p.TX}, {"rx", p.RX}} {
		if c.coil.Turns < 1 {
			return fmt.Errorf("%w: %s coil turns %d", ErrBadGeometry, c.side, c.coil.Turns)
		}
		if c.coil.WireDiameter <= 0 || c.coil.OuterDiameter <= 0 || c.coil.WireSpacing < 0 {
			return fmt.Errorf("%w: %s coil dimensions", ErrBadGeometry, c.side)
		}
		if c.coil.InnerDiameter() <= 0 {
			return fmt.Errorf("%w: %s coil winding wider than outer diameter", ErrBadGeometry, c.side)
		}
	}

	if p.FMin <= 0 || p.FMin >= p.FMax {
		return fmt.Errorf("%w: [%g, %g]", ErrFrequencyBounds, p.FMin, p.FMax)
	}
	return nil
}
