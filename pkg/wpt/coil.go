package wpt

import "math"

// Copper resistivity and vacuum permeability, SI.
const (
	copperResistivity = 1.68e-8
	mu0               = 4 * math.Pi * 1e-7
)

// Coil describes a flat spiral coil. Geometry is in millimetres, the way it
// is read off a winding drawing; derived electrical values are SI.
type Coil struct {
	Turns         int     `yaml:"turns"`
	WireDiameter  float64 `yaml:"wire_diameter"`  // mm
	WireSpacing   float64 `yaml:"wire_spacing"`   // mm
	OuterDiameter float64 `yaml:"outer_diameter"` // mm
}

// InnerDiameter returns the winding inner diameter in mm.
func (c Coil) InnerDiameter() float64 {
	return c.OuterDiameter - 2*float64(c.Turns)*(c.WireDiameter+c.WireSpacing)
}

// WireLength returns the unwound wire length in metres.
func (c Coil) WireLength() float64 {
	return math.Pi * float64(c.Turns) * (c.OuterDiameter + c.InnerDiameter()) / 2000
}

// Inductance returns the coil inductance in henries using Wheeler's
// approximation for flat spiral coils.
func (c Coil) Inductance() float64 {
	const mmPerInch = 25.4
	innerIn := c.InnerDiameter() / mmPerInch
	widthIn := (c.WireSpacing/mmPerInch + c.WireDiameter/mmPerInch) * float64(c.Turns)
	avgRadius := (innerIn + widthIn) / 2

	n := float64(c.Turns)
	return avgRadius * avgRadius * n * n / (8*avgRadius + 11*widthIn) * 1e-6
}

// Resistance returns the DC winding resistance in ohms given the wire's
// per-metre resistance.
func (c Coil) Resistance(unitResistance float64) float64 {
	return c.WireLength() * unitResistance
}

// ACResistance scales a DC winding resistance for skin effect at frequency f.
// For wire much thicker than the skin depth the current is confined to an
// annulus of depth δ, so Rac/Rdc ≈ d/(4δ); below that the ratio is held at 1.
func (c Coil) ACResistance(rdc, f float64) float64 {
	if f <= 0 || rdc <= 0 {
		return rdc
	}
	depth := math.Sqrt(copperResistivity / (math.Pi * f * mu0))
	d := c.WireDiameter * 1e-3
	ratio := d / (4 * depth)
	if ratio < 1 {
		ratio = 1
	}
	return rdc * ratio
}
