package wpt

import (
	"math"

	"github.com/ecelab/wptopt/pkg/catalog"
	"github.com/ecelab/wptopt/pkg/mathutil"
)

// Evaluation is the loss breakdown of one candidate operating point.
// Total is always the exact sum of the per-term fields.
type Evaluation struct {
	Frequency float64

	MOSFETConduction float64
	MOSFETSwitching  float64
	MOSFETGate       float64
	MOSFETRecovery   float64

	DiodeConduction float64
	DiodeSwitching  float64
	DiodeRecovery   float64

	CoilLoss float64

	Total          float64
	OutputPower    float64
	Efficiency     float64
	LinkEfficiency float64

	// Feasible is false when a component rating is exceeded or the frequency
	// left its bounds; Violation grows with the size of the infringement.
	Feasible  bool
	Violation float64

	// Degenerate marks an evaluation whose arithmetic produced NaN or Inf.
	Degenerate bool
}

// Term is one named entry of a loss breakdown.
type Term struct {
	Name  string
	Watts float64
}

// Terms returns the breakdown as an ordered list for display or export.
func (e Evaluation) Terms() []Term {
	return []Term{
		{"mosfet conduction", e.MOSFETConduction},
		{"mosfet switching", e.MOSFETSwitching},
		{"mosfet gate", e.MOSFETGate},
		{"mosfet recovery", e.MOSFETRecovery},
		{"diode conduction", e.DiodeConduction},
		{"diode switching", e.DiodeSwitching},
		{"diode recovery", e.DiodeRecovery},
		{"coil", e.CoilLoss},
	}
}

// Model evaluates candidate operating points against fixed system
// parameters. Coil inductances and DC resistances are derived once at
// construction; Evaluate is a pure function afterwards.
type Model struct {
	params Params

	txInductance float64
	rxInductance float64
	txResistance float64
	rxResistance float64
}

// NewModel validates p and precomputes the coil electrical values.
func NewModel(p Params) (*Model, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &Model{
		params:       p,
		txInductance: p.TX.Inductance(),
		rxInductance: p.RX.Inductance(),
		txResistance: p.TX.Resistance(p.R1Unit),
		rxResistance: p.RX.Resistance(p.R2Unit),
	}, nil
}

// Params returns the system parameters the model was built with.
func (m *Model) Params() Params { return m.params }

// TXInductance returns the derived primary coil inductance in henries.
func (m *Model) TXInductance() float64 { return m.txInductance }

// RXInductance returns the derived secondary coil inductance in henries.
func (m *Model) RXInductance() float64 { return m.rxInductance }

// TXResistance returns the primary winding DC resistance in ohms.
func (m *Model) TXResistance() float64 { return m.txResistance }

// RXResistance returns the secondary winding DC resistance in ohms.
func (m *Model) RXResistance() float64 { return m.rxResistance }

// Evaluate computes the full loss breakdown for one candidate configuration.
// Rating violations and non-finite arithmetic are reported through the
// Feasible/Violation/Degenerate fields, never as errors.
func (m *Model) Evaluate(f float64, mos catalog.MOSFET, dio catalog.Diode) Evaluation {
	p := m.params
	e := Evaluation{Frequency: f}

	nMos := float64(p.MOSFETCount)
	e.MOSFETConduction = mos.RdsOn * p.IdRMS * p.IdRMS * nMos
	e.MOSFETSwitching = p.Vds * p.Ids * (mos.Tr + mos.Tf) * f / 2 * nMos
	e.MOSFETGate = mos.Qg * mos.VgsMax * f * nMos
	e.MOSFETRecovery = mos.Qrr * mos.Vsd * f / 2 * nMos

	// Diode small-signal resistance and capacitive charge. Qrr is taken as
	// zero for Schottky parts, so the recovery term vanishes.
	rd := mathutil.SafeDiv(dio.Vf, p.IdMean)
	qc := p.Vd * dio.Cd
	nDio := float64(p.DiodeCount)
	e.DiodeConduction = (rd*p.IdEff*p.IdEff + dio.Vf*p.IdMean) * nDio
	e.DiodeSwitching = qc * p.Vd * f * nDio
	e.DiodeRecovery = 0

	e.LinkEfficiency = m.linkEfficiency(f)
	coilPower := p.Vds * p.ICoil
	e.CoilLoss = coilPower * (1 - e.LinkEfficiency)

	e.Total = e.MOSFETConduction + e.MOSFETSwitching + e.MOSFETGate + e.MOSFETRecovery +
		e.DiodeConduction + e.DiodeSwitching + e.DiodeRecovery + e.CoilLoss

	e.OutputPower = p.LoadResistance * p.IdEff * p.IdEff
	e.Efficiency = e.OutputPower / (e.OutputPower + e.Total)

	if !mathutil.Finite(e.Total) || !mathutil.Finite(e.Efficiency) {
		e.Degenerate = true
		e.Feasible = false
		e.Violation = math.MaxFloat64
		return e
	}

	e.Feasible, e.Violation = m.checkRatings(f, mos, dio)
	return e
}

// linkEfficiency is the coupled-coil power transfer efficiency at f, with
// both winding resistances scaled for skin effect.
func (m *Model) linkEfficiency(f float64) float64 {
	p := m.params
	r1 := p.TX.ACResistance(m.txResistance, f)
	r2 := p.RX.ACResistance(m.rxResistance, f)
	req := p.LoadResistance

	wk := 2 * math.Pi * f * p.Coupling
	num := req * m.txInductance * m.rxInductance * wk * wk
	den := (r2 + req) * (r1*(r2+req) + wk*wk*m.txInductance*m.rxInductance)
	if den == 0 {
		return math.NaN()
	}
	return num / den
}

// checkRatings compares the operating stresses against both components'
// ratings. The returned violation is the sum of relative overshoots, so it
// grows smoothly as a candidate moves deeper into the infeasible region.
func (m *Model) checkRatings(f float64, mos catalog.MOSFET, dio catalog.Diode) (bool, float64) {
	p := m.params
	var v float64

	over := func(stress, rating float64) {
		if rating > 0 && stress > rating {
			v += (stress - rating) / rating
		} else if rating <= 0 {
			// a part with no usable rating can never be proven safe
			v += 1
		}
	}

	over(p.Vds, mos.VdsMax)
	over(p.IdRMS, mos.IdMax)
	over(p.Vd, dio.VrMax)
	over(p.IdMean, dio.IfAvg)
	over(p.IdEff, dio.IfRMS)

	if f < p.FMin {
		v += (p.FMin - f) / p.FMin
	} else if f > p.FMax {
		v += (f - p.FMax) / p.FMax
	}

	return v == 0, v
}
