package catalog

import "fmt"

// MOSFET is one switching-transistor row from the component database.
// All electrical fields are SI (Ω, V, s, C); Price is in currency units.
type MOSFET struct {
	Name   string
	Price  float64
	VdsMax float64 // rated drain-source voltage (V)
	IdMax  float64 // rated RMS drain current (A)
	RdsOn  float64 // on-resistance (Ω)
	Vsd    float64 // body-diode forward voltage (V)
	VgsMax float64 // gate drive voltage (V)
	Tr     float64 // rise time (s)
	Tf     float64 // fall time (s)
	Qg     float64 // total gate charge (C)
	Qrr    float64 // reverse-recovery charge (C)
	Index  int
}

// Diode is one rectifier-diode row from the component database.
type Diode struct {
	Name  string
	Price float64
	VrMax float64 // rated reverse voltage (V)
	IfAvg float64 // rated average forward current (A)
	IfRMS float64 // rated RMS forward current (A)
	Vf    float64 // forward voltage drop (V)
	Cd    float64 // junction capacitance (F)
	Index int
}

// Catalog holds the selectable component records. It is immutable after
// construction and safe to share across concurrent optimizer runs.
type Catalog struct {
	mosfets []MOSFET
	diodes  []Diode
}

// New builds a catalog from the given records. Both collections must be
// non-empty. Record indices are assigned from slice order.
func New(mosfets []MOSFET, diodes []Diode) (*Catalog, error) {
	if len(mosfets) == 0 {
		return nil, fmt.Errorf("%w: no mosfets", ErrEmptyCatalog)
	}
	if len(diodes) == 0 {
		return nil, fmt.Errorf("%w: no diodes", ErrEmptyCatalog)
	}

	c := &Catalog{
		mosfets: make([]MOSFET, len(mosfets)),
		diodes:  make([]Diode, len(diodes)),
	}
	copy(c.mosfets, mosfets)
	copy(c.diodes, diodes)
	for i := range c.mosfets {
		c.mosfets[i].Index = i
	}
	for i := range c.diodes {
		c.diodes[i].Index = i
	}
	return c, nil
}

// MOSFET returns the record at index i. i must be in [0, NumMOSFETs).
func (c *Catalog) MOSFET(i int) MOSFET { return c.mosfets[i] }

// Diode returns the record at index i. i must be in [0, NumDiodes).
func (c *Catalog) Diode(i int) Diode { return c.diodes[i] }

// NumMOSFETs returns the number of MOSFET records.
func (c *Catalog) NumMOSFETs() int { return len(c.mosfets) }

// NumDiodes returns the number of diode records.
func (c *Catalog) NumDiodes() int { return len(c.diodes) }
