package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_AssignsIndices(t *testing.T) {
	mosfets := []MOSFET{
		{Name: "IRF540N", Price: 0.9, VdsMax: 100, IdMax: 33, RdsOn: 44e-3},
		{Name: "IRFB4110", Price: 2.4, VdsMax: 100, IdMax: 120, RdsOn: 4.5e-3},
	}
	diodes := []Diode{
		{Name: "MBR20100", Price: 0.5, VrMax: 100, IfAvg: 20, IfRMS: 28, Vf: 0.85, Cd: 450e-12},
	}

	c, err := New(mosfets, diodes)
	require.NoError(t, err)

	require.Equal(t, 2, c.NumMOSFETs())
	require.Equal(t, 1, c.NumDiodes())
	assert.Equal(t, 0, c.MOSFET(0).Index)
	assert.Equal(t, 1, c.MOSFET(1).Index)
	assert.Equal(t, 0, c.Diode(0).Index)
	assert.Equal(t, "IRFB4110", c.MOSFET(1).Name)
}

func TestNew_CopiesInput(t *testing.T) {
	mosfets := []MOSFET{{Name: "A", Price: 1}}
	diodes := []Diode{{Name: "D", Price: 1}}

	c, err := New(mosfets, diodes)
	require.NoError(t, err)

	// mutating the caller's slice must not reach the catalog
	mosfets[0].Name = "mutated"
	assert.Equal(t, "A", c.MOSFET(0).Name)
}

func TestNew_EmptyCollections(t *testing.T) {
	_, err := New(nil, []Diode{{Name: "D"}})
	require.ErrorIs(t, err, ErrEmptyCatalog)

	_, err = New([]MOSFET{{Name: "M"}}, nil)
	require.ErrorIs(t, err, ErrEmptyCatalog)
}
