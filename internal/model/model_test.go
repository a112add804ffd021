package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUO2ToU(t *testing.T) {
	// 1 kg UO2 contains 238/270 kg of uranium metal.
	assert.InDelta(t, 238.0/270.0, UO2ToU(1.0), 1e-12)
	assert.Equal(t, 0.0, UO2ToU(0.0))

	// Conversion is linear in mass.
	assert.InDelta(t, 534.0*238.0/270.0, UO2ToU(534.0), 1e-9)
}

func TestU3O8ToU(t *testing.T) {
	// 1 kg U3O8 contains 714/842 kg of uranium metal.
	assert.InDelta(t, 714.0/842.0, U3O8ToU(1.0), 1e-12)

	// U3O8 holds a higher metal fraction than UO2.
	assert.Greater(t, U3O8ToU(1.0), UO2ToU(1.0))
}

func TestNewProjectParamsDerivesUraniumMass(t *testing.T) {
	p := DefaultProjectParams()
	p.UMassPerAssemblyKg = 0

	got, err := NewProjectParams(p)
	require.NoError(t, err)
	assert.InDelta(t, UO2ToU(p.FuelMassPerAssemblyKg), got.UMassPerAssemblyKg, 1e-9)
}

func TestProjectParamsValidate(t *testing.T) {
	base := DefaultProjectParams()

	tests := []struct {
		name   string
		mutate func(*ProjectParams)
	}{
		{"zero reactors", func(p *ProjectParams) { p.NReactors = 0 }},
		{"capacity factor above one", func(p *ProjectParams) { p.NetCapacityFactor = 1.2 }},
		{"negative capacity factor", func(p *ProjectParams) { p.NetCapacityFactor = -0.1 }},
		{"zero construction time", func(p *ProjectParams) { p.FirstConstructionYears = 0 }},
		{"negative stagger", func(p *ProjectParams) { p.DelayBetweenReactorsYears = -1 }},
		{"zero lifetime", func(p *ProjectParams) { p.ReactorLifetimeYears = 0 }},
		{"zero natural assay", func(p *ProjectParams) { p.XUNat = 0 }},
		{"product assay of one", func(p *ProjectParams) { p.XUProduct = 1 }},
		{"natural above product", func(p *ProjectParams) { p.XUNat = 0.05; p.XUProduct = 0.048 }},
		{"zero assemblies", func(p *ProjectParams) { p.AssembliesPerCore = 0 }},
		{"zero batch fraction", func(p *ProjectParams) { p.BatchFraction = 0 }},
		{"batch fraction above one", func(p *ProjectParams) { p.BatchFraction = 1.5 }},
		{"zero cycle length", func(p *ProjectParams) { p.CycleLengthYears = 0 }},
		{"negative distance", func(p *ProjectParams) { p.DistanceSpentFuelKm = -1 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := base
			tt.mutate(&p)
			assert.Error(t, p.Validate())
		})
	}

	assert.NoError(t, base.Validate())
}

func TestCostParamsValidate(t *testing.T) {
	c := DefaultCostParams()
	require.NoError(t, c.Validate())

	c.PriceSWUUSD = -1
	assert.Error(t, c.Validate())

	c = DefaultCostParams()
	c.RealDiscountRate = -0.01
	assert.Error(t, c.Validate())

	// Zero dismantling cost is the documented default and valid.
	c = DefaultCostParams()
	assert.Equal(t, 0.0, c.DismantlingPerReactorUSD)
	assert.NoError(t, c.Validate())
}

func TestDefaultsAreValid(t *testing.T) {
	p := DefaultProjectParams()
	require.NoError(t, p.Validate())
	assert.Equal(t, 4, p.NReactors)
	assert.Equal(t, "Serbia", p.Country)
	assert.Greater(t, p.UMassPerAssemblyKg, 0.0)

	require.NoError(t, DefaultCostParams().Validate())
}

func TestStepsOrderAndNames(t *testing.T) {
	steps := Steps()
	require.Len(t, steps, 10)

	assert.Equal(t, StepUNat, steps[0])
	assert.Equal(t, StepSWU, steps[4])
	assert.Equal(t, StepTransportSpent, steps[9])

	// Names are part of the JSON/CSV contract.
	assert.Equal(t, Step("transport_U_converted"), StepTransportUConv)
	assert.Equal(t, Step("back_end"), StepBackEnd)
}
