package model

import (
	"errors"
)

// ProjectParams defines the physical and scheduling parameters of a
// multi-reactor nuclear power project.
// Units:
// - Power: MWe per reactor
// - Masses: kg (UO2 oxide unless noted)
// - Distances: km
// - Durations: years
// - Assays: U-235 mass fraction in [0,1]
type ProjectParams struct {
	Country     string
	ReactorType string

	NReactors                 int
	PowerPerReactorMWe        float64
	NetCapacityFactor         float64
	FirstConstructionYears    float64 // build time of the first reactor
	DelayBetweenReactorsYears float64 // stagger between construction starts
	ReactorLifetimeYears      int

	// Enrichment assays.
	XUNat     float64 // U-235 fraction in natural uranium feed
	XUProduct float64 // U-235 fraction in enriched product

	// Core and fuel geometry.
	AssembliesPerCore     int
	FuelMassPerAssemblyKg float64 // kg UO2 per assembly
	BatchFraction         float64 // fraction of the core reloaded per cycle
	CycleLengthYears      float64

	// Transport distances per fuel-cycle leg.
	DistanceUNatKm       float64 // mine to conversion plant
	DistanceUConvertedKm float64 // conversion plant to enrichment plant
	DistanceUEnrichedKm  float64 // enrichment plant to fuel fabrication plant
	DistanceFreshFuelKm  float64 // fabrication plant to reactor site
	DistanceSpentFuelKm  float64 // reactor site to disposal facility

	// UMassPerAssemblyKg is the uranium metal mass per assembly. It is
	// derived from FuelMassPerAssemblyKg by NewProjectParams and must
	// not be set by callers.
	UMassPerAssemblyKg float64
}

// NewProjectParams validates raw parameters and fills in derived
// fields. The returned value is complete and should be treated as
// immutable.
func NewProjectParams(p ProjectParams) (ProjectParams, error) {
	if err := p.Validate(); err != nil {
		return ProjectParams{}, err
	}
	p.UMassPerAssemblyKg = UO2ToU(p.FuelMassPerAssemblyKg)
	return p, nil
}

func (p ProjectParams) Validate() error {
	if p.NReactors < 1 {
		return errors.New("NReactors must be >= 1")
	}
	if p.PowerPerReactorMWe < 0 {
		return errors.New("PowerPerReactorMWe must be >= 0")
	}
	if p.NetCapacityFactor < 0 || p.NetCapacityFactor > 1 {
		return errors.New("NetCapacityFactor must be in [0, 1]")
	}
	if p.FirstConstructionYears <= 0 {
		return errors.New("FirstConstructionYears must be > 0")
	}
	if p.DelayBetweenReactorsYears < 0 {
		return errors.New("DelayBetweenReactorsYears must be >= 0")
	}
	if p.ReactorLifetimeYears < 1 {
		return errors.New("ReactorLifetimeYears must be >= 1")
	}
	if p.XUNat <= 0 || p.XUNat >= 1 || p.XUProduct <= 0 || p.XUProduct >= 1 {
		return errors.New("assays must be strictly between 0 and 1")
	}
	if p.XUNat >= p.XUProduct {
		return errors.New("XUNat must be < XUProduct")
	}
	if p.AssembliesPerCore < 1 {
		return errors.New("AssembliesPerCore must be >= 1")
	}
	if p.FuelMassPerAssemblyKg < 0 {
		return errors.New("FuelMassPerAssemblyKg must be >= 0")
	}
	if p.BatchFraction <= 0 || p.BatchFraction > 1 {
		return errors.New("BatchFraction must be in (0, 1]")
	}
	if p.CycleLengthYears <= 0 {
		return errors.New("CycleLengthYears must be > 0")
	}
	for _, d := range []float64{
		p.DistanceUNatKm,
		p.DistanceUConvertedKm,
		p.DistanceUEnrichedKm,
		p.DistanceFreshFuelKm,
		p.DistanceSpentFuelKm,
	} {
		if d < 0 {
			return errors.New("transport distances must be >= 0")
		}
	}
	return nil
}

// DefaultProjectParams is the documented baseline scenario: four
// VVER-1200 units in Serbia with an 18-month cycle and one-third core
// reloads.
func DefaultProjectParams() ProjectParams {
	p, err := NewProjectParams(ProjectParams{
		Country:     "Serbia",
		ReactorType: "VVER-1200",

		NReactors:                 4,
		PowerPerReactorMWe:        1200.0,
		NetCapacityFactor:         0.80,
		FirstConstructionYears:    7.0,
		DelayBetweenReactorsYears: 1.0,
		ReactorLifetimeYears:      60,

		XUNat:     0.00711,
		XUProduct: 0.048,

		AssembliesPerCore:     163,
		FuelMassPerAssemblyKg: 534.0,
		BatchFraction:         1.0 / 3.0,
		CycleLengthYears:      18.0 / 12.0,

		DistanceUNatKm:       5000.0,
		DistanceUConvertedKm: 1200.0,
		DistanceUEnrichedKm:  100.0,
		DistanceFreshFuelKm:  1000.0,
		DistanceSpentFuelKm:  500.0,
	})
	if err != nil {
		panic(err)
	}
	return p
}
