package fuelcycle

import (
	"nuclear-lcoe/internal/model"
)

const hoursPerYear = 8760.0

// AnnualEnergyMWh is the net annual electricity production of the
// whole plant in MWh.
func AnnualEnergyMWh(p model.ProjectParams) float64 {
	totalPowerMW := float64(p.NReactors) * p.PowerPerReactorMWe
	return totalPowerMW * hoursPerYear * p.NetCapacityFactor
}

// FuelMassPerCoreKg is the fuel oxide mass loaded in one core.
func FuelMassPerCoreKg(p model.ProjectParams) float64 {
	return float64(p.AssembliesPerCore) * p.FuelMassPerAssemblyKg
}

// FreshFuelPerCycleKg is the fresh fuel oxide mass loaded per reload
// cycle in one reactor.
func FreshFuelPerCycleKg(p model.ProjectParams) float64 {
	return FuelMassPerCoreKg(p) * p.BatchFraction
}

// AnnualFreshFuelMassKg is the fresh fuel oxide mass consumed per year
// across all reactors.
func AnnualFreshFuelMassKg(p model.ProjectParams) float64 {
	return FreshFuelPerCycleKg(p) * float64(p.NReactors) / p.CycleLengthYears
}

// AnnualEnrichedUMassKg is the enriched uranium metal mass required
// per year across all reactors.
func AnnualEnrichedUMassKg(p model.ProjectParams) float64 {
	return model.UO2ToU(AnnualFreshFuelMassKg(p))
}
