package fuelcycle

import (
	"fmt"

	"nuclear-lcoe/internal/model"
)

// Breakdown maps each fuel-cycle step to its annual cost in $/year
// for the whole plant.
type Breakdown map[model.Step]float64

// Total sums all steps.
func (b Breakdown) Total() float64 {
	total := 0.0
	for _, v := range b {
		total += v
	}
	return total
}

// frontEndRequest assembles the optimizer input for a project's annual
// enriched uranium demand.
func frontEndRequest(p model.ProjectParams, c model.CostParams) FrontEndRequest {
	return FrontEndRequest{
		ProductMassKg: AnnualEnrichedUMassKg(p),
		XUNat:         p.XUNat,
		XUProduct:     p.XUProduct,

		PriceUNatPerKgUSD:        c.PriceUNatPerKgUSD,
		TransportUNatPerKgKmUSD:  c.TransportUNatPerKgKmUSD,
		DistanceUNatKm:           p.DistanceUNatKm,
		ConversionPerKgUSD:       c.ConversionPerKgUSD,
		TransportUConvPerKgKmUSD: c.TransportUConvPerKgKmUSD,
		DistanceUConvertedKm:     p.DistanceUConvertedKm,
		PriceSWUUSD:              c.PriceSWUUSD,
	}
}

// BreakdownPerYear itemizes the annual fuel-cycle cost for the whole
// plant across the ten steps of the cycle.
//
// Front-end steps come from the tails-assay optimization. Fabrication,
// transport, and back-end steps are flat unit rates on the annual
// fresh-fuel oxide mass; the discharged (spent) mass is approximated
// by the fresh-fuel mass, with no burnup mass-loss model.
func BreakdownPerYear(p model.ProjectParams, c model.CostParams) (Breakdown, error) {
	frontEnd, err := OptimizeFrontEnd(frontEndRequest(p, c))
	if err != nil {
		return nil, fmt.Errorf("front-end optimization: %w", err)
	}

	productKg := AnnualEnrichedUMassKg(p)
	freshKg := AnnualFreshFuelMassKg(p)
	spentKg := freshKg

	return Breakdown{
		model.StepUNat:           frontEnd.CostUNatUSD,
		model.StepTransportUNat:  frontEnd.CostTransportUNatUSD,
		model.StepConversion:     frontEnd.CostConversionUSD,
		model.StepTransportUConv: frontEnd.CostTransportUConvUSD,
		model.StepSWU:            frontEnd.CostEnrichmentUSD,
		model.StepTransportUEnr:  productKg * c.TransportUEnrPerKgKmUSD * p.DistanceUEnrichedKm,
		model.StepFabrication:    freshKg * c.FabricationPerKgUSD,
		model.StepTransportFresh: freshKg * c.TransportFreshPerKgKmUSD * p.DistanceFreshFuelKm,
		model.StepBackEnd:        spentKg * c.DisposalPerKgUSD,
		model.StepTransportSpent: spentKg * c.TransportSpentPerKgKmUSD * p.DistanceSpentFuelKm,
	}, nil
}

// CostPerYearUSD is the aggregate annual fuel-cycle cost for the whole
// plant in $/year.
func CostPerYearUSD(p model.ProjectParams, c model.CostParams) (float64, error) {
	breakdown, err := BreakdownPerYear(p, c)
	if err != nil {
		return 0, err
	}
	return breakdown.Total(), nil
}
