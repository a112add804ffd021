// Package cashflow implements the year-by-year discounted cash-flow
// model: staggered CAPEX spending, OPEX and fuel costs scaled by the
// number of operational reactors, per-reactor dismantling at end of
// life, and the resulting LCOE.
package cashflow

import (
	"errors"
	"math"

	"nuclear-lcoe/internal/fuelcycle"
	"nuclear-lcoe/internal/model"
	"nuclear-lcoe/internal/schedule"
)

// ErrNoDiscountedEnergy is returned when the discounted energy over
// the project life is zero or negative, e.g. with a zero capacity
// factor. Dividing through would produce an infinite or NaN LCOE.
var ErrNoDiscountedEnergy = errors.New("discounted energy is zero or negative")

// Breakdown holds discounted totals over the whole project life.
type Breakdown struct {
	CapexUSD       float64
	OpexUSD        float64
	FuelUSD        float64
	DismantlingUSD float64
	EnergyMWh      float64
}

// CostUSD is the total discounted cost across all categories.
func (b Breakdown) CostUSD() float64 {
	return b.CapexUSD + b.OpexUSD + b.FuelUSD + b.DismantlingUSD
}

// ComputeCapexUSD is the total overnight CAPEX in $, undiscounted.
func ComputeCapexUSD(p model.ProjectParams, c model.CostParams) float64 {
	return float64(p.NReactors) * c.CostPerReactorUSD
}

// ComputeOpexPerYearUSD is the non-fuel OPEX in $/year with all
// reactors operating.
func ComputeOpexPerYearUSD(p model.ProjectParams, c model.CostParams) float64 {
	return float64(p.NReactors) * c.OpexPerReactorPerYearUSD
}

func discountFactor(rate float64, year int) float64 {
	return math.Pow(1.0+rate, -float64(year))
}

// ComputeLCOE computes the levelized cost of electricity in $/MWh:
//
//	LCOE = sum_t[ C_t / (1+r)^t ] / sum_t[ E_t / (1+r)^t ]
//
// where C_t aggregates CAPEX, OPEX, fuel, and dismantling in year t
// and E_t is the electricity produced in year t. Dismantling is
// charged once per reactor at that reactor's final operating year.
func ComputeLCOE(p model.ProjectParams, c model.CostParams) (float64, error) {
	breakdown, err := ComputeBreakdown(p, c)
	if err != nil {
		return 0, err
	}
	if breakdown.EnergyMWh <= 0 {
		return 0, ErrNoDiscountedEnergy
	}
	return breakdown.CostUSD() / breakdown.EnergyMWh, nil
}

// ComputeBreakdown runs the year loop once and accumulates discounted
// CAPEX, OPEX, fuel, dismantling, and energy separately.
func ComputeBreakdown(p model.ProjectParams, c model.CostParams) (Breakdown, error) {
	entries := schedule.ForProject(p)
	lastYear := schedule.LastOperationYear(entries)

	fuelPerYear, err := fuelcycle.CostPerYearUSD(p, c)
	if err != nil {
		return Breakdown{}, err
	}

	// Per-reactor annual values; the year loop scales them back up by
	// the operational-reactor count.
	opexPerReactor := c.OpexPerReactorPerYearUSD
	fuelPerReactor := fuelPerYear / float64(p.NReactors)
	energyPerReactor := fuelcycle.AnnualEnergyMWh(p) / float64(p.NReactors)

	var out Breakdown
	for year := 1; year <= lastYear; year++ {
		df := discountFactor(c.RealDiscountRate, year)
		operational := float64(schedule.OperationalCount(entries, year))

		out.CapexUSD += schedule.CapexSpendingUSD(entries, p, c, year) * df
		out.OpexUSD += operational * opexPerReactor * df
		out.FuelUSD += operational * fuelPerReactor * df
		out.EnergyMWh += operational * energyPerReactor * df
	}

	// Dismantling is not part of the year loop: each reactor pays its
	// own dismantling cost at its own final operating year.
	for _, e := range entries {
		out.DismantlingUSD += c.DismantlingPerReactorUSD * discountFactor(c.RealDiscountRate, e.OperationEnd)
	}

	return out, nil
}

// ComputeFuelBreakdown discounts each fuel-cycle step independently
// over the operating years, scaled by the operational-reactor count.
// The steps sum to the discounted fuel total of ComputeBreakdown.
func ComputeFuelBreakdown(p model.ProjectParams, c model.CostParams) (map[model.Step]float64, error) {
	entries := schedule.ForProject(p)
	lastYear := schedule.LastOperationYear(entries)

	annual, err := fuelcycle.BreakdownPerYear(p, c)
	if err != nil {
		return nil, err
	}

	out := make(map[model.Step]float64, len(annual))
	for step, costPerYear := range annual {
		perReactor := costPerYear / float64(p.NReactors)
		total := 0.0
		for year := 1; year <= lastYear; year++ {
			operational := schedule.OperationalCount(entries, year)
			if operational == 0 {
				continue
			}
			total += float64(operational) * perReactor * discountFactor(c.RealDiscountRate, year)
		}
		out[step] = total
	}
	return out, nil
}
