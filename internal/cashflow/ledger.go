package cashflow

import (
	"nuclear-lcoe/internal/fuelcycle"
	"nuclear-lcoe/internal/model"
	"nuclear-lcoe/internal/schedule"
)

// YearRow is one row of per-year cash-flow output.
// This is the primary artifact for "where the money went" reporting.
type YearRow struct {
	Year int

	OperationalReactors int

	CapexUSD       float64
	OpexUSD        float64
	FuelUSD        float64
	DismantlingUSD float64
	EnergyMWh      float64

	DiscountFactor      float64
	DiscountedCostUSD   float64
	DiscountedEnergyMWh float64

	CumDiscountedCostUSD   float64
	CumDiscountedEnergyMWh float64
}

// Result bundles the year ledger with the project-level totals.
type Result struct {
	Ledger []YearRow

	DiscountedCostUSD   float64
	DiscountedEnergyMWh float64
	LCOEUSDPerMWh       float64
}

// BuildLedger replays the cash-flow model year by year and records
// every flow. Dismantling appears in the row of each reactor's final
// operating year, so the ledger totals match ComputeLCOE.
func BuildLedger(p model.ProjectParams, c model.CostParams) (*Result, error) {
	entries := schedule.ForProject(p)
	lastYear := schedule.LastOperationYear(entries)

	fuelPerYear, err := fuelcycle.CostPerYearUSD(p, c)
	if err != nil {
		return nil, err
	}

	opexPerReactor := c.OpexPerReactorPerYearUSD
	fuelPerReactor := fuelPerYear / float64(p.NReactors)
	energyPerReactor := fuelcycle.AnnualEnergyMWh(p) / float64(p.NReactors)

	dismantlingByYear := make(map[int]float64, len(entries))
	for _, e := range entries {
		dismantlingByYear[e.OperationEnd] += c.DismantlingPerReactorUSD
	}

	ledger := make([]YearRow, 0, lastYear)
	cumCost := 0.0
	cumEnergy := 0.0

	for year := 1; year <= lastYear; year++ {
		df := discountFactor(c.RealDiscountRate, year)
		operational := schedule.OperationalCount(entries, year)

		row := YearRow{
			Year:                year,
			OperationalReactors: operational,
			CapexUSD:            schedule.CapexSpendingUSD(entries, p, c, year),
			OpexUSD:             float64(operational) * opexPerReactor,
			FuelUSD:             float64(operational) * fuelPerReactor,
			DismantlingUSD:      dismantlingByYear[year],
			EnergyMWh:           float64(operational) * energyPerReactor,
			DiscountFactor:      df,
		}
		row.DiscountedCostUSD = (row.CapexUSD + row.OpexUSD + row.FuelUSD + row.DismantlingUSD) * df
		row.DiscountedEnergyMWh = row.EnergyMWh * df

		cumCost += row.DiscountedCostUSD
		cumEnergy += row.DiscountedEnergyMWh
		row.CumDiscountedCostUSD = cumCost
		row.CumDiscountedEnergyMWh = cumEnergy

		ledger = append(ledger, row)
	}

	if cumEnergy <= 0 {
		return nil, ErrNoDiscountedEnergy
	}

	return &Result{
		Ledger:              ledger,
		DiscountedCostUSD:   cumCost,
		DiscountedEnergyMWh: cumEnergy,
		LCOEUSDPerMWh:       cumCost / cumEnergy,
	}, nil
}
