package cashflow

import (
	"encoding/csv"
	"os"
	"strconv"
)

// WriteLedgerCSV writes the year ledger to a CSV file.
func WriteLedgerCSV(path string, ledger []YearRow) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := []string{
		"year",
		"operational_reactors",
		"capex_usd",
		"opex_usd",
		"fuel_usd",
		"dismantling_usd",
		"energy_mwh",
		"discount_factor",
		"discounted_cost_usd",
		"discounted_energy_mwh",
		"cum_discounted_cost_usd",
		"cum_discounted_energy_mwh",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, r := range ledger {
		row := []string{
			strconv.Itoa(r.Year),
			strconv.Itoa(r.OperationalReactors),
			fmtFloat(r.CapexUSD),
			fmtFloat(r.OpexUSD),
			fmtFloat(r.FuelUSD),
			fmtFloat(r.DismantlingUSD),
			fmtFloat(r.EnergyMWh),
			fmtFloat(r.DiscountFactor),
			fmtFloat(r.DiscountedCostUSD),
			fmtFloat(r.DiscountedEnergyMWh),
			fmtFloat(r.CumDiscountedCostUSD),
			fmtFloat(r.CumDiscountedEnergyMWh),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return w.Error()
}

func fmtFloat(x float64) string {
	return strconv.FormatFloat(x, 'f', 6, 64)
}
