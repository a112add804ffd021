package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"nuclear-lcoe/internal/cashflow"
	"nuclear-lcoe/internal/config"
	"nuclear-lcoe/internal/fuelcycle"
	"nuclear-lcoe/internal/model"
	"nuclear-lcoe/internal/schedule"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "lcoe":
		cmdLCOE(os.Args[2:])
	case "schedule":
		cmdSchedule(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Println("usage:")
	fmt.Println("  cli lcoe --config examples/scenarios/serbia_vver.yaml --out results/cashflow.csv")
	fmt.Println("  cli schedule --config examples/scenarios/serbia_vver.yaml")
	fmt.Println("")
	fmt.Println("notes:")
	fmt.Println("  - lcoe prints the full cost report and optionally writes the per-year cash-flow CSV")
	fmt.Println("  - schedule prints each reactor's construction and operation years")
	fmt.Println("  - omit --config to use the built-in baseline scenario")
}

func cmdLCOE(args []string) {
	fs := flag.NewFlagSet("lcoe", flag.ExitOnError)
	cfgPath := fs.String("config", "", "Path to scenario YAML (optional; defaults to baseline)")
	outPath := fs.String("out", "", "Optional output CSV path for the per-year cash-flow ledger")
	_ = fs.Parse(args)

	project, costs := loadParams(*cfgPath)

	result, err := cashflow.BuildLedger(project, costs)
	if err != nil {
		panic(err)
	}
	breakdown, err := cashflow.ComputeBreakdown(project, costs)
	if err != nil {
		panic(err)
	}
	fuelBreakdown, err := fuelcycle.BreakdownPerYear(project, costs)
	if err != nil {
		panic(err)
	}
	frontEnd, err := fuelcycle.OptimizeFrontEnd(fuelcycle.FrontEndRequest{
		ProductMassKg:            fuelcycle.AnnualEnrichedUMassKg(project),
		XUNat:                    project.XUNat,
		XUProduct:                project.XUProduct,
		PriceUNatPerKgUSD:        costs.PriceUNatPerKgUSD,
		TransportUNatPerKgKmUSD:  costs.TransportUNatPerKgKmUSD,
		DistanceUNatKm:           project.DistanceUNatKm,
		ConversionPerKgUSD:       costs.ConversionPerKgUSD,
		TransportUConvPerKgKmUSD: costs.TransportUConvPerKgKmUSD,
		DistanceUConvertedKm:     project.DistanceUConvertedKm,
		PriceSWUUSD:              costs.PriceSWUUSD,
	})
	if err != nil {
		panic(err)
	}

	fmt.Printf("=== Nuclear project - %s x%d, %s ===\n", project.ReactorType, project.NReactors, project.Country)
	fmt.Printf("Net annual production     : %.3f TWh/year\n", fuelcycle.AnnualEnergyMWh(project)/1e6)
	fmt.Printf("Annual fresh fuel (UO2)   : %.3f t/year\n", fuelcycle.AnnualFreshFuelMassKg(project)/1e3)
	fmt.Printf("Annual enriched U (metal) : %.3f tU/year\n", fuelcycle.AnnualEnrichedUMassKg(project)/1e3)
	fmt.Printf("Optimal tails assay       : %.5f\n", frontEnd.XTails)
	fmt.Printf("Optimal natural U feed    : %.3f tU/year\n", frontEnd.FeedMassKg/1e3)
	fmt.Println()
	fmt.Printf("Total CAPEX               : %.3f B$\n", cashflow.ComputeCapexUSD(project, costs)/1e9)
	fmt.Printf("OPEX (excl. fuel)         : %.2f M$/year\n", cashflow.ComputeOpexPerYearUSD(project, costs)/1e6)
	fmt.Printf("Fuel cycle cost           : %.2f M$/year\n", fuelBreakdown.Total()/1e6)
	fmt.Println("Fuel cycle breakdown:")
	for _, step := range model.Steps() {
		fmt.Printf("  - %-22s: %10.3f M$/year\n", step, fuelBreakdown[step]/1e6)
	}
	fmt.Println()
	fmt.Println("Discounted totals over project life:")
	fmt.Printf("  CAPEX       : %.3f B$\n", breakdown.CapexUSD/1e9)
	fmt.Printf("  OPEX        : %.3f B$\n", breakdown.OpexUSD/1e9)
	fmt.Printf("  Fuel        : %.3f B$\n", breakdown.FuelUSD/1e9)
	fmt.Printf("  Dismantling : %.3f B$\n", breakdown.DismantlingUSD/1e9)
	fmt.Printf("  Energy      : %.3f TWh\n", breakdown.EnergyMWh/1e6)
	fmt.Println()
	fmt.Printf("LCOE = %.1f $/MWh\n", result.LCOEUSDPerMWh)

	if *outPath != "" {
		if err := os.MkdirAll(filepath.Dir(*outPath), 0o755); err != nil {
			panic(err)
		}
		if err := cashflow.WriteLedgerCSV(*outPath, result.Ledger); err != nil {
			panic(err)
		}
		fmt.Printf("\nWrote %d rows to %s\n", len(result.Ledger), *outPath)
	}
}

func cmdSchedule(args []string) {
	fs := flag.NewFlagSet("schedule", flag.ExitOnError)
	cfgPath := fs.String("config", "", "Path to scenario YAML (optional; defaults to baseline)")
	_ = fs.Parse(args)

	project, _ := loadParams(*cfgPath)

	entries := schedule.ForProject(project)
	fmt.Printf("%-8s %-20s %-18s %-15s\n", "reactor", "construction_start", "construction_end", "operation_end")
	for _, e := range entries {
		fmt.Printf("%-8d %-20d %-18d %-15d\n", e.Reactor, e.ConstructionStart, e.ConstructionEnd, e.OperationEnd)
	}
	fmt.Printf("\nLast operational year: %d\n", schedule.LastOperationYear(entries))
}

func loadParams(cfgPath string) (model.ProjectParams, model.CostParams) {
	if cfgPath == "" {
		return model.DefaultProjectParams(), model.DefaultCostParams()
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		panic(err)
	}
	project, err := model.NewProjectParams(cfg.Project.ToModelParams())
	if err != nil {
		panic(err)
	}
	return project, cfg.Costs.ToModelParams()
}
