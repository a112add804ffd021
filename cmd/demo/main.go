package main

import (
	"fmt"
	"log"

	"nuclear-lcoe/internal/cashflow"
	"nuclear-lcoe/internal/fuelcycle"
	"nuclear-lcoe/internal/model"
	"nuclear-lcoe/internal/schedule"
)

// Runs the baseline scenario end to end and prints every intermediate
// quantity, so the whole pipeline can be eyeballed without a config
// file or a server.
func main() {
	project := model.DefaultProjectParams()
	costs := model.DefaultCostParams()

	fmt.Println("=== Baseline scenario ===")
	fmt.Printf("Country            : %s\n", project.Country)
	fmt.Printf("Reactor            : %s x%d (%.0f MWe each)\n",
		project.ReactorType, project.NReactors, project.PowerPerReactorMWe)
	fmt.Printf("Capacity factor    : %.2f\n", project.NetCapacityFactor)
	fmt.Printf("First build time   : %.0f years, stagger %.0f year(s)\n",
		project.FirstConstructionYears, project.DelayBetweenReactorsYears)
	fmt.Printf("Lifetime           : %d years\n", project.ReactorLifetimeYears)
	fmt.Printf("Discount rate      : %.1f%%\n", costs.RealDiscountRate*100)
	fmt.Println()

	fmt.Println("=== Construction schedule ===")
	entries := schedule.ForProject(project)
	for _, e := range entries {
		fmt.Printf("Reactor %d: build years %d-%d, operates until year %d\n",
			e.Reactor, e.ConstructionStart, e.ConstructionEnd, e.OperationEnd)
	}
	fmt.Printf("Last operational year: %d\n", schedule.LastOperationYear(entries))
	fmt.Println()

	fmt.Println("=== Fuel cycle ===")
	fmt.Printf("Annual energy      : %.3f TWh\n", fuelcycle.AnnualEnergyMWh(project)/1e6)
	fmt.Printf("Fuel per core      : %.1f t UO2\n", fuelcycle.FuelMassPerCoreKg(project)/1e3)
	fmt.Printf("Fresh fuel per year: %.1f t UO2\n", fuelcycle.AnnualFreshFuelMassKg(project)/1e3)
	fmt.Printf("Enriched U per year: %.1f tU\n", fuelcycle.AnnualEnrichedUMassKg(project)/1e3)

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
		log.Fatalf("front-end optimization failed: %v", err)
	}
	fmt.Printf("Optimal tails assay: %.5f\n", frontEnd.XTails)
	fmt.Printf("Natural U feed     : %.1f tU/year\n", frontEnd.FeedMassKg/1e3)

	fuelBreakdown, err := fuelcycle.BreakdownPerYear(project, costs)
	if err != nil {
		log.Fatalf("fuel breakdown failed: %v", err)
	}
	fmt.Println("Annual fuel cycle cost by step:")
	for _, step := range model.Steps() {
		fmt.Printf("  %-24s %10.3f M$\n", step, fuelBreakdown[step]/1e6)
	}
	fmt.Printf("  %-24s %10.3f M$\n", "total", fuelBreakdown.Total()/1e6)
	fmt.Println()

	fmt.Println("=== Discounted cash flow ===")
	breakdown, err := cashflow.ComputeBreakdown(project, costs)
	if err != nil {
		log.Fatalf("cash-flow computation failed: %v", err)
	}
	fmt.Printf("CAPEX              : %.3f B$ discounted\n", breakdown.CapexUSD/1e9)
	fmt.Printf("OPEX               : %.3f B$ discounted\n", breakdown.OpexUSD/1e9)
	fmt.Printf("Fuel               : %.3f B$ discounted\n", breakdown.FuelUSD/1e9)
	fmt.Printf("Dismantling        : %.3f B$ discounted\n", breakdown.DismantlingUSD/1e9)
	fmt.Printf("Energy             : %.3f TWh discounted\n", breakdown.EnergyMWh/1e6)
	fmt.Println()

	lcoe, err := cashflow.ComputeLCOE(project, costs)
	if err != nil {
		log.Fatalf("LCOE computation failed: %v", err)
	}
	fmt.Printf("LCOE = %.1f $/MWh\n", lcoe)
}
