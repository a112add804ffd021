package models

// LCOEResponse is the response to a full LCOE run.
type LCOEResponse struct {
	Status    string        `json:"status"`
	Summary   LCOESummary   `json:"summary"`
	Breakdown BreakdownInfo `json:"discounted_breakdown"`
	Ledger    []LedgerRow   `json:"ledger,omitempty"`
}

// LCOESummary contains the headline numbers of a run.
type LCOESummary struct {
	LCOEUSDPerMWh float64 `json:"lcoe_usd_per_mwh"`

	CapexUSD          float64 `json:"capex_usd"`
	OpexPerYearUSD    float64 `json:"opex_per_year_usd"`
	FuelPerYearUSD    float64 `json:"fuel_per_year_usd"`
	AnnualEnergyMWh   float64 `json:"annual_energy_mwh"`
	LastOperationYear int     `json:"last_operation_year"`

	// Front-end optimum for the annual enriched uranium demand.
	OptimalTailsAssay float64 `json:"optimal_tails_assay"`
	AnnualFeedMassKg  float64 `json:"annual_feed_mass_kg"`
	AnnualFreshFuelKg float64 `json:"annual_fresh_fuel_kg"`
	AnnualEnrichedUKg float64 `json:"annual_enriched_u_kg"`
}

// BreakdownInfo reports discounted totals per cost category.
type BreakdownInfo struct {
	CapexUSD       float64 `json:"discounted_capex_usd"`
	OpexUSD        float64 `json:"discounted_opex_usd"`
	FuelUSD        float64 `json:"discounted_fuel_usd"`
	DismantlingUSD float64 `json:"discounted_dismantling_usd"`
	EnergyMWh      float64 `json:"discounted_energy_mwh"`
}

// LedgerRow is one project year in the response ledger.
type LedgerRow struct {
	Year                int     `json:"year"`
	OperationalReactors int     `json:"operational_reactors"`
	CapexUSD            float64 `json:"capex_usd"`
	OpexUSD             float64 `json:"opex_usd"`
	FuelUSD             float64 `json:"fuel_usd"`
	DismantlingUSD      float64 `json:"dismantling_usd"`
	EnergyMWh           float64 `json:"energy_mwh"`
	DiscountFactor      float64 `json:"discount_factor"`
	DiscountedCostUSD   float64 `json:"discounted_cost_usd"`
	DiscountedEnergyMWh float64 `json:"discounted_energy_mwh"`
}

// FuelBreakdownResponse maps fuel-cycle step names to discounted
// costs over the project life.
type FuelBreakdownResponse struct {
	Status string             `json:"status"`
	Steps  map[string]float64 `json:"discounted_fuel_breakdown"`
}

// ScheduleResponse lists per-reactor construction windows.
type ScheduleResponse struct {
	Entries []ScheduleEntry `json:"entries"`
}

// ScheduleEntry is one reactor's lifecycle, 1-indexed years.
type ScheduleEntry struct {
	Reactor           int `json:"reactor"`
	ConstructionStart int `json:"construction_start_year"`
	ConstructionEnd   int `json:"construction_end_year"`
	OperationEnd      int `json:"operation_end_year"`
}

// OptimizeResponse reports the minimum-cost front end.
type OptimizeResponse struct {
	XTails     float64 `json:"x_tails_opt"`
	FeedMassKg float64 `json:"feed_mass_kg"`

	CostUNatUSD           float64 `json:"cost_u_nat_usd"`
	CostTransportUNatUSD  float64 `json:"cost_transport_u_nat_usd"`
	CostConversionUSD     float64 `json:"cost_conversion_usd"`
	CostTransportUConvUSD float64 `json:"cost_transport_u_converted_usd"`
	CostEnrichmentUSD     float64 `json:"cost_enrichment_usd"`
	TotalUSD              float64 `json:"total_usd"`
}

// ScenarioInfo describes one bundled scenario file.
type ScenarioInfo struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	File    string `json:"file"`
	Country string `json:"country"`
	Reactor string `json:"reactor_type"`
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
