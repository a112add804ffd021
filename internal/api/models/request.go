package models

import (
	"nuclear-lcoe/internal/config"
)

// ScenarioInput selects the parameters for a run: an optional bundled
// scenario file plus inline overrides, merged non-zero-wins on top of
// the baseline defaults.
type ScenarioInput struct {
	// ScenarioFile is the name of a bundled scenario (without the
	// .yaml extension), looked up in the scenarios directory.
	ScenarioFile string               `json:"scenario_file,omitempty"`
	Project      config.ProjectConfig `json:"project"`
	Costs        config.CostConfig    `json:"costs"`
}

// LCOERequest drives POST /api/v1/lcoe.
type LCOERequest struct {
	Scenario ScenarioInput `json:"scenario"`
	Options  RunOptions    `json:"options"`
}

// RunOptions controls optional response content.
type RunOptions struct {
	// IncludeLedger adds the per-year cash-flow ledger to the response.
	IncludeLedger bool `json:"include_ledger"`
}

// FuelBreakdownRequest drives POST /api/v1/lcoe/fuel-breakdown.
type FuelBreakdownRequest struct {
	Scenario ScenarioInput `json:"scenario"`
}

// ScheduleRequest drives POST /api/v1/schedule.
type ScheduleRequest struct {
	Scenario ScenarioInput `json:"scenario"`
}

// OptimizeRequest drives POST /api/v1/frontend/optimize. It maps
// directly onto the front-end optimizer; zero TailsMin/Steps use the
// optimizer defaults.
type OptimizeRequest struct {
	ProductMassKg float64 `json:"product_mass_kg"`
	XUNat         float64 `json:"x_u_nat"`
	XUProduct     float64 `json:"x_u_product"`

	PriceUNatPerKgUSD        float64 `json:"price_u_nat_per_kg_usd"`
	TransportUNatPerKgKmUSD  float64 `json:"transport_u_nat_per_kg_per_km_usd"`
	DistanceUNatKm           float64 `json:"distance_u_nat_transport_km"`
	ConversionPerKgUSD       float64 `json:"conversion_per_kgu_usd"`
	TransportUConvPerKgKmUSD float64 `json:"transport_u_converted_per_kgu_per_km_usd"`
	DistanceUConvertedKm     float64 `json:"distance_u_converted_transport_km"`
	PriceSWUUSD              float64 `json:"price_swu_per_swu_usd"`

	TailsMin float64 `json:"tails_min,omitempty"`
	Steps    int     `json:"steps,omitempty"`
}
