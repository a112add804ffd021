package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"nuclear-lcoe/internal/model"

	"gopkg.in/yaml.v3"
)

// Config is the on-disk scenario shape (YAML).
type Config struct {
	// Optional: load a full scenario from a separate YAML
	// (e.g. examples/scenarios/*.yaml). If both ScenarioFile and
	// inline values are provided, the inline values override.
	ScenarioFile string        `yaml:"scenario_file"`
	Project      ProjectConfig `yaml:"project"`
	Costs        CostConfig    `yaml:"costs"`
}

// ProjectConfig carries both YAML (scenario files) and JSON (API
// requests) tags so the same shape serves both intakes.
type ProjectConfig struct {
	Name        string `yaml:"name" json:"name,omitempty"`
	Country     string `yaml:"country" json:"country,omitempty"`
	ReactorType string `yaml:"reactor_type" json:"reactor_type,omitempty"`

	NReactors                 int     `yaml:"n_reactors" json:"n_reactors,omitempty"`
	PowerPerReactorMWe        float64 `yaml:"power_per_reactor_mwe" json:"power_per_reactor_mwe,omitempty"`
	NetCapacityFactor         float64 `yaml:"net_capacity_factor" json:"net_capacity_factor,omitempty"`
	FirstConstructionYears    float64 `yaml:"first_reactor_construction_time_years" json:"first_reactor_construction_time_years,omitempty"`
	DelayBetweenReactorsYears float64 `yaml:"delay_between_reactors_years" json:"delay_between_reactors_years,omitempty"`
	ReactorLifetimeYears      int     `yaml:"reactors_lifetime_years" json:"reactors_lifetime_years,omitempty"`

	XUNat     float64 `yaml:"x_u_nat" json:"x_u_nat,omitempty"`
	XUProduct float64 `yaml:"x_u_product" json:"x_u_product,omitempty"`

	AssembliesPerCore     int     `yaml:"assemblies_per_core" json:"assemblies_per_core,omitempty"`
	FuelMassPerAssemblyKg float64 `yaml:"fuel_mass_per_assembly_kg" json:"fuel_mass_per_assembly_kg,omitempty"`
	BatchFraction         float64 `yaml:"batch_fraction" json:"batch_fraction,omitempty"`
	CycleLengthYears      float64 `yaml:"cycle_length_years" json:"cycle_length_years,omitempty"`

	DistanceUNatKm       float64 `yaml:"distance_u_nat_transport_km" json:"distance_u_nat_transport_km,omitempty"`
	DistanceUConvertedKm float64 `yaml:"distance_u_converted_transport_km" json:"distance_u_converted_transport_km,omitempty"`
	DistanceUEnrichedKm  float64 `yaml:"distance_u_enriched_transport_km" json:"distance_u_enriched_transport_km,omitempty"`
	DistanceFreshFuelKm  float64 `yaml:"distance_fresh_fuel_transport_km" json:"distance_fresh_fuel_transport_km,omitempty"`
	DistanceSpentFuelKm  float64 `yaml:"distance_spent_fuel_transport_km" json:"distance_spent_fuel_transport_km,omitempty"`
}

type CostConfig struct {
	RealDiscountRate         float64 `yaml:"real_discount_rate" json:"real_discount_rate,omitempty"`
	CostPerReactorUSD        float64 `yaml:"cost_per_reactor_usd" json:"cost_per_reactor_usd,omitempty"`
	DismantlingPerReactorUSD float64 `yaml:"dismantling_cost_per_reactor_usd" json:"dismantling_cost_per_reactor_usd,omitempty"`
	OpexPerReactorPerYearUSD float64 `yaml:"exploitation_cost_per_year_per_reactor_usd" json:"exploitation_cost_per_year_per_reactor_usd,omitempty"`

	PriceUNatPerKgUSD        float64 `yaml:"price_u_nat_per_kg_usd" json:"price_u_nat_per_kg_usd,omitempty"`
	TransportUNatPerKgKmUSD  float64 `yaml:"transport_u_nat_per_kg_per_km_usd" json:"transport_u_nat_per_kg_per_km_usd,omitempty"`
	ConversionPerKgUSD       float64 `yaml:"conversion_per_kgu_usd" json:"conversion_per_kgu_usd,omitempty"`
	TransportUConvPerKgKmUSD float64 `yaml:"transport_u_converted_per_kgu_per_km_usd" json:"transport_u_converted_per_kgu_per_km_usd,omitempty"`
	PriceSWUUSD              float64 `yaml:"price_swu_per_swu_usd" json:"price_swu_per_swu_usd,omitempty"`
	TransportUEnrPerKgKmUSD  float64 `yaml:"transport_u_enriched_per_kgu_per_km_usd" json:"transport_u_enriched_per_kgu_per_km_usd,omitempty"`
	FabricationPerKgUSD      float64 `yaml:"fabrication_per_kg_fresh_fuel_usd" json:"fabrication_per_kg_fresh_fuel_usd,omitempty"`
	TransportFreshPerKgKmUSD float64 `yaml:"transport_fuel_per_kg_fresh_fuel_per_km_usd" json:"transport_fuel_per_kg_fresh_fuel_per_km_usd,omitempty"`

	DisposalPerKgUSD         float64 `yaml:"direct_disposal_per_kg_spent_fuel_usd" json:"direct_disposal_per_kg_spent_fuel_usd,omitempty"`
	TransportSpentPerKgKmUSD float64 `yaml:"transport_spent_fuel_per_kg_per_km_usd" json:"transport_spent_fuel_per_kg_per_km_usd,omitempty"`
}

// Load reads, merges, defaults, and validates a scenario config.
func Load(path string) (*Config, error) {
	c, err := LoadUnchecked(path)
	if err != nil {
		return nil, err
	}
	c.ApplyDefaults()
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadUnchecked loads and merges config, but does not default or
// validate it. Useful for debugging/printing partial configs.
func LoadUnchecked(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, err
	}
	// If scenario_file is set, load it and merge in any explicit
	// overrides from the outer file.
	if c.ScenarioFile != "" {
		scenarioPath := c.ScenarioFile
		if !filepath.IsAbs(scenarioPath) {
			// Prefer interpreting relative paths as relative to the
			// config file directory, but fall back to the provided
			// path (relative to cwd) if that doesn't exist.
			cand := filepath.Join(filepath.Dir(path), scenarioPath)
			if _, err := os.Stat(cand); err == nil {
				scenarioPath = cand
			}
		}
		loaded, err := loadScenarioFile(scenarioPath)
		if err != nil {
			return nil, err
		}
		c.Project = MergeProject(loaded.Project, c.Project)
		c.Costs = MergeCosts(loaded.Costs, c.Costs)
	}
	return &c, nil
}

// ApplyDefaults fills unset fields from the documented baseline
// scenario. Zero-valued fields are treated as unset; the defaults
// that are genuinely zero (dismantling cost) stay zero either way.
func (c *Config) ApplyDefaults() {
	c.Project = MergeProject(FromModelProject(model.DefaultProjectParams()), c.Project)
	c.Costs = MergeCosts(FromModelCosts(model.DefaultCostParams()), c.Costs)
}

func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	// Validate by constructing the model params.
	if _, err := model.NewProjectParams(c.Project.ToModelParams()); err != nil {
		return fmt.Errorf("project config invalid: %w", err)
	}
	if err := c.Costs.ToModelParams().Validate(); err != nil {
		return fmt.Errorf("cost config invalid: %w", err)
	}
	return nil
}

func (p ProjectConfig) ToModelParams() model.ProjectParams {
	return model.ProjectParams{
		Country:                   p.Country,
		ReactorType:               p.ReactorType,
		NReactors:                 p.NReactors,
		PowerPerReactorMWe:        p.PowerPerReactorMWe,
		NetCapacityFactor:         p.NetCapacityFactor,
		FirstConstructionYears:    p.FirstConstructionYears,
		DelayBetweenReactorsYears: p.DelayBetweenReactorsYears,
		ReactorLifetimeYears:      p.ReactorLifetimeYears,
		XUNat:                     p.XUNat,
		XUProduct:                 p.XUProduct,
		AssembliesPerCore:         p.AssembliesPerCore,
		FuelMassPerAssemblyKg:     p.FuelMassPerAssemblyKg,
		BatchFraction:             p.BatchFraction,
		CycleLengthYears:          p.CycleLengthYears,
		DistanceUNatKm:            p.DistanceUNatKm,
		DistanceUConvertedKm:      p.DistanceUConvertedKm,
		DistanceUEnrichedKm:       p.DistanceUEnrichedKm,
		DistanceFreshFuelKm:       p.DistanceFreshFuelKm,
		DistanceSpentFuelKm:       p.DistanceSpentFuelKm,
	}
}

func (c CostConfig) ToModelParams() model.CostParams {
	return model.CostParams{
		RealDiscountRate:         c.RealDiscountRate,
		CostPerReactorUSD:        c.CostPerReactorUSD,
		DismantlingPerReactorUSD: c.DismantlingPerReactorUSD,
		OpexPerReactorPerYearUSD: c.OpexPerReactorPerYearUSD,
		PriceUNatPerKgUSD:        c.PriceUNatPerKgUSD,
		TransportUNatPerKgKmUSD:  c.TransportUNatPerKgKmUSD,
		ConversionPerKgUSD:       c.ConversionPerKgUSD,
		TransportUConvPerKgKmUSD: c.TransportUConvPerKgKmUSD,
		PriceSWUUSD:              c.PriceSWUUSD,
		TransportUEnrPerKgKmUSD:  c.TransportUEnrPerKgKmUSD,
		FabricationPerKgUSD:      c.FabricationPerKgUSD,
		TransportFreshPerKgKmUSD: c.TransportFreshPerKgKmUSD,
		DisposalPerKgUSD:         c.DisposalPerKgUSD,
		TransportSpentPerKgKmUSD: c.TransportSpentPerKgKmUSD,
	}
}

// FromModelProject converts model params back to config shape, used
// as the defaults base for merging.
func FromModelProject(p model.ProjectParams) ProjectConfig {
	return ProjectConfig{
		Country:                   p.Country,
		ReactorType:               p.ReactorType,
		NReactors:                 p.NReactors,
		PowerPerReactorMWe:        p.PowerPerReactorMWe,
		NetCapacityFactor:         p.NetCapacityFactor,
		FirstConstructionYears:    p.FirstConstructionYears,
		DelayBetweenReactorsYears: p.DelayBetweenReactorsYears,
		ReactorLifetimeYears:      p.ReactorLifetimeYears,
		XUNat:                     p.XUNat,
		XUProduct:                 p.XUProduct,
		AssembliesPerCore:         p.AssembliesPerCore,
		FuelMassPerAssemblyKg:     p.FuelMassPerAssemblyKg,
		BatchFraction:             p.BatchFraction,
		CycleLengthYears:          p.CycleLengthYears,
		DistanceUNatKm:            p.DistanceUNatKm,
		DistanceUConvertedKm:      p.DistanceUConvertedKm,
		DistanceUEnrichedKm:       p.DistanceUEnrichedKm,
		DistanceFreshFuelKm:       p.DistanceFreshFuelKm,
		DistanceSpentFuelKm:       p.DistanceSpentFuelKm,
	}
}

// FromModelCosts converts model cost params back to config shape.
func FromModelCosts(c model.CostParams) CostConfig {
	return CostConfig{
		RealDiscountRate:         c.RealDiscountRate,
		CostPerReactorUSD:        c.CostPerReactorUSD,
		DismantlingPerReactorUSD: c.DismantlingPerReactorUSD,
		OpexPerReactorPerYearUSD: c.OpexPerReactorPerYearUSD,
		PriceUNatPerKgUSD:        c.PriceUNatPerKgUSD,
		TransportUNatPerKgKmUSD:  c.TransportUNatPerKgKmUSD,
		ConversionPerKgUSD:       c.ConversionPerKgUSD,
		TransportUConvPerKgKmUSD: c.TransportUConvPerKgKmUSD,
		PriceSWUUSD:              c.PriceSWUUSD,
		TransportUEnrPerKgKmUSD:  c.TransportUEnrPerKgKmUSD,
		FabricationPerKgUSD:      c.FabricationPerKgUSD,
		TransportFreshPerKgKmUSD: c.TransportFreshPerKgKmUSD,
		DisposalPerKgUSD:         c.DisposalPerKgUSD,
		TransportSpentPerKgKmUSD: c.TransportSpentPerKgKmUSD,
	}
}

type scenarioFileWrapper struct {
	Project ProjectConfig `yaml:"project"`
	Costs   CostConfig    `yaml:"costs"`
}

func loadScenarioFile(path string) (scenarioFileWrapper, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return scenarioFileWrapper{}, err
	}
	var w scenarioFileWrapper
	if err := yaml.Unmarshal(raw, &w); err != nil {
		return scenarioFileWrapper{}, err
	}
	return w, nil
}

// MergeProject overlays non-zero fields from override onto base.
// Note: a zero override cannot clear a non-zero base value; our
// scenarios use non-zero values for every physical field.
func MergeProject(base, override ProjectConfig) ProjectConfig {
	out := base
	if override.Name != "" {
		out.Name = override.Name
	}
	if override.Country != "" {
		out.Country = override.Country
	}
	if override.ReactorType != "" {
		out.ReactorType = override.ReactorType
	}
	if override.NReactors != 0 {
		out.NReactors = override.NReactors
	}
	if override.PowerPerReactorMWe != 0 {
		out.PowerPerReactorMWe = override.PowerPerReactorMWe
	}
	if override.NetCapacityFactor != 0 {
		out.NetCapacityFactor = override.NetCapacityFactor
	}
	if override.FirstConstructionYears != 0 {
		out.FirstConstructionYears = override.FirstConstructionYears
	}
	if override.DelayBetweenReactorsYears != 0 {
		out.DelayBetweenReactorsYears = override.DelayBetweenReactorsYears
	}
	if override.ReactorLifetimeYears != 0 {
		out.ReactorLifetimeYears = override.ReactorLifetimeYears
	}
	if override.XUNat != 0 {
		out.XUNat = override.XUNat
	}
	if override.XUProduct != 0 {
		out.XUProduct = override.XUProduct
	}
	if override.AssembliesPerCore != 0 {
		out.AssembliesPerCore = override.AssembliesPerCore
	}
	if override.FuelMassPerAssemblyKg != 0 {
		out.FuelMassPerAssemblyKg = override.FuelMassPerAssemblyKg
	}
	if override.BatchFraction != 0 {
		out.BatchFraction = override.BatchFraction
	}
	if override.CycleLengthYears != 0 {
		out.CycleLengthYears = override.CycleLengthYears
	}
	if override.DistanceUNatKm != 0 {
		out.DistanceUNatKm = override.DistanceUNatKm
	}
	if override.DistanceUConvertedKm != 0 {
		out.DistanceUConvertedKm = override.DistanceUConvertedKm
	}
	if override.DistanceUEnrichedKm != 0 {
		out.DistanceUEnrichedKm = override.DistanceUEnrichedKm
	}
	if override.DistanceFreshFuelKm != 0 {
		out.DistanceFreshFuelKm = override.DistanceFreshFuelKm
	}
	if override.DistanceSpentFuelKm != 0 {
		out.DistanceSpentFuelKm = override.DistanceSpentFuelKm
	}
	return out
}

// MergeCosts overlays non-zero fields from override onto base.
func MergeCosts(base, override CostConfig) CostConfig {
	out := base
	if override.RealDiscountRate != 0 {
		out.RealDiscountRate = override.RealDiscountRate
	}
	if override.CostPerReactorUSD != 0 {
		out.CostPerReactorUSD = override.CostPerReactorUSD
	}
	if override.DismantlingPerReactorUSD != 0 {
		out.DismantlingPerReactorUSD = override.DismantlingPerReactorUSD
	}
	if override.OpexPerReactorPerYearUSD != 0 {
		out.OpexPerReactorPerYearUSD = override.OpexPerReactorPerYearUSD
	}
	if override.PriceUNatPerKgUSD != 0 {
		out.PriceUNatPerKgUSD = override.PriceUNatPerKgUSD
	}
	if override.TransportUNatPerKgKmUSD != 0 {
		out.TransportUNatPerKgKmUSD = override.TransportUNatPerKgKmUSD
	}
	if override.ConversionPerKgUSD != 0 {
		out.ConversionPerKgUSD = override.ConversionPerKgUSD
	}
	if override.TransportUConvPerKgKmUSD != 0 {
		out.TransportUConvPerKgKmUSD = override.TransportUConvPerKgKmUSD
	}
	if override.PriceSWUUSD != 0 {
		out.PriceSWUUSD = override.PriceSWUUSD
	}
	if override.TransportUEnrPerKgKmUSD != 0 {
		out.TransportUEnrPerKgKmUSD = override.TransportUEnrPerKgKmUSD
	}
	if override.FabricationPerKgUSD != 0 {
		out.FabricationPerKgUSD = override.FabricationPerKgUSD
	}
	if override.TransportFreshPerKgKmUSD != 0 {
		out.TransportFreshPerKgKmUSD = override.TransportFreshPerKgKmUSD
	}
	if override.DisposalPerKgUSD != 0 {
		out.DisposalPerKgUSD = override.DisposalPerKgUSD
	}
	if override.TransportSpentPerKgKmUSD != 0 {
		out.TransportSpentPerKgKmUSD = override.TransportSpentPerKgKmUSD
	}
	return out
}
