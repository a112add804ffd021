package config

import (
	"os"
	"path/filepath"
	"testing"

	"nuclear-lcoe/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFillsDefaults(t *testing.T) {
	path := writeFile(t, t.TempDir(), "config.yaml", `
project:
  n_reactors: 2
costs:
  real_discount_rate: 0.07
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	// Explicit values survive.
	assert.Equal(t, 2, cfg.Project.NReactors)
	assert.Equal(t, 0.07, cfg.Costs.RealDiscountRate)

	// Everything else comes from the baseline.
	defaults := model.DefaultProjectParams()
	assert.Equal(t, defaults.Country, cfg.Project.Country)
	assert.Equal(t, defaults.PowerPerReactorMWe, cfg.Project.PowerPerReactorMWe)
	assert.Equal(t, defaults.XUNat, cfg.Project.XUNat)
	assert.Equal(t, model.DefaultCostParams().PriceSWUUSD, cfg.Costs.PriceSWUUSD)
}

func TestLoadScenarioFileIndirection(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "scenario.yaml", `
project:
  name: "Test plant"
  country: "Testland"
  n_reactors: 3
costs:
  price_swu_per_swu_usd: 120.0
`)
	path := writeFile(t, dir, "config.yaml", `
scenario_file: scenario.yaml
project:
  n_reactors: 2
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	// Inline values override the referenced scenario.
	assert.Equal(t, 2, cfg.Project.NReactors)
	// Scenario values override the defaults.
	assert.Equal(t, "Testland", cfg.Project.Country)
	assert.Equal(t, "Test plant", cfg.Project.Name)
	assert.Equal(t, 120.0, cfg.Costs.PriceSWUUSD)
}

func TestLoadRejectsInvalidConfig(t *testing.T) {
	path := writeFile(t, t.TempDir(), "config.yaml", `
project:
  net_capacity_factor: 1.5
`)

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadMalformedYAML(t *testing.T) {
	path := writeFile(t, t.TempDir(), "config.yaml", "project: [not: a, map\n")
	_, err := Load(path)
	assert.Error(t, err)
}

func TestMergeProjectOverlaysNonZeroFields(t *testing.T) {
	base := FromModelProject(model.DefaultProjectParams())
	override := ProjectConfig{
		Country:   "Testland",
		NReactors: 6,
	}

	merged := MergeProject(base, override)
	assert.Equal(t, "Testland", merged.Country)
	assert.Equal(t, 6, merged.NReactors)
	// Untouched fields keep the base value.
	assert.Equal(t, base.PowerPerReactorMWe, merged.PowerPerReactorMWe)
	assert.Equal(t, base.ReactorType, merged.ReactorType)
}

func TestMergeCostsOverlaysNonZeroFields(t *testing.T) {
	base := FromModelCosts(model.DefaultCostParams())
	override := CostConfig{PriceUNatPerKgUSD: 250.0}

	merged := MergeCosts(base, override)
	assert.Equal(t, 250.0, merged.PriceUNatPerKgUSD)
	assert.Equal(t, base.PriceSWUUSD, merged.PriceSWUUSD)
}

func TestRoundTripModelConversion(t *testing.T) {
	project := model.DefaultProjectParams()
	costs := model.DefaultCostParams()

	gotProject, err := model.NewProjectParams(FromModelProject(project).ToModelParams())
	require.NoError(t, err)
	assert.Equal(t, project, gotProject)

	assert.Equal(t, costs, FromModelCosts(costs).ToModelParams())
}

func TestBundledScenariosLoad(t *testing.T) {
	root := repoRoot(t)
	for _, name := range []string{"serbia_vver.yaml", "single_epr.yaml"} {
		path := filepath.Join(root, "examples", "scenarios", name)
		if _, err := os.Stat(path); err != nil {
			t.Skipf("bundled scenarios not present: %v", err)
		}
		cfg, err := Load(path)
		require.NoError(t, err, name)
		require.NoError(t, cfg.Validate(), name)
	}
}

func repoRoot(t *testing.T) string {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	return filepath.Join(wd, "..", "..")
}
