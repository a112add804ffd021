package handlers

import (
	"fmt"
	"os"
	"path/filepath"

	"nuclear-lcoe/internal/api/models"
	"nuclear-lcoe/internal/config"
)

// resolveScenarioDir locates the bundled scenario directory. It can
// be overridden with SCENARIO_DIR for deployments.
func resolveScenarioDir() string {
	dir := os.Getenv("SCENARIO_DIR")
	if dir != "" {
		return dir
	}
	wd, err := os.Getwd()
	if err != nil {
		return "./examples/scenarios"
	}
	return filepath.Join(wd, "examples", "scenarios")
}

// buildConfig turns a request's scenario input into validated model
// parameters: scenario file (if named) as base, inline values as
// overrides, baseline defaults for everything left unset.
func buildConfig(in models.ScenarioInput) (*config.Config, error) {
	cfg := &config.Config{
		Project: in.Project,
		Costs:   in.Costs,
	}

	if in.ScenarioFile != "" {
		// scenario_file is just the name (e.g. "serbia_vver"); files
		// always live in the scenarios directory.
		path := filepath.Join(resolveScenarioDir(), in.ScenarioFile+".yaml")
		loaded, err := config.LoadUnchecked(path)
		if err != nil {
			return nil, fmt.Errorf("load scenario %q: %w", in.ScenarioFile, err)
		}
		cfg.Project = config.MergeProject(loaded.Project, cfg.Project)
		cfg.Costs = config.MergeCosts(loaded.Costs, cfg.Costs)
	}

	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
