package handlers

import (
	"errors"
	"net/http"

	"nuclear-lcoe/internal/api/models"
	"nuclear-lcoe/internal/cashflow"
	"nuclear-lcoe/internal/fuelcycle"
	"nuclear-lcoe/internal/model"
	"nuclear-lcoe/internal/schedule"

	"github.com/gin-gonic/gin"
)

// LCOEHandler handles LCOE computation requests.
type LCOEHandler struct{}

func NewLCOEHandler() *LCOEHandler {
	return &LCOEHandler{}
}

// Run handles POST /api/v1/lcoe.
func (h *LCOEHandler) Run(c *gin.Context) {
	var req models.LCOERequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{Code: "INVALID_REQUEST", Message: err.Error()},
		})
		return
	}

	project, costs, ok := h.resolveParams(c, req.Scenario)
	if !ok {
		return
	}

	result, err := cashflow.BuildLedger(project, costs)
	if err != nil {
		writeComputeError(c, err)
		return
	}
	breakdown, err := cashflow.ComputeBreakdown(project, costs)
	if err != nil {
		writeComputeError(c, err)
		return
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
		writeComputeError(c, err)
		return
	}
	fuelPerYear, err := fuelcycle.CostPerYearUSD(project, costs)
	if err != nil {
		writeComputeError(c, err)
		return
	}

	entries := schedule.ForProject(project)
	response := models.LCOEResponse{
		Status: "completed",
		Summary: models.LCOESummary{
			LCOEUSDPerMWh:     result.LCOEUSDPerMWh,
			CapexUSD:          cashflow.ComputeCapexUSD(project, costs),
			OpexPerYearUSD:    cashflow.ComputeOpexPerYearUSD(project, costs),
			FuelPerYearUSD:    fuelPerYear,
			AnnualEnergyMWh:   fuelcycle.AnnualEnergyMWh(project),
			LastOperationYear: schedule.LastOperationYear(entries),
			OptimalTailsAssay: frontEnd.XTails,
			AnnualFeedMassKg:  frontEnd.FeedMassKg,
			AnnualFreshFuelKg: fuelcycle.AnnualFreshFuelMassKg(project),
			AnnualEnrichedUKg: fuelcycle.AnnualEnrichedUMassKg(project),
		},
		Breakdown: models.BreakdownInfo{
			CapexUSD:       breakdown.CapexUSD,
			OpexUSD:        breakdown.OpexUSD,
			FuelUSD:        breakdown.FuelUSD,
			DismantlingUSD: breakdown.DismantlingUSD,
			EnergyMWh:      breakdown.EnergyMWh,
		},
	}
	if req.Options.IncludeLedger {
		response.Ledger = convertLedger(result.Ledger)
	}

	c.JSON(http.StatusOK, response)
}

// FuelBreakdown handles POST /api/v1/lcoe/fuel-breakdown.
func (h *LCOEHandler) FuelBreakdown(c *gin.Context) {
	var req models.FuelBreakdownRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{Code: "INVALID_REQUEST", Message: err.Error()},
		})
		return
	}

	project, costs, ok := h.resolveParams(c, req.Scenario)
	if !ok {
		return
	}

	steps, err := cashflow.ComputeFuelBreakdown(project, costs)
	if err != nil {
		writeComputeError(c, err)
		return
	}

	out := make(map[string]float64, len(steps))
	for step, v := range steps {
		out[string(step)] = v
	}
	c.JSON(http.StatusOK, models.FuelBreakdownResponse{
		Status: "completed",
		Steps:  out,
	})
}

func (h *LCOEHandler) resolveParams(c *gin.Context, in models.ScenarioInput) (model.ProjectParams, model.CostParams, bool) {
	cfg, err := buildConfig(in)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{Code: "INVALID_SCENARIO", Message: err.Error()},
		})
		return model.ProjectParams{}, model.CostParams{}, false
	}
	project, err := model.NewProjectParams(cfg.Project.ToModelParams())
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{Code: "INVALID_SCENARIO", Message: err.Error()},
		})
		return model.ProjectParams{}, model.CostParams{}, false
	}
	return project, cfg.Costs.ToModelParams(), true
}

// writeComputeError maps the model's failure modes to HTTP statuses.
// These are deterministic-input faults, never retried server-side.
func writeComputeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, cashflow.ErrNoDiscountedEnergy):
		c.JSON(http.StatusUnprocessableEntity, models.ErrorResponse{
			Error: models.ErrorDetail{Code: "DEGENERATE_SCHEDULE", Message: err.Error()},
		})
	case errors.Is(err, fuelcycle.ErrNoFeasibleTails):
		c.JSON(http.StatusUnprocessableEntity, models.ErrorResponse{
			Error: models.ErrorDetail{Code: "INFEASIBLE_FRONT_END", Message: err.Error()},
		})
	default:
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{Code: "COMPUTE_ERROR", Message: err.Error()},
		})
	}
}

func convertLedger(ledger []cashflow.YearRow) []models.LedgerRow {
	out := make([]models.LedgerRow, len(ledger))
	for i, row := range ledger {
		out[i] = models.LedgerRow{
			Year:                row.Year,
			OperationalReactors: row.OperationalReactors,
			CapexUSD:            row.CapexUSD,
			OpexUSD:             row.OpexUSD,
			FuelUSD:             row.FuelUSD,
			DismantlingUSD:      row.DismantlingUSD,
			EnergyMWh:           row.EnergyMWh,
			DiscountFactor:      row.DiscountFactor,
			DiscountedCostUSD:   row.DiscountedCostUSD,
			DiscountedEnergyMWh: row.DiscountedEnergyMWh,
		}
	}
	return out
}
