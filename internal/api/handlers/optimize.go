package handlers

import (
	"net/http"

	"nuclear-lcoe/internal/api/models"
	"nuclear-lcoe/internal/fuelcycle"

	"github.com/gin-gonic/gin"
)

// OptimizeHandler exposes the front-end cost optimizer directly.
type OptimizeHandler struct{}

func NewOptimizeHandler() *OptimizeHandler {
	return &OptimizeHandler{}
}

// Optimize handles POST /api/v1/frontend/optimize.
func (h *OptimizeHandler) Optimize(c *gin.Context) {
	var req models.OptimizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{Code: "INVALID_REQUEST", Message: err.Error()},
		})
		return
	}

	sol, err := fuelcycle.OptimizeFrontEnd(fuelcycle.FrontEndRequest{
		ProductMassKg:            req.ProductMassKg,
		XUNat:                    req.XUNat,
		XUProduct:                req.XUProduct,
		PriceUNatPerKgUSD:        req.PriceUNatPerKgUSD,
		TransportUNatPerKgKmUSD:  req.TransportUNatPerKgKmUSD,
		DistanceUNatKm:           req.DistanceUNatKm,
		ConversionPerKgUSD:       req.ConversionPerKgUSD,
		TransportUConvPerKgKmUSD: req.TransportUConvPerKgKmUSD,
		DistanceUConvertedKm:     req.DistanceUConvertedKm,
		PriceSWUUSD:              req.PriceSWUUSD,
		TailsMin:                 req.TailsMin,
		Steps:                    req.Steps,
	})
	if err != nil {
		writeComputeError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.OptimizeResponse{
		XTails:                sol.XTails,
		FeedMassKg:            sol.FeedMassKg,
		CostUNatUSD:           sol.CostUNatUSD,
		CostTransportUNatUSD:  sol.CostTransportUNatUSD,
		CostConversionUSD:     sol.CostConversionUSD,
		CostTransportUConvUSD: sol.CostTransportUConvUSD,
		CostEnrichmentUSD:     sol.CostEnrichmentUSD,
		TotalUSD:              sol.TotalUSD,
	})
}
