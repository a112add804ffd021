package fuelcycle

import (
	"errors"
	"fmt"
	"math"
)

// ErrNoFeasibleTails is returned when no tails assay in the search
// range yields a positive feed mass and positive separative work.
var ErrNoFeasibleTails = errors.New("no feasible tails assay in search range")

// FrontEndRequest describes one front-end optimization problem: find
// the tails assay that minimizes the cost of buying, transporting,
// converting, and enriching natural uranium to deliver ProductMassKg
// of enriched product.
type FrontEndRequest struct {
	ProductMassKg float64 // required enriched product mass (kgU), must be > 0
	XUNat         float64 // U-235 fraction in natural uranium feed
	XUProduct     float64 // U-235 fraction in enriched product

	PriceUNatPerKgUSD        float64
	TransportUNatPerKgKmUSD  float64
	DistanceUNatKm           float64
	ConversionPerKgUSD       float64
	TransportUConvPerKgKmUSD float64
	DistanceUConvertedKm     float64
	PriceSWUUSD              float64

	// TailsMin bounds the tails assay scan from below.
	// Defaults to 0.0005 if zero.
	TailsMin float64

	// Steps controls the tails-assay grid resolution between
	// [TailsMin, XUNat). Higher = more accurate, slower.
	// Defaults to 500 if zero or negative.
	Steps int
}

// FrontEndSolution is the minimum-cost front end for a request.
type FrontEndSolution struct {
	XTails     float64 // optimal tails U-235 fraction
	FeedMassKg float64 // natural uranium feed mass (kgU)

	CostUNatUSD           float64
	CostTransportUNatUSD  float64
	CostConversionUSD     float64
	CostTransportUConvUSD float64
	CostEnrichmentUSD     float64

	TotalUSD float64
}

// separativeValue is the standard SWU value function
// V(x) = (1 - 2x) * ln((1 - x) / x).
func separativeValue(x float64) float64 {
	return (1.0 - 2.0*x) * math.Log((1.0-x)/x)
}

// OptimizeFrontEnd scans tails assays on a uniform grid over
// [TailsMin, XUNat) and returns the cheapest feasible candidate.
// Exact cost ties keep the first (lowest) tails assay scanned.
//
// The cost function is cheap and the interval is bounded, so a plain
// grid search is used; resolution is controlled by Steps.
func OptimizeFrontEnd(req FrontEndRequest) (FrontEndSolution, error) {
	if req.ProductMassKg <= 0 {
		return FrontEndSolution{}, fmt.Errorf("product mass must be > 0, got %g", req.ProductMassKg)
	}
	if req.TailsMin == 0 {
		req.TailsMin = 0.0005
	}
	if req.Steps <= 0 {
		req.Steps = 500
	}

	vProduct := separativeValue(req.XUProduct)
	vFeed := separativeValue(req.XUNat)

	best := FrontEndSolution{TotalUSD: math.Inf(1)}
	found := false

	step := (req.XUNat - req.TailsMin) / float64(req.Steps)
	for i := 0; i < req.Steps; i++ {
		xTails := req.TailsMin + float64(i)*step

		// The mass balance divides by (XUNat - xTails).
		if math.Abs(req.XUNat-xTails) < 1e-8 {
			continue
		}

		feedKg := req.ProductMassKg * (req.XUProduct - xTails) / (req.XUNat - xTails)
		if feedKg <= 0 {
			continue
		}
		tailsKg := feedKg - req.ProductMassKg

		swu := req.ProductMassKg*vProduct + tailsKg*separativeValue(xTails) - feedKg*vFeed
		if swu <= 0 {
			continue
		}

		costUNat := feedKg * req.PriceUNatPerKgUSD
		costTransportUNat := feedKg * req.TransportUNatPerKgKmUSD * req.DistanceUNatKm
		costConversion := feedKg * req.ConversionPerKgUSD
		costTransportUConv := feedKg * req.TransportUConvPerKgKmUSD * req.DistanceUConvertedKm
		costEnrichment := swu * req.PriceSWUUSD

		total := costUNat + costTransportUNat + costConversion + costTransportUConv + costEnrichment

		if total < best.TotalUSD {
			best = FrontEndSolution{
				XTails:                xTails,
				FeedMassKg:            feedKg,
				CostUNatUSD:           costUNat,
				CostTransportUNatUSD:  costTransportUNat,
				CostConversionUSD:     costConversion,
				CostTransportUConvUSD: costTransportUConv,
				CostEnrichmentUSD:     costEnrichment,
				TotalUSD:              total,
			}
			found = true
		}
	}

	if !found {
		return FrontEndSolution{}, ErrNoFeasibleTails
	}
	return best, nil
}
