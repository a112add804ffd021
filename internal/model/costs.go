package model

import (
	"errors"
)

// CostParams defines the economic parameters of a project.
// Units:
// - Prices: $ (per kg, per SWU, or per reactor as noted)
// - Transport rates: $/kg/km
// - RealDiscountRate: fraction per year, net of inflation
type CostParams struct {
	RealDiscountRate float64

	// CAPEX: overnight cost, without interest during construction.
	CostPerReactorUSD float64

	// Decommissioning at the end of each reactor's lifetime.
	DismantlingPerReactorUSD float64

	// OPEX excluding fuel: staff, maintenance, services.
	OpexPerReactorPerYearUSD float64

	// Front-end fuel cycle.
	PriceUNatPerKgUSD        float64 // $/kgU natural uranium
	TransportUNatPerKgKmUSD  float64
	ConversionPerKgUSD       float64 // $/kgU feed
	TransportUConvPerKgKmUSD float64
	PriceSWUUSD              float64 // $/SWU
	TransportUEnrPerKgKmUSD  float64
	FabricationPerKgUSD      float64 // $/kg fresh fuel (oxide)
	TransportFreshPerKgKmUSD float64

	// Back-end fuel cycle (direct disposal).
	DisposalPerKgUSD         float64 // $/kg spent fuel
	TransportSpentPerKgKmUSD float64
}

func (c CostParams) Validate() error {
	if c.RealDiscountRate < 0 {
		return errors.New("RealDiscountRate must be >= 0")
	}
	for _, v := range []float64{
		c.CostPerReactorUSD,
		c.DismantlingPerReactorUSD,
		c.OpexPerReactorPerYearUSD,
		c.PriceUNatPerKgUSD,
		c.TransportUNatPerKgKmUSD,
		c.ConversionPerKgUSD,
		c.TransportUConvPerKgKmUSD,
		c.PriceSWUUSD,
		c.TransportUEnrPerKgKmUSD,
		c.FabricationPerKgUSD,
		c.TransportFreshPerKgKmUSD,
		c.DisposalPerKgUSD,
		c.TransportSpentPerKgKmUSD,
	} {
		if v < 0 {
			return errors.New("prices and transport rates must be >= 0")
		}
	}
	return nil
}

// DefaultCostParams is the documented baseline cost set: $6B overnight
// per reactor, 5% real discount rate, 2024-era fuel cycle prices.
func DefaultCostParams() CostParams {
	return CostParams{
		RealDiscountRate: 0.05,

		CostPerReactorUSD:        6e9,
		DismantlingPerReactorUSD: 0.0,
		OpexPerReactorPerYearUSD: 200e6,

		PriceUNatPerKgUSD:        190.0,
		TransportUNatPerKgKmUSD:  0.04e-3,
		ConversionPerKgUSD:       15.0,
		TransportUConvPerKgKmUSD: 0.05e-3,
		PriceSWUUSD:              140.0,
		TransportUEnrPerKgKmUSD:  1.0e-3,
		FabricationPerKgUSD:      250.0,
		TransportFreshPerKgKmUSD: 5.0e-3,

		DisposalPerKgUSD:         1300.0,
		TransportSpentPerKgKmUSD: 6.0e-3,
	}
}
