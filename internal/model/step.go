package model

// Step identifies one step of the fuel cycle in cost breakdowns.
// Keep these values stable; they are intended for JSON/CSV output.
type Step string

const (
	StepUNat           Step = "U_nat"
	StepTransportUNat  Step = "transport_U_nat"
	StepConversion     Step = "conversion"
	StepTransportUConv Step = "transport_U_converted"
	StepSWU            Step = "SWU"
	StepTransportUEnr  Step = "transport_U_enriched"
	StepFabrication    Step = "fabrication"
	StepTransportFresh Step = "transport_fresh_fuel"
	StepBackEnd        Step = "back_end"
	StepTransportSpent Step = "transport_spent_fuel"
)

// Steps returns all fuel-cycle steps in material-flow order.
func Steps() []Step {
	return []Step{
		StepUNat,
		StepTransportUNat,
		StepConversion,
		StepTransportUConv,
		StepSWU,
		StepTransportUEnr,
		StepFabrication,
		StepTransportFresh,
		StepBackEnd,
		StepTransportSpent,
	}
}
