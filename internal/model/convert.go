package model

// Molar masses in kg/mol.
const (
	uMolarMassKg = 0.238
	oMolarMassKg = 0.016
)

// UO2ToU converts a UO2 oxide mass to the contained uranium metal
// mass. One mole of UO2 weighs one mole of U plus two moles of O.
func UO2ToU(uo2MassKg float64) float64 {
	uo2MolarMass := uMolarMassKg + 2*oMolarMassKg
	return uo2MassKg * uMolarMassKg / uo2MolarMass
}

// U3O8ToU converts a U3O8 (yellowcake) mass to the contained uranium
// metal mass.
func U3O8ToU(u3o8MassKg float64) float64 {
	u3o8MolarMass := 3*uMolarMassKg + 8*oMolarMassKg
	return u3o8MassKg * 3 * uMolarMassKg / u3o8MolarMass
}
