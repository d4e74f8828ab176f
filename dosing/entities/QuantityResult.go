package entities

import "github.com/livnyhealth/dosing-engine/units"

// Form is a medication's pharmaceutical form. Unknown forms are valid inputs
// everywhere a Form is accepted; they resolve to the generic dispense unit.
type Form string

// Recognized medication forms.
const (
	FormTablet    Form = "tablet"
	FormCapsule   Form = "capsule"
	FormLiquid    Form = "liquid"
	FormInjection Form = "injection"
	FormTopical   Form = "topical"
	FormInhaler   Form = "inhaler"
)

// QuantityResult is the outcome of a dispense quantity calculation. Quantity
// is the ceiling of the raw product and is never negative or fractional.
// ImperialEquivalent is set only for liquid forms, treating the quantity as a
// milliliter count.
type QuantityResult struct {
	Quantity           int                     `json:"quantity"`
	Unit               string                  `json:"unit"`
	IsEstimate         bool                    `json:"isEstimate"`
	ImperialEquivalent *units.ConversionResult `json:"imperialEquivalent,omitempty"`
}
