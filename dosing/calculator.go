package dosing

import (
	"math"
	"strings"

	"github.com/livnyhealth/dosing-engine/dosing/entities"
	"github.com/livnyhealth/dosing-engine/interfaces"
	"github.com/livnyhealth/dosing-engine/logging"
	"github.com/livnyhealth/dosing-engine/units"
)

// Compile-time checks to ensure Calculator implements the engine contracts
var (
	_ interfaces.QuantityCalculator = (*Calculator)(nil)
	_ interfaces.DosingParser       = (*Calculator)(nil)
)

// Calculator implements the QuantityCalculator and DosingParser interfaces
// over the package-level functions.
type Calculator struct{}

// NewCalculator creates a new Calculator instance
func NewCalculator() *Calculator {
	return &Calculator{}
}

// CalculateQuantity implements the QuantityCalculator interface
func (c *Calculator) CalculateQuantity(frequencyCode string, durationDays int, dosesPerAdmin float64, form entities.Form) entities.QuantityResult {
	return CalculateQuantity(frequencyCode, durationDays, dosesPerAdmin, form)
}

// Frequencies implements the QuantityCalculator interface
func (c *Calculator) Frequencies() []entities.FrequencyOption {
	return Frequencies()
}

// ParseDosesPerAdmin implements the DosingParser interface
func (c *Calculator) ParseDosesPerAdmin(dosingText string, form entities.Form) int {
	return ParseDosesPerAdmin(dosingText, form)
}

// ParseFrequencyFromDosing implements the DosingParser interface
func (c *Calculator) ParseFrequencyFromDosing(dosingText string) string {
	return ParseFrequencyFromDosing(dosingText)
}

// isEstimateCode reports whether a frequency code marks its quantities as
// estimates. Exactly the PRN and 4-6 hour range codes do, as fixed policy.
func isEstimateCode(frequencyCode string) bool {
	return strings.EqualFold(frequencyCode, CodePRN) || strings.EqualFold(frequencyCode, CodeQ4to6H)
}

// CalculateQuantity computes the total dispense quantity for a frequency
// code, treatment duration, and per-administration dose count.
//
// Unknown frequency codes default to once daily. Negative or NaN numeric
// inputs clamp to zero, so a zero-or-negative duration yields quantity 0.
// The raw product rounds UP to the nearest integer: partial doses always
// round toward more medication dispensed, never less. Liquid forms carry an
// imperial equivalent of the final quantity treated as milliliters.
func CalculateQuantity(frequencyCode string, durationDays int, dosesPerAdmin float64, form entities.Form) entities.QuantityResult {
	administrationsPerDay := 1.0
	if opt, ok := LookupFrequency(frequencyCode); ok {
		administrationsPerDay = opt.AdministrationsPerDay
	} else if frequencyCode != "" {
		logging.Debug("Unknown frequency code, defaulting to once daily", "code", frequencyCode)
	}

	if durationDays < 0 {
		durationDays = 0
	}
	if dosesPerAdmin < 0 || math.IsNaN(dosesPerAdmin) || math.IsInf(dosesPerAdmin, 0) {
		dosesPerAdmin = 0
	}

	raw := dosesPerAdmin * administrationsPerDay * float64(durationDays)
	quantity := int(math.Ceil(raw))

	result := entities.QuantityResult{
		Quantity:   quantity,
		Unit:       UnitForForm(form),
		IsEstimate: isEstimateCode(frequencyCode),
	}

	if form == entities.FormLiquid {
		equivalent := units.VolumeInSystem(float64(quantity), units.Imperial)
		result.ImperialEquivalent = &equivalent
	}

	return result
}
