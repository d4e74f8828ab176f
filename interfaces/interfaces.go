// Package interfaces defines the contracts the dosing engine exposes to its
// callers, to improve testability and keep the UI-facing surface explicit.
// Every implementation carries a compile-time check against its contract.
package interfaces

import (
	"github.com/livnyhealth/dosing-engine/dosing/entities"
	"github.com/livnyhealth/dosing-engine/units"
)

// Compile-time check to ensure units.Converter implements UnitConverter.
// The check lives here because the units package is a leaf and cannot import
// this one.
var _ UnitConverter = (*units.Converter)(nil)

// UnitConverter converts and formats volume and weight magnitudes between the
// metric and imperial systems. All methods are pure and total.
type UnitConverter interface {
	ConvertVolume(value float64, from, to units.VolumeUnit) units.ConversionResult
	ConvertWeight(value float64, from, to units.WeightUnit) units.ConversionResult
	VolumeInSystem(ml float64, system units.System) units.ConversionResult
	WeightInSystem(kg float64, system units.System) units.ConversionResult
}

// DosingParser extracts structured dosing values from free-text clinical
// shorthand. Parsing never fails: missing matches resolve to documented
// defaults (doses) or an empty code the caller treats as unset (frequency).
type DosingParser interface {
	// ParseDosesPerAdmin returns how many discrete units are taken per
	// administration according to the dosing text.
	ParseDosesPerAdmin(dosingText string, form entities.Form) int

	// ParseFrequencyFromDosing returns the first matching catalog code in
	// the fixed precedence order, or "" when nothing matches.
	ParseFrequencyFromDosing(dosingText string) string
}

// QuantityCalculator resolves a frequency code and treatment duration into a
// total dispense quantity, and enumerates the frequency catalog in its fixed
// display order.
type QuantityCalculator interface {
	CalculateQuantity(frequencyCode string, durationDays int, dosesPerAdmin float64, form entities.Form) entities.QuantityResult
	Frequencies() []entities.FrequencyOption
}

// RegimenSource supplies common dosing options and a default treatment
// duration for a medication name.
type RegimenSource interface {
	CommonDosing(medicationName string) []string
	DefaultDuration(medicationName string) int
}

// CatalogValidator checks catalog integrity and applies the engine's numeric
// clamping policy for inputs the upstream behavior leaves undefined.
type CatalogValidator interface {
	ValidateCatalog(options []entities.FrequencyOption) error
	ClampDuration(days int) int
	ClampDoses(doses float64) float64
}
