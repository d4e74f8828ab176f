// Package units provides volume and weight conversions between metric and
// imperial units for medication dosing, with a display-oriented rounding
// policy shared by every conversion result.
//
// All functions are pure and total: any real-valued input produces a result
// and no function returns an error. Results are value objects and are never
// mutated after construction.
package units

import (
	"math"
	"strconv"
)

// Conversion factors. These are the literal reference constants used for all
// conversions; the weight factors are intentionally not derived from each
// other so output matches the reference values exactly.
const (
	MlPerTsp  = 5.0
	MlPerTbsp = 15.0
	MlPerFlOz = 29.5735
	LbsPerKg  = 2.20462
	KgPerLb   = 0.453592
)

// Canonical unit labels used in ConversionResult.Unit and Formatted.
const (
	LabelMilliliters = "mL"
	LabelTeaspoons   = "tsp"
	LabelTablespoons = "tbsp"
	LabelFluidOunces = "fl oz"
	LabelKilograms   = "kg"
	LabelPounds      = "lbs"
)

// VolumeUnit identifies a supported volume unit.
type VolumeUnit string

// Supported volume units.
const (
	Milliliters VolumeUnit = LabelMilliliters
	Teaspoons   VolumeUnit = LabelTeaspoons
	Tablespoons VolumeUnit = LabelTablespoons
	FluidOunces VolumeUnit = LabelFluidOunces
)

// WeightUnit identifies a supported weight unit.
type WeightUnit string

// Supported weight units.
const (
	Kilograms WeightUnit = LabelKilograms
	Pounds    WeightUnit = LabelPounds
)

// System identifies a measurement system for display selection.
type System string

// Supported measurement systems.
const (
	Metric   System = "metric"
	Imperial System = "imperial"
)

// ConversionResult holds a converted magnitude, its unit label, and the
// ready-to-display combination of the two (e.g. "3 tsp").
type ConversionResult struct {
	Value     float64 `json:"value"`
	Unit      string  `json:"unit"`
	Formatted string  `json:"formatted"`
}

// SmartRound applies the display rounding policy: whole numbers are returned
// unchanged, magnitudes of 10 or more round to 1 decimal place, smaller
// magnitudes round to 2 decimal places.
func SmartRound(v float64) float64 {
	if v == math.Trunc(v) {
		return v
	}
	if math.Abs(v) >= 10 {
		return math.Round(v*10) / 10
	}
	return math.Round(v*100) / 100
}

// FormatValue renders a smart-rounded value without trailing zeros, so whole
// numbers print with no decimal point.
func FormatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// newResult smart-rounds the converted value and builds the display string.
// Rounding happens here, after the conversion arithmetic, never before.
func newResult(value float64, unit string) ConversionResult {
	rounded := SmartRound(value)
	return ConversionResult{
		Value:     rounded,
		Unit:      unit,
		Formatted: FormatValue(rounded) + " " + unit,
	}
}

// MlToTsp converts milliliters to teaspoons.
func MlToTsp(ml float64) ConversionResult {
	return newResult(ml/MlPerTsp, LabelTeaspoons)
}

// TspToMl converts teaspoons to milliliters.
func TspToMl(tsp float64) ConversionResult {
	return newResult(tsp*MlPerTsp, LabelMilliliters)
}

// MlToTbsp converts milliliters to tablespoons.
func MlToTbsp(ml float64) ConversionResult {
	return newResult(ml/MlPerTbsp, LabelTablespoons)
}

// TbspToMl converts tablespoons to milliliters.
func TbspToMl(tbsp float64) ConversionResult {
	return newResult(tbsp*MlPerTbsp, LabelMilliliters)
}

// MlToFlOz converts milliliters to fluid ounces.
func MlToFlOz(ml float64) ConversionResult {
	return newResult(ml/MlPerFlOz, LabelFluidOunces)
}

// FlOzToMl converts fluid ounces to milliliters.
func FlOzToMl(flOz float64) ConversionResult {
	return newResult(flOz*MlPerFlOz, LabelMilliliters)
}

// KgToLbs converts kilograms to pounds.
func KgToLbs(kg float64) ConversionResult {
	return newResult(kg*LbsPerKg, LabelPounds)
}

// LbsToKg converts pounds to kilograms.
func LbsToKg(lbs float64) ConversionResult {
	return newResult(lbs*KgPerLb, LabelKilograms)
}

// toMilliliters expresses a volume in milliliters. Unrecognized units are
// treated as milliliters already.
func toMilliliters(value float64, from VolumeUnit) float64 {
	switch from {
	case Teaspoons:
		return value * MlPerTsp
	case Tablespoons:
		return value * MlPerTbsp
	case FluidOunces:
		return value * MlPerFlOz
	default:
		return value
	}
}

// ConvertVolume converts between any two supported volume units, pivoting
// through milliliters. Same-unit conversions short-circuit to the
// smart-rounded input so no precision is lost to an unnecessary round trip.
func ConvertVolume(value float64, from, to VolumeUnit) ConversionResult {
	if from == to {
		return newResult(value, string(to))
	}

	ml := toMilliliters(value, from)
	switch to {
	case Teaspoons:
		return MlToTsp(ml)
	case Tablespoons:
		return MlToTbsp(ml)
	case FluidOunces:
		return MlToFlOz(ml)
	default:
		return newResult(ml, LabelMilliliters)
	}
}

// ConvertWeight converts between kilograms and pounds. Same-unit conversions
// short-circuit to the smart-rounded input.
func ConvertWeight(value float64, from, to WeightUnit) ConversionResult {
	if from == to {
		return newResult(value, string(to))
	}
	if to == Pounds {
		return KgToLbs(value)
	}
	return LbsToKg(value)
}

// VolumeInSystem expresses a milliliter magnitude in the requested system.
// Metric returns the value in milliliters. Imperial picks the most readable
// unit by magnitude: teaspoons while the tablespoon-expressed value is below
// 3, then tablespoons while the fluid-ounce-expressed value is below 4, then
// fluid ounces. The tablespoon threshold is always checked first.
func VolumeInSystem(ml float64, system System) ConversionResult {
	if system != Imperial {
		return newResult(ml, LabelMilliliters)
	}

	if ml/MlPerTbsp < 3 {
		return MlToTsp(ml)
	}
	if ml/MlPerFlOz < 4 {
		return MlToTbsp(ml)
	}
	return MlToFlOz(ml)
}

// WeightInSystem expresses a kilogram magnitude in the requested system.
func WeightInSystem(kg float64, system System) ConversionResult {
	if system != Imperial {
		return newResult(kg, LabelKilograms)
	}
	return KgToLbs(kg)
}

// FormatVolumeWithEquivalent renders a milliliter value with its imperial
// equivalent in parentheses, e.g. "15 mL (3 tsp)".
func FormatVolumeWithEquivalent(ml float64) string {
	imperial := VolumeInSystem(ml, Imperial)
	return FormatValue(SmartRound(ml)) + " " + LabelMilliliters + " (" + imperial.Formatted + ")"
}

// FormatWeightWithEquivalent renders a kilogram value with its imperial
// equivalent in parentheses, e.g. "70 kg (154.3 lbs)".
func FormatWeightWithEquivalent(kg float64) string {
	imperial := WeightInSystem(kg, Imperial)
	return FormatValue(SmartRound(kg)) + " " + LabelKilograms + " (" + imperial.Formatted + ")"
}
