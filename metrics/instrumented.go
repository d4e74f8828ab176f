package metrics

import (
	"github.com/livnyhealth/dosing-engine/dosing"
	"github.com/livnyhealth/dosing-engine/dosing/entities"
	"github.com/livnyhealth/dosing-engine/interfaces"
	"github.com/livnyhealth/dosing-engine/units"
)

// Compile-time checks to ensure the instrumented wrappers implement the
// engine contracts
var (
	_ interfaces.QuantityCalculator = (*InstrumentedCalculator)(nil)
	_ interfaces.DosingParser       = (*InstrumentedCalculator)(nil)
	_ interfaces.UnitConverter      = (*InstrumentedConverter)(nil)
)

// InstrumentedCalculator counts calculations and parser outcomes around the
// pure dosing functions. Results are identical to the wrapped calculator's.
type InstrumentedCalculator struct {
	calc *dosing.Calculator
}

// NewInstrumentedCalculator creates a calculator that records metrics
func NewInstrumentedCalculator() *InstrumentedCalculator {
	return &InstrumentedCalculator{calc: dosing.NewCalculator()}
}

// CalculateQuantity implements the QuantityCalculator interface
func (c *InstrumentedCalculator) CalculateQuantity(frequencyCode string, durationDays int, dosesPerAdmin float64, form entities.Form) entities.QuantityResult {
	result := c.calc.CalculateQuantity(frequencyCode, durationDays, dosesPerAdmin, form)

	QuantityCalculationsTotal.WithLabelValues(string(form)).Inc()
	if result.IsEstimate {
		EstimateResultsTotal.Inc()
	}

	return result
}

// Frequencies implements the QuantityCalculator interface
func (c *InstrumentedCalculator) Frequencies() []entities.FrequencyOption {
	return c.calc.Frequencies()
}

// ParseDosesPerAdmin implements the DosingParser interface
func (c *InstrumentedCalculator) ParseDosesPerAdmin(dosingText string, form entities.Form) int {
	return c.calc.ParseDosesPerAdmin(dosingText, form)
}

// ParseFrequencyFromDosing implements the DosingParser interface
func (c *InstrumentedCalculator) ParseFrequencyFromDosing(dosingText string) string {
	code := c.calc.ParseFrequencyFromDosing(dosingText)
	if code == "" {
		FrequencyUnmatchedTotal.Inc()
	}
	return code
}

// InstrumentedConverter counts conversions by target unit around the pure
// unit conversion functions.
type InstrumentedConverter struct {
	conv units.Converter
}

// NewInstrumentedConverter creates a converter that records metrics
func NewInstrumentedConverter() *InstrumentedConverter {
	return &InstrumentedConverter{}
}

// ConvertVolume implements the UnitConverter interface
func (c *InstrumentedConverter) ConvertVolume(value float64, from, to units.VolumeUnit) units.ConversionResult {
	result := c.conv.ConvertVolume(value, from, to)
	UnitConversionsTotal.WithLabelValues(result.Unit).Inc()
	return result
}

// ConvertWeight implements the UnitConverter interface
func (c *InstrumentedConverter) ConvertWeight(value float64, from, to units.WeightUnit) units.ConversionResult {
	result := c.conv.ConvertWeight(value, from, to)
	UnitConversionsTotal.WithLabelValues(result.Unit).Inc()
	return result
}

// VolumeInSystem implements the UnitConverter interface
func (c *InstrumentedConverter) VolumeInSystem(ml float64, system units.System) units.ConversionResult {
	result := c.conv.VolumeInSystem(ml, system)
	UnitConversionsTotal.WithLabelValues(result.Unit).Inc()
	return result
}

// WeightInSystem implements the UnitConverter interface
func (c *InstrumentedConverter) WeightInSystem(kg float64, system units.System) units.ConversionResult {
	result := c.conv.WeightInSystem(kg, system)
	UnitConversionsTotal.WithLabelValues(result.Unit).Inc()
	return result
}
