package units

// Converter exposes the package-level conversion functions as a stateless
// struct, for callers that inject the converter as a dependency.
type Converter struct{}

// NewConverter creates a new Converter instance
func NewConverter() *Converter {
	return &Converter{}
}

// ConvertVolume converts between volume units via the milliliter pivot.
func (Converter) ConvertVolume(value float64, from, to VolumeUnit) ConversionResult {
	return ConvertVolume(value, from, to)
}

// ConvertWeight converts between kilograms and pounds.
func (Converter) ConvertWeight(value float64, from, to WeightUnit) ConversionResult {
	return ConvertWeight(value, from, to)
}

// VolumeInSystem expresses a milliliter magnitude in the requested system.
func (Converter) VolumeInSystem(ml float64, system System) ConversionResult {
	return VolumeInSystem(ml, system)
}

// WeightInSystem expresses a kilogram magnitude in the requested system.
func (Converter) WeightInSystem(kg float64, system System) ConversionResult {
	return WeightInSystem(kg, system)
}
