package interfaces_test

import (
	"testing"

	"github.com/livnyhealth/dosing-engine/dosing"
	"github.com/livnyhealth/dosing-engine/dosing/entities"
	"github.com/livnyhealth/dosing-engine/interfaces"
	"github.com/livnyhealth/dosing-engine/metrics"
	"github.com/livnyhealth/dosing-engine/units"
	"github.com/livnyhealth/dosing-engine/validation"
)

// mockCalculator is a minimal QuantityCalculator for callers that stub the
// engine out in their own tests.
type mockCalculator struct {
	lastCode string
}

func (m *mockCalculator) CalculateQuantity(frequencyCode string, durationDays int, dosesPerAdmin float64, form entities.Form) entities.QuantityResult {
	m.lastCode = frequencyCode
	return entities.QuantityResult{Quantity: 1, Unit: dosing.UnitForForm(form)}
}

func (m *mockCalculator) Frequencies() []entities.FrequencyOption {
	return []entities.FrequencyOption{{Code: "daily", Label: "Once daily", AdministrationsPerDay: 1}}
}

func TestMockCalculatorSatisfiesContract(t *testing.T) {
	var calc interfaces.QuantityCalculator = &mockCalculator{}

	result := calc.CalculateQuantity("TID", 10, 1, entities.FormTablet)
	if result.Unit != "tablets" {
		t.Errorf("Expected tablets, got %q", result.Unit)
	}
	if len(calc.Frequencies()) != 1 {
		t.Errorf("Expected one frequency from mock")
	}
}

func TestEngineImplementationsSatisfyContracts(t *testing.T) {
	var calc interfaces.QuantityCalculator = dosing.NewCalculator()
	var parser interfaces.DosingParser = dosing.NewCalculator()
	var converter interfaces.UnitConverter = units.NewConverter()
	var instrumented interfaces.QuantityCalculator = metrics.NewInstrumentedCalculator()
	var validator interfaces.CatalogValidator = validation.NewCatalogValidator()

	if got := calc.CalculateQuantity("TID", 10, 1, entities.FormTablet); got.Quantity != 30 {
		t.Errorf("Expected 30, got %d", got.Quantity)
	}
	if got := parser.ParseFrequencyFromDosing("500mg TID"); got != "TID" {
		t.Errorf("Expected TID, got %q", got)
	}
	if got := converter.VolumeInSystem(10, units.Imperial); got.Unit != "tsp" {
		t.Errorf("Expected tsp, got %q", got.Unit)
	}
	if got := instrumented.CalculateQuantity("TID", 10, 1, entities.FormTablet); got.Quantity != 30 {
		t.Errorf("Expected instrumented wrapper to match, got %d", got.Quantity)
	}
	if err := validator.ValidateCatalog(calc.Frequencies()); err != nil {
		t.Errorf("Expected catalog to validate, got %v", err)
	}
}
