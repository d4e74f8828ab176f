package dosing

import (
	"sync"
	"testing"

	"github.com/livnyhealth/dosing-engine/dosing/entities"
)

func TestCalculateQuantityTablets(t *testing.T) {
	got := CalculateQuantity("TID", 10, 1, entities.FormTablet)

	if got.Quantity != 30 {
		t.Errorf("Expected quantity 30, got %d", got.Quantity)
	}
	if got.Unit != "tablets" {
		t.Errorf("Expected unit tablets, got %q", got.Unit)
	}
	if got.IsEstimate {
		t.Error("Expected TID quantity to be exact, not an estimate")
	}
	if got.ImperialEquivalent != nil {
		t.Error("Expected no imperial equivalent for tablets")
	}
}

func TestCalculateQuantityPRNInhaler(t *testing.T) {
	// 2 puffs x 6/day ceiling x 5 days
	got := CalculateQuantity("prn", 5, 2, entities.FormInhaler)

	if got.Quantity != 60 {
		t.Errorf("Expected quantity 60, got %d", got.Quantity)
	}
	if got.Unit != "puffs" {
		t.Errorf("Expected unit puffs, got %q", got.Unit)
	}
	if !got.IsEstimate {
		t.Error("Expected PRN quantity to carry the estimate flag")
	}
}

func TestCalculateQuantityCeilsUp(t *testing.T) {
	// weekly: 1/7 per day x 10 days = 1.43 administrations, dispensed as 2.
	got := CalculateQuantity("weekly", 10, 1, entities.FormTablet)
	if got.Quantity != 2 {
		t.Errorf("Expected weekly dose over 10 days to round up to 2, got %d", got.Quantity)
	}

	// Exact products stay exact: 1/7 x 14 = 2.
	got = CalculateQuantity("weekly", 14, 1, entities.FormTablet)
	if got.Quantity != 2 {
		t.Errorf("Expected weekly dose over 14 days to be exactly 2, got %d", got.Quantity)
	}
}

func TestCalculateQuantityEstimateCodes(t *testing.T) {
	testCases := []struct {
		code     string
		estimate bool
	}{
		{"prn", true},
		{"PRN", true},
		{"q4-6h", true},
		{"Q4-6H", true},
		{"daily", false},
		{"BID", false},
		{"TID", false},
		{"QID", false},
		{"q6h", false},
		{"q8h", false},
		{"q12h", false},
		{"weekly", false},
		{"unknown-code", false},
	}

	for _, tc := range testCases {
		got := CalculateQuantity(tc.code, 5, 1, entities.FormTablet)
		if got.IsEstimate != tc.estimate {
			t.Errorf("%s: expected isEstimate=%v, got %v", tc.code, tc.estimate, got.IsEstimate)
		}
	}
}

func TestCalculateQuantityUnknownCodeDefaultsToDaily(t *testing.T) {
	got := CalculateQuantity("q99h", 10, 1, entities.FormTablet)
	if got.Quantity != 10 {
		t.Errorf("Expected unknown code to default to 1/day (quantity 10), got %d", got.Quantity)
	}
}

func TestCalculateQuantityZeroDuration(t *testing.T) {
	got := CalculateQuantity("TID", 0, 1, entities.FormTablet)
	if got.Quantity != 0 {
		t.Errorf("Expected zero duration to yield zero quantity, got %d", got.Quantity)
	}
}

func TestCalculateQuantityClampsNegativeInputs(t *testing.T) {
	got := CalculateQuantity("TID", -5, 1, entities.FormTablet)
	if got.Quantity != 0 {
		t.Errorf("Expected negative duration to clamp to zero quantity, got %d", got.Quantity)
	}

	got = CalculateQuantity("TID", 5, -2, entities.FormTablet)
	if got.Quantity != 0 {
		t.Errorf("Expected negative dose count to clamp to zero quantity, got %d", got.Quantity)
	}
}

func TestCalculateQuantityLiquidEquivalent(t *testing.T) {
	// 5 mL x 3/day x 10 days = 150 mL
	got := CalculateQuantity("TID", 10, 5, entities.FormLiquid)

	if got.Quantity != 150 {
		t.Errorf("Expected 150 mL, got %d", got.Quantity)
	}
	if got.Unit != "mL" {
		t.Errorf("Expected unit mL, got %q", got.Unit)
	}
	if got.ImperialEquivalent == nil {
		t.Fatal("Expected liquid form to carry an imperial equivalent")
	}
	// 150 mL = 5.07 fl oz expressed, 10 tbsp
	if got.ImperialEquivalent.Unit != "fl oz" {
		t.Errorf("Expected fl oz equivalent for 150 mL, got %q", got.ImperialEquivalent.Unit)
	}
	if got.ImperialEquivalent.Value != 5.07 {
		t.Errorf("Expected 5.07 fl oz, got %v", got.ImperialEquivalent.Value)
	}
}

func TestCalculateQuantityLiquidSmallVolume(t *testing.T) {
	// 5 mL x 2/day x 1 day = 10 mL -> 2 tsp
	got := CalculateQuantity("BID", 1, 5, entities.FormLiquid)
	if got.ImperialEquivalent == nil {
		t.Fatal("Expected liquid form to carry an imperial equivalent")
	}
	if got.ImperialEquivalent.Formatted != "2 tsp" {
		t.Errorf("Expected '2 tsp', got %q", got.ImperialEquivalent.Formatted)
	}
}

func TestCalculateQuantityCaseInsensitiveCode(t *testing.T) {
	upper := CalculateQuantity("TID", 10, 1, entities.FormTablet)
	lower := CalculateQuantity("tid", 10, 1, entities.FormTablet)
	if upper.Quantity != lower.Quantity {
		t.Errorf("Expected case-insensitive code resolution, got %d vs %d", upper.Quantity, lower.Quantity)
	}
}

func TestCalculatorImplementsContracts(t *testing.T) {
	calc := NewCalculator()

	if got := calc.ParseDosesPerAdmin("1-2 tablets every 4-6 hours", entities.FormTablet); got != 2 {
		t.Errorf("Expected 2 from parser, got %d", got)
	}
	if got := calc.ParseFrequencyFromDosing("500mg TWICE daily"); got != "BID" {
		t.Errorf("Expected BID, got %q", got)
	}
	if got := calc.CalculateQuantity("TID", 10, 1, entities.FormTablet); got.Quantity != 30 {
		t.Errorf("Expected quantity 30, got %d", got.Quantity)
	}
	if got := calc.Frequencies(); len(got) != 10 {
		t.Errorf("Expected 10 catalog entries, got %d", len(got))
	}
}

func TestCalculateQuantityReferentialTransparency(t *testing.T) {
	first := CalculateQuantity("q4-6h", 7, 2, entities.FormLiquid)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				got := CalculateQuantity("q4-6h", 7, 2, entities.FormLiquid)
				if got.Quantity != first.Quantity || got.Unit != first.Unit ||
					got.IsEstimate != first.IsEstimate ||
					*got.ImperialEquivalent != *first.ImperialEquivalent {
					t.Errorf("Concurrent call diverged: %+v vs %+v", got, first)
					return
				}
			}
		}()
	}
	wg.Wait()
}

func TestEndToEndDosingFlow(t *testing.T) {
	// Raw dosing text -> parsed values -> quantity, the way the UI layer
	// drives the engine.
	dosingText := "1-2 tablets every 4-6 hours PRN"

	doses := ParseDosesPerAdmin(dosingText, entities.FormTablet)
	code := ParseFrequencyFromDosing(dosingText)
	got := CalculateQuantity(code, 5, float64(doses), entities.FormTablet)

	if code != "q4-6h" {
		t.Fatalf("Expected q4-6h, got %q", code)
	}
	// 2 tablets x 6/day x 5 days
	if got.Quantity != 60 {
		t.Errorf("Expected 60 tablets, got %d", got.Quantity)
	}
	if !got.IsEstimate {
		t.Error("Expected ranged frequency to carry the estimate flag")
	}
}

func BenchmarkCalculateQuantity(b *testing.B) {
	for i := 0; i < b.N; i++ {
		CalculateQuantity("TID", 10, 1, entities.FormTablet)
	}
}
