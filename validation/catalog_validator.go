// Package validation provides integrity checks for the engine's fixed
// catalogs and the clamping policy for numeric inputs whose upstream
// behavior is undefined (negative or non-finite durations and dose counts).
package validation

import (
	"fmt"
	"math"
	"strings"

	"github.com/livnyhealth/dosing-engine/dosing"
	"github.com/livnyhealth/dosing-engine/dosing/entities"
	"github.com/livnyhealth/dosing-engine/interfaces"
	"github.com/livnyhealth/dosing-engine/logging"
)

// Compile-time check to ensure CatalogValidatorImpl implements the
// interfaces.CatalogValidator interface
var _ interfaces.CatalogValidator = (*CatalogValidatorImpl)(nil)

// CatalogValidatorImpl implements the interfaces.CatalogValidator interface
type CatalogValidatorImpl struct{}

// NewCatalogValidator creates a new catalog validator
func NewCatalogValidator() interfaces.CatalogValidator {
	return &CatalogValidatorImpl{}
}

// ValidateCatalog checks the structural invariants of a frequency catalog:
// non-empty, unique case-normalized codes, non-empty labels, and a strictly
// positive administrations-per-day on every entry.
func (v *CatalogValidatorImpl) ValidateCatalog(options []entities.FrequencyOption) error {
	if len(options) == 0 {
		return fmt.Errorf("frequency catalog is empty")
	}

	seen := make(map[string]bool, len(options))
	for _, opt := range options {
		if strings.TrimSpace(opt.Code) == "" {
			return fmt.Errorf("frequency option with empty code (label %q)", opt.Label)
		}

		upper := strings.ToUpper(opt.Code)
		if seen[upper] {
			logging.Error("Duplicate frequency code detected", "code", opt.Code)
			return fmt.Errorf("duplicate frequency code: %s", opt.Code)
		}
		seen[upper] = true

		if strings.TrimSpace(opt.Label) == "" {
			return fmt.Errorf("frequency option %s has an empty label", opt.Code)
		}

		// The > 0 comparison also rejects NaN.
		if !(opt.AdministrationsPerDay > 0) || math.IsInf(opt.AdministrationsPerDay, 1) {
			return fmt.Errorf("frequency option %s has invalid administrations per day: %v",
				opt.Code, opt.AdministrationsPerDay)
		}
	}

	return nil
}

// ClampDuration applies the engine's numeric policy to a treatment duration:
// negative durations clamp to zero, so they yield a zero quantity.
func (v *CatalogValidatorImpl) ClampDuration(days int) int {
	if days < 0 {
		return 0
	}
	return days
}

// ClampDoses applies the engine's numeric policy to a per-administration
// dose count: negative and non-finite values clamp to zero.
func (v *CatalogValidatorImpl) ClampDoses(doses float64) float64 {
	if doses < 0 || math.IsNaN(doses) || math.IsInf(doses, 0) {
		return 0
	}
	return doses
}

// ValidateDefaultCatalog validates the engine's built-in frequency catalog.
// It is expected to always pass; a failure means the catalog data was edited
// into an inconsistent state.
func ValidateDefaultCatalog() error {
	validator := &CatalogValidatorImpl{}
	if err := validator.ValidateCatalog(dosing.Frequencies()); err != nil {
		return fmt.Errorf("built-in frequency catalog is invalid: %w", err)
	}
	return nil
}
