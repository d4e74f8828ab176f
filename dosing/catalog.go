// Package dosing owns the frequency vocabulary, parses dosing free text into
// structured values, and computes total dispense quantities. Every operation
// is pure and total: unmapped inputs degrade to documented defaults so a
// prescribing workflow is never blocked on a parsing failure.
package dosing

import (
	"strings"

	"github.com/livnyhealth/dosing-engine/dosing/entities"
)

// Frequency codes in their canonical display casing. Lookups are
// case-insensitive.
const (
	CodeDaily  = "daily"
	CodeBID    = "BID"
	CodeTID    = "TID"
	CodeQID    = "QID"
	CodeQ4to6H = "q4-6h"
	CodeQ6H    = "q6h"
	CodeQ8H    = "q8h"
	CodeQ12H   = "q12h"
	CodeWeekly = "weekly"
	CodePRN    = "prn"
)

// PRNAdministrationsPerDay is the conservative daily ceiling assumed for
// as-needed dosing. It is a dispensing policy choice, not a clinical
// protocol value, and quantities derived from it carry the estimate flag.
const PRNAdministrationsPerDay = 6

// frequencyCatalog is the fixed, ordered catalog exposed to the UI. The
// estimate flag marks exactly the two inherently approximate entries (the
// 4-6 hour range and PRN); it is catalog data, not derived from the
// administrations-per-day value.
var frequencyCatalog = []entities.FrequencyOption{
	{Code: CodeDaily, Label: "Once daily", AdministrationsPerDay: 1},
	{Code: CodeBID, Label: "Twice daily (BID)", AdministrationsPerDay: 2},
	{Code: CodeTID, Label: "Three times daily (TID)", AdministrationsPerDay: 3},
	{Code: CodeQID, Label: "Four times daily (QID)", AdministrationsPerDay: 4},
	{Code: CodeQ4to6H, Label: "Every 4-6 hours", AdministrationsPerDay: 6, Estimate: true},
	{Code: CodeQ6H, Label: "Every 6 hours", AdministrationsPerDay: 4},
	{Code: CodeQ8H, Label: "Every 8 hours", AdministrationsPerDay: 3},
	{Code: CodeQ12H, Label: "Every 12 hours", AdministrationsPerDay: 2},
	{Code: CodeWeekly, Label: "Once weekly", AdministrationsPerDay: 1.0 / 7.0},
	{Code: CodePRN, Label: "As needed (PRN)", AdministrationsPerDay: PRNAdministrationsPerDay, Estimate: true},
}

// frequencyByCode indexes the catalog by upper-cased code for O(1) lookups.
var frequencyByCode = func() map[string]entities.FrequencyOption {
	m := make(map[string]entities.FrequencyOption, len(frequencyCatalog))
	for _, opt := range frequencyCatalog {
		m[strings.ToUpper(opt.Code)] = opt
	}
	return m
}()

// Frequencies returns the catalog in its fixed display order. The slice is a
// copy; callers may not alter the catalog.
func Frequencies() []entities.FrequencyOption {
	out := make([]entities.FrequencyOption, len(frequencyCatalog))
	copy(out, frequencyCatalog)
	return out
}

// LookupFrequency finds a catalog entry by code, ignoring case.
func LookupFrequency(code string) (entities.FrequencyOption, bool) {
	opt, ok := frequencyByCode[strings.ToUpper(code)]
	return opt, ok
}

// dispenseUnits is the total mapping from medication form to the count unit
// dispensed for it.
var dispenseUnits = map[entities.Form]string{
	entities.FormTablet:    "tablets",
	entities.FormCapsule:   "capsules",
	entities.FormLiquid:    "mL",
	entities.FormInjection: "doses",
	entities.FormTopical:   "applications",
	entities.FormInhaler:   "puffs",
}

// UnitForForm returns the dispense unit for a form. Unknown forms resolve to
// the generic "units" label rather than failing.
func UnitForForm(form entities.Form) string {
	if unit, ok := dispenseUnits[form]; ok {
		return unit
	}
	return "units"
}
