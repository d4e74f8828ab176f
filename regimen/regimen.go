// Package regimen supplies common dosing regimens and default treatment
// durations for known generic drugs, keyed by free-text medication names
// (e.g. "Amoxicillin 500 MG Oral Capsule"). Unknown medications resolve to
// empty options and the chronic default duration, never an error.
package regimen

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/livnyhealth/dosing-engine/config"
	"github.com/livnyhealth/dosing-engine/interfaces"
)

// Compile-time check to ensure Resolver implements RegimenSource
var _ interfaces.RegimenSource = (*Resolver)(nil)

// strengthPattern extracts the first numeric strength value from a
// medication name, with an optional MG/MCG/MG/ML suffix.
var strengthPattern = regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*(?:MG/ML|MCG|MG)?`)

// Default duration policy in days. Antibiotics run short courses, PRN and
// chronic medications get a 30-day supply.
const (
	DefaultAntibioticDays = 10
	DefaultSteroidDays    = 7
	DefaultPRNDays        = 30
	DefaultChronicDays    = 30
)

// Resolver answers common-dosing and default-duration lookups. The duration
// values are fixed at construction so a deployment can tune the policy via
// configuration without touching the drug tables.
type Resolver struct {
	antibioticDays int
	steroidDays    int
	prnDays        int
	chronicDays    int
}

// NewResolver creates a Resolver with the standard duration policy.
func NewResolver() *Resolver {
	return NewResolverWithPolicy(DefaultAntibioticDays, DefaultSteroidDays, DefaultPRNDays, DefaultChronicDays)
}

// NewResolverWithPolicy creates a Resolver with custom default durations.
// Non-positive values fall back to the standard policy.
func NewResolverWithPolicy(antibioticDays, steroidDays, prnDays, chronicDays int) *Resolver {
	r := &Resolver{
		antibioticDays: antibioticDays,
		steroidDays:    steroidDays,
		prnDays:        prnDays,
		chronicDays:    chronicDays,
	}
	if r.antibioticDays <= 0 {
		r.antibioticDays = DefaultAntibioticDays
	}
	if r.steroidDays <= 0 {
		r.steroidDays = DefaultSteroidDays
	}
	if r.prnDays <= 0 {
		r.prnDays = DefaultPRNDays
	}
	if r.chronicDays <= 0 {
		r.chronicDays = DefaultChronicDays
	}
	return r
}

// NewResolverFromConfig creates a Resolver with the configured duration
// policy.
func NewResolverFromConfig(cfg *config.Config) *Resolver {
	return NewResolverWithPolicy(cfg.AntibioticDays, cfg.SteroidDays, cfg.PRNDays, cfg.ChronicDays)
}

// normalizeName lower-cases a medication name and folds diacritics so brand
// spellings with accents still match the generic drug tables.
func normalizeName(name string) string {
	folder := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(folder, name)
	if err != nil {
		folded = name
	}
	return strings.ToLower(folded)
}

// matchDrug finds the first known generic drug whose name appears in the
// medication name. Match order is fixed so overlapping names resolve
// deterministically.
func matchDrug(medicationName string) (string, bool) {
	normalized := normalizeName(medicationName)
	for _, drug := range drugNames {
		if strings.Contains(normalized, drug) {
			return drug, true
		}
	}
	return "", false
}

// ExtractStrength returns the numeric strength value written in a medication
// name (e.g. "500" from "Amoxicillin 500 MG Oral Capsule"), and whether one
// was found.
func ExtractStrength(medicationName string) (string, bool) {
	m := strengthPattern.FindStringSubmatch(medicationName)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// CommonDosing returns the typical dosing texts for a medication name,
// preferring the strength-specific options and falling back to the drug's
// default. Unknown medications return an empty slice.
func (r *Resolver) CommonDosing(medicationName string) []string {
	drug, ok := matchDrug(medicationName)
	if !ok {
		return []string{}
	}

	options := commonDosingPatterns[drug]
	if strength, found := ExtractStrength(medicationName); found {
		if dosing, exists := options[strength]; exists {
			return append([]string(nil), dosing...)
		}
	}

	return append([]string(nil), options[defaultKey]...)
}

// DefaultDuration returns the default treatment duration in days for a
// medication name based on its drug class.
func (r *Resolver) DefaultDuration(medicationName string) int {
	drug, _ := matchDrug(medicationName)

	switch {
	case antibiotics[drug]:
		return r.antibioticDays
	case shortTermSteroids[drug]:
		return r.steroidDays
	case prnMedications[drug]:
		return r.prnDays
	default:
		return r.chronicDays
	}
}

// defaultResolver backs the package-level convenience functions.
var defaultResolver = NewResolver()

// CommonDosing returns common dosing texts using the standard policy.
func CommonDosing(medicationName string) []string {
	return defaultResolver.CommonDosing(medicationName)
}

// DefaultDuration returns the default duration using the standard policy.
func DefaultDuration(medicationName string) int {
	return defaultResolver.DefaultDuration(medicationName)
}
