package dosing

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/livnyhealth/dosing-engine/dosing/entities"
)

// Pre-compiled patterns for dose extraction, compiled once at package
// initialization and reused for all parses.
var (
	// A range like "1-2 tablets": quantity assumes the upper bound.
	doseRangePattern = regexp.MustCompile(`(?i)(\d+)\s*-\s*(\d+)\s*(?:tablet|capsule|puff|dose)s?`)

	// A single count like "2 puffs".
	doseSinglePattern = regexp.MustCompile(`(?i)(\d+)\s*(?:tablet|capsule|puff|dose)s?`)

	// Inhaler-specific actuation count like "2 puffs per actuation".
	puffPattern = regexp.MustCompile(`(?i)(\d+)\s*puff`)
)

// defaultInhalerPuffs is the clinically conventional assumption when an
// inhaler's dosing text carries no explicit puff count.
const defaultInhalerPuffs = 2

// ParseDosesPerAdmin extracts how many discrete units (tablets, capsules,
// puffs, doses) are taken per administration. A numeric range resolves to its
// upper bound so quantities never under-dispense. Absence of any match
// resolves to a default, never an error: 2 puffs for inhalers, otherwise 1.
func ParseDosesPerAdmin(dosingText string, form entities.Form) int {
	if m := doseRangePattern.FindStringSubmatch(dosingText); m != nil {
		if upper, err := strconv.Atoi(m[2]); err == nil {
			return upper
		}
	}

	if m := doseSinglePattern.FindStringSubmatch(dosingText); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			return n
		}
	}

	if form == entities.FormInhaler {
		if m := puffPattern.FindStringSubmatch(dosingText); m != nil {
			if n, err := strconv.Atoi(m[1]); err == nil {
				return n
			}
		}
		return defaultInhalerPuffs
	}

	// One tablet/capsule per administration is the baseline assumption for
	// forms with no explicit unit count.
	return 1
}

// frequencyMatchers pairs keyword fragments with catalog codes. Order is the
// contract: fragments overlap (a string with both "TWICE" and "DAILY" must
// resolve to BID), so the first matching entry wins and scanning stops.
var frequencyMatchers = []struct {
	code     string
	keywords []string
}{
	{CodeTID, []string{"TID", "THREE TIMES"}},
	{CodeBID, []string{"BID", "TWICE"}},
	{CodeQID, []string{"QID", "FOUR TIMES"}},
	{CodeQ4to6H, []string{"EVERY 4-6", "Q4-6"}},
	{CodeQ6H, []string{"EVERY 6", "Q6H"}},
	{CodeQ8H, []string{"EVERY 8", "Q8H"}},
	{CodeQ12H, []string{"EVERY 12", "Q12H"}},
	{CodeWeekly, []string{"WEEKLY"}},
	{CodePRN, []string{"PRN", "AS NEEDED"}},
	{CodeDaily, []string{"DAILY", "ONCE"}},
}

// ParseFrequencyFromDosing scans the upper-cased dosing text for frequency
// keywords and returns the first matching catalog code, or "" when nothing
// matches. Callers treat "" as "leave frequency unset", never as an error.
func ParseFrequencyFromDosing(dosingText string) string {
	upper := strings.ToUpper(dosingText)
	for _, matcher := range frequencyMatchers {
		for _, keyword := range matcher.keywords {
			if strings.Contains(upper, keyword) {
				return matcher.code
			}
		}
	}
	return ""
}
