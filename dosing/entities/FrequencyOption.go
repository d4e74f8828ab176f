package entities

// FrequencyOption is one entry of the fixed frequency catalog. Code is the
// unique short identifier in its canonical display casing; lookups normalize
// to upper case. AdministrationsPerDay may be fractional (weekly dosing) or a
// conservative upper bound (PRN dosing).
type FrequencyOption struct {
	Code                  string  `json:"code"`
	Label                 string  `json:"label"`
	AdministrationsPerDay float64 `json:"administrationsPerDay"`
	Estimate              bool    `json:"estimate"`
}
