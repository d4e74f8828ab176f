package regimen

// dosingOptions maps a strength value (as written in the medication name) to
// the common dosing texts for it. The defaultKey entry is the fallback when
// no strength matches.
type dosingOptions map[string][]string

// defaultKey selects a drug's fallback dosing options.
const defaultKey = "_default"

// drugNames fixes the matching order for drugs whose names overlap (e.g.
// "amoxicillin" is matched before "amoxicillin/clavulanate"), so lookups are
// deterministic.
var drugNames = []string{
	"amoxicillin",
	"lisinopril",
	"metformin",
	"atorvastatin",
	"omeprazole",
	"amlodipine",
	"gabapentin",
	"prednisone",
	"azithromycin",
	"ciprofloxacin",
	"albuterol",
	"hydrocodone",
	"oxycodone",
	"levothyroxine",
	"losartan",
	"furosemide",
	"sertraline",
	"escitalopram",
	"montelukast",
	"pantoprazole",
	"ibuprofen",
	"acetaminophen",
	"metoprolol",
	"carvedilol",
	"warfarin",
	"apixaban",
	"clopidogrel",
	"simvastatin",
	"pravastatin",
	"rosuvastatin",
	"tramadol",
	"cyclobenzaprine",
	"meloxicam",
	"naproxen",
	"doxycycline",
	"cephalexin",
	"augmentin",
	"amoxicillin/clavulanate",
	"fluticasone",
	"cetirizine",
	"loratadine",
	"diphenhydramine",
}

// commonDosingPatterns holds typical dosing regimens keyed by generic drug
// name (lower case), then by strength.
var commonDosingPatterns = map[string]dosingOptions{
	"amoxicillin": {
		"250":      {"250mg TID", "250mg BID"},
		"500":      {"500mg TID", "500mg BID"},
		"875":      {"875mg BID"},
		defaultKey: {"500mg TID", "500mg BID"},
	},
	"lisinopril": {
		"5":        {"5mg daily"},
		"10":       {"10mg daily"},
		"20":       {"20mg daily"},
		"40":       {"40mg daily"},
		defaultKey: {"10mg daily"},
	},
	"metformin": {
		"500":      {"500mg BID", "500mg daily"},
		"850":      {"850mg BID"},
		"1000":     {"1000mg BID"},
		defaultKey: {"500mg BID"},
	},
	"atorvastatin": {
		"10":       {"10mg daily at bedtime"},
		"20":       {"20mg daily at bedtime"},
		"40":       {"40mg daily at bedtime"},
		"80":       {"80mg daily at bedtime"},
		defaultKey: {"20mg daily at bedtime"},
	},
	"omeprazole": {
		"20":       {"20mg daily before breakfast"},
		"40":       {"40mg daily before breakfast"},
		defaultKey: {"20mg daily before breakfast"},
	},
	"amlodipine": {
		"5":        {"5mg daily"},
		"10":       {"10mg daily"},
		defaultKey: {"5mg daily"},
	},
	"gabapentin": {
		"100":      {"100mg TID"},
		"300":      {"300mg TID"},
		"400":      {"400mg TID"},
		defaultKey: {"300mg TID"},
	},
	"prednisone": {
		defaultKey: {"5mg daily", "Taper per instructions"},
	},
	"azithromycin": {
		"250":      {"500mg day 1, then 250mg days 2-5"},
		defaultKey: {"500mg day 1, then 250mg days 2-5"},
	},
	"ciprofloxacin": {
		"250":      {"250mg BID"},
		"500":      {"500mg BID"},
		"750":      {"750mg BID"},
		defaultKey: {"500mg BID"},
	},
	"albuterol": {
		defaultKey: {"2 puffs every 4-6 hours PRN"},
	},
	"hydrocodone": {
		defaultKey: {"1-2 tablets every 4-6 hours PRN"},
	},
	"oxycodone": {
		"5":        {"5mg every 4-6 hours PRN"},
		"10":       {"10mg every 4-6 hours PRN"},
		defaultKey: {"5mg every 4-6 hours PRN"},
	},
	"levothyroxine": {
		defaultKey: {"Take daily on empty stomach"},
	},
	"losartan": {
		"25":       {"25mg daily"},
		"50":       {"50mg daily"},
		"100":      {"100mg daily"},
		defaultKey: {"50mg daily"},
	},
	"furosemide": {
		"20":       {"20mg daily", "20mg BID"},
		"40":       {"40mg daily", "40mg BID"},
		defaultKey: {"40mg daily"},
	},
	"sertraline": {
		"25":       {"25mg daily"},
		"50":       {"50mg daily"},
		"100":      {"100mg daily"},
		defaultKey: {"50mg daily"},
	},
	"escitalopram": {
		"5":        {"5mg daily"},
		"10":       {"10mg daily"},
		"20":       {"20mg daily"},
		defaultKey: {"10mg daily"},
	},
	"montelukast": {
		"10":       {"10mg daily at bedtime"},
		defaultKey: {"10mg daily at bedtime"},
	},
	"pantoprazole": {
		"20":       {"20mg daily before breakfast"},
		"40":       {"40mg daily before breakfast"},
		defaultKey: {"40mg daily before breakfast"},
	},
	"ibuprofen": {
		"200":      {"200-400mg every 4-6 hours PRN"},
		"400":      {"400mg every 4-6 hours PRN"},
		"600":      {"600mg TID with food"},
		"800":      {"800mg TID with food"},
		defaultKey: {"400mg every 4-6 hours PRN"},
	},
	"acetaminophen": {
		"325":      {"325-650mg every 4-6 hours PRN"},
		"500":      {"500-1000mg every 4-6 hours PRN"},
		defaultKey: {"500-1000mg every 4-6 hours PRN"},
	},
	"metoprolol": {
		"25":       {"25mg BID"},
		"50":       {"50mg BID"},
		"100":      {"100mg BID"},
		defaultKey: {"50mg BID"},
	},
	"carvedilol": {
		"3.125":    {"3.125mg BID"},
		"6.25":     {"6.25mg BID"},
		"12.5":     {"12.5mg BID"},
		"25":       {"25mg BID"},
		defaultKey: {"6.25mg BID"},
	},
	"warfarin": {
		defaultKey: {"Per INR monitoring"},
	},
	"apixaban": {
		"2.5":      {"2.5mg BID"},
		"5":        {"5mg BID"},
		defaultKey: {"5mg BID"},
	},
	"clopidogrel": {
		"75":       {"75mg daily"},
		defaultKey: {"75mg daily"},
	},
	"simvastatin": {
		"10":       {"10mg daily at bedtime"},
		"20":       {"20mg daily at bedtime"},
		"40":       {"40mg daily at bedtime"},
		defaultKey: {"20mg daily at bedtime"},
	},
	"pravastatin": {
		"10":       {"10mg daily at bedtime"},
		"20":       {"20mg daily at bedtime"},
		"40":       {"40mg daily at bedtime"},
		defaultKey: {"40mg daily at bedtime"},
	},
	"rosuvastatin": {
		"5":        {"5mg daily"},
		"10":       {"10mg daily"},
		"20":       {"20mg daily"},
		defaultKey: {"10mg daily"},
	},
	"tramadol": {
		"50":       {"50mg every 4-6 hours PRN"},
		defaultKey: {"50mg every 4-6 hours PRN"},
	},
	"cyclobenzaprine": {
		"5":        {"5mg TID"},
		"10":       {"10mg TID"},
		defaultKey: {"10mg TID"},
	},
	"meloxicam": {
		"7.5":      {"7.5mg daily"},
		"15":       {"15mg daily"},
		defaultKey: {"15mg daily"},
	},
	"naproxen": {
		"250":      {"250mg BID"},
		"500":      {"500mg BID"},
		defaultKey: {"500mg BID"},
	},
	"doxycycline": {
		"100":      {"100mg BID", "100mg daily"},
		defaultKey: {"100mg BID"},
	},
	"cephalexin": {
		"250":      {"250mg QID"},
		"500":      {"500mg QID", "500mg BID"},
		defaultKey: {"500mg QID"},
	},
	"augmentin": {
		"500":      {"500/125mg BID"},
		"875":      {"875/125mg BID"},
		defaultKey: {"875/125mg BID"},
	},
	"amoxicillin/clavulanate": {
		"500":      {"500/125mg BID"},
		"875":      {"875/125mg BID"},
		defaultKey: {"875/125mg BID"},
	},
	"fluticasone": {
		defaultKey: {"1-2 sprays each nostril daily"},
	},
	"cetirizine": {
		"10":       {"10mg daily"},
		defaultKey: {"10mg daily"},
	},
	"loratadine": {
		"10":       {"10mg daily"},
		defaultKey: {"10mg daily"},
	},
	"diphenhydramine": {
		"25":       {"25-50mg at bedtime PRN"},
		"50":       {"50mg at bedtime PRN"},
		defaultKey: {"25-50mg at bedtime PRN"},
	},
}

// Drug categories for default treatment duration.
var (
	antibiotics = map[string]bool{
		"amoxicillin":             true,
		"azithromycin":            true,
		"ciprofloxacin":           true,
		"doxycycline":             true,
		"cephalexin":              true,
		"augmentin":               true,
		"amoxicillin/clavulanate": true,
	}

	shortTermSteroids = map[string]bool{
		"prednisone": true,
	}

	prnMedications = map[string]bool{
		"hydrocodone":   true,
		"oxycodone":     true,
		"ibuprofen":     true,
		"acetaminophen": true,
		"albuterol":     true,
		"tramadol":      true,
	}
)
