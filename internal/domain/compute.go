package domain

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

const (
	// roofRunoffCoeff is the collectible share of rainfall on a hard roof.
	roofRunoffCoeff = 0.8
	// openInfiltrationFactor is the recharge share of rainfall on open ground.
	openInfiltrationFactor = 0.3

	// dailyDemandLitersPerPerson is the CPHEEO urban supply norm.
	dailyDemandLitersPerPerson = 135
)

// baseCosts is the installation base cost in INR per structure type.
// Unlisted structures fall back to a generic 30,000 base.
var baseCosts = map[string]float64{
	"Recharge Pit (small)":             20000,
	"Recharge Pit (large, reinforced)": 40000,
	"Recharge Trench (medium)":         60000,
	"Recharge Shaft":                   100000,
	"Deep Bore Recharge Shaft":         150000,
	"Recharge Shaft with Trench":       180000,
	"Modular Tank (compact)":           25000,
}

// CalculatePotential estimates the annual harvest potential in liters from
// rainfall and site geometry. Millimeters times square meters yields liters.
func CalculatePotential(site SiteInput, rainfallMM float64) float64 {
	roof := rainfallMM * site.RoofArea * roofRunoffCoeff
	open := rainfallMM * site.OpenSpace * openInfiltrationFactor
	return round2(roof + open)
}

// RecommendStructure picks a recharge structure from potential volume and
// available open space. The selection bands are documented in the package
// comment; first matching row wins.
func RecommendStructure(site SiteInput, potential float64) string {
	switch {
	case potential < 50000:
		if site.OpenSpace < 20 {
			return "Modular Tank (compact)"
		}
		return "Recharge Pit (small)"
	case potential <= 200000:
		if site.OpenSpace >= 50 {
			return "Recharge Trench (medium)"
		}
		return "Recharge Pit (large, reinforced)"
	default:
		if site.OpenSpace >= 100 {
			return "Recharge Shaft with Trench"
		}
		return "Deep Bore Recharge Shaft"
	}
}

// EstimateStructureDimensions sizes the recommended structure as a
// human-readable design guideline. Matching is on name substring in order
// Pit → Trench → Shaft → Modular, so "Recharge Shaft with Trench" is sized as
// trench sections. Counts are zero when potential is not positive.
func EstimateStructureDimensions(structure string, potential float64) string {
	switch {
	case strings.Contains(structure, "Pit"):
		return fmt.Sprintf("1.2m × 1.2m × 2m each, %d pits", unitCount(potential, 2500))
	case strings.Contains(structure, "Trench"):
		return fmt.Sprintf("1m width × 1.5m depth × 10m length, %d trench sections", unitCount(potential, 15000))
	case strings.Contains(structure, "Shaft"):
		return fmt.Sprintf("2m diameter × 10m depth, %d shafts", unitCount(potential, 50000))
	case strings.Contains(structure, "Modular"):
		return fmt.Sprintf("%d m³ modular tank system", unitCount(potential, 1000))
	default:
		return "Standard design as per site conditions"
	}
}

// unitCount is ceil(potential / capacity), zero when potential is not positive.
func unitCount(potential, capacityLiters float64) int {
	if potential <= 0 {
		return 0
	}
	return int(math.Ceil(potential / capacityLiters))
}

// EstimateCost prices the structure and classifies its benefit-to-cost ratio.
// Cost is the structure's base plus 10,000 for every full 50,000 L of
// potential. Only the qualitative label is surfaced; the numeric ratio is an
// intermediate.
func EstimateCost(structure string, potential float64) (float64, string) {
	base, ok := baseCosts[structure]
	if !ok {
		base = 30000
	}
	extra := math.Floor(math.Trunc(potential)/50000) * 10000
	total := round2(base + extra)

	ratio := 0.0
	if total > 0 {
		ratio = round2(potential / total)
	}
	return total, classifyBenefit(ratio)
}

// classifyBenefit maps a rounded benefit-to-cost ratio to its label.
func classifyBenefit(ratio float64) string {
	switch {
	case ratio > 5:
		return "High benefit"
	case ratio > 2:
		return "Moderate cost-benefit"
	default:
		return "Low benefit"
	}
}

// YearlyDemandLiters is the household's annual water requirement at 135 liters
// per person per day.
func YearlyDemandLiters(dwellers int) int {
	return dwellers * dailyDemandLitersPerPerson * 365
}

// ScoreDemandCoverage expresses potential as a percentage of yearly demand and
// classifies it. Thresholds are inclusive lower bounds; zero or negative
// demand scores zero.
func ScoreDemandCoverage(potential float64, yearlyDemandLiters int) (float64, string) {
	coverage := 0.0
	if yearlyDemandLiters > 0 {
		coverage = round2(potential / float64(yearlyDemandLiters) * 100)
	}

	label := "Minimal"
	switch {
	case coverage >= 100:
		label = "Fully sufficient"
	case coverage >= 70:
		label = "Adequate"
	case coverage >= 30:
		label = "Partial"
	}
	return coverage, fmt.Sprintf("%s (%s%%)", label, formatPercent(coverage))
}

// round2 rounds to two decimal places, half away from zero.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// formatPercent renders a coverage percentage as it appears in status labels:
// shortest decimal form, no trailing zeros.
func formatPercent(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
