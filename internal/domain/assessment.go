package domain

import (
	"time"

	"github.com/google/uuid"
)

// AssessmentResult is the flat, user-facing outcome of one feasibility
// assessment. Field order follows the response contract.
type AssessmentResult struct {
	Feasibility          string  `json:"feasibility"`
	RunoffCapacity       float64 `json:"runoff_capacity"`
	RecommendedStructure string  `json:"recommended_structure"`
	EstimatedCost        float64 `json:"estimated_cost"`
	BenefitRatio         string  `json:"benefit_ratio"`
	DepthToGroundwaterM  float64 `json:"depth_to_groundwater_m"`
	YearlyDemandLiters   int     `json:"yearly_demand_liters"`
	CoveragePercentage   float64 `json:"coverage_percentage"`
	DemandMetStatus      string  `json:"demand_met_status"`
	StructureDimensions  string  `json:"structure_dimensions"`
	RainfallUsedMM       float64 `json:"rainfall_used_mm"`
}

// BuildAssessment runs the full computation pipeline for a site with an
// already-resolved rainfall figure. It is a pure function of its inputs:
// identical site and rainfall always produce an identical result.
func BuildAssessment(site SiteInput, rainfallMM float64) AssessmentResult {
	potential := CalculatePotential(site, rainfallMM)
	structure := RecommendStructure(site, potential)
	dimensions := EstimateStructureDimensions(structure, potential)
	cost, benefit := EstimateCost(structure, potential)
	demand := YearlyDemandLiters(site.Dwellers)
	coverage, status := ScoreDemandCoverage(potential, demand)

	feasibility := "Not Feasible"
	if potential > 0 {
		feasibility = "Feasible"
	}

	return AssessmentResult{
		Feasibility:          feasibility,
		RunoffCapacity:       potential,
		RecommendedStructure: structure,
		EstimatedCost:        cost,
		BenefitRatio:         benefit,
		DepthToGroundwaterM:  site.GWDepth,
		YearlyDemandLiters:   demand,
		CoveragePercentage:   coverage,
		DemandMetStatus:      status,
		StructureDimensions:  dimensions,
		RainfallUsedMM:       rainfallMM,
	}
}

// AssessmentEvent is the record published to the assessment topic after each
// completed assessment. IDs are random UUIDs: repeated assessments of the same
// site are distinct business events, so there is no natural key to derive.
type AssessmentEvent struct {
	ID             string           `json:"id"`
	GeneratedAt    time.Time        `json:"generated_at"`
	RainfallSource string           `json:"rainfall_source"`
	Site           SiteInput        `json:"site"`
	Result         AssessmentResult `json:"result"`
}

// NewAssessmentEvent stamps an assessment with identity, provenance, and time.
func NewAssessmentEvent(site SiteInput, result AssessmentResult, rainfallSource string) AssessmentEvent {
	return AssessmentEvent{
		ID:             uuid.NewString(),
		GeneratedAt:    clock.Now().UTC(),
		RainfallSource: rainfallSource,
		Site:           site,
		Result:         result,
	}
}
