// Package domain models rooftop rainwater harvesting (RTRWH) and groundwater
// recharge feasibility for a single household site.
//
// # Runoff Model
//
// Annual harvest potential is a fixed-coefficient runoff estimate:
//
//	potential = rainfall × roof_area × 0.8 + rainfall × open_space × 0.3
//
//	rainfall    annual rainfall in millimeters
//	roof_area   rooftop catchment in square meters (runoff coefficient 0.8)
//	open_space  open ground in square meters (infiltration factor 0.3)
//
// With millimeters times square meters the product is liters per year.
// Derived figures are rounded to two decimals throughout.
//
// # Structure Selection
//
// The recommended recharge structure is a two-axis lookup on potential and
// available open space, first matching row wins:
//
//	potential < 50,000           open < 20 m²   → Modular Tank (compact)
//	                             otherwise      → Recharge Pit (small)
//	50,000 ≤ potential ≤ 200,000 open ≥ 50 m²   → Recharge Trench (medium)
//	                             otherwise      → Recharge Pit (large, reinforced)
//	potential > 200,000          open ≥ 100 m²  → Recharge Shaft with Trench
//	                             otherwise      → Deep Bore Recharge Shaft
//
// # Dimensioning
//
// Unit counts divide potential by a per-unit design capacity in liters, rounded
// up. Matching is on structure-name substring, checked in order
// Pit → Trench → Shaft → Modular, so "Recharge Shaft with Trench" is sized as
// trench sections:
//
//	Pit      2,500 L   1.2m × 1.2m × 2m each
//	Trench  15,000 L   1m width × 1.5m depth × 10m length
//	Shaft   50,000 L   2m diameter × 10m depth
//	Modular  1,000 L   per m³ of tank volume
//
// # Cost Model
//
// Estimated cost is a per-structure base plus 10,000 INR for every full
// 50,000 L of potential. The benefit label classifies potential over cost:
//
//	ratio > 5   High benefit
//	ratio > 2   Moderate cost-benefit
//	otherwise   Low benefit
//
// Only the label is surfaced; the numeric ratio is an intermediate.
//
// # Demand Coverage
//
// Yearly household demand assumes 135 liters per person per day (the CPHEEO
// urban supply norm). Coverage is potential as a percentage of demand:
//
//	≥ 100%   Fully sufficient
//	≥ 70%    Adequate
//	≥ 30%    Partial
//	< 30%    Minimal
//
// # Rainfall Sourcing
//
// A client-supplied rainfall figure always wins, even zero or negative.
// Otherwise rainfall is resolved through a [RainfallProvider], by coordinates
// when both are non-zero, then by place name. Every lookup failure, and a
// resolved value of exactly zero, degrades to [DefaultRainfallMM]
// (1000 mm/year) rather than failing the assessment. See [ResolveRainfall].
//
// Negative geometry and rainfall inputs are not clamped: they flow through
// the arithmetic and produce negative potentials, which the selection and
// costing tables still classify. Callers wanting validation do it at the
// boundary.
package domain
