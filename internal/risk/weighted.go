package risk

import (
	"github.com/Muniranjani/heartcheck/internal/domain"
)

// Status labels produced by the weighted policy.
const (
	StatusLow      = "Low Risk"
	StatusModerate = "Moderate Risk"
	StatusHigh     = "High Risk"
)

// Point weights and banding thresholds for the weighted policy.
const (
	pointsCholVeryHigh = 2 // cholesterol >= 240
	pointsCholHigh     = 1 // 200 <= cholesterol < 240
	pointsBPHigh       = 2 // systolic >= 140
	pointsBPElevated   = 1 // 120 <= systolic < 140
	pointsHeartRate    = 1 // heart rate > 100 or < 60
	pointsSmoker       = 2
	pointsAge          = 1 // age >= 55

	highBand     = 5 // total points for "High Risk"
	moderateBand = 2 // total points for "Moderate Risk"
)

// Assessment is the weighted policy's display output.
type Assessment struct {
	Points  int
	Status  string
	Message string
}

// WeightedStatusPolicy accumulates severity points across the metrics and
// bands the total into a three-tier status. It is used only for display on
// the result page and is intentionally not reconciled with
// BinaryRiskPolicy: the two rule sets are independent and disagree for some
// inputs (a 51-year-old with otherwise normal values is flagged by the
// binary rules but scores zero points here).
type WeightedStatusPolicy struct{}

// Name implements Classifier.
func (WeightedStatusPolicy) Name() string { return "weighted-points" }

// Classify implements Classifier by collapsing the three-tier status to a
// binary flag: anything above the low band counts as elevated.
func (p WeightedStatusPolicy) Classify(m domain.Metrics) int {
	if p.Assess(m).Points >= moderateBand {
		return 1
	}
	return 0
}

// Assess computes the point total, status label, and display message.
func (WeightedStatusPolicy) Assess(m domain.Metrics) Assessment {
	points := 0

	switch {
	case m.Chol >= 240:
		points += pointsCholVeryHigh
	case m.Chol >= 200:
		points += pointsCholHigh
	}

	switch {
	case m.Trestbps >= 140:
		points += pointsBPHigh
	case m.Trestbps >= 120:
		points += pointsBPElevated
	}

	if m.HeartRate > 100 || m.HeartRate < 60 {
		points += pointsHeartRate
	}
	if m.Smoker == 1 {
		points += pointsSmoker
	}
	if m.Age >= 55 {
		points += pointsAge
	}

	a := Assessment{Points: points}
	switch {
	case points >= highBand:
		a.Status = StatusHigh
		a.Message = "You are at high risk of heart disease. Immediate lifestyle changes are necessary."
	case points >= moderateBand:
		a.Status = StatusModerate
		a.Message = "You are at moderate risk of heart disease. Consider regular checkups and lifestyle improvements."
	default:
		a.Status = StatusLow
		a.Message = "You are at low risk of heart disease. Keep maintaining a healthy lifestyle."
	}
	return a
}
