// Package advice generates the lifestyle recommendation bundle for a risk
// assessment.
package advice

import (
	"github.com/Muniranjani/heartcheck/internal/domain"
)

// Generate builds the recommendation bundle for the given binary risk flag
// and metrics. It is pure: the same inputs always produce the same bundle,
// and the returned slices are fresh copies the caller may hold onto.
//
// Specific tips are appended only in the high-risk branch. Each threshold
// check is independent; multiple tips co-occur, in the fixed order below.
// The diabetes condition is checked twice and yields two distinct tips.
// Downstream consumers depend on the exact strings and their order, so do
// not reorder or dedupe the checks.
func Generate(risk int, m domain.Metrics) domain.RecommendationBundle {
	if risk != 1 {
		return domain.RecommendationBundle{
			Summary:  summaryLowRisk,
			Diet:     copyList(lowRiskDiet),
			Exercise: copyList(lowRiskExercise),
			Routine:  copyList(lowRiskRoutine),
			Specific: []string{},
		}
	}

	specific := []string{}
	if m.Chol > 200 {
		specific = append(specific, tipHighCholesterol)
	}
	if m.Trestbps > 140 {
		specific = append(specific, tipHighBloodPressure)
	}
	if m.HeartRate < 60 || m.HeartRate > 100 {
		specific = append(specific, tipAbnormalHeartRate)
	}
	if m.Smoker == 1 {
		specific = append(specific, tipSmoking)
	}
	if m.Diabetes == 1 {
		specific = append(specific, tipDiabetes)
	}
	if m.Chol > 240 {
		specific = append(specific, tipVeryHighCholesterol)
	}
	if m.Age > 60 {
		specific = append(specific, tipAgeScreening)
	}
	if m.Gender == domain.GenderFemale {
		specific = append(specific, tipFemale)
	}
	if m.Diabetes == 1 {
		specific = append(specific, tipGlucoseLogs)
	}

	return domain.RecommendationBundle{
		Summary:  summaryHighRisk,
		Diet:     copyList(highRiskDiet),
		Exercise: copyList(highRiskExercise),
		Routine:  copyList(highRiskRoutine),
		Specific: specific,
	}
}

func copyList(src []string) []string {
	out := make([]string, len(src))
	copy(out, src)
	return out
}
