// Package risk implements the heart-disease risk classifiers.
//
// Two rule-based policies are active: BinaryRiskPolicy drives the persisted
// risk flag and recommendation selection, and WeightedStatusPolicy produces
// the three-tier status shown on the result page. The two are deliberately
// independent and can disagree for the same inputs; tests pin that
// divergence so it cannot be unified by accident.
package risk

import (
	"github.com/Muniranjani/heartcheck/internal/domain"
)

// Classifier maps a metrics vector to a binary risk flag.
type Classifier interface {
	// Classify returns 0 (no elevated risk) or 1 (elevated risk).
	Classify(m domain.Metrics) int
	// Name identifies the policy in logs.
	Name() string
}
