package risk

import (
	"github.com/Muniranjani/heartcheck/internal/domain"
)

// Threshold constants for the binary rule set. A single breach of any rule
// sets the flag.
const (
	binaryHeartRateLow  = 60
	binaryHeartRateHigh = 100
	binaryTrestbpsLow   = 90
	binaryTrestbpsHigh  = 140
	binaryCholLow       = 130
	binaryCholHigh      = 200
	binaryAgeCutoff     = 50
)

// BinaryRiskPolicy is the primary rule engine. It flags risk when any one
// of the fixed thresholds is breached. Pure and side-effect free; inputs
// are assumed to be pre-coerced integers.
type BinaryRiskPolicy struct{}

// Name implements Classifier.
func (BinaryRiskPolicy) Name() string { return "binary-rules" }

// Classify implements Classifier. Boundary values are inclusive on the
// clinical rules (heart rate exactly 60 or 100 flags) and exclusive on age
// (51 flags, 50 does not).
func (BinaryRiskPolicy) Classify(m domain.Metrics) int {
	if m.HeartRate <= binaryHeartRateLow || m.HeartRate >= binaryHeartRateHigh ||
		m.Trestbps <= binaryTrestbpsLow || m.Trestbps >= binaryTrestbpsHigh ||
		m.Chol <= binaryCholLow || m.Chol >= binaryCholHigh ||
		m.Smoker == 1 ||
		m.Age > binaryAgeCutoff {
		return 1
	}
	return 0
}
