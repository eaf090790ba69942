// Package domain contains core domain types for the HeartCheck application.
package domain

import (
	"time"
)

// Gender codes as stored on a submission.
const (
	GenderFemale = 0
	GenderMale   = 1
)

// Metrics is the clinical and demographic input vector the classifiers and
// the recommendation generator operate on. All values are plain integers,
// coerced at the HTTP boundary.
type Metrics struct {
	Age       int `json:"age"`
	Gender    int `json:"gender"`
	Trestbps  int `json:"trestbps"` // resting systolic blood pressure, mmHg
	Chol      int `json:"chol"`     // total cholesterol, mg/dL
	HeartRate int `json:"heartrate"`
	Smoker    int `json:"smoker"`
	Diabetes  int `json:"diabetes"`
}

// GenderLabel returns the display label for the gender code.
func (m Metrics) GenderLabel() string {
	if m.Gender == GenderMale {
		return "Male"
	}
	return "Female"
}

// SmokerLabel returns "Yes" for smokers and "No" otherwise.
func (m Metrics) SmokerLabel() string {
	if m.Smoker == 1 {
		return "Yes"
	}
	return "No"
}

// Submission is one completed wizard pass. Records are immutable once
// written; Risk is computed exactly once at write time and never recomputed
// against a stored row.
type Submission struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Age       int       `json:"age"`
	Gender    int       `json:"gender"`
	Trestbps  int       `json:"trestbps"`
	Chol      int       `json:"chol"`
	HeartRate int       `json:"heartrate"`
	Smoker    int       `json:"smoker"`
	Diabetes  int       `json:"diabetes"`
	Risk      int       `json:"risk"`
	CreatedAt time.Time `json:"created_at"`
}

// Metrics returns the clinical vector of the submission.
func (s Submission) Metrics() Metrics {
	return Metrics{
		Age:       s.Age,
		Gender:    s.Gender,
		Trestbps:  s.Trestbps,
		Chol:      s.Chol,
		HeartRate: s.HeartRate,
		Smoker:    s.Smoker,
		Diabetes:  s.Diabetes,
	}
}

// RecommendationBundle is the advice produced for one risk assessment.
// It is a value object: recomputed on demand, never mutated after
// construction, and safe to regenerate idempotently from the same inputs.
type RecommendationBundle struct {
	Summary  string   `json:"summary"`
	Diet     []string `json:"diet"`
	Exercise []string `json:"exercise"`
	Routine  []string `json:"routine"`
	Specific []string `json:"specific"`
}
