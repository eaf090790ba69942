package risk

import (
	"encoding/json"
	"fmt"
	"math"
	"os"

	"github.com/Muniranjani/heartcheck/internal/domain"
)

// ModelClassifier scores the metric vector with a pretrained linear model
// loaded from a JSON artifact at startup. It is wired in as an alternative
// Classifier whose opinion is logged next to each submission for
// comparison; the rules remain the sole source of the persisted risk flag.
type ModelClassifier struct {
	ModelName string             `json:"name"`
	Bias      float64            `json:"bias"`
	Weights   map[string]float64 `json:"weights"`
	Threshold float64            `json:"threshold"`
}

// LoadModel reads a model artifact from disk.
func LoadModel(path string) (*ModelClassifier, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read model artifact: %w", err)
	}

	var m ModelClassifier
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse model artifact: %w", err)
	}
	if len(m.Weights) == 0 {
		return nil, fmt.Errorf("model artifact %q has no weights", path)
	}
	if m.Threshold <= 0 || m.Threshold >= 1 {
		m.Threshold = 0.5
	}
	return &m, nil
}

// Name implements Classifier.
func (m *ModelClassifier) Name() string {
	if m.ModelName != "" {
		return m.ModelName
	}
	return "model"
}

// Score returns the model probability in [0, 1].
func (m *ModelClassifier) Score(v domain.Metrics) float64 {
	features := map[string]int{
		"age":       v.Age,
		"gender":    v.Gender,
		"trestbps":  v.Trestbps,
		"chol":      v.Chol,
		"heartrate": v.HeartRate,
		"smoker":    v.Smoker,
		"diabetes":  v.Diabetes,
	}

	z := m.Bias
	for name, w := range m.Weights {
		z += w * float64(features[name])
	}
	return 1 / (1 + math.Exp(-z))
}

// Classify implements Classifier.
func (m *ModelClassifier) Classify(v domain.Metrics) int {
	if m.Score(v) >= m.Threshold {
		return 1
	}
	return 0
}
