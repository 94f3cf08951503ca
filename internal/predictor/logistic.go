package predictor

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
)

// ErrShapeMismatch is returned when an input does not have NumFeatures values.
var ErrShapeMismatch = errors.New("feature vector shape mismatch")

// artifact is the on-disk JSON layout of a logistic regression model.
// Mean and Scale are optional standardization parameters.
type artifact struct {
	Version      string    `json:"version"`
	Features     []string  `json:"features"`
	Intercept    float64   `json:"intercept"`
	Coefficients []float64 `json:"coefficients"`
	Mean         []float64 `json:"mean,omitempty"`
	Scale        []float64 `json:"scale,omitempty"`
}

// LogisticModel is an immutable binary logistic regression classifier.
// It is safe for concurrent use.
type LogisticModel struct {
	version   string
	intercept float64
	coef      [NumFeatures]float64
	mean      [NumFeatures]float64
	scale     [NumFeatures]float64
}

// LoadLogisticModel reads and validates a model artifact from path.
func LoadLogisticModel(path string) (*LogisticModel, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read model artifact: %w", err)
	}
	return ParseLogisticModel(raw)
}

// LoadClassifier loads the artifact at path. On failure it returns an
// Unavailable classifier alongside the error so callers can keep serving
// and report inference errors per request.
func LoadClassifier(path string) (BinaryClassifier, error) {
	m, err := LoadLogisticModel(path)
	if err != nil {
		return Unavailable{Err: err}, err
	}
	return m, nil
}

// ParseLogisticModel decodes and validates a JSON model artifact.
func ParseLogisticModel(raw []byte) (*LogisticModel, error) {
	var a artifact
	if err := json.Unmarshal(raw, &a); err != nil {
		return nil, fmt.Errorf("decode model artifact: %w", err)
	}

	if len(a.Features) != NumFeatures {
		return nil, fmt.Errorf("artifact declares %d features, want %d", len(a.Features), NumFeatures)
	}
	for i, name := range a.Features {
		if name != FeatureNames[i] {
			return nil, fmt.Errorf("artifact feature %d is %q, want %q", i, name, FeatureNames[i])
		}
	}
	if len(a.Coefficients) != NumFeatures {
		return nil, fmt.Errorf("artifact has %d coefficients, want %d", len(a.Coefficients), NumFeatures)
	}

	m := &LogisticModel{version: a.Version, intercept: a.Intercept}
	if m.version == "" {
		m.version = "unversioned"
	}
	copy(m.coef[:], a.Coefficients)

	if err := fillParam(m.mean[:], a.Mean, 0, "mean"); err != nil {
		return nil, err
	}
	if err := fillParam(m.scale[:], a.Scale, 1, "scale"); err != nil {
		return nil, err
	}
	for i, s := range m.scale {
		if s == 0 {
			return nil, fmt.Errorf("artifact scale for %q is zero", FeatureNames[i])
		}
	}

	return m, nil
}

func fillParam(dst, src []float64, fallback float64, name string) error {
	if len(src) == 0 {
		for i := range dst {
			dst[i] = fallback
		}
		return nil
	}
	if len(src) != len(dst) {
		return fmt.Errorf("artifact has %d %s values, want %d", len(src), name, len(dst))
	}
	copy(dst, src)
	return nil
}

// PredictProba returns [P(negative), P(positive)] for features.
func (m *LogisticModel) PredictProba(features []float64) ([]float64, error) {
	if len(features) != NumFeatures {
		return nil, fmt.Errorf("%w: got %d values, want %d", ErrShapeMismatch, len(features), NumFeatures)
	}

	z := m.intercept
	for i, x := range features {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return nil, fmt.Errorf("feature %q is not finite", FeatureNames[i])
		}
		z += m.coef[i] * (x - m.mean[i]) / m.scale[i]
	}

	p := 1 / (1 + math.Exp(-z))
	return []float64{1 - p, p}, nil
}

// Version identifies the loaded artifact.
func (m *LogisticModel) Version() string {
	return m.version
}
