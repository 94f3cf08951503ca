package predictor

import (
	"errors"
	"fmt"
	"math"
)

// BinaryClassifier is a loaded, read-only probability model.
// PredictProba returns [P(negative), P(positive)] for one feature vector.
type BinaryClassifier interface {
	PredictProba(features []float64) ([]float64, error)
	Version() string
}

// ErrModelUnavailable is the cause reported when no artifact could be loaded.
var ErrModelUnavailable = errors.New("classifier artifact unavailable")

// InferenceError is returned whenever a classification attempt fails.
type InferenceError struct {
	Err error
}

func (e *InferenceError) Error() string {
	return fmt.Sprintf("inference failed: %v", e.Err)
}

func (e *InferenceError) Unwrap() error {
	return e.Err
}

// Classify asks c for the positive-class probability of v. Any failure,
// including a panic inside the classifier, is returned as *InferenceError.
func Classify(v FeatureVector, c BinaryClassifier) (p float64, err error) {
	if c == nil {
		return 0, &InferenceError{Err: ErrModelUnavailable}
	}

	defer func() {
		if r := recover(); r != nil {
			p, err = 0, &InferenceError{Err: fmt.Errorf("classifier panic: %v", r)}
		}
	}()

	proba, err := c.PredictProba(v.Slice())
	if err != nil {
		return 0, &InferenceError{Err: err}
	}
	if len(proba) != 2 {
		return 0, &InferenceError{Err: fmt.Errorf("expected 2 class probabilities, got %d", len(proba))}
	}

	p = proba[1]
	if err := CheckProbability(p); err != nil {
		return 0, &InferenceError{Err: err}
	}
	return p, nil
}

// CheckProbability rejects NaN and values outside [0,1].
func CheckProbability(p float64) error {
	if math.IsNaN(p) || p < 0 || p > 1 {
		return fmt.Errorf("positive-class probability %v outside [0,1]", p)
	}
	return nil
}

// Unavailable stands in for a classifier whose artifact failed to load.
// Every prediction fails with the load error.
type Unavailable struct {
	Err error
}

func (u Unavailable) PredictProba([]float64) ([]float64, error) {
	if u.Err == nil {
		return nil, ErrModelUnavailable
	}
	return nil, fmt.Errorf("%w: %v", ErrModelUnavailable, u.Err)
}

func (u Unavailable) Version() string { return "unavailable" }
