package predictor

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubClassifier returns canned output and records the last input.
type stubClassifier struct {
	proba []float64
	err   error
	panic bool
	last  []float64
}

func (s *stubClassifier) PredictProba(features []float64) ([]float64, error) {
	s.last = features
	if s.panic {
		panic("boom")
	}
	return s.proba, s.err
}

func (s *stubClassifier) Version() string { return "stub" }

func TestClassifyReturnsPositiveClass(t *testing.T) {
	stub := &stubClassifier{proba: []float64{0.27, 0.73}}
	v := Encode(sampleProfile())

	p, err := Classify(v, stub)
	require.NoError(t, err)
	assert.Equal(t, 0.73, p)
	assert.Equal(t, []float64{1, 21, 4, 2, 4, 0, 1, 6, 5, 1, 20}, stub.last)

	band := BandFor(p)
	assert.Equal(t, "likely", band.Label)
	assert.Equal(t, "orange", string(band.Color))
	assert.Equal(t, "Depression Probability: 73.00%", ProbabilityText(p))
}

func TestClassifyFailures(t *testing.T) {
	cause := errors.New("rejected input")
	tests := []struct {
		name string
		c    BinaryClassifier
	}{
		{"nil classifier", nil},
		{"classifier error", &stubClassifier{err: cause}},
		{"panic", &stubClassifier{panic: true}},
		{"single output", &stubClassifier{proba: []float64{0.4}}},
		{"negative probability", &stubClassifier{proba: []float64{1.2, -0.2}}},
		{"probability above one", &stubClassifier{proba: []float64{-0.5, 1.5}}},
		{"nan", &stubClassifier{proba: []float64{0, math.NaN()}}},
		{"unavailable", Unavailable{Err: errors.New("no such file")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Classify(Encode(sampleProfile()), tt.c)
			require.Error(t, err)

			var ie *InferenceError
			assert.ErrorAs(t, err, &ie)
		})
	}
}

func TestClassifyWrapsCause(t *testing.T) {
	cause := errors.New("rejected input")
	_, err := Classify(FeatureVector{}, &stubClassifier{err: cause})
	assert.ErrorIs(t, err, cause)

	_, err = Classify(FeatureVector{}, Unavailable{})
	assert.ErrorIs(t, err, ErrModelUnavailable)
}

func TestCheckProbability(t *testing.T) {
	for _, p := range []float64{0, 0.5, 1} {
		assert.NoError(t, CheckProbability(p), "p=%v", p)
	}
	for _, p := range []float64{-0.01, 1.5, math.NaN(), math.Inf(1)} {
		assert.Error(t, CheckProbability(p), "p=%v", p)
	}
}
