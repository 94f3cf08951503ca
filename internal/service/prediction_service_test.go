package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stemsi/depredict/internal/model"
	"github.com/stemsi/depredict/internal/predictor"
)

type fakeClassifier struct {
	proba []float64
	err   error
	calls int
}

func (f *fakeClassifier) PredictProba([]float64) ([]float64, error) {
	f.calls++
	return f.proba, f.err
}

func (f *fakeClassifier) Version() string { return "fake-1" }

type fakeCache struct {
	values  map[string]float64
	getErr  error
	setErr  error
	setKeys []string
}

func newFakeCache() *fakeCache {
	return &fakeCache{values: map[string]float64{}}
}

func (c *fakeCache) Get(_ context.Context, key string) (float64, bool, error) {
	if c.getErr != nil {
		return 0, false, c.getErr
	}
	p, ok := c.values[key]
	return p, ok, nil
}

func (c *fakeCache) Set(_ context.Context, key string, p float64, _ time.Duration) error {
	c.setKeys = append(c.setKeys, key)
	if c.setErr != nil {
		return c.setErr
	}
	c.values[key] = p
	return nil
}

func sampleProfile() model.StudentProfile {
	return model.StudentProfile{
		Gender:             model.GenderMale,
		Age:                21,
		AcademicPressure:   4.0,
		StudySatisfaction:  2.0,
		SleepDuration:      model.SleepLessThan5,
		DietaryHabits:      model.DietUnhealthy,
		SuicidalThoughts:   model.Yes,
		StudyHours:         6,
		FinancialStress:    5,
		FamilyHistory:      model.Yes,
		StudyPressureHours: 20,
	}
}

func TestPredictEndToEnd(t *testing.T) {
	clf := &fakeClassifier{proba: []float64{0.27, 0.73}}
	svc := NewPredictionService(clf, nil, 0, zerolog.Nop())

	res, err := svc.Predict(context.Background(), sampleProfile())
	require.NoError(t, err)

	assert.Equal(t, []float64{1, 21, 4, 2, 4, 0, 1, 6, 5, 1, 20}, res.Features)
	assert.Equal(t, 0.73, res.Probability)
	assert.Equal(t, "likely", res.Band.Label)
	assert.Equal(t, model.ColorOrange, res.Band.Color)
	assert.Equal(t, "Depression Probability: 73.00%", res.ProbabilityText)
	assert.Equal(t, "73.00", res.Percentage)
	assert.Equal(t, "fake-1", res.ModelVersion)
	assert.False(t, res.Cached)
}

func TestPredictInferenceError(t *testing.T) {
	clf := &fakeClassifier{err: errors.New("shape rejected")}
	svc := NewPredictionService(clf, nil, 0, zerolog.Nop())

	res, err := svc.Predict(context.Background(), sampleProfile())
	assert.Nil(t, res)
	assert.True(t, IsInferenceError(err))
}

func TestPredictUsesCache(t *testing.T) {
	clf := &fakeClassifier{proba: []float64{0.9, 0.1}}
	cache := newFakeCache()
	svc := NewPredictionService(clf, cache, time.Minute, zerolog.Nop())

	first, err := svc.Predict(context.Background(), sampleProfile())
	require.NoError(t, err)
	assert.False(t, first.Cached)
	require.Len(t, cache.setKeys, 1)
	assert.Contains(t, cache.setKeys[0], "prediction:fake-1:")

	second, err := svc.Predict(context.Background(), sampleProfile())
	require.NoError(t, err)
	assert.True(t, second.Cached)
	assert.Equal(t, first.Probability, second.Probability)
	assert.Equal(t, first.Band, second.Band)
	assert.Equal(t, 1, clf.calls)
}

func TestPredictIgnoresCacheFailures(t *testing.T) {
	clf := &fakeClassifier{proba: []float64{0.5, 0.5}}
	cache := newFakeCache()
	cache.getErr = errors.New("connection refused")
	cache.setErr = errors.New("connection refused")
	svc := NewPredictionService(clf, cache, time.Minute, zerolog.Nop())

	res, err := svc.Predict(context.Background(), sampleProfile())
	require.NoError(t, err)
	assert.Equal(t, "may suffer", res.Band.Label)
	assert.Equal(t, 1, clf.calls)
}

func TestModelInfo(t *testing.T) {
	ok := NewPredictionService(&fakeClassifier{}, nil, 0, zerolog.Nop()).ModelInfo()
	assert.True(t, ok.Available)
	assert.Equal(t, "fake-1", ok.Version)
	assert.Len(t, ok.Features, predictor.NumFeatures)

	down := NewPredictionService(predictor.Unavailable{Err: errors.New("open model.json: no such file")}, nil, 0, zerolog.Nop())
	info := down.ModelInfo()
	assert.False(t, info.Available)
	assert.Equal(t, "open model.json: no such file", info.Error)

	_, err := down.Predict(context.Background(), sampleProfile())
	assert.True(t, IsInferenceError(err))

	none := NewPredictionService(nil, nil, 0, zerolog.Nop()).ModelInfo()
	assert.False(t, none.Available)
}

func TestPredictRecomputesInvalidCachedProbability(t *testing.T) {
	clf := &fakeClassifier{proba: []float64{0.27, 0.73}}
	cache := newFakeCache()
	svc := NewPredictionService(clf, cache, time.Minute, zerolog.Nop())

	_, err := svc.Predict(context.Background(), sampleProfile())
	require.NoError(t, err)
	require.Len(t, cache.setKeys, 1)
	cache.values[cache.setKeys[0]] = 1.5

	res, err := svc.Predict(context.Background(), sampleProfile())
	require.NoError(t, err)
	assert.False(t, res.Cached)
	assert.Equal(t, 0.73, res.Probability)
	assert.Equal(t, "Depression Probability: 73.00%", res.ProbabilityText)
	assert.Equal(t, 2, clf.calls)
	assert.Equal(t, 0.73, cache.values[cache.setKeys[1]])
}
