package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"github.com/stemsi/depredict/internal/config"
	"github.com/stemsi/depredict/internal/model"
	"github.com/stemsi/depredict/internal/predictor"
)

// PredictionCache is the optional store for computed probabilities.
type PredictionCache interface {
	Get(ctx context.Context, key string) (float64, bool, error)
	Set(ctx context.Context, key string, p float64, ttl time.Duration) error
}

// PredictionService runs the encode → classify → band pipeline for one
// request. The classifier is shared read-only across requests.
type PredictionService struct {
	classifier predictor.BinaryClassifier
	cache      PredictionCache
	cacheTTL   time.Duration
	log        zerolog.Logger
}

// NewPredictionService creates a PredictionService. cache may be nil.
func NewPredictionService(
	classifier predictor.BinaryClassifier,
	cache PredictionCache,
	cacheTTL time.Duration,
	log zerolog.Logger,
) *PredictionService {
	return &PredictionService{
		classifier: classifier,
		cache:      cache,
		cacheTTL:   cacheTTL,
		log:        log.With().Str("component", "prediction_service").Logger(),
	}
}

// Predict encodes profile, classifies it and bands the probability.
// Classification failures are returned as *predictor.InferenceError.
func (s *PredictionService) Predict(ctx context.Context, profile model.StudentProfile) (*model.PredictionResult, error) {
	vector := predictor.Encode(profile)
	version := s.modelVersion()

	var key string
	if s.cache != nil {
		key = config.CacheKey.PredictionKey(version, vector.Slice())
		p, ok, err := s.cache.Get(ctx, key)
		switch {
		case err != nil:
			s.log.Warn().Err(err).Msg("prediction cache read failed")
		case ok:
			if err := predictor.CheckProbability(p); err != nil {
				s.log.Warn().Err(err).Str("key", key).Msg("discarding invalid cached prediction")
				break
			}
			return buildResult(vector, p, version, true), nil
		}
	}

	p, err := predictor.Classify(vector, s.classifier)
	if err != nil {
		s.log.Error().
			Err(err).
			Str("model_version", version).
			Floats64("features", vector.Slice()).
			Msg("prediction failed")
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, p, s.cacheTTL); err != nil {
			s.log.Warn().Err(err).Msg("prediction cache write failed")
		}
	}

	result := buildResult(vector, p, version, false)
	s.log.Debug().
		Str("band", result.Band.Label).
		Float64("probability", p).
		Msg("prediction served")
	return result, nil
}

// Bands returns the advisory band table.
func (s *PredictionService) Bands() []model.Band {
	return predictor.Bands()
}

// ModelInfo describes the classifier in use.
func (s *PredictionService) ModelInfo() model.ModelInfo {
	info := model.ModelInfo{
		Version:   s.modelVersion(),
		Features:  append([]string(nil), predictor.FeatureNames[:]...),
		Available: true,
	}

	switch c := s.classifier.(type) {
	case nil:
		info.Available = false
		info.Error = predictor.ErrModelUnavailable.Error()
	case predictor.Unavailable:
		info.Available = false
		info.Error = predictor.ErrModelUnavailable.Error()
		if c.Err != nil {
			info.Error = c.Err.Error()
		}
	}
	return info
}

// IsInferenceError reports whether err came from a failed classification.
func IsInferenceError(err error) bool {
	var ie *predictor.InferenceError
	return errors.As(err, &ie)
}

func (s *PredictionService) modelVersion() string {
	if s.classifier == nil {
		return "unavailable"
	}
	return s.classifier.Version()
}

func buildResult(vector predictor.FeatureVector, p float64, version string, cached bool) *model.PredictionResult {
	band := predictor.BandFor(p)
	return &model.PredictionResult{
		Features:        vector.Slice(),
		Probability:     p,
		Percentage:      predictor.Percentage(p),
		Band:            band,
		Headline:        predictor.Headline(band),
		ProbabilityText: predictor.ProbabilityText(p),
		ModelVersion:    version,
		Cached:          cached,
	}
}
