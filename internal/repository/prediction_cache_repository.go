package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// PredictionCacheRepository stores positive-class probabilities in Redis
// keyed by model version and encoded feature vector. No profile fields are
// stored.
type PredictionCacheRepository struct {
	rdb *redis.Client
}

func NewPredictionCacheRepository(rdb *redis.Client) *PredictionCacheRepository {
	return &PredictionCacheRepository{rdb: rdb}
}

// Get returns the cached probability for key. ok is false on a miss.
func (r *PredictionCacheRepository) Get(ctx context.Context, key string) (p float64, ok bool, err error) {
	val, err := r.rdb.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}

	p, err = strconv.ParseFloat(val, 64)
	if err != nil {
		return 0, false, fmt.Errorf("parse cached prediction %q: %w", key, err)
	}
	return p, true, nil
}

// Set stores p under key for ttl.
func (r *PredictionCacheRepository) Set(ctx context.Context, key string, p float64, ttl time.Duration) error {
	return r.rdb.Set(ctx, key, strconv.FormatFloat(p, 'g', -1, 64), ttl).Err()
}
