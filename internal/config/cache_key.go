package config

import (
	"fmt"
	"strconv"
	"strings"
)

type CacheKeyStruct struct{}

func NewCacheKeyStruct() *CacheKeyStruct {
	return &CacheKeyStruct{}
}

// PredictionKey returns the cache key for a model's prediction on an
// encoded feature vector. The model version is part of the key so a new
// artifact never serves probabilities computed by the old one.
func (r *CacheKeyStruct) PredictionKey(modelVersion string, features []float64) string {
	parts := make([]string, len(features))
	for i, f := range features {
		parts[i] = strconv.FormatFloat(f, 'g', -1, 64)
	}
	return fmt.Sprintf("prediction:%s:%s", modelVersion, strings.Join(parts, ","))
}

var CacheKey = NewCacheKeyStruct()
