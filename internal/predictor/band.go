package predictor

import (
	"fmt"
	"math"

	"github.com/stemsi/depredict/internal/model"
)

var bands = []model.Band{
	{Label: "very unlikely", Color: model.ColorGreen, Lower: 0, Upper: 0.2},
	{Label: "unlikely", Color: model.ColorGreen, Lower: 0.2, Upper: 0.4},
	{Label: "may suffer", Color: model.ColorOrange, Lower: 0.4, Upper: 0.6},
	{Label: "likely", Color: model.ColorOrange, Lower: 0.6, Upper: 0.8},
	{Label: "highly likely", Color: model.ColorRed, Lower: 0.8, Upper: 1.0},
}

// Bands returns a copy of the advisory band table in ascending order.
func Bands() []model.Band {
	out := make([]model.Band, len(bands))
	copy(out, bands)
	return out
}

// BandFor returns the band whose half-open interval contains p. Boundary
// values belong to the upper band. Values outside [0,1] clamp to the first
// or last band, and NaN maps to the last band. Classify never yields NaN.
func BandFor(p float64) model.Band {
	if math.IsNaN(p) {
		return bands[len(bands)-1]
	}
	for _, b := range bands[:len(bands)-1] {
		if p < b.Upper {
			return b
		}
	}
	return bands[len(bands)-1]
}

// Headline is the verdict sentence shown above the probability.
func Headline(b model.Band) string {
	phrase := "is " + b.Label + " to suffer"
	if b.Label == "may suffer" {
		phrase = b.Label
	}
	return fmt.Sprintf("The model predicts that this person %s from depression.", phrase)
}

// Percentage renders p as a percentage with two decimal digits.
func Percentage(p float64) string {
	return fmt.Sprintf("%.2f", p*100)
}

// ProbabilityText is the literal probability line shown under the headline.
func ProbabilityText(p float64) string {
	return "Depression Probability: " + Percentage(p) + "%"
}
