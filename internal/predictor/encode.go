// Package predictor turns a student profile into the classifier's feature
// vector, asks the classifier for a probability and maps that probability
// onto an advisory band.
package predictor

import "github.com/stemsi/depredict/internal/model"

// NumFeatures is the arity the classifier was trained on.
const NumFeatures = 11

// FeatureNames is the canonical feature order. Reordering any entry
// silently corrupts predictions, so artifacts declaring a different order
// are rejected at load time.
var FeatureNames = [NumFeatures]string{
	"gender",
	"age",
	"academic_pressure",
	"study_satisfaction",
	"sleep_duration",
	"dietary_habits",
	"suicidal_thoughts",
	"study_hours",
	"financial_stress",
	"family_history",
	"study_pressure_hours",
}

// FeatureVector is the fixed-order numeric encoding of a StudentProfile.
type FeatureVector [NumFeatures]float64

// Slice returns a copy of the vector as a slice.
func (v FeatureVector) Slice() []float64 {
	out := make([]float64, NumFeatures)
	copy(out, v[:])
	return out
}

// DefaultSleepHours is used for any sleep label outside the form's options.
const DefaultSleepHours = 7.5

var sleepHours = map[model.SleepDuration]float64{
	model.SleepLessThan5: 4,
	model.Sleep5To6:      5.5,
	model.Sleep7To8:      7.5,
	model.SleepMoreThan8: 9,
}

// SleepHours maps a sleep label to its representative hour count.
func SleepHours(label model.SleepDuration) float64 {
	if h, ok := sleepHours[label]; ok {
		return h
	}
	return DefaultSleepHours
}

// Encode maps a profile onto the feature vector. It is pure and never fails.
func Encode(p model.StudentProfile) FeatureVector {
	return FeatureVector{
		flag(p.Gender == model.GenderMale),
		float64(p.Age),
		p.AcademicPressure,
		p.StudySatisfaction,
		SleepHours(p.SleepDuration),
		flag(p.DietaryHabits == model.DietHealthy),
		flag(p.SuicidalThoughts == model.Yes),
		float64(p.StudyHours),
		p.FinancialStress,
		flag(p.FamilyHistory == model.Yes),
		float64(p.StudyPressureHours),
	}
}

func flag(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
