package predictor

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/stemsi/depredict/internal/model"
)

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

func TestSleepHours(t *testing.T) {
	tests := []struct {
		label model.SleepDuration
		want  float64
	}{
		{model.SleepLessThan5, 4},
		{model.Sleep5To6, 5.5},
		{model.Sleep7To8, 7.5},
		{model.SleepMoreThan8, 9},
		{"", 7.5},
		{"about 6 hours", 7.5},
		{"less than 5 hours", 7.5},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, SleepHours(tt.label), "label %q", tt.label)
	}
}

func TestEncodeSampleProfile(t *testing.T) {
	got := Encode(sampleProfile())
	want := FeatureVector{1, 21, 4.0, 2.0, 4, 0, 1, 6, 5, 1, 20}
	assert.Equal(t, want, got)
}

func TestEncodeIsDeterministic(t *testing.T) {
	p := sampleProfile()
	first := Encode(p)
	second := Encode(p)
	assert.Equal(t, first, second)
	assert.Len(t, first.Slice(), NumFeatures)
}

func TestEncodeBinaryFields(t *testing.T) {
	idx := map[string]int{}
	for i, name := range FeatureNames {
		idx[name] = i
	}

	t.Run("gender", func(t *testing.T) {
		p := sampleProfile()
		p.Gender = model.GenderMale
		assert.Equal(t, 1.0, Encode(p)[idx["gender"]])
		p.Gender = model.GenderFemale
		assert.Equal(t, 0.0, Encode(p)[idx["gender"]])
	})

	t.Run("dietary_habits", func(t *testing.T) {
		p := sampleProfile()
		p.DietaryHabits = model.DietHealthy
		assert.Equal(t, 1.0, Encode(p)[idx["dietary_habits"]])
		p.DietaryHabits = model.DietUnhealthy
		assert.Equal(t, 0.0, Encode(p)[idx["dietary_habits"]])
	})

	t.Run("suicidal_thoughts", func(t *testing.T) {
		p := sampleProfile()
		p.SuicidalThoughts = model.Yes
		assert.Equal(t, 1.0, Encode(p)[idx["suicidal_thoughts"]])
		p.SuicidalThoughts = model.No
		assert.Equal(t, 0.0, Encode(p)[idx["suicidal_thoughts"]])
	})

	t.Run("family_history", func(t *testing.T) {
		p := sampleProfile()
		p.FamilyHistory = model.Yes
		assert.Equal(t, 1.0, Encode(p)[idx["family_history"]])
		p.FamilyHistory = model.No
		assert.Equal(t, 0.0, Encode(p)[idx["family_history"]])
	})
}

func TestSliceIsACopy(t *testing.T) {
	v := Encode(sampleProfile())
	s := v.Slice()
	s[0] = 42
	assert.Equal(t, 1.0, v[0])
}
