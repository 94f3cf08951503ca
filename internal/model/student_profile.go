package model

// Gender represents the student's gender as submitted by the form.
type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
)

// DietaryHabits represents the student's self-reported diet.
type DietaryHabits string

const (
	DietHealthy   DietaryHabits = "Healthy"
	DietUnhealthy DietaryHabits = "Unhealthy"
)

// YesNo is used by every binary history question on the form.
type YesNo string

const (
	Yes YesNo = "Yes"
	No  YesNo = "No"
)

// SleepDuration is one of the four labeled sleep bands offered by the form.
type SleepDuration string

const (
	SleepLessThan5 SleepDuration = "Less than 5 hours"
	Sleep5To6      SleepDuration = "5-6 hours"
	Sleep7To8      SleepDuration = "7-8 hours"
	SleepMoreThan8 SleepDuration = "More than 8 hours"
)

// SleepDurations lists the form's dropdown options in display order.
func SleepDurations() []SleepDuration {
	return []SleepDuration{SleepLessThan5, Sleep5To6, Sleep7To8, SleepMoreThan8}
}

// StudentProfile is the transient set of lifestyle attributes collected per
// prediction request. It is never persisted.
//
// Binding limits mirror the form's own control limits. SleepDuration is only
// required: unknown labels are encoded with the default sleep hours.
type StudentProfile struct {
	Gender             Gender        `json:"gender" form:"gender" binding:"required,oneof=Male Female"`
	Age                int           `json:"age" form:"age" binding:"required,min=1,max=120"`
	AcademicPressure   float64       `json:"academic_pressure" form:"academic_pressure" binding:"required,min=1,max=5"`
	StudySatisfaction  float64       `json:"study_satisfaction" form:"study_satisfaction" binding:"required,min=1,max=5"`
	SleepDuration      SleepDuration `json:"sleep_duration" form:"sleep_duration" binding:"required"`
	DietaryHabits      DietaryHabits `json:"dietary_habits" form:"dietary_habits" binding:"required,oneof=Healthy Unhealthy"`
	SuicidalThoughts   YesNo         `json:"suicidal_thoughts" form:"suicidal_thoughts" binding:"required,oneof=Yes No"`
	StudyHours         int           `json:"study_hours" form:"study_hours" binding:"min=0,max=24"`
	FinancialStress    float64       `json:"financial_stress" form:"financial_stress" binding:"required,min=1,max=5"`
	FamilyHistory      YesNo         `json:"family_history" form:"family_history" binding:"required,oneof=Yes No"`
	StudyPressureHours int           `json:"study_pressure_hours" form:"study_pressure_hours" binding:"min=0,max=24"`
}

// DefaultStudentProfile returns the values the form starts with.
func DefaultStudentProfile() StudentProfile {
	return StudentProfile{
		Gender:            GenderMale,
		Age:               1,
		AcademicPressure:  3.0,
		StudySatisfaction: 3.0,
		SleepDuration:     SleepLessThan5,
		DietaryHabits:     DietHealthy,
		SuicidalThoughts:  Yes,
		FinancialStress:   3,
		FamilyHistory:     Yes,
	}
}
