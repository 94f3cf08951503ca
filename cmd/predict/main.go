package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/stemsi/depredict/internal/config"
	"github.com/stemsi/depredict/internal/logger"
	"github.com/stemsi/depredict/internal/model"
	"github.com/stemsi/depredict/internal/predictor"
	"github.com/stemsi/depredict/internal/service"
	"github.com/stemsi/depredict/internal/validator"
)

// options is the parsed command line.
type options struct {
	modelPath string
	asJSON    bool
	profile   model.StudentProfile
}

// parseFlags reads args into options. Every profile flag defaults to the
// value the web form starts with.
func parseFlags(args []string, defaultModelPath string) (options, error) {
	opts := options{profile: model.DefaultStudentProfile()}
	p := &opts.profile

	var gender, sleep, diet, suicidal, family string
	fs := flag.NewFlagSet("predict", flag.ContinueOnError)
	fs.StringVar(&opts.modelPath, "model", defaultModelPath, "Path to the classifier artifact")
	fs.BoolVar(&opts.asJSON, "json", false, "Print the full result as JSON")
	fs.StringVar(&gender, "gender", string(p.Gender), "Male or Female")
	fs.IntVar(&p.Age, "age", p.Age, "Age of the student (1-120)")
	fs.Float64Var(&p.AcademicPressure, "academic-pressure", p.AcademicPressure, "Academic pressure (1-5)")
	fs.Float64Var(&p.StudySatisfaction, "study-satisfaction", p.StudySatisfaction, "Study satisfaction (1-5)")
	fs.StringVar(&sleep, "sleep", string(p.SleepDuration), `Sleep duration ("Less than 5 hours", "5-6 hours", "7-8 hours", "More than 8 hours")`)
	fs.StringVar(&diet, "diet", string(p.DietaryHabits), "Healthy or Unhealthy")
	fs.StringVar(&suicidal, "suicidal-thoughts", string(p.SuicidalThoughts), "Yes or No")
	fs.IntVar(&p.StudyHours, "study-hours", p.StudyHours, "Study hours per day (0-24)")
	fs.Float64Var(&p.FinancialStress, "financial-stress", p.FinancialStress, "Financial stress (1-5)")
	fs.StringVar(&family, "family-history", string(p.FamilyHistory), "Family history of mental illness: Yes or No")
	fs.IntVar(&p.StudyPressureHours, "study-pressure-hours", p.StudyPressureHours, "Study pressure hours per week (0-24)")
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}

	p.Gender = model.Gender(gender)
	p.SleepDuration = model.SleepDuration(sleep)
	p.DietaryHabits = model.DietaryHabits(diet)
	p.SuicidalThoughts = model.YesNo(suicidal)
	p.FamilyHistory = model.YesNo(family)
	return opts, nil
}

func main() {
	cfg := config.Load()
	opts, err := parseFlags(os.Args[1:], cfg.ModelPath)
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		os.Exit(2)
	}
	p := opts.profile

	validator.Setup()
	if fields := validator.Validate(&p); fields != nil {
		for field, msg := range fields {
			fmt.Fprintf(os.Stderr, "%s: %s\n", field, msg)
		}
		os.Exit(2)
	}

	log := logger.SetupWithWriter(os.Stderr, "warn", "pretty")

	// A load failure surfaces below as an inference error.
	classifier, _ := predictor.LoadClassifier(opts.modelPath)
	svc := service.NewPredictionService(classifier, nil, 0, log)
	result, err := svc.Predict(context.Background(), p)
	if err != nil {
		color.New(color.FgRed).Fprintln(os.Stderr, "An error occurred during prediction:", err)
		os.Exit(1)
	}

	if opts.asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(result); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	bandColor(result.Band.Color).Println(result.Headline)
	fmt.Println(result.ProbabilityText)
}

func bandColor(c model.BandColor) *color.Color {
	switch c {
	case model.ColorGreen:
		return color.New(color.FgGreen, color.Bold)
	case model.ColorOrange:
		return color.New(color.FgYellow, color.Bold)
	default:
		return color.New(color.FgRed, color.Bold)
	}
}

func init() {
	zerolog.TimeFieldFormat = "15:04:05"
}
