package model

// BandColor is the display color attached to an advisory band.
type BandColor string

const (
	ColorGreen  BandColor = "green"
	ColorOrange BandColor = "orange"
	ColorRed    BandColor = "red"
)

// Band is one of the five advisory categories derived from a probability.
type Band struct {
	Label string    `json:"label"`
	Color BandColor `json:"color"`
	// Lower is inclusive; Upper is exclusive except for the last band.
	Lower float64 `json:"lower"`
	Upper float64 `json:"upper"`
}

// PredictionResult is returned for every successful prediction.
type PredictionResult struct {
	Features        []float64 `json:"features"`
	Probability     float64   `json:"probability"`
	Percentage      string    `json:"percentage"`
	Band            Band      `json:"band"`
	Headline        string    `json:"headline"`
	ProbabilityText string    `json:"probability_text"`
	ModelVersion    string    `json:"model_version"`
	Cached          bool      `json:"cached"`
}

// ModelInfo describes the loaded classifier artifact.
type ModelInfo struct {
	Version   string   `json:"version"`
	Features  []string `json:"features"`
	Available bool     `json:"available"`
	Error     string   `json:"error,omitempty"`
}
