// Package web holds the embedded HTML form and its static assets.
package web

import (
	"embed"
	"html/template"
	"io/fs"
	"net/http"

	"github.com/stemsi/depredict/internal/model"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// IndexTemplate is the name of the single-page form template.
const IndexTemplate = "index.html"

// PageData is rendered by the index template.
type PageData struct {
	Profile      model.StudentProfile
	SleepOptions []model.SleepDuration
	Result       *model.PredictionResult
	Fields       map[string]string
	Error        string
}

// NewPageData returns page data pre-filled with the form defaults.
func NewPageData() PageData {
	return PageData{
		Profile:      model.DefaultStudentProfile(),
		SleepOptions: model.SleepDurations(),
	}
}

// Templates parses the embedded templates.
func Templates() *template.Template {
	return template.Must(template.New("").ParseFS(templateFS, "templates/*.html"))
}

// Static returns the embedded static assets rooted at static/.
func Static() http.FileSystem {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return http.FS(sub)
}
