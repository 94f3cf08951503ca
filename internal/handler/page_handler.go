package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stemsi/depredict/internal/response"
	"github.com/stemsi/depredict/internal/service"
	"github.com/stemsi/depredict/internal/validator"
	"github.com/stemsi/depredict/internal/web"
)

// PageHandler renders the single-page HTML form and its verdict.
type PageHandler struct {
	predictionService *service.PredictionService
	log               zerolog.Logger
}

func NewPageHandler(predictionService *service.PredictionService, log zerolog.Logger) *PageHandler {
	return &PageHandler{
		predictionService: predictionService,
		log:               log.With().Str("component", "page_handler").Logger(),
	}
}

// Index godoc
// GET /
func (h *PageHandler) Index(c *gin.Context) {
	c.HTML(http.StatusOK, web.IndexTemplate, web.NewPageData())
}

// Predict godoc
// POST /predict
func (h *PageHandler) Predict(c *gin.Context) {
	data := web.NewPageData()

	if fields := validator.BindForm(c, &data.Profile); fields != nil {
		data.Fields = fields
		c.HTML(http.StatusBadRequest, web.IndexTemplate, data)
		return
	}

	result, err := h.predictionService.Predict(c.Request.Context(), data.Profile)
	if err != nil {
		// The cause is logged by the service; the page only gets the generic message.
		data.Error = response.GetMessage(response.ErrInference)
		status := http.StatusServiceUnavailable
		if !service.IsInferenceError(err) {
			h.log.Error().Err(err).Msg("unexpected prediction failure")
			data.Error = response.GetMessage(response.ErrInternal)
			status = http.StatusInternalServerError
		}
		c.HTML(status, web.IndexTemplate, data)
		return
	}

	data.Result = result
	c.HTML(http.StatusOK, web.IndexTemplate, data)
}
