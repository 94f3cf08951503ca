package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/stemsi/depredict/internal/model"
	"github.com/stemsi/depredict/internal/response"
	"github.com/stemsi/depredict/internal/service"
	"github.com/stemsi/depredict/internal/validator"
)

// PredictionHandler serves the JSON prediction API.
type PredictionHandler struct {
	predictionService *service.PredictionService
}

func NewPredictionHandler(predictionService *service.PredictionService) *PredictionHandler {
	return &PredictionHandler{predictionService: predictionService}
}

// Predict godoc
// POST /api/v1/predict
func (h *PredictionHandler) Predict(c *gin.Context) {
	var req model.StudentProfile
	if err := c.ShouldBindJSON(&req); err != nil {
		code := response.ErrInvalidPayload
		if validator.IsValidationError(err) {
			code = response.ErrValidation
		}
		response.FailWithFields(c, http.StatusBadRequest, code, validator.TranslateErrors(err))
		return
	}

	result, err := h.predictionService.Predict(c.Request.Context(), req)
	if err != nil {
		if service.IsInferenceError(err) {
			response.Fail(c, http.StatusServiceUnavailable, response.ErrInference)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, result)
}

// GetBands godoc
// GET /api/v1/bands
func (h *PredictionHandler) GetBands(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{"bands": h.predictionService.Bands()})
}

// GetModel godoc
// GET /api/v1/model
func (h *PredictionHandler) GetModel(c *gin.Context) {
	response.Success(c, http.StatusOK, h.predictionService.ModelInfo())
}
