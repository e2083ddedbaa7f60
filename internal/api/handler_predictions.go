package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"hotel-cancellation-backend/internal/model"
	"hotel-cancellation-backend/internal/predict"
)

type barResponse struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
	Color string  `json:"color"`
}

// predictionResponse is the JSON form of a predict.Result.
type predictionResponse struct {
	ID                string        `json:"id"`
	Date              string        `json:"date"`
	Time              string        `json:"time"`
	Prediction        string        `json:"prediction"`
	CancelProbability string        `json:"cancel_probability"`
	CancelPercent     float64       `json:"cancel_percent"`
	Chart             []barResponse `json:"chart"`
}

func newPredictionResponse(res *predict.Result) predictionResponse {
	chart := make([]barResponse, 0, len(res.Chart))
	for _, b := range res.Chart {
		chart = append(chart, barResponse{Label: b.Label, Value: b.Value.InexactFloat64(), Color: b.Color})
	}
	return predictionResponse{
		ID:                res.ID.String(),
		Date:              res.Date,
		Time:              res.Time,
		Prediction:        string(res.Verdict),
		CancelProbability: res.PercentLabel(),
		CancelPercent:     res.CancelPercent.InexactFloat64(),
		Chart:             chart,
	}
}

// CreatePrediction handles POST /api/predictions. Omitted fields take the
// form defaults.
func (h *Handler) CreatePrediction(c *gin.Context) {
	attrs := model.DefaultBookingAttributes()
	if err := c.ShouldBindJSON(&attrs); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	res, err := h.predict(attrs)
	if err != nil {
		writePredictionError(c, err)
		return
	}
	c.JSON(http.StatusOK, newPredictionResponse(res))
}

func writePredictionError(c *gin.Context, err error) {
	var fieldErrs model.FieldErrors
	switch {
	case errors.Is(err, predict.ErrConflictingHistory):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":   err.Error(),
			"message": predict.ConflictingHistoryMessage,
		})
	case errors.As(err, &fieldErrs):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":  "validation failed",
			"fields": fieldErrs,
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "prediction failed"})
	}
}
