package api

import (
	"errors"
	"log"
	"time"

	"hotel-cancellation-backend/internal/metrics"
	"hotel-cancellation-backend/internal/model"
	"hotel-cancellation-backend/internal/predict"
)

// Handler holds shared dependencies for API handlers.
type Handler struct {
	presenter *predict.Presenter
	modelPath string
}

// NewHandler creates a new API handler.
func NewHandler(presenter *predict.Presenter, modelPath string) *Handler {
	return &Handler{
		presenter: presenter,
		modelPath: modelPath,
	}
}

// predict runs one submission through the presenter and records metrics.
func (h *Handler) predict(attrs model.BookingAttributes) (*predict.Result, error) {
	start := time.Now()
	res, err := h.presenter.Present(attrs)
	metrics.PredictDuration.Observe(time.Since(start).Seconds())

	switch {
	case err == nil:
		metrics.PredictionsTotal.WithLabelValues(string(res.Verdict)).Inc()
		log.Printf("prediction %s: %s (p=%.4f)", res.ID, res.Verdict, res.Probability)
	case errors.Is(err, predict.ErrConflictingHistory):
		metrics.RejectionsTotal.WithLabelValues(metrics.ReasonHistory).Inc()
	case predict.IsValidation(err):
		metrics.RejectionsTotal.WithLabelValues(metrics.ReasonRange).Inc()
	default:
		metrics.ClassifierFailures.Inc()
		log.Printf("prediction failed: %v", err)
	}
	return res, err
}
