// Package metrics exposes the prediction counters scraped at /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// PredictionsTotal counts served predictions by verdict.
	PredictionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "hotel_predictions_total",
		Help: "Total number of predictions served, by verdict.",
	}, []string{"verdict"})
	// RejectionsTotal counts submissions rejected before scoring, by reason.
	RejectionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "hotel_prediction_rejections_total",
		Help: "Total number of submissions rejected before scoring, by reason.",
	}, []string{"reason"})
	// ClassifierFailures counts classifier invocations that returned an error.
	ClassifierFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "hotel_classifier_failures_total",
		Help: "Total number of classifier invocations that returned an error.",
	})
	// PredictDuration observes one validate, encode and classify cycle.
	PredictDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "hotel_predict_duration_seconds",
		Help:    "Duration of a full validate, encode and classify cycle.",
		Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1},
	})
)

// Rejection reasons.
const (
	ReasonHistory = "conflicting_history"
	ReasonRange   = "out_of_range"
)
