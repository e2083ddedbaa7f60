package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotel-cancellation-backend/config"
	"hotel-cancellation-backend/internal/classifier"
	"hotel-cancellation-backend/internal/encode"
	"hotel-cancellation-backend/internal/mw"
	"hotel-cancellation-backend/internal/predict"
)

func fixedProba(p1 float64) classifier.Func {
	return func(encode.FeatureVector) ([2]float64, error) {
		return [2]float64{1 - p1, p1}, nil
	}
}

func setupRouter(c classifier.Classifier) *gin.Engine {
	gin.SetMode(gin.TestMode)
	clock := func() time.Time { return time.Date(2024, 3, 9, 14, 5, 7, 0, time.UTC) }
	handler := NewHandler(predict.NewPresenter(c, predict.WithClock(clock)), "/srv/models/test.json")
	cfg := config.Default().Server
	cfg.RateLimitPerSec = 1000
	cfg.RateLimitBurst = 1000
	return NewRouter(handler, cfg)
}

func postJSON(router *gin.Engine, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/api/predictions", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func TestCreatePrediction(t *testing.T) {
	router := setupRouter(fixedProba(0.375))

	w := postJSON(router, `{"previous_cancellations": 1, "market_segment": "Online TA", "season": "Summer"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp predictionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, "2024-03-09", resp.Date)
	assert.Equal(t, "14:05:07", resp.Time)
	assert.Equal(t, "Not Canceled", resp.Prediction)
	assert.Equal(t, "%37.5", resp.CancelProbability)
	assert.Equal(t, 37.5, resp.CancelPercent)
	require.Len(t, resp.Chart, 2)
	assert.Equal(t, barResponse{Label: "Canceled", Value: 37.5, Color: "#E74C3C"}, resp.Chart[0])
	assert.Equal(t, barResponse{Label: "Not Canceled", Value: 62.5, Color: "#2ECC71"}, resp.Chart[1])
}

func TestCreatePredictionErrors(t *testing.T) {
	tests := []struct {
		name       string
		classifier classifier.Classifier
		body       string
		wantStatus int
		wantError  string
	}{
		{
			name:       "malformed json",
			classifier: fixedProba(0.9),
			body:       `{"lead_time":`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "conflicting history from defaults",
			classifier: fixedProba(0.9),
			body:       `{}`,
			wantStatus: http.StatusUnprocessableEntity,
			wantError:  "conflicting previous-booking history",
		},
		{
			name:       "both history counters set to one",
			classifier: fixedProba(0.9),
			body:       `{"previous_cancellations": 1, "previous_bookings_not_canceled": 1}`,
			wantStatus: http.StatusUnprocessableEntity,
			wantError:  "conflicting previous-booking history",
		},
		{
			name:       "out of range",
			classifier: fixedProba(0.9),
			body:       `{"previous_cancellations": 1, "lead_time": 751}`,
			wantStatus: http.StatusUnprocessableEntity,
			wantError:  "validation failed",
		},
		{
			name:       "unknown season",
			classifier: fixedProba(0.9),
			body:       `{"previous_cancellations": 1, "season": "Monsoon"}`,
			wantStatus: http.StatusUnprocessableEntity,
			wantError:  "validation failed",
		},
		{
			name: "classifier failure",
			classifier: classifier.Func(func(encode.FeatureVector) ([2]float64, error) {
				return [2]float64{}, errors.New("boom")
			}),
			body:       `{"previous_cancellations": 1}`,
			wantStatus: http.StatusInternalServerError,
			wantError:  "prediction failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := postJSON(setupRouter(tt.classifier), tt.body)
			assert.Equal(t, tt.wantStatus, w.Code)

			var body map[string]any
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			if tt.wantError != "" {
				assert.Equal(t, tt.wantError, body["error"])
			} else {
				assert.NotEmpty(t, body["error"])
			}
		})
	}
}

func TestCreatePredictionFieldErrors(t *testing.T) {
	router := setupRouter(fixedProba(0.9))

	w := postJSON(router, `{"previous_cancellations": 1, "adults": 56, "car_parking_spaces": 4}`)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.JSONEq(t, `{
		"error": "validation failed",
		"fields": [
			{"field": "adults", "message": "must be at most 55"},
			{"field": "car_parking_spaces", "message": "must be one of 0, 1, 2, 3"}
		]
	}`, w.Body.String())
}

func TestCreatePredictionConflictingHistoryMessage(t *testing.T) {
	router := setupRouter(fixedProba(0.9))

	w := postJSON(router, `{"previous_cancellations": 0, "previous_bookings_not_canceled": 0}`)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, predict.ConflictingHistoryMessage, body["message"])
}

func TestPage(t *testing.T) {
	router := setupRouter(fixedProba(0.625))

	t.Run("form with defaults", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		body := w.Body.String()
		assert.Contains(t, body, `name="lead_time"`)
		assert.Contains(t, body, `value="100"`)
		assert.Contains(t, body, `<option value="No Deposit" selected>`)
		assert.NotContains(t, body, "Prediction Result")
	})

	t.Run("submission renders result", func(t *testing.T) {
		form := url.Values{}
		form.Set("lead_time", "30")
		form.Set("previous_cancellations", "1")
		form.Set("season", "Winter")

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodPost, "/", strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		body := w.Body.String()
		assert.Contains(t, body, "Prediction Result")
		assert.Contains(t, body, "<td>Canceled</td>")
		assert.Contains(t, body, "%62.5")
		assert.Contains(t, body, "62.50%")
		assert.Contains(t, body, "37.50%")
		assert.Contains(t, body, `<option value="Winter" selected>`)
	})

	t.Run("conflicting history shows message", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodPost, "/", strings.NewReader(url.Values{}.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Contains(t, w.Body.String(), "Previous Bookings Not Canceled")
		assert.NotContains(t, w.Body.String(), "Prediction Result")
	})
}

func TestGetSchemaIsCached(t *testing.T) {
	router := setupRouter(fixedProba(0.5))

	first := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/schema", nil)
	router.ServeHTTP(first, req)
	require.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, "MISS", first.Header().Get(mw.CacheHeader))

	var schema SchemaResponse
	require.NoError(t, json.Unmarshal(first.Body.Bytes(), &schema))
	assert.Len(t, schema.Numeric, 11)
	assert.Len(t, schema.Choices, 6)
	assert.Equal(t, encode.ColumnNames(), schema.Features)

	second := httptest.NewRecorder()
	req, _ = http.NewRequest(http.MethodGet, "/api/schema", nil)
	router.ServeHTTP(second, req)
	assert.Equal(t, "HIT", second.Header().Get(mw.CacheHeader))
	assert.Equal(t, first.Body.String(), second.Body.String())
}

func TestHealth(t *testing.T) {
	router := setupRouter(fixedProba(0.5))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/healthz", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok","model":"/srv/models/test.json","features":36}`, w.Body.String())
}

func TestMetricsEndpoint(t *testing.T) {
	router := setupRouter(fixedProba(0.75))
	postJSON(router, `{"previous_cancellations": 1}`)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/metrics", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `hotel_predictions_total{verdict="Canceled"}`)
}
