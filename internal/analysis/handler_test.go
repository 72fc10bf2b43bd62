package analysis

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"airaware_backend/internal/airquality"
	"airaware_backend/internal/geocode"
	apphttp "airaware_backend/internal/http"
	"airaware_backend/internal/http/router"
	"airaware_backend/internal/recommend"
	"airaware_backend/internal/scoring"
	"airaware_backend/internal/weather"
	"airaware_backend/platform/config"
	"airaware_backend/platform/logger"
	"airaware_backend/platform/validator"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newDegradedEngine builds the full HTTP stack with no provider credentials
// configured, so every collaborator runs on its lowest fallback tier.
func newDegradedEngine(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{Env: "test", CORSOrigins: []string{"http://localhost:4200"}}
	log := logger.New("development")

	svc := NewService(
		geocode.NewService(cfg, log),
		airquality.NewService(cfg, log),
		weather.NewService(cfg, log),
		scoring.NewRunner(cfg, log),
		recommend.NewService(context.Background(), cfg, log),
		nil,
		validator.New(),
		log,
	)

	return router.New(&router.App{
		Config:  cfg,
		Logger:  log,
		Modules: []apphttp.Module{NewModule(svc, log)},
	})
}

func TestAnalyzeAllProvidersUnavailableStillSucceeds(t *testing.T) {
	engine := newDegradedEngine(t)

	body := bytes.NewBufferString(`{"location": "Connaught Place, New Delhi", "budget": 200000}`)
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/analyze", body)
	req.Header.Set("Content-Type", "application/json")
	engine.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp AnalysisResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.Equal(t, geocode.DefaultLocation, resp.Location)
	assert.Equal(t, airquality.SourceEstimated, resp.AirQuality.Source)
	assert.Equal(t, airquality.AccuracyLow, resp.AirQuality.Accuracy)
	assert.Equal(t, 150, resp.AirQuality.AQI)
	assert.Equal(t, weather.DefaultReading, resp.Weather)
	assert.Equal(t, "null", string(resp.ScientificAnalysis))
	assert.Equal(t, "null", string(resp.Optimization))
	assert.Equal(t, recommend.FallbackInterventions(200000), resp.Interventions)
	assert.NotEmpty(t, resp.RequestID)
}

type countingGeocoder struct{ calls int }

func (g *countingGeocoder) Resolve(ctx context.Context, query string) (geocode.Location, error) {
	g.calls++
	return geocode.DefaultLocation, nil
}

type staticAir struct{}

func (staticAir) Fetch(ctx context.Context, lat, lon float64) airquality.Reading {
	return airquality.Reading{AQI: 150, Source: airquality.SourceEstimated, Accuracy: airquality.AccuracyLow}
}

type staticWeather struct{}

func (staticWeather) Fetch(ctx context.Context, lat, lon float64) weather.Reading {
	return weather.DefaultReading
}

type staticRecommender struct{}

func (staticRecommender) Generate(ctx context.Context, in recommend.Input) []recommend.Intervention {
	return recommend.FallbackInterventions(in.Budget)
}

func TestAnalyzeMissingBudgetRejectedBeforeAnyOutboundCall(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{Env: "test", CORSOrigins: []string{"http://localhost:4200"}}
	log := logger.New("development")

	geocoder := &countingGeocoder{}
	svc := NewService(geocoder, staticAir{}, staticWeather{}, nil, staticRecommender{}, nil, validator.New(), log)
	engine := router.New(&router.App{
		Config:  cfg,
		Logger:  log,
		Modules: []apphttp.Module{NewModule(svc, log)},
	})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/analyze", bytes.NewBufferString(`{"location": "New Delhi"}`))
	req.Header.Set("Content-Type", "application/json")
	engine.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "error")
	assert.Zero(t, geocoder.calls)
}

func TestHealthReportsCapabilityFlags(t *testing.T) {
	engine := newDegradedEngine(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	engine.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var payload struct {
		Status       string          `json:"status"`
		Capabilities map[string]bool `json:"capabilities"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	assert.Equal(t, "ok", payload.Status)
	for name, enabled := range payload.Capabilities {
		assert.False(t, enabled, "capability %s should be off without credentials", name)
	}
}
