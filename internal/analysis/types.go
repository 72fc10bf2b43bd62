package analysis

import (
	"encoding/json"
	"time"

	"airaware_backend/internal/airquality"
	"airaware_backend/internal/geocode"
	"airaware_backend/internal/locality"
	"airaware_backend/internal/recommend"
	"airaware_backend/internal/weather"
)

// AnalysisRequest is the inbound body for POST /analyze. The validate tags
// guard callers that reach the service without going through gin binding.
type AnalysisRequest struct {
	Location string `json:"location" binding:"required" validate:"required"`
	Budget   int    `json:"budget" binding:"required,gt=0" validate:"required,gt=0"`
}

// AnalysisResponse is the single externally observed artifact of a request:
// every gathered signal merged with the generated intervention plan. The
// scientific blocks are null when the corresponding collaborator was
// unavailable.
type AnalysisResponse struct {
	Location           geocode.Location         `json:"location"`
	AirQuality         airquality.Reading       `json:"air_quality"`
	Weather            weather.Reading          `json:"weather"`
	Context            locality.Context         `json:"location_context"`
	ScientificAnalysis json.RawMessage          `json:"scientific_analysis"`
	Optimization       json.RawMessage          `json:"optimization"`
	Interventions      []recommend.Intervention `json:"interventions"`
	Budget             int                      `json:"budget"`
	GeneratedAt        time.Time                `json:"generated_at"`
	RequestID          string                   `json:"request_id,omitempty"`
}
