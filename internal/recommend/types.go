package recommend

import (
	"airaware_backend/internal/locality"
	"airaware_backend/internal/weather"
)

// Intervention is one recommended mitigation action. The field set matches
// the JSON object the model is instructed to emit and the static fallback
// table.
type Intervention struct {
	Title               string  `json:"title"`
	Description         string  `json:"description"`
	Priority            string  `json:"priority"`
	EstimatedCost       string  `json:"estimated_cost"`
	ExpectedImprovement string  `json:"expected_aqi_improvement"`
	ImplementationTime  string  `json:"implementation_time"`
	FeasibilityScore    float64 `json:"feasibility_score"`
	BudgetScaling       string  `json:"budget_scaling"`
	TargetPollutant     string  `json:"target_pollutant"`
	Type                string  `json:"intervention_type"`
}

const (
	PriorityHigh   = "High"
	PriorityMedium = "Medium"
	PriorityLow    = "Low"
)

// Input is the merged environmental record the prompt is built from.
type Input struct {
	LocationName      string
	AQI               int
	DominantPollutant string
	Weather           weather.Reading
	Context           locality.Context
	Budget            int
}

// modelResponse is the envelope the model is asked to emit.
type modelResponse struct {
	Interventions []Intervention `json:"interventions"`
}
