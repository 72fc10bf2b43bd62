package scoring

// AnalyserRequest is the stdin document for the AQI analyser collaborator.
// Field names follow the script's expected schema.
type AnalyserRequest struct {
	AQI                int     `json:"aqi"`
	Temperature        float64 `json:"temperature"`
	Humidity           float64 `json:"humidity"`
	WindSpeed          float64 `json:"wind_speed"`
	Pressure           float64 `json:"pressure"`
	AreaType           string  `json:"area_type"`
	TrafficDensity     string  `json:"traffic_density"`
	IndustrialActivity string  `json:"industrial_activity"`
	Action             string  `json:"action"`
}

// OptimiserRequest is the stdin document for the intervention optimiser
// collaborator.
type OptimiserRequest struct {
	Budget          int                `json:"budget"`
	AQI             int                `json:"aqi"`
	PriorityFactors map[string]float64 `json:"priority_factors,omitempty"`
}

// ActionFullAnalysis selects the analyser's full-report mode.
const ActionFullAnalysis = "full_analysis"
