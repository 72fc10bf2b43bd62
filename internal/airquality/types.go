package airquality

// Provenance tags carried on every reading so callers can tell which tier
// of the source chain produced it.
const (
	SourceWAQI        = "WAQI"
	SourceOpenWeather = "OpenWeather"
	SourceEstimated   = "Estimated"

	AccuracyHigh     = "High"
	AccuracyModerate = "Moderate"
	AccuracyLow      = "Low"
)

// estimatedAQI is the fixed index returned when every provider tier fails.
const estimatedAQI = 150

// Pollutants holds per-pollutant concentrations in µg/m³. Fields are
// pointers because providers routinely omit individual measurements.
type Pollutants struct {
	PM25 *float64 `json:"pm2_5"`
	PM10 *float64 `json:"pm10"`
	NO2  *float64 `json:"no2"`
	SO2  *float64 `json:"so2"`
	CO   *float64 `json:"co"`
	O3   *float64 `json:"o3"`
}

// Reading is the normalized air-quality record produced by the source
// chain. AQI is always present; pollutant detail may be absent on the
// estimate tier.
type Reading struct {
	AQI               int        `json:"aqi"`
	DominantPollutant string     `json:"dominant_pollutant,omitempty"`
	Pollutants        Pollutants `json:"pollutants"`
	Source            string     `json:"data_source"`
	Accuracy          string     `json:"data_accuracy"`
}

// waqiResponse mirrors the WAQI city feed payload.
type waqiResponse struct {
	Status string `json:"status"`
	Data   struct {
		AQI         int    `json:"aqi"`
		DominentPol string `json:"dominentpol"`
		IAQI        map[string]struct {
			V float64 `json:"v"`
		} `json:"iaqi"`
	} `json:"data"`
}

// airPollutionResponse mirrors the OpenWeather Air Pollution payload.
type airPollutionResponse struct {
	List []struct {
		Main struct {
			AQI int `json:"aqi"`
		} `json:"main"`
		Components struct {
			CO   float64 `json:"co"`
			NO2  float64 `json:"no2"`
			O3   float64 `json:"o3"`
			SO2  float64 `json:"so2"`
			PM25 float64 `json:"pm2_5"`
			PM10 float64 `json:"pm10"`
		} `json:"components"`
	} `json:"list"`
}

// openWeatherAQIScale maps the provider's five-tier ordinal index onto the
// 0-500 AQI scale.
var openWeatherAQIScale = map[int]int{
	1: 50,
	2: 100,
	3: 150,
	4: 200,
	5: 300,
}
