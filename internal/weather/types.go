package weather

// Reading is the normalized current-conditions record. Every field is
// always populated: either from the provider or from DefaultReading.
type Reading struct {
	Temperature float64 `json:"temperature"`
	FeelsLike   float64 `json:"feels_like"`
	Humidity    int     `json:"humidity"`
	WindSpeed   float64 `json:"wind_speed"` // km/h
	Pressure    int     `json:"pressure"`   // hPa
	Description string  `json:"description"`
	Visibility  int     `json:"visibility"` // metres
	CloudCover  int     `json:"cloud_cover"`
}

// DefaultReading is the fixed record substituted when the provider is
// unavailable or no credential is configured. Weather is enrichment, never
// a blocking dependency.
var DefaultReading = Reading{
	Temperature: 25,
	FeelsLike:   27,
	Humidity:    60,
	WindSpeed:   10,
	Pressure:    1013,
	Description: "weather data unavailable",
	Visibility:  10000,
	CloudCover:  40,
}

// openWeatherResponse mirrors the relevant parts of the OpenWeather
// current-weather payload.
type openWeatherResponse struct {
	Main struct {
		Temp      float64 `json:"temp"`
		FeelsLike float64 `json:"feels_like"`
		Humidity  int     `json:"humidity"`
		Pressure  int     `json:"pressure"`
	} `json:"main"`
	Weather []struct {
		Description string `json:"description"`
	} `json:"weather"`
	Wind struct {
		Speed float64 `json:"speed"` // m/s
	} `json:"wind"`
	Visibility int `json:"visibility"`
	Clouds     struct {
		All int `json:"all"`
	} `json:"clouds"`
}
