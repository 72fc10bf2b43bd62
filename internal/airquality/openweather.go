package airquality

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

// fetchOpenWeather queries the OpenWeather Air Pollution API. The provider
// reports a five-tier ordinal index which is mapped onto the 0-500 scale,
// so readings from this tier are tagged Moderate accuracy.
func (s *Service) fetchOpenWeather(ctx context.Context, lat, lon float64) (Reading, error) {
	params := url.Values{}
	params.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	params.Set("lon", strconv.FormatFloat(lon, 'f', -1, 64))
	params.Set("appid", s.cfg.GetOpenWeatherAPIKey())

	reqURL := fmt.Sprintf("%s/air_pollution?%s", s.cfg.GetAirPollutionBaseURL(), params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return Reading{}, err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return Reading{}, err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return Reading{}, fmt.Errorf("openweather air_pollution status %d", resp.StatusCode)
	}

	var payload airPollutionResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return Reading{}, err
	}
	if len(payload.List) == 0 {
		return Reading{}, fmt.Errorf("openweather air_pollution empty list")
	}

	entry := payload.List[0]
	aqi, ok := openWeatherAQIScale[entry.Main.AQI]
	if !ok {
		return Reading{}, fmt.Errorf("openweather air_pollution index %d out of range", entry.Main.AQI)
	}

	components := entry.Components
	reading := Reading{
		AQI:               aqi,
		DominantPollutant: dominantComponent(components),
		Source:            SourceOpenWeather,
		Accuracy:          AccuracyModerate,
		Pollutants: Pollutants{
			PM25: &components.PM25,
			PM10: &components.PM10,
			NO2:  &components.NO2,
			SO2:  &components.SO2,
			CO:   &components.CO,
			O3:   &components.O3,
		},
	}

	return reading, nil
}

// dominantComponent picks the highest concentration pollutant. CO is
// excluded: it is reported in concentrations an order of magnitude above
// the rest and would always win.
func dominantComponent(c struct {
	CO   float64 `json:"co"`
	NO2  float64 `json:"no2"`
	O3   float64 `json:"o3"`
	SO2  float64 `json:"so2"`
	PM25 float64 `json:"pm2_5"`
	PM10 float64 `json:"pm10"`
}) string {
	candidates := []struct {
		name  string
		value float64
	}{
		{"pm25", c.PM25},
		{"pm10", c.PM10},
		{"no2", c.NO2},
		{"so2", c.SO2},
		{"o3", c.O3},
	}

	dominant := candidates[0]
	for _, candidate := range candidates[1:] {
		if candidate.value > dominant.value {
			dominant = candidate
		}
	}
	return dominant.name
}
