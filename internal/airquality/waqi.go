package airquality

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
)

// fetchWAQI queries the WAQI geolocated feed. The feed reports measured
// station data, so readings from this tier are tagged High accuracy.
func (s *Service) fetchWAQI(ctx context.Context, lat, lon float64) (Reading, error) {
	params := url.Values{}
	params.Set("token", s.cfg.GetWAQIToken())

	reqURL := fmt.Sprintf("%s/feed/geo:%f;%f/?%s", s.cfg.GetWAQIBaseURL(), lat, lon, params.Encode())

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
		return Reading{}, fmt.Errorf("waqi status %d", resp.StatusCode)
	}

	var payload waqiResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return Reading{}, err
	}
	if payload.Status != "ok" {
		return Reading{}, fmt.Errorf("waqi payload status %q", payload.Status)
	}

	reading := Reading{
		AQI:               payload.Data.AQI,
		DominantPollutant: payload.Data.DominentPol,
		Source:            SourceWAQI,
		Accuracy:          AccuracyHigh,
	}
	reading.Pollutants = Pollutants{
		PM25: iaqiValue(payload, "pm25"),
		PM10: iaqiValue(payload, "pm10"),
		NO2:  iaqiValue(payload, "no2"),
		SO2:  iaqiValue(payload, "so2"),
		CO:   iaqiValue(payload, "co"),
		O3:   iaqiValue(payload, "o3"),
	}

	return reading, nil
}

func iaqiValue(payload waqiResponse, key string) *float64 {
	entry, ok := payload.Data.IAQI[key]
	if !ok {
		return nil
	}
	v := entry.V
	return &v
}
