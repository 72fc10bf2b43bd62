// Package weather fetches current conditions from the OpenWeather API.
// The fetcher always returns a fully populated reading: on missing
// credential or any request failure it substitutes DefaultReading.
package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"airaware_backend/platform/config"
	"airaware_backend/platform/logger"
)

type Service struct {
	cfg    config.WeatherConfig
	client *http.Client
	log    *logger.Logger
}

func NewService(cfg config.WeatherConfig, log *logger.Logger) *Service {
	return &Service{
		cfg:    cfg,
		client: &http.Client{Timeout: 10 * time.Second},
		log:    log,
	}
}

// Fetch returns current conditions for the coordinates, never an error.
func (s *Service) Fetch(ctx context.Context, lat, lon float64) Reading {
	if !s.cfg.IsOpenWeatherEnabled() {
		s.log.FallbackUsed("weather", "default_record", "credential absent")
		return DefaultReading
	}

	reading, err := s.fetch(ctx, lat, lon)
	if err != nil {
		s.log.UpstreamError("openweather", "weather", err)
		s.log.FallbackUsed("weather", "default_record", err.Error())
		return DefaultReading
	}
	return reading
}

func (s *Service) fetch(ctx context.Context, lat, lon float64) (Reading, error) {
	params := url.Values{}
	params.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	params.Set("lon", strconv.FormatFloat(lon, 'f', -1, 64))
	params.Set("units", "metric")
	params.Set("appid", s.cfg.GetOpenWeatherAPIKey())

	reqURL := fmt.Sprintf("%s/weather?%s", s.cfg.GetWeatherBaseURL(), params.Encode())

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
		return Reading{}, fmt.Errorf("openweather weather status %d", resp.StatusCode)
	}

	var payload openWeatherResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return Reading{}, err
	}

	description := ""
	if len(payload.Weather) > 0 {
		description = payload.Weather[0].Description
	}

	return Reading{
		Temperature: payload.Main.Temp,
		FeelsLike:   payload.Main.FeelsLike,
		Humidity:    payload.Main.Humidity,
		WindSpeed:   payload.Wind.Speed * 3.6, // m/s to km/h
		Pressure:    payload.Main.Pressure,
		Description: description,
		Visibility:  payload.Visibility,
		CloudCover:  payload.Clouds.All,
	}, nil
}
