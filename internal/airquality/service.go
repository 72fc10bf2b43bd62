// Package airquality produces one normalized air-quality reading per request
// through a strict source-priority fallback chain: WAQI, then the OpenWeather
// Air Pollution API, then a fixed estimate. Each tier is attempted only after
// the previous one is exhausted; the chain never races providers and never
// returns an error.
package airquality

import (
	"context"
	"net/http"
	"time"

	"airaware_backend/platform/config"
	"airaware_backend/platform/logger"
)

type Service struct {
	cfg    config.AirQualityConfig
	client *http.Client
	log    *logger.Logger
}

func NewService(cfg config.AirQualityConfig, log *logger.Logger) *Service {
	return &Service{
		cfg:    cfg,
		client: &http.Client{Timeout: 10 * time.Second},
		log:    log,
	}
}

// Fetch walks the source chain for the given coordinates. A tier that fails
// is logged and abandoned without retry. The returned reading always carries
// a source and accuracy tag.
func (s *Service) Fetch(ctx context.Context, lat, lon float64) Reading {
	if s.cfg.IsWAQIEnabled() {
		reading, err := s.fetchWAQI(ctx, lat, lon)
		if err == nil {
			return reading
		}
		s.log.UpstreamError("waqi", "feed", err)
	} else {
		s.log.FallbackUsed("airquality", SourceOpenWeather, "waqi credential absent")
	}

	if s.cfg.IsOpenWeatherEnabled() {
		reading, err := s.fetchOpenWeather(ctx, lat, lon)
		if err == nil {
			return reading
		}
		s.log.UpstreamError("openweather", "air_pollution", err)
	} else {
		s.log.FallbackUsed("airquality", SourceEstimated, "openweather credential absent")
	}

	s.log.FallbackUsed("airquality", SourceEstimated, "all providers exhausted")
	return Reading{
		AQI:      estimatedAQI,
		Source:   SourceEstimated,
		Accuracy: AccuracyLow,
	}
}
