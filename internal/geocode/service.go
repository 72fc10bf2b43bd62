// Package geocode resolves free-text location strings to coordinates using
// the OpenWeather direct geocoding API.
//
// Failure policy (deliberate): with a configured credential the service is
// strict — an unresolvable location fails the request with a validation
// error and a transport failure surfaces as upstream-unavailable, because
// silently substituting an unrelated location would corrupt every
// downstream reading. Without a credential the service degrades to a fixed
// default location so the rest of the pipeline can still produce an
// estimate-tier analysis.
package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"airaware_backend/platform/apperr"
	"airaware_backend/platform/config"
	"airaware_backend/platform/logger"

	"golang.org/x/time/rate"
)

// DefaultLocation is the substitute used when no geocoding credential is
// configured.
var DefaultLocation = Location{
	Latitude:  28.6139,
	Longitude: 77.2090,
	Name:      "New Delhi",
	State:     "Delhi",
	Country:   "IN",
}

type Service struct {
	cfg     config.GeocodeConfig
	client  *http.Client
	limiter *rate.Limiter
	log     *logger.Logger
}

func NewService(cfg config.GeocodeConfig, log *logger.Logger) *Service {
	return &Service{
		cfg:    cfg,
		client: &http.Client{Timeout: 5 * time.Second},
		// Politeness cap on the upstream geocoder.
		limiter: rate.NewLimiter(rate.Limit(1), 1),
		log:     log,
	}
}

// Resolve geocodes the query, taking the first candidate.
func (s *Service) Resolve(ctx context.Context, query string) (Location, error) {
	if query == "" {
		return Location{}, apperr.Validation("location is required")
	}

	if !s.cfg.IsGeocodeEnabled() {
		s.log.FallbackUsed("geocode", "default_location", "credential absent")
		return DefaultLocation, nil
	}

	if err := s.limiter.Wait(ctx); err != nil {
		return Location{}, apperr.Wrap(apperr.KindUnavailable, "geocoding unavailable, please try again", err)
	}

	params := url.Values{}
	params.Set("q", query)
	params.Set("limit", "1")
	params.Set("appid", s.cfg.GetOpenWeatherAPIKey())

	reqURL := fmt.Sprintf("%s/direct?%s", s.cfg.GetGeocodeBaseURL(), params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return Location{}, apperr.Wrap(apperr.KindInternal, "failed to build geocode request", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		s.log.UpstreamError("openweather_geo", "direct", err)
		return Location{}, apperr.Wrap(apperr.KindUnavailable, "geocoding unavailable, please try again", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		s.log.UpstreamError("openweather_geo", "direct", fmt.Errorf("status %d", resp.StatusCode))
		return Location{}, apperr.Unavailable("geocoding unavailable, please try again")
	}

	var candidates []geoResponse
	if err := json.NewDecoder(resp.Body).Decode(&candidates); err != nil {
		s.log.UpstreamError("openweather_geo", "decode", err)
		return Location{}, apperr.Wrap(apperr.KindUnavailable, "geocoding unavailable, please try again", err)
	}

	if len(candidates) == 0 {
		return Location{}, apperr.Validation("location not found, please check the spelling and try again")
	}

	first := candidates[0]
	return Location{
		Latitude:  first.Lat,
		Longitude: first.Lon,
		Name:      first.Name,
		State:     first.State,
		Country:   first.Country,
	}, nil
}
