// Package analysis orchestrates a single analysis request: resolve the
// location, gather air quality and weather concurrently, classify the
// location context, run the scientific scoring collaborators, generate
// interventions, and assemble the response. Past geocoding, every step
// degrades instead of failing.
package analysis

import (
	"context"
	"encoding/json"
	"time"

	"airaware_backend/internal/airquality"
	"airaware_backend/internal/geocode"
	"airaware_backend/internal/locality"
	"airaware_backend/internal/recommend"
	"airaware_backend/internal/scoring"
	"airaware_backend/internal/weather"
	"airaware_backend/platform/apperr"
	"airaware_backend/platform/logger"
	"airaware_backend/platform/validator"

	"golang.org/x/sync/errgroup"
)

// Geocoder resolves a free-text location to coordinates.
type Geocoder interface {
	Resolve(ctx context.Context, query string) (geocode.Location, error)
}

// AirQualityFetcher walks the source chain for one reading.
type AirQualityFetcher interface {
	Fetch(ctx context.Context, lat, lon float64) airquality.Reading
}

// WeatherFetcher returns current conditions, degraded or not.
type WeatherFetcher interface {
	Fetch(ctx context.Context, lat, lon float64) weather.Reading
}

// ScoringRunner invokes the two external scientific collaborators.
type ScoringRunner interface {
	AnalyzeAQI(ctx context.Context, req scoring.AnalyserRequest) (json.RawMessage, error)
	OptimizeBudget(ctx context.Context, req scoring.OptimiserRequest) (json.RawMessage, error)
}

// RecommendationGenerator produces the intervention plan.
type RecommendationGenerator interface {
	Generate(ctx context.Context, in recommend.Input) []recommend.Intervention
}

type Service struct {
	geocoder    Geocoder
	air         AirQualityFetcher
	weather     WeatherFetcher
	scoring     ScoringRunner
	recommender RecommendationGenerator
	cache       *Cache
	val         *validator.Validator
	log         *logger.Logger
}

func NewService(
	geocoder Geocoder,
	air AirQualityFetcher,
	weatherFetcher WeatherFetcher,
	scoringRunner ScoringRunner,
	recommender RecommendationGenerator,
	cache *Cache,
	val *validator.Validator,
	log *logger.Logger,
) *Service {
	return &Service{
		geocoder:    geocoder,
		air:         air,
		weather:     weatherFetcher,
		scoring:     scoringRunner,
		recommender: recommender,
		cache:       cache,
		val:         val,
		log:         log,
	}
}

// Analyze runs the full pipeline for one request. The only errors it
// returns are geocoding failures; everything downstream degrades to a
// default or null value.
func (s *Service) Analyze(ctx context.Context, req AnalysisRequest) (*AnalysisResponse, error) {
	if err := s.val.Struct(req); err != nil {
		return nil, apperr.Wrap(apperr.KindValidation, "location and a positive budget are required", err)
	}

	if cached := s.cache.Get(ctx, req.Location, req.Budget); cached != nil {
		s.log.Debug("analysis served from cache", "location", req.Location)
		return cached, nil
	}

	location, err := s.geocoder.Resolve(ctx, req.Location)
	if err != nil {
		return nil, err
	}

	// Air quality and weather are independent; issue them concurrently and
	// join. Neither fetch can fail, so the group carries no errors.
	var (
		airReading     airquality.Reading
		weatherReading weather.Reading
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		airReading = s.air.Fetch(gctx, location.Latitude, location.Longitude)
		return nil
	})
	g.Go(func() error {
		weatherReading = s.weather.Fetch(gctx, location.Latitude, location.Longitude)
		return nil
	})
	locationContext := locality.Classify(req.Location)
	_ = g.Wait()

	scientific, optimization := s.runScoring(ctx, req.Budget, airReading, weatherReading, locationContext)

	interventions := s.recommender.Generate(ctx, recommend.Input{
		LocationName:      displayName(location, req.Location),
		AQI:               airReading.AQI,
		DominantPollutant: airReading.DominantPollutant,
		Weather:           weatherReading,
		Context:           locationContext,
		Budget:            req.Budget,
	})

	resp := &AnalysisResponse{
		Location:           location,
		AirQuality:         airReading,
		Weather:            weatherReading,
		Context:            locationContext,
		ScientificAnalysis: scientific,
		Optimization:       optimization,
		Interventions:      interventions,
		Budget:             req.Budget,
		GeneratedAt:        time.Now().UTC(),
	}

	s.cache.Set(ctx, req.Location, req.Budget, resp)
	return resp, nil
}

// runScoring invokes both collaborators in sequence. An unavailable
// collaborator yields a null block, never a request failure.
func (s *Service) runScoring(ctx context.Context, budget int, air airquality.Reading, wx weather.Reading, locCtx locality.Context) (json.RawMessage, json.RawMessage) {
	if s.scoring == nil {
		return nil, nil
	}

	scientific, err := s.scoring.AnalyzeAQI(ctx, scoring.AnalyserRequest{
		AQI:                air.AQI,
		Temperature:        wx.Temperature,
		Humidity:           float64(wx.Humidity),
		WindSpeed:          wx.WindSpeed,
		Pressure:           float64(wx.Pressure),
		AreaType:           string(locCtx.AreaType),
		TrafficDensity:     string(locCtx.TrafficDensity),
		IndustrialActivity: string(locCtx.IndustrialActivity),
		Action:             scoring.ActionFullAnalysis,
	})
	if err != nil {
		s.log.UpstreamError("aqi_analyser", "analyze", err)
		scientific = nil
	}

	optimization, err := s.scoring.OptimizeBudget(ctx, scoring.OptimiserRequest{
		Budget: budget,
		AQI:    air.AQI,
	})
	if err != nil {
		s.log.UpstreamError("intervention_optimiser", "optimize", err)
		optimization = nil
	}

	return scientific, optimization
}

func displayName(loc geocode.Location, query string) string {
	if loc.Name == "" {
		return query
	}
	if loc.State != "" {
		return loc.Name + ", " + loc.State
	}
	return loc.Name
}
