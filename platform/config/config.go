// Package config provides application configuration loading.
// This is part of the platform layer and contains no business logic.
package config

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// =============================================================================
// Module-Specific Config Interfaces (Principle of Least Privilege)
// =============================================================================

// HTTPConfig provides settings for the HTTP server.
type HTTPConfig interface {
	GetHTTPAddr() string
	GetCORSAllowAll() bool
	GetCORSOrigins() []string
}

// GeocodeConfig provides settings for the geocoding client.
type GeocodeConfig interface {
	GetOpenWeatherAPIKey() string
	GetGeocodeBaseURL() string
	IsGeocodeEnabled() bool
}

// AirQualityConfig provides settings for the air-quality source chain.
type AirQualityConfig interface {
	GetWAQIToken() string
	GetWAQIBaseURL() string
	GetOpenWeatherAPIKey() string
	GetAirPollutionBaseURL() string
	IsWAQIEnabled() bool
	IsOpenWeatherEnabled() bool
}

// WeatherConfig provides settings for the weather fetcher.
type WeatherConfig interface {
	GetOpenWeatherAPIKey() string
	GetWeatherBaseURL() string
	IsOpenWeatherEnabled() bool
}

// RecommendConfig provides settings for the generative recommendation service.
type RecommendConfig interface {
	GetGeminiAPIKey() string
	GetGeminiModel() string
	IsGeminiEnabled() bool
}

// ScoringConfig provides settings for the external scoring collaborators.
type ScoringConfig interface {
	GetPythonBin() string
	GetAQIAnalyserScript() string
	GetOptimiserScript() string
	GetScoringTimeout() time.Duration
	IsScoringEnabled() bool
}

// CacheConfig provides settings for the short-TTL analysis result cache.
type CacheConfig interface {
	GetRedisURL() string
	GetAnalysisCacheTTL() time.Duration
	IsCacheEnabled() bool
}

// =============================================================================
// Main Config Struct
// =============================================================================

// Config holds all application configuration values. It is constructed once
// at startup and treated as read-only afterwards; provider credentials are
// never mutated at runtime.
type Config struct {
	Env          string
	HTTPAddr     string
	CORSAllowAll bool
	CORSOrigins  []string

	OpenWeatherAPIKey string
	WAQIToken         string
	GeminiAPIKey      string
	GeminiModel       string

	// Base URLs are configurable so tests can point clients at local fakes.
	GeocodeBaseURL      string
	WeatherBaseURL      string
	AirPollutionBaseURL string
	WAQIBaseURL         string

	PythonBin         string
	AQIAnalyserScript string
	OptimiserScript   string
	ScoringTimeout    time.Duration

	RedisURL         string
	AnalysisCacheTTL time.Duration
}

// HTTPConfig implementation
func (c *Config) GetHTTPAddr() string      { return c.HTTPAddr }
func (c *Config) GetCORSAllowAll() bool    { return c.CORSAllowAll }
func (c *Config) GetCORSOrigins() []string { return c.CORSOrigins }

// GeocodeConfig implementation
func (c *Config) GetGeocodeBaseURL() string { return c.GeocodeBaseURL }
func (c *Config) IsGeocodeEnabled() bool    { return c.OpenWeatherAPIKey != "" }

// AirQualityConfig implementation
func (c *Config) GetWAQIToken() string           { return c.WAQIToken }
func (c *Config) GetWAQIBaseURL() string         { return c.WAQIBaseURL }
func (c *Config) GetAirPollutionBaseURL() string { return c.AirPollutionBaseURL }
func (c *Config) IsWAQIEnabled() bool            { return c.WAQIToken != "" }
func (c *Config) IsOpenWeatherEnabled() bool     { return c.OpenWeatherAPIKey != "" }

// WeatherConfig implementation
func (c *Config) GetOpenWeatherAPIKey() string { return c.OpenWeatherAPIKey }
func (c *Config) GetWeatherBaseURL() string    { return c.WeatherBaseURL }

// RecommendConfig implementation
func (c *Config) GetGeminiAPIKey() string { return c.GeminiAPIKey }
func (c *Config) GetGeminiModel() string  { return c.GeminiModel }
func (c *Config) IsGeminiEnabled() bool   { return c.GeminiAPIKey != "" }

// ScoringConfig implementation
func (c *Config) GetPythonBin() string             { return c.PythonBin }
func (c *Config) GetAQIAnalyserScript() string     { return c.AQIAnalyserScript }
func (c *Config) GetOptimiserScript() string       { return c.OptimiserScript }
func (c *Config) GetScoringTimeout() time.Duration { return c.ScoringTimeout }
func (c *Config) IsScoringEnabled() bool {
	return c.AQIAnalyserScript != "" || c.OptimiserScript != ""
}

// CacheConfig implementation
func (c *Config) GetRedisURL() string                { return c.RedisURL }
func (c *Config) GetAnalysisCacheTTL() time.Duration { return c.AnalysisCacheTTL }
func (c *Config) IsCacheEnabled() bool               { return c.RedisURL != "" }

// Load reads configuration from environment variables. A missing provider
// credential is not an error: the affected collaborator degrades to its
// fallback tier instead (capability is reported via the Is<X>Enabled methods
// and the /health endpoint).
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Env:          getEnv("APP_ENV", "development"),
		HTTPAddr:     getEnv("HTTP_ADDR", ":8080"),
		CORSAllowAll: strings.EqualFold(getEnv("CORS_ALLOW_ALL", "false"), "true"),
		CORSOrigins:  splitCSV(getEnv("CORS_ORIGINS", "http://localhost:4200")),

		OpenWeatherAPIKey: getEnv("OPENWEATHER_API_KEY", ""),
		WAQIToken:         getEnv("WAQI_API_TOKEN", ""),
		GeminiAPIKey:      getEnv("GEMINI_API_KEY", ""),
		GeminiModel:       getEnv("GEMINI_MODEL", "gemini-2.5-flash"),

		GeocodeBaseURL:      getEnv("GEOCODE_BASE_URL", "https://api.openweathermap.org/geo/1.0"),
		WeatherBaseURL:      getEnv("WEATHER_BASE_URL", "https://api.openweathermap.org/data/2.5"),
		AirPollutionBaseURL: getEnv("AIR_POLLUTION_BASE_URL", "https://api.openweathermap.org/data/2.5"),
		WAQIBaseURL:         getEnv("WAQI_BASE_URL", "https://api.waqi.info"),

		PythonBin:         getEnv("PYTHON_BIN", "python3"),
		AQIAnalyserScript: getEnv("AQI_ANALYSER_SCRIPT", ""),
		OptimiserScript:   getEnv("INTERVENTION_OPTIMISER_SCRIPT", ""),
		ScoringTimeout:    mustDuration(getEnv("SCORING_TIMEOUT", "10s")),

		RedisURL:         getEnv("REDIS_URL", ""),
		AnalysisCacheTTL: mustDuration(getEnv("ANALYSIS_CACHE_TTL", "60s")),
	}

	if containsWildcard(cfg.CORSOrigins) {
		cfg.CORSAllowAll = true
	}
	if cfg.ScoringTimeout <= 0 {
		cfg.ScoringTimeout = 10 * time.Second
	}
	if cfg.AnalysisCacheTTL <= 0 {
		cfg.AnalysisCacheTTL = time.Minute
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	return fallback
}

func mustDuration(value string) time.Duration {
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0
	}
	return d
}

func splitCSV(value string) []string {
	parts := strings.Split(value, ",")
	results := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			results = append(results, trimmed)
		}
	}
	return results
}

func containsWildcard(values []string) bool {
	for _, value := range values {
		if value == "*" {
			return true
		}
	}
	return false
}
