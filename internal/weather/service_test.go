package weather

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"airaware_backend/platform/config"
	"airaware_backend/platform/logger"

	"github.com/stretchr/testify/assert"
)

func weatherConfig(baseURL, key string) *config.Config {
	return &config.Config{
		OpenWeatherAPIKey: key,
		WeatherBaseURL:    baseURL,
	}
}

func TestFetchMapsProviderPayload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "metric", r.URL.Query().Get("units"))
		_, _ = w.Write([]byte(`{
			"main":{"temp":31.4,"feels_like":34.8,"humidity":48,"pressure":1002},
			"weather":[{"description":"haze"}],
			"wind":{"speed":5.0},
			"visibility":3500,
			"clouds":{"all":20}
		}`))
	}))
	defer server.Close()

	svc := NewService(weatherConfig(server.URL, "key"), logger.New("development"))
	reading := svc.Fetch(context.Background(), 28.6, 77.2)

	assert.Equal(t, 31.4, reading.Temperature)
	assert.Equal(t, 34.8, reading.FeelsLike)
	assert.Equal(t, 48, reading.Humidity)
	// 5.0 m/s converts to 18 km/h.
	assert.InDelta(t, 18.0, reading.WindSpeed, 0.001)
	assert.Equal(t, 1002, reading.Pressure)
	assert.Equal(t, "haze", reading.Description)
	assert.Equal(t, 3500, reading.Visibility)
	assert.Equal(t, 20, reading.CloudCover)
}

func TestFetchWithoutCredentialReturnsExactDefaultRecord(t *testing.T) {
	svc := NewService(weatherConfig("http://unused", ""), logger.New("development"))
	reading := svc.Fetch(context.Background(), 28.6, 77.2)
	assert.Equal(t, DefaultReading, reading)
}

func TestFetchUpstreamFailureReturnsDefaultRecord(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	svc := NewService(weatherConfig(server.URL, "key"), logger.New("development"))
	reading := svc.Fetch(context.Background(), 28.6, 77.2)
	assert.Equal(t, DefaultReading, reading)
}

func TestFetchMalformedPayloadReturnsDefaultRecord(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"main":`))
	}))
	defer server.Close()

	svc := NewService(weatherConfig(server.URL, "key"), logger.New("development"))
	reading := svc.Fetch(context.Background(), 28.6, 77.2)
	assert.Equal(t, DefaultReading, reading)
}
