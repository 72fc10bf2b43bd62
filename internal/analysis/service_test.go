package analysis

import (
	"context"
	"testing"
	"time"

	"airaware_backend/platform/apperr"
	"airaware_backend/platform/logger"
	"airaware_backend/platform/validator"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzeServesRepeatQueryFromCache(t *testing.T) {
	cache, _ := newTestCache(t, time.Minute)
	log := logger.New("development")
	geocoder := &countingGeocoder{}

	svc := NewService(geocoder, staticAir{}, staticWeather{}, nil, staticRecommender{}, cache, validator.New(), log)

	req := AnalysisRequest{Location: "Connaught Place, New Delhi", Budget: 200000}
	first, err := svc.Analyze(context.Background(), req)
	require.NoError(t, err)

	second, err := svc.Analyze(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, 1, geocoder.calls)
	assert.Equal(t, first.Interventions, second.Interventions)
	assert.True(t, first.GeneratedAt.Equal(second.GeneratedAt))
}

func TestAnalyzeRejectsNonPositiveBudget(t *testing.T) {
	log := logger.New("development")
	geocoder := &countingGeocoder{}
	svc := NewService(geocoder, staticAir{}, staticWeather{}, nil, staticRecommender{}, nil, validator.New(), log)

	_, err := svc.Analyze(context.Background(), AnalysisRequest{Location: "New Delhi", Budget: 0})
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.KindValidation))
	assert.Zero(t, geocoder.calls)
}

func TestAnalyzeClassifiesContextFromQueryString(t *testing.T) {
	log := logger.New("development")
	svc := NewService(&countingGeocoder{}, staticAir{}, staticWeather{}, nil, staticRecommender{}, nil, validator.New(), log)

	resp, err := svc.Analyze(context.Background(), AnalysisRequest{Location: "Okhla Industrial Area", Budget: 100000})
	require.NoError(t, err)
	assert.Equal(t, "Industrial", string(resp.Context.AreaType))
	assert.Equal(t, "High", string(resp.Context.IndustrialActivity))
}
