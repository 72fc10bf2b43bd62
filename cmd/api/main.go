package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"airaware_backend/internal/airquality"
	"airaware_backend/internal/analysis"
	"airaware_backend/internal/geocode"
	apphttp "airaware_backend/internal/http"
	"airaware_backend/internal/http/router"
	"airaware_backend/internal/recommend"
	"airaware_backend/internal/scoring"
	"airaware_backend/internal/weather"
	"airaware_backend/platform/config"
	"airaware_backend/platform/logger"
	"airaware_backend/platform/validator"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	log := logger.New(cfg.Env)
	log.Info("starting server", "env", cfg.Env, "addr", cfg.HTTPAddr)
	log.Info("provider capabilities",
		"geocoding", cfg.IsGeocodeEnabled(),
		"waqi", cfg.IsWAQIEnabled(),
		"openweather", cfg.IsOpenWeatherEnabled(),
		"gemini", cfg.IsGeminiEnabled(),
		"scoring", cfg.IsScoringEnabled(),
		"cache", cfg.IsCacheEnabled(),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	val := validator.New()

	// ========================================================================
	// Collaborators
	// ========================================================================

	geocodeSvc := geocode.NewService(cfg, log)
	airSvc := airquality.NewService(cfg, log)
	weatherSvc := weather.NewService(cfg, log)
	scoringRunner := scoring.NewRunner(cfg, log)
	recommendSvc := recommend.NewService(ctx, cfg, log)
	cache := analysis.NewCache(cfg, log)

	analysisSvc := analysis.NewService(
		geocodeSvc,
		airSvc,
		weatherSvc,
		scoringRunner,
		recommendSvc,
		cache,
		val,
		log,
	)

	// ========================================================================
	// HTTP Layer
	// ========================================================================

	engine := router.New(&router.App{
		Config: cfg,
		Logger: log,
		Modules: []apphttp.Module{
			analysis.NewModule(analysisSvc, log),
		},
	})

	srvErr := make(chan error, 1)
	go func() {
		log.Info("server listening", "addr", cfg.HTTPAddr)
		srvErr <- engine.Run(cfg.HTTPAddr)
	}()

	select {
	case <-ctx.Done():
		log.Info("shutdown signal received")
	case err := <-srvErr:
		if err != nil {
			log.Error("server error", "error", err)
			panic("server error: " + err.Error())
		}
	}
}
