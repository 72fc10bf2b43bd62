// Package router assembles the Gin engine: global middleware, the health
// endpoint, and route registration for every domain module.
package router

import (
	"net/http"
	"strings"
	"time"

	apphttp "airaware_backend/internal/http"
	"airaware_backend/platform/config"
	"airaware_backend/platform/httpkit"
	"airaware_backend/platform/logger"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// App bundles the dependencies the router needs from the composition root.
type App struct {
	Config  *config.Config
	Logger  *logger.Logger
	Modules []apphttp.Module
}

func New(app *App) *gin.Engine {
	if !strings.EqualFold(app.Config.Env, "development") {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(httpkit.RequestID())
	engine.Use(httpkit.RequestLogger(app.Logger))
	engine.Use(httpkit.SecurityHeaders())
	engine.Use(corsMiddleware(app.Config))

	limiter := httpkit.NewIPRateLimiter(rate.Limit(5), 10, app.Logger)
	engine.Use(limiter.RateLimit())

	engine.GET("/health", healthHandler(app.Config))

	v1 := engine.Group("/api/v1")
	rc := &apphttp.RouterContext{Engine: engine, V1: v1}
	for _, module := range app.Modules {
		module.RegisterRoutes(rc)
		app.Logger.Info("module routes registered", "module", module.Name())
	}

	return engine
}

func corsMiddleware(cfg *config.Config) gin.HandlerFunc {
	corsCfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "X-Request-ID"},
		ExposeHeaders:    []string{"X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}
	if cfg.GetCORSAllowAll() {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = cfg.GetCORSOrigins()
	}
	return cors.New(corsCfg)
}

// healthHandler reports liveness plus a capability flag per configured
// collaborator, so operators can see at a glance which fallback tiers are
// in play.
func healthHandler(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
			"capabilities": gin.H{
				"geocoding":             cfg.IsGeocodeEnabled(),
				"air_quality_primary":   cfg.IsWAQIEnabled(),
				"air_quality_secondary": cfg.IsOpenWeatherEnabled(),
				"weather":               cfg.IsOpenWeatherEnabled(),
				"recommendations":       cfg.IsGeminiEnabled(),
				"scientific_scoring":    cfg.IsScoringEnabled(),
				"cache":                 cfg.IsCacheEnabled(),
			},
		})
	}
}
