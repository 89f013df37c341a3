package api

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"

	"github.com/oakfieldhq/oakfield/internal/app"
	"github.com/oakfieldhq/oakfield/internal/cache"
	"github.com/oakfieldhq/oakfield/internal/handlers"
	"github.com/oakfieldhq/oakfield/internal/middleware"
	"github.com/oakfieldhq/oakfield/internal/services"
)

// NewRouter builds the Gin engine, wires middleware and registers routes.
func NewRouter(db *gorm.DB, store cache.Store, cfg *app.Config) (*gin.Engine, error) {
	if db == nil {
		return nil, fmt.Errorf("database handle must be provided")
	}
	if store == nil {
		return nil, fmt.Errorf("cache store must be provided")
	}
	if cfg == nil {
		return nil, fmt.Errorf("config must be provided")
	}

	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.Logger())
	r.Use(middleware.Metrics())

	// Health endpoint (public)
	r.GET("/health", handlers.Health())

	propertySvc, err := services.NewPropertyService(db)
	if err != nil {
		return nil, err
	}

	ttl := time.Duration(cfg.Cache.TTLSeconds) * time.Second
	listingSvc, err := services.NewListingCacheService(store, propertySvc, ttl)
	if err != nil {
		return nil, err
	}

	propertyHandler, err := handlers.NewPropertyHandler(listingSvc, nil)
	if err != nil {
		return nil, err
	}

	api := r.Group("/api")
	registerPropertyRoutes(api, propertyHandler)

	// Metrics endpoint
	if cfg.Monitoring.Prometheus.Enabled {
		endpoint := cfg.Monitoring.Prometheus.Endpoint
		if endpoint == "" {
			endpoint = "/metrics"
		}
		r.GET(endpoint, gin.WrapH(promhttp.Handler()))
	}

	// NotFound fallback
	r.NoRoute(middleware.NotFoundHandler)

	return r, nil
}
