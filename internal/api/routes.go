package api

import (
	"github.com/gin-gonic/gin"
	"github.com/maxaizer/job-discovery/internal/config"
	"github.com/maxaizer/job-discovery/internal/metrics"
)

// NewRouter builds the gin engine with middleware and all routes.
func NewRouter(cfg config.ServerConfig, handler *Handler) *gin.Engine {
	router := gin.New()
	router.Use(
		gin.Recovery(),
		RequestIDMiddleware(),
		LoggerMiddleware(),
	)

	router.GET("/health", handler.HealthCheck)
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	v1 := router.Group("/api/v1")
	v1.Use(
		RateLimitMiddleware(cfg.RequestsPerSecond, cfg.Burst),
		TimeoutMiddleware(cfg.RequestTimeout),
	)
	SetupRoutes(v1, handler)

	return router
}

// SetupRoutes configures the discovery API routes
func SetupRoutes(v1 *gin.RouterGroup, handler *Handler) {
	jobs := v1.Group("/jobs")
	{
		jobs.GET("", handler.Search)
		jobs.GET("/:slug", handler.JobBySlug)
		jobs.GET("/:slug/similar", handler.SimilarBySlug)
	}

	v1.GET("/similar", handler.Similar)
	v1.GET("/filters", handler.Filters)
	v1.GET("/stats", handler.Stats)
}
