package router

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/pageza/recipebox/backend/config"
	"github.com/pageza/recipebox/backend/internal/api"
	"github.com/pageza/recipebox/backend/internal/middleware"
)

// SetupRouter configures the application routes.
// A nil limiter leaves the write routes unlimited.
func SetupRouter(cfg *config.Config, recipeHandler *api.RecipeHandler, limiter middleware.Limiter) *gin.Engine {
	router := gin.Default()

	router.Use(middleware.Metrics())
	router.Use(middleware.CORS(cfg.CORSAllowedOrigins))
	router.Use(middleware.ErrorHandler())

	// Health and metrics endpoints
	router.GET("/health", api.HealthCheck)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	var writeMiddleware []gin.HandlerFunc
	if limiter != nil {
		writeMiddleware = append(writeMiddleware, middleware.RateLimit(limiter))
	}
	recipeHandler.RegisterRoutes(&router.RouterGroup, writeMiddleware...)

	return router
}
