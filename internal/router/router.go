package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/stemsi/depredict/internal/config"
	"github.com/stemsi/depredict/internal/handler"
	"github.com/stemsi/depredict/internal/middleware"
	"github.com/stemsi/depredict/internal/response"
	"github.com/stemsi/depredict/internal/web"
)

// Handlers groups all handler instances for route setup.
type Handlers struct {
	Prediction *handler.PredictionHandler
	Page       *handler.PageHandler
	System     *handler.SystemHandler
}

// SetupRouter configures all Gin route groups with appropriate middlewares.
// limiter may be nil to leave prediction routes unthrottled; the caller
// owns it and stops it on shutdown.
func SetupRouter(handlers *Handlers, limiter *middleware.RateLimiter, cfg *config.Config) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	router := gin.Default()
	router.SetHTMLTemplate(web.Templates())

	// ─── CORS ──────────────────────────────────────────────────────────
	// If AllowedOrigins is set in config, restrict to that list;
	// otherwise allow all (*) so dev works without extra config.
	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "X-Request-ID"}
	corsConfig.ExposeHeaders = []string{"X-Request-ID"}
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	// Apply request ID middleware globally so every response includes metadata.
	router.Use(response.RequestIDMiddleware())

	// Compress pages and API bodies; health probes stay uncompressed.
	brotliCfg := middleware.DefaultBrotliConfig
	brotliCfg.Skipper = middleware.SkipPaths("/health")
	router.Use(middleware.BrotliWithConfig(brotliCfg))

	// Embedded stylesheet, cached for a day.
	staticGroup := router.Group("/static")
	staticGroup.Use(middleware.CacheControl(86400))
	{
		staticGroup.StaticFS("/", web.Static())
	}

	router.GET("/health", handlers.System.Health)

	// Prediction routes share one per-IP limiter across the form and the API.
	var predictLimit gin.HandlerFunc = func(c *gin.Context) { c.Next() }
	if limiter != nil {
		predictLimit = limiter.Middleware()
	}

	// ─── 1. Form Surface ───────────────────────────────────────────────
	router.GET("/", handlers.Page.Index)
	router.POST("/predict", predictLimit, middleware.NoStore(), handlers.Page.Predict)

	// ─── 2. JSON API ───────────────────────────────────────────────────
	api := router.Group("/api/v1")
	{
		api.POST("/predict", predictLimit, middleware.NoStore(), handlers.Prediction.Predict)
		api.GET("/bands", handlers.Prediction.GetBands)
		api.GET("/model", handlers.Prediction.GetModel)
	}

	router.NoRoute(func(c *gin.Context) {
		response.Fail(c, http.StatusNotFound, response.ErrNotFound)
	})

	return router
}
