package server

import (
	"context"
	"net/http"
	"time"

	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/museumsapi/museums-api/handlers"
	"github.com/museumsapi/museums-api/internal/config"
	"github.com/museumsapi/museums-api/internal/museum/handler"
	"github.com/museumsapi/museums-api/internal/museum/service"
	"github.com/museumsapi/museums-api/internal/storage"
	"github.com/museumsapi/museums-api/pkg/logger"
	"github.com/museumsapi/museums-api/pkg/metrics"
	"github.com/museumsapi/museums-api/pkg/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Options carries the dependencies the router is built from.
type Options struct {
	Config  *config.Config
	Museums service.Service
	Assets  storage.AssetSource
}

var startTime = time.Now()

// New builds the gin engine: middleware, health probes, metrics, docs, the
// museum routes and the static fallback.
func New(opts Options) *gin.Engine {
	r := gin.New()

	// Global middlewares: logging + recovery
	r.Use(ginzap.Ginzap(logger.L(), time.RFC3339, true))
	r.Use(ginzap.RecoveryWithZap(logger.L(), true))
	r.Use(middleware.CORSMiddleware(opts.Config.CORS.AllowedOrigins))
	r.Use(middleware.MetricsMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "healthy")
	})

	// readiness endpoint: 200 only when the document store answers a ping
	r.GET("/ready", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		uptime := time.Since(startTime).String()
		if err := opts.Museums.Ready(ctx); err != nil {
			metrics.StoreUp.Set(0)
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not_ready", "deps": gin.H{"store": false}, "uptime": uptime})
			return
		}
		metrics.StoreUp.Set(1)
		c.JSON(http.StatusOK, gin.H{"status": "ready", "deps": gin.H{"store": true}, "uptime": uptime})
	})

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	handlers.RegisterSwagger(r)
	handler.RegisterMuseumRoutes(r, opts.Museums)
	handlers.RegisterFallback(r, opts.Assets, opts.Config.Static.Index)

	return r
}
