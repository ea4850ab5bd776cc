// Museums API server.
//
//	@title			Museums API
//	@version		1.0
//	@description	CRUD over museum documents stored in MongoDB.
//	@BasePath		/api/v1
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/museumsapi/museums-api/internal/config"
	"github.com/museumsapi/museums-api/internal/database"
	"github.com/museumsapi/museums-api/internal/museum/service"
	"github.com/museumsapi/museums-api/internal/server"
	"github.com/museumsapi/museums-api/internal/storage"
	"github.com/museumsapi/museums-api/pkg/logger"
	"github.com/museumsapi/museums-api/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus"
)

func main() {
	// LOG_LEVEL env: debug|info|warn|error|fatal
	logger.Init(os.Getenv("LOG_LEVEL"))
	defer logger.Sync()

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}
	logger.Init(cfg.LogLevel)
	logger.Infof("config loaded: env=%s mongo=%v origins=%v", cfg.Server.Environment, cfg.MongoDB.URI != "", cfg.CORS.AllowedOrigins)

	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx := context.Background()

	// One connection attempt; a store that is down at startup is fatal.
	var museums service.Service
	if cfg.MongoDB.URI != "" {
		db, err := database.ConnectMongo(ctx, cfg.MongoDB.URI, cfg.MongoDB.Database, cfg.MongoDB.Timeout)
		if err != nil {
			logger.Fatalf("failed to connect to MongoDB: %v", err)
		}
		defer func() { _ = db.Disconnect(context.Background()) }()
		logger.Infof("connected to MongoDB database %q", cfg.MongoDB.Database)
		museums = service.NewMongoService(db.Collection(cfg.MongoDB.Collection))
	} else {
		logger.Warnf("MONGODB_URI not set: museums are kept in memory and lost on restart")
		museums = service.NewMemoryService()
	}

	assets, err := storage.NewAssetSource(cfg.Static)
	if err != nil {
		logger.Warnf("static fallback disabled: %v", err)
	}

	metrics.RegisterCollectors(prometheus.DefaultRegisterer)

	r := server.New(server.Options{Config: cfg, Museums: museums, Assets: assets})

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		logger.Infof("museums api listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("server failed: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	logger.Infof("shutting down")
	shutdownCtx, cancel := context.WithTimeout(ctx, cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Errorf("graceful shutdown failed: %v", err)
	}
}
