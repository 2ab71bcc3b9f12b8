package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rotisserie/eris"
	"github.com/sirupsen/logrus"

	"github.com/shenikar/safe_route_system/internal/app"
	"github.com/shenikar/safe_route_system/internal/config"
	"github.com/shenikar/safe_route_system/internal/generator"
	v1 "github.com/shenikar/safe_route_system/internal/handler/http/v1"
	"github.com/shenikar/safe_route_system/internal/ingest"
	"github.com/shenikar/safe_route_system/internal/webhook"
	"github.com/shenikar/safe_route_system/pkg/logger"

	_ "github.com/shenikar/safe_route_system/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// shutdownTimeout - время на завершение активных запросов
const shutdownTimeout = 5 * time.Second

// @title Safe Route API
// @version 1.0
// @description Risk engine that builds high-risk areas from crime incidents and classifies straight-line routes as safe or unsafe.
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}
	log := logger.New(cfg.LogLevel, cfg.LogFormat)

	if err := run(cfg, log); err != nil {
		log.Fatalf("Service stopped with error: %v", err)
	}
	log.Info("Server gracefully stopped")
}

func run(cfg *config.Config, log *logrus.Logger) error {
	// Контекст отменяется по SIGINT/SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	res, err := app.Open(ctx, cfg, log)
	if err != nil {
		return eris.Wrap(err, "open storage")
	}
	defer res.Close()
	log.WithField("driver", cfg.StoreDriver).Info("Risk area store ready")

	catalog, err := generator.DefaultCatalog()
	if err != nil {
		return eris.Wrap(err, "load incident catalog")
	}

	safetyService, err := app.NewSafetyService(cfg, res, catalog, log)
	if err != nil {
		return eris.Wrap(err, "create safety service")
	}

	if res.AlertsEnabled(cfg) {
		webhook.NewAlertWorker(res.RedisClient, log, webhook.WorkerConfig{
			URL:        cfg.WebhookURL,
			Secret:     cfg.WebhookSecret,
			Timeout:    cfg.WebhookTimeout,
			MaxRetries: cfg.WebhookMaxRetries,
			BaseDelay:  cfg.WebhookBaseDelay,
		}).Start(ctx)
	} else {
		log.Info("Route alerts disabled: REDIS_ADDR or WEBHOOK_URL not set")
	}

	// Последний сохраненный набор геозон становится активным до первого запроса
	safetyService.RestoreRiskAreas(ctx)

	importer := ingest.NewImporter(app.CityCentres(catalog), time.Now)
	handler := v1.NewHandler(safetyService, importer, log, cfg)

	router := gin.Default()
	handler.RegisterRoutes(router.Group("/api/v1"))
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()
	log.Infof("HTTP server started on port %s", cfg.HTTPPort)

	select {
	case err := <-serveErr:
		return eris.Wrap(err, "http server")
	case <-ctx.Done():
		log.Info("Received shutdown signal, shutting down server...")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return eris.Wrap(err, "server forced to shutdown")
	}
	return nil
}
