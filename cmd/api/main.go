package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/ticket-tracker/internal/api/http"
	"github.com/spec-kit/ticket-tracker/internal/api/http/handlers"
	"github.com/spec-kit/ticket-tracker/internal/auth"
	"github.com/spec-kit/ticket-tracker/internal/config"
	"github.com/spec-kit/ticket-tracker/internal/events"
	"github.com/spec-kit/ticket-tracker/internal/observability"
	"github.com/spec-kit/ticket-tracker/internal/store"
	"github.com/spec-kit/ticket-tracker/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	entityStore := store.New()
	sessions := store.NewSessionRegistry()
	metrics := observability.NewMetrics()

	dispatcher := events.NewInMemoryDispatcher(logger)
	worker.StartAuditWorker(dispatcher, logger)

	authMiddleware := auth.NewAuthMiddleware(sessions)

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, entityStore, sessions, metrics),
		Auth:           handlers.NewAuthHandler(entityStore, sessions, dispatcher),
		Tickets:        handlers.NewTicketsHandler(entityStore, dispatcher),
		AuthMiddleware: authMiddleware,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
