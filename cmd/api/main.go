package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/govkit/governance-service/internal/api/http"
	"github.com/govkit/governance-service/internal/api/http/handlers"
	"github.com/govkit/governance-service/internal/audit"
	"github.com/govkit/governance-service/internal/auth"
	"github.com/govkit/governance-service/internal/config"
	"github.com/govkit/governance-service/internal/events"
	"github.com/govkit/governance-service/internal/observability"
	"github.com/govkit/governance-service/internal/session"
	"github.com/govkit/governance-service/internal/storage"
	"github.com/govkit/governance-service/internal/store"
	"github.com/govkit/governance-service/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger, cfg.App)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	backend, err := storage.Open(ctx, cfg.Storage, logger)
	if err != nil {
		logger.Fatal("failed to open storage backend", zap.Error(err))
	}
	defer backend.Close()

	st := store.New(backend)
	dispatcher := events.NewInMemoryDispatcher()
	auditLog := audit.NewLog(backend)
	audit.SubscribeRecorder(dispatcher, auditLog)

	metrics := observability.NewMetrics()
	for _, eventType := range events.AllTypes {
		dispatcher.Subscribe(eventType, func(_ context.Context, e events.Event) error {
			metrics.RecordMutation(string(e.EntityType), string(e.Type))
			return nil
		})
	}

	if cfg.Seed.Enabled {
		if err := st.Seed(ctx); err != nil {
			logger.Fatal("failed to seed sample data", zap.Error(err))
		}
	}

	sessions := session.NewManager(st, dispatcher, logger, cfg.Auth.GoogleClientID)
	restored, err := sessions.Restore(ctx)
	if err != nil {
		logger.Warn("session restore failed", zap.Error(err))
	}
	if !restored {
		if detected, err := sessions.AutoDetect(ctx); err != nil {
			logger.Warn("session auto-detect failed", zap.Error(err))
		} else if !detected {
			logger.Info("no session detected, waiting for explicit login")
		}
	}

	authMiddleware := auth.NewMiddleware(sessions)

	app := fiber.New(fiber.Config{AppName: cfg.App.Name})
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, backend, metrics),
		Session:        handlers.NewSessionHandler(sessions),
		Staff:          handlers.NewStaffHandler(st, dispatcher),
		Workstreams:    handlers.NewWorkstreamsHandler(st, dispatcher),
		Deliverables:   handlers.NewDeliverablesHandler(st, dispatcher),
		PTO:            handlers.NewPTOHandler(st, dispatcher),
		Hours:          handlers.NewHoursHandler(st, dispatcher),
		Audit:          handlers.NewAuditHandler(auditLog),
		Views:          handlers.NewViewsHandler(st, auditLog),
		AuthMiddleware: authMiddleware,
	})

	staleReporter := worker.NewStaleReporter(st, logger, cfg.Worker)
	go staleReporter.Run(ctx)

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	cancel()
	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
