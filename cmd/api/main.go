package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/newsletter-service/internal/api/http"
	"github.com/spec-kit/newsletter-service/internal/api/http/handlers"
	"github.com/spec-kit/newsletter-service/internal/config"
	"github.com/spec-kit/newsletter-service/internal/email"
	"github.com/spec-kit/newsletter-service/internal/events"
	"github.com/spec-kit/newsletter-service/internal/observability"
	"github.com/spec-kit/newsletter-service/internal/persistence"
	"github.com/spec-kit/newsletter-service/internal/repository"
	"github.com/spec-kit/newsletter-service/internal/service"
	"github.com/spec-kit/newsletter-service/internal/worker"
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

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), cfg.Postgres.MigrationsDir, logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(ctx, cfg.Redis, logger)
	defer redis.Close()

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics := observability.NewMetrics(registry)

	sender, err := newEmailSender(ctx, cfg.Email, logger)
	if err != nil {
		logger.Fatal("failed to init email sender", zap.Error(err))
	}

	dispatcher := events.NewInMemoryDispatcher()
	worker.StartNotificationWorker(service.NewNotificationService(dispatcher, logger, metrics))

	subscriptionService := service.NewSubscriptionService(service.SubscriptionDependencies{
		DB:             repository.NewTxBeginner(pg.PoolHandle()),
		SubscriberRepo: repository.NewSubscriberRepository(),
		TokenRepo:      repository.NewSubscriptionTokenRepository(),
		TokenGenerator: service.NewRandomTokenGenerator(),
		Sender:         sender,
		Dispatcher:     dispatcher,
		Logger:         logger,
		BaseURL:        cfg.App.BaseURL,
	})

	app := fiber.New(fiber.Config{AppName: cfg.App.Name})
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health: handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version,
			handlers.Dependency{Name: "postgres", Pinger: pg},
			handlers.Dependency{Name: "redis", Pinger: redis},
		),
		Subscriptions: handlers.NewSubscriptionsHandler(subscriptionService, metrics),
		Metrics:       adaptor.HTTPHandler(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})),
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	if err := app.Shutdown(); err != nil {
		logger.Warn("shutdown", zap.Error(err))
	}
}

func newEmailSender(ctx context.Context, cfg config.EmailConfig, logger *zap.Logger) (email.Sender, error) {
	if !cfg.SESEnabled() {
		logger.Warn("SES credentials not provided; confirmation emails will only be logged")
		return email.NewLogSender(logger, cfg.Sender), nil
	}
	return email.NewSESSender(ctx, cfg)
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
